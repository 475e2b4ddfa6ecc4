package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBalanceReportRender(t *testing.T) {
	utxo := BalanceReport{
		Coin:          Bitcoin,
		Address:       "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		Balance:       decimal.New(150000000, -8),
		TotalReceived: decimal.New(150000000, -8),
		TotalSent:     decimal.Zero,
		TxCount:       1,
		HasTxStats:    true,
	}
	want := "Bitcoin Address: 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa\n" +
		"Balance: 1.5 BTC\n" +
		"Total Received: 1.5 BTC\n" +
		"Total Sent: 0 BTC\n" +
		"Transactions: 1"
	if got := utxo.Render(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}

	eth := BalanceReport{
		Coin:       Ethereum,
		Address:    "0xde0B295669a9FD93d5F28D9Ec85E40f4cb697BAe",
		Balance:    decimal.RequireFromString("2.5"),
		TxCount:    3,
		HasTxCount: true,
	}
	want = "Ethereum Address: 0xde0B295669a9FD93d5F28D9Ec85E40f4cb697BAe\n" +
		"Balance: 2.5 ETH\n" +
		"Transactions: 3"
	if got := eth.Render(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}

	trc := BalanceReport{
		Coin:    USDTTRC20,
		Address: "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8",
		Balance: decimal.RequireFromString("42"),
	}
	want = "USDT (TRC20) Address: TJRabPrwbZy45sbavfcjinPJC18kjpRTv8\n" +
		"Balance: 42 USDT"
	if got := trc.Render(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CoinType перечисляет поддерживаемые сети/активы.
type CoinType string

const (
	Bitcoin   CoinType = "bitcoin"
	Ethereum  CoinType = "ethereum"
	Litecoin  CoinType = "litecoin"
	Tron      CoinType = "tron"
	USDTTRC20 CoinType = "usdt_trc20"
	USDTERC20 CoinType = "usdt_erc20"
	Dogecoin  CoinType = "dogecoin"
)

// AllCoins — в порядке таблицы детекции (порядок важен: ethereum/usdt_erc20 и
// tron/usdt_trc20 имеют одинаковый синтаксис адреса, выигрывает первый).
var AllCoins = []CoinType{
	Bitcoin, Ethereum, Litecoin, Tron, USDTTRC20, USDTERC20, Dogecoin,
}

func (c CoinType) Label() string {
	switch c {
	case Bitcoin:
		return "Bitcoin"
	case Ethereum:
		return "Ethereum"
	case Litecoin:
		return "Litecoin"
	case Tron:
		return "TRON"
	case USDTTRC20:
		return "USDT (TRC20)"
	case USDTERC20:
		return "USDT (ERC20)"
	case Dogecoin:
		return "Dogecoin"
	}
	return string(c)
}

// Unit — тикер для отображения баланса.
func (c CoinType) Unit() string {
	switch c {
	case Bitcoin:
		return "BTC"
	case Ethereum:
		return "ETH"
	case Litecoin:
		return "LTC"
	case Tron:
		return "TRX"
	case USDTTRC20, USDTERC20:
		return "USDT"
	case Dogecoin:
		return "DOGE"
	}
	return strings.ToUpper(string(c))
}

// BalanceReport — нормализованный результат успешного запроса к эксплореру.
// TotalReceived/TotalSent/TxCount есть не у всех сетей: HasTxStats выставляют
// UTXO-эксплореры, HasTxCount — ethereum.
type BalanceReport struct {
	Coin    CoinType
	Address string
	Balance decimal.Decimal

	TotalReceived decimal.Decimal
	TotalSent     decimal.Decimal
	TxCount       int
	HasTxStats    bool
	HasTxCount    bool
}

// Render собирает текст ответа: одна строка на поле. Подписи полей всегда
// англоязычные, локализуются только служебные сообщения бота.
func (r BalanceReport) Render() string {
	unit := r.Coin.Unit()
	var b strings.Builder
	fmt.Fprintf(&b, "%s Address: %s\n", r.Coin.Label(), r.Address)
	fmt.Fprintf(&b, "Balance: %s %s", r.Balance.String(), unit)
	if r.HasTxStats {
		fmt.Fprintf(&b, "\nTotal Received: %s %s", r.TotalReceived.String(), unit)
		fmt.Fprintf(&b, "\nTotal Sent: %s %s", r.TotalSent.String(), unit)
		fmt.Fprintf(&b, "\nTransactions: %d", r.TxCount)
	} else if r.HasTxCount {
		fmt.Fprintf(&b, "\nTransactions: %d", r.TxCount)
	}
	return b.String()
}

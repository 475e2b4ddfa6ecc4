package explorer

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/domain"
)

const (
	// DefaultTronGridAPI — публичный базовый URL TronGrid. Без ключа работает
	// с пониженными лимитами, поэтому ключ опционален.
	DefaultTronGridAPI = "https://api.trongrid.io"
	// TetherTRC20Contract — контракт USDT в сети TRON.
	TetherTRC20Contract = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

	tronAPIKeyHeader = "TRON-PRO-API-KEY"
)

type tronAccountResp struct {
	Success bool `json:"success"`
	Data    []struct {
		Balance int64 `json:"balance"`
	} `json:"data"`
}

type tronTokenResp struct {
	Success bool `json:"success"`
	Data    []struct {
		TokenID string      `json:"tokenId"`
		Balance json.Number `json:"balance"`
	} `json:"data"`
}

// TronAdapter запрашивает аккаунт TronGrid. Эндпоинт отдаёт только баланс
// (в sun, ÷ 1e6) — received/sent/tx-count для TRON недоступны.
type TronAdapter struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func (a *TronAdapter) header() http.Header {
	if a.APIKey == "" {
		return nil
	}
	return http.Header{tronAPIKeyHeader: []string{a.APIKey}}
}

func (a *TronAdapter) Fetch(ctx context.Context, address string) (domain.BalanceReport, error) {
	base := a.BaseURL
	if base == "" {
		base = DefaultTronGridAPI
	}

	body, status, err := doGet(ctx, a.HTTPClient, base+"/v1/accounts/"+address, a.header())
	if err != nil {
		return domain.BalanceReport{}, err
	}
	if status != http.StatusOK {
		return domain.BalanceReport{}, &LookupError{Kind: ProviderUnavailable, Status: status}
	}

	var out tronAccountResp
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: err.Error()}
	}
	if !out.Success || len(out.Data) == 0 {
		return domain.BalanceReport{}, &LookupError{Kind: NoDataFound}
	}

	return domain.BalanceReport{
		Coin:    domain.Tron,
		Address: address,
		Balance: decimal.New(out.Data[0].Balance, -6),
	}, nil
}

// TetherTRC20Adapter запрашивает токены аккаунта, отфильтрованные по
// контракту USDT. Список всё равно сканируется по tokenId: отсутствие USDT
// среди токенов — это нулевой баланс, а не ошибка.
type TetherTRC20Adapter struct {
	APIKey     string
	BaseURL    string
	Contract   string
	HTTPClient *http.Client
}

func (a *TetherTRC20Adapter) Fetch(ctx context.Context, address string) (domain.BalanceReport, error) {
	base := a.BaseURL
	if base == "" {
		base = DefaultTronGridAPI
	}
	contract := a.Contract
	if contract == "" {
		contract = TetherTRC20Contract
	}

	var header http.Header
	if a.APIKey != "" {
		header = http.Header{tronAPIKeyHeader: []string{a.APIKey}}
	}

	url := base + "/v1/accounts/" + address + "/tokens?contract_address=" + contract
	body, status, err := doGet(ctx, a.HTTPClient, url, header)
	if err != nil {
		return domain.BalanceReport{}, err
	}
	if status != http.StatusOK {
		return domain.BalanceReport{}, &LookupError{Kind: ProviderUnavailable, Status: status}
	}

	var out tronTokenResp
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: err.Error()}
	}
	if !out.Success || len(out.Data) == 0 {
		return domain.BalanceReport{}, &LookupError{Kind: NoDataFound}
	}

	balance := decimal.Zero
	for _, tok := range out.Data {
		if tok.TokenID != contract {
			continue
		}
		if tok.Balance == "" {
			break
		}
		minor, err := decimal.NewFromString(tok.Balance.String())
		if err != nil {
			return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: "bad token balance value: " + tok.Balance.String()}
		}
		balance = minor.Shift(-6)
		break
	}

	return domain.BalanceReport{
		Coin:    domain.USDTTRC20,
		Address: address,
		Balance: balance,
	}, nil
}

package explorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/domain"
)

const (
	// DefaultEtherscanAPI — публичный базовый URL Etherscan.
	DefaultEtherscanAPI = "https://api.etherscan.io/api"
	// TetherERC20Contract — контракт USDT в сети Ethereum.
	TetherERC20Contract = "0xdac17f958d2ee523a2206206994597c13d831ec7"
)

type etherscanResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

type etherscanListResp struct {
	Status string            `json:"status"`
	Result []json.RawMessage `json:"result"`
}

// EthereumAdapter запрашивает баланс через Etherscan (wei ÷ 1e18) и вторым
// запросом — список транзакций ради их количества. Ошибка второго запроса
// не роняет весь lookup: счётчик просто остаётся нулевым.
type EthereumAdapter struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func (a *EthereumAdapter) Fetch(ctx context.Context, address string) (domain.BalanceReport, error) {
	if a.APIKey == "" {
		return domain.BalanceReport{}, &LookupError{Kind: MissingCredential, Msg: "etherscan api key is not set"}
	}
	base := a.BaseURL
	if base == "" {
		base = DefaultEtherscanAPI
	}

	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "balance")
	q.Set("address", address)
	q.Set("tag", "latest")
	q.Set("apikey", a.APIKey)

	body, status, err := doGet(ctx, a.HTTPClient, base+"?"+q.Encode(), nil)
	if err != nil {
		return domain.BalanceReport{}, err
	}
	if status != http.StatusOK {
		return domain.BalanceReport{}, &LookupError{Kind: ProviderUnavailable, Status: status}
	}

	var out etherscanResp
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: err.Error()}
	}
	if out.Status != "1" {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: out.Message}
	}

	// result — wei десятичной строкой, в int64 может не влезть
	wei, err := decimal.NewFromString(out.Result)
	if err != nil {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: "bad balance value: " + out.Result}
	}

	return domain.BalanceReport{
		Coin:       domain.Ethereum,
		Address:    address,
		Balance:    wei.Shift(-18),
		TxCount:    a.txCount(ctx, base, address),
		HasTxCount: true,
	}, nil
}

// txCount возвращает длину списка транзакций адреса. Любая неудача здесь
// намеренно проглатывается: вызывающий уже держит валидный баланс.
func (a *EthereumAdapter) txCount(ctx context.Context, base, address string) int {
	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", address)
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("sort", "desc")
	q.Set("apikey", a.APIKey)

	body, status, err := doGet(ctx, a.HTTPClient, base+"?"+q.Encode(), nil)
	if err != nil || status != http.StatusOK {
		return 0
	}
	var out etherscanListResp
	if err := json.Unmarshal(body, &out); err != nil {
		return 0
	}
	if out.Status != "1" {
		return 0
	}
	return len(out.Result)
}

// TetherERC20Adapter запрашивает баланс токена USDT (6 знаков) у Etherscan.
type TetherERC20Adapter struct {
	APIKey     string
	BaseURL    string
	Contract   string
	HTTPClient *http.Client
}

func (a *TetherERC20Adapter) Fetch(ctx context.Context, address string) (domain.BalanceReport, error) {
	if a.APIKey == "" {
		return domain.BalanceReport{}, &LookupError{Kind: MissingCredential, Msg: "etherscan api key is not set"}
	}
	base := a.BaseURL
	if base == "" {
		base = DefaultEtherscanAPI
	}
	contract := a.Contract
	if contract == "" {
		contract = TetherERC20Contract
	}

	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "tokenbalance")
	q.Set("contractaddress", contract)
	q.Set("address", address)
	q.Set("tag", "latest")
	q.Set("apikey", a.APIKey)

	body, status, err := doGet(ctx, a.HTTPClient, base+"?"+q.Encode(), nil)
	if err != nil {
		return domain.BalanceReport{}, err
	}
	if status != http.StatusOK {
		return domain.BalanceReport{}, &LookupError{Kind: ProviderUnavailable, Status: status}
	}

	var out etherscanResp
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: err.Error()}
	}
	if out.Status != "1" {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: out.Message}
	}

	minor, err := decimal.NewFromString(out.Result)
	if err != nil {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: "bad token balance value: " + out.Result}
	}

	return domain.BalanceReport{
		Coin:    domain.USDTERC20,
		Address: address,
		// у USDT 6 десятичных знаков
		Balance: minor.Shift(-6),
	}, nil
}

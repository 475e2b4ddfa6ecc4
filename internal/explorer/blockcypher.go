package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/domain"
)

// DefaultBlockCypherAPI — публичный базовый URL BlockCypher.
const DefaultBlockCypherAPI = "https://api.blockcypher.com/v1"

// BlockCypherAdapter обслуживает UTXO-сети (btc/ltc/doge): один и тот же
// эндпоинт, отличается только сегмент сети в пути. Суммы приходят в
// сатоши-подобных единицах и делятся на 1e8.
type BlockCypherAdapter struct {
	Coin       domain.CoinType
	Network    string // btc | ltc | doge
	BaseURL    string
	HTTPClient *http.Client
}

type blockcypherAddrResp struct {
	Balance       int64 `json:"balance"`
	TotalReceived int64 `json:"total_received"`
	TotalSent     int64 `json:"total_sent"`
	NTx           int   `json:"n_tx"`
}

func (a *BlockCypherAdapter) Fetch(ctx context.Context, address string) (domain.BalanceReport, error) {
	base := a.BaseURL
	if base == "" {
		base = DefaultBlockCypherAPI
	}
	url := fmt.Sprintf("%s/%s/main/addrs/%s", base, a.Network, address)

	body, status, err := doGet(ctx, a.HTTPClient, url, nil)
	if err != nil {
		return domain.BalanceReport{}, err
	}
	if status != http.StatusOK {
		return domain.BalanceReport{}, &LookupError{Kind: ProviderUnavailable, Status: status}
	}

	var out blockcypherAddrResp
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.BalanceReport{}, &LookupError{Kind: MalformedResponse, Msg: err.Error()}
	}

	return domain.BalanceReport{
		Coin:          a.Coin,
		Address:       address,
		Balance:       decimal.New(out.Balance, -8),
		TotalReceived: decimal.New(out.TotalReceived, -8),
		TotalSent:     decimal.New(out.TotalSent, -8),
		TxCount:       out.NTx,
		HasTxStats:    true,
	}, nil
}

package explorer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/domain"
)

// FailureKind разделяет типы неудачных запросов к эксплорерам.
type FailureKind int

const (
	// ProviderUnavailable — транспортная ошибка или не-2xx ответ.
	ProviderUnavailable FailureKind = iota
	// MissingCredential — адаптеру нужен API-ключ, а он не задан.
	MissingCredential
	// MalformedResponse — тело не распарсилось либо провайдер вернул
	// собственную ошибку в payload (status != "1" у etherscan).
	MalformedResponse
	// NoDataFound — провайдер ответил успешно, но данных по адресу нет.
	NoDataFound
)

func (k FailureKind) String() string {
	switch k {
	case ProviderUnavailable:
		return "provider_unavailable"
	case MissingCredential:
		return "missing_credential"
	case MalformedResponse:
		return "malformed_response"
	case NoDataFound:
		return "no_data_found"
	}
	return "unknown"
}

// LookupError — типизированная ошибка адаптера. Детали (статус, текст
// провайдера) уходят только в лог, пользователю показывается общий текст.
type LookupError struct {
	Kind   FailureKind
	Status int    // HTTP-статус для ProviderUnavailable, иначе 0
	Msg    string // текст ошибки провайдера/транспорта, опционально
}

func (e *LookupError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: http %d %s", e.Kind, e.Status, e.Msg)
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return e.Kind.String()
}

// Adapter выполняет один запрос баланса для конкретной сети.
// Реализации не держат состояния между вызовами.
type Adapter interface {
	Fetch(ctx context.Context, address string) (domain.BalanceReport, error)
}

// Credentials — ключи внешних API. Пустое значение деградирует только свой
// адаптер (MissingCredential для etherscan, меньшие лимиты для trongrid).
type Credentials struct {
	EtherscanKey   string
	BlockcypherKey string // зарезервирован, текущие адаптеры не требуют
	TrongridKey    string
}

// Registry хранит по одному адаптеру на каждый CoinType.
type Registry struct {
	btc  *BlockCypherAdapter
	ltc  *BlockCypherAdapter
	doge *BlockCypherAdapter
	eth  *EthereumAdapter
	trx  *TronAdapter
	ut   *TetherTRC20Adapter
	ue   *TetherERC20Adapter
}

// NewRegistry собирает полный набор адаптеров с общим HTTP-клиентом.
// client == nil означает клиент с таймаутом по умолчанию.
func NewRegistry(creds Credentials, client *http.Client) *Registry {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Registry{
		btc:  &BlockCypherAdapter{Coin: domain.Bitcoin, Network: "btc", HTTPClient: client},
		ltc:  &BlockCypherAdapter{Coin: domain.Litecoin, Network: "ltc", HTTPClient: client},
		doge: &BlockCypherAdapter{Coin: domain.Dogecoin, Network: "doge", HTTPClient: client},
		eth:  &EthereumAdapter{APIKey: creds.EtherscanKey, HTTPClient: client},
		trx:  &TronAdapter{APIKey: creds.TrongridKey, HTTPClient: client},
		ut:   &TetherTRC20Adapter{APIKey: creds.TrongridKey, HTTPClient: client},
		ue:   &TetherERC20Adapter{APIKey: creds.EtherscanKey, HTTPClient: client},
	}
}

// ForCoin выбирает адаптер. switch по всем значениям CoinType, чтобы при
// добавлении новой монеты забытый адаптер был виден сразу.
func (r *Registry) ForCoin(c domain.CoinType) (Adapter, bool) {
	switch c {
	case domain.Bitcoin:
		return r.btc, true
	case domain.Litecoin:
		return r.ltc, true
	case domain.Dogecoin:
		return r.doge, true
	case domain.Ethereum:
		return r.eth, true
	case domain.Tron:
		return r.trx, true
	case domain.USDTTRC20:
		return r.ut, true
	case domain.USDTERC20:
		return r.ue, true
	}
	return nil, false
}

// doGet выполняет один GET и возвращает тело вместе с HTTP-статусом.
// Транспортные ошибки (DNS, connection refused, таймаут клиента) сразу
// оборачиваются в LookupError.
func doGet(ctx context.Context, c *http.Client, url string, header http.Header) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &LookupError{Kind: ProviderUnavailable, Msg: err.Error()}
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, 0, &LookupError{Kind: ProviderUnavailable, Msg: err.Error()}
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, 0, &LookupError{Kind: ProviderUnavailable, Msg: err.Error()}
	}
	return b, resp.StatusCode, nil
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/classify"
	"github.com/Her0x27/MatrixBotCheckerTrans/internal/domain"
	"github.com/Her0x27/MatrixBotCheckerTrans/internal/explorer"
	"github.com/Her0x27/MatrixBotCheckerTrans/internal/i18n"
	"github.com/Her0x27/MatrixBotCheckerTrans/internal/prefs"
)

// Sender — минимум, который нужен обработчику от транспорта.
type Sender interface {
	SendText(ctx context.Context, roomID id.RoomID, text string) error
}

// AdapterRegistry отдаёт адаптер для монеты. Реализуется *explorer.Registry.
type AdapterRegistry interface {
	ForCoin(c domain.CoinType) (explorer.Adapter, bool)
}

type Handler struct {
	sender Sender
	reg    AdapterRegistry
	prefs  *prefs.Store
	self   id.UserID
	log    *zap.Logger
}

func NewHandler(sender Sender, reg AdapterRegistry, p *prefs.Store, self id.UserID, log *zap.Logger) *Handler {
	return &Handler{sender: sender, reg: reg, prefs: p, self: self, log: log}
}

// HandleMessage обрабатывает одно room-событие: команда смены языка,
// криптоадрес либо отказ. Ошибки адаптеров гасятся внутри handleAddress и
// наружу не выходят.
func (h *Handler) HandleMessage(ctx context.Context, evt *event.Event) {
	msg := evt.Content.AsMessage()
	if msg == nil || msg.MsgType != event.MsgText {
		return
	}
	// свои сообщения игнорируем
	if evt.Sender == h.self {
		return
	}

	text := strings.TrimSpace(msg.Body)
	if text == "" {
		return
	}
	sender := evt.Sender.String()

	switch strings.ToLower(text) {
	case "/ru", "/en":
		h.handleLanguage(ctx, evt.RoomID, sender, strings.TrimPrefix(strings.ToLower(text), "/"))
		return
	}

	coin, ok := classify.Detect(text)
	if !ok {
		h.reply(ctx, evt.RoomID, i18n.T(h.prefs.Language(sender), i18n.KeyInvalidAddress))
		return
	}
	h.handleAddress(ctx, evt.RoomID, text, coin, sender)
}

func (h *Handler) handleLanguage(ctx context.Context, roomID id.RoomID, sender, code string) {
	lang, ok := i18n.Parse(code)
	if !ok {
		return
	}
	h.prefs.SetLanguage(sender, lang)
	h.reply(ctx, roomID, i18n.T(lang, i18n.KeyLanguageChanged))
}

// handleAddress — цикл запрос/ответ для одного адреса: уведомление
// «проверяю…», вызов адаптера, отчёт либо общий текст ошибки. Детали сбоя
// (HTTP-статус, текст провайдера) остаются только в логе.
func (h *Handler) handleAddress(ctx context.Context, roomID id.RoomID, address string, coin domain.CoinType, sender string) {
	lang := h.prefs.Language(sender)
	h.reply(ctx, roomID, i18n.Checking(lang, address, coin))

	adapter, ok := h.reg.ForCoin(coin)
	if !ok {
		h.reply(ctx, roomID, i18n.T(lang, i18n.KeyUnsupported))
		return
	}

	rep, err := fetchSafe(ctx, adapter, address)
	if err != nil {
		h.logFailure(address, coin, err)
		h.reply(ctx, roomID, i18n.T(lang, i18n.KeyError))
		return
	}
	h.reply(ctx, roomID, rep.Render())
}

// fetchSafe изолирует вызов адаптера: его паника превращается в обычную
// ошибку, цикл обработки сообщений продолжает жить.
func fetchSafe(ctx context.Context, a explorer.Adapter, address string) (rep domain.BalanceReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("adapter panic: %v", r)
		}
	}()
	return a.Fetch(ctx, address)
}

func (h *Handler) logFailure(address string, coin domain.CoinType, err error) {
	fields := []zap.Field{
		zap.String("address", address),
		zap.String("coin", string(coin)),
		zap.Error(err),
	}
	var le *explorer.LookupError
	if errors.As(err, &le) {
		fields = append(fields, zap.String("kind", le.Kind.String()))
		if le.Status != 0 {
			fields = append(fields, zap.Int("http_status", le.Status))
		}
	}
	h.log.Error("address lookup failed", fields...)
}

func (h *Handler) reply(ctx context.Context, roomID id.RoomID, text string) {
	if err := h.sender.SendText(ctx, roomID, text); err != nil {
		h.log.Error("send reply", zap.String("room_id", roomID.String()), zap.Error(err))
	}
}

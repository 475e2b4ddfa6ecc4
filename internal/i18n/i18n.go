package i18n

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/domain"
)

// Lang — язык ответов бота.
type Lang string

const (
	LangRU Lang = "ru"
	LangEN Lang = "en"
)

// DefaultLang — язык по умолчанию для пользователей без настройки.
const DefaultLang = LangRU

var langs = []Lang{LangRU, LangEN}

var matcher = language.NewMatcher([]language.Tag{language.Russian, language.English})

// Parse нормализует языковой тег ("en", "EN", "en-US") в поддерживаемый Lang.
func Parse(s string) (Lang, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLang, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return DefaultLang, false
	}
	return langs[idx], true
}

const (
	KeyChecking        = "checking"
	KeyInvalidAddress  = "invalid_address"
	KeyError           = "error"
	KeyLanguageChanged = "language_changed"
	KeyUnsupported     = "unsupported_crypto"
)

var messages = map[Lang]map[string]string{
	LangRU: {
		KeyChecking:        "Проверяю адрес %s (%s)...",
		KeyInvalidAddress:  "Не удалось распознать криптовалютный адрес. Отправьте адрес одной строкой.",
		KeyError:           "Произошла ошибка при проверке адреса. Попробуйте позже.",
		KeyLanguageChanged: "Язык переключён на русский.",
		KeyUnsupported:     "Эта криптовалюта пока не поддерживается.",
	},
	LangEN: {
		KeyChecking:        "Checking address %s (%s)...",
		KeyInvalidAddress:  "Could not identify a cryptocurrency address. Send the address as a single line.",
		KeyError:           "An error occurred while checking the address. Please try again later.",
		KeyLanguageChanged: "Language switched to English.",
		KeyUnsupported:     "This cryptocurrency is not supported yet.",
	},
}

var coinNames = map[Lang]map[domain.CoinType]string{
	LangRU: {
		domain.Bitcoin:   "Биткоин",
		domain.Ethereum:  "Эфириум",
		domain.Litecoin:  "Лайткоин",
		domain.Tron:      "TRON",
		domain.USDTTRC20: "USDT (TRC20)",
		domain.USDTERC20: "USDT (ERC20)",
		domain.Dogecoin:  "Догикоин",
	},
	LangEN: {
		domain.Bitcoin:   "Bitcoin",
		domain.Ethereum:  "Ethereum",
		domain.Litecoin:  "Litecoin",
		domain.Tron:      "TRON",
		domain.USDTTRC20: "USDT (TRC20)",
		domain.USDTERC20: "USDT (ERC20)",
		domain.Dogecoin:  "Dogecoin",
	},
}

// T возвращает строку каталога. Неизвестный язык падает на русский,
// как и в исходных локалях (fallback: ru).
func T(l Lang, key string) string {
	if m, ok := messages[l]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages[DefaultLang][key]
}

// CoinLabel — локализованное название монеты.
func CoinLabel(l Lang, c domain.CoinType) string {
	if m, ok := coinNames[l]; ok {
		if s, ok := m[c]; ok {
			return s
		}
	}
	if s, ok := coinNames[DefaultLang][c]; ok {
		return s
	}
	return c.Label()
}

// Checking — уведомление «проверяю адрес …», отправляется до запроса.
func Checking(l Lang, address string, c domain.CoinType) string {
	return fmt.Sprintf(T(l, KeyChecking), address, CoinLabel(l, c))
}

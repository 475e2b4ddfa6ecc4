package classify

import (
	"regexp"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/domain"
)

type rule struct {
	coin domain.CoinType
	re   *regexp.Regexp
}

// Порядок правил фиксирован. ethereum и usdt_erc20 (как и tron с usdt_trc20)
// синтаксически неразличимы, поэтому адрес всегда классифицируется как
// базовая сеть — токен-варианты остаются в таблице на случай явного выбора.
var rules = []rule{
	{domain.Bitcoin, regexp.MustCompile(`^(bc1|[13])[a-zA-HJ-NP-Z0-9]{25,39}$`)},
	{domain.Ethereum, regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)},
	{domain.Litecoin, regexp.MustCompile(`^[LM3][a-km-zA-HJ-NP-Z1-9]{26,33}$`)},
	{domain.Tron, regexp.MustCompile(`^T[a-zA-Z0-9]{33}$`)},
	{domain.USDTTRC20, regexp.MustCompile(`^T[a-zA-Z0-9]{33}$`)},
	{domain.USDTERC20, regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)},
	{domain.Dogecoin, regexp.MustCompile(`^D{1}[5-9A-HJ-NP-U]{1}[1-9A-HJ-NP-Za-km-z]{32}$`)},
}

// Detect определяет тип криптовалюты по адресу. Возвращает false, если ни
// одно правило не подошло (пустая строка не подходит ни под одно).
func Detect(candidate string) (domain.CoinType, bool) {
	for _, r := range rules {
		if r.re.MatchString(candidate) {
			return r.coin, true
		}
	}
	return "", false
}

package refine

import (
	"strings"
	"time"

	"github.com/billfeed/billfeed/internal/llm"
	"github.com/billfeed/billfeed/internal/repository"
)

// parseDate accepts YYYY-MM-DD; anything else becomes nil rather than
// failing the whole file over one malformed cell.
func parseDate(s string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// amount tolerates "", "-", "null" and unparseable noise, all of which
// collapse to nil.
func amount(f llm.FlexString) *float64 {
	v, err := f.Float()
	if err != nil {
		return nil
	}
	return v
}

// CleanseBill normalizes one structured row from the convert pass into
// persistable shape.
func CleanseBill(b llm.BillFields) repository.BillParams {
	return repository.BillParams{
		Bank:          b.Bank,
		TradeDate:     parseDate(b.TradeDate),
		RecordDate:    parseDate(b.RecordDate),
		Description:   b.Description,
		AmountCNY:     amount(b.AmountCNY),
		CardLast4:     last4(b.CardLast4),
		AmountForeign: amount(b.AmountForeign),
		Currency:      dropPlaceholder(b.Currency),
		RawLine:       b.RawLine,
	}
}

// dropPlaceholder collapses the markers the curate pass uses for missing
// fields so validators downstream never see them.
func dropPlaceholder(s string) string {
	if s == "-" || s == "null" {
		return ""
	}
	return s
}

// last4 salvages the trailing four card digits from noisy values like
// "*1234" or "尾号9876". Values without four digits are dropped entirely;
// the bill schema rejects anything else.
func last4(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 4 {
		return ""
	}
	return d[len(d)-4:]
}

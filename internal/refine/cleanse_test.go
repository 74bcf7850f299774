package refine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfeed/billfeed/internal/llm"
)

func TestCleanseBill(t *testing.T) {
	in := llm.BillFields{
		Bank:          "CMB",
		TradeDate:     "2026-03-01",
		RecordDate:    "03/02/2026", // wrong layout, must not fail the row
		Description:   "GROCERY STORE",
		AmountCNY:     "128.40",
		CardLast4:     "1234",
		AmountForeign: "-",
		Currency:      "",
		RawLine:       "[CMB,2026-03-01,-,GROCERY STORE,128.40,1234,-,-]",
	}

	out := CleanseBill(in)

	require.NotNil(t, out.TradeDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *out.TradeDate)
	assert.Nil(t, out.RecordDate)

	require.NotNil(t, out.AmountCNY)
	assert.InDelta(t, 128.40, *out.AmountCNY, 1e-9)
	assert.Nil(t, out.AmountForeign)

	assert.Equal(t, "1234", out.CardLast4)
	assert.Equal(t, in.RawLine, out.RawLine)
}

func TestCleanseBillPlaceholders(t *testing.T) {
	out := CleanseBill(llm.BillFields{
		TradeDate:     "-",
		RecordDate:    "",
		AmountCNY:     "null",
		AmountForeign: "not-a-number",
		CardLast4:     "null",
	})

	assert.Nil(t, out.TradeDate)
	assert.Nil(t, out.RecordDate)
	assert.Nil(t, out.AmountCNY)
	assert.Nil(t, out.AmountForeign)
	assert.Equal(t, "", out.CardLast4)
}

func TestCleanseBillCardLast4(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234", "1234"},
		{"*1234", "1234"},
		{"尾号9876", "9876"},
		{"card 5678", "5678"},
		{"-", ""},
		{"12", ""},
		{"", ""},
	}
	for _, tc := range cases {
		out := CleanseBill(llm.BillFields{CardLast4: tc.in})
		assert.Equal(t, tc.want, out.CardLast4, "input %q", tc.in)
	}
}

package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringUnmarshal(t *testing.T) {
	var doc struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
		D FlexString `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a": "12.50", "b": 99.9, "c": null, "d": 100}`), &doc)
	require.NoError(t, err)

	assert.Equal(t, "12.50", doc.A.String())
	assert.Equal(t, "99.9", doc.B.String())
	assert.Equal(t, "", doc.C.String())
	assert.Equal(t, "100", doc.D.String())
}

func TestFlexStringFloat(t *testing.T) {
	cases := []struct {
		in      string
		want    *float64
		wantErr bool
	}{
		{"12.50", ptr(12.50), false},
		{" 7 ", ptr(7.0), false},
		{"", nil, false},
		{"-", nil, false},
		{"null", nil, false},
		{"NULL", nil, false},
		{"abc", nil, true},
	}
	for _, tc := range cases {
		got, err := FlexString(tc.in).Float()
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		if tc.want == nil {
			assert.Nil(t, got, tc.in)
		} else {
			require.NotNil(t, got, tc.in)
			assert.InDelta(t, *tc.want, *got, 1e-9, tc.in)
		}
	}
}

func TestDecodeBills(t *testing.T) {
	raw := "```json\n" + `{
	  "bills": [
	    {
	      "bank": "CMB",
	      "trade_date": "2026-03-01",
	      "record_date": "2026-03-02",
	      "description": "GROCERY STORE",
	      "amount_cny": "128.40",
	      "card_last4": "1234",
	      "amount_foreign": null,
	      "currency": "",
	      "raw_line": "[CMB,2026-03-01,2026-03-02,GROCERY STORE,128.40,1234,-,-]"
	    },
	    {
	      "bank": "BOC",
	      "trade_date": "2026-03-05",
	      "record_date": null,
	      "description": "HOTEL",
	      "amount_cny": 2101.77,
	      "card_last4": "-",
	      "amount_foreign": 289.99,
	      "currency": "USD",
	      "raw_line": "[BOC,2026-03-05,-,HOTEL,2101.77,-,289.99,USD]"
	    }
	  ]
	}` + "\n```"

	bills, err := DecodeBills(raw)
	require.NoError(t, err)
	require.Len(t, bills, 2)

	assert.Equal(t, "CMB", bills[0].Bank)
	assert.Equal(t, "128.40", bills[0].AmountCNY.String())
	assert.Equal(t, "", bills[0].AmountForeign.String())

	assert.Equal(t, "2101.77", bills[1].AmountCNY.String())
	assert.Equal(t, "289.99", bills[1].AmountForeign.String())
	assert.Equal(t, "USD", bills[1].Currency)
}

func TestDecodeBillsEmptyArray(t *testing.T) {
	bills, err := DecodeBills(`{"bills": []}`)
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestDecodeBillsRejectsMalformed(t *testing.T) {
	_, err := DecodeBills("not json at all")
	assert.Error(t, err)

	// valid json, wrong shape
	_, err = DecodeBills(`{"records": []}`)
	assert.Error(t, err)

	_, err = DecodeBills(`{"bills": "nope"}`)
	assert.Error(t, err)
}

func ptr(v float64) *float64 { return &v }

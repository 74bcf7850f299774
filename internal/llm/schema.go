package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// billsSchema validates the convert-pass output before anything is persisted.
// Amount fields accept a number, a numeric string, an empty string or null,
// since providers are inconsistent about which they emit.
const billsSchema = `{
  "type": "object",
  "required": ["bills"],
  "properties": {
    "bills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "bank":           {"type": ["string", "null"], "maxLength": 50},
          "trade_date":     {"type": ["string", "null"]},
          "record_date":    {"type": ["string", "null"]},
          "description":    {"type": ["string", "null"]},
          "amount_cny":     {"type": ["number", "string", "null"]},
          "card_last4":     {"type": ["string", "null"]},
          "amount_foreign": {"type": ["number", "string", "null"]},
          "currency":       {"type": ["string", "null"], "maxLength": 10},
          "raw_line":       {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var compiledBillsSchema = jsonschema.MustCompileString("bills.json", billsSchema)

// FlexString decodes a JSON string, number or null into a plain string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Float returns the numeric value, or nil for empty and placeholder values.
func (f FlexString) Float() (*float64, error) {
	s := strings.TrimSpace(string(f))
	if s == "" || s == "-" || strings.EqualFold(s, "null") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return &v, nil
}

// BillFields is one structured bill row as emitted by the convert pass.
type BillFields struct {
	Bank          string     `json:"bank"`
	TradeDate     string     `json:"trade_date"`
	RecordDate    string     `json:"record_date"`
	Description   string     `json:"description"`
	AmountCNY     FlexString `json:"amount_cny"`
	CardLast4     string     `json:"card_last4"`
	AmountForeign FlexString `json:"amount_foreign"`
	Currency      string     `json:"currency"`
	RawLine       string     `json:"raw_line"`
}

// DecodeBills strips fences, validates against the bills schema and decodes.
func DecodeBills(raw string) ([]BillFields, error) {
	cleaned := StripCodeFences(raw)

	var generic any
	if err := json.Unmarshal([]byte(cleaned), &generic); err != nil {
		return nil, fmt.Errorf("decoding bills json: %w", err)
	}
	if err := compiledBillsSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("bills json schema: %w", err)
	}

	var doc struct {
		Bills []BillFields `json:"bills"`
	}
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling bills: %w", err)
	}
	return doc.Bills, nil
}

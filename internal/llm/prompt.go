package llm

import "fmt"

// RowFormat is the single-line record layout the curate pass emits and the
// convert pass consumes.
const RowFormat = "[bank,trade_date,record_date,description,amount_cny,card_last4,amount_foreign,currency]"

// NoBills is the exact marker the curate pass returns when the document
// contains no qualifying bill lines.
const NoBills = "None"

// Curate pass: raw document text -> one curated record per line.
const (
	CurateSystem = "You are a financial statement analyst. You extract key " +
		"bill information from raw statement text. You must follow the " +
		"requested output format exactly and add no commentary."
	CurateTemperature float32 = 0.3
	CurateMaxTokens           = 2000
)

// Convert pass: curated lines -> strict JSON.
const (
	ConvertSystem = "You are a data format conversion expert. You turn " +
		"plain-text records into structured JSON. You must return pure JSON " +
		"with no explanation and no markdown fences."
	ConvertTemperature float32 = 0.1
	ConvertMaxTokens           = 4000
)

// BuildCuratePrompt asks for card-statement lines, excluding third-party
// wallet passthrough entries, one record per line in RowFormat.
func BuildCuratePrompt(content string) string {
	return fmt.Sprintf(`Analyze the following statement content and extract the qualifying bill lines.

Extraction rules:
1. Extract every entry that is not an Alipay consumption.
2. Extract every entry that is not a WeChat Pay consumption.
3. An entry qualifies when it satisfies both conditions above.

Output format:
- One record per line, exactly in this layout: %s
- Field meaning:
  * bank: issuing bank name
  * trade_date: transaction date (YYYY-MM-DD)
  * record_date: bank posting date (YYYY-MM-DD)
  * description: transaction summary
  * amount_cny: amount in CNY; use "-" when the entry is foreign-currency only
  * card_last4: last four digits of the card number
  * amount_foreign: original amount with its currency symbol, e.g. $99.99
  * currency: posting currency code, e.g. CNY, USD, EUR

Important:
1. amount_cny must be filled when known; foreign entries without a CNY amount use "-".
2. amount_foreign keeps the original currency and amount.
3. Use "-" for any field with no information.
4. If no entries qualify, return "%s".

Statement content:
%s

Output strictly in the requested format with no extra text.`, RowFormat, NoBills, content)
}

// BuildConvertPrompt turns curated lines into the bills JSON object.
func BuildConvertPrompt(refined string) string {
	return fmt.Sprintf(`Convert the following bill records to JSON.

Input format:
- One bill record per line
- Layout: %s
- "-" means the field is empty

Output requirements:
1. Output pure JSON with no markdown fences.
2. Return an object with a "bills" array.
3. Each bill has these fields:
   - bank: string, issuing bank
   - trade_date: string, YYYY-MM-DD
   - record_date: string, YYYY-MM-DD
   - description: string, transaction summary
   - amount_cny: decimal amount in CNY
   - card_last4: string, last four card digits
   - amount_foreign: decimal amount in the original currency
   - currency: string currency code such as "USD" or "CNY"
   - raw_line: string, the untouched input line
4. Skip every non-data line (headers, commentary, "%s").
5. When a field value is "-", use an empty string "".

Bill records:
%s

Example output:
{"bills": [{"bank": "CMB", "trade_date": "2024-11-15", "record_date": "2024-11-16", "description": "AMAZON PURCHASE", "amount_cny": "", "card_last4": "1234", "amount_foreign": 99.99, "currency": "USD", "raw_line": %q}]}`, RowFormat, NoBills, refined, RowFormat)
}

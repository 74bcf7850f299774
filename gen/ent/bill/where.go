// Code generated by ent, DO NOT EDIT.

package bill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldID, id))
}

// FileUploadID applies equality check predicate on the "file_upload_id" field. It's identical to FileUploadIDEQ.
func FileUploadID(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldFileUploadID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldWorkspaceID, v))
}

// Bank applies equality check predicate on the "bank" field. It's identical to BankEQ.
func Bank(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldBank, v))
}

// TradeDate applies equality check predicate on the "trade_date" field. It's identical to TradeDateEQ.
func TradeDate(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldTradeDate, v))
}

// RecordDate applies equality check predicate on the "record_date" field. It's identical to RecordDateEQ.
func RecordDate(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecordDate, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDescription, v))
}

// AmountCny applies equality check predicate on the "amount_cny" field. It's identical to AmountCnyEQ.
func AmountCny(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmountCny, v))
}

// CardLast4 applies equality check predicate on the "card_last4" field. It's identical to CardLast4EQ.
func CardLast4(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCardLast4, v))
}

// AmountForeign applies equality check predicate on the "amount_foreign" field. It's identical to AmountForeignEQ.
func AmountForeign(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmountForeign, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCurrency, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldStatus, v))
}

// RawLine applies equality check predicate on the "raw_line" field. It's identical to RawLineEQ.
func RawLine(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRawLine, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsDeleted, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// FileUploadIDEQ applies the EQ predicate on the "file_upload_id" field.
func FileUploadIDEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldFileUploadID, v))
}

// FileUploadIDNEQ applies the NEQ predicate on the "file_upload_id" field.
func FileUploadIDNEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldFileUploadID, v))
}

// FileUploadIDIn applies the In predicate on the "file_upload_id" field.
func FileUploadIDIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldFileUploadID, vs...))
}

// FileUploadIDNotIn applies the NotIn predicate on the "file_upload_id" field.
func FileUploadIDNotIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldFileUploadID, vs...))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v uuid.UUID) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldWorkspaceID, v))
}

// BankEQ applies the EQ predicate on the "bank" field.
func BankEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldBank, v))
}

// BankNEQ applies the NEQ predicate on the "bank" field.
func BankNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldBank, v))
}

// BankIn applies the In predicate on the "bank" field.
func BankIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldBank, vs...))
}

// BankNotIn applies the NotIn predicate on the "bank" field.
func BankNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldBank, vs...))
}

// BankGT applies the GT predicate on the "bank" field.
func BankGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldBank, v))
}

// BankGTE applies the GTE predicate on the "bank" field.
func BankGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldBank, v))
}

// BankLT applies the LT predicate on the "bank" field.
func BankLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldBank, v))
}

// BankLTE applies the LTE predicate on the "bank" field.
func BankLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldBank, v))
}

// BankContains applies the Contains predicate on the "bank" field.
func BankContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldBank, v))
}

// BankHasPrefix applies the HasPrefix predicate on the "bank" field.
func BankHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldBank, v))
}

// BankHasSuffix applies the HasSuffix predicate on the "bank" field.
func BankHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldBank, v))
}

// BankIsNil applies the IsNil predicate on the "bank" field.
func BankIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldBank))
}

// BankNotNil applies the NotNil predicate on the "bank" field.
func BankNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldBank))
}

// BankEqualFold applies the EqualFold predicate on the "bank" field.
func BankEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldBank, v))
}

// BankContainsFold applies the ContainsFold predicate on the "bank" field.
func BankContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldBank, v))
}

// TradeDateEQ applies the EQ predicate on the "trade_date" field.
func TradeDateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldTradeDate, v))
}

// TradeDateNEQ applies the NEQ predicate on the "trade_date" field.
func TradeDateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldTradeDate, v))
}

// TradeDateIn applies the In predicate on the "trade_date" field.
func TradeDateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldTradeDate, vs...))
}

// TradeDateNotIn applies the NotIn predicate on the "trade_date" field.
func TradeDateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldTradeDate, vs...))
}

// TradeDateGT applies the GT predicate on the "trade_date" field.
func TradeDateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldTradeDate, v))
}

// TradeDateGTE applies the GTE predicate on the "trade_date" field.
func TradeDateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldTradeDate, v))
}

// TradeDateLT applies the LT predicate on the "trade_date" field.
func TradeDateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldTradeDate, v))
}

// TradeDateLTE applies the LTE predicate on the "trade_date" field.
func TradeDateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldTradeDate, v))
}

// TradeDateIsNil applies the IsNil predicate on the "trade_date" field.
func TradeDateIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldTradeDate))
}

// TradeDateNotNil applies the NotNil predicate on the "trade_date" field.
func TradeDateNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldTradeDate))
}

// RecordDateEQ applies the EQ predicate on the "record_date" field.
func RecordDateEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRecordDate, v))
}

// RecordDateNEQ applies the NEQ predicate on the "record_date" field.
func RecordDateNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldRecordDate, v))
}

// RecordDateIn applies the In predicate on the "record_date" field.
func RecordDateIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldRecordDate, vs...))
}

// RecordDateNotIn applies the NotIn predicate on the "record_date" field.
func RecordDateNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldRecordDate, vs...))
}

// RecordDateGT applies the GT predicate on the "record_date" field.
func RecordDateGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldRecordDate, v))
}

// RecordDateGTE applies the GTE predicate on the "record_date" field.
func RecordDateGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldRecordDate, v))
}

// RecordDateLT applies the LT predicate on the "record_date" field.
func RecordDateLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldRecordDate, v))
}

// RecordDateLTE applies the LTE predicate on the "record_date" field.
func RecordDateLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldRecordDate, v))
}

// RecordDateIsNil applies the IsNil predicate on the "record_date" field.
func RecordDateIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldRecordDate))
}

// RecordDateNotNil applies the NotNil predicate on the "record_date" field.
func RecordDateNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldRecordDate))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldDescription, v))
}

// AmountCnyEQ applies the EQ predicate on the "amount_cny" field.
func AmountCnyEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmountCny, v))
}

// AmountCnyNEQ applies the NEQ predicate on the "amount_cny" field.
func AmountCnyNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAmountCny, v))
}

// AmountCnyIn applies the In predicate on the "amount_cny" field.
func AmountCnyIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldAmountCny, vs...))
}

// AmountCnyNotIn applies the NotIn predicate on the "amount_cny" field.
func AmountCnyNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldAmountCny, vs...))
}

// AmountCnyGT applies the GT predicate on the "amount_cny" field.
func AmountCnyGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldAmountCny, v))
}

// AmountCnyGTE applies the GTE predicate on the "amount_cny" field.
func AmountCnyGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldAmountCny, v))
}

// AmountCnyLT applies the LT predicate on the "amount_cny" field.
func AmountCnyLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldAmountCny, v))
}

// AmountCnyLTE applies the LTE predicate on the "amount_cny" field.
func AmountCnyLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldAmountCny, v))
}

// AmountCnyIsNil applies the IsNil predicate on the "amount_cny" field.
func AmountCnyIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldAmountCny))
}

// AmountCnyNotNil applies the NotNil predicate on the "amount_cny" field.
func AmountCnyNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldAmountCny))
}

// CardLast4EQ applies the EQ predicate on the "card_last4" field.
func CardLast4EQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCardLast4, v))
}

// CardLast4NEQ applies the NEQ predicate on the "card_last4" field.
func CardLast4NEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCardLast4, v))
}

// CardLast4In applies the In predicate on the "card_last4" field.
func CardLast4In(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCardLast4, vs...))
}

// CardLast4NotIn applies the NotIn predicate on the "card_last4" field.
func CardLast4NotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCardLast4, vs...))
}

// CardLast4GT applies the GT predicate on the "card_last4" field.
func CardLast4GT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCardLast4, v))
}

// CardLast4GTE applies the GTE predicate on the "card_last4" field.
func CardLast4GTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCardLast4, v))
}

// CardLast4LT applies the LT predicate on the "card_last4" field.
func CardLast4LT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCardLast4, v))
}

// CardLast4LTE applies the LTE predicate on the "card_last4" field.
func CardLast4LTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCardLast4, v))
}

// CardLast4Contains applies the Contains predicate on the "card_last4" field.
func CardLast4Contains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldCardLast4, v))
}

// CardLast4HasPrefix applies the HasPrefix predicate on the "card_last4" field.
func CardLast4HasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldCardLast4, v))
}

// CardLast4HasSuffix applies the HasSuffix predicate on the "card_last4" field.
func CardLast4HasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldCardLast4, v))
}

// CardLast4IsNil applies the IsNil predicate on the "card_last4" field.
func CardLast4IsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldCardLast4))
}

// CardLast4NotNil applies the NotNil predicate on the "card_last4" field.
func CardLast4NotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldCardLast4))
}

// CardLast4EqualFold applies the EqualFold predicate on the "card_last4" field.
func CardLast4EqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldCardLast4, v))
}

// CardLast4ContainsFold applies the ContainsFold predicate on the "card_last4" field.
func CardLast4ContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldCardLast4, v))
}

// AmountForeignEQ applies the EQ predicate on the "amount_foreign" field.
func AmountForeignEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldAmountForeign, v))
}

// AmountForeignNEQ applies the NEQ predicate on the "amount_foreign" field.
func AmountForeignNEQ(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldAmountForeign, v))
}

// AmountForeignIn applies the In predicate on the "amount_foreign" field.
func AmountForeignIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldAmountForeign, vs...))
}

// AmountForeignNotIn applies the NotIn predicate on the "amount_foreign" field.
func AmountForeignNotIn(vs ...float64) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldAmountForeign, vs...))
}

// AmountForeignGT applies the GT predicate on the "amount_foreign" field.
func AmountForeignGT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldAmountForeign, v))
}

// AmountForeignGTE applies the GTE predicate on the "amount_foreign" field.
func AmountForeignGTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldAmountForeign, v))
}

// AmountForeignLT applies the LT predicate on the "amount_foreign" field.
func AmountForeignLT(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldAmountForeign, v))
}

// AmountForeignLTE applies the LTE predicate on the "amount_foreign" field.
func AmountForeignLTE(v float64) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldAmountForeign, v))
}

// AmountForeignIsNil applies the IsNil predicate on the "amount_foreign" field.
func AmountForeignIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldAmountForeign))
}

// AmountForeignNotNil applies the NotNil predicate on the "amount_foreign" field.
func AmountForeignNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldAmountForeign))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyIsNil applies the IsNil predicate on the "currency" field.
func CurrencyIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldCurrency))
}

// CurrencyNotNil applies the NotNil predicate on the "currency" field.
func CurrencyNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldCurrency))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldCurrency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldStatus, v))
}

// RawLineEQ applies the EQ predicate on the "raw_line" field.
func RawLineEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldRawLine, v))
}

// RawLineNEQ applies the NEQ predicate on the "raw_line" field.
func RawLineNEQ(v string) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldRawLine, v))
}

// RawLineIn applies the In predicate on the "raw_line" field.
func RawLineIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldRawLine, vs...))
}

// RawLineNotIn applies the NotIn predicate on the "raw_line" field.
func RawLineNotIn(vs ...string) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldRawLine, vs...))
}

// RawLineGT applies the GT predicate on the "raw_line" field.
func RawLineGT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldRawLine, v))
}

// RawLineGTE applies the GTE predicate on the "raw_line" field.
func RawLineGTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldRawLine, v))
}

// RawLineLT applies the LT predicate on the "raw_line" field.
func RawLineLT(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldRawLine, v))
}

// RawLineLTE applies the LTE predicate on the "raw_line" field.
func RawLineLTE(v string) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldRawLine, v))
}

// RawLineContains applies the Contains predicate on the "raw_line" field.
func RawLineContains(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContains(FieldRawLine, v))
}

// RawLineHasPrefix applies the HasPrefix predicate on the "raw_line" field.
func RawLineHasPrefix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasPrefix(FieldRawLine, v))
}

// RawLineHasSuffix applies the HasSuffix predicate on the "raw_line" field.
func RawLineHasSuffix(v string) predicate.Bill {
	return predicate.Bill(sql.FieldHasSuffix(FieldRawLine, v))
}

// RawLineEqualFold applies the EqualFold predicate on the "raw_line" field.
func RawLineEqualFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldEqualFold(FieldRawLine, v))
}

// RawLineContainsFold applies the ContainsFold predicate on the "raw_line" field.
func RawLineContainsFold(v string) predicate.Bill {
	return predicate.Bill(sql.FieldContainsFold(FieldRawLine, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldIsDeleted, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Bill {
	return predicate.Bill(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Bill {
	return predicate.Bill(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bill {
	return predicate.Bill(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.FileUpload) predicate.Bill {
	return predicate.Bill(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bill) predicate.Bill {
	return predicate.Bill(sql.NotPredicates(p))
}

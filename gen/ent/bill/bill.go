// Code generated by ent, DO NOT EDIT.

package bill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bill type in the database.
	Label = "bill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileUploadID holds the string denoting the file_upload_id field in the database.
	FieldFileUploadID = "file_upload_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldBank holds the string denoting the bank field in the database.
	FieldBank = "bank"
	// FieldTradeDate holds the string denoting the trade_date field in the database.
	FieldTradeDate = "trade_date"
	// FieldRecordDate holds the string denoting the record_date field in the database.
	FieldRecordDate = "record_date"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAmountCny holds the string denoting the amount_cny field in the database.
	FieldAmountCny = "amount_cny"
	// FieldCardLast4 holds the string denoting the card_last4 field in the database.
	FieldCardLast4 = "card_last4"
	// FieldAmountForeign holds the string denoting the amount_foreign field in the database.
	FieldAmountForeign = "amount_foreign"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRawLine holds the string denoting the raw_line field in the database.
	FieldRawLine = "raw_line"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the bill in the database.
	Table = "bills"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "bills"
	// FileInverseTable is the table name for the FileUpload entity.
	// It exists in this package in order to avoid circular dependency with the "fileupload" package.
	FileInverseTable = "file_uploads"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_upload_id"
)

// Columns holds all SQL columns for bill fields.
var Columns = []string{
	FieldID,
	FieldFileUploadID,
	FieldWorkspaceID,
	FieldBank,
	FieldTradeDate,
	FieldRecordDate,
	FieldDescription,
	FieldAmountCny,
	FieldCardLast4,
	FieldAmountForeign,
	FieldCurrency,
	FieldStatus,
	FieldRawLine,
	FieldIsDeleted,
	FieldDeletedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BankValidator is a validator for the "bank" field. It is called by the builders before save.
	BankValidator func(string) error
	// CardLast4Validator is a validator for the "card_last4" field. It is called by the builders before save.
	CardLast4Validator func(string) error
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultRawLine holds the default value on creation for the "raw_line" field.
	DefaultRawLine string
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Bill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileUploadID orders the results by the file_upload_id field.
func ByFileUploadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileUploadID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByBank orders the results by the bank field.
func ByBank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBank, opts...).ToFunc()
}

// ByTradeDate orders the results by the trade_date field.
func ByTradeDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTradeDate, opts...).ToFunc()
}

// ByRecordDate orders the results by the record_date field.
func ByRecordDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordDate, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAmountCny orders the results by the amount_cny field.
func ByAmountCny(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountCny, opts...).ToFunc()
}

// ByCardLast4 orders the results by the card_last4 field.
func ByCardLast4(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardLast4, opts...).ToFunc()
}

// ByAmountForeign orders the results by the amount_foreign field.
func ByAmountForeign(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountForeign, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRawLine orders the results by the raw_line field.
func ByRawLine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawLine, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}

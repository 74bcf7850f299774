// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/billfeed/billfeed/gen/ent/bill"
	"github.com/billfeed/billfeed/gen/ent/billingrecord"
	"github.com/billfeed/billfeed/gen/ent/fileupload"
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/billfeed/billfeed/gen/ent/tokenusage"
	"github.com/billfeed/billfeed/gen/ent/useraccount"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBill          = "Bill"
	TypeBillingRecord = "BillingRecord"
	TypeFileUpload    = "FileUpload"
	TypeTokenUsage    = "TokenUsage"
	TypeUserAccount   = "UserAccount"
)

// BillMutation represents an operation that mutates the Bill nodes in the graph.
type BillMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	workspace_id      *uuid.UUID
	bank              *string
	trade_date        *time.Time
	record_date       *time.Time
	description       *string
	amount_cny        *float64
	addamount_cny     *float64
	card_last4        *string
	amount_foreign    *float64
	addamount_foreign *float64
	currency          *string
	status            *string
	raw_line          *string
	is_deleted        *bool
	deleted_at        *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	file              *uuid.UUID
	clearedfile       bool
	done              bool
	oldValue          func(context.Context) (*Bill, error)
	predicates        []predicate.Bill
}

var _ ent.Mutation = (*BillMutation)(nil)

// billOption allows management of the mutation configuration using functional options.
type billOption func(*BillMutation)

// newBillMutation creates new mutation for the Bill entity.
func newBillMutation(c config, op Op, opts ...billOption) *BillMutation {
	m := &BillMutation{
		config:        c,
		op:            op,
		typ:           TypeBill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillID sets the ID field of the mutation.
func withBillID(id uuid.UUID) billOption {
	return func(m *BillMutation) {
		var (
			err   error
			once  sync.Once
			value *Bill
		)
		m.oldValue = func(ctx context.Context) (*Bill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBill sets the old Bill of the mutation.
func withBill(node *Bill) billOption {
	return func(m *BillMutation) {
		m.oldValue = func(context.Context) (*Bill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bill entities.
func (m *BillMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileUploadID sets the "file_upload_id" field.
func (m *BillMutation) SetFileUploadID(u uuid.UUID) {
	m.file = &u
}

// FileUploadID returns the value of the "file_upload_id" field in the mutation.
func (m *BillMutation) FileUploadID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileUploadID returns the old "file_upload_id" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldFileUploadID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileUploadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileUploadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileUploadID: %w", err)
	}
	return oldValue.FileUploadID, nil
}

// ResetFileUploadID resets all changes to the "file_upload_id" field.
func (m *BillMutation) ResetFileUploadID() {
	m.file = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *BillMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace_id = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *BillMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *BillMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetBank sets the "bank" field.
func (m *BillMutation) SetBank(s string) {
	m.bank = &s
}

// Bank returns the value of the "bank" field in the mutation.
func (m *BillMutation) Bank() (r string, exists bool) {
	v := m.bank
	if v == nil {
		return
	}
	return *v, true
}

// OldBank returns the old "bank" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldBank(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBank: %w", err)
	}
	return oldValue.Bank, nil
}

// ClearBank clears the value of the "bank" field.
func (m *BillMutation) ClearBank() {
	m.bank = nil
	m.clearedFields[bill.FieldBank] = struct{}{}
}

// BankCleared returns if the "bank" field was cleared in this mutation.
func (m *BillMutation) BankCleared() bool {
	_, ok := m.clearedFields[bill.FieldBank]
	return ok
}

// ResetBank resets all changes to the "bank" field.
func (m *BillMutation) ResetBank() {
	m.bank = nil
	delete(m.clearedFields, bill.FieldBank)
}

// SetTradeDate sets the "trade_date" field.
func (m *BillMutation) SetTradeDate(t time.Time) {
	m.trade_date = &t
}

// TradeDate returns the value of the "trade_date" field in the mutation.
func (m *BillMutation) TradeDate() (r time.Time, exists bool) {
	v := m.trade_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTradeDate returns the old "trade_date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldTradeDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTradeDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTradeDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTradeDate: %w", err)
	}
	return oldValue.TradeDate, nil
}

// ClearTradeDate clears the value of the "trade_date" field.
func (m *BillMutation) ClearTradeDate() {
	m.trade_date = nil
	m.clearedFields[bill.FieldTradeDate] = struct{}{}
}

// TradeDateCleared returns if the "trade_date" field was cleared in this mutation.
func (m *BillMutation) TradeDateCleared() bool {
	_, ok := m.clearedFields[bill.FieldTradeDate]
	return ok
}

// ResetTradeDate resets all changes to the "trade_date" field.
func (m *BillMutation) ResetTradeDate() {
	m.trade_date = nil
	delete(m.clearedFields, bill.FieldTradeDate)
}

// SetRecordDate sets the "record_date" field.
func (m *BillMutation) SetRecordDate(t time.Time) {
	m.record_date = &t
}

// RecordDate returns the value of the "record_date" field in the mutation.
func (m *BillMutation) RecordDate() (r time.Time, exists bool) {
	v := m.record_date
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordDate returns the old "record_date" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldRecordDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordDate: %w", err)
	}
	return oldValue.RecordDate, nil
}

// ClearRecordDate clears the value of the "record_date" field.
func (m *BillMutation) ClearRecordDate() {
	m.record_date = nil
	m.clearedFields[bill.FieldRecordDate] = struct{}{}
}

// RecordDateCleared returns if the "record_date" field was cleared in this mutation.
func (m *BillMutation) RecordDateCleared() bool {
	_, ok := m.clearedFields[bill.FieldRecordDate]
	return ok
}

// ResetRecordDate resets all changes to the "record_date" field.
func (m *BillMutation) ResetRecordDate() {
	m.record_date = nil
	delete(m.clearedFields, bill.FieldRecordDate)
}

// SetDescription sets the "description" field.
func (m *BillMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BillMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BillMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[bill.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BillMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[bill.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BillMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, bill.FieldDescription)
}

// SetAmountCny sets the "amount_cny" field.
func (m *BillMutation) SetAmountCny(f float64) {
	m.amount_cny = &f
	m.addamount_cny = nil
}

// AmountCny returns the value of the "amount_cny" field in the mutation.
func (m *BillMutation) AmountCny() (r float64, exists bool) {
	v := m.amount_cny
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCny returns the old "amount_cny" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldAmountCny(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCny is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCny requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCny: %w", err)
	}
	return oldValue.AmountCny, nil
}

// AddAmountCny adds f to the "amount_cny" field.
func (m *BillMutation) AddAmountCny(f float64) {
	if m.addamount_cny != nil {
		*m.addamount_cny += f
	} else {
		m.addamount_cny = &f
	}
}

// AddedAmountCny returns the value that was added to the "amount_cny" field in this mutation.
func (m *BillMutation) AddedAmountCny() (r float64, exists bool) {
	v := m.addamount_cny
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmountCny clears the value of the "amount_cny" field.
func (m *BillMutation) ClearAmountCny() {
	m.amount_cny = nil
	m.addamount_cny = nil
	m.clearedFields[bill.FieldAmountCny] = struct{}{}
}

// AmountCnyCleared returns if the "amount_cny" field was cleared in this mutation.
func (m *BillMutation) AmountCnyCleared() bool {
	_, ok := m.clearedFields[bill.FieldAmountCny]
	return ok
}

// ResetAmountCny resets all changes to the "amount_cny" field.
func (m *BillMutation) ResetAmountCny() {
	m.amount_cny = nil
	m.addamount_cny = nil
	delete(m.clearedFields, bill.FieldAmountCny)
}

// SetCardLast4 sets the "card_last4" field.
func (m *BillMutation) SetCardLast4(s string) {
	m.card_last4 = &s
}

// CardLast4 returns the value of the "card_last4" field in the mutation.
func (m *BillMutation) CardLast4() (r string, exists bool) {
	v := m.card_last4
	if v == nil {
		return
	}
	return *v, true
}

// OldCardLast4 returns the old "card_last4" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCardLast4(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardLast4 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardLast4 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardLast4: %w", err)
	}
	return oldValue.CardLast4, nil
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (m *BillMutation) ClearCardLast4() {
	m.card_last4 = nil
	m.clearedFields[bill.FieldCardLast4] = struct{}{}
}

// CardLast4Cleared returns if the "card_last4" field was cleared in this mutation.
func (m *BillMutation) CardLast4Cleared() bool {
	_, ok := m.clearedFields[bill.FieldCardLast4]
	return ok
}

// ResetCardLast4 resets all changes to the "card_last4" field.
func (m *BillMutation) ResetCardLast4() {
	m.card_last4 = nil
	delete(m.clearedFields, bill.FieldCardLast4)
}

// SetAmountForeign sets the "amount_foreign" field.
func (m *BillMutation) SetAmountForeign(f float64) {
	m.amount_foreign = &f
	m.addamount_foreign = nil
}

// AmountForeign returns the value of the "amount_foreign" field in the mutation.
func (m *BillMutation) AmountForeign() (r float64, exists bool) {
	v := m.amount_foreign
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountForeign returns the old "amount_foreign" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldAmountForeign(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountForeign is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountForeign requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountForeign: %w", err)
	}
	return oldValue.AmountForeign, nil
}

// AddAmountForeign adds f to the "amount_foreign" field.
func (m *BillMutation) AddAmountForeign(f float64) {
	if m.addamount_foreign != nil {
		*m.addamount_foreign += f
	} else {
		m.addamount_foreign = &f
	}
}

// AddedAmountForeign returns the value that was added to the "amount_foreign" field in this mutation.
func (m *BillMutation) AddedAmountForeign() (r float64, exists bool) {
	v := m.addamount_foreign
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmountForeign clears the value of the "amount_foreign" field.
func (m *BillMutation) ClearAmountForeign() {
	m.amount_foreign = nil
	m.addamount_foreign = nil
	m.clearedFields[bill.FieldAmountForeign] = struct{}{}
}

// AmountForeignCleared returns if the "amount_foreign" field was cleared in this mutation.
func (m *BillMutation) AmountForeignCleared() bool {
	_, ok := m.clearedFields[bill.FieldAmountForeign]
	return ok
}

// ResetAmountForeign resets all changes to the "amount_foreign" field.
func (m *BillMutation) ResetAmountForeign() {
	m.amount_foreign = nil
	m.addamount_foreign = nil
	delete(m.clearedFields, bill.FieldAmountForeign)
}

// SetCurrency sets the "currency" field.
func (m *BillMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *BillMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ClearCurrency clears the value of the "currency" field.
func (m *BillMutation) ClearCurrency() {
	m.currency = nil
	m.clearedFields[bill.FieldCurrency] = struct{}{}
}

// CurrencyCleared returns if the "currency" field was cleared in this mutation.
func (m *BillMutation) CurrencyCleared() bool {
	_, ok := m.clearedFields[bill.FieldCurrency]
	return ok
}

// ResetCurrency resets all changes to the "currency" field.
func (m *BillMutation) ResetCurrency() {
	m.currency = nil
	delete(m.clearedFields, bill.FieldCurrency)
}

// SetStatus sets the "status" field.
func (m *BillMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BillMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BillMutation) ResetStatus() {
	m.status = nil
}

// SetRawLine sets the "raw_line" field.
func (m *BillMutation) SetRawLine(s string) {
	m.raw_line = &s
}

// RawLine returns the value of the "raw_line" field in the mutation.
func (m *BillMutation) RawLine() (r string, exists bool) {
	v := m.raw_line
	if v == nil {
		return
	}
	return *v, true
}

// OldRawLine returns the old "raw_line" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldRawLine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawLine: %w", err)
	}
	return oldValue.RawLine, nil
}

// ResetRawLine resets all changes to the "raw_line" field.
func (m *BillMutation) ResetRawLine() {
	m.raw_line = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *BillMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *BillMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *BillMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *BillMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *BillMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *BillMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[bill.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *BillMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[bill.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *BillMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, bill.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BillMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bill entity.
// If the Bill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFileID sets the "file" edge to the FileUpload entity by id.
func (m *BillMutation) SetFileID(id uuid.UUID) {
	m.file = &id
}

// ClearFile clears the "file" edge to the FileUpload entity.
func (m *BillMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[bill.FieldFileUploadID] = struct{}{}
}

// FileCleared reports if the "file" edge to the FileUpload entity was cleared.
func (m *BillMutation) FileCleared() bool {
	return m.clearedfile
}

// FileID returns the "file" edge ID in the mutation.
func (m *BillMutation) FileID() (id uuid.UUID, exists bool) {
	if m.file != nil {
		return *m.file, true
	}
	return
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *BillMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *BillMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the BillMutation builder.
func (m *BillMutation) Where(ps ...predicate.Bill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bill).
func (m *BillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.file != nil {
		fields = append(fields, bill.FieldFileUploadID)
	}
	if m.workspace_id != nil {
		fields = append(fields, bill.FieldWorkspaceID)
	}
	if m.bank != nil {
		fields = append(fields, bill.FieldBank)
	}
	if m.trade_date != nil {
		fields = append(fields, bill.FieldTradeDate)
	}
	if m.record_date != nil {
		fields = append(fields, bill.FieldRecordDate)
	}
	if m.description != nil {
		fields = append(fields, bill.FieldDescription)
	}
	if m.amount_cny != nil {
		fields = append(fields, bill.FieldAmountCny)
	}
	if m.card_last4 != nil {
		fields = append(fields, bill.FieldCardLast4)
	}
	if m.amount_foreign != nil {
		fields = append(fields, bill.FieldAmountForeign)
	}
	if m.currency != nil {
		fields = append(fields, bill.FieldCurrency)
	}
	if m.status != nil {
		fields = append(fields, bill.FieldStatus)
	}
	if m.raw_line != nil {
		fields = append(fields, bill.FieldRawLine)
	}
	if m.is_deleted != nil {
		fields = append(fields, bill.FieldIsDeleted)
	}
	if m.deleted_at != nil {
		fields = append(fields, bill.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, bill.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldFileUploadID:
		return m.FileUploadID()
	case bill.FieldWorkspaceID:
		return m.WorkspaceID()
	case bill.FieldBank:
		return m.Bank()
	case bill.FieldTradeDate:
		return m.TradeDate()
	case bill.FieldRecordDate:
		return m.RecordDate()
	case bill.FieldDescription:
		return m.Description()
	case bill.FieldAmountCny:
		return m.AmountCny()
	case bill.FieldCardLast4:
		return m.CardLast4()
	case bill.FieldAmountForeign:
		return m.AmountForeign()
	case bill.FieldCurrency:
		return m.Currency()
	case bill.FieldStatus:
		return m.Status()
	case bill.FieldRawLine:
		return m.RawLine()
	case bill.FieldIsDeleted:
		return m.IsDeleted()
	case bill.FieldDeletedAt:
		return m.DeletedAt()
	case bill.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bill.FieldFileUploadID:
		return m.OldFileUploadID(ctx)
	case bill.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case bill.FieldBank:
		return m.OldBank(ctx)
	case bill.FieldTradeDate:
		return m.OldTradeDate(ctx)
	case bill.FieldRecordDate:
		return m.OldRecordDate(ctx)
	case bill.FieldDescription:
		return m.OldDescription(ctx)
	case bill.FieldAmountCny:
		return m.OldAmountCny(ctx)
	case bill.FieldCardLast4:
		return m.OldCardLast4(ctx)
	case bill.FieldAmountForeign:
		return m.OldAmountForeign(ctx)
	case bill.FieldCurrency:
		return m.OldCurrency(ctx)
	case bill.FieldStatus:
		return m.OldStatus(ctx)
	case bill.FieldRawLine:
		return m.OldRawLine(ctx)
	case bill.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case bill.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case bill.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bill.FieldFileUploadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileUploadID(v)
		return nil
	case bill.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case bill.FieldBank:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBank(v)
		return nil
	case bill.FieldTradeDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTradeDate(v)
		return nil
	case bill.FieldRecordDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordDate(v)
		return nil
	case bill.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case bill.FieldAmountCny:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCny(v)
		return nil
	case bill.FieldCardLast4:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardLast4(v)
		return nil
	case bill.FieldAmountForeign:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountForeign(v)
		return nil
	case bill.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case bill.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bill.FieldRawLine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawLine(v)
		return nil
	case bill.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case bill.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case bill.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cny != nil {
		fields = append(fields, bill.FieldAmountCny)
	}
	if m.addamount_foreign != nil {
		fields = append(fields, bill.FieldAmountForeign)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bill.FieldAmountCny:
		return m.AddedAmountCny()
	case bill.FieldAmountForeign:
		return m.AddedAmountForeign()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bill.FieldAmountCny:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCny(v)
		return nil
	case bill.FieldAmountForeign:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountForeign(v)
		return nil
	}
	return fmt.Errorf("unknown Bill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bill.FieldBank) {
		fields = append(fields, bill.FieldBank)
	}
	if m.FieldCleared(bill.FieldTradeDate) {
		fields = append(fields, bill.FieldTradeDate)
	}
	if m.FieldCleared(bill.FieldRecordDate) {
		fields = append(fields, bill.FieldRecordDate)
	}
	if m.FieldCleared(bill.FieldDescription) {
		fields = append(fields, bill.FieldDescription)
	}
	if m.FieldCleared(bill.FieldAmountCny) {
		fields = append(fields, bill.FieldAmountCny)
	}
	if m.FieldCleared(bill.FieldCardLast4) {
		fields = append(fields, bill.FieldCardLast4)
	}
	if m.FieldCleared(bill.FieldAmountForeign) {
		fields = append(fields, bill.FieldAmountForeign)
	}
	if m.FieldCleared(bill.FieldCurrency) {
		fields = append(fields, bill.FieldCurrency)
	}
	if m.FieldCleared(bill.FieldDeletedAt) {
		fields = append(fields, bill.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillMutation) ClearField(name string) error {
	switch name {
	case bill.FieldBank:
		m.ClearBank()
		return nil
	case bill.FieldTradeDate:
		m.ClearTradeDate()
		return nil
	case bill.FieldRecordDate:
		m.ClearRecordDate()
		return nil
	case bill.FieldDescription:
		m.ClearDescription()
		return nil
	case bill.FieldAmountCny:
		m.ClearAmountCny()
		return nil
	case bill.FieldCardLast4:
		m.ClearCardLast4()
		return nil
	case bill.FieldAmountForeign:
		m.ClearAmountForeign()
		return nil
	case bill.FieldCurrency:
		m.ClearCurrency()
		return nil
	case bill.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Bill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillMutation) ResetField(name string) error {
	switch name {
	case bill.FieldFileUploadID:
		m.ResetFileUploadID()
		return nil
	case bill.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case bill.FieldBank:
		m.ResetBank()
		return nil
	case bill.FieldTradeDate:
		m.ResetTradeDate()
		return nil
	case bill.FieldRecordDate:
		m.ResetRecordDate()
		return nil
	case bill.FieldDescription:
		m.ResetDescription()
		return nil
	case bill.FieldAmountCny:
		m.ResetAmountCny()
		return nil
	case bill.FieldCardLast4:
		m.ResetCardLast4()
		return nil
	case bill.FieldAmountForeign:
		m.ResetAmountForeign()
		return nil
	case bill.FieldCurrency:
		m.ResetCurrency()
		return nil
	case bill.FieldStatus:
		m.ResetStatus()
		return nil
	case bill.FieldRawLine:
		m.ResetRawLine()
		return nil
	case bill.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case bill.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case bill.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Bill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, bill.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bill.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, bill.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillMutation) EdgeCleared(name string) bool {
	switch name {
	case bill.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillMutation) ClearEdge(name string) error {
	switch name {
	case bill.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown Bill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillMutation) ResetEdge(name string) error {
	switch name {
	case bill.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown Bill edge %s", name)
}

// BillingRecordMutation represents an operation that mutates the BillingRecord nodes in the graph.
type BillingRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	actor_id           *string
	amount             *decimal.Decimal
	balance_before     *decimal.Decimal
	balance_after      *decimal.Decimal
	billing_type       *string
	description        *string
	is_deleted         *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	token_usage        *uuid.UUID
	clearedtoken_usage bool
	done               bool
	oldValue           func(context.Context) (*BillingRecord, error)
	predicates         []predicate.BillingRecord
}

var _ ent.Mutation = (*BillingRecordMutation)(nil)

// billingrecordOption allows management of the mutation configuration using functional options.
type billingrecordOption func(*BillingRecordMutation)

// newBillingRecordMutation creates new mutation for the BillingRecord entity.
func newBillingRecordMutation(c config, op Op, opts ...billingrecordOption) *BillingRecordMutation {
	m := &BillingRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeBillingRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillingRecordID sets the ID field of the mutation.
func withBillingRecordID(id uuid.UUID) billingrecordOption {
	return func(m *BillingRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *BillingRecord
		)
		m.oldValue = func(ctx context.Context) (*BillingRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BillingRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBillingRecord sets the old BillingRecord of the mutation.
func withBillingRecord(node *BillingRecord) billingrecordOption {
	return func(m *BillingRecordMutation) {
		m.oldValue = func(context.Context) (*BillingRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillingRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillingRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BillingRecord entities.
func (m *BillingRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillingRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillingRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BillingRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorID sets the "actor_id" field.
func (m *BillingRecordMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *BillingRecordMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *BillingRecordMutation) ResetActorID() {
	m.actor_id = nil
}

// SetTokenUsageID sets the "token_usage_id" field.
func (m *BillingRecordMutation) SetTokenUsageID(u uuid.UUID) {
	m.token_usage = &u
}

// TokenUsageID returns the value of the "token_usage_id" field in the mutation.
func (m *BillingRecordMutation) TokenUsageID() (r uuid.UUID, exists bool) {
	v := m.token_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenUsageID returns the old "token_usage_id" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldTokenUsageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenUsageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenUsageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenUsageID: %w", err)
	}
	return oldValue.TokenUsageID, nil
}

// ClearTokenUsageID clears the value of the "token_usage_id" field.
func (m *BillingRecordMutation) ClearTokenUsageID() {
	m.token_usage = nil
	m.clearedFields[billingrecord.FieldTokenUsageID] = struct{}{}
}

// TokenUsageIDCleared returns if the "token_usage_id" field was cleared in this mutation.
func (m *BillingRecordMutation) TokenUsageIDCleared() bool {
	_, ok := m.clearedFields[billingrecord.FieldTokenUsageID]
	return ok
}

// ResetTokenUsageID resets all changes to the "token_usage_id" field.
func (m *BillingRecordMutation) ResetTokenUsageID() {
	m.token_usage = nil
	delete(m.clearedFields, billingrecord.FieldTokenUsageID)
}

// SetAmount sets the "amount" field.
func (m *BillingRecordMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
}

// Amount returns the value of the "amount" field in the mutation.
func (m *BillingRecordMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *BillingRecordMutation) ResetAmount() {
	m.amount = nil
}

// SetBalanceBefore sets the "balance_before" field.
func (m *BillingRecordMutation) SetBalanceBefore(d decimal.Decimal) {
	m.balance_before = &d
}

// BalanceBefore returns the value of the "balance_before" field in the mutation.
func (m *BillingRecordMutation) BalanceBefore() (r decimal.Decimal, exists bool) {
	v := m.balance_before
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceBefore returns the old "balance_before" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldBalanceBefore(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceBefore: %w", err)
	}
	return oldValue.BalanceBefore, nil
}

// ResetBalanceBefore resets all changes to the "balance_before" field.
func (m *BillingRecordMutation) ResetBalanceBefore() {
	m.balance_before = nil
}

// SetBalanceAfter sets the "balance_after" field.
func (m *BillingRecordMutation) SetBalanceAfter(d decimal.Decimal) {
	m.balance_after = &d
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *BillingRecordMutation) BalanceAfter() (r decimal.Decimal, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldBalanceAfter(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *BillingRecordMutation) ResetBalanceAfter() {
	m.balance_after = nil
}

// SetBillingType sets the "billing_type" field.
func (m *BillingRecordMutation) SetBillingType(s string) {
	m.billing_type = &s
}

// BillingType returns the value of the "billing_type" field in the mutation.
func (m *BillingRecordMutation) BillingType() (r string, exists bool) {
	v := m.billing_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBillingType returns the old "billing_type" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldBillingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillingType: %w", err)
	}
	return oldValue.BillingType, nil
}

// ResetBillingType resets all changes to the "billing_type" field.
func (m *BillingRecordMutation) ResetBillingType() {
	m.billing_type = nil
}

// SetDescription sets the "description" field.
func (m *BillingRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BillingRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BillingRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[billingrecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BillingRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[billingrecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BillingRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, billingrecord.FieldDescription)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *BillingRecordMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *BillingRecordMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *BillingRecordMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BillingRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillingRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BillingRecord entity.
// If the BillingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillingRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTokenUsage clears the "token_usage" edge to the TokenUsage entity.
func (m *BillingRecordMutation) ClearTokenUsage() {
	m.clearedtoken_usage = true
	m.clearedFields[billingrecord.FieldTokenUsageID] = struct{}{}
}

// TokenUsageCleared reports if the "token_usage" edge to the TokenUsage entity was cleared.
func (m *BillingRecordMutation) TokenUsageCleared() bool {
	return m.TokenUsageIDCleared() || m.clearedtoken_usage
}

// TokenUsageIDs returns the "token_usage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TokenUsageID instead. It exists only for internal usage by the builders.
func (m *BillingRecordMutation) TokenUsageIDs() (ids []uuid.UUID) {
	if id := m.token_usage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTokenUsage resets all changes to the "token_usage" edge.
func (m *BillingRecordMutation) ResetTokenUsage() {
	m.token_usage = nil
	m.clearedtoken_usage = false
}

// Where appends a list predicates to the BillingRecordMutation builder.
func (m *BillingRecordMutation) Where(ps ...predicate.BillingRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillingRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillingRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BillingRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillingRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillingRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BillingRecord).
func (m *BillingRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillingRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.actor_id != nil {
		fields = append(fields, billingrecord.FieldActorID)
	}
	if m.token_usage != nil {
		fields = append(fields, billingrecord.FieldTokenUsageID)
	}
	if m.amount != nil {
		fields = append(fields, billingrecord.FieldAmount)
	}
	if m.balance_before != nil {
		fields = append(fields, billingrecord.FieldBalanceBefore)
	}
	if m.balance_after != nil {
		fields = append(fields, billingrecord.FieldBalanceAfter)
	}
	if m.billing_type != nil {
		fields = append(fields, billingrecord.FieldBillingType)
	}
	if m.description != nil {
		fields = append(fields, billingrecord.FieldDescription)
	}
	if m.is_deleted != nil {
		fields = append(fields, billingrecord.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, billingrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillingRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billingrecord.FieldActorID:
		return m.ActorID()
	case billingrecord.FieldTokenUsageID:
		return m.TokenUsageID()
	case billingrecord.FieldAmount:
		return m.Amount()
	case billingrecord.FieldBalanceBefore:
		return m.BalanceBefore()
	case billingrecord.FieldBalanceAfter:
		return m.BalanceAfter()
	case billingrecord.FieldBillingType:
		return m.BillingType()
	case billingrecord.FieldDescription:
		return m.Description()
	case billingrecord.FieldIsDeleted:
		return m.IsDeleted()
	case billingrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillingRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billingrecord.FieldActorID:
		return m.OldActorID(ctx)
	case billingrecord.FieldTokenUsageID:
		return m.OldTokenUsageID(ctx)
	case billingrecord.FieldAmount:
		return m.OldAmount(ctx)
	case billingrecord.FieldBalanceBefore:
		return m.OldBalanceBefore(ctx)
	case billingrecord.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	case billingrecord.FieldBillingType:
		return m.OldBillingType(ctx)
	case billingrecord.FieldDescription:
		return m.OldDescription(ctx)
	case billingrecord.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case billingrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BillingRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billingrecord.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case billingrecord.FieldTokenUsageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenUsageID(v)
		return nil
	case billingrecord.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case billingrecord.FieldBalanceBefore:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceBefore(v)
		return nil
	case billingrecord.FieldBalanceAfter:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	case billingrecord.FieldBillingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillingType(v)
		return nil
	case billingrecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case billingrecord.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case billingrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BillingRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillingRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillingRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BillingRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillingRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(billingrecord.FieldTokenUsageID) {
		fields = append(fields, billingrecord.FieldTokenUsageID)
	}
	if m.FieldCleared(billingrecord.FieldDescription) {
		fields = append(fields, billingrecord.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillingRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillingRecordMutation) ClearField(name string) error {
	switch name {
	case billingrecord.FieldTokenUsageID:
		m.ClearTokenUsageID()
		return nil
	case billingrecord.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown BillingRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillingRecordMutation) ResetField(name string) error {
	switch name {
	case billingrecord.FieldActorID:
		m.ResetActorID()
		return nil
	case billingrecord.FieldTokenUsageID:
		m.ResetTokenUsageID()
		return nil
	case billingrecord.FieldAmount:
		m.ResetAmount()
		return nil
	case billingrecord.FieldBalanceBefore:
		m.ResetBalanceBefore()
		return nil
	case billingrecord.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	case billingrecord.FieldBillingType:
		m.ResetBillingType()
		return nil
	case billingrecord.FieldDescription:
		m.ResetDescription()
		return nil
	case billingrecord.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case billingrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BillingRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillingRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.token_usage != nil {
		edges = append(edges, billingrecord.EdgeTokenUsage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillingRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case billingrecord.EdgeTokenUsage:
		if id := m.token_usage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillingRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillingRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillingRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtoken_usage {
		edges = append(edges, billingrecord.EdgeTokenUsage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillingRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case billingrecord.EdgeTokenUsage:
		return m.clearedtoken_usage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillingRecordMutation) ClearEdge(name string) error {
	switch name {
	case billingrecord.EdgeTokenUsage:
		m.ClearTokenUsage()
		return nil
	}
	return fmt.Errorf("unknown BillingRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillingRecordMutation) ResetEdge(name string) error {
	switch name {
	case billingrecord.EdgeTokenUsage:
		m.ResetTokenUsage()
		return nil
	}
	return fmt.Errorf("unknown BillingRecord edge %s", name)
}

// FileUploadMutation represents an operation that mutates the FileUpload nodes in the graph.
type FileUploadMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	workspace_id    *uuid.UUID
	actor_id        *string
	content_hash    *string
	filename        *string
	saved_path      *string
	file_size       *int64
	addfile_size    *int64
	raw_content     *string
	refined_content *string
	bills_count     *int
	addbills_count  *int
	uploaded_at     *time.Time
	status          *string
	remark          *string
	is_deleted      *bool
	deleted_at      *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	bills           map[uuid.UUID]struct{}
	removedbills    map[uuid.UUID]struct{}
	clearedbills    bool
	done            bool
	oldValue        func(context.Context) (*FileUpload, error)
	predicates      []predicate.FileUpload
}

var _ ent.Mutation = (*FileUploadMutation)(nil)

// fileuploadOption allows management of the mutation configuration using functional options.
type fileuploadOption func(*FileUploadMutation)

// newFileUploadMutation creates new mutation for the FileUpload entity.
func newFileUploadMutation(c config, op Op, opts ...fileuploadOption) *FileUploadMutation {
	m := &FileUploadMutation{
		config:        c,
		op:            op,
		typ:           TypeFileUpload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileUploadID sets the ID field of the mutation.
func withFileUploadID(id uuid.UUID) fileuploadOption {
	return func(m *FileUploadMutation) {
		var (
			err   error
			once  sync.Once
			value *FileUpload
		)
		m.oldValue = func(ctx context.Context) (*FileUpload, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileUpload.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileUpload sets the old FileUpload of the mutation.
func withFileUpload(node *FileUpload) fileuploadOption {
	return func(m *FileUploadMutation) {
		m.oldValue = func(context.Context) (*FileUpload, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileUploadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileUploadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileUpload entities.
func (m *FileUploadMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileUploadMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileUploadMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileUpload.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *FileUploadMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace_id = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *FileUploadMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldWorkspaceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *FileUploadMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetActorID sets the "actor_id" field.
func (m *FileUploadMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *FileUploadMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *FileUploadMutation) ResetActorID() {
	m.actor_id = nil
}

// SetContentHash sets the "content_hash" field.
func (m *FileUploadMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *FileUploadMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *FileUploadMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *FileUploadMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *FileUploadMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *FileUploadMutation) ResetFilename() {
	m.filename = nil
}

// SetSavedPath sets the "saved_path" field.
func (m *FileUploadMutation) SetSavedPath(s string) {
	m.saved_path = &s
}

// SavedPath returns the value of the "saved_path" field in the mutation.
func (m *FileUploadMutation) SavedPath() (r string, exists bool) {
	v := m.saved_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSavedPath returns the old "saved_path" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldSavedPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSavedPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSavedPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSavedPath: %w", err)
	}
	return oldValue.SavedPath, nil
}

// ResetSavedPath resets all changes to the "saved_path" field.
func (m *FileUploadMutation) ResetSavedPath() {
	m.saved_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *FileUploadMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *FileUploadMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *FileUploadMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *FileUploadMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *FileUploadMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetRawContent sets the "raw_content" field.
func (m *FileUploadMutation) SetRawContent(s string) {
	m.raw_content = &s
}

// RawContent returns the value of the "raw_content" field in the mutation.
func (m *FileUploadMutation) RawContent() (r string, exists bool) {
	v := m.raw_content
	if v == nil {
		return
	}
	return *v, true
}

// OldRawContent returns the old "raw_content" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldRawContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawContent: %w", err)
	}
	return oldValue.RawContent, nil
}

// ResetRawContent resets all changes to the "raw_content" field.
func (m *FileUploadMutation) ResetRawContent() {
	m.raw_content = nil
}

// SetRefinedContent sets the "refined_content" field.
func (m *FileUploadMutation) SetRefinedContent(s string) {
	m.refined_content = &s
}

// RefinedContent returns the value of the "refined_content" field in the mutation.
func (m *FileUploadMutation) RefinedContent() (r string, exists bool) {
	v := m.refined_content
	if v == nil {
		return
	}
	return *v, true
}

// OldRefinedContent returns the old "refined_content" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldRefinedContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefinedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefinedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefinedContent: %w", err)
	}
	return oldValue.RefinedContent, nil
}

// ClearRefinedContent clears the value of the "refined_content" field.
func (m *FileUploadMutation) ClearRefinedContent() {
	m.refined_content = nil
	m.clearedFields[fileupload.FieldRefinedContent] = struct{}{}
}

// RefinedContentCleared returns if the "refined_content" field was cleared in this mutation.
func (m *FileUploadMutation) RefinedContentCleared() bool {
	_, ok := m.clearedFields[fileupload.FieldRefinedContent]
	return ok
}

// ResetRefinedContent resets all changes to the "refined_content" field.
func (m *FileUploadMutation) ResetRefinedContent() {
	m.refined_content = nil
	delete(m.clearedFields, fileupload.FieldRefinedContent)
}

// SetBillsCount sets the "bills_count" field.
func (m *FileUploadMutation) SetBillsCount(i int) {
	m.bills_count = &i
	m.addbills_count = nil
}

// BillsCount returns the value of the "bills_count" field in the mutation.
func (m *FileUploadMutation) BillsCount() (r int, exists bool) {
	v := m.bills_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBillsCount returns the old "bills_count" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldBillsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillsCount: %w", err)
	}
	return oldValue.BillsCount, nil
}

// AddBillsCount adds i to the "bills_count" field.
func (m *FileUploadMutation) AddBillsCount(i int) {
	if m.addbills_count != nil {
		*m.addbills_count += i
	} else {
		m.addbills_count = &i
	}
}

// AddedBillsCount returns the value that was added to the "bills_count" field in this mutation.
func (m *FileUploadMutation) AddedBillsCount() (r int, exists bool) {
	v := m.addbills_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetBillsCount resets all changes to the "bills_count" field.
func (m *FileUploadMutation) ResetBillsCount() {
	m.bills_count = nil
	m.addbills_count = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *FileUploadMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *FileUploadMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *FileUploadMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetStatus sets the "status" field.
func (m *FileUploadMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *FileUploadMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FileUploadMutation) ResetStatus() {
	m.status = nil
}

// SetRemark sets the "remark" field.
func (m *FileUploadMutation) SetRemark(s string) {
	m.remark = &s
}

// Remark returns the value of the "remark" field in the mutation.
func (m *FileUploadMutation) Remark() (r string, exists bool) {
	v := m.remark
	if v == nil {
		return
	}
	return *v, true
}

// OldRemark returns the old "remark" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldRemark(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemark: %w", err)
	}
	return oldValue.Remark, nil
}

// ClearRemark clears the value of the "remark" field.
func (m *FileUploadMutation) ClearRemark() {
	m.remark = nil
	m.clearedFields[fileupload.FieldRemark] = struct{}{}
}

// RemarkCleared returns if the "remark" field was cleared in this mutation.
func (m *FileUploadMutation) RemarkCleared() bool {
	_, ok := m.clearedFields[fileupload.FieldRemark]
	return ok
}

// ResetRemark resets all changes to the "remark" field.
func (m *FileUploadMutation) ResetRemark() {
	m.remark = nil
	delete(m.clearedFields, fileupload.FieldRemark)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *FileUploadMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *FileUploadMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *FileUploadMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *FileUploadMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *FileUploadMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *FileUploadMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[fileupload.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *FileUploadMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[fileupload.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *FileUploadMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, fileupload.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FileUploadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FileUploadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FileUpload entity.
// If the FileUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileUploadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FileUploadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddBillIDs adds the "bills" edge to the Bill entity by ids.
func (m *FileUploadMutation) AddBillIDs(ids ...uuid.UUID) {
	if m.bills == nil {
		m.bills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bills[ids[i]] = struct{}{}
	}
}

// ClearBills clears the "bills" edge to the Bill entity.
func (m *FileUploadMutation) ClearBills() {
	m.clearedbills = true
}

// BillsCleared reports if the "bills" edge to the Bill entity was cleared.
func (m *FileUploadMutation) BillsCleared() bool {
	return m.clearedbills
}

// RemoveBillIDs removes the "bills" edge to the Bill entity by IDs.
func (m *FileUploadMutation) RemoveBillIDs(ids ...uuid.UUID) {
	if m.removedbills == nil {
		m.removedbills = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bills, ids[i])
		m.removedbills[ids[i]] = struct{}{}
	}
}

// RemovedBills returns the removed IDs of the "bills" edge to the Bill entity.
func (m *FileUploadMutation) RemovedBillsIDs() (ids []uuid.UUID) {
	for id := range m.removedbills {
		ids = append(ids, id)
	}
	return
}

// BillsIDs returns the "bills" edge IDs in the mutation.
func (m *FileUploadMutation) BillsIDs() (ids []uuid.UUID) {
	for id := range m.bills {
		ids = append(ids, id)
	}
	return
}

// ResetBills resets all changes to the "bills" edge.
func (m *FileUploadMutation) ResetBills() {
	m.bills = nil
	m.clearedbills = false
	m.removedbills = nil
}

// Where appends a list predicates to the FileUploadMutation builder.
func (m *FileUploadMutation) Where(ps ...predicate.FileUpload) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileUploadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileUploadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileUpload, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileUploadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileUploadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileUpload).
func (m *FileUploadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileUploadMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.workspace_id != nil {
		fields = append(fields, fileupload.FieldWorkspaceID)
	}
	if m.actor_id != nil {
		fields = append(fields, fileupload.FieldActorID)
	}
	if m.content_hash != nil {
		fields = append(fields, fileupload.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, fileupload.FieldFilename)
	}
	if m.saved_path != nil {
		fields = append(fields, fileupload.FieldSavedPath)
	}
	if m.file_size != nil {
		fields = append(fields, fileupload.FieldFileSize)
	}
	if m.raw_content != nil {
		fields = append(fields, fileupload.FieldRawContent)
	}
	if m.refined_content != nil {
		fields = append(fields, fileupload.FieldRefinedContent)
	}
	if m.bills_count != nil {
		fields = append(fields, fileupload.FieldBillsCount)
	}
	if m.uploaded_at != nil {
		fields = append(fields, fileupload.FieldUploadedAt)
	}
	if m.status != nil {
		fields = append(fields, fileupload.FieldStatus)
	}
	if m.remark != nil {
		fields = append(fields, fileupload.FieldRemark)
	}
	if m.is_deleted != nil {
		fields = append(fields, fileupload.FieldIsDeleted)
	}
	if m.deleted_at != nil {
		fields = append(fields, fileupload.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, fileupload.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileUploadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fileupload.FieldWorkspaceID:
		return m.WorkspaceID()
	case fileupload.FieldActorID:
		return m.ActorID()
	case fileupload.FieldContentHash:
		return m.ContentHash()
	case fileupload.FieldFilename:
		return m.Filename()
	case fileupload.FieldSavedPath:
		return m.SavedPath()
	case fileupload.FieldFileSize:
		return m.FileSize()
	case fileupload.FieldRawContent:
		return m.RawContent()
	case fileupload.FieldRefinedContent:
		return m.RefinedContent()
	case fileupload.FieldBillsCount:
		return m.BillsCount()
	case fileupload.FieldUploadedAt:
		return m.UploadedAt()
	case fileupload.FieldStatus:
		return m.Status()
	case fileupload.FieldRemark:
		return m.Remark()
	case fileupload.FieldIsDeleted:
		return m.IsDeleted()
	case fileupload.FieldDeletedAt:
		return m.DeletedAt()
	case fileupload.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileUploadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fileupload.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case fileupload.FieldActorID:
		return m.OldActorID(ctx)
	case fileupload.FieldContentHash:
		return m.OldContentHash(ctx)
	case fileupload.FieldFilename:
		return m.OldFilename(ctx)
	case fileupload.FieldSavedPath:
		return m.OldSavedPath(ctx)
	case fileupload.FieldFileSize:
		return m.OldFileSize(ctx)
	case fileupload.FieldRawContent:
		return m.OldRawContent(ctx)
	case fileupload.FieldRefinedContent:
		return m.OldRefinedContent(ctx)
	case fileupload.FieldBillsCount:
		return m.OldBillsCount(ctx)
	case fileupload.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case fileupload.FieldStatus:
		return m.OldStatus(ctx)
	case fileupload.FieldRemark:
		return m.OldRemark(ctx)
	case fileupload.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case fileupload.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case fileupload.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FileUpload field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileUploadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fileupload.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case fileupload.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case fileupload.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case fileupload.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case fileupload.FieldSavedPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSavedPath(v)
		return nil
	case fileupload.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case fileupload.FieldRawContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawContent(v)
		return nil
	case fileupload.FieldRefinedContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefinedContent(v)
		return nil
	case fileupload.FieldBillsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillsCount(v)
		return nil
	case fileupload.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case fileupload.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fileupload.FieldRemark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemark(v)
		return nil
	case fileupload.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case fileupload.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case fileupload.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FileUpload field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileUploadMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, fileupload.FieldFileSize)
	}
	if m.addbills_count != nil {
		fields = append(fields, fileupload.FieldBillsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileUploadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fileupload.FieldFileSize:
		return m.AddedFileSize()
	case fileupload.FieldBillsCount:
		return m.AddedBillsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileUploadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fileupload.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case fileupload.FieldBillsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBillsCount(v)
		return nil
	}
	return fmt.Errorf("unknown FileUpload numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileUploadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fileupload.FieldRefinedContent) {
		fields = append(fields, fileupload.FieldRefinedContent)
	}
	if m.FieldCleared(fileupload.FieldRemark) {
		fields = append(fields, fileupload.FieldRemark)
	}
	if m.FieldCleared(fileupload.FieldDeletedAt) {
		fields = append(fields, fileupload.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileUploadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileUploadMutation) ClearField(name string) error {
	switch name {
	case fileupload.FieldRefinedContent:
		m.ClearRefinedContent()
		return nil
	case fileupload.FieldRemark:
		m.ClearRemark()
		return nil
	case fileupload.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown FileUpload nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileUploadMutation) ResetField(name string) error {
	switch name {
	case fileupload.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case fileupload.FieldActorID:
		m.ResetActorID()
		return nil
	case fileupload.FieldContentHash:
		m.ResetContentHash()
		return nil
	case fileupload.FieldFilename:
		m.ResetFilename()
		return nil
	case fileupload.FieldSavedPath:
		m.ResetSavedPath()
		return nil
	case fileupload.FieldFileSize:
		m.ResetFileSize()
		return nil
	case fileupload.FieldRawContent:
		m.ResetRawContent()
		return nil
	case fileupload.FieldRefinedContent:
		m.ResetRefinedContent()
		return nil
	case fileupload.FieldBillsCount:
		m.ResetBillsCount()
		return nil
	case fileupload.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case fileupload.FieldStatus:
		m.ResetStatus()
		return nil
	case fileupload.FieldRemark:
		m.ResetRemark()
		return nil
	case fileupload.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case fileupload.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case fileupload.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FileUpload field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileUploadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bills != nil {
		edges = append(edges, fileupload.EdgeBills)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileUploadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fileupload.EdgeBills:
		ids := make([]ent.Value, 0, len(m.bills))
		for id := range m.bills {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileUploadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbills != nil {
		edges = append(edges, fileupload.EdgeBills)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileUploadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fileupload.EdgeBills:
		ids := make([]ent.Value, 0, len(m.removedbills))
		for id := range m.removedbills {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileUploadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbills {
		edges = append(edges, fileupload.EdgeBills)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileUploadMutation) EdgeCleared(name string) bool {
	switch name {
	case fileupload.EdgeBills:
		return m.clearedbills
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileUploadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FileUpload unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileUploadMutation) ResetEdge(name string) error {
	switch name {
	case fileupload.EdgeBills:
		m.ResetBills()
		return nil
	}
	return fmt.Errorf("unknown FileUpload edge %s", name)
}

// TokenUsageMutation represents an operation that mutates the TokenUsage nodes in the graph.
type TokenUsageMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	actor_id               *string
	workspace_id           *uuid.UUID
	file_upload_id         *uuid.UUID
	call_kind              *string
	model                  *string
	prompt_tokens          *int
	addprompt_tokens       *int
	completion_tokens      *int
	addcompletion_tokens   *int
	total_tokens           *int
	addtotal_tokens        *int
	unit_price             *decimal.Decimal
	cost                   *decimal.Decimal
	request_id             *string
	response_time_ms       *int
	addresponse_time_ms    *int
	status                 *string
	error_message          *string
	is_deleted             *bool
	created_at             *time.Time
	clearedFields          map[string]struct{}
	billing_records        map[uuid.UUID]struct{}
	removedbilling_records map[uuid.UUID]struct{}
	clearedbilling_records bool
	done                   bool
	oldValue               func(context.Context) (*TokenUsage, error)
	predicates             []predicate.TokenUsage
}

var _ ent.Mutation = (*TokenUsageMutation)(nil)

// tokenusageOption allows management of the mutation configuration using functional options.
type tokenusageOption func(*TokenUsageMutation)

// newTokenUsageMutation creates new mutation for the TokenUsage entity.
func newTokenUsageMutation(c config, op Op, opts ...tokenusageOption) *TokenUsageMutation {
	m := &TokenUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenUsageID sets the ID field of the mutation.
func withTokenUsageID(id uuid.UUID) tokenusageOption {
	return func(m *TokenUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenUsage
		)
		m.oldValue = func(ctx context.Context) (*TokenUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenUsage sets the old TokenUsage of the mutation.
func withTokenUsage(node *TokenUsage) tokenusageOption {
	return func(m *TokenUsageMutation) {
		m.oldValue = func(context.Context) (*TokenUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenUsage entities.
func (m *TokenUsageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenUsageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenUsageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorID sets the "actor_id" field.
func (m *TokenUsageMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *TokenUsageMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *TokenUsageMutation) ResetActorID() {
	m.actor_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *TokenUsageMutation) SetWorkspaceID(u uuid.UUID) {
	m.workspace_id = &u
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *TokenUsageMutation) WorkspaceID() (r uuid.UUID, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldWorkspaceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (m *TokenUsageMutation) ClearWorkspaceID() {
	m.workspace_id = nil
	m.clearedFields[tokenusage.FieldWorkspaceID] = struct{}{}
}

// WorkspaceIDCleared returns if the "workspace_id" field was cleared in this mutation.
func (m *TokenUsageMutation) WorkspaceIDCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldWorkspaceID]
	return ok
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *TokenUsageMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	delete(m.clearedFields, tokenusage.FieldWorkspaceID)
}

// SetFileUploadID sets the "file_upload_id" field.
func (m *TokenUsageMutation) SetFileUploadID(u uuid.UUID) {
	m.file_upload_id = &u
}

// FileUploadID returns the value of the "file_upload_id" field in the mutation.
func (m *TokenUsageMutation) FileUploadID() (r uuid.UUID, exists bool) {
	v := m.file_upload_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFileUploadID returns the old "file_upload_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldFileUploadID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileUploadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileUploadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileUploadID: %w", err)
	}
	return oldValue.FileUploadID, nil
}

// ClearFileUploadID clears the value of the "file_upload_id" field.
func (m *TokenUsageMutation) ClearFileUploadID() {
	m.file_upload_id = nil
	m.clearedFields[tokenusage.FieldFileUploadID] = struct{}{}
}

// FileUploadIDCleared returns if the "file_upload_id" field was cleared in this mutation.
func (m *TokenUsageMutation) FileUploadIDCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldFileUploadID]
	return ok
}

// ResetFileUploadID resets all changes to the "file_upload_id" field.
func (m *TokenUsageMutation) ResetFileUploadID() {
	m.file_upload_id = nil
	delete(m.clearedFields, tokenusage.FieldFileUploadID)
}

// SetCallKind sets the "call_kind" field.
func (m *TokenUsageMutation) SetCallKind(s string) {
	m.call_kind = &s
}

// CallKind returns the value of the "call_kind" field in the mutation.
func (m *TokenUsageMutation) CallKind() (r string, exists bool) {
	v := m.call_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldCallKind returns the old "call_kind" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCallKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallKind: %w", err)
	}
	return oldValue.CallKind, nil
}

// ResetCallKind resets all changes to the "call_kind" field.
func (m *TokenUsageMutation) ResetCallKind() {
	m.call_kind = nil
}

// SetModel sets the "model" field.
func (m *TokenUsageMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TokenUsageMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *TokenUsageMutation) ClearModel() {
	m.model = nil
	m.clearedFields[tokenusage.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *TokenUsageMutation) ModelCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *TokenUsageMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, tokenusage.FieldModel)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *TokenUsageMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *TokenUsageMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *TokenUsageMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *TokenUsageMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *TokenUsageMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *TokenUsageMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *TokenUsageMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *TokenUsageMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *TokenUsageMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *TokenUsageMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *TokenUsageMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *TokenUsageMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *TokenUsageMutation) SetUnitPrice(d decimal.Decimal) {
	m.unit_price = &d
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *TokenUsageMutation) UnitPrice() (r decimal.Decimal, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldUnitPrice(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *TokenUsageMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.clearedFields[tokenusage.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *TokenUsageMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *TokenUsageMutation) ResetUnitPrice() {
	m.unit_price = nil
	delete(m.clearedFields, tokenusage.FieldUnitPrice)
}

// SetCost sets the "cost" field.
func (m *TokenUsageMutation) SetCost(d decimal.Decimal) {
	m.cost = &d
}

// Cost returns the value of the "cost" field in the mutation.
func (m *TokenUsageMutation) Cost() (r decimal.Decimal, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCost(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// ResetCost resets all changes to the "cost" field.
func (m *TokenUsageMutation) ResetCost() {
	m.cost = nil
}

// SetRequestID sets the "request_id" field.
func (m *TokenUsageMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *TokenUsageMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *TokenUsageMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[tokenusage.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *TokenUsageMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *TokenUsageMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, tokenusage.FieldRequestID)
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *TokenUsageMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *TokenUsageMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldResponseTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *TokenUsageMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *TokenUsageMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (m *TokenUsageMutation) ClearResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	m.clearedFields[tokenusage.FieldResponseTimeMs] = struct{}{}
}

// ResponseTimeMsCleared returns if the "response_time_ms" field was cleared in this mutation.
func (m *TokenUsageMutation) ResponseTimeMsCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldResponseTimeMs]
	return ok
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *TokenUsageMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	delete(m.clearedFields, tokenusage.FieldResponseTimeMs)
}

// SetStatus sets the "status" field.
func (m *TokenUsageMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TokenUsageMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TokenUsageMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TokenUsageMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TokenUsageMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TokenUsageMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[tokenusage.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TokenUsageMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TokenUsageMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, tokenusage.FieldErrorMessage)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *TokenUsageMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *TokenUsageMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *TokenUsageMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddBillingRecordIDs adds the "billing_records" edge to the BillingRecord entity by ids.
func (m *TokenUsageMutation) AddBillingRecordIDs(ids ...uuid.UUID) {
	if m.billing_records == nil {
		m.billing_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.billing_records[ids[i]] = struct{}{}
	}
}

// ClearBillingRecords clears the "billing_records" edge to the BillingRecord entity.
func (m *TokenUsageMutation) ClearBillingRecords() {
	m.clearedbilling_records = true
}

// BillingRecordsCleared reports if the "billing_records" edge to the BillingRecord entity was cleared.
func (m *TokenUsageMutation) BillingRecordsCleared() bool {
	return m.clearedbilling_records
}

// RemoveBillingRecordIDs removes the "billing_records" edge to the BillingRecord entity by IDs.
func (m *TokenUsageMutation) RemoveBillingRecordIDs(ids ...uuid.UUID) {
	if m.removedbilling_records == nil {
		m.removedbilling_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.billing_records, ids[i])
		m.removedbilling_records[ids[i]] = struct{}{}
	}
}

// RemovedBillingRecords returns the removed IDs of the "billing_records" edge to the BillingRecord entity.
func (m *TokenUsageMutation) RemovedBillingRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedbilling_records {
		ids = append(ids, id)
	}
	return
}

// BillingRecordsIDs returns the "billing_records" edge IDs in the mutation.
func (m *TokenUsageMutation) BillingRecordsIDs() (ids []uuid.UUID) {
	for id := range m.billing_records {
		ids = append(ids, id)
	}
	return
}

// ResetBillingRecords resets all changes to the "billing_records" edge.
func (m *TokenUsageMutation) ResetBillingRecords() {
	m.billing_records = nil
	m.clearedbilling_records = false
	m.removedbilling_records = nil
}

// Where appends a list predicates to the TokenUsageMutation builder.
func (m *TokenUsageMutation) Where(ps ...predicate.TokenUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenUsage).
func (m *TokenUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenUsageMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.actor_id != nil {
		fields = append(fields, tokenusage.FieldActorID)
	}
	if m.workspace_id != nil {
		fields = append(fields, tokenusage.FieldWorkspaceID)
	}
	if m.file_upload_id != nil {
		fields = append(fields, tokenusage.FieldFileUploadID)
	}
	if m.call_kind != nil {
		fields = append(fields, tokenusage.FieldCallKind)
	}
	if m.model != nil {
		fields = append(fields, tokenusage.FieldModel)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, tokenusage.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, tokenusage.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, tokenusage.FieldTotalTokens)
	}
	if m.unit_price != nil {
		fields = append(fields, tokenusage.FieldUnitPrice)
	}
	if m.cost != nil {
		fields = append(fields, tokenusage.FieldCost)
	}
	if m.request_id != nil {
		fields = append(fields, tokenusage.FieldRequestID)
	}
	if m.response_time_ms != nil {
		fields = append(fields, tokenusage.FieldResponseTimeMs)
	}
	if m.status != nil {
		fields = append(fields, tokenusage.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, tokenusage.FieldErrorMessage)
	}
	if m.is_deleted != nil {
		fields = append(fields, tokenusage.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, tokenusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldActorID:
		return m.ActorID()
	case tokenusage.FieldWorkspaceID:
		return m.WorkspaceID()
	case tokenusage.FieldFileUploadID:
		return m.FileUploadID()
	case tokenusage.FieldCallKind:
		return m.CallKind()
	case tokenusage.FieldModel:
		return m.Model()
	case tokenusage.FieldPromptTokens:
		return m.PromptTokens()
	case tokenusage.FieldCompletionTokens:
		return m.CompletionTokens()
	case tokenusage.FieldTotalTokens:
		return m.TotalTokens()
	case tokenusage.FieldUnitPrice:
		return m.UnitPrice()
	case tokenusage.FieldCost:
		return m.Cost()
	case tokenusage.FieldRequestID:
		return m.RequestID()
	case tokenusage.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case tokenusage.FieldStatus:
		return m.Status()
	case tokenusage.FieldErrorMessage:
		return m.ErrorMessage()
	case tokenusage.FieldIsDeleted:
		return m.IsDeleted()
	case tokenusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenusage.FieldActorID:
		return m.OldActorID(ctx)
	case tokenusage.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case tokenusage.FieldFileUploadID:
		return m.OldFileUploadID(ctx)
	case tokenusage.FieldCallKind:
		return m.OldCallKind(ctx)
	case tokenusage.FieldModel:
		return m.OldModel(ctx)
	case tokenusage.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case tokenusage.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case tokenusage.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case tokenusage.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case tokenusage.FieldCost:
		return m.OldCost(ctx)
	case tokenusage.FieldRequestID:
		return m.OldRequestID(ctx)
	case tokenusage.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case tokenusage.FieldStatus:
		return m.OldStatus(ctx)
	case tokenusage.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case tokenusage.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case tokenusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case tokenusage.FieldWorkspaceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case tokenusage.FieldFileUploadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileUploadID(v)
		return nil
	case tokenusage.FieldCallKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallKind(v)
		return nil
	case tokenusage.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case tokenusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case tokenusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case tokenusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case tokenusage.FieldUnitPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case tokenusage.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case tokenusage.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case tokenusage.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case tokenusage.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tokenusage.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case tokenusage.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case tokenusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenUsageMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, tokenusage.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, tokenusage.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, tokenusage.FieldTotalTokens)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, tokenusage.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldPromptTokens:
		return m.AddedPromptTokens()
	case tokenusage.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case tokenusage.FieldTotalTokens:
		return m.AddedTotalTokens()
	case tokenusage.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case tokenusage.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case tokenusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case tokenusage.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenusage.FieldWorkspaceID) {
		fields = append(fields, tokenusage.FieldWorkspaceID)
	}
	if m.FieldCleared(tokenusage.FieldFileUploadID) {
		fields = append(fields, tokenusage.FieldFileUploadID)
	}
	if m.FieldCleared(tokenusage.FieldModel) {
		fields = append(fields, tokenusage.FieldModel)
	}
	if m.FieldCleared(tokenusage.FieldUnitPrice) {
		fields = append(fields, tokenusage.FieldUnitPrice)
	}
	if m.FieldCleared(tokenusage.FieldRequestID) {
		fields = append(fields, tokenusage.FieldRequestID)
	}
	if m.FieldCleared(tokenusage.FieldResponseTimeMs) {
		fields = append(fields, tokenusage.FieldResponseTimeMs)
	}
	if m.FieldCleared(tokenusage.FieldErrorMessage) {
		fields = append(fields, tokenusage.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenUsageMutation) ClearField(name string) error {
	switch name {
	case tokenusage.FieldWorkspaceID:
		m.ClearWorkspaceID()
		return nil
	case tokenusage.FieldFileUploadID:
		m.ClearFileUploadID()
		return nil
	case tokenusage.FieldModel:
		m.ClearModel()
		return nil
	case tokenusage.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	case tokenusage.FieldRequestID:
		m.ClearRequestID()
		return nil
	case tokenusage.FieldResponseTimeMs:
		m.ClearResponseTimeMs()
		return nil
	case tokenusage.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenUsageMutation) ResetField(name string) error {
	switch name {
	case tokenusage.FieldActorID:
		m.ResetActorID()
		return nil
	case tokenusage.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case tokenusage.FieldFileUploadID:
		m.ResetFileUploadID()
		return nil
	case tokenusage.FieldCallKind:
		m.ResetCallKind()
		return nil
	case tokenusage.FieldModel:
		m.ResetModel()
		return nil
	case tokenusage.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case tokenusage.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case tokenusage.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case tokenusage.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case tokenusage.FieldCost:
		m.ResetCost()
		return nil
	case tokenusage.FieldRequestID:
		m.ResetRequestID()
		return nil
	case tokenusage.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case tokenusage.FieldStatus:
		m.ResetStatus()
		return nil
	case tokenusage.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case tokenusage.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case tokenusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.billing_records != nil {
		edges = append(edges, tokenusage.EdgeBillingRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tokenusage.EdgeBillingRecords:
		ids := make([]ent.Value, 0, len(m.billing_records))
		for id := range m.billing_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbilling_records != nil {
		edges = append(edges, tokenusage.EdgeBillingRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenUsageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tokenusage.EdgeBillingRecords:
		ids := make([]ent.Value, 0, len(m.removedbilling_records))
		for id := range m.removedbilling_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbilling_records {
		edges = append(edges, tokenusage.EdgeBillingRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case tokenusage.EdgeBillingRecords:
		return m.clearedbilling_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenUsageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TokenUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenUsageMutation) ResetEdge(name string) error {
	switch name {
	case tokenusage.EdgeBillingRecords:
		m.ResetBillingRecords()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage edge %s", name)
}

// UserAccountMutation represents an operation that mutates the UserAccount nodes in the graph.
type UserAccountMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	actor_id        *string
	balance         *decimal.Decimal
	total_recharged *decimal.Decimal
	total_consumed  *decimal.Decimal
	status          *string
	is_deleted      *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*UserAccount, error)
	predicates      []predicate.UserAccount
}

var _ ent.Mutation = (*UserAccountMutation)(nil)

// useraccountOption allows management of the mutation configuration using functional options.
type useraccountOption func(*UserAccountMutation)

// newUserAccountMutation creates new mutation for the UserAccount entity.
func newUserAccountMutation(c config, op Op, opts ...useraccountOption) *UserAccountMutation {
	m := &UserAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeUserAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserAccountID sets the ID field of the mutation.
func withUserAccountID(id uuid.UUID) useraccountOption {
	return func(m *UserAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *UserAccount
		)
		m.oldValue = func(ctx context.Context) (*UserAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserAccount sets the old UserAccount of the mutation.
func withUserAccount(node *UserAccount) useraccountOption {
	return func(m *UserAccountMutation) {
		m.oldValue = func(context.Context) (*UserAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserAccount entities.
func (m *UserAccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserAccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserAccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorID sets the "actor_id" field.
func (m *UserAccountMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *UserAccountMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *UserAccountMutation) ResetActorID() {
	m.actor_id = nil
}

// SetBalance sets the "balance" field.
func (m *UserAccountMutation) SetBalance(d decimal.Decimal) {
	m.balance = &d
}

// Balance returns the value of the "balance" field in the mutation.
func (m *UserAccountMutation) Balance() (r decimal.Decimal, exists bool) {
	v := m.balance
	if v == nil {
		return
	}
	return *v, true
}

// OldBalance returns the old "balance" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldBalance(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalance: %w", err)
	}
	return oldValue.Balance, nil
}

// ResetBalance resets all changes to the "balance" field.
func (m *UserAccountMutation) ResetBalance() {
	m.balance = nil
}

// SetTotalRecharged sets the "total_recharged" field.
func (m *UserAccountMutation) SetTotalRecharged(d decimal.Decimal) {
	m.total_recharged = &d
}

// TotalRecharged returns the value of the "total_recharged" field in the mutation.
func (m *UserAccountMutation) TotalRecharged() (r decimal.Decimal, exists bool) {
	v := m.total_recharged
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRecharged returns the old "total_recharged" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldTotalRecharged(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRecharged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRecharged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRecharged: %w", err)
	}
	return oldValue.TotalRecharged, nil
}

// ResetTotalRecharged resets all changes to the "total_recharged" field.
func (m *UserAccountMutation) ResetTotalRecharged() {
	m.total_recharged = nil
}

// SetTotalConsumed sets the "total_consumed" field.
func (m *UserAccountMutation) SetTotalConsumed(d decimal.Decimal) {
	m.total_consumed = &d
}

// TotalConsumed returns the value of the "total_consumed" field in the mutation.
func (m *UserAccountMutation) TotalConsumed() (r decimal.Decimal, exists bool) {
	v := m.total_consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalConsumed returns the old "total_consumed" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldTotalConsumed(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalConsumed: %w", err)
	}
	return oldValue.TotalConsumed, nil
}

// ResetTotalConsumed resets all changes to the "total_consumed" field.
func (m *UserAccountMutation) ResetTotalConsumed() {
	m.total_consumed = nil
}

// SetStatus sets the "status" field.
func (m *UserAccountMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UserAccountMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserAccountMutation) ResetStatus() {
	m.status = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *UserAccountMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *UserAccountMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *UserAccountMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserAccount entity.
// If the UserAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserAccountMutation builder.
func (m *UserAccountMutation) Where(ps ...predicate.UserAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserAccount).
func (m *UserAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserAccountMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.actor_id != nil {
		fields = append(fields, useraccount.FieldActorID)
	}
	if m.balance != nil {
		fields = append(fields, useraccount.FieldBalance)
	}
	if m.total_recharged != nil {
		fields = append(fields, useraccount.FieldTotalRecharged)
	}
	if m.total_consumed != nil {
		fields = append(fields, useraccount.FieldTotalConsumed)
	}
	if m.status != nil {
		fields = append(fields, useraccount.FieldStatus)
	}
	if m.is_deleted != nil {
		fields = append(fields, useraccount.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, useraccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, useraccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case useraccount.FieldActorID:
		return m.ActorID()
	case useraccount.FieldBalance:
		return m.Balance()
	case useraccount.FieldTotalRecharged:
		return m.TotalRecharged()
	case useraccount.FieldTotalConsumed:
		return m.TotalConsumed()
	case useraccount.FieldStatus:
		return m.Status()
	case useraccount.FieldIsDeleted:
		return m.IsDeleted()
	case useraccount.FieldCreatedAt:
		return m.CreatedAt()
	case useraccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case useraccount.FieldActorID:
		return m.OldActorID(ctx)
	case useraccount.FieldBalance:
		return m.OldBalance(ctx)
	case useraccount.FieldTotalRecharged:
		return m.OldTotalRecharged(ctx)
	case useraccount.FieldTotalConsumed:
		return m.OldTotalConsumed(ctx)
	case useraccount.FieldStatus:
		return m.OldStatus(ctx)
	case useraccount.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case useraccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case useraccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case useraccount.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case useraccount.FieldBalance:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalance(v)
		return nil
	case useraccount.FieldTotalRecharged:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRecharged(v)
		return nil
	case useraccount.FieldTotalConsumed:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalConsumed(v)
		return nil
	case useraccount.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case useraccount.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case useraccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case useraccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserAccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserAccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserAccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserAccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserAccountMutation) ResetField(name string) error {
	switch name {
	case useraccount.FieldActorID:
		m.ResetActorID()
		return nil
	case useraccount.FieldBalance:
		m.ResetBalance()
		return nil
	case useraccount.FieldTotalRecharged:
		m.ResetTotalRecharged()
		return nil
	case useraccount.FieldTotalConsumed:
		m.ResetTotalConsumed()
		return nil
	case useraccount.FieldStatus:
		m.ResetStatus()
		return nil
	case useraccount.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case useraccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case useraccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserAccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserAccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserAccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserAccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserAccount edge %s", name)
}

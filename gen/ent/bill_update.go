// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billfeed/billfeed/gen/ent/bill"
	"github.com/billfeed/billfeed/gen/ent/fileupload"
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/google/uuid"
)

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileUploadID sets the "file_upload_id" field.
func (_u *BillUpdate) SetFileUploadID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetFileUploadID(v)
	return _u
}

// SetNillableFileUploadID sets the "file_upload_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableFileUploadID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetFileUploadID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BillUpdate) SetWorkspaceID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableWorkspaceID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *BillUpdate) SetBank(v string) *BillUpdate {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *BillUpdate) SetNillableBank(v *string) *BillUpdate {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// ClearBank clears the value of the "bank" field.
func (_u *BillUpdate) ClearBank() *BillUpdate {
	_u.mutation.ClearBank()
	return _u
}

// SetTradeDate sets the "trade_date" field.
func (_u *BillUpdate) SetTradeDate(v time.Time) *BillUpdate {
	_u.mutation.SetTradeDate(v)
	return _u
}

// SetNillableTradeDate sets the "trade_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableTradeDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetTradeDate(*v)
	}
	return _u
}

// ClearTradeDate clears the value of the "trade_date" field.
func (_u *BillUpdate) ClearTradeDate() *BillUpdate {
	_u.mutation.ClearTradeDate()
	return _u
}

// SetRecordDate sets the "record_date" field.
func (_u *BillUpdate) SetRecordDate(v time.Time) *BillUpdate {
	_u.mutation.SetRecordDate(v)
	return _u
}

// SetNillableRecordDate sets the "record_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableRecordDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetRecordDate(*v)
	}
	return _u
}

// ClearRecordDate clears the value of the "record_date" field.
func (_u *BillUpdate) ClearRecordDate() *BillUpdate {
	_u.mutation.ClearRecordDate()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillUpdate) SetDescription(v string) *BillUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDescription(v *string) *BillUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BillUpdate) ClearDescription() *BillUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAmountCny sets the "amount_cny" field.
func (_u *BillUpdate) SetAmountCny(v float64) *BillUpdate {
	_u.mutation.ResetAmountCny()
	_u.mutation.SetAmountCny(v)
	return _u
}

// SetNillableAmountCny sets the "amount_cny" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmountCny(v *float64) *BillUpdate {
	if v != nil {
		_u.SetAmountCny(*v)
	}
	return _u
}

// AddAmountCny adds value to the "amount_cny" field.
func (_u *BillUpdate) AddAmountCny(v float64) *BillUpdate {
	_u.mutation.AddAmountCny(v)
	return _u
}

// ClearAmountCny clears the value of the "amount_cny" field.
func (_u *BillUpdate) ClearAmountCny() *BillUpdate {
	_u.mutation.ClearAmountCny()
	return _u
}

// SetCardLast4 sets the "card_last4" field.
func (_u *BillUpdate) SetCardLast4(v string) *BillUpdate {
	_u.mutation.SetCardLast4(v)
	return _u
}

// SetNillableCardLast4 sets the "card_last4" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCardLast4(v *string) *BillUpdate {
	if v != nil {
		_u.SetCardLast4(*v)
	}
	return _u
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (_u *BillUpdate) ClearCardLast4() *BillUpdate {
	_u.mutation.ClearCardLast4()
	return _u
}

// SetAmountForeign sets the "amount_foreign" field.
func (_u *BillUpdate) SetAmountForeign(v float64) *BillUpdate {
	_u.mutation.ResetAmountForeign()
	_u.mutation.SetAmountForeign(v)
	return _u
}

// SetNillableAmountForeign sets the "amount_foreign" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmountForeign(v *float64) *BillUpdate {
	if v != nil {
		_u.SetAmountForeign(*v)
	}
	return _u
}

// AddAmountForeign adds value to the "amount_foreign" field.
func (_u *BillUpdate) AddAmountForeign(v float64) *BillUpdate {
	_u.mutation.AddAmountForeign(v)
	return _u
}

// ClearAmountForeign clears the value of the "amount_foreign" field.
func (_u *BillUpdate) ClearAmountForeign() *BillUpdate {
	_u.mutation.ClearAmountForeign()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BillUpdate) SetCurrency(v string) *BillUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCurrency(v *string) *BillUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *BillUpdate) ClearCurrency() *BillUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillUpdate) SetStatus(v string) *BillUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillUpdate) SetNillableStatus(v *string) *BillUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawLine sets the "raw_line" field.
func (_u *BillUpdate) SetRawLine(v string) *BillUpdate {
	_u.mutation.SetRawLine(v)
	return _u
}

// SetNillableRawLine sets the "raw_line" field if the given value is not nil.
func (_u *BillUpdate) SetNillableRawLine(v *string) *BillUpdate {
	if v != nil {
		_u.SetRawLine(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *BillUpdate) SetIsDeleted(v bool) *BillUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *BillUpdate) SetNillableIsDeleted(v *bool) *BillUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BillUpdate) SetDeletedAt(v time.Time) *BillUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDeletedAt(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BillUpdate) ClearDeletedAt() *BillUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdate) SetCreatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCreatedAt(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFileID sets the "file" edge to the FileUpload entity by ID.
func (_u *BillUpdate) SetFileID(id uuid.UUID) *BillUpdate {
	_u.mutation.SetFileID(id)
	return _u
}

// SetFile sets the "file" edge to the FileUpload entity.
func (_u *BillUpdate) SetFile(v *FileUpload) *BillUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the FileUpload entity.
func (_u *BillUpdate) ClearFile() *BillUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.Bank(); ok {
		if err := bill.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "Bill.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardLast4(); ok {
		if err := bill.CardLast4Validator(v); err != nil {
			return &ValidationError{Name: "card_last4", err: fmt.Errorf(`ent: validator failed for field "Bill.card_last4": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := bill.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Bill.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.file"`)
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(bill.FieldWorkspaceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(bill.FieldBank, field.TypeString, value)
	}
	if _u.mutation.BankCleared() {
		_spec.ClearField(bill.FieldBank, field.TypeString)
	}
	if value, ok := _u.mutation.TradeDate(); ok {
		_spec.SetField(bill.FieldTradeDate, field.TypeTime, value)
	}
	if _u.mutation.TradeDateCleared() {
		_spec.ClearField(bill.FieldTradeDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecordDate(); ok {
		_spec.SetField(bill.FieldRecordDate, field.TypeTime, value)
	}
	if _u.mutation.RecordDateCleared() {
		_spec.ClearField(bill.FieldRecordDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bill.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bill.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AmountCny(); ok {
		_spec.SetField(bill.FieldAmountCny, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountCny(); ok {
		_spec.AddField(bill.FieldAmountCny, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCnyCleared() {
		_spec.ClearField(bill.FieldAmountCny, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CardLast4(); ok {
		_spec.SetField(bill.FieldCardLast4, field.TypeString, value)
	}
	if _u.mutation.CardLast4Cleared() {
		_spec.ClearField(bill.FieldCardLast4, field.TypeString)
	}
	if value, ok := _u.mutation.AmountForeign(); ok {
		_spec.SetField(bill.FieldAmountForeign, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountForeign(); ok {
		_spec.AddField(bill.FieldAmountForeign, field.TypeFloat64, value)
	}
	if _u.mutation.AmountForeignCleared() {
		_spec.ClearField(bill.FieldAmountForeign, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(bill.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawLine(); ok {
		_spec.SetField(bill.FieldRawLine, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(bill.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(bill.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(bill.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.FileTable,
			Columns: []string{bill.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileupload.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.FileTable,
			Columns: []string{bill.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileupload.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetFileUploadID sets the "file_upload_id" field.
func (_u *BillUpdateOne) SetFileUploadID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetFileUploadID(v)
	return _u
}

// SetNillableFileUploadID sets the "file_upload_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableFileUploadID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetFileUploadID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BillUpdateOne) SetWorkspaceID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *BillUpdateOne) SetBank(v string) *BillUpdateOne {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableBank(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// ClearBank clears the value of the "bank" field.
func (_u *BillUpdateOne) ClearBank() *BillUpdateOne {
	_u.mutation.ClearBank()
	return _u
}

// SetTradeDate sets the "trade_date" field.
func (_u *BillUpdateOne) SetTradeDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetTradeDate(v)
	return _u
}

// SetNillableTradeDate sets the "trade_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableTradeDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetTradeDate(*v)
	}
	return _u
}

// ClearTradeDate clears the value of the "trade_date" field.
func (_u *BillUpdateOne) ClearTradeDate() *BillUpdateOne {
	_u.mutation.ClearTradeDate()
	return _u
}

// SetRecordDate sets the "record_date" field.
func (_u *BillUpdateOne) SetRecordDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetRecordDate(v)
	return _u
}

// SetNillableRecordDate sets the "record_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableRecordDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetRecordDate(*v)
	}
	return _u
}

// ClearRecordDate clears the value of the "record_date" field.
func (_u *BillUpdateOne) ClearRecordDate() *BillUpdateOne {
	_u.mutation.ClearRecordDate()
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillUpdateOne) SetDescription(v string) *BillUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDescription(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BillUpdateOne) ClearDescription() *BillUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAmountCny sets the "amount_cny" field.
func (_u *BillUpdateOne) SetAmountCny(v float64) *BillUpdateOne {
	_u.mutation.ResetAmountCny()
	_u.mutation.SetAmountCny(v)
	return _u
}

// SetNillableAmountCny sets the "amount_cny" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmountCny(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetAmountCny(*v)
	}
	return _u
}

// AddAmountCny adds value to the "amount_cny" field.
func (_u *BillUpdateOne) AddAmountCny(v float64) *BillUpdateOne {
	_u.mutation.AddAmountCny(v)
	return _u
}

// ClearAmountCny clears the value of the "amount_cny" field.
func (_u *BillUpdateOne) ClearAmountCny() *BillUpdateOne {
	_u.mutation.ClearAmountCny()
	return _u
}

// SetCardLast4 sets the "card_last4" field.
func (_u *BillUpdateOne) SetCardLast4(v string) *BillUpdateOne {
	_u.mutation.SetCardLast4(v)
	return _u
}

// SetNillableCardLast4 sets the "card_last4" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCardLast4(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCardLast4(*v)
	}
	return _u
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (_u *BillUpdateOne) ClearCardLast4() *BillUpdateOne {
	_u.mutation.ClearCardLast4()
	return _u
}

// SetAmountForeign sets the "amount_foreign" field.
func (_u *BillUpdateOne) SetAmountForeign(v float64) *BillUpdateOne {
	_u.mutation.ResetAmountForeign()
	_u.mutation.SetAmountForeign(v)
	return _u
}

// SetNillableAmountForeign sets the "amount_foreign" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmountForeign(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetAmountForeign(*v)
	}
	return _u
}

// AddAmountForeign adds value to the "amount_foreign" field.
func (_u *BillUpdateOne) AddAmountForeign(v float64) *BillUpdateOne {
	_u.mutation.AddAmountForeign(v)
	return _u
}

// ClearAmountForeign clears the value of the "amount_foreign" field.
func (_u *BillUpdateOne) ClearAmountForeign() *BillUpdateOne {
	_u.mutation.ClearAmountForeign()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BillUpdateOne) SetCurrency(v string) *BillUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCurrency(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *BillUpdateOne) ClearCurrency() *BillUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillUpdateOne) SetStatus(v string) *BillUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableStatus(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawLine sets the "raw_line" field.
func (_u *BillUpdateOne) SetRawLine(v string) *BillUpdateOne {
	_u.mutation.SetRawLine(v)
	return _u
}

// SetNillableRawLine sets the "raw_line" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableRawLine(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetRawLine(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *BillUpdateOne) SetIsDeleted(v bool) *BillUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableIsDeleted(v *bool) *BillUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BillUpdateOne) SetDeletedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDeletedAt(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BillUpdateOne) ClearDeletedAt() *BillUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdateOne) SetCreatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCreatedAt(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFileID sets the "file" edge to the FileUpload entity by ID.
func (_u *BillUpdateOne) SetFileID(id uuid.UUID) *BillUpdateOne {
	_u.mutation.SetFileID(id)
	return _u
}

// SetFile sets the "file" edge to the FileUpload entity.
func (_u *BillUpdateOne) SetFile(v *FileUpload) *BillUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the FileUpload entity.
func (_u *BillUpdateOne) ClearFile() *BillUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.Bank(); ok {
		if err := bill.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "Bill.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardLast4(); ok {
		if err := bill.CardLast4Validator(v); err != nil {
			return &ValidationError{Name: "card_last4", err: fmt.Errorf(`ent: validator failed for field "Bill.card_last4": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := bill.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Bill.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.file"`)
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(bill.FieldWorkspaceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(bill.FieldBank, field.TypeString, value)
	}
	if _u.mutation.BankCleared() {
		_spec.ClearField(bill.FieldBank, field.TypeString)
	}
	if value, ok := _u.mutation.TradeDate(); ok {
		_spec.SetField(bill.FieldTradeDate, field.TypeTime, value)
	}
	if _u.mutation.TradeDateCleared() {
		_spec.ClearField(bill.FieldTradeDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RecordDate(); ok {
		_spec.SetField(bill.FieldRecordDate, field.TypeTime, value)
	}
	if _u.mutation.RecordDateCleared() {
		_spec.ClearField(bill.FieldRecordDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bill.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(bill.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AmountCny(); ok {
		_spec.SetField(bill.FieldAmountCny, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountCny(); ok {
		_spec.AddField(bill.FieldAmountCny, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCnyCleared() {
		_spec.ClearField(bill.FieldAmountCny, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CardLast4(); ok {
		_spec.SetField(bill.FieldCardLast4, field.TypeString, value)
	}
	if _u.mutation.CardLast4Cleared() {
		_spec.ClearField(bill.FieldCardLast4, field.TypeString)
	}
	if value, ok := _u.mutation.AmountForeign(); ok {
		_spec.SetField(bill.FieldAmountForeign, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountForeign(); ok {
		_spec.AddField(bill.FieldAmountForeign, field.TypeFloat64, value)
	}
	if _u.mutation.AmountForeignCleared() {
		_spec.ClearField(bill.FieldAmountForeign, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(bill.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawLine(); ok {
		_spec.SetField(bill.FieldRawLine, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(bill.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(bill.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(bill.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.FileTable,
			Columns: []string{bill.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileupload.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.FileTable,
			Columns: []string{bill.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fileupload.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

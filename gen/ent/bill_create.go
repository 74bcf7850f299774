// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billfeed/billfeed/gen/ent/bill"
	"github.com/billfeed/billfeed/gen/ent/fileupload"
	"github.com/google/uuid"
)

// BillCreate is the builder for creating a Bill entity.
type BillCreate struct {
	config
	mutation *BillMutation
	hooks    []Hook
}

// SetFileUploadID sets the "file_upload_id" field.
func (_c *BillCreate) SetFileUploadID(v uuid.UUID) *BillCreate {
	_c.mutation.SetFileUploadID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *BillCreate) SetWorkspaceID(v uuid.UUID) *BillCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetBank sets the "bank" field.
func (_c *BillCreate) SetBank(v string) *BillCreate {
	_c.mutation.SetBank(v)
	return _c
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_c *BillCreate) SetNillableBank(v *string) *BillCreate {
	if v != nil {
		_c.SetBank(*v)
	}
	return _c
}

// SetTradeDate sets the "trade_date" field.
func (_c *BillCreate) SetTradeDate(v time.Time) *BillCreate {
	_c.mutation.SetTradeDate(v)
	return _c
}

// SetNillableTradeDate sets the "trade_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableTradeDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetTradeDate(*v)
	}
	return _c
}

// SetRecordDate sets the "record_date" field.
func (_c *BillCreate) SetRecordDate(v time.Time) *BillCreate {
	_c.mutation.SetRecordDate(v)
	return _c
}

// SetNillableRecordDate sets the "record_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableRecordDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetRecordDate(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *BillCreate) SetDescription(v string) *BillCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BillCreate) SetNillableDescription(v *string) *BillCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAmountCny sets the "amount_cny" field.
func (_c *BillCreate) SetAmountCny(v float64) *BillCreate {
	_c.mutation.SetAmountCny(v)
	return _c
}

// SetNillableAmountCny sets the "amount_cny" field if the given value is not nil.
func (_c *BillCreate) SetNillableAmountCny(v *float64) *BillCreate {
	if v != nil {
		_c.SetAmountCny(*v)
	}
	return _c
}

// SetCardLast4 sets the "card_last4" field.
func (_c *BillCreate) SetCardLast4(v string) *BillCreate {
	_c.mutation.SetCardLast4(v)
	return _c
}

// SetNillableCardLast4 sets the "card_last4" field if the given value is not nil.
func (_c *BillCreate) SetNillableCardLast4(v *string) *BillCreate {
	if v != nil {
		_c.SetCardLast4(*v)
	}
	return _c
}

// SetAmountForeign sets the "amount_foreign" field.
func (_c *BillCreate) SetAmountForeign(v float64) *BillCreate {
	_c.mutation.SetAmountForeign(v)
	return _c
}

// SetNillableAmountForeign sets the "amount_foreign" field if the given value is not nil.
func (_c *BillCreate) SetNillableAmountForeign(v *float64) *BillCreate {
	if v != nil {
		_c.SetAmountForeign(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *BillCreate) SetCurrency(v string) *BillCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *BillCreate) SetNillableCurrency(v *string) *BillCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BillCreate) SetStatus(v string) *BillCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BillCreate) SetNillableStatus(v *string) *BillCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRawLine sets the "raw_line" field.
func (_c *BillCreate) SetRawLine(v string) *BillCreate {
	_c.mutation.SetRawLine(v)
	return _c
}

// SetNillableRawLine sets the "raw_line" field if the given value is not nil.
func (_c *BillCreate) SetNillableRawLine(v *string) *BillCreate {
	if v != nil {
		_c.SetRawLine(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *BillCreate) SetIsDeleted(v bool) *BillCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *BillCreate) SetNillableIsDeleted(v *bool) *BillCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *BillCreate) SetDeletedAt(v time.Time) *BillCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableDeletedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillCreate) SetCreatedAt(v time.Time) *BillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillCreate) SetID(v uuid.UUID) *BillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillCreate) SetNillableID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFileID sets the "file" edge to the FileUpload entity by ID.
func (_c *BillCreate) SetFileID(id uuid.UUID) *BillCreate {
	_c.mutation.SetFileID(id)
	return _c
}

// SetFile sets the "file" edge to the FileUpload entity.
func (_c *BillCreate) SetFile(v *FileUpload) *BillCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_c *BillCreate) Mutation() *BillMutation {
	return _c.mutation
}

// Save creates the Bill in the database.
func (_c *BillCreate) Save(ctx context.Context) (*Bill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillCreate) SaveX(ctx context.Context) *Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := bill.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RawLine(); !ok {
		v := bill.DefaultRawLine
		_c.mutation.SetRawLine(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := bill.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillCreate) check() error {
	if _, ok := _c.mutation.FileUploadID(); !ok {
		return &ValidationError{Name: "file_upload_id", err: errors.New(`ent: missing required field "Bill.file_upload_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Bill.workspace_id"`)}
	}
	if v, ok := _c.mutation.Bank(); ok {
		if err := bill.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "Bill.bank": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CardLast4(); ok {
		if err := bill.CardLast4Validator(v); err != nil {
			return &ValidationError{Name: "card_last4", err: fmt.Errorf(`ent: validator failed for field "Bill.card_last4": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := bill.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Bill.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Bill.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bill.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Bill.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawLine(); !ok {
		return &ValidationError{Name: "raw_line", err: errors.New(`ent: missing required field "Bill.raw_line"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Bill.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bill.created_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "Bill.file"`)}
	}
	return nil
}

func (_c *BillCreate) sqlSave(ctx context.Context) (*Bill, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillCreate) createSpec() (*Bill, *sqlgraph.CreateSpec) {
	var (
		_node = &Bill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bill.Table, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(bill.FieldWorkspaceID, field.TypeUUID, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Bank(); ok {
		_spec.SetField(bill.FieldBank, field.TypeString, value)
		_node.Bank = value
	}
	if value, ok := _c.mutation.TradeDate(); ok {
		_spec.SetField(bill.FieldTradeDate, field.TypeTime, value)
		_node.TradeDate = &value
	}
	if value, ok := _c.mutation.RecordDate(); ok {
		_spec.SetField(bill.FieldRecordDate, field.TypeTime, value)
		_node.RecordDate = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(bill.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AmountCny(); ok {
		_spec.SetField(bill.FieldAmountCny, field.TypeFloat64, value)
		_node.AmountCny = &value
	}
	if value, ok := _c.mutation.CardLast4(); ok {
		_spec.SetField(bill.FieldCardLast4, field.TypeString, value)
		_node.CardLast4 = value
	}
	if value, ok := _c.mutation.AmountForeign(); ok {
		_spec.SetField(bill.FieldAmountForeign, field.TypeFloat64, value)
		_node.AmountForeign = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(bill.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bill.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RawLine(); ok {
		_spec.SetField(bill.FieldRawLine, field.TypeString, value)
		_node.RawLine = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(bill.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(bill.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileUploadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillCreateBulk is the builder for creating many Bill entities in bulk.
type BillCreateBulk struct {
	config
	err      error
	builders []*BillCreate
}

// Save creates the Bill entities in the database.
func (_c *BillCreateBulk) Save(ctx context.Context) ([]*Bill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillCreateBulk) SaveX(ctx context.Context) []*Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

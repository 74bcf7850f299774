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
	"github.com/billfeed/billfeed/gen/ent/billingrecord"
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/billfeed/billfeed/gen/ent/tokenusage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingRecordUpdate is the builder for updating BillingRecord entities.
type BillingRecordUpdate struct {
	config
	hooks    []Hook
	mutation *BillingRecordMutation
}

// Where appends a list predicates to the BillingRecordUpdate builder.
func (_u *BillingRecordUpdate) Where(ps ...predicate.BillingRecord) *BillingRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *BillingRecordUpdate) SetActorID(v string) *BillingRecordUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableActorID(v *string) *BillingRecordUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetTokenUsageID sets the "token_usage_id" field.
func (_u *BillingRecordUpdate) SetTokenUsageID(v uuid.UUID) *BillingRecordUpdate {
	_u.mutation.SetTokenUsageID(v)
	return _u
}

// SetNillableTokenUsageID sets the "token_usage_id" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableTokenUsageID(v *uuid.UUID) *BillingRecordUpdate {
	if v != nil {
		_u.SetTokenUsageID(*v)
	}
	return _u
}

// ClearTokenUsageID clears the value of the "token_usage_id" field.
func (_u *BillingRecordUpdate) ClearTokenUsageID() *BillingRecordUpdate {
	_u.mutation.ClearTokenUsageID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillingRecordUpdate) SetAmount(v decimal.Decimal) *BillingRecordUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableAmount(v *decimal.Decimal) *BillingRecordUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetBalanceBefore sets the "balance_before" field.
func (_u *BillingRecordUpdate) SetBalanceBefore(v decimal.Decimal) *BillingRecordUpdate {
	_u.mutation.SetBalanceBefore(v)
	return _u
}

// SetNillableBalanceBefore sets the "balance_before" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableBalanceBefore(v *decimal.Decimal) *BillingRecordUpdate {
	if v != nil {
		_u.SetBalanceBefore(*v)
	}
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *BillingRecordUpdate) SetBalanceAfter(v decimal.Decimal) *BillingRecordUpdate {
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableBalanceAfter(v *decimal.Decimal) *BillingRecordUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// SetBillingType sets the "billing_type" field.
func (_u *BillingRecordUpdate) SetBillingType(v string) *BillingRecordUpdate {
	_u.mutation.SetBillingType(v)
	return _u
}

// SetNillableBillingType sets the "billing_type" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableBillingType(v *string) *BillingRecordUpdate {
	if v != nil {
		_u.SetBillingType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillingRecordUpdate) SetDescription(v string) *BillingRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableDescription(v *string) *BillingRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BillingRecordUpdate) ClearDescription() *BillingRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *BillingRecordUpdate) SetIsDeleted(v bool) *BillingRecordUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableIsDeleted(v *bool) *BillingRecordUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillingRecordUpdate) SetCreatedAt(v time.Time) *BillingRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillingRecordUpdate) SetNillableCreatedAt(v *time.Time) *BillingRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTokenUsage sets the "token_usage" edge to the TokenUsage entity.
func (_u *BillingRecordUpdate) SetTokenUsage(v *TokenUsage) *BillingRecordUpdate {
	return _u.SetTokenUsageID(v.ID)
}

// Mutation returns the BillingRecordMutation object of the builder.
func (_u *BillingRecordUpdate) Mutation() *BillingRecordMutation {
	return _u.mutation
}

// ClearTokenUsage clears the "token_usage" edge to the TokenUsage entity.
func (_u *BillingRecordUpdate) ClearTokenUsage() *BillingRecordUpdate {
	_u.mutation.ClearTokenUsage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillingRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillingRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingRecordUpdate) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := billingrecord.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "BillingRecord.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillingType(); ok {
		if err := billingrecord.BillingTypeValidator(v); err != nil {
			return &ValidationError{Name: "billing_type", err: fmt.Errorf(`ent: validator failed for field "BillingRecord.billing_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingrecord.Table, billingrecord.Columns, sqlgraph.NewFieldSpec(billingrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(billingrecord.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(billingrecord.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.BalanceBefore(); ok {
		_spec.SetField(billingrecord.FieldBalanceBefore, field.TypeOther, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(billingrecord.FieldBalanceAfter, field.TypeOther, value)
	}
	if value, ok := _u.mutation.BillingType(); ok {
		_spec.SetField(billingrecord.FieldBillingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(billingrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(billingrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(billingrecord.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(billingrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TokenUsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billingrecord.TokenUsageTable,
			Columns: []string{billingrecord.TokenUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billingrecord.TokenUsageTable,
			Columns: []string{billingrecord.TokenUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillingRecordUpdateOne is the builder for updating a single BillingRecord entity.
type BillingRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingRecordMutation
}

// SetActorID sets the "actor_id" field.
func (_u *BillingRecordUpdateOne) SetActorID(v string) *BillingRecordUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableActorID(v *string) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetTokenUsageID sets the "token_usage_id" field.
func (_u *BillingRecordUpdateOne) SetTokenUsageID(v uuid.UUID) *BillingRecordUpdateOne {
	_u.mutation.SetTokenUsageID(v)
	return _u
}

// SetNillableTokenUsageID sets the "token_usage_id" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableTokenUsageID(v *uuid.UUID) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetTokenUsageID(*v)
	}
	return _u
}

// ClearTokenUsageID clears the value of the "token_usage_id" field.
func (_u *BillingRecordUpdateOne) ClearTokenUsageID() *BillingRecordUpdateOne {
	_u.mutation.ClearTokenUsageID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillingRecordUpdateOne) SetAmount(v decimal.Decimal) *BillingRecordUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableAmount(v *decimal.Decimal) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetBalanceBefore sets the "balance_before" field.
func (_u *BillingRecordUpdateOne) SetBalanceBefore(v decimal.Decimal) *BillingRecordUpdateOne {
	_u.mutation.SetBalanceBefore(v)
	return _u
}

// SetNillableBalanceBefore sets the "balance_before" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableBalanceBefore(v *decimal.Decimal) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetBalanceBefore(*v)
	}
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *BillingRecordUpdateOne) SetBalanceAfter(v decimal.Decimal) *BillingRecordUpdateOne {
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableBalanceAfter(v *decimal.Decimal) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// SetBillingType sets the "billing_type" field.
func (_u *BillingRecordUpdateOne) SetBillingType(v string) *BillingRecordUpdateOne {
	_u.mutation.SetBillingType(v)
	return _u
}

// SetNillableBillingType sets the "billing_type" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableBillingType(v *string) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetBillingType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillingRecordUpdateOne) SetDescription(v string) *BillingRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableDescription(v *string) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BillingRecordUpdateOne) ClearDescription() *BillingRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *BillingRecordUpdateOne) SetIsDeleted(v bool) *BillingRecordUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableIsDeleted(v *bool) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillingRecordUpdateOne) SetCreatedAt(v time.Time) *BillingRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillingRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *BillingRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTokenUsage sets the "token_usage" edge to the TokenUsage entity.
func (_u *BillingRecordUpdateOne) SetTokenUsage(v *TokenUsage) *BillingRecordUpdateOne {
	return _u.SetTokenUsageID(v.ID)
}

// Mutation returns the BillingRecordMutation object of the builder.
func (_u *BillingRecordUpdateOne) Mutation() *BillingRecordMutation {
	return _u.mutation
}

// ClearTokenUsage clears the "token_usage" edge to the TokenUsage entity.
func (_u *BillingRecordUpdateOne) ClearTokenUsage() *BillingRecordUpdateOne {
	_u.mutation.ClearTokenUsage()
	return _u
}

// Where appends a list predicates to the BillingRecordUpdate builder.
func (_u *BillingRecordUpdateOne) Where(ps ...predicate.BillingRecord) *BillingRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillingRecordUpdateOne) Select(field string, fields ...string) *BillingRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BillingRecord entity.
func (_u *BillingRecordUpdateOne) Save(ctx context.Context) (*BillingRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingRecordUpdateOne) SaveX(ctx context.Context) *BillingRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillingRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillingRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := billingrecord.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "BillingRecord.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillingType(); ok {
		if err := billingrecord.BillingTypeValidator(v); err != nil {
			return &ValidationError{Name: "billing_type", err: fmt.Errorf(`ent: validator failed for field "BillingRecord.billing_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BillingRecordUpdateOne) sqlSave(ctx context.Context) (_node *BillingRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billingrecord.Table, billingrecord.Columns, sqlgraph.NewFieldSpec(billingrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillingRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingrecord.FieldID)
		for _, f := range fields {
			if !billingrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billingrecord.FieldID {
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
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(billingrecord.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(billingrecord.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.BalanceBefore(); ok {
		_spec.SetField(billingrecord.FieldBalanceBefore, field.TypeOther, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(billingrecord.FieldBalanceAfter, field.TypeOther, value)
	}
	if value, ok := _u.mutation.BillingType(); ok {
		_spec.SetField(billingrecord.FieldBillingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(billingrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(billingrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(billingrecord.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(billingrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TokenUsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billingrecord.TokenUsageTable,
			Columns: []string{billingrecord.TokenUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billingrecord.TokenUsageTable,
			Columns: []string{billingrecord.TokenUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BillingRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/billfeed/billfeed/gen/ent/useraccount"
	"github.com/shopspring/decimal"
)

// UserAccountUpdate is the builder for updating UserAccount entities.
type UserAccountUpdate struct {
	config
	hooks    []Hook
	mutation *UserAccountMutation
}

// Where appends a list predicates to the UserAccountUpdate builder.
func (_u *UserAccountUpdate) Where(ps ...predicate.UserAccount) *UserAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *UserAccountUpdate) SetActorID(v string) *UserAccountUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *UserAccountUpdate) SetNillableActorID(v *string) *UserAccountUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetBalance sets the "balance" field.
func (_u *UserAccountUpdate) SetBalance(v decimal.Decimal) *UserAccountUpdate {
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *UserAccountUpdate) SetNillableBalance(v *decimal.Decimal) *UserAccountUpdate {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// SetTotalRecharged sets the "total_recharged" field.
func (_u *UserAccountUpdate) SetTotalRecharged(v decimal.Decimal) *UserAccountUpdate {
	_u.mutation.SetTotalRecharged(v)
	return _u
}

// SetNillableTotalRecharged sets the "total_recharged" field if the given value is not nil.
func (_u *UserAccountUpdate) SetNillableTotalRecharged(v *decimal.Decimal) *UserAccountUpdate {
	if v != nil {
		_u.SetTotalRecharged(*v)
	}
	return _u
}

// SetTotalConsumed sets the "total_consumed" field.
func (_u *UserAccountUpdate) SetTotalConsumed(v decimal.Decimal) *UserAccountUpdate {
	_u.mutation.SetTotalConsumed(v)
	return _u
}

// SetNillableTotalConsumed sets the "total_consumed" field if the given value is not nil.
func (_u *UserAccountUpdate) SetNillableTotalConsumed(v *decimal.Decimal) *UserAccountUpdate {
	if v != nil {
		_u.SetTotalConsumed(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserAccountUpdate) SetStatus(v string) *UserAccountUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserAccountUpdate) SetNillableStatus(v *string) *UserAccountUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *UserAccountUpdate) SetIsDeleted(v bool) *UserAccountUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *UserAccountUpdate) SetNillableIsDeleted(v *bool) *UserAccountUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserAccountUpdate) SetCreatedAt(v time.Time) *UserAccountUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserAccountUpdate) SetNillableCreatedAt(v *time.Time) *UserAccountUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserAccountUpdate) SetUpdatedAt(v time.Time) *UserAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserAccountMutation object of the builder.
func (_u *UserAccountUpdate) Mutation() *UserAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := useraccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserAccountUpdate) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := useraccount.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "UserAccount.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := useraccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserAccount.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UserAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(useraccount.Table, useraccount.Columns, sqlgraph.NewFieldSpec(useraccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(useraccount.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(useraccount.FieldBalance, field.TypeOther, value)
	}
	if value, ok := _u.mutation.TotalRecharged(); ok {
		_spec.SetField(useraccount.FieldTotalRecharged, field.TypeOther, value)
	}
	if value, ok := _u.mutation.TotalConsumed(); ok {
		_spec.SetField(useraccount.FieldTotalConsumed, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(useraccount.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(useraccount.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(useraccount.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(useraccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useraccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserAccountUpdateOne is the builder for updating a single UserAccount entity.
type UserAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserAccountMutation
}

// SetActorID sets the "actor_id" field.
func (_u *UserAccountUpdateOne) SetActorID(v string) *UserAccountUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *UserAccountUpdateOne) SetNillableActorID(v *string) *UserAccountUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetBalance sets the "balance" field.
func (_u *UserAccountUpdateOne) SetBalance(v decimal.Decimal) *UserAccountUpdateOne {
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *UserAccountUpdateOne) SetNillableBalance(v *decimal.Decimal) *UserAccountUpdateOne {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// SetTotalRecharged sets the "total_recharged" field.
func (_u *UserAccountUpdateOne) SetTotalRecharged(v decimal.Decimal) *UserAccountUpdateOne {
	_u.mutation.SetTotalRecharged(v)
	return _u
}

// SetNillableTotalRecharged sets the "total_recharged" field if the given value is not nil.
func (_u *UserAccountUpdateOne) SetNillableTotalRecharged(v *decimal.Decimal) *UserAccountUpdateOne {
	if v != nil {
		_u.SetTotalRecharged(*v)
	}
	return _u
}

// SetTotalConsumed sets the "total_consumed" field.
func (_u *UserAccountUpdateOne) SetTotalConsumed(v decimal.Decimal) *UserAccountUpdateOne {
	_u.mutation.SetTotalConsumed(v)
	return _u
}

// SetNillableTotalConsumed sets the "total_consumed" field if the given value is not nil.
func (_u *UserAccountUpdateOne) SetNillableTotalConsumed(v *decimal.Decimal) *UserAccountUpdateOne {
	if v != nil {
		_u.SetTotalConsumed(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserAccountUpdateOne) SetStatus(v string) *UserAccountUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserAccountUpdateOne) SetNillableStatus(v *string) *UserAccountUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *UserAccountUpdateOne) SetIsDeleted(v bool) *UserAccountUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *UserAccountUpdateOne) SetNillableIsDeleted(v *bool) *UserAccountUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserAccountUpdateOne) SetCreatedAt(v time.Time) *UserAccountUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserAccountUpdateOne) SetNillableCreatedAt(v *time.Time) *UserAccountUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserAccountUpdateOne) SetUpdatedAt(v time.Time) *UserAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserAccountMutation object of the builder.
func (_u *UserAccountUpdateOne) Mutation() *UserAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserAccountUpdate builder.
func (_u *UserAccountUpdateOne) Where(ps ...predicate.UserAccount) *UserAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserAccountUpdateOne) Select(field string, fields ...string) *UserAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserAccount entity.
func (_u *UserAccountUpdateOne) Save(ctx context.Context) (*UserAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserAccountUpdateOne) SaveX(ctx context.Context) *UserAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := useraccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserAccountUpdateOne) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := useraccount.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "UserAccount.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := useraccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserAccount.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UserAccountUpdateOne) sqlSave(ctx context.Context) (_node *UserAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(useraccount.Table, useraccount.Columns, sqlgraph.NewFieldSpec(useraccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, useraccount.FieldID)
		for _, f := range fields {
			if !useraccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != useraccount.FieldID {
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
		_spec.SetField(useraccount.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(useraccount.FieldBalance, field.TypeOther, value)
	}
	if value, ok := _u.mutation.TotalRecharged(); ok {
		_spec.SetField(useraccount.FieldTotalRecharged, field.TypeOther, value)
	}
	if value, ok := _u.mutation.TotalConsumed(); ok {
		_spec.SetField(useraccount.FieldTotalConsumed, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(useraccount.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(useraccount.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(useraccount.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(useraccount.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useraccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

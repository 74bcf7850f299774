// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billfeed/billfeed/gen/ent/useraccount"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserAccountCreate is the builder for creating a UserAccount entity.
type UserAccountCreate struct {
	config
	mutation *UserAccountMutation
	hooks    []Hook
}

// SetActorID sets the "actor_id" field.
func (_c *UserAccountCreate) SetActorID(v string) *UserAccountCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetBalance sets the "balance" field.
func (_c *UserAccountCreate) SetBalance(v decimal.Decimal) *UserAccountCreate {
	_c.mutation.SetBalance(v)
	return _c
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableBalance(v *decimal.Decimal) *UserAccountCreate {
	if v != nil {
		_c.SetBalance(*v)
	}
	return _c
}

// SetTotalRecharged sets the "total_recharged" field.
func (_c *UserAccountCreate) SetTotalRecharged(v decimal.Decimal) *UserAccountCreate {
	_c.mutation.SetTotalRecharged(v)
	return _c
}

// SetNillableTotalRecharged sets the "total_recharged" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableTotalRecharged(v *decimal.Decimal) *UserAccountCreate {
	if v != nil {
		_c.SetTotalRecharged(*v)
	}
	return _c
}

// SetTotalConsumed sets the "total_consumed" field.
func (_c *UserAccountCreate) SetTotalConsumed(v decimal.Decimal) *UserAccountCreate {
	_c.mutation.SetTotalConsumed(v)
	return _c
}

// SetNillableTotalConsumed sets the "total_consumed" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableTotalConsumed(v *decimal.Decimal) *UserAccountCreate {
	if v != nil {
		_c.SetTotalConsumed(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserAccountCreate) SetStatus(v string) *UserAccountCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableStatus(v *string) *UserAccountCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *UserAccountCreate) SetIsDeleted(v bool) *UserAccountCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableIsDeleted(v *bool) *UserAccountCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserAccountCreate) SetCreatedAt(v time.Time) *UserAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableCreatedAt(v *time.Time) *UserAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserAccountCreate) SetUpdatedAt(v time.Time) *UserAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableUpdatedAt(v *time.Time) *UserAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserAccountCreate) SetID(v uuid.UUID) *UserAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserAccountCreate) SetNillableID(v *uuid.UUID) *UserAccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UserAccountMutation object of the builder.
func (_c *UserAccountCreate) Mutation() *UserAccountMutation {
	return _c.mutation
}

// Save creates the UserAccount in the database.
func (_c *UserAccountCreate) Save(ctx context.Context) (*UserAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserAccountCreate) SaveX(ctx context.Context) *UserAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserAccountCreate) defaults() {
	if _, ok := _c.mutation.Balance(); !ok {
		v := useraccount.DefaultBalance
		_c.mutation.SetBalance(v)
	}
	if _, ok := _c.mutation.TotalRecharged(); !ok {
		v := useraccount.DefaultTotalRecharged
		_c.mutation.SetTotalRecharged(v)
	}
	if _, ok := _c.mutation.TotalConsumed(); !ok {
		v := useraccount.DefaultTotalConsumed
		_c.mutation.SetTotalConsumed(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := useraccount.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := useraccount.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := useraccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := useraccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := useraccount.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserAccountCreate) check() error {
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "UserAccount.actor_id"`)}
	}
	if v, ok := _c.mutation.ActorID(); ok {
		if err := useraccount.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "UserAccount.actor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Balance(); !ok {
		return &ValidationError{Name: "balance", err: errors.New(`ent: missing required field "UserAccount.balance"`)}
	}
	if _, ok := _c.mutation.TotalRecharged(); !ok {
		return &ValidationError{Name: "total_recharged", err: errors.New(`ent: missing required field "UserAccount.total_recharged"`)}
	}
	if _, ok := _c.mutation.TotalConsumed(); !ok {
		return &ValidationError{Name: "total_consumed", err: errors.New(`ent: missing required field "UserAccount.total_consumed"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UserAccount.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := useraccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserAccount.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "UserAccount.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserAccount.updated_at"`)}
	}
	return nil
}

func (_c *UserAccountCreate) sqlSave(ctx context.Context) (*UserAccount, error) {
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

func (_c *UserAccountCreate) createSpec() (*UserAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &UserAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(useraccount.Table, sqlgraph.NewFieldSpec(useraccount.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(useraccount.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.Balance(); ok {
		_spec.SetField(useraccount.FieldBalance, field.TypeOther, value)
		_node.Balance = value
	}
	if value, ok := _c.mutation.TotalRecharged(); ok {
		_spec.SetField(useraccount.FieldTotalRecharged, field.TypeOther, value)
		_node.TotalRecharged = value
	}
	if value, ok := _c.mutation.TotalConsumed(); ok {
		_spec.SetField(useraccount.FieldTotalConsumed, field.TypeOther, value)
		_node.TotalConsumed = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(useraccount.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(useraccount.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(useraccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(useraccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserAccountCreateBulk is the builder for creating many UserAccount entities in bulk.
type UserAccountCreateBulk struct {
	config
	err      error
	builders []*UserAccountCreate
}

// Save creates the UserAccount entities in the database.
func (_c *UserAccountCreateBulk) Save(ctx context.Context) ([]*UserAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserAccountMutation)
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
func (_c *UserAccountCreateBulk) SaveX(ctx context.Context) []*UserAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

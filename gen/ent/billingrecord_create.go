// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billfeed/billfeed/gen/ent/billingrecord"
	"github.com/billfeed/billfeed/gen/ent/tokenusage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingRecordCreate is the builder for creating a BillingRecord entity.
type BillingRecordCreate struct {
	config
	mutation *BillingRecordMutation
	hooks    []Hook
}

// SetActorID sets the "actor_id" field.
func (_c *BillingRecordCreate) SetActorID(v string) *BillingRecordCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetTokenUsageID sets the "token_usage_id" field.
func (_c *BillingRecordCreate) SetTokenUsageID(v uuid.UUID) *BillingRecordCreate {
	_c.mutation.SetTokenUsageID(v)
	return _c
}

// SetNillableTokenUsageID sets the "token_usage_id" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableTokenUsageID(v *uuid.UUID) *BillingRecordCreate {
	if v != nil {
		_c.SetTokenUsageID(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillingRecordCreate) SetAmount(v decimal.Decimal) *BillingRecordCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableAmount(v *decimal.Decimal) *BillingRecordCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetBalanceBefore sets the "balance_before" field.
func (_c *BillingRecordCreate) SetBalanceBefore(v decimal.Decimal) *BillingRecordCreate {
	_c.mutation.SetBalanceBefore(v)
	return _c
}

// SetNillableBalanceBefore sets the "balance_before" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableBalanceBefore(v *decimal.Decimal) *BillingRecordCreate {
	if v != nil {
		_c.SetBalanceBefore(*v)
	}
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *BillingRecordCreate) SetBalanceAfter(v decimal.Decimal) *BillingRecordCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableBalanceAfter(v *decimal.Decimal) *BillingRecordCreate {
	if v != nil {
		_c.SetBalanceAfter(*v)
	}
	return _c
}

// SetBillingType sets the "billing_type" field.
func (_c *BillingRecordCreate) SetBillingType(v string) *BillingRecordCreate {
	_c.mutation.SetBillingType(v)
	return _c
}

// SetNillableBillingType sets the "billing_type" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableBillingType(v *string) *BillingRecordCreate {
	if v != nil {
		_c.SetBillingType(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *BillingRecordCreate) SetDescription(v string) *BillingRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableDescription(v *string) *BillingRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *BillingRecordCreate) SetIsDeleted(v bool) *BillingRecordCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableIsDeleted(v *bool) *BillingRecordCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillingRecordCreate) SetCreatedAt(v time.Time) *BillingRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableCreatedAt(v *time.Time) *BillingRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillingRecordCreate) SetID(v uuid.UUID) *BillingRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillingRecordCreate) SetNillableID(v *uuid.UUID) *BillingRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTokenUsage sets the "token_usage" edge to the TokenUsage entity.
func (_c *BillingRecordCreate) SetTokenUsage(v *TokenUsage) *BillingRecordCreate {
	return _c.SetTokenUsageID(v.ID)
}

// Mutation returns the BillingRecordMutation object of the builder.
func (_c *BillingRecordCreate) Mutation() *BillingRecordMutation {
	return _c.mutation
}

// Save creates the BillingRecord in the database.
func (_c *BillingRecordCreate) Save(ctx context.Context) (*BillingRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingRecordCreate) SaveX(ctx context.Context) *BillingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingRecordCreate) defaults() {
	if _, ok := _c.mutation.Amount(); !ok {
		v := billingrecord.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.BalanceBefore(); !ok {
		v := billingrecord.DefaultBalanceBefore
		_c.mutation.SetBalanceBefore(v)
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		v := billingrecord.DefaultBalanceAfter
		_c.mutation.SetBalanceAfter(v)
	}
	if _, ok := _c.mutation.BillingType(); !ok {
		v := billingrecord.DefaultBillingType
		_c.mutation.SetBillingType(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := billingrecord.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billingrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := billingrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingRecordCreate) check() error {
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "BillingRecord.actor_id"`)}
	}
	if v, ok := _c.mutation.ActorID(); ok {
		if err := billingrecord.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "BillingRecord.actor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "BillingRecord.amount"`)}
	}
	if _, ok := _c.mutation.BalanceBefore(); !ok {
		return &ValidationError{Name: "balance_before", err: errors.New(`ent: missing required field "BillingRecord.balance_before"`)}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`ent: missing required field "BillingRecord.balance_after"`)}
	}
	if _, ok := _c.mutation.BillingType(); !ok {
		return &ValidationError{Name: "billing_type", err: errors.New(`ent: missing required field "BillingRecord.billing_type"`)}
	}
	if v, ok := _c.mutation.BillingType(); ok {
		if err := billingrecord.BillingTypeValidator(v); err != nil {
			return &ValidationError{Name: "billing_type", err: fmt.Errorf(`ent: validator failed for field "BillingRecord.billing_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "BillingRecord.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillingRecord.created_at"`)}
	}
	return nil
}

func (_c *BillingRecordCreate) sqlSave(ctx context.Context) (*BillingRecord, error) {
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

func (_c *BillingRecordCreate) createSpec() (*BillingRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billingrecord.Table, sqlgraph.NewFieldSpec(billingrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(billingrecord.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(billingrecord.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.BalanceBefore(); ok {
		_spec.SetField(billingrecord.FieldBalanceBefore, field.TypeOther, value)
		_node.BalanceBefore = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(billingrecord.FieldBalanceAfter, field.TypeOther, value)
		_node.BalanceAfter = value
	}
	if value, ok := _c.mutation.BillingType(); ok {
		_spec.SetField(billingrecord.FieldBillingType, field.TypeString, value)
		_node.BillingType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(billingrecord.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(billingrecord.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billingrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TokenUsageIDs(); len(nodes) > 0 {
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
		_node.TokenUsageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillingRecordCreateBulk is the builder for creating many BillingRecord entities in bulk.
type BillingRecordCreateBulk struct {
	config
	err      error
	builders []*BillingRecordCreate
}

// Save creates the BillingRecord entities in the database.
func (_c *BillingRecordCreateBulk) Save(ctx context.Context) ([]*BillingRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillingRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingRecordMutation)
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
func (_c *BillingRecordCreateBulk) SaveX(ctx context.Context) []*BillingRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

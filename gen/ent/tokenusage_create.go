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

// TokenUsageCreate is the builder for creating a TokenUsage entity.
type TokenUsageCreate struct {
	config
	mutation *TokenUsageMutation
	hooks    []Hook
}

// SetActorID sets the "actor_id" field.
func (_c *TokenUsageCreate) SetActorID(v string) *TokenUsageCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *TokenUsageCreate) SetWorkspaceID(v uuid.UUID) *TokenUsageCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableWorkspaceID(v *uuid.UUID) *TokenUsageCreate {
	if v != nil {
		_c.SetWorkspaceID(*v)
	}
	return _c
}

// SetFileUploadID sets the "file_upload_id" field.
func (_c *TokenUsageCreate) SetFileUploadID(v uuid.UUID) *TokenUsageCreate {
	_c.mutation.SetFileUploadID(v)
	return _c
}

// SetNillableFileUploadID sets the "file_upload_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableFileUploadID(v *uuid.UUID) *TokenUsageCreate {
	if v != nil {
		_c.SetFileUploadID(*v)
	}
	return _c
}

// SetCallKind sets the "call_kind" field.
func (_c *TokenUsageCreate) SetCallKind(v string) *TokenUsageCreate {
	_c.mutation.SetCallKind(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *TokenUsageCreate) SetModel(v string) *TokenUsageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableModel(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *TokenUsageCreate) SetPromptTokens(v int) *TokenUsageCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillablePromptTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *TokenUsageCreate) SetCompletionTokens(v int) *TokenUsageCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCompletionTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *TokenUsageCreate) SetTotalTokens(v int) *TokenUsageCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableTotalTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *TokenUsageCreate) SetUnitPrice(v decimal.Decimal) *TokenUsageCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableUnitPrice(v *decimal.Decimal) *TokenUsageCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *TokenUsageCreate) SetCost(v decimal.Decimal) *TokenUsageCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCost(v *decimal.Decimal) *TokenUsageCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *TokenUsageCreate) SetRequestID(v string) *TokenUsageCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableRequestID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *TokenUsageCreate) SetResponseTimeMs(v int) *TokenUsageCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableResponseTimeMs(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TokenUsageCreate) SetStatus(v string) *TokenUsageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableStatus(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TokenUsageCreate) SetErrorMessage(v string) *TokenUsageCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableErrorMessage(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *TokenUsageCreate) SetIsDeleted(v bool) *TokenUsageCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableIsDeleted(v *bool) *TokenUsageCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenUsageCreate) SetCreatedAt(v time.Time) *TokenUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCreatedAt(v *time.Time) *TokenUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenUsageCreate) SetID(v uuid.UUID) *TokenUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableID(v *uuid.UUID) *TokenUsageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBillingRecordIDs adds the "billing_records" edge to the BillingRecord entity by IDs.
func (_c *TokenUsageCreate) AddBillingRecordIDs(ids ...uuid.UUID) *TokenUsageCreate {
	_c.mutation.AddBillingRecordIDs(ids...)
	return _c
}

// AddBillingRecords adds the "billing_records" edges to the BillingRecord entity.
func (_c *TokenUsageCreate) AddBillingRecords(v ...*BillingRecord) *TokenUsageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBillingRecordIDs(ids...)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_c *TokenUsageCreate) Mutation() *TokenUsageMutation {
	return _c.mutation
}

// Save creates the TokenUsage in the database.
func (_c *TokenUsageCreate) Save(ctx context.Context) (*TokenUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenUsageCreate) SaveX(ctx context.Context) *TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenUsageCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := tokenusage.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := tokenusage.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := tokenusage.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := tokenusage.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := tokenusage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := tokenusage.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tokenusage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenUsageCreate) check() error {
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "TokenUsage.actor_id"`)}
	}
	if v, ok := _c.mutation.ActorID(); ok {
		if err := tokenusage.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.actor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CallKind(); !ok {
		return &ValidationError{Name: "call_kind", err: errors.New(`ent: missing required field "TokenUsage.call_kind"`)}
	}
	if v, ok := _c.mutation.CallKind(); ok {
		if err := tokenusage.CallKindValidator(v); err != nil {
			return &ValidationError{Name: "call_kind", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.call_kind": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := tokenusage.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "TokenUsage.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "TokenUsage.completion_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "TokenUsage.total_tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "TokenUsage.cost"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := tokenusage.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TokenUsage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tokenusage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "TokenUsage.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenUsage.created_at"`)}
	}
	return nil
}

func (_c *TokenUsageCreate) sqlSave(ctx context.Context) (*TokenUsage, error) {
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

func (_c *TokenUsageCreate) createSpec() (*TokenUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenusage.Table, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(tokenusage.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(tokenusage.FieldWorkspaceID, field.TypeUUID, value)
		_node.WorkspaceID = &value
	}
	if value, ok := _c.mutation.FileUploadID(); ok {
		_spec.SetField(tokenusage.FieldFileUploadID, field.TypeUUID, value)
		_node.FileUploadID = &value
	}
	if value, ok := _c.mutation.CallKind(); ok {
		_spec.SetField(tokenusage.FieldCallKind, field.TypeString, value)
		_node.CallKind = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusage.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(tokenusage.FieldUnitPrice, field.TypeOther, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(tokenusage.FieldCost, field.TypeOther, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(tokenusage.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(tokenusage.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tokenusage.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(tokenusage.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(tokenusage.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BillingRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tokenusage.BillingRecordsTable,
			Columns: []string{tokenusage.BillingRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billingrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TokenUsageCreateBulk is the builder for creating many TokenUsage entities in bulk.
type TokenUsageCreateBulk struct {
	config
	err      error
	builders []*TokenUsageCreate
}

// Save creates the TokenUsage entities in the database.
func (_c *TokenUsageCreateBulk) Save(ctx context.Context) ([]*TokenUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenUsageMutation)
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
func (_c *TokenUsageCreateBulk) SaveX(ctx context.Context) []*TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

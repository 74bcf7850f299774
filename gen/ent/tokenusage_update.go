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

// TokenUsageUpdate is the builder for updating TokenUsage entities.
type TokenUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TokenUsageMutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdate) Where(ps ...predicate.TokenUsage) *TokenUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *TokenUsageUpdate) SetActorID(v string) *TokenUsageUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableActorID(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *TokenUsageUpdate) SetWorkspaceID(v uuid.UUID) *TokenUsageUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableWorkspaceID(v *uuid.UUID) *TokenUsageUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (_u *TokenUsageUpdate) ClearWorkspaceID() *TokenUsageUpdate {
	_u.mutation.ClearWorkspaceID()
	return _u
}

// SetFileUploadID sets the "file_upload_id" field.
func (_u *TokenUsageUpdate) SetFileUploadID(v uuid.UUID) *TokenUsageUpdate {
	_u.mutation.SetFileUploadID(v)
	return _u
}

// SetNillableFileUploadID sets the "file_upload_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableFileUploadID(v *uuid.UUID) *TokenUsageUpdate {
	if v != nil {
		_u.SetFileUploadID(*v)
	}
	return _u
}

// ClearFileUploadID clears the value of the "file_upload_id" field.
func (_u *TokenUsageUpdate) ClearFileUploadID() *TokenUsageUpdate {
	_u.mutation.ClearFileUploadID()
	return _u
}

// SetCallKind sets the "call_kind" field.
func (_u *TokenUsageUpdate) SetCallKind(v string) *TokenUsageUpdate {
	_u.mutation.SetCallKind(v)
	return _u
}

// SetNillableCallKind sets the "call_kind" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCallKind(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetCallKind(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdate) SetModel(v string) *TokenUsageUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableModel(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TokenUsageUpdate) ClearModel() *TokenUsageUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TokenUsageUpdate) SetPromptTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillablePromptTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TokenUsageUpdate) AddPromptTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TokenUsageUpdate) SetCompletionTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCompletionTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TokenUsageUpdate) AddCompletionTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageUpdate) SetTotalTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableTotalTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageUpdate) AddTotalTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *TokenUsageUpdate) SetUnitPrice(v decimal.Decimal) *TokenUsageUpdate {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableUnitPrice(v *decimal.Decimal) *TokenUsageUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *TokenUsageUpdate) ClearUnitPrice() *TokenUsageUpdate {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetCost sets the "cost" field.
func (_u *TokenUsageUpdate) SetCost(v decimal.Decimal) *TokenUsageUpdate {
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCost(v *decimal.Decimal) *TokenUsageUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *TokenUsageUpdate) SetRequestID(v string) *TokenUsageUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableRequestID(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *TokenUsageUpdate) ClearRequestID() *TokenUsageUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *TokenUsageUpdate) SetResponseTimeMs(v int) *TokenUsageUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableResponseTimeMs(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *TokenUsageUpdate) AddResponseTimeMs(v int) *TokenUsageUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (_u *TokenUsageUpdate) ClearResponseTimeMs() *TokenUsageUpdate {
	_u.mutation.ClearResponseTimeMs()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TokenUsageUpdate) SetStatus(v string) *TokenUsageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableStatus(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TokenUsageUpdate) SetErrorMessage(v string) *TokenUsageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableErrorMessage(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TokenUsageUpdate) ClearErrorMessage() *TokenUsageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *TokenUsageUpdate) SetIsDeleted(v bool) *TokenUsageUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableIsDeleted(v *bool) *TokenUsageUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TokenUsageUpdate) SetCreatedAt(v time.Time) *TokenUsageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCreatedAt(v *time.Time) *TokenUsageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddBillingRecordIDs adds the "billing_records" edge to the BillingRecord entity by IDs.
func (_u *TokenUsageUpdate) AddBillingRecordIDs(ids ...uuid.UUID) *TokenUsageUpdate {
	_u.mutation.AddBillingRecordIDs(ids...)
	return _u
}

// AddBillingRecords adds the "billing_records" edges to the BillingRecord entity.
func (_u *TokenUsageUpdate) AddBillingRecords(v ...*BillingRecord) *TokenUsageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillingRecordIDs(ids...)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdate) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// ClearBillingRecords clears all "billing_records" edges to the BillingRecord entity.
func (_u *TokenUsageUpdate) ClearBillingRecords() *TokenUsageUpdate {
	_u.mutation.ClearBillingRecords()
	return _u
}

// RemoveBillingRecordIDs removes the "billing_records" edge to BillingRecord entities by IDs.
func (_u *TokenUsageUpdate) RemoveBillingRecordIDs(ids ...uuid.UUID) *TokenUsageUpdate {
	_u.mutation.RemoveBillingRecordIDs(ids...)
	return _u
}

// RemoveBillingRecords removes "billing_records" edges to BillingRecord entities.
func (_u *TokenUsageUpdate) RemoveBillingRecords(v ...*BillingRecord) *TokenUsageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillingRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdate) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := tokenusage.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CallKind(); ok {
		if err := tokenusage.CallKindValidator(v); err != nil {
			return &ValidationError{Name: "call_kind", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.call_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := tokenusage.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestID(); ok {
		if err := tokenusage.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tokenusage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(tokenusage.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(tokenusage.FieldWorkspaceID, field.TypeUUID, value)
	}
	if _u.mutation.WorkspaceIDCleared() {
		_spec.ClearField(tokenusage.FieldWorkspaceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FileUploadID(); ok {
		_spec.SetField(tokenusage.FieldFileUploadID, field.TypeUUID, value)
	}
	if _u.mutation.FileUploadIDCleared() {
		_spec.ClearField(tokenusage.FieldFileUploadID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CallKind(); ok {
		_spec.SetField(tokenusage.FieldCallKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(tokenusage.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(tokenusage.FieldUnitPrice, field.TypeOther, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(tokenusage.FieldUnitPrice, field.TypeOther)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(tokenusage.FieldCost, field.TypeOther, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(tokenusage.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(tokenusage.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(tokenusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(tokenusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ResponseTimeMsCleared() {
		_spec.ClearField(tokenusage.FieldResponseTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tokenusage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tokenusage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tokenusage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(tokenusage.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BillingRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillingRecordsIDs(); len(nodes) > 0 && !_u.mutation.BillingRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillingRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenUsageUpdateOne is the builder for updating a single TokenUsage entity.
type TokenUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenUsageMutation
}

// SetActorID sets the "actor_id" field.
func (_u *TokenUsageUpdateOne) SetActorID(v string) *TokenUsageUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableActorID(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *TokenUsageUpdateOne) SetWorkspaceID(v uuid.UUID) *TokenUsageUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (_u *TokenUsageUpdateOne) ClearWorkspaceID() *TokenUsageUpdateOne {
	_u.mutation.ClearWorkspaceID()
	return _u
}

// SetFileUploadID sets the "file_upload_id" field.
func (_u *TokenUsageUpdateOne) SetFileUploadID(v uuid.UUID) *TokenUsageUpdateOne {
	_u.mutation.SetFileUploadID(v)
	return _u
}

// SetNillableFileUploadID sets the "file_upload_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableFileUploadID(v *uuid.UUID) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetFileUploadID(*v)
	}
	return _u
}

// ClearFileUploadID clears the value of the "file_upload_id" field.
func (_u *TokenUsageUpdateOne) ClearFileUploadID() *TokenUsageUpdateOne {
	_u.mutation.ClearFileUploadID()
	return _u
}

// SetCallKind sets the "call_kind" field.
func (_u *TokenUsageUpdateOne) SetCallKind(v string) *TokenUsageUpdateOne {
	_u.mutation.SetCallKind(v)
	return _u
}

// SetNillableCallKind sets the "call_kind" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCallKind(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCallKind(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TokenUsageUpdateOne) SetModel(v string) *TokenUsageUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableModel(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TokenUsageUpdateOne) ClearModel() *TokenUsageUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TokenUsageUpdateOne) SetPromptTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillablePromptTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TokenUsageUpdateOne) AddPromptTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TokenUsageUpdateOne) SetCompletionTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCompletionTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TokenUsageUpdateOne) AddCompletionTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageUpdateOne) SetTotalTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableTotalTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageUpdateOne) AddTotalTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *TokenUsageUpdateOne) SetUnitPrice(v decimal.Decimal) *TokenUsageUpdateOne {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableUnitPrice(v *decimal.Decimal) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *TokenUsageUpdateOne) ClearUnitPrice() *TokenUsageUpdateOne {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetCost sets the "cost" field.
func (_u *TokenUsageUpdateOne) SetCost(v decimal.Decimal) *TokenUsageUpdateOne {
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCost(v *decimal.Decimal) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *TokenUsageUpdateOne) SetRequestID(v string) *TokenUsageUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableRequestID(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *TokenUsageUpdateOne) ClearRequestID() *TokenUsageUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *TokenUsageUpdateOne) SetResponseTimeMs(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableResponseTimeMs(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *TokenUsageUpdateOne) AddResponseTimeMs(v int) *TokenUsageUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (_u *TokenUsageUpdateOne) ClearResponseTimeMs() *TokenUsageUpdateOne {
	_u.mutation.ClearResponseTimeMs()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TokenUsageUpdateOne) SetStatus(v string) *TokenUsageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableStatus(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TokenUsageUpdateOne) SetErrorMessage(v string) *TokenUsageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableErrorMessage(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TokenUsageUpdateOne) ClearErrorMessage() *TokenUsageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *TokenUsageUpdateOne) SetIsDeleted(v bool) *TokenUsageUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableIsDeleted(v *bool) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TokenUsageUpdateOne) SetCreatedAt(v time.Time) *TokenUsageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCreatedAt(v *time.Time) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddBillingRecordIDs adds the "billing_records" edge to the BillingRecord entity by IDs.
func (_u *TokenUsageUpdateOne) AddBillingRecordIDs(ids ...uuid.UUID) *TokenUsageUpdateOne {
	_u.mutation.AddBillingRecordIDs(ids...)
	return _u
}

// AddBillingRecords adds the "billing_records" edges to the BillingRecord entity.
func (_u *TokenUsageUpdateOne) AddBillingRecords(v ...*BillingRecord) *TokenUsageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillingRecordIDs(ids...)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdateOne) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// ClearBillingRecords clears all "billing_records" edges to the BillingRecord entity.
func (_u *TokenUsageUpdateOne) ClearBillingRecords() *TokenUsageUpdateOne {
	_u.mutation.ClearBillingRecords()
	return _u
}

// RemoveBillingRecordIDs removes the "billing_records" edge to BillingRecord entities by IDs.
func (_u *TokenUsageUpdateOne) RemoveBillingRecordIDs(ids ...uuid.UUID) *TokenUsageUpdateOne {
	_u.mutation.RemoveBillingRecordIDs(ids...)
	return _u
}

// RemoveBillingRecords removes "billing_records" edges to BillingRecord entities.
func (_u *TokenUsageUpdateOne) RemoveBillingRecords(v ...*BillingRecord) *TokenUsageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillingRecordIDs(ids...)
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdateOne) Where(ps ...predicate.TokenUsage) *TokenUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenUsageUpdateOne) Select(field string, fields ...string) *TokenUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenUsage entity.
func (_u *TokenUsageUpdateOne) Save(ctx context.Context) (*TokenUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) SaveX(ctx context.Context) *TokenUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdateOne) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := tokenusage.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CallKind(); ok {
		if err := tokenusage.CallKindValidator(v); err != nil {
			return &ValidationError{Name: "call_kind", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.call_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := tokenusage.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestID(); ok {
		if err := tokenusage.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tokenusage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenUsageUpdateOne) sqlSave(ctx context.Context) (_node *TokenUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenusage.FieldID)
		for _, f := range fields {
			if !tokenusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenusage.FieldID {
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
		_spec.SetField(tokenusage.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(tokenusage.FieldWorkspaceID, field.TypeUUID, value)
	}
	if _u.mutation.WorkspaceIDCleared() {
		_spec.ClearField(tokenusage.FieldWorkspaceID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FileUploadID(); ok {
		_spec.SetField(tokenusage.FieldFileUploadID, field.TypeUUID, value)
	}
	if _u.mutation.FileUploadIDCleared() {
		_spec.ClearField(tokenusage.FieldFileUploadID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CallKind(); ok {
		_spec.SetField(tokenusage.FieldCallKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(tokenusage.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(tokenusage.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(tokenusage.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(tokenusage.FieldUnitPrice, field.TypeOther, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(tokenusage.FieldUnitPrice, field.TypeOther)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(tokenusage.FieldCost, field.TypeOther, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(tokenusage.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(tokenusage.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(tokenusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(tokenusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if _u.mutation.ResponseTimeMsCleared() {
		_spec.ClearField(tokenusage.FieldResponseTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tokenusage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tokenusage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tokenusage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(tokenusage.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BillingRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillingRecordsIDs(); len(nodes) > 0 && !_u.mutation.BillingRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillingRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TokenUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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

// FileUploadUpdate is the builder for updating FileUpload entities.
type FileUploadUpdate struct {
	config
	hooks    []Hook
	mutation *FileUploadMutation
}

// Where appends a list predicates to the FileUploadUpdate builder.
func (_u *FileUploadUpdate) Where(ps ...predicate.FileUpload) *FileUploadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *FileUploadUpdate) SetWorkspaceID(v uuid.UUID) *FileUploadUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableWorkspaceID(v *uuid.UUID) *FileUploadUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *FileUploadUpdate) SetActorID(v string) *FileUploadUpdate {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableActorID(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *FileUploadUpdate) SetContentHash(v string) *FileUploadUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableContentHash(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *FileUploadUpdate) SetFilename(v string) *FileUploadUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableFilename(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSavedPath sets the "saved_path" field.
func (_u *FileUploadUpdate) SetSavedPath(v string) *FileUploadUpdate {
	_u.mutation.SetSavedPath(v)
	return _u
}

// SetNillableSavedPath sets the "saved_path" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableSavedPath(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetSavedPath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *FileUploadUpdate) SetFileSize(v int64) *FileUploadUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableFileSize(v *int64) *FileUploadUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *FileUploadUpdate) AddFileSize(v int64) *FileUploadUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetRawContent sets the "raw_content" field.
func (_u *FileUploadUpdate) SetRawContent(v string) *FileUploadUpdate {
	_u.mutation.SetRawContent(v)
	return _u
}

// SetNillableRawContent sets the "raw_content" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableRawContent(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetRawContent(*v)
	}
	return _u
}

// SetRefinedContent sets the "refined_content" field.
func (_u *FileUploadUpdate) SetRefinedContent(v string) *FileUploadUpdate {
	_u.mutation.SetRefinedContent(v)
	return _u
}

// SetNillableRefinedContent sets the "refined_content" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableRefinedContent(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetRefinedContent(*v)
	}
	return _u
}

// ClearRefinedContent clears the value of the "refined_content" field.
func (_u *FileUploadUpdate) ClearRefinedContent() *FileUploadUpdate {
	_u.mutation.ClearRefinedContent()
	return _u
}

// SetBillsCount sets the "bills_count" field.
func (_u *FileUploadUpdate) SetBillsCount(v int) *FileUploadUpdate {
	_u.mutation.ResetBillsCount()
	_u.mutation.SetBillsCount(v)
	return _u
}

// SetNillableBillsCount sets the "bills_count" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableBillsCount(v *int) *FileUploadUpdate {
	if v != nil {
		_u.SetBillsCount(*v)
	}
	return _u
}

// AddBillsCount adds value to the "bills_count" field.
func (_u *FileUploadUpdate) AddBillsCount(v int) *FileUploadUpdate {
	_u.mutation.AddBillsCount(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *FileUploadUpdate) SetUploadedAt(v time.Time) *FileUploadUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableUploadedAt(v *time.Time) *FileUploadUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileUploadUpdate) SetStatus(v string) *FileUploadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableStatus(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRemark sets the "remark" field.
func (_u *FileUploadUpdate) SetRemark(v string) *FileUploadUpdate {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableRemark(v *string) *FileUploadUpdate {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *FileUploadUpdate) ClearRemark() *FileUploadUpdate {
	_u.mutation.ClearRemark()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *FileUploadUpdate) SetIsDeleted(v bool) *FileUploadUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableIsDeleted(v *bool) *FileUploadUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *FileUploadUpdate) SetDeletedAt(v time.Time) *FileUploadUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableDeletedAt(v *time.Time) *FileUploadUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *FileUploadUpdate) ClearDeletedAt() *FileUploadUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FileUploadUpdate) SetCreatedAt(v time.Time) *FileUploadUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FileUploadUpdate) SetNillableCreatedAt(v *time.Time) *FileUploadUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *FileUploadUpdate) AddBillIDs(ids ...uuid.UUID) *FileUploadUpdate {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *FileUploadUpdate) AddBills(v ...*Bill) *FileUploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// Mutation returns the FileUploadMutation object of the builder.
func (_u *FileUploadUpdate) Mutation() *FileUploadMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *FileUploadUpdate) ClearBills() *FileUploadUpdate {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *FileUploadUpdate) RemoveBillIDs(ids ...uuid.UUID) *FileUploadUpdate {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *FileUploadUpdate) RemoveBills(v ...*Bill) *FileUploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileUploadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileUploadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileUploadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileUploadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileUploadUpdate) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := fileupload.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "FileUpload.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := fileupload.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "FileUpload.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := fileupload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FileUpload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SavedPath(); ok {
		if err := fileupload.SavedPathValidator(v); err != nil {
			return &ValidationError{Name: "saved_path", err: fmt.Errorf(`ent: validator failed for field "FileUpload.saved_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := fileupload.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "FileUpload.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fileupload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileUpload.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileUploadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileupload.Table, fileupload.Columns, sqlgraph.NewFieldSpec(fileupload.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(fileupload.FieldWorkspaceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(fileupload.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(fileupload.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(fileupload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SavedPath(); ok {
		_spec.SetField(fileupload.FieldSavedPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(fileupload.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(fileupload.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RawContent(); ok {
		_spec.SetField(fileupload.FieldRawContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefinedContent(); ok {
		_spec.SetField(fileupload.FieldRefinedContent, field.TypeString, value)
	}
	if _u.mutation.RefinedContentCleared() {
		_spec.ClearField(fileupload.FieldRefinedContent, field.TypeString)
	}
	if value, ok := _u.mutation.BillsCount(); ok {
		_spec.SetField(fileupload.FieldBillsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBillsCount(); ok {
		_spec.AddField(fileupload.FieldBillsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(fileupload.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fileupload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(fileupload.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(fileupload.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(fileupload.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(fileupload.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(fileupload.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fileupload.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileupload.BillsTable,
			Columns: []string{fileupload.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileupload.BillsTable,
			Columns: []string{fileupload.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileupload.BillsTable,
			Columns: []string{fileupload.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileupload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileUploadUpdateOne is the builder for updating a single FileUpload entity.
type FileUploadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileUploadMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *FileUploadUpdateOne) SetWorkspaceID(v uuid.UUID) *FileUploadUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *FileUploadUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *FileUploadUpdateOne) SetActorID(v string) *FileUploadUpdateOne {
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableActorID(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *FileUploadUpdateOne) SetContentHash(v string) *FileUploadUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableContentHash(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *FileUploadUpdateOne) SetFilename(v string) *FileUploadUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableFilename(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSavedPath sets the "saved_path" field.
func (_u *FileUploadUpdateOne) SetSavedPath(v string) *FileUploadUpdateOne {
	_u.mutation.SetSavedPath(v)
	return _u
}

// SetNillableSavedPath sets the "saved_path" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableSavedPath(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetSavedPath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *FileUploadUpdateOne) SetFileSize(v int64) *FileUploadUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableFileSize(v *int64) *FileUploadUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *FileUploadUpdateOne) AddFileSize(v int64) *FileUploadUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetRawContent sets the "raw_content" field.
func (_u *FileUploadUpdateOne) SetRawContent(v string) *FileUploadUpdateOne {
	_u.mutation.SetRawContent(v)
	return _u
}

// SetNillableRawContent sets the "raw_content" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableRawContent(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetRawContent(*v)
	}
	return _u
}

// SetRefinedContent sets the "refined_content" field.
func (_u *FileUploadUpdateOne) SetRefinedContent(v string) *FileUploadUpdateOne {
	_u.mutation.SetRefinedContent(v)
	return _u
}

// SetNillableRefinedContent sets the "refined_content" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableRefinedContent(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetRefinedContent(*v)
	}
	return _u
}

// ClearRefinedContent clears the value of the "refined_content" field.
func (_u *FileUploadUpdateOne) ClearRefinedContent() *FileUploadUpdateOne {
	_u.mutation.ClearRefinedContent()
	return _u
}

// SetBillsCount sets the "bills_count" field.
func (_u *FileUploadUpdateOne) SetBillsCount(v int) *FileUploadUpdateOne {
	_u.mutation.ResetBillsCount()
	_u.mutation.SetBillsCount(v)
	return _u
}

// SetNillableBillsCount sets the "bills_count" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableBillsCount(v *int) *FileUploadUpdateOne {
	if v != nil {
		_u.SetBillsCount(*v)
	}
	return _u
}

// AddBillsCount adds value to the "bills_count" field.
func (_u *FileUploadUpdateOne) AddBillsCount(v int) *FileUploadUpdateOne {
	_u.mutation.AddBillsCount(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *FileUploadUpdateOne) SetUploadedAt(v time.Time) *FileUploadUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableUploadedAt(v *time.Time) *FileUploadUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileUploadUpdateOne) SetStatus(v string) *FileUploadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableStatus(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRemark sets the "remark" field.
func (_u *FileUploadUpdateOne) SetRemark(v string) *FileUploadUpdateOne {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableRemark(v *string) *FileUploadUpdateOne {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *FileUploadUpdateOne) ClearRemark() *FileUploadUpdateOne {
	_u.mutation.ClearRemark()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *FileUploadUpdateOne) SetIsDeleted(v bool) *FileUploadUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableIsDeleted(v *bool) *FileUploadUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *FileUploadUpdateOne) SetDeletedAt(v time.Time) *FileUploadUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableDeletedAt(v *time.Time) *FileUploadUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *FileUploadUpdateOne) ClearDeletedAt() *FileUploadUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FileUploadUpdateOne) SetCreatedAt(v time.Time) *FileUploadUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FileUploadUpdateOne) SetNillableCreatedAt(v *time.Time) *FileUploadUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *FileUploadUpdateOne) AddBillIDs(ids ...uuid.UUID) *FileUploadUpdateOne {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *FileUploadUpdateOne) AddBills(v ...*Bill) *FileUploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// Mutation returns the FileUploadMutation object of the builder.
func (_u *FileUploadUpdateOne) Mutation() *FileUploadMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *FileUploadUpdateOne) ClearBills() *FileUploadUpdateOne {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *FileUploadUpdateOne) RemoveBillIDs(ids ...uuid.UUID) *FileUploadUpdateOne {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *FileUploadUpdateOne) RemoveBills(v ...*Bill) *FileUploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// Where appends a list predicates to the FileUploadUpdate builder.
func (_u *FileUploadUpdateOne) Where(ps ...predicate.FileUpload) *FileUploadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileUploadUpdateOne) Select(field string, fields ...string) *FileUploadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileUpload entity.
func (_u *FileUploadUpdateOne) Save(ctx context.Context) (*FileUpload, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileUploadUpdateOne) SaveX(ctx context.Context) *FileUpload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileUploadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileUploadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileUploadUpdateOne) check() error {
	if v, ok := _u.mutation.ActorID(); ok {
		if err := fileupload.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "FileUpload.actor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := fileupload.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "FileUpload.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := fileupload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FileUpload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SavedPath(); ok {
		if err := fileupload.SavedPathValidator(v); err != nil {
			return &ValidationError{Name: "saved_path", err: fmt.Errorf(`ent: validator failed for field "FileUpload.saved_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := fileupload.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "FileUpload.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fileupload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileUpload.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileUploadUpdateOne) sqlSave(ctx context.Context) (_node *FileUpload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileupload.Table, fileupload.Columns, sqlgraph.NewFieldSpec(fileupload.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileUpload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fileupload.FieldID)
		for _, f := range fields {
			if !fileupload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fileupload.FieldID {
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
		_spec.SetField(fileupload.FieldWorkspaceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(fileupload.FieldActorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(fileupload.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(fileupload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SavedPath(); ok {
		_spec.SetField(fileupload.FieldSavedPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(fileupload.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(fileupload.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RawContent(); ok {
		_spec.SetField(fileupload.FieldRawContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefinedContent(); ok {
		_spec.SetField(fileupload.FieldRefinedContent, field.TypeString, value)
	}
	if _u.mutation.RefinedContentCleared() {
		_spec.ClearField(fileupload.FieldRefinedContent, field.TypeString)
	}
	if value, ok := _u.mutation.BillsCount(); ok {
		_spec.SetField(fileupload.FieldBillsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBillsCount(); ok {
		_spec.AddField(fileupload.FieldBillsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(fileupload.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fileupload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(fileupload.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(fileupload.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(fileupload.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(fileupload.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(fileupload.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fileupload.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileupload.BillsTable,
			Columns: []string{fileupload.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileupload.BillsTable,
			Columns: []string{fileupload.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fileupload.BillsTable,
			Columns: []string{fileupload.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FileUpload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileupload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

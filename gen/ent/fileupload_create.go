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

// FileUploadCreate is the builder for creating a FileUpload entity.
type FileUploadCreate struct {
	config
	mutation *FileUploadMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *FileUploadCreate) SetWorkspaceID(v uuid.UUID) *FileUploadCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *FileUploadCreate) SetActorID(v string) *FileUploadCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *FileUploadCreate) SetContentHash(v string) *FileUploadCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *FileUploadCreate) SetFilename(v string) *FileUploadCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetSavedPath sets the "saved_path" field.
func (_c *FileUploadCreate) SetSavedPath(v string) *FileUploadCreate {
	_c.mutation.SetSavedPath(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *FileUploadCreate) SetFileSize(v int64) *FileUploadCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetRawContent sets the "raw_content" field.
func (_c *FileUploadCreate) SetRawContent(v string) *FileUploadCreate {
	_c.mutation.SetRawContent(v)
	return _c
}

// SetRefinedContent sets the "refined_content" field.
func (_c *FileUploadCreate) SetRefinedContent(v string) *FileUploadCreate {
	_c.mutation.SetRefinedContent(v)
	return _c
}

// SetNillableRefinedContent sets the "refined_content" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableRefinedContent(v *string) *FileUploadCreate {
	if v != nil {
		_c.SetRefinedContent(*v)
	}
	return _c
}

// SetBillsCount sets the "bills_count" field.
func (_c *FileUploadCreate) SetBillsCount(v int) *FileUploadCreate {
	_c.mutation.SetBillsCount(v)
	return _c
}

// SetNillableBillsCount sets the "bills_count" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableBillsCount(v *int) *FileUploadCreate {
	if v != nil {
		_c.SetBillsCount(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *FileUploadCreate) SetUploadedAt(v time.Time) *FileUploadCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableUploadedAt(v *time.Time) *FileUploadCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FileUploadCreate) SetStatus(v string) *FileUploadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableStatus(v *string) *FileUploadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRemark sets the "remark" field.
func (_c *FileUploadCreate) SetRemark(v string) *FileUploadCreate {
	_c.mutation.SetRemark(v)
	return _c
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableRemark(v *string) *FileUploadCreate {
	if v != nil {
		_c.SetRemark(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *FileUploadCreate) SetIsDeleted(v bool) *FileUploadCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableIsDeleted(v *bool) *FileUploadCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *FileUploadCreate) SetDeletedAt(v time.Time) *FileUploadCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableDeletedAt(v *time.Time) *FileUploadCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FileUploadCreate) SetCreatedAt(v time.Time) *FileUploadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableCreatedAt(v *time.Time) *FileUploadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FileUploadCreate) SetID(v uuid.UUID) *FileUploadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FileUploadCreate) SetNillableID(v *uuid.UUID) *FileUploadCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_c *FileUploadCreate) AddBillIDs(ids ...uuid.UUID) *FileUploadCreate {
	_c.mutation.AddBillIDs(ids...)
	return _c
}

// AddBills adds the "bills" edges to the Bill entity.
func (_c *FileUploadCreate) AddBills(v ...*Bill) *FileUploadCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBillIDs(ids...)
}

// Mutation returns the FileUploadMutation object of the builder.
func (_c *FileUploadCreate) Mutation() *FileUploadMutation {
	return _c.mutation
}

// Save creates the FileUpload in the database.
func (_c *FileUploadCreate) Save(ctx context.Context) (*FileUpload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileUploadCreate) SaveX(ctx context.Context) *FileUpload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileUploadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileUploadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileUploadCreate) defaults() {
	if _, ok := _c.mutation.BillsCount(); !ok {
		v := fileupload.DefaultBillsCount
		_c.mutation.SetBillsCount(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := fileupload.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := fileupload.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := fileupload.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fileupload.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fileupload.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileUploadCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "FileUpload.workspace_id"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "FileUpload.actor_id"`)}
	}
	if v, ok := _c.mutation.ActorID(); ok {
		if err := fileupload.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "FileUpload.actor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "FileUpload.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := fileupload.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "FileUpload.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "FileUpload.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := fileupload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FileUpload.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SavedPath(); !ok {
		return &ValidationError{Name: "saved_path", err: errors.New(`ent: missing required field "FileUpload.saved_path"`)}
	}
	if v, ok := _c.mutation.SavedPath(); ok {
		if err := fileupload.SavedPathValidator(v); err != nil {
			return &ValidationError{Name: "saved_path", err: fmt.Errorf(`ent: validator failed for field "FileUpload.saved_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "FileUpload.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := fileupload.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "FileUpload.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawContent(); !ok {
		return &ValidationError{Name: "raw_content", err: errors.New(`ent: missing required field "FileUpload.raw_content"`)}
	}
	if _, ok := _c.mutation.BillsCount(); !ok {
		return &ValidationError{Name: "bills_count", err: errors.New(`ent: missing required field "FileUpload.bills_count"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "FileUpload.uploaded_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FileUpload.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fileupload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileUpload.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "FileUpload.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FileUpload.created_at"`)}
	}
	return nil
}

func (_c *FileUploadCreate) sqlSave(ctx context.Context) (*FileUpload, error) {
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

func (_c *FileUploadCreate) createSpec() (*FileUpload, *sqlgraph.CreateSpec) {
	var (
		_node = &FileUpload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fileupload.Table, sqlgraph.NewFieldSpec(fileupload.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(fileupload.FieldWorkspaceID, field.TypeUUID, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(fileupload.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(fileupload.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(fileupload.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.SavedPath(); ok {
		_spec.SetField(fileupload.FieldSavedPath, field.TypeString, value)
		_node.SavedPath = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(fileupload.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.RawContent(); ok {
		_spec.SetField(fileupload.FieldRawContent, field.TypeString, value)
		_node.RawContent = value
	}
	if value, ok := _c.mutation.RefinedContent(); ok {
		_spec.SetField(fileupload.FieldRefinedContent, field.TypeString, value)
		_node.RefinedContent = &value
	}
	if value, ok := _c.mutation.BillsCount(); ok {
		_spec.SetField(fileupload.FieldBillsCount, field.TypeInt, value)
		_node.BillsCount = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(fileupload.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fileupload.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Remark(); ok {
		_spec.SetField(fileupload.FieldRemark, field.TypeString, value)
		_node.Remark = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(fileupload.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(fileupload.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fileupload.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BillsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FileUploadCreateBulk is the builder for creating many FileUpload entities in bulk.
type FileUploadCreateBulk struct {
	config
	err      error
	builders []*FileUploadCreate
}

// Save creates the FileUpload entities in the database.
func (_c *FileUploadCreateBulk) Save(ctx context.Context) ([]*FileUpload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileUpload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileUploadMutation)
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
func (_c *FileUploadCreateBulk) SaveX(ctx context.Context) []*FileUpload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileUploadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileUploadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

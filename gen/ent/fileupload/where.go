// Code generated by ent, DO NOT EDIT.

package fileupload

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldWorkspaceID, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldActorID, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldContentHash, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldFilename, v))
}

// SavedPath applies equality check predicate on the "saved_path" field. It's identical to SavedPathEQ.
func SavedPath(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldSavedPath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldFileSize, v))
}

// RawContent applies equality check predicate on the "raw_content" field. It's identical to RawContentEQ.
func RawContent(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldRawContent, v))
}

// RefinedContent applies equality check predicate on the "refined_content" field. It's identical to RefinedContentEQ.
func RefinedContent(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldRefinedContent, v))
}

// BillsCount applies equality check predicate on the "bills_count" field. It's identical to BillsCountEQ.
func BillsCount(v int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldBillsCount, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldUploadedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldStatus, v))
}

// Remark applies equality check predicate on the "remark" field. It's identical to RemarkEQ.
func Remark(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldRemark, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldIsDeleted, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v uuid.UUID) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldWorkspaceID, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldActorID, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldContentHash, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldFilename, v))
}

// SavedPathEQ applies the EQ predicate on the "saved_path" field.
func SavedPathEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldSavedPath, v))
}

// SavedPathNEQ applies the NEQ predicate on the "saved_path" field.
func SavedPathNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldSavedPath, v))
}

// SavedPathIn applies the In predicate on the "saved_path" field.
func SavedPathIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldSavedPath, vs...))
}

// SavedPathNotIn applies the NotIn predicate on the "saved_path" field.
func SavedPathNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldSavedPath, vs...))
}

// SavedPathGT applies the GT predicate on the "saved_path" field.
func SavedPathGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldSavedPath, v))
}

// SavedPathGTE applies the GTE predicate on the "saved_path" field.
func SavedPathGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldSavedPath, v))
}

// SavedPathLT applies the LT predicate on the "saved_path" field.
func SavedPathLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldSavedPath, v))
}

// SavedPathLTE applies the LTE predicate on the "saved_path" field.
func SavedPathLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldSavedPath, v))
}

// SavedPathContains applies the Contains predicate on the "saved_path" field.
func SavedPathContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldSavedPath, v))
}

// SavedPathHasPrefix applies the HasPrefix predicate on the "saved_path" field.
func SavedPathHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldSavedPath, v))
}

// SavedPathHasSuffix applies the HasSuffix predicate on the "saved_path" field.
func SavedPathHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldSavedPath, v))
}

// SavedPathEqualFold applies the EqualFold predicate on the "saved_path" field.
func SavedPathEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldSavedPath, v))
}

// SavedPathContainsFold applies the ContainsFold predicate on the "saved_path" field.
func SavedPathContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldSavedPath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldFileSize, v))
}

// RawContentEQ applies the EQ predicate on the "raw_content" field.
func RawContentEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldRawContent, v))
}

// RawContentNEQ applies the NEQ predicate on the "raw_content" field.
func RawContentNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldRawContent, v))
}

// RawContentIn applies the In predicate on the "raw_content" field.
func RawContentIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldRawContent, vs...))
}

// RawContentNotIn applies the NotIn predicate on the "raw_content" field.
func RawContentNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldRawContent, vs...))
}

// RawContentGT applies the GT predicate on the "raw_content" field.
func RawContentGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldRawContent, v))
}

// RawContentGTE applies the GTE predicate on the "raw_content" field.
func RawContentGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldRawContent, v))
}

// RawContentLT applies the LT predicate on the "raw_content" field.
func RawContentLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldRawContent, v))
}

// RawContentLTE applies the LTE predicate on the "raw_content" field.
func RawContentLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldRawContent, v))
}

// RawContentContains applies the Contains predicate on the "raw_content" field.
func RawContentContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldRawContent, v))
}

// RawContentHasPrefix applies the HasPrefix predicate on the "raw_content" field.
func RawContentHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldRawContent, v))
}

// RawContentHasSuffix applies the HasSuffix predicate on the "raw_content" field.
func RawContentHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldRawContent, v))
}

// RawContentEqualFold applies the EqualFold predicate on the "raw_content" field.
func RawContentEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldRawContent, v))
}

// RawContentContainsFold applies the ContainsFold predicate on the "raw_content" field.
func RawContentContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldRawContent, v))
}

// RefinedContentEQ applies the EQ predicate on the "refined_content" field.
func RefinedContentEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldRefinedContent, v))
}

// RefinedContentNEQ applies the NEQ predicate on the "refined_content" field.
func RefinedContentNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldRefinedContent, v))
}

// RefinedContentIn applies the In predicate on the "refined_content" field.
func RefinedContentIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldRefinedContent, vs...))
}

// RefinedContentNotIn applies the NotIn predicate on the "refined_content" field.
func RefinedContentNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldRefinedContent, vs...))
}

// RefinedContentGT applies the GT predicate on the "refined_content" field.
func RefinedContentGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldRefinedContent, v))
}

// RefinedContentGTE applies the GTE predicate on the "refined_content" field.
func RefinedContentGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldRefinedContent, v))
}

// RefinedContentLT applies the LT predicate on the "refined_content" field.
func RefinedContentLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldRefinedContent, v))
}

// RefinedContentLTE applies the LTE predicate on the "refined_content" field.
func RefinedContentLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldRefinedContent, v))
}

// RefinedContentContains applies the Contains predicate on the "refined_content" field.
func RefinedContentContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldRefinedContent, v))
}

// RefinedContentHasPrefix applies the HasPrefix predicate on the "refined_content" field.
func RefinedContentHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldRefinedContent, v))
}

// RefinedContentHasSuffix applies the HasSuffix predicate on the "refined_content" field.
func RefinedContentHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldRefinedContent, v))
}

// RefinedContentIsNil applies the IsNil predicate on the "refined_content" field.
func RefinedContentIsNil() predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIsNull(FieldRefinedContent))
}

// RefinedContentNotNil applies the NotNil predicate on the "refined_content" field.
func RefinedContentNotNil() predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotNull(FieldRefinedContent))
}

// RefinedContentEqualFold applies the EqualFold predicate on the "refined_content" field.
func RefinedContentEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldRefinedContent, v))
}

// RefinedContentContainsFold applies the ContainsFold predicate on the "refined_content" field.
func RefinedContentContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldRefinedContent, v))
}

// BillsCountEQ applies the EQ predicate on the "bills_count" field.
func BillsCountEQ(v int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldBillsCount, v))
}

// BillsCountNEQ applies the NEQ predicate on the "bills_count" field.
func BillsCountNEQ(v int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldBillsCount, v))
}

// BillsCountIn applies the In predicate on the "bills_count" field.
func BillsCountIn(vs ...int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldBillsCount, vs...))
}

// BillsCountNotIn applies the NotIn predicate on the "bills_count" field.
func BillsCountNotIn(vs ...int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldBillsCount, vs...))
}

// BillsCountGT applies the GT predicate on the "bills_count" field.
func BillsCountGT(v int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldBillsCount, v))
}

// BillsCountGTE applies the GTE predicate on the "bills_count" field.
func BillsCountGTE(v int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldBillsCount, v))
}

// BillsCountLT applies the LT predicate on the "bills_count" field.
func BillsCountLT(v int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldBillsCount, v))
}

// BillsCountLTE applies the LTE predicate on the "bills_count" field.
func BillsCountLTE(v int) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldBillsCount, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldUploadedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldStatus, v))
}

// RemarkEQ applies the EQ predicate on the "remark" field.
func RemarkEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldRemark, v))
}

// RemarkNEQ applies the NEQ predicate on the "remark" field.
func RemarkNEQ(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldRemark, v))
}

// RemarkIn applies the In predicate on the "remark" field.
func RemarkIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldRemark, vs...))
}

// RemarkNotIn applies the NotIn predicate on the "remark" field.
func RemarkNotIn(vs ...string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldRemark, vs...))
}

// RemarkGT applies the GT predicate on the "remark" field.
func RemarkGT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldRemark, v))
}

// RemarkGTE applies the GTE predicate on the "remark" field.
func RemarkGTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldRemark, v))
}

// RemarkLT applies the LT predicate on the "remark" field.
func RemarkLT(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldRemark, v))
}

// RemarkLTE applies the LTE predicate on the "remark" field.
func RemarkLTE(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldRemark, v))
}

// RemarkContains applies the Contains predicate on the "remark" field.
func RemarkContains(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContains(FieldRemark, v))
}

// RemarkHasPrefix applies the HasPrefix predicate on the "remark" field.
func RemarkHasPrefix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasPrefix(FieldRemark, v))
}

// RemarkHasSuffix applies the HasSuffix predicate on the "remark" field.
func RemarkHasSuffix(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldHasSuffix(FieldRemark, v))
}

// RemarkIsNil applies the IsNil predicate on the "remark" field.
func RemarkIsNil() predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIsNull(FieldRemark))
}

// RemarkNotNil applies the NotNil predicate on the "remark" field.
func RemarkNotNil() predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotNull(FieldRemark))
}

// RemarkEqualFold applies the EqualFold predicate on the "remark" field.
func RemarkEqualFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEqualFold(FieldRemark, v))
}

// RemarkContainsFold applies the ContainsFold predicate on the "remark" field.
func RemarkContainsFold(v string) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldContainsFold(FieldRemark, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldIsDeleted, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FileUpload {
	return predicate.FileUpload(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBills applies the HasEdge predicate on the "bills" edge.
func HasBills() predicate.FileUpload {
	return predicate.FileUpload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BillsTable, BillsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBillsWith applies the HasEdge predicate on the "bills" edge with a given conditions (other predicates).
func HasBillsWith(preds ...predicate.Bill) predicate.FileUpload {
	return predicate.FileUpload(func(s *sql.Selector) {
		step := newBillsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileUpload) predicate.FileUpload {
	return predicate.FileUpload(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileUpload) predicate.FileUpload {
	return predicate.FileUpload(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileUpload) predicate.FileUpload {
	return predicate.FileUpload(sql.NotPredicates(p))
}

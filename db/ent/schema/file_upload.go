package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/db/ent/schema/utils"
)

type FileUpload struct {
	ent.Schema
}

func (FileUpload) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "file_uploads"},
	}
}

func (FileUpload) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// workspace membership lives in an external service; plain column, no FK
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("actor_id").NotEmpty().MaxLen(64),
		field.String("content_hash").NotEmpty().MaxLen(64),
		field.String("filename").NotEmpty(),
		field.String("saved_path").NotEmpty(),
		field.Int64("file_size").NonNegative(),
		field.Text("raw_content"),
		field.Text("refined_content").Optional().Nillable(),
		field.Int("bills_count").Default(0),
		field.Time("uploaded_at").Default(time.Now),
		field.String("status").
			Default(string(constants.FileProcessing)).
			Validate(utils.EnumValidator(
				string(constants.FileProcessing),
				string(constants.FileCompleted),
				string(constants.FileFailed),
			)),
		field.Text("remark").Optional().Nillable(),
		field.Bool("is_deleted").Default(false),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (FileUpload) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY bills
		edge.To("bills", Bill.Type),
	}
}

func (FileUpload) Indexes() []ent.Index {
	return []ent.Index{
		// at most one live row per (workspace, hash); deleted rows never block
		index.Fields("workspace_id", "content_hash").
			Annotations(entsql.IndexWhere("not is_deleted")).
			Unique(),
		index.Fields("workspace_id", "uploaded_at"),
		index.Fields("actor_id"),
	}
}

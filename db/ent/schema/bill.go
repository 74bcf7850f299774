package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/db/ent/schema/utils"
)

var reLast4 = regexp.MustCompile(`^[0-9]{4}$`)

var errLast4 = errors.New("invalid card last-4 digits")

type Bill struct{ ent.Schema }

func (Bill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bills"},
	}
}

func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the composite indexes can reference it
		field.UUID("file_upload_id", uuid.UUID{}),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("bank").Optional().MaxLen(50),
		field.Time("trade_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("record_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Text("description").Optional(),
		field.Float("amount_cny").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(15,2)"}),
		field.String("card_last4").Optional().
			Validate(func(s string) error {
				if s == "" || reLast4.MatchString(s) {
					return nil
				}
				return errLast4
			}),
		field.Float("amount_foreign").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(15,2)"}),
		field.String("currency").Optional().MaxLen(10),
		field.String("status").
			Default(string(constants.BillPending)).
			Validate(utils.EnumValidator(
				string(constants.BillPending),
				string(constants.BillActive),
				string(constants.BillModified),
				string(constants.BillPayed),
			)),
		field.Text("raw_line").Default(""),
		field.Bool("is_deleted").Default(false),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Bill) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bills -> ONE file
		edge.From("file", FileUpload.Type).
			Ref("bills").
			Field("file_upload_id").
			Required().
			Unique(),
	}
}

func (Bill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_upload_id", "is_deleted"),
		index.Fields("workspace_id", "trade_date", "is_deleted"),
	}
}

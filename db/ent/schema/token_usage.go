package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/db/ent/schema/utils"
)

// numericType is the column type used for all money columns.
var numericType = map[string]string{
	dialect.Postgres: "numeric(10,2)",
	dialect.SQLite:   "numeric",
}

// TokenUsage records one completion-API attempt, successful or not.
type TokenUsage struct{ ent.Schema }

func (TokenUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "token_usage_records"},
	}
}

func (TokenUsage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("actor_id").NotEmpty().MaxLen(64),
		field.UUID("workspace_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("file_upload_id", uuid.UUID{}).Optional().Nillable(),
		field.String("call_kind").
			Validate(utils.EnumValidator(
				string(constants.CallRefine),
				string(constants.CallConvert),
			)),
		field.String("model").Optional().MaxLen(50),
		field.Int("prompt_tokens").Default(0),
		field.Int("completion_tokens").Default(0),
		field.Int("total_tokens").Default(0),
		field.Other("unit_price", decimal.Decimal{}).
			Optional().
			SchemaType(numericType),
		field.Other("cost", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(numericType),
		field.String("request_id").Optional().MaxLen(64),
		field.Int("response_time_ms").Optional().Nillable(),
		field.String("status").
			Default(string(constants.UsageSuccess)).
			Validate(utils.EnumValidator(
				string(constants.UsageSuccess),
				string(constants.UsageFailed),
			)),
		field.Text("error_message").Optional().Nillable(),
		field.Bool("is_deleted").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (TokenUsage) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE usage row -> at most ONE billing record
		edge.To("billing_records", BillingRecord.Type),
	}
}

func (TokenUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id", "workspace_id", "is_deleted"),
		index.Fields("file_upload_id", "is_deleted"),
		index.Fields("actor_id", "created_at", "is_deleted"),
	}
}

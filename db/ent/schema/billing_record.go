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
	"github.com/shopspring/decimal"
)

// BillingRecord is one successful deduction against a user account,
// referencing the usage row that triggered it.
type BillingRecord struct{ ent.Schema }

func (BillingRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "billing_records"},
	}
}

func (BillingRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("actor_id").NotEmpty().MaxLen(64),
		field.UUID("token_usage_id", uuid.UUID{}).Optional().Nillable(),
		field.Other("amount", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(numericType),
		field.Other("balance_before", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(numericType),
		field.Other("balance_after", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(numericType),
		field.String("billing_type").Default("token_usage").MaxLen(20),
		field.Text("description").Optional(),
		field.Bool("is_deleted").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (BillingRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("token_usage", TokenUsage.Type).
			Ref("billing_records").
			Field("token_usage_id").
			Unique(),
	}
}

func (BillingRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id", "billing_type", "is_deleted"),
		index.Fields("actor_id", "created_at", "is_deleted"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/db/ent/schema/utils"
)

// UserAccount holds the one mutable balance per actor. Balances are
// actor-global, not workspace-scoped.
type UserAccount struct{ ent.Schema }

func (UserAccount) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "user_accounts"},
	}
}

func (UserAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("actor_id").NotEmpty().MaxLen(64).Unique(),
		field.Other("balance", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(numericType),
		field.Other("total_recharged", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(numericType),
		field.Other("total_consumed", decimal.Decimal{}).
			Default(decimal.Decimal{}).
			SchemaType(numericType),
		field.String("status").
			Default(string(constants.AccountActive)).
			Validate(utils.EnumValidator(
				string(constants.AccountActive),
				string(constants.AccountFrozen),
			)),
		field.Bool("is_deleted").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UserAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id", "status", "is_deleted"),
	}
}

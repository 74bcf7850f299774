// Code generated by ent, DO NOT EDIT.

package billingrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldID, id))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldActorID, v))
}

// TokenUsageID applies equality check predicate on the "token_usage_id" field. It's identical to TokenUsageIDEQ.
func TokenUsageID(v uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldTokenUsageID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldAmount, v))
}

// BalanceBefore applies equality check predicate on the "balance_before" field. It's identical to BalanceBeforeEQ.
func BalanceBefore(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldBalanceBefore, v))
}

// BalanceAfter applies equality check predicate on the "balance_after" field. It's identical to BalanceAfterEQ.
func BalanceAfter(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldBalanceAfter, v))
}

// BillingType applies equality check predicate on the "billing_type" field. It's identical to BillingTypeEQ.
func BillingType(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldBillingType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldDescription, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldContainsFold(FieldActorID, v))
}

// TokenUsageIDEQ applies the EQ predicate on the "token_usage_id" field.
func TokenUsageIDEQ(v uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldTokenUsageID, v))
}

// TokenUsageIDNEQ applies the NEQ predicate on the "token_usage_id" field.
func TokenUsageIDNEQ(v uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldTokenUsageID, v))
}

// TokenUsageIDIn applies the In predicate on the "token_usage_id" field.
func TokenUsageIDIn(vs ...uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldTokenUsageID, vs...))
}

// TokenUsageIDNotIn applies the NotIn predicate on the "token_usage_id" field.
func TokenUsageIDNotIn(vs ...uuid.UUID) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldTokenUsageID, vs...))
}

// TokenUsageIDIsNil applies the IsNil predicate on the "token_usage_id" field.
func TokenUsageIDIsNil() predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIsNull(FieldTokenUsageID))
}

// TokenUsageIDNotNil applies the NotNil predicate on the "token_usage_id" field.
func TokenUsageIDNotNil() predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotNull(FieldTokenUsageID))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldAmount, v))
}

// BalanceBeforeEQ applies the EQ predicate on the "balance_before" field.
func BalanceBeforeEQ(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldBalanceBefore, v))
}

// BalanceBeforeNEQ applies the NEQ predicate on the "balance_before" field.
func BalanceBeforeNEQ(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldBalanceBefore, v))
}

// BalanceBeforeIn applies the In predicate on the "balance_before" field.
func BalanceBeforeIn(vs ...decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldBalanceBefore, vs...))
}

// BalanceBeforeNotIn applies the NotIn predicate on the "balance_before" field.
func BalanceBeforeNotIn(vs ...decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldBalanceBefore, vs...))
}

// BalanceBeforeGT applies the GT predicate on the "balance_before" field.
func BalanceBeforeGT(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldBalanceBefore, v))
}

// BalanceBeforeGTE applies the GTE predicate on the "balance_before" field.
func BalanceBeforeGTE(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldBalanceBefore, v))
}

// BalanceBeforeLT applies the LT predicate on the "balance_before" field.
func BalanceBeforeLT(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldBalanceBefore, v))
}

// BalanceBeforeLTE applies the LTE predicate on the "balance_before" field.
func BalanceBeforeLTE(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldBalanceBefore, v))
}

// BalanceAfterEQ applies the EQ predicate on the "balance_after" field.
func BalanceAfterEQ(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldBalanceAfter, v))
}

// BalanceAfterNEQ applies the NEQ predicate on the "balance_after" field.
func BalanceAfterNEQ(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldBalanceAfter, v))
}

// BalanceAfterIn applies the In predicate on the "balance_after" field.
func BalanceAfterIn(vs ...decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldBalanceAfter, vs...))
}

// BalanceAfterNotIn applies the NotIn predicate on the "balance_after" field.
func BalanceAfterNotIn(vs ...decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldBalanceAfter, vs...))
}

// BalanceAfterGT applies the GT predicate on the "balance_after" field.
func BalanceAfterGT(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldBalanceAfter, v))
}

// BalanceAfterGTE applies the GTE predicate on the "balance_after" field.
func BalanceAfterGTE(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldBalanceAfter, v))
}

// BalanceAfterLT applies the LT predicate on the "balance_after" field.
func BalanceAfterLT(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldBalanceAfter, v))
}

// BalanceAfterLTE applies the LTE predicate on the "balance_after" field.
func BalanceAfterLTE(v decimal.Decimal) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldBalanceAfter, v))
}

// BillingTypeEQ applies the EQ predicate on the "billing_type" field.
func BillingTypeEQ(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldBillingType, v))
}

// BillingTypeNEQ applies the NEQ predicate on the "billing_type" field.
func BillingTypeNEQ(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldBillingType, v))
}

// BillingTypeIn applies the In predicate on the "billing_type" field.
func BillingTypeIn(vs ...string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldBillingType, vs...))
}

// BillingTypeNotIn applies the NotIn predicate on the "billing_type" field.
func BillingTypeNotIn(vs ...string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldBillingType, vs...))
}

// BillingTypeGT applies the GT predicate on the "billing_type" field.
func BillingTypeGT(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldBillingType, v))
}

// BillingTypeGTE applies the GTE predicate on the "billing_type" field.
func BillingTypeGTE(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldBillingType, v))
}

// BillingTypeLT applies the LT predicate on the "billing_type" field.
func BillingTypeLT(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldBillingType, v))
}

// BillingTypeLTE applies the LTE predicate on the "billing_type" field.
func BillingTypeLTE(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldBillingType, v))
}

// BillingTypeContains applies the Contains predicate on the "billing_type" field.
func BillingTypeContains(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldContains(FieldBillingType, v))
}

// BillingTypeHasPrefix applies the HasPrefix predicate on the "billing_type" field.
func BillingTypeHasPrefix(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldHasPrefix(FieldBillingType, v))
}

// BillingTypeHasSuffix applies the HasSuffix predicate on the "billing_type" field.
func BillingTypeHasSuffix(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldHasSuffix(FieldBillingType, v))
}

// BillingTypeEqualFold applies the EqualFold predicate on the "billing_type" field.
func BillingTypeEqualFold(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEqualFold(FieldBillingType, v))
}

// BillingTypeContainsFold applies the ContainsFold predicate on the "billing_type" field.
func BillingTypeContainsFold(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldContainsFold(FieldBillingType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldContainsFold(FieldDescription, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BillingRecord {
	return predicate.BillingRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTokenUsage applies the HasEdge predicate on the "token_usage" edge.
func HasTokenUsage() predicate.BillingRecord {
	return predicate.BillingRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TokenUsageTable, TokenUsageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTokenUsageWith applies the HasEdge predicate on the "token_usage" edge with a given conditions (other predicates).
func HasTokenUsageWith(preds ...predicate.TokenUsage) predicate.BillingRecord {
	return predicate.BillingRecord(func(s *sql.Selector) {
		step := newTokenUsageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillingRecord) predicate.BillingRecord {
	return predicate.BillingRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillingRecord) predicate.BillingRecord {
	return predicate.BillingRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillingRecord) predicate.BillingRecord {
	return predicate.BillingRecord(sql.NotPredicates(p))
}

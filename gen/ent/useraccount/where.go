// Code generated by ent, DO NOT EDIT.

package useraccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/billfeed/billfeed/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldID, id))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldActorID, v))
}

// Balance applies equality check predicate on the "balance" field. It's identical to BalanceEQ.
func Balance(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldBalance, v))
}

// TotalRecharged applies equality check predicate on the "total_recharged" field. It's identical to TotalRechargedEQ.
func TotalRecharged(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldTotalRecharged, v))
}

// TotalConsumed applies equality check predicate on the "total_consumed" field. It's identical to TotalConsumedEQ.
func TotalConsumed(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldTotalConsumed, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldStatus, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldContainsFold(FieldActorID, v))
}

// BalanceEQ applies the EQ predicate on the "balance" field.
func BalanceEQ(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldBalance, v))
}

// BalanceNEQ applies the NEQ predicate on the "balance" field.
func BalanceNEQ(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldBalance, v))
}

// BalanceIn applies the In predicate on the "balance" field.
func BalanceIn(vs ...decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldBalance, vs...))
}

// BalanceNotIn applies the NotIn predicate on the "balance" field.
func BalanceNotIn(vs ...decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldBalance, vs...))
}

// BalanceGT applies the GT predicate on the "balance" field.
func BalanceGT(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldBalance, v))
}

// BalanceGTE applies the GTE predicate on the "balance" field.
func BalanceGTE(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldBalance, v))
}

// BalanceLT applies the LT predicate on the "balance" field.
func BalanceLT(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldBalance, v))
}

// BalanceLTE applies the LTE predicate on the "balance" field.
func BalanceLTE(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldBalance, v))
}

// TotalRechargedEQ applies the EQ predicate on the "total_recharged" field.
func TotalRechargedEQ(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldTotalRecharged, v))
}

// TotalRechargedNEQ applies the NEQ predicate on the "total_recharged" field.
func TotalRechargedNEQ(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldTotalRecharged, v))
}

// TotalRechargedIn applies the In predicate on the "total_recharged" field.
func TotalRechargedIn(vs ...decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldTotalRecharged, vs...))
}

// TotalRechargedNotIn applies the NotIn predicate on the "total_recharged" field.
func TotalRechargedNotIn(vs ...decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldTotalRecharged, vs...))
}

// TotalRechargedGT applies the GT predicate on the "total_recharged" field.
func TotalRechargedGT(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldTotalRecharged, v))
}

// TotalRechargedGTE applies the GTE predicate on the "total_recharged" field.
func TotalRechargedGTE(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldTotalRecharged, v))
}

// TotalRechargedLT applies the LT predicate on the "total_recharged" field.
func TotalRechargedLT(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldTotalRecharged, v))
}

// TotalRechargedLTE applies the LTE predicate on the "total_recharged" field.
func TotalRechargedLTE(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldTotalRecharged, v))
}

// TotalConsumedEQ applies the EQ predicate on the "total_consumed" field.
func TotalConsumedEQ(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldTotalConsumed, v))
}

// TotalConsumedNEQ applies the NEQ predicate on the "total_consumed" field.
func TotalConsumedNEQ(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldTotalConsumed, v))
}

// TotalConsumedIn applies the In predicate on the "total_consumed" field.
func TotalConsumedIn(vs ...decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldTotalConsumed, vs...))
}

// TotalConsumedNotIn applies the NotIn predicate on the "total_consumed" field.
func TotalConsumedNotIn(vs ...decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldTotalConsumed, vs...))
}

// TotalConsumedGT applies the GT predicate on the "total_consumed" field.
func TotalConsumedGT(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldTotalConsumed, v))
}

// TotalConsumedGTE applies the GTE predicate on the "total_consumed" field.
func TotalConsumedGTE(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldTotalConsumed, v))
}

// TotalConsumedLT applies the LT predicate on the "total_consumed" field.
func TotalConsumedLT(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldTotalConsumed, v))
}

// TotalConsumedLTE applies the LTE predicate on the "total_consumed" field.
func TotalConsumedLTE(v decimal.Decimal) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldTotalConsumed, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldContainsFold(FieldStatus, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserAccount {
	return predicate.UserAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserAccount) predicate.UserAccount {
	return predicate.UserAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserAccount) predicate.UserAccount {
	return predicate.UserAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserAccount) predicate.UserAccount {
	return predicate.UserAccount(sql.NotPredicates(p))
}

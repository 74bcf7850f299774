// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/billfeed/billfeed/gen/ent/billingrecord"
	"github.com/billfeed/billfeed/gen/ent/tokenusage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingRecord is the model entity for the BillingRecord schema.
type BillingRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID string `json:"actor_id,omitempty"`
	// TokenUsageID holds the value of the "token_usage_id" field.
	TokenUsageID *uuid.UUID `json:"token_usage_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount decimal.Decimal `json:"amount,omitempty"`
	// BalanceBefore holds the value of the "balance_before" field.
	BalanceBefore decimal.Decimal `json:"balance_before,omitempty"`
	// BalanceAfter holds the value of the "balance_after" field.
	BalanceAfter decimal.Decimal `json:"balance_after,omitempty"`
	// BillingType holds the value of the "billing_type" field.
	BillingType string `json:"billing_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BillingRecordQuery when eager-loading is set.
	Edges        BillingRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BillingRecordEdges holds the relations/edges for other nodes in the graph.
type BillingRecordEdges struct {
	// TokenUsage holds the value of the token_usage edge.
	TokenUsage *TokenUsage `json:"token_usage,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TokenUsageOrErr returns the TokenUsage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BillingRecordEdges) TokenUsageOrErr() (*TokenUsage, error) {
	if e.TokenUsage != nil {
		return e.TokenUsage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tokenusage.Label}
	}
	return nil, &NotLoadedError{edge: "token_usage"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillingRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billingrecord.FieldTokenUsageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case billingrecord.FieldAmount, billingrecord.FieldBalanceBefore, billingrecord.FieldBalanceAfter:
			values[i] = new(decimal.Decimal)
		case billingrecord.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case billingrecord.FieldActorID, billingrecord.FieldBillingType, billingrecord.FieldDescription:
			values[i] = new(sql.NullString)
		case billingrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case billingrecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillingRecord fields.
func (_m *BillingRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billingrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case billingrecord.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case billingrecord.FieldTokenUsageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field token_usage_id", values[i])
			} else if value.Valid {
				_m.TokenUsageID = new(uuid.UUID)
				*_m.TokenUsageID = *value.S.(*uuid.UUID)
			}
		case billingrecord.FieldAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value != nil {
				_m.Amount = *value
			}
		case billingrecord.FieldBalanceBefore:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field balance_before", values[i])
			} else if value != nil {
				_m.BalanceBefore = *value
			}
		case billingrecord.FieldBalanceAfter:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field balance_after", values[i])
			} else if value != nil {
				_m.BalanceAfter = *value
			}
		case billingrecord.FieldBillingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field billing_type", values[i])
			} else if value.Valid {
				_m.BillingType = value.String
			}
		case billingrecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case billingrecord.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case billingrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillingRecord.
// This includes values selected through modifiers, order, etc.
func (_m *BillingRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTokenUsage queries the "token_usage" edge of the BillingRecord entity.
func (_m *BillingRecord) QueryTokenUsage() *TokenUsageQuery {
	return NewBillingRecordClient(_m.config).QueryTokenUsage(_m)
}

// Update returns a builder for updating this BillingRecord.
// Note that you need to call BillingRecord.Unwrap() before calling this method if this BillingRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BillingRecord) Update() *BillingRecordUpdateOne {
	return NewBillingRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BillingRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BillingRecord) Unwrap() *BillingRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillingRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BillingRecord) String() string {
	var builder strings.Builder
	builder.WriteString("BillingRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	if v := _m.TokenUsageID; v != nil {
		builder.WriteString("token_usage_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("balance_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalanceBefore))
	builder.WriteString(", ")
	builder.WriteString("balance_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalanceAfter))
	builder.WriteString(", ")
	builder.WriteString("billing_type=")
	builder.WriteString(_m.BillingType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BillingRecords is a parsable slice of BillingRecord.
type BillingRecords []*BillingRecord

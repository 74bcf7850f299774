package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	entbilling "github.com/billfeed/billfeed/gen/ent/billingrecord"
	entaccount "github.com/billfeed/billfeed/gen/ent/useraccount"
	"github.com/billfeed/billfeed/internal/common"
)

type AccountRepository interface {
	// GetOrCreate returns the actor's account, creating it with the given
	// starting balance on first contact.
	GetOrCreate(ctx context.Context, actorID string, initialBalance decimal.Decimal) (*ent.UserAccount, error)
	// Deduct atomically subtracts amount from the balance and writes the
	// matching billing record. On Postgres the account row is locked FOR
	// UPDATE for the duration of the transaction. The balance may go
	// negative; enforcement is the billing service's decision, not the
	// ledger's.
	Deduct(ctx context.Context, actorID string, amount decimal.Decimal, usageID uuid.UUID, description string, initialBalance decimal.Decimal) (*ent.BillingRecord, error)
	ListBillingRecords(ctx context.Context, actorID string, from, to time.Time, limit, offset int) ([]*ent.BillingRecord, error)
}

type accountRepo struct {
	ent     *ent.Client
	dialect string
	logger  *slog.Logger
}

// NewAccountRepository needs the driver dialect because the deduction path
// takes a row lock only where the database supports one.
func NewAccountRepository(entc *ent.Client, dbDialect string, logger *slog.Logger) AccountRepository {
	return &accountRepo{ent: entc, dialect: dbDialect, logger: logger}
}

func (r *accountRepo) GetOrCreate(ctx context.Context, actorID string, initialBalance decimal.Decimal) (*ent.UserAccount, error) {
	acct, err := r.ent.UserAccount.Query().
		Where(entaccount.ActorID(actorID), entaccount.IsDeleted(false)).
		Only(ctx)
	if err == nil {
		return acct, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	acct, err = r.ent.UserAccount.Create().
		SetActorID(actorID).
		SetBalance(initialBalance).
		SetTotalRecharged(initialBalance).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// lost a creation race; the row exists now
		return r.ent.UserAccount.Query().
			Where(entaccount.ActorID(actorID), entaccount.IsDeleted(false)).
			Only(ctx)
	}
	if err != nil {
		r.logger.Error("failed to create account", "actor_id", actorID, "error", err)
		return nil, err
	}
	r.logger.Info("account.created", "actor_id", actorID, "balance", initialBalance.String())
	return acct, nil
}

func (r *accountRepo) Deduct(ctx context.Context, actorID string, amount decimal.Decimal, usageID uuid.UUID, description string, initialBalance decimal.Decimal) (*ent.BillingRecord, error) {
	if _, err := r.GetOrCreate(ctx, actorID, initialBalance); err != nil {
		return nil, err
	}

	var record *ent.BillingRecord
	err := WithTx(ctx, r.ent, func(tx *ent.Tx) error {
		q := tx.UserAccount.Query().
			Where(entaccount.ActorID(actorID), entaccount.IsDeleted(false))
		// SQLite rejects FOR UPDATE; there a single writer connection
		// serializes deductions instead.
		if r.dialect == dialect.Postgres {
			q = q.ForUpdate()
		}
		acct, err := q.Only(ctx)
		if err != nil {
			return err
		}
		if acct.Status == string(constants.AccountFrozen) {
			return fmt.Errorf("%w: %s", common.ErrAccountFrozen, actorID)
		}

		before := acct.Balance
		after := before.Sub(amount)

		if _, err := tx.UserAccount.UpdateOneID(acct.ID).
			SetBalance(after).
			SetTotalConsumed(acct.TotalConsumed.Add(amount)).
			Save(ctx); err != nil {
			return fmt.Errorf("updating balance: %w", err)
		}

		record, err = tx.BillingRecord.Create().
			SetActorID(actorID).
			SetTokenUsageID(usageID).
			SetAmount(amount).
			SetBalanceBefore(before).
			SetBalanceAfter(after).
			SetBillingType("token_usage").
			SetDescription(description).
			Save(ctx)
		return err
	})
	if err != nil {
		r.logger.Error("failed to deduct", "actor_id", actorID, "amount", amount.String(), "error", err)
		return nil, err
	}

	r.logger.Info("billing.deducted",
		"actor_id", actorID,
		"amount", amount.String(),
		"balance_after", record.BalanceAfter.String(),
	)
	return record, nil
}

func (r *accountRepo) ListBillingRecords(ctx context.Context, actorID string, from, to time.Time, limit, offset int) ([]*ent.BillingRecord, error) {
	q := r.ent.BillingRecord.Query().
		Where(entbilling.ActorID(actorID), entbilling.IsDeleted(false))
	if !from.IsZero() {
		q = q.Where(entbilling.CreatedAtGTE(from))
	}
	if !to.IsZero() {
		q = q.Where(entbilling.CreatedAtLT(to))
	}
	q = q.Order(ent.Desc(entbilling.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	return q.All(ctx)
}

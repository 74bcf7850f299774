package billing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/gen/ent"
	"github.com/billfeed/billfeed/internal/common"
	"github.com/billfeed/billfeed/internal/llm"
	"github.com/billfeed/billfeed/internal/repository"
)

var thousand = decimal.NewFromInt(1000)

// Service meters completion calls against actor balances. Every call
// attempt leaves a usage row; only successful calls move money.
type Service struct {
	accounts repository.AccountRepository
	usage    repository.UsageRepository
	cfg      common.BillingConfig
	logger   *slog.Logger
}

func NewService(accounts repository.AccountRepository, usage repository.UsageRepository, cfg common.BillingConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{accounts: accounts, usage: usage, cfg: cfg, logger: logger}
}

// UsageEvent is one completion attempt to meter.
type UsageEvent struct {
	ActorID      string
	WorkspaceID  *uuid.UUID
	FileUploadID *uuid.UUID
	Kind         constants.CallKind
	Response     llm.CompletionResponse
	CallErr      error // non-nil when the completion call itself failed
}

// UsageReceipt reports what a metered call cost.
type UsageReceipt struct {
	UsageID      uuid.UUID
	Cost         decimal.Decimal
	BalanceAfter decimal.Decimal
}

func (s *Service) seedBalanceFor(actorID string) decimal.Decimal {
	for _, seed := range s.cfg.SeedActors {
		if seed == actorID {
			return s.cfg.SeedBalance
		}
	}
	return decimal.Decimal{}
}

// UnitPriceFor returns the per-1000-token price for a model.
func (s *Service) UnitPriceFor(model string) decimal.Decimal {
	if p, ok := s.cfg.UnitPrices[model]; ok {
		return p
	}
	return s.cfg.DefaultUnitPrice
}

// Cost computes the charge for a call: tokens/1000 * unit price, rounded to
// cents half away from zero.
func Cost(totalTokens int, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(totalTokens)).Div(thousand).Mul(unitPrice).Round(2)
}

// CheckBalance reports whether the actor may start new paid work. The
// threshold is advisory unless EnforceBalance is set; callers decide what
// to do with an insufficient answer.
func (s *Service) CheckBalance(ctx context.Context, actorID string) (bool, decimal.Decimal, error) {
	acct, err := s.accounts.GetOrCreate(ctx, actorID, s.seedBalanceFor(actorID))
	if err != nil {
		return false, decimal.Decimal{}, err
	}
	sufficient := acct.Status == string(constants.AccountActive) &&
		acct.Balance.GreaterThan(s.cfg.MinBalance)
	if !sufficient {
		s.logger.Warn("billing.balance_low",
			"actor_id", actorID,
			"balance", acct.Balance.String(),
			"threshold", s.cfg.MinBalance.String(),
			"enforced", s.cfg.EnforceBalance,
		)
	}
	return sufficient, acct.Balance, nil
}

// Enforced reports whether an insufficient balance blocks new uploads.
func (s *Service) Enforced() bool { return s.cfg.EnforceBalance }

// RecordUsage writes the usage row for one completion attempt and, on
// success, deducts the computed cost. Failed calls are recorded with zero
// tokens and zero cost so the audit trail stays complete.
func (s *Service) RecordUsage(ctx context.Context, ev UsageEvent) (*UsageReceipt, error) {
	if ev.CallErr != nil {
		msg := ev.CallErr.Error()
		row, err := s.usage.Record(ctx, repository.UsageParams{
			ActorID:      ev.ActorID,
			WorkspaceID:  ev.WorkspaceID,
			FileUploadID: ev.FileUploadID,
			CallKind:     ev.Kind,
			Model:        ev.Response.Model,
			RequestID:    ev.Response.RequestID,
			Status:       constants.UsageFailed,
			ErrorMessage: &msg,
		})
		if err != nil {
			return nil, fmt.Errorf("recording failed usage: %w", err)
		}
		return &UsageReceipt{UsageID: row.ID}, nil
	}

	unitPrice := s.UnitPriceFor(ev.Response.Model)
	cost := Cost(ev.Response.Usage.TotalTokens, unitPrice)
	respMs := int(ev.Response.Elapsed.Milliseconds())

	row, err := s.usage.Record(ctx, repository.UsageParams{
		ActorID:        ev.ActorID,
		WorkspaceID:    ev.WorkspaceID,
		FileUploadID:   ev.FileUploadID,
		CallKind:       ev.Kind,
		Model:          ev.Response.Model,
		PromptTokens:   ev.Response.Usage.PromptTokens,
		CompletionToks: ev.Response.Usage.CompletionTokens,
		TotalTokens:    ev.Response.Usage.TotalTokens,
		UnitPrice:      unitPrice,
		Cost:           cost,
		RequestID:      ev.Response.RequestID,
		ResponseTimeMs: &respMs,
		Status:         constants.UsageSuccess,
	})
	if err != nil {
		return nil, fmt.Errorf("recording usage: %w", err)
	}

	record, err := s.accounts.Deduct(ctx, ev.ActorID, cost, row.ID,
		"AI token usage charge", s.seedBalanceFor(ev.ActorID))
	if err != nil {
		return nil, fmt.Errorf("deducting cost: %w", err)
	}

	s.logger.Info("billing.usage_recorded",
		"actor_id", ev.ActorID,
		"call_kind", ev.Kind,
		"tokens", ev.Response.Usage.TotalTokens,
		"cost", cost.String(),
		"balance_after", record.BalanceAfter.String(),
	)
	return &UsageReceipt{
		UsageID:      row.ID,
		Cost:         cost,
		BalanceAfter: record.BalanceAfter,
	}, nil
}

// GetBalance returns the actor's account, creating it on first contact.
func (s *Service) GetBalance(ctx context.Context, actorID string) (*ent.UserAccount, error) {
	return s.accounts.GetOrCreate(ctx, actorID, s.seedBalanceFor(actorID))
}

// DailyStat is one day's aggregated successful usage.
type DailyStat struct {
	Date     string
	Amount   decimal.Decimal
	APICalls int
	Tokens   int
}

// MonthlySummary aggregates an actor's successful usage for one month.
type MonthlySummary struct {
	Month       string
	TotalAmount decimal.Decimal
	TotalCalls  int
	TotalTokens int
	Daily       []DailyStat
}

// MonthRange converts "YYYY-MM" into its [start, end) window in UTC.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month must be YYYY-MM", common.ErrInvalidInput)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// MonthlyUsage aggregates successful usage rows per day.
func (s *Service) MonthlyUsage(ctx context.Context, actorID, month string) (*MonthlySummary, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	rows, err := s.usage.ListForMonth(ctx, actorID, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailyStat)
	out := &MonthlySummary{Month: month}
	for _, row := range rows {
		if row.Status != string(constants.UsageSuccess) {
			continue
		}
		key := row.CreatedAt.Format("2006-01-02")
		stat, ok := byDay[key]
		if !ok {
			stat = &DailyStat{Date: key}
			byDay[key] = stat
		}
		stat.Amount = stat.Amount.Add(row.Cost)
		stat.APICalls++
		stat.Tokens += row.TotalTokens

		out.TotalAmount = out.TotalAmount.Add(row.Cost)
		out.TotalCalls++
		out.TotalTokens += row.TotalTokens
	}

	for _, stat := range byDay {
		out.Daily = append(out.Daily, *stat)
	}
	sort.Slice(out.Daily, func(i, j int) bool { return out.Daily[i].Date < out.Daily[j].Date })

	s.logger.Info("billing.monthly_usage",
		"actor_id", actorID, "month", month, "calls", out.TotalCalls)
	return out, nil
}

// ListBillingRecords returns deduction history, optionally month-filtered.
func (s *Service) ListBillingRecords(ctx context.Context, actorID, month string, page, pageSize int) ([]*ent.BillingRecord, error) {
	var from, to time.Time
	if month != "" {
		var err error
		from, to, err = MonthRange(month)
		if err != nil {
			return nil, err
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return s.accounts.ListBillingRecords(ctx, actorID, from, to, pageSize, (page-1)*pageSize)
}

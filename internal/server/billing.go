package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/billfeed/billfeed/gen/proto/billfeed/v1"
	"github.com/billfeed/billfeed/internal/billing"
	"github.com/billfeed/billfeed/internal/common"
)

type BillingService struct {
	v1.UnimplementedBillingServiceServer
	billing *billing.Service
	logger  *slog.Logger
}

func NewBillingService(billingSvc *billing.Service, logger *slog.Logger) *BillingService {
	return &BillingService{billing: billingSvc, logger: logger}
}

func requireActor(actorID string) error {
	v := common.NewValidator().Field("actor_id", actorID, common.Required)
	return common.ValidateAndReturnError(v)
}

// GetBalance implements v1.BillingServiceServer
func (s *BillingService) GetBalance(ctx context.Context, req *v1.GetBalanceRequest) (*v1.GetBalanceResponse, error) {
	if err := requireActor(req.GetActorId()); err != nil {
		return nil, err
	}
	acct, err := s.billing.GetBalance(ctx, req.GetActorId())
	if err != nil {
		s.logger.Error("get balance failed", "actor_id", req.GetActorId(), "error", err)
		return nil, common.InternalError("get balance failed")
	}
	return &v1.GetBalanceResponse{
		Balance:        acct.Balance.String(),
		TotalRecharged: acct.TotalRecharged.String(),
		TotalConsumed:  acct.TotalConsumed.String(),
		Status:         acct.Status,
	}, nil
}

// GetMonthlyUsage implements v1.BillingServiceServer
func (s *BillingService) GetMonthlyUsage(ctx context.Context, req *v1.GetMonthlyUsageRequest) (*v1.GetMonthlyUsageResponse, error) {
	if err := requireActor(req.GetActorId()); err != nil {
		return nil, err
	}
	usage, err := s.billing.MonthlyUsage(ctx, req.GetActorId(), req.GetMonth())
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("get monthly usage failed", "actor_id", req.GetActorId(), "error", err)
		return nil, common.InternalError("get monthly usage failed")
	}

	daily := make([]*v1.DailyStat, 0, len(usage.Daily))
	for _, d := range usage.Daily {
		daily = append(daily, &v1.DailyStat{
			Date:     d.Date,
			Amount:   d.Amount.String(),
			ApiCalls: int32(d.APICalls),
			Tokens:   int64(d.Tokens),
		})
	}
	return &v1.GetMonthlyUsageResponse{
		Month:         usage.Month,
		TotalAmount:   usage.TotalAmount.String(),
		TotalApiCalls: int32(usage.TotalCalls),
		TotalTokens:   int64(usage.TotalTokens),
		DailyStats:    daily,
	}, nil
}

// ExportMonthlyUsage implements v1.BillingServiceServer
func (s *BillingService) ExportMonthlyUsage(ctx context.Context, req *v1.ExportMonthlyUsageRequest) (*v1.ExportMonthlyUsageResponse, error) {
	if err := requireActor(req.GetActorId()); err != nil {
		return nil, err
	}
	content, err := s.billing.ExportMonthlyUsage(ctx, req.GetActorId(), req.GetMonth())
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("export monthly usage failed", "actor_id", req.GetActorId(), "error", err)
		return nil, common.InternalError("export monthly usage failed")
	}
	return &v1.ExportMonthlyUsageResponse{
		Filename: fmt.Sprintf("usage-%s.xlsx", req.GetMonth()),
		Content:  content,
	}, nil
}

// ListBillingRecords implements v1.BillingServiceServer
func (s *BillingService) ListBillingRecords(ctx context.Context, req *v1.ListBillingRecordsRequest) (*v1.ListBillingRecordsResponse, error) {
	if err := requireActor(req.GetActorId()); err != nil {
		return nil, err
	}
	rows, err := s.billing.ListBillingRecords(ctx, req.GetActorId(), req.GetMonth(), int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("list billing records failed", "actor_id", req.GetActorId(), "error", err)
		return nil, common.InternalError("list billing records failed")
	}

	out := make([]*v1.BillingRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, &v1.BillingRecord{
			Id:            r.ID.String(),
			Amount:        r.Amount.String(),
			BalanceBefore: r.BalanceBefore.String(),
			BalanceAfter:  r.BalanceAfter.String(),
			BillingType:   r.BillingType,
			Description:   r.Description,
			CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return &v1.ListBillingRecordsResponse{Records: out}, nil
}

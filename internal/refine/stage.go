package refine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/billfeed/billfeed/constants"
	"github.com/billfeed/billfeed/internal/async"
	"github.com/billfeed/billfeed/internal/billing"
	"github.com/billfeed/billfeed/internal/llm"
	"github.com/billfeed/billfeed/internal/repository"
)

// llmErrPrefix marks failures caused by the completion provider. Only these
// surface as a user-visible remark on the file.
const llmErrPrefix = "[LLM]"

// Stage runs the two-pass refinement for one uploaded file: curate the raw
// text into record lines, convert the lines into structured bills, persist.
// Every completion attempt is metered through the billing service whether it
// succeeds or not.
type Stage struct {
	files     repository.FileRepository
	completer llm.Completer
	billing   *billing.Service
	logger    *slog.Logger
}

func NewStage(files repository.FileRepository, completer llm.Completer, billingSvc *billing.Service, logger *slog.Logger) *Stage {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stage{files: files, completer: completer, billing: billingSvc, logger: logger}
}

// ProcessFile implements async.Refiner. Stage-local failures become a
// terminal failed state on the file, never an error to the queue beyond
// logging, because the uploader already got its accepted response.
func (s *Stage) ProcessFile(ctx context.Context, job async.Job) error {
	s.logger.Info("refine.start", "file_id", job.FileID)

	file, err := s.files.GetByID(ctx, job.FileID)
	if err != nil {
		return fmt.Errorf("loading file %s: %w", job.FileID, err)
	}

	refined, err := s.curate(ctx, job, file.RawContent)
	if err != nil {
		return s.fail(ctx, job.FileID, err)
	}

	if refined == "" || refined == llm.NoBills {
		if _, err := s.files.CompleteWithBills(ctx, job.FileID, refined, nil); err != nil {
			return s.fail(ctx, job.FileID, fmt.Errorf("completing empty file: %w", err))
		}
		s.logger.Info("refine.done", "file_id", job.FileID, "bills", 0)
		return nil
	}

	bills, err := s.convert(ctx, job, refined)
	if err != nil {
		return s.fail(ctx, job.FileID, err)
	}

	params := make([]repository.BillParams, 0, len(bills))
	for _, b := range bills {
		params = append(params, CleanseBill(b))
	}

	// A persistence error must not strand the file in processing: the row
	// would read as a live duplicate forever and block re-uploads.
	if _, err := s.files.CompleteWithBills(ctx, job.FileID, refined, params); err != nil {
		return s.fail(ctx, job.FileID, fmt.Errorf("persisting bills: %w", err))
	}
	s.logger.Info("refine.done", "file_id", job.FileID, "bills", len(params))
	return nil
}

// curate runs the first pass: raw text -> one record per line.
func (s *Stage) curate(ctx context.Context, job async.Job, raw string) (string, error) {
	if err := s.gateBalance(ctx, job.ActorID); err != nil {
		return "", err
	}

	resp, callErr := s.completer.Complete(ctx, llm.CompletionRequest{
		System:      llm.CurateSystem,
		Prompt:      llm.BuildCuratePrompt(raw),
		Temperature: llm.CurateTemperature,
		MaxTokens:   llm.CurateMaxTokens,
	})
	s.meter(ctx, job, constants.CallRefine, resp, callErr)
	if callErr != nil {
		return "", fmt.Errorf("%s curate failed: %w", llmErrPrefix, callErr)
	}
	s.logger.Info("refine.curate.ok", "file_id", job.FileID, "tokens", resp.Usage.TotalTokens)
	return strings.TrimSpace(resp.Text), nil
}

// convert runs the second pass: record lines -> validated structured rows.
func (s *Stage) convert(ctx context.Context, job async.Job, refined string) ([]llm.BillFields, error) {
	if err := s.gateBalance(ctx, job.ActorID); err != nil {
		return nil, err
	}

	resp, callErr := s.completer.Complete(ctx, llm.CompletionRequest{
		System:      llm.ConvertSystem,
		Prompt:      llm.BuildConvertPrompt(refined),
		Temperature: llm.ConvertTemperature,
		MaxTokens:   llm.ConvertMaxTokens,
	})
	s.meter(ctx, job, constants.CallConvert, resp, callErr)
	if callErr != nil {
		return nil, fmt.Errorf("%s convert failed: %w", llmErrPrefix, callErr)
	}

	bills, err := llm.DecodeBills(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("%s structuring failed: %w", llmErrPrefix, err)
	}
	s.logger.Info("refine.convert.ok", "file_id", job.FileID, "bills", len(bills), "tokens", resp.Usage.TotalTokens)
	return bills, nil
}

// gateBalance blocks a pass only when enforcement is switched on; otherwise
// an insufficient balance is logged by the billing service and work goes on.
func (s *Stage) gateBalance(ctx context.Context, actorID string) error {
	sufficient, balance, err := s.billing.CheckBalance(ctx, actorID)
	if err != nil {
		return fmt.Errorf("checking balance: %w", err)
	}
	if !sufficient && s.billing.Enforced() {
		return fmt.Errorf("%s insufficient balance: %s", llmErrPrefix, balance.String())
	}
	return nil
}

// meter records the attempt in the usage ledger. Metering problems are
// logged, not propagated: they must not turn a good extraction into a
// failed file.
func (s *Stage) meter(ctx context.Context, job async.Job, kind constants.CallKind, resp llm.CompletionResponse, callErr error) {
	_, err := s.billing.RecordUsage(ctx, billing.UsageEvent{
		ActorID:      job.ActorID,
		WorkspaceID:  &job.WorkspaceID,
		FileUploadID: &job.FileID,
		Kind:         kind,
		Response:     resp,
		CallErr:      callErr,
	})
	if err != nil {
		s.logger.Error("refine.meter_failed", "file_id", job.FileID, "call_kind", kind, "error", err)
	}
}

// fail moves the file to its terminal failed state, keeping the error text
// as the refined content and surfacing provider errors as the remark.
func (s *Stage) fail(ctx context.Context, fileID uuid.UUID, cause error) error {
	errText := cause.Error()
	var remark *string
	if strings.HasPrefix(errText, llmErrPrefix) {
		remark = &errText
	}
	if err := s.files.MarkFailed(ctx, fileID, errText, remark); err != nil {
		return fmt.Errorf("marking file %s failed: %w", fileID, err)
	}
	s.logger.Warn("refine.failed", "file_id", fileID, "error", errText)
	return nil
}

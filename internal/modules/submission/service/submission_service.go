package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"easeed/internal/modules/submission/domain"
	submissionout "easeed/internal/modules/submission/port/out"
	"easeed/internal/platform/clock"
	apperrors "easeed/internal/platform/errors"
	"easeed/internal/platform/id"
)

type SubmissionService struct {
	clock      clock.Clock
	ids        id.Generator
	dispatcher submissionout.Dispatcher
	inspector  submissionout.FileInspector
	logger     *zap.Logger

	inFlight atomic.Bool
}

func NewSubmissionService(
	clk clock.Clock,
	ids id.Generator,
	dispatcher submissionout.Dispatcher,
	inspector submissionout.FileInspector,
	logger *zap.Logger,
) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{
		clock:      clk,
		ids:        ids,
		dispatcher: dispatcher,
		inspector:  inspector,
		logger:     logger,
	}
}

// Submit validates the selection and, when valid, sends exactly one request. Every
// backend or transport failure is folded into the returned receipt's Outcome; only an
// unknown kind or a concurrent call is reported as an error.
func (s *SubmissionService) Submit(ctx context.Context, sel domain.Selection, goal domain.Goal) (domain.Receipt, error) {
	if err := sel.Kind().Validate(); err != nil {
		return domain.Receipt{}, err
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.Receipt{}, apperrors.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	started := s.clock.Now()
	receipt := domain.Receipt{
		ID:        s.ids.New(),
		Kind:      sel.Kind(),
		Goal:      goal,
		StartedAt: started,
	}
	log := s.logger.With(
		zap.String("submission_id", receipt.ID),
		zap.String("kind", string(receipt.Kind)),
		zap.String("goal", string(goal)),
	)

	req, err := domain.BuildRequest(sel, goal)
	if err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return domain.Receipt{}, err
		}
		receipt.Outcome = domain.Failure(domain.FailureValidation, verr.Message)
		log.Debug("submission rejected", zap.String("reason", verr.Message))
		return receipt, nil
	}
	receipt.Endpoint = req.Endpoint

	if s.dispatcher == nil {
		return domain.Receipt{}, fmt.Errorf("dispatcher is not configured")
	}
	log.Info("submission started", zap.String("endpoint", req.Endpoint))
	text, err := s.dispatcher.Send(ctx, req)
	receipt.Elapsed = s.clock.Now().Sub(started)
	receipt.Outcome = classify(text, err)

	fields := []zap.Field{
		zap.String("endpoint", req.Endpoint),
		zap.Duration("elapsed", receipt.Elapsed),
	}
	if receipt.Outcome.IsSuccess() {
		log.Info("submission finished", append(fields, zap.Int("result_bytes", len(text)))...)
	} else {
		log.Warn("submission finished", append(fields, zap.String("class", string(receipt.Outcome.Class())), zap.Error(err))...)
	}
	return receipt, nil
}

// InFlight reports whether a request is currently outstanding.
func (s *SubmissionService) InFlight() bool {
	return s.inFlight.Load()
}

func (s *SubmissionService) InspectFile(ctx context.Context, path string) (domain.FileInfo, error) {
	ref, ok := domain.NewFileRef(path)
	if !ok {
		return domain.FileInfo{}, fmt.Errorf("%w: empty file path", apperrors.ErrInvalidInput)
	}
	if s.inspector == nil {
		return domain.FileInfo{Name: ref.Name}, nil
	}
	info, err := s.inspector.Inspect(ctx, ref.Path)
	if err != nil {
		s.logger.Debug("inspect file failed", zap.String("path", ref.Path), zap.Error(err))
		return domain.FileInfo{}, err
	}
	return info, nil
}

func classify(text string, err error) domain.Outcome {
	if err == nil {
		return domain.Success(text)
	}
	var serr *domain.ServerError
	switch {
	case errors.As(err, &serr):
		return domain.Failure(domain.FailureServer, serr.Detail)
	case errors.Is(err, apperrors.ErrMalformedResponse):
		return domain.Failure(domain.FailureMalformed, "")
	default:
		return domain.Failure(domain.FailureNetwork, "")
	}
}

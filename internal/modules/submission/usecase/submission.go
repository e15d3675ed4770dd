package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"easeed/internal/modules/submission/domain"
	"easeed/internal/modules/submission/dto"
	submissionin "easeed/internal/modules/submission/port/in"
	"easeed/internal/modules/submission/service"
)

type Interactor struct {
	svc            *service.SubmissionService
	maxUploadBytes int64
}

// NewInteractor builds the submission usecase. maxUploadBytes only drives the advisory
// warning on inspected files; zero disables it.
func NewInteractor(svc *service.SubmissionService, maxUploadBytes int64) submissionin.Usecase {
	return &Interactor{svc: svc, maxUploadBytes: maxUploadBytes}
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	kind, err := resolveKind(input)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	goal, err := domain.ParseGoal(input.Goal)
	if err != nil {
		return dto.SubmitOutput{}, err
	}

	sel := domain.NewSelection(kind)
	if kind.IsFile() {
		if ref, ok := domain.NewFileRef(input.FilePath); ok {
			sel = sel.WithFile(ref)
		}
	} else {
		sel = sel.WithText(payloadText(kind, input))
	}

	receipt, err := i.svc.Submit(ctx, sel, goal)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	return toOutput(receipt), nil
}

func (i *Interactor) InspectFile(ctx context.Context, input dto.InspectFileInput) (dto.FileInfoOutput, error) {
	info, err := i.svc.InspectFile(ctx, input.Path)
	if err != nil {
		return dto.FileInfoOutput{}, err
	}
	out := dto.FileInfoOutput{
		Name:      info.Name,
		Size:      info.Size,
		SizeLabel: humanize.Bytes(uint64(max(info.Size, 0))),
		MIME:      info.MIME,
		Pages:     info.Pages,
	}
	if i.maxUploadBytes > 0 && info.Size > i.maxUploadBytes {
		out.Warning = fmt.Sprintf("larger than %s; the backend may reject it", humanize.Bytes(uint64(i.maxUploadBytes)))
	}
	return out, nil
}

func payloadText(kind domain.Kind, input dto.SubmitInput) string {
	if kind == domain.KindYouTube && input.URL != "" {
		return input.URL
	}
	return input.Text
}

// resolveKind honours an explicit kind and otherwise infers it from the payload that
// was supplied.
func resolveKind(input dto.SubmitInput) (domain.Kind, error) {
	if strings.TrimSpace(input.Kind) != "" {
		return domain.ParseKind(input.Kind)
	}
	switch {
	case input.FilePath != "":
		return domain.InferFileKind(input.FilePath), nil
	case input.URL != "":
		return domain.KindYouTube, nil
	default:
		return domain.KindText, nil
	}
}

func toOutput(r domain.Receipt) dto.SubmitOutput {
	return dto.SubmitOutput{
		ID:       r.ID,
		Kind:     string(r.Kind),
		Goal:     string(r.Goal),
		Endpoint: r.Endpoint,
		Success:  r.Outcome.IsSuccess(),
		Text:     r.Outcome.Text(),
		Class:    string(r.Outcome.Class()),
		Message:  r.Outcome.Message(),
		Display:  r.Outcome.Display(),
		Elapsed:  r.Elapsed,
	}
}

package in

import (
	"context"

	"easeed/internal/modules/submission/dto"
	submissionin "easeed/internal/modules/submission/port/in"
)

type TUIHandler struct {
	usecase submissionin.Usecase
}

func NewTUIHandler(usecase submissionin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, input)
}

func (h TUIHandler) InspectFile(ctx context.Context, path string) (dto.FileInfoOutput, error) {
	return h.usecase.InspectFile(ctx, dto.InspectFileInput{Path: path})
}

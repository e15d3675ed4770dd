package in

import (
	"context"

	"easeed/internal/modules/submission/dto"
	submissionin "easeed/internal/modules/submission/port/in"
)

type CLIHandler struct {
	usecase submissionin.Usecase
}

func NewCLIHandler(usecase submissionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Submit sends one request. An empty kind is inferred from the payload that was given.
func (h CLIHandler) Submit(ctx context.Context, kind, goal, text, url, filePath string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{Kind: kind, Goal: goal, Text: text, URL: url, FilePath: filePath})
}

func (h CLIHandler) InspectFile(ctx context.Context, path string) (dto.FileInfoOutput, error) {
	return h.usecase.InspectFile(ctx, dto.InspectFileInput{Path: path})
}

package in

import (
	"context"

	"easeed/internal/modules/submission/dto"
)

type Usecase interface {
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	InspectFile(ctx context.Context, input dto.InspectFileInput) (dto.FileInfoOutput, error)
}

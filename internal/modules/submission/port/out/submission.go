package out

import (
	"context"

	"easeed/internal/modules/submission/domain"
)

// Dispatcher sends one request to the backend and returns the result text. Non-2xx
// responses come back as *domain.ServerError; a 2xx body without a string result
// wraps apperrors.ErrMalformedResponse; anything else is a transport failure.
type Dispatcher interface {
	Send(ctx context.Context, req domain.Request) (string, error)
}

type FileInspector interface {
	Inspect(ctx context.Context, path string) (domain.FileInfo, error)
}

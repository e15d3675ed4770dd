package dto

import "time"

// SubmitInput carries one submission. An empty Kind is inferred from whichever of
// FilePath, URL or Text is set. URL falls back to Text for the youtube kind.
type SubmitInput struct {
	Kind     string
	Goal     string
	Text     string
	URL      string
	FilePath string
}

type SubmitOutput struct {
	ID       string
	Kind     string
	Goal     string
	Endpoint string
	Success  bool
	Text     string
	Class    string
	Message  string
	Display  string
	Elapsed  time.Duration
}

// Validation reports whether the submission was stopped before any request was sent.
func (o SubmitOutput) Validation() bool {
	return o.Class == "validation"
}

type InspectFileInput struct {
	Path string
}

type FileInfoOutput struct {
	Name      string
	Size      int64
	SizeLabel string
	MIME      string
	Pages     int
	Warning   string
}

package domain

import "strings"

// Request is the transient description of the single outbound call for a submission.
type Request struct {
	Kind     Kind
	Goal     Goal
	Endpoint string
	Field    string
	Encoding Encoding
	Text     string
	File     *FileRef
}

// BuildRequest validates the selection and goal, then derives endpoint, field and
// encoding from the kind.
func BuildRequest(s Selection, g Goal) (Request, error) {
	if err := s.kind.Validate(); err != nil {
		return Request{}, err
	}
	if err := Validate(s, g); err != nil {
		return Request{}, err
	}
	req := Request{
		Kind:     s.kind,
		Goal:     g,
		Endpoint: Endpoint(g, s.kind),
		Field:    s.kind.Field(),
		Encoding: s.kind.Encoding(),
	}
	switch s.kind {
	case KindText:
		req.Text = s.text
	case KindYouTube:
		req.Text = strings.TrimSpace(s.text)
	default:
		f := *s.file
		req.File = &f
	}
	return req, nil
}

package domain

import (
	"path/filepath"
	"strings"
)

// FileRef points at a user-selected file. It is opened only when the request is sent.
type FileRef struct {
	Path string
	Name string
}

// NewFileRef returns false for an empty path, which counts as "no file selected".
func NewFileRef(path string) (FileRef, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return FileRef{}, false
	}
	return FileRef{Path: path, Name: filepath.Base(path)}, true
}

// Selection is the payload gathered for one kind. A kind change always produces a
// fresh Selection so a file chosen for one kind never leaks into another.
type Selection struct {
	kind Kind
	text string
	file *FileRef
}

func NewSelection(k Kind) Selection {
	return Selection{kind: k}
}

func (s Selection) Kind() Kind { return s.kind }

func (s Selection) Text() string { return s.text }

func (s Selection) File() (FileRef, bool) {
	if s.file == nil {
		return FileRef{}, false
	}
	return *s.file, true
}

func (s Selection) WithKind(k Kind) Selection {
	if k == s.kind {
		return s
	}
	return NewSelection(k)
}

// WithText is ignored for file kinds.
func (s Selection) WithText(text string) Selection {
	if s.kind.IsFile() {
		return s
	}
	s.text = text
	return s
}

// WithFile is ignored for string kinds.
func (s Selection) WithFile(f FileRef) Selection {
	if !s.kind.IsFile() {
		return s
	}
	s.file = &f
	return s
}

// ClearFile drops any selected file.
func (s Selection) ClearFile() Selection {
	s.file = nil
	return s
}

// ValidationError is a pre-submission failure carrying the user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate applies the submission rules in order; the first failing rule wins.
func Validate(s Selection, g Goal) error {
	switch {
	case !s.kind.IsFile() && strings.TrimSpace(s.text) == "":
		return &ValidationError{Message: s.kind.EmptyMessage()}
	case s.kind.IsFile() && s.file == nil:
		return &ValidationError{Message: s.kind.EmptyMessage()}
	case !g.IsSet():
		return &ValidationError{Message: "Please select a goal"}
	}
	return nil
}

package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	apperrors "easeed/internal/platform/errors"
)

type Kind string

const (
	KindText    Kind = "text"
	KindPDF     Kind = "pdf"
	KindImage   Kind = "image"
	KindYouTube Kind = "youtube"
)

// Kinds lists every input kind in selector order.
var Kinds = []Kind{KindText, KindPDF, KindImage, KindYouTube}

type Encoding string

const (
	EncodingURLEncoded Encoding = "application/x-www-form-urlencoded"
	EncodingMultipart  Encoding = "multipart/form-data"
)

func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	switch k {
	case KindText, KindPDF, KindImage, KindYouTube:
		return nil
	default:
		return fmt.Errorf("%w: unsupported input kind %q", apperrors.ErrInvalidInput, string(k))
	}
}

// IsFile reports whether the payload for k is a file rather than a string.
func (k Kind) IsFile() bool {
	return k == KindPDF || k == KindImage
}

// Segment is the last path element of the backend endpoint.
func (k Kind) Segment() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	case KindYouTube:
		return "youtube"
	default:
		return "text"
	}
}

// Field is the form field carrying the payload.
func (k Kind) Field() string {
	switch k {
	case KindPDF, KindImage:
		return "file"
	case KindYouTube:
		return "url"
	default:
		return "text"
	}
}

func (k Kind) Encoding() Encoding {
	if k == KindText {
		return EncodingURLEncoded
	}
	return EncodingMultipart
}

// Label is the human name used by selectors and headings.
func (k Kind) Label() string {
	switch k {
	case KindText:
		return "Text/Topic"
	case KindPDF:
		return "PDF"
	case KindImage:
		return "Image"
	case KindYouTube:
		return "YouTube Link"
	default:
		return string(k)
	}
}

// EmptyMessage is the validation message shown when the payload for k is missing.
func (k Kind) EmptyMessage() string {
	switch k {
	case KindYouTube:
		return "Please provide a YouTube URL"
	case KindPDF, KindImage:
		return "Please select a file"
	default:
		return "Please provide input text"
	}
}

// PickerHint lists the file extensions suggested by the file picker. It is advisory:
// a typed path with any extension is still accepted.
func (k Kind) PickerHint() []string {
	switch k {
	case KindPDF:
		return []string{".pdf"}
	case KindImage:
		return []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}
	default:
		return nil
	}
}

// Next and Prev cycle through Kinds.
func (k Kind) Next() Kind { return cycle(Kinds, k, 1) }
func (k Kind) Prev() Kind { return cycle(Kinds, k, -1) }

func cycle[T comparable](values []T, cur T, step int) T {
	idx := 0
	for i, v := range values {
		if v == cur {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+step)%n+n)%n]
}

// InferFileKind maps common image extensions to KindImage and everything else to KindPDF.
func InferFileKind(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	for _, hint := range KindImage.PickerHint() {
		if ext == hint {
			return KindImage
		}
	}
	return KindPDF
}

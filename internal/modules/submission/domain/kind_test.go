package domain_test

import (
	"errors"
	"testing"

	"easeed/internal/modules/submission/domain"
	apperrors "easeed/internal/platform/errors"
)

func TestParseKind(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"text", " PDF ", "Image", "youtube"} {
		if _, err := domain.ParseKind(raw); err != nil {
			t.Fatalf("%q should parse: %v", raw, err)
		}
	}
	if _, err := domain.ParseKind("video"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown kind should be invalid input, got %v", err)
	}
}

func TestParseGoal(t *testing.T) {
	t.Parallel()
	g, err := domain.ParseGoal("")
	if err != nil || g.IsSet() {
		t.Fatalf("empty goal should parse as unset, got %q %v", g, err)
	}
	if g.Label() != "" {
		t.Fatalf("unset goal should have no label, got %q", g.Label())
	}
	g, err = domain.ParseGoal(" Quiz")
	if err != nil || g != domain.GoalQuiz {
		t.Fatalf("expected quiz, got %q %v", g, err)
	}
	if _, err := domain.ParseGoal("summarize"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown goal should be invalid input, got %v", err)
	}
}

func TestKindMappings(t *testing.T) {
	t.Parallel()
	cases := []struct {
		kind     domain.Kind
		segment  string
		field    string
		encoding domain.Encoding
		isFile   bool
	}{
		{domain.KindText, "text", "text", domain.EncodingURLEncoded, false},
		{domain.KindPDF, "pdf", "file", domain.EncodingMultipart, true},
		{domain.KindImage, "image", "file", domain.EncodingMultipart, true},
		{domain.KindYouTube, "youtube", "url", domain.EncodingMultipart, false},
	}
	for _, tc := range cases {
		if tc.kind.Segment() != tc.segment || tc.kind.Field() != tc.field || tc.kind.Encoding() != tc.encoding || tc.kind.IsFile() != tc.isFile {
			t.Fatalf("unexpected mapping for %s", tc.kind)
		}
	}
}

func TestEndpointIsDerivedFromGoalAndKind(t *testing.T) {
	t.Parallel()
	for _, g := range domain.Goals {
		for _, k := range domain.Kinds {
			want := "/api/" + string(g) + "/" + k.Segment()
			if got := domain.Endpoint(g, k); got != want {
				t.Fatalf("Endpoint(%s, %s) = %s, want %s", g, k, got, want)
			}
			if domain.Endpoint(g, k) != domain.Endpoint(g, k) {
				t.Fatalf("endpoint should be deterministic")
			}
		}
	}
	if got := domain.Endpoint(domain.GoalQuiz, domain.KindPDF); got != "/api/quiz/pdf" {
		t.Fatalf("quiz/pdf endpoint = %s", got)
	}
}

func TestCycling(t *testing.T) {
	t.Parallel()
	if domain.KindYouTube.Next() != domain.KindText || domain.KindText.Prev() != domain.KindYouTube {
		t.Fatalf("kind cycling should wrap around")
	}
	if domain.GoalUnset.Next() != domain.GoalLearn || domain.GoalUnset.Prev() != domain.GoalNotes {
		t.Fatalf("goal cycling from unset should land on the ends")
	}
	if domain.GoalNotes.Next() != domain.GoalLearn {
		t.Fatalf("goal cycling should wrap around")
	}
}

func TestInferFileKind(t *testing.T) {
	t.Parallel()
	if domain.InferFileKind("a.WEBP") != domain.KindImage || domain.InferFileKind("a.pdf") != domain.KindPDF || domain.InferFileKind("notes") != domain.KindPDF {
		t.Fatalf("unexpected inference")
	}
}

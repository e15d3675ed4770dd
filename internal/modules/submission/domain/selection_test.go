package domain_test

import (
	"errors"
	"testing"

	"easeed/internal/modules/submission/domain"
)

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return verr.Message
}

func TestValidateTextKinds(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		kind domain.Kind
		want string
	}{
		{domain.KindText, "Please provide input text"},
		{domain.KindYouTube, "Please provide a YouTube URL"},
	} {
		for _, blank := range []string{"", "   ", "\n\t "} {
			sel := domain.NewSelection(tc.kind).WithText(blank)
			if got := validationMessage(t, domain.Validate(sel, domain.GoalLearn)); got != tc.want {
				t.Fatalf("%s blank payload: got %q want %q", tc.kind, got, tc.want)
			}
		}
		sel := domain.NewSelection(tc.kind).WithText("Photosynthesis")
		if err := domain.Validate(sel, domain.GoalLearn); err != nil {
			t.Fatalf("%s non-empty payload should pass: %v", tc.kind, err)
		}
	}
}

func TestValidateFileKinds(t *testing.T) {
	t.Parallel()
	for _, kind := range []domain.Kind{domain.KindPDF, domain.KindImage} {
		sel := domain.NewSelection(kind)
		if got := validationMessage(t, domain.Validate(sel, domain.GoalNotes)); got != "Please select a file" {
			t.Fatalf("%s without file: got %q", kind, got)
		}
		ref, _ := domain.NewFileRef("/tmp/anything.bin")
		if err := domain.Validate(sel.WithFile(ref), domain.GoalNotes); err != nil {
			t.Fatalf("%s with any file should pass: %v", kind, err)
		}
	}
	if _, ok := domain.NewFileRef("  "); ok {
		t.Fatalf("blank path should not produce a file ref")
	}
}

func TestValidateOrderPayloadBeforeGoal(t *testing.T) {
	t.Parallel()
	sel := domain.NewSelection(domain.KindYouTube)
	if got := validationMessage(t, domain.Validate(sel, domain.GoalUnset)); got != "Please provide a YouTube URL" {
		t.Fatalf("payload rule should win over goal rule, got %q", got)
	}
	sel = sel.WithText("https://www.youtube.com/watch?v=abc")
	if got := validationMessage(t, domain.Validate(sel, domain.GoalUnset)); got != "Please select a goal" {
		t.Fatalf("expected goal message, got %q", got)
	}
}

func TestKindChangeClearsPayload(t *testing.T) {
	t.Parallel()
	ref, _ := domain.NewFileRef("/tmp/notes.pdf")
	sel := domain.NewSelection(domain.KindPDF).WithFile(ref)
	for _, next := range []domain.Kind{domain.KindImage, domain.KindText, domain.KindYouTube} {
		changed := sel.WithKind(next)
		if _, ok := changed.File(); ok {
			t.Fatalf("file leaked into %s", next)
		}
		if changed.Text() != "" {
			t.Fatalf("text leaked into %s", next)
		}
	}

	text := domain.NewSelection(domain.KindText).WithText("hello")
	if text.WithKind(domain.KindYouTube).Text() != "" {
		t.Fatalf("text should not survive a switch to youtube")
	}
	if text.WithKind(domain.KindText).Text() != "hello" {
		t.Fatalf("re-selecting the same kind should keep the payload")
	}
}

func TestPayloadTypeMatchesKind(t *testing.T) {
	t.Parallel()
	ref, _ := domain.NewFileRef("/tmp/a.png")
	if _, ok := domain.NewSelection(domain.KindText).WithFile(ref).File(); ok {
		t.Fatalf("text kind must not hold a file")
	}
	if domain.NewSelection(domain.KindImage).WithText("x").Text() != "" {
		t.Fatalf("image kind must not hold text")
	}
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()
	req, err := domain.BuildRequest(domain.NewSelection(domain.KindText).WithText("Photosynthesis"), domain.GoalLearn)
	if err != nil {
		t.Fatalf("build text request: %v", err)
	}
	if req.Endpoint != "/api/learn/text" || req.Field != "text" || req.Encoding != domain.EncodingURLEncoded || req.Text != "Photosynthesis" {
		t.Fatalf("unexpected text request: %+v", req)
	}

	req, err = domain.BuildRequest(domain.NewSelection(domain.KindYouTube).WithText("  https://youtu.be/x  "), domain.GoalNotes)
	if err != nil {
		t.Fatalf("build youtube request: %v", err)
	}
	if req.Endpoint != "/api/notes/youtube" || req.Field != "url" || req.Encoding != domain.EncodingMultipart || req.Text != "https://youtu.be/x" {
		t.Fatalf("unexpected youtube request: %+v", req)
	}

	ref, _ := domain.NewFileRef("/tmp/chapter.pdf")
	req, err = domain.BuildRequest(domain.NewSelection(domain.KindPDF).WithFile(ref), domain.GoalQuiz)
	if err != nil {
		t.Fatalf("build pdf request: %v", err)
	}
	if req.Endpoint != "/api/quiz/pdf" || req.Field != "file" || req.File == nil || req.File.Name != "chapter.pdf" {
		t.Fatalf("unexpected pdf request: %+v", req)
	}

	if _, err := domain.BuildRequest(domain.NewSelection(domain.KindPDF), domain.GoalQuiz); err == nil {
		t.Fatalf("missing file should fail")
	}
	if _, err := domain.BuildRequest(domain.NewSelection(domain.Kind("audio")).WithText("x"), domain.GoalQuiz); err == nil {
		t.Fatalf("unknown kind should fail")
	}
}

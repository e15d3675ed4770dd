package domain_test

import (
	"strings"
	"testing"

	"easeed/internal/modules/submission/domain"
)

func TestOutcomeDisplay(t *testing.T) {
	t.Parallel()
	text := "Line one\n\n  indented line two\n"
	ok := domain.Success(text)
	if !ok.IsSuccess() || ok.Display() != text {
		t.Fatalf("success should display verbatim, got %q", ok.Display())
	}

	fail := domain.Failure(domain.FailureServer, "file too large")
	if fail.IsSuccess() || fail.Display() != "Error: file too large" {
		t.Fatalf("unexpected failure display %q", fail.Display())
	}

	generic := domain.Failure(domain.FailureMalformed, "")
	if generic.Message() != domain.FallbackMessage || generic.Class() != domain.FailureMalformed {
		t.Fatalf("empty message should fall back, got %+v", generic)
	}
	if domain.Failure(domain.FailureNone, "x").IsSuccess() {
		t.Fatalf("a failure can never be a success")
	}
}

func TestServerErrorMessage(t *testing.T) {
	t.Parallel()
	err := &domain.ServerError{Status: 500, Detail: "file too large"}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "file too large") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

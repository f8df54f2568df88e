package apierrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestFromStatus(t *testing.T) {
	cases := map[int]Code{
		400: CodeInvalidRequestParams,
		401: CodeUnauthorizedRequest,
		403: CodeAccessForbidden,
		404: CodeNotFound,
		429: CodeTooManyRequests,
		418: CodeUndefinedAPIError,
		500: CodeUndefinedAPIError,
		502: CodeUndefinedAPIError,
	}

	for status, want := range cases {
		if got := FromStatus(status); got != want {
			t.Fatalf("FromStatus(%d)=%s, want %s", status, got, want)
		}
	}
}

func TestFromResponseFallsBackToDefaultMessage(t *testing.T) {
	err := FromResponse(403, "", 0)
	if err.Code != CodeAccessForbidden {
		t.Fatalf("unexpected code %s", err.Code)
	}
	if err.Error() != "Access forbidden" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Status != 403 {
		t.Fatalf("unexpected status %d", err.Status)
	}

	err = FromResponse(400, "wrong account", 0)
	if err.Error() != "wrong account" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	err = FromResponse(503, "", 0)
	if err.Code != CodeUndefinedAPIError || err.Error() != "Unclassified API error" {
		t.Fatalf("unexpected error %s %q", err.Code, err.Error())
	}
}

func TestErrorRetryAfterHint(t *testing.T) {
	err := FromResponse(429, "slow down", 1500*time.Millisecond)
	if hint := err.RetryAfterHint(); hint != "2" {
		t.Fatalf("expected retryAfter 2, got %q", hint)
	}
	if err.Error() != "slow down" {
		t.Fatalf("unexpected Error(): %s", err.Error())
	}
	if hint := FromResponse(400, "", time.Minute).RetryAfterHint(); hint != "" {
		t.Fatalf("retry hint only applies to 429, got %q", hint)
	}
	if hint := New(CodeTooManyRequests, "").RetryAfterHint(); hint != "" {
		t.Fatalf("expected empty hint, got %q", hint)
	}
}

func TestFromTransportWrapsCause(t *testing.T) {
	err := FromTransport(context.DeadlineExceeded)
	if err.Code != CodeUndefinedAPIError {
		t.Fatalf("unexpected code %s", err.Code)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected cause to be reachable through errors.Is")
	}
	if err.Error() != "Something went wrong" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFromError(t *testing.T) {
	original := New(CodeNotFound, "")
	wrapped := fmt.Errorf("wrap: %w", original)
	if apiErr, ok := FromError(wrapped); !ok {
		t.Fatal("expected to unwrap api error")
	} else if apiErr.Code != CodeNotFound {
		t.Fatalf("unexpected code %s", apiErr.Code)
	}
	if _, ok := FromError(fmt.Errorf("other")); ok {
		t.Fatal("should not unwrap plain error")
	}
	if !Is(wrapped, CodeNotFound) || Is(wrapped, CodeAccessForbidden) {
		t.Fatal("Is should match only the wrapped code")
	}
}

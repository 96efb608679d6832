package apperr

import (
	"errors"
	"strings"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", Validationf("title is required"), ErrValidation},
		{"conflict", Conflictf("username %q", "taken"), ErrConflict},
		{"not found", NotFoundf("video %d", 42), ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tc.err)
			}
		})
	}
}

func TestErrFileMissing_MatchesNotFound(t *testing.T) {
	if !errors.Is(ErrFileMissing, ErrNotFound) {
		t.Error("ErrFileMissing should match ErrNotFound")
	}
	// Still distinguishable from a plain not-found
	if errors.Is(NotFoundf("video 1"), ErrFileMissing) {
		t.Error("plain not-found should not match ErrFileMissing")
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("list videos", cause)

	if !errors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "list videos") {
		t.Errorf("Error() = %q, want op included", err.Error())
	}

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatal("errors.As(*StorageError) = false")
	}
	if storageErr.Op != "list videos" {
		t.Errorf("Op = %q, want list videos", storageErr.Op)
	}
}

func TestStorage_NilErr(t *testing.T) {
	if err := Storage("noop", nil); err != nil {
		t.Errorf("Storage(nil) = %v, want nil", err)
	}
}

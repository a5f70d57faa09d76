package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsSurviveWrapping(t *testing.T) {
	cause := errors.New("driver: bad connection")
	cases := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"not found", NotFoundError{Resource: "trip", ID: 4}, IsNotFound},
		{"validation", ValidationError{Field: "startDate", Msg: "is required"}, IsValidation},
		{"conflict", ConflictError{Resource: "user", Msg: "username taken"}, IsConflict},
		{"persistence", PersistenceError{Op: "insert trip", Err: cause}, IsPersistence},
		{"unauthorized", UnauthorizedError{Msg: "bad credentials"}, IsUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tc.err)
			if !tc.is(wrapped) {
				t.Fatalf("%T lost through wrapping", tc.err)
			}
		})
	}
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := errors.New("deadlock")
	err := PersistenceError{Op: "insert budget", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable")
	}
	if IsNotFound(err) {
		t.Fatal("persistence error is not a not-found")
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := (NotFoundError{Resource: "trip", ID: 12}).Error(); got != "trip 12 not found" {
		t.Fatalf("got %q", got)
	}
	if got := (ValidationError{Field: "endDate"}).Error(); got != "invalid endDate" {
		t.Fatalf("got %q", got)
	}
}

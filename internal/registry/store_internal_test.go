package registry

import (
	"errors"
	"fmt"
	"testing"
)

type codedError struct{ code int }

func (e codedError) Error() string { return fmt.Sprintf("sqlite error %d", e.code) }
func (e codedError) Code() int     { return e.code }

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(codedError{code: sqliteConstraintUniqueCode}) {
		t.Fatal("expected unique constraint code to be detected")
	}
	if !isUniqueViolation(fmt.Errorf("insert manuscript: %w", codedError{code: sqliteConstraintUniqueCode})) {
		t.Fatal("expected wrapped unique constraint code to be detected")
	}
	if isUniqueViolation(codedError{code: 5}) {
		t.Fatal("busy code is not a unique violation")
	}
	if isUniqueViolation(nil) {
		t.Fatal("nil is not a unique violation")
	}
	if !isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: manuscripts.manuscript_no")) {
		t.Fatal("expected message fallback to catch unique violations")
	}
	if isUniqueViolation(errors.New("no such table: manuscripts")) {
		t.Fatal("unrelated error misclassified as unique violation")
	}
}

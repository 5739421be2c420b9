package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNewProfileRepository(t *testing.T) {
	repo := NewProfileRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil ProfileRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrProfileNotFound.Error() != "profile not found" {
		t.Fatalf("unexpected error message: %s", ErrProfileNotFound.Error())
	}
	if ErrDuplicateProfile.Error() != "profile name already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateProfile.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrProfileNotFound, false},
		{"duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a' for key 'name'"}, true},
		{"wrapped duplicate", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062}), true},
		{"other mysql error", &mysql.MySQLError{Number: 1045}, false},
		{"plain text", errors.New("Duplicate entry"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateEntryError(tt.err); got != tt.want {
				t.Errorf("isDuplicateEntryError() = %v, want %v", got, tt.want)
			}
		})
	}
}

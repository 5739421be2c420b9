package filler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name        string
		fields      []Field
		wantKind    MatchKind
		wantTargets []int
	}{
		{
			name:     "no inputs",
			wantKind: MatchNone,
		},
		{
			name: "password and confirmation",
			fields: []Field{
				{Index: 0, Type: "email", Name: "email"},
				{Index: 1, Type: "password"},
				{Index: 2, Type: "password", Name: "confirm"},
			},
			wantKind:    MatchPassword,
			wantTargets: []int{1, 2},
		},
		{
			name: "third password match is not filled",
			fields: []Field{
				{Index: 0, Type: "password", Name: "current"},
				{Index: 1, Type: "password", Name: "new"},
				{Index: 2, Type: "password", Name: "repeat"},
			},
			wantKind:    MatchPassword,
			wantTargets: []int{0, 1},
		},
		{
			name: "attribute match is case insensitive",
			fields: []Field{
				{Index: 0, Type: "text", ID: "userPassword"},
				{Index: 1, Type: "PASSWORD"},
			},
			wantKind:    MatchPassword,
			wantTargets: []int{0, 1},
		},
		{
			name: "placeholder counts for the password pass",
			fields: []Field{
				{Index: 0, Placeholder: "Choose a Password"},
			},
			wantKind:    MatchPassword,
			wantTargets: []int{0},
		},
		{
			name: "heuristic fallback fills only the first",
			fields: []Field{
				{Index: 0, Type: "text", Name: "username"},
				{Index: 1, Placeholder: "Enter pwd"},
				{Index: 2, Type: "text", Class: "secret-box"},
			},
			wantKind:    MatchHeuristic,
			wantTargets: []int{1},
		},
		{
			name: "heuristic reads test id and aria label",
			fields: []Field{
				{Index: 0, Type: "text", TestID: "login-pass"},
				{Index: 1, AriaLabel: "Secret"},
			},
			wantKind:    MatchHeuristic,
			wantTargets: []int{0},
		},
		{
			name: "heuristic skips non text inputs",
			fields: []Field{
				{Index: 0, Type: "checkbox", Name: "remember-pass"},
				{Index: 1, Type: "search", Placeholder: "pwd"},
			},
			wantKind: MatchNone,
		},
		{
			name: "heuristic is not consulted when a password field exists",
			fields: []Field{
				{Index: 0, Type: "text", Name: "pwd"},
				{Index: 1, Type: "password"},
			},
			wantKind:    MatchPassword,
			wantTargets: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Rank(tt.fields)
			assert.Equal(t, tt.wantKind, sel.Kind)

			var got []int
			for _, f := range sel.Targets() {
				got = append(got, f.Index)
			}
			assert.Equal(t, tt.wantTargets, got)
		})
	}
}

func TestMatchKindString(t *testing.T) {
	assert.Equal(t, "none", MatchNone.String())
	assert.Equal(t, "password", MatchPassword.String())
	assert.Equal(t, "heuristic", MatchHeuristic.String())
}

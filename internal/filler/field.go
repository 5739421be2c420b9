// Package filler finds the password inputs of a page and writes a value into
// them so that page scripts and UI frameworks observe the change.
//
// Candidate selection is a pure function over serialized input attributes
// (Rank); Document implementations adapt a parsed HTML tree or a live browser
// page to it.
package filler

import "strings"

// Field is the attribute snapshot of one <input> element. Index is its
// position among the document's inputs.
type Field struct {
	Index       int
	Type        string
	Name        string
	ID          string
	Placeholder string
	Class       string
	TestID      string
	AriaLabel   string
}

// MatchKind says which search pass produced a Selection.
type MatchKind int

const (
	MatchNone MatchKind = iota
	// MatchPassword: password-typed inputs or inputs whose name, id or
	// placeholder mentions "password".
	MatchPassword
	// MatchHeuristic: text or untyped inputs whose attributes hint at a secret.
	MatchHeuristic
)

func (k MatchKind) String() string {
	switch k {
	case MatchPassword:
		return "password"
	case MatchHeuristic:
		return "heuristic"
	}
	return "none"
}

var heuristicKeywords = []string{"password", "pass", "pwd", "secret"}

// Selection holds the candidates of the pass that matched, in document order.
type Selection struct {
	Kind       MatchKind
	Candidates []Field
}

// Targets returns the fields to write: the first two password matches (the
// second is usually a confirmation field), or only the first heuristic match.
func (s Selection) Targets() []Field {
	limit := 0
	switch s.Kind {
	case MatchPassword:
		limit = 2
	case MatchHeuristic:
		limit = 1
	}
	if len(s.Candidates) < limit {
		limit = len(s.Candidates)
	}
	return s.Candidates[:limit]
}

// Rank runs the two search passes over fields. The heuristic pass only runs
// when the password pass finds nothing.
func Rank(fields []Field) Selection {
	var primary, fallback []Field
	for _, f := range fields {
		if f.isPasswordField() {
			primary = append(primary, f)
			continue
		}
		if f.isTextLike() && containsAny(f.hints(), heuristicKeywords) {
			fallback = append(fallback, f)
		}
	}

	switch {
	case len(primary) > 0:
		return Selection{Kind: MatchPassword, Candidates: primary}
	case len(fallback) > 0:
		return Selection{Kind: MatchHeuristic, Candidates: fallback}
	}
	return Selection{Kind: MatchNone}
}

func (f Field) isPasswordTyped() bool {
	return strings.EqualFold(strings.TrimSpace(f.Type), "password")
}

func (f Field) isPasswordField() bool {
	if f.isPasswordTyped() {
		return true
	}
	for _, attr := range []string{f.Name, f.ID, f.Placeholder} {
		if strings.Contains(strings.ToLower(attr), "password") {
			return true
		}
	}
	return false
}

// isIndicated matches the narrower query used to count password fields on a
// page: type, name and id only.
func (f Field) isIndicated() bool {
	return f.isPasswordTyped() ||
		strings.Contains(strings.ToLower(f.Name), "password") ||
		strings.Contains(strings.ToLower(f.ID), "password")
}

func (f Field) isTextLike() bool {
	t := strings.TrimSpace(f.Type)
	return t == "" || strings.EqualFold(t, "text")
}

func (f Field) hints() string {
	return strings.ToLower(strings.Join([]string{
		f.Name, f.ID, f.Placeholder, f.Class, f.TestID, f.AriaLabel,
	}, " "))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestProfileTokenRoundTrip(t *testing.T) {
	token, err := IssueProfileToken(7, "laptop", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueProfileToken() unexpected error: %v", err)
	}

	claims, err := ParseProfileToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseProfileToken() unexpected error: %v", err)
	}
	if claims.ProfileID != 7 || claims.Profile != "laptop" {
		t.Errorf("claims = (%d, %q), want (7, %q)", claims.ProfileID, claims.Profile, "laptop")
	}
}

func TestParseProfileTokenRejects(t *testing.T) {
	signed := func(issuer, audience string, exp time.Time) string {
		claims := ProfileClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Audience:  jwt.ClaimStrings{audience},
				ExpiresAt: jwt.NewNumericDate(exp),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
			ProfileID: 1,
		}
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("SignedString() unexpected error: %v", err)
		}
		return s
	}

	valid, err := IssueProfileToken(1, "p", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueProfileToken() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"garbage", "not-a-valid-token", "test-secret"},
		{"wrong secret", valid, "wrong-secret"},
		{"expired", signed(tokenIssuer, tokenAudience, time.Now().Add(-time.Minute)), "test-secret"},
		{"wrong issuer", signed("someone-else", tokenAudience, time.Now().Add(time.Hour)), "test-secret"},
		{"wrong audience", signed(tokenIssuer, "other-api", time.Now().Add(time.Hour)), "test-secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProfileToken(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("ParseProfileToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

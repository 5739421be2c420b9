package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "securepass"
	tokenAudience = "securepass-api"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// ProfileClaims identifies the settings profile a bearer token grants access to.
type ProfileClaims struct {
	jwt.RegisteredClaims
	ProfileID int64  `json:"profile_id"`
	Profile   string `json:"profile"`
}

// IssueProfileToken signs an HS256 token for the given profile.
func IssueProfileToken(profileID int64, name, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ProfileClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ProfileID: profileID,
		Profile:   name,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseProfileToken validates signature, issuer, audience and expiry.
func ParseProfileToken(raw, secret string) (*ProfileClaims, error) {
	claims := &ProfileClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

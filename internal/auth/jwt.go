package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and validates HS256 bearer tokens. The subject claim holds
// the actor id; the role claim is informational, reviewer capability is
// always resolved through the identity provider.
type JWTManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

type actorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed token for actorID valid for ttl.
func (m *JWTManager) GenerateAccessToken(actorID, role string, ttl time.Duration) (string, error) {
	if actorID == "" {
		return "", fmt.Errorf("actor id is empty")
	}

	now := m.now()
	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses and validates a token and returns the actor id
// and role it carries. All failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (actorID, role string, err error) {
	if tokenString == "" {
		return "", "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &actorClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*actorClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, claims.Role, nil
}

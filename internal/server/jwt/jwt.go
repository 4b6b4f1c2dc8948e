package jwt

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer пишется в iss каждого токена
const Issuer = "solarsync-devserver"

// AllBases в Claims.Bases открывает доступ к любой базе
const AllBases = "*"

// ErrInvalidToken возвращается для любого токена, не прошедшего проверку
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims of an API token
type Claims struct {
	Bases []string `json:"bases"`
	jwt.RegisteredClaims
}

// AllowsBase reports whether the token grants access to baseID
func (c *Claims) AllowsBase(baseID string) bool {
	return slices.Contains(c.Bases, AllBases) || slices.Contains(c.Bases, baseID)
}

// Service provides JWT token generation and validation
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a new JWT service
// secret should be a cryptographically secure random string
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed HS256 token for subject limited to bases.
// ttl <= 0 issues a token without expiry.
func (s *Service) Issue(subject string, bases []string) (string, time.Time, error) {
	if len(bases) == 0 {
		return "", time.Time{}, fmt.Errorf("at least one base is required")
	}

	now := time.Now()
	claims := Claims{
		Bases: bases,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses the token and checks signature, issuer and time claims
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

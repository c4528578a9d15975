package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// TokenTTL is the fixed validity window of every issued token.
const TokenTTL = time.Hour

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 tokens. It keeps no state besides the
// signing key, so it is safe for concurrent use.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: TokenTTL, now: time.Now}
}

// Issue signs a token for user, valid for TokenTTL from now.
func (s *JWTService) Issue(user *domain.User) (string, *domain.Claims, error) {
	issued := s.now().UTC()
	claims := tokenClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, toDomainClaims(&claims), nil
}

// Verify checks the signature and expiry of token. The signature is checked
// first, so a forged token is always ErrTokenInvalid and a genuine but stale
// one is always ErrTokenExpired.
func (s *JWTService) Verify(token string) (*domain.Claims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !domain.Role(claims.Role).Valid() || claims.Subject == "" {
		return nil, fmt.Errorf("%w: malformed claims", domain.ErrTokenInvalid)
	}
	return toDomainClaims(claims), nil
}

func toDomainClaims(c *tokenClaims) *domain.Claims {
	out := &domain.Claims{
		UserID:   c.Subject,
		Username: c.Username,
		Role:     domain.Role(c.Role),
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}

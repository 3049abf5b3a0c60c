package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// JWTManager signs and validates HS256 access tokens carrying the
// caller's organization and role as custom claims.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with org and role.
type accessClaims struct {
	jwt.RegisteredClaims
	OrgID string `json:"org"`
	Role  string `json:"role"`
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as
// subject and org/role as custom claims.
func (m *JWTManager) GenerateAccessToken(identity Identity) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OrgID: identity.OrgID.String(),
		Role:  identity.Role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates an access token and returns
// the caller identity it carries.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("parse subject: %w", err)
	}
	orgID, err := uuid.Parse(claims.OrgID)
	if err != nil {
		return Identity{}, fmt.Errorf("parse org claim: %w", err)
	}

	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return Identity{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return Identity{UserID: userID, OrgID: orgID, Role: role}, nil
}

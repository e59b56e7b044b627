package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	audienceAccess = "access"
	audienceState  = "oauth_state"
)

// JWTManager signs and validates access tokens and OAuth state values, and
// generates refresh tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	stateTTL  time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret, issuer string, accessTTL, stateTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		stateTTL:  stateTTL,
	}
}

// AccessTTL is the lifetime of issued access tokens.
func (m *JWTManager) AccessTTL() time.Duration { return m.accessTTL }

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    m.issuer,
		Audience:  jwt.ClaimStrings{audienceAccess},
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	return m.sign(claims)
}

// ValidateAccessToken parses an access token and returns its user ID.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	if err := m.parse(tokenString, audienceAccess, &claims); err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject UUID: %w", err)
	}
	return userID, nil
}

// OAuthState is carried through the provider round-trip: where to send the
// client afterwards and the client's own anti-forgery value.
type OAuthState struct {
	RedirectURI string `json:"redirect_uri"`
	ClientState string `json:"client_state"`
}

type stateClaims struct {
	jwt.RegisteredClaims
	OAuthState
}

// SignState packs an OAuthState into a short-lived signed string.
func (m *JWTManager) SignState(st OAuthState) (string, error) {
	now := time.Now()
	return m.sign(stateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{audienceState},
			ExpiresAt: jwt.NewNumericDate(now.Add(m.stateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OAuthState: st,
	})
}

// ParseState verifies a value produced by SignState.
func (m *JWTManager) ParseState(raw string) (OAuthState, error) {
	var claims stateClaims
	if err := m.parse(raw, audienceState, &claims); err != nil {
		return OAuthState{}, err
	}
	return claims.OAuthState, nil
}

func (m *JWTManager) sign(claims jwt.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) parse(tokenString, audience string, claims jwt.Claims) error {
	if tokenString == "" {
		return errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return errors.New("invalid token claims")
	}
	return nil
}

// GenerateRefreshToken creates a cryptographically random refresh token.
// Returns both the raw token (to send to client) and its SHA-256 hash (to store in DB).
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

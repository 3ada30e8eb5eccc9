package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rpupo63/constructco-site-backend/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Settings configures token signing
type Settings struct {
	SecretKey          string `env:"SECRET_KEY"`
	TokenExpiryMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`
	Issuer             string `env:"TOKEN_ISSUER" envDefault:"constructco"`
}

// Claims represents JWT claims. The subject is the profile id.
type Claims struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Tokens issues and validates HS256 access tokens
type Tokens struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

func NewTokens(settings Settings) (*Tokens, error) {
	if settings.SecretKey == "" {
		return nil, errors.New("SECRET_KEY is required to sign access tokens")
	}
	expiry := time.Duration(settings.TokenExpiryMinutes) * time.Minute
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Tokens{
		secret: []byte(settings.SecretKey),
		expiry: expiry,
		issuer: settings.Issuer,
		now:    time.Now,
	}, nil
}

// Expiry is how long an issued token stays valid
func (t *Tokens) Expiry() time.Duration {
	return t.expiry
}

// Issue signs a token for the profile
func (t *Tokens) Issue(profile *models.Profile) (string, error) {
	now := t.now()
	claims := &Claims{
		Email:   profile.Email,
		IsAdmin: profile.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.String(),
			Issuer:    t.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns the identity it carries
func (t *Tokens) Validate(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredToken
		}
		return Identity{}, ErrInvalidToken
	}
	if !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	profileID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{ProfileID: profileID, Email: claims.Email, IsAdmin: claims.IsAdmin}, nil
}

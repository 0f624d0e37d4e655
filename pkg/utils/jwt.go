package utils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

const refreshTokenType = "refresh"

type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Type     string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

// UserContext is the authenticated principal as resolved from an access token.
type UserContext struct {
	ID       uuid.UUID
	Username string
	Email    string
}

func parseClaims(tokenString, jwtSecret string) (*JWTClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateAccessToken parses an access token into the principal it names.
func ValidateAccessToken(tokenString, jwtSecret string) (*UserContext, error) {
	claims, err := parseClaims(tokenString, jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type == refreshTokenType {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &UserContext{
		ID:       userID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}

// ValidateRefreshToken parses a refresh token, returning the subject user id
// and the token's own id (for whitelist lookups).
func ValidateRefreshToken(tokenString, jwtSecret string) (userID uuid.UUID, tokenID string, err error) {
	claims, err := parseClaims(tokenString, jwtSecret)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.Type != refreshTokenType {
		return uuid.Nil, "", ErrInvalidToken
	}

	userID, err = uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}

	return userID, claims.ID, nil
}

func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// GetUserFromContext returns the principal placed in fiber locals by the auth
// middleware.
func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	user := c.Locals("user")
	if user == nil {
		return nil, errors.New("user not found in context")
	}

	userCtx, ok := user.(*UserContext)
	if !ok {
		return nil, errors.New("invalid user context type")
	}

	return userCtx, nil
}

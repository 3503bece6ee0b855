package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/anoixa/label-bed/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims 解析后的令牌声明
type TokenClaims struct {
	UserID   uint
	Username string
	Exp      int64
	Iat      int64
}

// JWTService JWT Token 服务
type JWTService struct {
	secret    []byte
	expiresIn time.Duration
}

// NewJWTService 创建新的 JWT 服务
func NewJWTService(secret string, expiresIn time.Duration) (*JWTService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT secret must be at least 32 characters long, got %d", len(secret))
	}
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}
	return &JWTService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}, nil
}

// GenerateToken 为用户签发访问令牌
func (s *JWTService) GenerateToken(userID uint, username string) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(s.expiresIn)

	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      expiry.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiry, nil
}

// ParseToken 解析并校验访问令牌
// 任何解析失败（过期、签名错误、格式错误）都返回 apperrors.ErrUnauthorized
func (s *JWTService) ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", apperrors.ErrUnauthorized)
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: sub claim missing", apperrors.ErrUnauthorized)
	}
	username, _ := claims["username"].(string)

	result := &TokenClaims{
		UserID:   uint(sub),
		Username: username,
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.Exp = int64(exp)
	}
	if iat, ok := claims["iat"].(float64); ok {
		result.Iat = int64(iat)
	}

	return result, nil
}

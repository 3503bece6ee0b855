package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/anoixa/label-bed/database/models"
	"github.com/anoixa/label-bed/database/repo/accounts"
	"github.com/anoixa/label-bed/internal/apperrors"
	cryptopackage "github.com/anoixa/label-bed/utils/crypto"
)

// LoginResult 登录或注册结果
type LoginResult struct {
	User        *models.User
	AccessToken string
	TokenExpiry time.Time
}

// LoginService 登录与注册服务
type LoginService struct {
	accountsRepo *accounts.Repository
	jwtService   *JWTService
}

// NewLoginService 创建新的登录服务
func NewLoginService(accountsRepo *accounts.Repository, jwtService *JWTService) *LoginService {
	return &LoginService{
		accountsRepo: accountsRepo,
		jwtService:   jwtService,
	}
}

// Register 注册新用户并直接签发令牌
func (s *LoginService) Register(username, email, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, apperrors.Validationf("username, email and password are required")
	}

	hash, err := cryptopackage.GenerateFromPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.accountsRepo.CreateUser(user); err != nil {
		return nil, err
	}

	return s.issueFor(user)
}

// Login 通过邮箱和密码登录
func (s *LoginService) Login(email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validationf("email and password are required")
	}

	user, err := s.accountsRepo.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	ok, err := cryptopackage.ComparePasswordAndHash(password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return s.issueFor(user)
}

// ResolveUser 通过令牌声明获取用户
// 令牌有效但用户已不存在时按未授权处理，保证认证失败是闭合的
func (s *LoginService) ResolveUser(claims *TokenClaims) (*models.User, error) {
	user, err := s.accountsRepo.GetUserByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *LoginService) issueFor(user *models.User) (*LoginResult, error) {
	token, expiry, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{
		User:        user,
		AccessToken: token,
		TokenExpiry: expiry,
	}, nil
}

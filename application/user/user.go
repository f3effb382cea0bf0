package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/supply-chain/cmd/config"
	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
	redisrepo "github.com/muhammadheryan/supply-chain/repository/redis"
	userrepo "github.com/muhammadheryan/supply-chain/repository/user"
	"github.com/muhammadheryan/supply-chain/utils/errors"
	"github.com/muhammadheryan/supply-chain/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	// ValidateToken returns the authenticated user when the token and its
	// session are valid.
	ValidateToken(ctx context.Context, tokenString string) (*model.UserEntity, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hashedPassword),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Name:  userEntity.Name,
		Email: userEntity.Email,
		Role:  userEntity.Role,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.UserEntity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}

	// Session must still exist in Redis; logout or expiry invalidates the
	// token even before its exp claim.
	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil || sessionUserID != userID {
		return nil, fmt.Errorf("session not found")
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	jti := uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.SessionExpTime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

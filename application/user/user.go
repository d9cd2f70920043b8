package user

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	userRepo "github.com/farhanadi/shopfront/repository/user"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	"github.com/farhanadi/shopfront/utils/logger"
	"github.com/farhanadi/shopfront/utils/sqlerr"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error)
}

type userAppImpl struct {
	userRepo userRepo.UserRepository
}

func NewUserApp(userRepo userRepo.UserRepository) UserApp {
	return &userAppImpl{userRepo: userRepo}
}

func (s *userAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	// Fast pre-check. Not atomic with Create: a concurrent register for the
	// same username or email falls through to the unique constraints below.
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		logger.Error("[Register] err userRepo.ExistsByUsernameOrEmail", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return nil, cerr.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	entity := &model.UserEntity{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	entity, err = s.userRepo.Create(ctx, entity)
	if err != nil {
		if sqlerr.IsDuplicate(err) {
			return nil, cerr.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.UserResponse{
		ID:       entity.ID,
		Username: entity.Username,
		Email:    entity.Email,
	}, nil
}

func (s *userAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	// Constant-time verification is handled inside bcrypt.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidPassword)
	}

	return &model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

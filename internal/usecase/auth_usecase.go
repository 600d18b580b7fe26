package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/repository"
	"github.com/fadilmartias/compatibility-matrix/internal/service"
)

type AuthUsecase struct {
	auth        service.AuthServiceInterface
	profileRepo *repository.ProfileRepository
}

func NewAuthUsecase(auth service.AuthServiceInterface, profileRepo *repository.ProfileRepository) *AuthUsecase {
	return &AuthUsecase{auth: auth, profileRepo: profileRepo}
}

// Register delegates account creation to the auth provider and mirrors
// the new user into the local profiles table.
func (uc *AuthUsecase) Register(ctx context.Context, email, password, name string) (*service.AuthSession, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	session, err := uc.auth.SignUp(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	if session.UserID != "" {
		if err := uc.syncProfile(session.UserID, session.Email, name); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*service.AuthSession, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	session, err := uc.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if session.UserID != "" {
		if err := uc.syncProfile(session.UserID, session.Email, session.Name); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (uc *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*service.AuthSession, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh_token is required", ErrValidation)
	}
	return uc.auth.Refresh(ctx, refreshToken)
}

func (uc *AuthUsecase) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return uc.auth.SignOut(ctx, accessToken)
}

func (uc *AuthUsecase) syncProfile(userID, email, name string) error {
	now := time.Now()
	return uc.profileRepo.Upsert(&model.Profile{
		ID:        userID,
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	return nil
}

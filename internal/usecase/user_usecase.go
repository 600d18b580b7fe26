package usecase

import (
	"fmt"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/repository"
)

type UserUsecase struct {
	profileRepo *repository.ProfileRepository
}

func NewUserUsecase(profileRepo *repository.ProfileRepository) *UserUsecase {
	return &UserUsecase{profileRepo: profileRepo}
}

func (uc *UserUsecase) GetProfile(userID string) (*model.Profile, error) {
	profile, err := uc.profileRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return profile, nil
}

type ProfileUpdateInput struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
}

func (uc *UserUsecase) UpdateProfile(userID string, input ProfileUpdateInput) (*model.Profile, error) {
	profile, err := uc.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

package usecases

import (
	"errors"
	"strings"

	"room-rental-server/apperrors"
	"room-rental-server/entities"
	"room-rental-server/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserUseCase handles registration, credential checks and profile access.
type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsOwner  bool   `json:"isOwner"`
}

// UpdateProfileInput is a partial profile update; nil fields are left alone.
type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Register creates an account with a bcrypt-hashed password. A duplicate
// email is a conflict.
func (uc *UserUseCase) Register(in RegisterInput) (*entities.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	if strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@") {
		return nil, apperrors.Validation("a valid email is required")
	}
	if len(in.Password) < 6 {
		return nil, apperrors.Validation("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Store("failed to hash password", err)
	}

	user := &entities.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Address:      in.Address,
		IsOwner:      in.IsOwner,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, apperrors.FromStore(err, "", "email already registered")
	}
	return user, nil
}

// Login verifies the credentials and returns the account. Both an unknown
// email and a wrong password report the same unauthorized message.
func (uc *UserUseCase) Login(email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, apperrors.FromStore(err, "", "")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	return user, nil
}

// GetProfile returns the account for an authenticated identity.
func (uc *UserUseCase) GetProfile(userID uint) (*entities.User, error) {
	if userID == 0 {
		return nil, apperrors.Unauthorized("authentication required")
	}
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return nil, apperrors.FromStore(err, "user not found", "")
	}
	return user, nil
}

// UpdateProfile applies a partial update to the authenticated account.
func (uc *UserUseCase) UpdateProfile(userID uint, in UpdateProfileInput) (*entities.User, error) {
	user, err := uc.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperrors.Validation("name must not be empty")
		}
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}

	if err := uc.UserRepo.Update(user); err != nil {
		return nil, apperrors.FromStore(err, "user not found", "email already registered")
	}
	return user, nil
}

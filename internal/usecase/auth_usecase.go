package usecase

import (
	"errors"
	"time"

	"planning-backend/config"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUsecase struct {
	users repository.UserRepository
}

func NewAuthUsecase(users repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{users: users}
}

func (u *AuthUsecase) Register(name, username, email, password string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := model.User{
		Name:     name,
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := u.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the password and issues a 24h token carrying the user's
// primary membership (first organization link) so handlers can scope queries
// without another lookup.
func (u *AuthUsecase) Login(username, password string) (string, *model.User, error) {
	user, err := u.users.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	var orgID uint
	var role string
	memberships, err := u.users.GetMemberships(user.ID)
	if err == nil && len(memberships) > 0 {
		orgID = memberships[0].OrganizationID
		role = memberships[0].Role
	}

	claims := jwt.MapClaims{
		"user_id":         user.ID,
		"username":        user.Username,
		"organization_id": orgID,
		"role":            role,
		"exp":             time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret()))
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

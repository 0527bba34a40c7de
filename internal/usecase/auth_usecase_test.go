package usecase

import (
	"testing"

	"planning-backend/config"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	auth := NewAuthUsecase(users)

	user, err := auth.Register("Lead Planner", "planner", "planner@example.gov", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)

	org := model.Organization{Name: "Planning Desk", Type: model.OrgTypeDesk}
	require.NoError(t, db.Create(&org).Error)
	require.NoError(t, users.AddToOrganization(&model.OrganizationUser{
		UserID: user.ID, OrganizationID: org.ID, Role: model.RolePlanner,
	}))

	tokenString, loggedIn, err := auth.Login("planner", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret()), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "planner", claims["username"])
	assert.Equal(t, model.RolePlanner, claims["role"])
	assert.EqualValues(t, org.ID, claims["organization_id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	auth := NewAuthUsecase(users)

	_, err := auth.Register("Someone", "someone", "", "right")
	require.NoError(t, err)

	_, _, err = auth.Login("someone", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login("nobody", "right")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

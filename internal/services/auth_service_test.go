package services_test

import (
	"testing"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func hashedTestPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		ID:       "user-1",
		Username: "testuser",
		Email:    "test@example.com",
		Password: hashedTestPassword(t, "password123"),
	}

	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()

	token, err := authService.LoginUser(user.Username, "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// The issued token must round-trip through validation with the claims intact
	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Username, claims["username"])
}

func TestAuthService_LoginUser_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		ID:       "user-1",
		Username: "testuser",
		Password: hashedTestPassword(t, "password123"),
	}

	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()

	token, err := authService.LoginUser(user.Username, "wrongpassword")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser_UnknownUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByUsername", "ghost").Return(nil, repositories.ErrNotFound).Once()

	token, err := authService.LoginUser("ghost", "whatever")

	assert.Empty(t, token)
	// Same error as a wrong password, so callers cannot probe for usernames
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_InvalidToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	claims, err := authService.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := foreign.SignedString([]byte("some_other_secret"))
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

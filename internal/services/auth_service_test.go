package services_test

import (
	"testing"
	"time"

	"flowerstore/internal/models"
	"flowerstore/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 30*time.Minute)

	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
	}

	// Successful registration
	mockRepo.On("GetByUsername", user.Username).Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user, "password123")
	assert.NoError(t, err)
	assert.Equal(t, "user", user.Role)
	assert.False(t, user.Disabled)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Username already taken
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{UserID: 1}, nil).Once()
	err = authService.RegisterUser(user, "password123")
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByUsername", user.Username).Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{UserID: 1}, nil).Once()
	err = authService.RegisterUser(user, "password123")
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 30*time.Minute)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		UserID:       1,
		Username:     "testuser",
		PasswordHash: string(hashed),
	}

	// Successful login
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", claims["sub"])

	// Unknown username
	mockRepo.On("GetByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound).Once()
	_, err = authService.LoginUser("ghost", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Wrong password
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 30*time.Minute)

	// Garbage token
	_, err := authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "testuser",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	forgedString, _ := forged.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(forgedString)
	assert.Error(t, err)

	// Expired token with a valid signature is still rejected
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "testuser",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)
}

func TestAuthService_CurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 30*time.Minute)

	// Active user resolves
	mockRepo.On("GetByUsername", "alice").Return(&models.User{UserID: 1, Username: "alice"}, nil).Once()
	user, err := authService.CurrentUser("alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// Vanished user
	mockRepo.On("GetByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound).Once()
	_, err = authService.CurrentUser("ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Disabled user
	mockRepo.On("GetByUsername", "locked").Return(&models.User{UserID: 2, Username: "locked", Disabled: true}, nil).Once()
	_, err = authService.CurrentUser("locked")
	assert.ErrorIs(t, err, services.ErrInactiveUser)

	mockRepo.AssertExpectations(t)
}

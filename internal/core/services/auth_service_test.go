package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finoraid/finora_backend/internal/apperrors"
	"github.com/finoraid/finora_backend/internal/core/domain"
	portssvc "github.com/finoraid/finora_backend/internal/core/ports/services"
	"github.com/finoraid/finora_backend/internal/core/services"
	"github.com/finoraid/finora_backend/internal/utils"
	"github.com/finoraid/finora_backend/pkg/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finora-test",
	}
	suite.service = services.NewAuthService(suite.mockRepo, cfg)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == "Rina" && u.Email == "rina@example.com" && u.UserID != "" &&
			utils.CheckPasswordHash("secret123", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, "Rina", "rina@example.com", "secret123")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("Rina", user.Name)
	suite.NotEqual("secret123", user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, "Rina", "rina@example.com", "secret123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: "user-1", Name: "Rina", Email: "rina@example.com", PasswordHash: hash}
	suite.mockRepo.On("FindUserByEmail", ctx, "rina@example.com").Return(stored, nil).Once()

	user, token, err := suite.service.Login(ctx, "rina@example.com", "secret123")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(token)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal("user-1", claims.Subject)
	suite.Equal("finora-test", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: "user-1", Email: "rina@example.com", PasswordHash: hash}
	suite.mockRepo.On("FindUserByEmail", ctx, "rina@example.com").Return(stored, nil).Once()

	user, token, err := suite.service.Login(ctx, "rina@example.com", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, token, err := suite.service.Login(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(token)
	// Unknown email and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

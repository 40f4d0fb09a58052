package services_test

import (
	"context"
	"testing"

	"github.com/finoraid/finora_backend/internal/apperrors"
	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/core/engine"
	portssvc "github.com/finoraid/finora_backend/internal/core/ports/services"
	"github.com/finoraid/finora_backend/internal/core/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByProject(ctx context.Context, userID, projectID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDebtRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDebtRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, userID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebtsByUser(ctx context.Context, userID string) ([]domain.Debt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	args := m.Called(ctx, userID, debtID)
	return args.Error(0)
}

func (m *MockDebtRepository) AddDebtPayment(ctx context.Context, userID, debtID string, payment domain.DebtPayment) error {
	args := m.Called(ctx, userID, debtID, payment)
	return args.Error(0)
}

// --- Mock SnoozeRepository ---
type MockSnoozeRepository struct {
	mock.Mock
}

func (m *MockSnoozeRepository) UpsertSnooze(ctx context.Context, snooze domain.ReminderSnooze) error {
	args := m.Called(ctx, snooze)
	return args.Error(0)
}

func (m *MockSnoozeRepository) ListSnoozesByUser(ctx context.Context, userID string) (domain.SnoozeMap, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SnoozeMap), args.Error(1)
}

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockProjects *MockProjectRepository
	mockTxns     *MockTransactionRepository
	mockDebts    *MockDebtRepository
	mockSnoozes  *MockSnoozeRepository
	service      portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockProjects = new(MockProjectRepository)
	suite.mockTxns = new(MockTransactionRepository)
	suite.mockDebts = new(MockDebtRepository)
	suite.mockSnoozes = new(MockSnoozeRepository)
	suite.service = services.NewDashboardService(testRepos(suite.mockProjects, suite.mockTxns, suite.mockDebts, suite.mockSnoozes), engine.DefaultConfig())
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_Success() {
	ctx := context.Background()
	userID := "user-1"

	projects := []domain.Project{
		{ProjectID: "p1", UserID: userID, ClientName: "Budi", ProjectName: "Wedding", ContractValue: decimal.NewFromInt(10_000_000)},
	}
	txns := []domain.Transaction{
		{TransactionID: "t1", UserID: userID, Date: "2025-08-01", Type: domain.Income, ProjectID: "p1", Amount: decimal.NewFromInt(3_000_000)},
	}

	suite.mockProjects.On("ListProjectsByUser", ctx, userID).Return(projects, nil).Once()
	suite.mockTxns.On("ListTransactionsByUser", ctx, userID).Return(txns, nil).Once()
	suite.mockDebts.On("ListDebtsByUser", ctx, userID).Return([]domain.Debt{}, nil).Once()
	suite.mockSnoozes.On("ListSnoozesByUser", ctx, userID).Return(domain.SnoozeMap{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(dashboard)
	suite.Len(dashboard.Projects, 1)
	suite.Equal(domain.PaymentStatusDownPayment, dashboard.Projects[0].PaymentStatus)
	suite.True(dashboard.Summary.Balance.Equal(decimal.NewFromInt(3_000_000)))
	suite.Len(dashboard.Cashflow, 5)

	suite.mockProjects.AssertExpectations(suite.T())
	suite.mockSnoozes.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_MemoizesUnchangedSnapshot() {
	ctx := context.Background()
	userID := "user-1"

	suite.mockProjects.On("ListProjectsByUser", ctx, userID).Return([]domain.Project{}, nil).Times(2)
	suite.mockTxns.On("ListTransactionsByUser", ctx, userID).Return([]domain.Transaction{}, nil).Times(2)
	suite.mockDebts.On("ListDebtsByUser", ctx, userID).Return([]domain.Debt{}, nil).Times(2)
	suite.mockSnoozes.On("ListSnoozesByUser", ctx, userID).Return(domain.SnoozeMap{}, nil).Times(2)

	first, err := suite.service.GetDashboard(ctx, userID)
	suite.Require().NoError(err)
	second, err := suite.service.GetDashboard(ctx, userID)
	suite.Require().NoError(err)

	// The snapshot did not change between the calls, so the second read
	// serves the memoized derivation.
	suite.Equal(first, second)
	suite.mockProjects.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_RepoError() {
	ctx := context.Background()
	userID := "user-1"
	expectedErr := assert.AnError

	suite.mockProjects.On("ListProjectsByUser", ctx, userID).Return(nil, expectedErr).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(dashboard)
	suite.ErrorIs(err, expectedErr)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_RejectsForeignRecords() {
	ctx := context.Background()
	userID := "user-1"

	suite.mockProjects.On("ListProjectsByUser", ctx, userID).Return([]domain.Project{}, nil).Once()
	suite.mockTxns.On("ListTransactionsByUser", ctx, userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockDebts.On("ListDebtsByUser", ctx, userID).Return([]domain.Debt{
		{DebtID: "d1", UserID: "someone-else", TotalAmount: decimal.NewFromInt(1)},
	}, nil).Once()
	suite.mockSnoozes.On("ListSnoozesByUser", ctx, userID).Return(domain.SnoozeMap{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(dashboard)
	suite.ErrorIs(err, apperrors.ErrUserMismatch)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

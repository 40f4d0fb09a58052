package services_test

import (
	"context"
	"testing"

	"github.com/finoraid/finora_backend/internal/apperrors"
	"github.com/finoraid/finora_backend/internal/core/domain"
	portssvc "github.com/finoraid/finora_backend/internal/core/ports/services"
	"github.com/finoraid/finora_backend/internal/core/services"
	"github.com/finoraid/finora_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDebtRepository
	service  portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDebtRepository)
	suite.service = services.NewDebtService(suite.mockRepo)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Date:        "2025-07-01",
		LenderName:  "Bank ABC",
		Category:    "Modal Project",
		TotalAmount: decimal.NewFromInt(5_000_000),
	}

	suite.mockRepo.On("SaveDebt", ctx, mock.MatchedBy(func(d domain.Debt) bool {
		return d.LenderName == "Bank ABC" && d.UserID == "user-1" && d.DebtID != ""
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.True(debt.RemainingAmount.Equal(decimal.NewFromInt(5_000_000)))
	suite.Equal(domain.DebtStatusActive, debt.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_NegativeAmount() {
	req := dto.CreateDebtRequest{
		Date:        "2025-07-01",
		LenderName:  "Bank ABC",
		TotalAmount: decimal.NewFromInt(-1),
	}

	debt, err := suite.service.CreateDebt(context.Background(), "user-1", req)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestAddDebtPayment_Success() {
	ctx := context.Background()
	payment := dto.CreateDebtPaymentRequest{
		Date:   "2025-08-10",
		Amount: decimal.NewFromInt(2_000_000),
		Method: "Transfer",
	}

	afterPayment := &domain.Debt{
		DebtID:      "d1",
		UserID:      "user-1",
		LenderName:  "Bank ABC",
		TotalAmount: decimal.NewFromInt(5_000_000),
		PaidAmount:  decimal.NewFromInt(2_000_000),
		Payments: []domain.DebtPayment{
			{Date: "2025-08-10", Amount: decimal.NewFromInt(2_000_000), Method: "Transfer"},
		},
	}

	suite.mockRepo.On("AddDebtPayment", ctx, "user-1", "d1", mock.MatchedBy(func(p domain.DebtPayment) bool {
		return p.Amount.Equal(decimal.NewFromInt(2_000_000)) && p.Date == "2025-08-10"
	})).Return(nil).Once()
	suite.mockRepo.On("FindDebtByID", ctx, "user-1", "d1").Return(afterPayment, nil).Once()

	debt, err := suite.service.AddDebtPayment(ctx, "user-1", "d1", payment)

	suite.Require().NoError(err)
	suite.Require().NotNil(debt)
	suite.True(debt.RemainingAmount.Equal(decimal.NewFromInt(3_000_000)))
	suite.Len(debt.Payments, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestAddDebtPayment_NonPositiveAmount() {
	payment := dto.CreateDebtPaymentRequest{
		Date:   "2025-08-10",
		Amount: decimal.Zero,
	}

	debt, err := suite.service.AddDebtPayment(context.Background(), "user-1", "d1", payment)

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddDebtPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestGetDebt_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindDebtByID", ctx, "user-1", "missing").Return(nil, apperrors.ErrNotFound).Once()

	debt, err := suite.service.GetDebt(ctx, "user-1", "missing")

	suite.Require().Error(err)
	suite.Nil(debt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}

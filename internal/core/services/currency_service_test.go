package services_test

import (
	"context"
	"testing"

	"github.com/fxops/exchange_backoffice/internal/apperrors"
	"github.com/fxops/exchange_backoffice/internal/core/domain"
	portssvc "github.com/fxops/exchange_backoffice/internal/core/ports/services"
	"github.com/fxops/exchange_backoffice/internal/core/services"
	"github.com/fxops/exchange_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo, suite.mockRateRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:   "eur",
		Name:   "Euro",
		Symbol: "€",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("InsertCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "EUR" && c.Name == req.Name && c.Symbol == req.Symbol && c.IsActive && c.CurrencyID != ""
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("EUR", currency.Code)
	suite.True(currency.IsActive)

	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertNotCalled(suite.T(), "InsertRate", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:   "EUR",
		Name:   "Euro",
		Symbol: "€",
	}
	existing := &domain.Currency{CurrencyID: uuid.NewString(), Code: "EUR"}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicateCurrency)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "InsertCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_InactiveOnRequest() {
	ctx := context.Background()
	inactive := false
	req := dto.CreateCurrencyRequest{
		Code:     "GBP",
		Name:     "Pound Sterling",
		Symbol:   "£",
		IsActive: &inactive,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "GBP").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("InsertCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "GBP" && !c.IsActive
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.False(currency.IsActive)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ReferenceProvisionsRate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:   "USD",
		Name:   "US Dollar",
		Symbol: "$",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("InsertCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	suite.mockRateRepo.On("FindRateByCurrencyID", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("InsertRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.RateToUSD.Equal(decimal.NewFromInt(1)) && r.IsActive
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("USD", currency.Code)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ReferenceRateAlreadyProvisioned() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:   "USD",
		Name:   "US Dollar",
		Symbol: "$",
	}
	existingRate := &domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		RateToUSD:      decimal.NewFromInt(1),
		IsActive:       true,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("InsertCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	suite.mockRateRepo.On("FindRateByCurrencyID", ctx, mock.AnythingOfType("string")).Return(existingRate, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(currency)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "InsertRate", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ReferenceRateConcurrentProvision() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:   "USD",
		Name:   "US Dollar",
		Symbol: "$",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("InsertCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()
	suite.mockRateRepo.On("FindRateByCurrencyID", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("InsertRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(apperrors.ErrDuplicateRate).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(currency)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Lowercased() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyID: uuid.NewString(), Code: "EUR"}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "eur")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByID_NotFound() {
	ctx := context.Background()
	currencyID := uuid.NewString()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByID(ctx, currencyID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var noCurrencies []domain.Currency

	suite.mockCurrencyRepo.On("ListCurrencies", ctx, true).Return(noCurrencies, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx, true)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockCurrencyRepo.On("ListCurrencies", ctx, false).Return(nil, expectedErr).Once()

	currencies, err := suite.service.ListCurrencies(ctx, false)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, expectedErr)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_PartialPatch() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	existing := &domain.Currency{
		CurrencyID: currencyID,
		Code:       "EUR",
		Name:       "Euro",
		Symbol:     "€",
		IsActive:   true,
	}
	newName := "Euro (EU)"
	inactive := false
	req := dto.UpdateCurrencyRequest{Name: &newName, IsActive: &inactive}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).Return(existing, nil).Once()
	suite.mockCurrencyRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "EUR" && c.Name == newName && c.Symbol == "€" && !c.IsActive
	})).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, currencyID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, currency.Name)
	suite.Equal("EUR", currency.Code)
	suite.False(currency.IsActive)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_NotFound() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	newName := "Nope"

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.UpdateCurrency(ctx, currencyID, dto.UpdateCurrencyRequest{Name: &newName})

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "UpdateCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_Success() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	existing := &domain.Currency{CurrencyID: currencyID, Code: "EUR"}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).Return(existing, nil).Once()
	suite.mockCurrencyRepo.On("DeleteCurrency", ctx, currencyID).Return(nil).Once()

	err := suite.service.DeleteCurrency(ctx, currencyID)

	suite.Require().NoError(err)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_NotFound() {
	ctx := context.Background()
	currencyID := uuid.NewString()

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, currencyID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCurrency(ctx, currencyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "DeleteCurrency", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

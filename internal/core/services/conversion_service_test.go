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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockCurrencySvc *MockCurrencyReaderSvc
	mockRateSvc     *MockExchangeRateReaderSvc
	service         portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockCurrencySvc = new(MockCurrencyReaderSvc)
	suite.mockRateSvc = new(MockExchangeRateReaderSvc)
	suite.service = services.NewConversionService(suite.mockCurrencySvc, suite.mockRateSvc)
}

func (suite *ConversionServiceTestSuite) currency(code string, active bool) *domain.Currency {
	return &domain.Currency{
		CurrencyID: uuid.NewString(),
		Code:       code,
		Name:       code,
		IsActive:   active,
	}
}

func (suite *ConversionServiceTestSuite) rateFor(c *domain.Currency, value string) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyID:     c.CurrencyID,
		RateToUSD:      decimal.RequireFromString(value),
		IsActive:       true,
	}
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestCalculate_ToReference() {
	ctx := context.Background()
	eur := suite.currency("EUR", true)
	usd := suite.currency("USD", true)
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: eur.CurrencyID,
		ToCurrencyID:   usd.CurrencyID,
		Amount:         decimal.NewFromInt(100),
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, eur.CurrencyID).Return(eur, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, usd.CurrencyID).Return(usd, nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, eur.CurrencyID).Return(suite.rateFor(eur, "0.92"), nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, usd.CurrencyID).Return(suite.rateFor(usd, "1"), nil).Once()

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("EUR", result.FromCurrencyCode)
	suite.Equal("USD", result.ToCurrencyCode)
	suite.True(result.ExchangeRate.Equal(decimal.RequireFromString("0.92")), "got rate %s", result.ExchangeRate)
	suite.True(result.ToAmount.Equal(decimal.RequireFromString("92")), "got amount %s", result.ToAmount)
	suite.True(result.FromAmount.Equal(req.Amount))
	suite.False(result.CalculatedAt.IsZero())
}

func (suite *ConversionServiceTestSuite) TestCalculate_FromReference() {
	ctx := context.Background()
	usd := suite.currency("USD", true)
	eur := suite.currency("EUR", true)
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: usd.CurrencyID,
		ToCurrencyID:   eur.CurrencyID,
		Amount:         decimal.NewFromInt(50),
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, usd.CurrencyID).Return(usd, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, eur.CurrencyID).Return(eur, nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, usd.CurrencyID).Return(suite.rateFor(usd, "1"), nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, eur.CurrencyID).Return(suite.rateFor(eur, "0.8"), nil).Once()

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().NoError(err)
	// 1 / 0.8 = 1.25, 50 * 1.25 = 62.5
	suite.True(result.ExchangeRate.Equal(decimal.RequireFromString("1.25")), "got rate %s", result.ExchangeRate)
	suite.True(result.ToAmount.Equal(decimal.RequireFromString("62.5")), "got amount %s", result.ToAmount)
}

func (suite *ConversionServiceTestSuite) TestCalculate_CrossRateRounded() {
	ctx := context.Background()
	eur := suite.currency("EUR", true)
	gbp := suite.currency("GBP", true)
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: eur.CurrencyID,
		ToCurrencyID:   gbp.CurrencyID,
		Amount:         decimal.NewFromInt(100),
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, eur.CurrencyID).Return(eur, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, gbp.CurrencyID).Return(gbp, nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, eur.CurrencyID).Return(suite.rateFor(eur, "1"), nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, gbp.CurrencyID).Return(suite.rateFor(gbp, "3"), nil).Once()

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().NoError(err)
	// 1/3 rounds to 0.333333 at six fractional digits
	suite.True(result.ExchangeRate.Equal(decimal.RequireFromString("0.333333")), "got rate %s", result.ExchangeRate)
	suite.True(result.ToAmount.Equal(decimal.RequireFromString("33.333333")), "got amount %s", result.ToAmount)
}

func (suite *ConversionServiceTestSuite) TestCalculate_SameCurrency() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: currencyID,
		ToCurrencyID:   currencyID,
		Amount:         decimal.NewFromInt(100),
	}

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidRequest)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "GetCurrencyByID", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestCalculate_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: uuid.NewString(),
		ToCurrencyID:   uuid.NewString(),
		Amount:         decimal.NewFromInt(-5),
	}

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidRequest)
}

func (suite *ConversionServiceTestSuite) TestCalculate_InactiveSourceCurrency() {
	ctx := context.Background()
	eur := suite.currency("EUR", false)
	usd := suite.currency("USD", true)
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: eur.CurrencyID,
		ToCurrencyID:   usd.CurrencyID,
		Amount:         decimal.NewFromInt(100),
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, eur.CurrencyID).Return(eur, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, usd.CurrencyID).Return(usd, nil).Once()

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInactiveCurrency)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "GetActiveRateByCurrency", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestCalculate_InactiveTargetCurrency() {
	ctx := context.Background()
	eur := suite.currency("EUR", true)
	gbp := suite.currency("GBP", false)
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: eur.CurrencyID,
		ToCurrencyID:   gbp.CurrencyID,
		Amount:         decimal.NewFromInt(100),
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, eur.CurrencyID).Return(eur, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, gbp.CurrencyID).Return(gbp, nil).Once()

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInactiveCurrency)
}

func (suite *ConversionServiceTestSuite) TestCalculate_MissingRate() {
	ctx := context.Background()
	eur := suite.currency("EUR", true)
	chf := suite.currency("CHF", true)
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: chf.CurrencyID,
		ToCurrencyID:   eur.CurrencyID,
		Amount:         decimal.NewFromInt(100),
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, chf.CurrencyID).Return(chf, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, eur.CurrencyID).Return(eur, nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, chf.CurrencyID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ConversionServiceTestSuite) TestCalculate_ZeroTargetRate() {
	ctx := context.Background()
	eur := suite.currency("EUR", true)
	xxx := suite.currency("XXX", true)
	req := dto.CalculateExchangeRequest{
		FromCurrencyID: eur.CurrencyID,
		ToCurrencyID:   xxx.CurrencyID,
		Amount:         decimal.NewFromInt(100),
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, eur.CurrencyID).Return(eur, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, xxx.CurrencyID).Return(xxx, nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, eur.CurrencyID).Return(suite.rateFor(eur, "0.92"), nil).Once()
	suite.mockRateSvc.On("GetActiveRateByCurrency", ctx, xxx.CurrencyID).Return(suite.rateFor(xxx, "0"), nil).Once()

	result, err := suite.service.Calculate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidRate)
}

// --- Run Suite ---
func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}

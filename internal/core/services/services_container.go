package services

import (
	portsrepo "github.com/fxops/exchange_backoffice/internal/core/ports/repositories"
	portssvc "github.com/fxops/exchange_backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly wired
// dependencies. The rate ledger resolves currencies through the
// registry, and the conversion engine reads from both.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo, repos.ExchangeRateRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.Conversion = NewConversionService(container.Currency, container.ExchangeRate)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Compile-time checks that services satisfy their facades.
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.ConversionSvcFacade   = (*ConversionService)(nil)
	_ portssvc.UserSvcFacade         = (*UserService)(nil)
)

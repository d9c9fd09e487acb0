package repositories

// RepositoryProvider holds instances of all repositories the services need.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepositoryWithTx
	ExchangeRateRepo ExchangeRateRepositoryWithTx
	UserRepo         UserRepositoryFacade
}

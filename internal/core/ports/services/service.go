package services

// ServiceContainer holds instances of all the application services.
// It is the entry point for accessing service functionality and is
// threaded through the handlers at route registration time.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Conversion   ConversionSvcFacade
	User         UserSvcFacade
}

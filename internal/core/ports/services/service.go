package services

// ServiceContainer holds all service interfaces for dependency injection.
type ServiceContainer struct {
	Room      RoomSvcFacade
	Guest     GuestSvcFacade
	Booking   BookingSvcFacade
	Expense   ExpenseSvcFacade
	Sale      SaleSvcFacade
	Auth      AuthSvcFacade
	Settings  SettingsSvcFacade
	Reporting ReportingSvcFacade
}

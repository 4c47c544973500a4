package services

import (
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Room = NewRoomService(repos.RoomRepo)
	container.Guest = NewGuestService(repos.GuestRepo)
	container.Booking = NewBookingService(repos.BookingRepo, repos.RoomRepo, repos.GuestRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Sale = NewSaleService(repos.SaleRepo)
	container.Auth = NewAuthService(repos.AdminRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.RoomRepo, repos.BookingRepo)

	return container
}

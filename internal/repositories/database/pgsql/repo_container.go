package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RoomRepo:      newPgxRoomRepository(dbPool),
		GuestRepo:     newPgxGuestRepository(dbPool),
		BookingRepo:   newPgxBookingRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		SaleRepo:      newPgxSaleRepository(dbPool),
		AdminRepo:     newPgxAdminRepository(dbPool),
		SettingsRepo:  newPgxSettingsRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hms_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// bookingService implements the BookingSvcFacade interface.
type bookingService struct {
	BaseService
	bookingRepo portsrepo.BookingRepositoryFacade
	roomRepo    portsrepo.RoomReader
	guestRepo   portsrepo.GuestReader
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo portsrepo.BookingRepositoryFacade, roomRepo portsrepo.RoomReader, guestRepo portsrepo.GuestReader) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorID string) (*domain.Booking, error) {
	checkIn, err := dto.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in date: %w", apperrors.ErrValidation)
	}
	checkOut, err := dto.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out date: %w", apperrors.ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check_out must be after check_in: %w", apperrors.ErrValidation)
	}
	if req.AdvancePayment.IsNegative() {
		return nil, fmt.Errorf("advance_payment must not be negative: %w", apperrors.ErrValidation)
	}

	guestsCount := req.GuestsCount
	if guestsCount == 0 {
		guestsCount = 1
	}

	room, err := s.roomRepo.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if guestsCount > room.MaxOccupancy {
		return nil, fmt.Errorf("guests_count %d exceeds room capacity %d: %w", guestsCount, room.MaxOccupancy, apperrors.ErrValidation)
	}
	if _, err := s.guestRepo.FindGuestByID(ctx, req.GuestID); err != nil {
		return nil, err
	}

	overlapping, err := s.bookingRepo.CountOverlappingBookings(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("room is not available for the selected dates: %w", apperrors.ErrValidation)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	totalAmount := room.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))

	now := time.Now().UTC()
	booking := domain.Booking{
		BookingID:       uuid.NewString(),
		RoomID:          req.RoomID,
		GuestID:         req.GuestID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestsCount:     guestsCount,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     totalAmount,
		AdvancePayment:  req.AdvancePayment,
		Status:          domain.BookingConfirmed,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		s.LogError(ctx, err, "Failed to save booking",
			slog.String("room_id", req.RoomID),
			slog.String("guest_id", req.GuestID))
		return nil, err
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("room_id", booking.RoomID),
		slog.Int("nights", nights))
	return &booking, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.BookingWithDetails, error) {
	return s.bookingRepo.FindBookingWithDetailsByID(ctx, bookingID)
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.BookingWithDetails, error) {
	bookings, err := s.bookingRepo.ListBookingsWithDetails(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings")
		return nil, err
	}
	if bookings == nil {
		return []domain.BookingWithDetails{}, nil
	}
	return bookings, nil
}

// UpdateBookingStatus is the transition controller. It fetches the booking,
// computes the transition purely, then persists it with compare-and-set on
// the status the computation was based on, so two concurrent checkouts cannot
// both settle the same advance payment.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req dto.UpdateBookingStatusRequest, updaterID string) (*domain.BookingTransition, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	result, err := computeTransition(*booking, req, updaterID, time.Now().UTC())
	if err != nil {
		s.LogWarn(ctx, "Rejected booking status transition",
			slog.String("booking_id", bookingID),
			slog.String("from", string(booking.Status)),
			slog.String("to", string(req.Status)),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.bookingRepo.ApplyStatusTransition(ctx, result.Booking, booking.Status, result.Sale); err != nil {
		s.LogError(ctx, err, "Failed to apply booking status transition",
			slog.String("booking_id", bookingID))
		return nil, err
	}

	s.LogInfo(ctx, "Booking status updated",
		slog.String("booking_id", bookingID),
		slog.String("from", string(booking.Status)),
		slog.String("to", string(result.Booking.Status)))
	return result, nil
}

// computeTransition validates a requested status transition and computes the
// derived monetary fields. It is pure: no I/O, no mutation of its inputs.
// Validation order is fixed (terminal state, then reachability, then currency
// sign) and the first failure wins.
func computeTransition(b domain.Booking, req dto.UpdateBookingStatusRequest, updaterID string, now time.Time) (*domain.BookingTransition, error) {
	if b.Status.IsTerminal() {
		return nil, fmt.Errorf("booking is in terminal status %q, no transition possible: %w", b.Status, apperrors.ErrValidation)
	}
	if !b.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("transition from %q to %q is not allowed: %w", b.Status, req.Status, apperrors.ErrValidation)
	}
	if req.AdditionalCharges.IsNegative() {
		return nil, fmt.Errorf("additional_charges must not be negative: %w", apperrors.ErrValidation)
	}
	if req.AdvancePaymentReceived.IsNegative() {
		return nil, fmt.Errorf("advance_payment_received must not be negative: %w", apperrors.ErrValidation)
	}

	result := &domain.BookingTransition{Booking: b}

	switch req.Status {
	case domain.BookingCheckedIn:
		result.Booking.AdvancePayment = b.AdvancePayment.Add(req.AdvancePaymentReceived)

	case domain.BookingCheckedOut:
		totalOwed := b.TotalAmount.Add(req.AdditionalCharges)
		// Sign preserved: a negative balance surfaces an overpayment instead
		// of hiding it.
		balanceDue := totalOwed.Sub(b.AdvancePayment)
		result.BalanceDue = &balanceDue

		method := domain.PaymentCash
		if req.PaymentMethod != nil {
			method = *req.PaymentMethod
		}
		result.Sale = &domain.Sale{
			SaleID:        uuid.NewString(),
			BookingID:     b.BookingID,
			Amount:        totalOwed,
			PaymentMethod: method,
			Date:          dateOnly(now),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     updaterID,
				LastUpdatedAt: now,
				LastUpdatedBy: updaterID,
			},
		}

	case domain.BookingCancelled:
		// Advance payment retained as-is; refund policy is out of scope.
	}

	if req.Notes != nil {
		result.Booking.Notes = *req.Notes
	}
	result.Booking.Status = req.Status
	result.Booking.LastUpdatedAt = now
	result.Booking.LastUpdatedBy = updaterID
	return result, nil
}

// dateOnly truncates a time to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/core/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	var booking *domain.Booking
	if args.Get(0) != nil {
		booking = args.Get(0).(*domain.Booking)
	}
	return booking, args.Error(1)
}

func (m *MockBookingRepository) FindBookingWithDetailsByID(ctx context.Context, bookingID string) (*domain.BookingWithDetails, error) {
	args := m.Called(ctx, bookingID)
	var booking *domain.BookingWithDetails
	if args.Get(0) != nil {
		booking = args.Get(0).(*domain.BookingWithDetails)
	}
	return booking, args.Error(1)
}

func (m *MockBookingRepository) ListBookingsWithDetails(ctx context.Context) ([]domain.BookingWithDetails, error) {
	args := m.Called(ctx)
	var bookings []domain.BookingWithDetails
	if args.Get(0) != nil {
		bookings = args.Get(0).([]domain.BookingWithDetails)
	}
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) CountOverlappingBookings(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) ListBookingsCoveringDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	var bookings []domain.Booking
	if args.Get(0) != nil {
		bookings = args.Get(0).([]domain.Booking)
	}
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ApplyStatusTransition(ctx context.Context, booking domain.Booking, expectedStatus domain.BookingStatus, sale *domain.Sale) error {
	args := m.Called(ctx, booking, expectedStatus, sale)
	return args.Error(0)
}

// --- Mock RoomReader ---
type MockRoomReader struct {
	mock.Mock
}

func (m *MockRoomReader) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	var room *domain.Room
	if args.Get(0) != nil {
		room = args.Get(0).(*domain.Room)
	}
	return room, args.Error(1)
}

func (m *MockRoomReader) FindRoomByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	args := m.Called(ctx, roomNumber)
	var room *domain.Room
	if args.Get(0) != nil {
		room = args.Get(0).(*domain.Room)
	}
	return room, args.Error(1)
}

func (m *MockRoomReader) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	var rooms []domain.Room
	if args.Get(0) != nil {
		rooms = args.Get(0).([]domain.Room)
	}
	return rooms, args.Error(1)
}

func (m *MockRoomReader) FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomType *domain.RoomType) ([]domain.Room, error) {
	args := m.Called(ctx, checkIn, checkOut, roomType)
	var rooms []domain.Room
	if args.Get(0) != nil {
		rooms = args.Get(0).([]domain.Room)
	}
	return rooms, args.Error(1)
}

// --- Mock GuestReader ---
type MockGuestReader struct {
	mock.Mock
}

func (m *MockGuestReader) FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	args := m.Called(ctx, guestID)
	var guest *domain.Guest
	if args.Get(0) != nil {
		guest = args.Get(0).(*domain.Guest)
	}
	return guest, args.Error(1)
}

func (m *MockGuestReader) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	args := m.Called(ctx)
	var guests []domain.Guest
	if args.Get(0) != nil {
		guests = args.Get(0).([]domain.Guest)
	}
	return guests, args.Error(1)
}

// --- Test Suite ---
type BookingServiceTestSuite struct {
	suite.Suite
	mockBookingRepo *MockBookingRepository
	mockRoomRepo    *MockRoomReader
	mockGuestRepo   *MockGuestReader
	service         portssvc.BookingSvcFacade
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockRoomRepo = new(MockRoomReader)
	suite.mockGuestRepo = new(MockGuestReader)
	suite.service = services.NewBookingService(suite.mockBookingRepo, suite.mockRoomRepo, suite.mockGuestRepo)
}

func (suite *BookingServiceTestSuite) confirmedBooking(total, advance int64) *domain.Booking {
	return &domain.Booking{
		BookingID:      uuid.NewString(),
		RoomID:         uuid.NewString(),
		GuestID:        uuid.NewString(),
		CheckIn:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		GuestsCount:    2,
		TotalAmount:    decimal.NewFromInt(total),
		AdvancePayment: decimal.NewFromInt(advance),
		Status:         domain.BookingConfirmed,
		Notes:          "early arrival",
	}
}

// --- CreateBooking Tests ---

func (suite *BookingServiceTestSuite) TestCreateBooking_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	room := &domain.Room{
		RoomID:        uuid.NewString(),
		RoomNumber:    "101",
		RoomType:      domain.RoomDouble,
		PricePerNight: decimal.NewFromInt(120),
		MaxOccupancy:  3,
	}
	guest := &domain.Guest{GuestID: uuid.NewString(), Name: "Alice Smith"}

	req := dto.CreateBookingRequest{
		RoomID:         room.RoomID,
		GuestID:        guest.GuestID,
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-04",
		GuestsCount:    2,
		AdvancePayment: decimal.NewFromInt(100),
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockGuestRepo.On("FindGuestByID", ctx, guest.GuestID).Return(guest, nil).Once()
	suite.mockBookingRepo.On("CountOverlappingBookings", ctx, room.RoomID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(0, nil).Once()
	suite.mockBookingRepo.On("SaveBooking", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		// 3 nights at 120
		return b.TotalAmount.Equal(decimal.NewFromInt(360)) && b.Status == domain.BookingConfirmed
	})).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(booking)
	suite.NotEmpty(booking.BookingID)
	suite.True(booking.TotalAmount.Equal(decimal.NewFromInt(360)))
	suite.True(booking.AdvancePayment.Equal(decimal.NewFromInt(100)))
	suite.Equal(domain.BookingConfirmed, booking.Status)
	suite.Equal(creatorID, booking.CreatedBy)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_GuestsCountDefaultsToOne() {
	ctx := context.Background()
	room := &domain.Room{RoomID: uuid.NewString(), PricePerNight: decimal.NewFromInt(90), MaxOccupancy: 2}
	guest := &domain.Guest{GuestID: uuid.NewString()}

	req := dto.CreateBookingRequest{
		RoomID:   room.RoomID,
		GuestID:  guest.GuestID,
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-02",
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockGuestRepo.On("FindGuestByID", ctx, guest.GuestID).Return(guest, nil).Once()
	suite.mockBookingRepo.On("CountOverlappingBookings", ctx, room.RoomID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(0, nil).Once()
	suite.mockBookingRepo.On("SaveBooking", ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, booking.GuestsCount)
	suite.True(booking.AdvancePayment.IsZero())
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_CheckOutNotAfterCheckIn() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{
		RoomID:   uuid.NewString(),
		GuestID:  uuid.NewString(),
		CheckIn:  "2025-06-03",
		CheckOut: "2025-06-03",
	}

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_NegativeAdvance() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{
		RoomID:         uuid.NewString(),
		GuestID:        uuid.NewString(),
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-03",
		AdvancePayment: decimal.NewFromInt(-10),
	}

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_ExceedsRoomCapacity() {
	ctx := context.Background()
	room := &domain.Room{RoomID: uuid.NewString(), PricePerNight: decimal.NewFromInt(90), MaxOccupancy: 2}

	req := dto.CreateBookingRequest{
		RoomID:      room.RoomID,
		GuestID:     uuid.NewString(),
		CheckIn:     "2025-06-01",
		CheckOut:    "2025-06-03",
		GuestsCount: 4,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_RoomNotFound() {
	ctx := context.Background()
	roomID := uuid.NewString()

	req := dto.CreateBookingRequest{
		RoomID:   roomID,
		GuestID:  uuid.NewString(),
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, roomID).Return(nil, apperrors.ErrNotFound).Once()

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_OverlappingDatesRejected() {
	ctx := context.Background()
	room := &domain.Room{RoomID: uuid.NewString(), PricePerNight: decimal.NewFromInt(90), MaxOccupancy: 2}
	guest := &domain.Guest{GuestID: uuid.NewString()}

	req := dto.CreateBookingRequest{
		RoomID:   room.RoomID,
		GuestID:  guest.GuestID,
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockGuestRepo.On("FindGuestByID", ctx, guest.GuestID).Return(guest, nil).Once()
	suite.mockBookingRepo.On("CountOverlappingBookings", ctx, room.RoomID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(1, nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
}

// --- UpdateBookingStatus Tests ---

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_CheckInAccumulatesAdvance() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 20)
	req := dto.UpdateBookingStatusRequest{
		Status:                 domain.BookingCheckedIn,
		AdvancePaymentReceived: decimal.NewFromInt(30),
	}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.Status == domain.BookingCheckedIn && b.AdvancePayment.Equal(decimal.NewFromInt(50))
	}), domain.BookingConfirmed, (*domain.Sale)(nil)).Return(nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Booking.AdvancePayment.Equal(decimal.NewFromInt(50)))
	suite.Nil(result.BalanceDue)
	suite.Nil(result.Sale)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_CheckoutComputesBalanceAndSale() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 80)
	booking.Status = domain.BookingCheckedIn
	updaterID := uuid.NewString()
	req := dto.UpdateBookingStatusRequest{
		Status:            domain.BookingCheckedOut,
		AdditionalCharges: decimal.NewFromInt(50),
	}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.AnythingOfType("domain.Booking"), domain.BookingCheckedIn, mock.AnythingOfType("*domain.Sale")).Return(nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, updaterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.BookingCheckedOut, result.Booking.Status)
	// balance = (200 + 50) - 80
	suite.Require().NotNil(result.BalanceDue)
	suite.True(result.BalanceDue.Equal(decimal.NewFromInt(170)))
	suite.Require().NotNil(result.Sale)
	suite.True(result.Sale.Amount.Equal(decimal.NewFromInt(250)))
	suite.Equal(domain.PaymentCash, result.Sale.PaymentMethod)
	suite.Equal(booking.BookingID, result.Sale.BookingID)
	suite.Equal(updaterID, result.Sale.CreatedBy)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_CheckoutExplicitPaymentMethod() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	booking.Status = domain.BookingCheckedIn
	method := domain.PaymentCard
	req := dto.UpdateBookingStatusRequest{
		Status:        domain.BookingCheckedOut,
		PaymentMethod: &method,
	}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.AnythingOfType("domain.Booking"), domain.BookingCheckedIn, mock.AnythingOfType("*domain.Sale")).Return(nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Sale)
	suite.Equal(domain.PaymentCard, result.Sale.PaymentMethod)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_CheckoutOverpaymentKeepsSign() {
	ctx := context.Background()
	booking := suite.confirmedBooking(100, 150)
	booking.Status = domain.BookingCheckedIn
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCheckedOut}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.AnythingOfType("domain.Booking"), domain.BookingCheckedIn, mock.AnythingOfType("*domain.Sale")).Return(nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(result.BalanceDue)
	suite.True(result.BalanceDue.Equal(decimal.NewFromInt(-50)))
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_CancelRetainsAdvance() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 75)
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCancelled}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.Status == domain.BookingCancelled && b.AdvancePayment.Equal(decimal.NewFromInt(75))
	}), domain.BookingConfirmed, (*domain.Sale)(nil)).Return(nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(result.BalanceDue)
	suite.Nil(result.Sale)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_TerminalStatusRejected() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	booking.Status = domain.BookingCheckedOut
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCancelled}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "ApplyStatusTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_UnreachableTransitionRejected() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCheckedOut}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "ApplyStatusTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_NegativeChargesRejected() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	booking.Status = domain.BookingCheckedIn
	req := dto.UpdateBookingStatusRequest{
		Status:            domain.BookingCheckedOut,
		AdditionalCharges: decimal.NewFromInt(-5),
	}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_NegativeAdvanceReceivedRejected() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	req := dto.UpdateBookingStatusRequest{
		Status:                 domain.BookingCheckedIn,
		AdvancePaymentReceived: decimal.NewFromInt(-1),
	}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_NilNotesLeavesStoredNotes() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCheckedIn}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.AnythingOfType("domain.Booking"), domain.BookingConfirmed, (*domain.Sale)(nil)).Return(nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("early arrival", result.Booking.Notes)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_NotesOverwritten() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	notes := "late checkout approved"
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCheckedIn, Notes: &notes}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.AnythingOfType("domain.Booking"), domain.BookingConfirmed, (*domain.Sale)(nil)).Return(nil).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(notes, result.Booking.Notes)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_ConcurrentTransitionConflict() {
	ctx := context.Background()
	booking := suite.confirmedBooking(200, 0)
	booking.Status = domain.BookingCheckedIn
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCheckedOut}

	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("ApplyStatusTransition", ctx, mock.AnythingOfType("domain.Booking"), domain.BookingCheckedIn, mock.AnythingOfType("*domain.Sale")).Return(apperrors.ErrConflict).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, booking.BookingID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_BookingNotFound() {
	ctx := context.Background()
	bookingID := uuid.NewString()
	req := dto.UpdateBookingStatusRequest{Status: domain.BookingCheckedIn}

	suite.mockBookingRepo.On("FindBookingByID", ctx, bookingID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.UpdateBookingStatus(ctx, bookingID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListBookings Tests ---

func (suite *BookingServiceTestSuite) TestListBookings_Empty() {
	ctx := context.Background()

	suite.mockBookingRepo.On("ListBookingsWithDetails", ctx).Return(nil, nil).Once()

	bookings, err := suite.service.ListBookings(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(bookings)
	suite.Empty(bookings)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestListBookings_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockBookingRepo.On("ListBookingsWithDetails", ctx).Return(nil, expectedErr).Once()

	bookings, err := suite.service.ListBookings(ctx)

	suite.Require().Error(err)
	suite.Nil(bookings)
	suite.ErrorIs(err, expectedErr)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestBookingService(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

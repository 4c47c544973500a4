package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
	"github.com/hoteldesk/hms_backend/internal/handlers"
	"github.com/hoteldesk/hms_backend/internal/middleware"
	"github.com/hoteldesk/hms_backend/internal/utils"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorID string) (*domain.Booking, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.BookingWithDetails, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingWithDetails), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context) ([]domain.BookingWithDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingWithDetails), args.Error(1)
}

func (m *MockBookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req dto.UpdateBookingStatusRequest, updaterID string) (*domain.BookingTransition, error) {
	args := m.Called(ctx, bookingID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingTransition), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Test Suite ---
type BookingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBookingService *MockBookingService
	jwtSecret          string
}

func (suite *BookingHandlerTestSuite) generateTestToken(adminID string) string {
	token, err := utils.GenerateJWT(adminID, suite.jwtSecret, time.Hour, "hms-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockBookingService = new(MockBookingService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterBookingRoutes(v1, suite.mockBookingService)
}

func (suite *BookingHandlerTestSuite) doJSON(method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BookingHandlerTestSuite) TestCreateBooking_Success() {
	adminID := uuid.NewString()
	reqBody := dto.CreateBookingRequest{
		RoomID:         uuid.NewString(),
		GuestID:        uuid.NewString(),
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-03",
		GuestsCount:    2,
		AdvancePayment: decimal.NewFromInt(50),
	}
	created := &domain.Booking{
		BookingID:      uuid.NewString(),
		RoomID:         reqBody.RoomID,
		GuestID:        reqBody.GuestID,
		CheckIn:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		GuestsCount:    2,
		TotalAmount:    decimal.NewFromInt(240),
		AdvancePayment: decimal.NewFromInt(50),
		Status:         domain.BookingConfirmed,
	}

	suite.mockBookingService.On("CreateBooking", mock.Anything, mock.AnythingOfType("dto.CreateBookingRequest"), adminID).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/bookings", suite.generateTestToken(adminID), reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.BookingID, resp.BookingID)
	suite.Equal("2025-06-01", resp.CheckIn)
	suite.Equal(domain.BookingConfirmed, resp.Status)
	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_Unauthorized() {
	reqBody := dto.CreateBookingRequest{
		RoomID:   uuid.NewString(),
		GuestID:  uuid.NewString(),
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	}

	w := suite.doJSON(http.MethodPost, "/api/v1/bookings", "", reqBody)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_ValidationError() {
	adminID := uuid.NewString()
	reqBody := dto.CreateBookingRequest{
		RoomID:   uuid.NewString(),
		GuestID:  uuid.NewString(),
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	}

	suite.mockBookingService.On("CreateBooking", mock.Anything, mock.AnythingOfType("dto.CreateBookingRequest"), adminID).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/bookings", suite.generateTestToken(adminID), reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestUpdateBookingStatus_CheckoutReturnsBalance() {
	adminID := uuid.NewString()
	bookingID := uuid.NewString()
	balance := decimal.NewFromInt(170)
	transition := &domain.BookingTransition{
		Booking: domain.Booking{
			BookingID:      bookingID,
			CheckIn:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			TotalAmount:    decimal.NewFromInt(200),
			AdvancePayment: decimal.NewFromInt(80),
			Status:         domain.BookingCheckedOut,
		},
		BalanceDue: &balance,
	}
	reqBody := dto.UpdateBookingStatusRequest{
		Status:            domain.BookingCheckedOut,
		AdditionalCharges: decimal.NewFromInt(50),
	}

	suite.mockBookingService.On("UpdateBookingStatus", mock.Anything, bookingID, mock.AnythingOfType("dto.UpdateBookingStatusRequest"), adminID).
		Return(transition, nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/bookings/"+bookingID+"/status", suite.generateTestToken(adminID), reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BookingStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.BookingCheckedOut, resp.Status)
	suite.Require().NotNil(resp.BalanceDue)
	suite.True(resp.BalanceDue.Equal(balance))
	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestUpdateBookingStatus_Conflict() {
	adminID := uuid.NewString()
	bookingID := uuid.NewString()
	reqBody := dto.UpdateBookingStatusRequest{Status: domain.BookingCheckedIn}

	suite.mockBookingService.On("UpdateBookingStatus", mock.Anything, bookingID, mock.AnythingOfType("dto.UpdateBookingStatusRequest"), adminID).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/bookings/"+bookingID+"/status", suite.generateTestToken(adminID), reqBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestUpdateBookingStatus_InvalidStatusValue() {
	adminID := uuid.NewString()
	bookingID := uuid.NewString()
	// "pending" is not part of the lifecycle, binding rejects it
	body := map[string]string{"status": "pending"}

	w := suite.doJSON(http.MethodPut, "/api/v1/bookings/"+bookingID+"/status", suite.generateTestToken(adminID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingHandlerTestSuite) TestGetBookingByID_NotFound() {
	adminID := uuid.NewString()
	bookingID := uuid.NewString()

	suite.mockBookingService.On("GetBookingByID", mock.Anything, bookingID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/bookings/"+bookingID, suite.generateTestToken(adminID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestListBookings_Success() {
	adminID := uuid.NewString()
	bookings := []domain.BookingWithDetails{
		{
			Booking: domain.Booking{
				BookingID: uuid.NewString(),
				CheckIn:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				CheckOut:  time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
				Status:    domain.BookingConfirmed,
			},
			RoomNumber: "101",
			GuestName:  "Alice Smith",
		},
	}

	suite.mockBookingService.On("ListBookings", mock.Anything).Return(bookings, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/bookings", suite.generateTestToken(adminID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBookingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Bookings, 1)
	suite.Equal("101", resp.Bookings[0].RoomNumber)
	suite.Equal("Alice Smith", resp.Bookings[0].GuestName)
	suite.mockBookingService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestBookingHandler(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

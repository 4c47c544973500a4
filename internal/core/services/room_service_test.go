package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	"github.com/hoteldesk/hms_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/core/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
)

// --- Mock RoomRepository (reader + writer) ---
type MockRoomRepository struct {
	MockRoomReader
}

func (m *MockRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

// --- Test Suite ---
type RoomServiceTestSuite struct {
	suite.Suite
	mockRoomRepo *MockRoomRepository
	service      portssvc.RoomSvcFacade
}

func (suite *RoomServiceTestSuite) SetupTest() {
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.service = services.NewRoomService(suite.mockRoomRepo)
}

func (suite *RoomServiceTestSuite) TestCreateRoom_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateRoomRequest{
		RoomNumber:    "101",
		RoomType:      domain.RoomDouble,
		PricePerNight: decimal.NewFromInt(120),
		Amenities:     []string{"wifi", "tv"},
		MaxOccupancy:  3,
		Description:   "Garden view",
	}

	suite.mockRoomRepo.On("SaveRoom", ctx, mock.MatchedBy(func(r domain.Room) bool {
		return r.RoomNumber == "101" && r.Status == domain.RoomAvailable
	})).Return(nil).Once()

	room, err := suite.service.CreateRoom(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(room)
	suite.NotEmpty(room.RoomID)
	suite.Equal(domain.RoomAvailable, room.Status)
	suite.Equal(creatorID, room.CreatedBy)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *RoomServiceTestSuite) TestCreateRoom_NilAmenitiesBecomesEmpty() {
	ctx := context.Background()
	req := dto.CreateRoomRequest{
		RoomNumber:    "102",
		RoomType:      domain.RoomSingle,
		PricePerNight: decimal.NewFromInt(80),
		MaxOccupancy:  1,
	}

	suite.mockRoomRepo.On("SaveRoom", ctx, mock.AnythingOfType("domain.Room")).Return(nil).Once()

	room, err := suite.service.CreateRoom(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(room.Amenities)
	suite.Empty(room.Amenities)
}

func (suite *RoomServiceTestSuite) TestCreateRoom_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateRoomRequest{
		RoomNumber:    "103",
		RoomType:      domain.RoomSingle,
		PricePerNight: decimal.NewFromInt(-1),
		MaxOccupancy:  1,
	}

	room, err := suite.service.CreateRoom(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "SaveRoom", mock.Anything, mock.Anything)
}

func (suite *RoomServiceTestSuite) TestCreateRoom_DuplicateRoomNumber() {
	ctx := context.Background()
	req := dto.CreateRoomRequest{
		RoomNumber:    "101",
		RoomType:      domain.RoomDouble,
		PricePerNight: decimal.NewFromInt(120),
		MaxOccupancy:  2,
	}

	suite.mockRoomRepo.On("SaveRoom", ctx, mock.AnythingOfType("domain.Room")).Return(apperrors.ErrDuplicate).Once()

	room, err := suite.service.CreateRoom(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_PartialPatch() {
	ctx := context.Background()
	roomID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Room{
		RoomID:        roomID,
		RoomNumber:    "201",
		RoomType:      domain.RoomSuite,
		PricePerNight: decimal.NewFromInt(300),
		Status:        domain.RoomAvailable,
		MaxOccupancy:  4,
	}
	newStatus := domain.RoomMaintenance
	req := dto.UpdateRoomRequest{Status: &newStatus}

	suite.mockRoomRepo.On("FindRoomByID", ctx, roomID).Return(existing, nil).Once()
	suite.mockRoomRepo.On("UpdateRoom", ctx, mock.MatchedBy(func(r domain.Room) bool {
		// Only the status changes; everything else keeps its stored value
		return r.Status == domain.RoomMaintenance && r.RoomNumber == "201" && r.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	room, err := suite.service.UpdateRoom(ctx, roomID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoomMaintenance, room.Status)
	suite.Equal("201", room.RoomNumber)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_NegativePriceRejected() {
	ctx := context.Background()
	roomID := uuid.NewString()
	existing := &domain.Room{RoomID: roomID, PricePerNight: decimal.NewFromInt(100)}
	badPrice := decimal.NewFromInt(-50)
	req := dto.UpdateRoomRequest{PricePerNight: &badPrice}

	suite.mockRoomRepo.On("FindRoomByID", ctx, roomID).Return(existing, nil).Once()

	room, err := suite.service.UpdateRoom(ctx, roomID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "UpdateRoom", mock.Anything, mock.Anything)
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_NotFound() {
	ctx := context.Background()
	roomID := uuid.NewString()

	suite.mockRoomRepo.On("FindRoomByID", ctx, roomID).Return(nil, apperrors.ErrNotFound).Once()

	room, err := suite.service.UpdateRoom(ctx, roomID, dto.UpdateRoomRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RoomServiceTestSuite) TestFindAvailableRooms_Success() {
	ctx := context.Background()
	roomType := domain.RoomDouble
	req := dto.AvailabilityRequest{CheckIn: "2025-06-01", CheckOut: "2025-06-03", RoomType: &roomType}
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	expected := []domain.Room{{RoomID: uuid.NewString(), RoomNumber: "101"}}

	suite.mockRoomRepo.On("FindAvailableRooms", ctx, checkIn, checkOut, &roomType).Return(expected, nil).Once()

	rooms, err := suite.service.FindAvailableRooms(ctx, req)

	suite.Require().NoError(err)
	suite.Len(rooms, 1)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *RoomServiceTestSuite) TestFindAvailableRooms_InvalidRange() {
	ctx := context.Background()
	req := dto.AvailabilityRequest{CheckIn: "2025-06-03", CheckOut: "2025-06-03"}

	rooms, err := suite.service.FindAvailableRooms(ctx, req)

	suite.Require().Error(err)
	suite.Nil(rooms)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "FindAvailableRooms", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoomServiceTestSuite) TestFindAvailableRooms_NilResultBecomesEmpty() {
	ctx := context.Background()
	req := dto.AvailabilityRequest{CheckIn: "2025-06-01", CheckOut: "2025-06-02"}

	suite.mockRoomRepo.On("FindAvailableRooms", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), (*domain.RoomType)(nil)).Return(nil, nil).Once()

	rooms, err := suite.service.FindAvailableRooms(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(rooms)
	suite.Empty(rooms)
}

func (suite *RoomServiceTestSuite) TestDeleteRoom_Success() {
	ctx := context.Background()
	roomID := uuid.NewString()

	suite.mockRoomRepo.On("DeleteRoom", ctx, roomID).Return(nil).Once()

	err := suite.service.DeleteRoom(ctx, roomID)

	suite.Require().NoError(err)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *RoomServiceTestSuite) TestDeleteRoom_NotFound() {
	ctx := context.Background()
	roomID := uuid.NewString()

	suite.mockRoomRepo.On("DeleteRoom", ctx, roomID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRoom(ctx, roomID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestRoomService(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}

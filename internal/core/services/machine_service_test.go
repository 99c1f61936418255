package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KilauLaundry/laundry_pos_app/internal/apperrors"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/core/services"
)

// --- Mock MachineRepository ---
type MockMachineRepository struct {
	mock.Mock
}

func (m *MockMachineRepository) FindMachineByID(ctx context.Context, machineID string) (*domain.Machine, error) {
	args := m.Called(ctx, machineID)
	var machine *domain.Machine
	if args.Get(0) != nil {
		machine = args.Get(0).(*domain.Machine)
	}
	return machine, args.Error(1)
}

func (m *MockMachineRepository) ListMachinesByBranch(ctx context.Context, branchID string) ([]domain.Machine, error) {
	args := m.Called(ctx, branchID)
	var machines []domain.Machine
	if args.Get(0) != nil {
		machines = args.Get(0).([]domain.Machine)
	}
	return machines, args.Error(1)
}

func (m *MockMachineRepository) UpdateMachineStatus(ctx context.Context, machineID string, status domain.MachineStatus, updatedBy string, updatedAt time.Time) (*domain.Machine, error) {
	args := m.Called(ctx, machineID, status, updatedBy, updatedAt)
	var machine *domain.Machine
	if args.Get(0) != nil {
		machine = args.Get(0).(*domain.Machine)
	}
	return machine, args.Error(1)
}

// --- Test Suite ---
type MachineServiceTestSuite struct {
	suite.Suite
	mockMachineRepo *MockMachineRepository
	service         portssvc.MachineSvcFacade
}

func (suite *MachineServiceTestSuite) SetupTest() {
	suite.mockMachineRepo = new(MockMachineRepository)
	suite.service = services.NewMachineService(suite.mockMachineRepo)
}

func (suite *MachineServiceTestSuite) TestSetStatus_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	machine := &domain.Machine{MachineID: uuid.NewString(), Status: domain.MachineInUse}

	suite.mockMachineRepo.On("UpdateMachineStatus", ctx, machine.MachineID, domain.MachineInUse, actorID, mock.AnythingOfType("time.Time")).
		Return(machine, nil).Once()

	result, err := suite.service.SetStatus(ctx, machine.MachineID, domain.MachineInUse, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.MachineInUse, result.Status)
	suite.mockMachineRepo.AssertExpectations(suite.T())
}

func (suite *MachineServiceTestSuite) TestSetStatus_InvalidStatus() {
	ctx := context.Background()

	_, err := suite.service.SetStatus(ctx, uuid.NewString(), domain.MachineStatus("EXPLODED"), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMachineRepo.AssertNotCalled(suite.T(), "UpdateMachineStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MachineServiceTestSuite) TestBulkSetAvailable_AllSucceed() {
	ctx := context.Background()
	branchID := uuid.NewString()
	actorID := uuid.NewString()
	machines := []domain.Machine{
		{MachineID: uuid.NewString(), BranchID: branchID},
		{MachineID: uuid.NewString(), BranchID: branchID},
		{MachineID: uuid.NewString(), BranchID: branchID},
	}

	suite.mockMachineRepo.On("ListMachinesByBranch", ctx, branchID).Return(machines, nil).Once()
	for i := range machines {
		suite.mockMachineRepo.On("UpdateMachineStatus", ctx, machines[i].MachineID, domain.MachineAvailable, actorID, mock.AnythingOfType("time.Time")).
			Return(&machines[i], nil).Once()
	}

	result, err := suite.service.BulkSetAvailable(ctx, branchID, actorID)

	suite.Require().NoError(err)
	suite.Equal(3, result.Updated)
	suite.Equal(0, result.Failed)
	suite.mockMachineRepo.AssertExpectations(suite.T())
}

func (suite *MachineServiceTestSuite) TestBulkSetAvailable_PartialFailure() {
	ctx := context.Background()
	branchID := uuid.NewString()
	actorID := uuid.NewString()
	machines := []domain.Machine{
		{MachineID: uuid.NewString(), BranchID: branchID},
		{MachineID: uuid.NewString(), BranchID: branchID},
		{MachineID: uuid.NewString(), BranchID: branchID},
	}

	suite.mockMachineRepo.On("ListMachinesByBranch", ctx, branchID).Return(machines, nil).Once()
	suite.mockMachineRepo.On("UpdateMachineStatus", ctx, machines[0].MachineID, domain.MachineAvailable, actorID, mock.AnythingOfType("time.Time")).
		Return(&machines[0], nil).Once()
	// The middle row fails; the loop must keep going.
	suite.mockMachineRepo.On("UpdateMachineStatus", ctx, machines[1].MachineID, domain.MachineAvailable, actorID, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()
	suite.mockMachineRepo.On("UpdateMachineStatus", ctx, machines[2].MachineID, domain.MachineAvailable, actorID, mock.AnythingOfType("time.Time")).
		Return(&machines[2], nil).Once()

	result, err := suite.service.BulkSetAvailable(ctx, branchID, actorID)

	suite.Require().NoError(err)
	suite.Equal(2, result.Updated)
	suite.Equal(1, result.Failed)
	suite.Equal(len(machines), result.Updated+result.Failed)
	suite.mockMachineRepo.AssertExpectations(suite.T())
}

func (suite *MachineServiceTestSuite) TestBulkSetAvailable_ListError() {
	ctx := context.Background()
	branchID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockMachineRepo.On("ListMachinesByBranch", ctx, branchID).Return(nil, expectedErr).Once()

	_, err := suite.service.BulkSetAvailable(ctx, branchID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestMachineService(t *testing.T) {
	suite.Run(t, new(MachineServiceTestSuite))
}

package services

import (
	"context"
	"errors"
	"testing"

	"breakfastpos/internal/common"
	"breakfastpos/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdminOrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockOrderRepository
	mockNotifier  *MockCustomerNotifier
	service       AdminOrderService
	ctx           context.Context
}

func (suite *AdminOrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = &MockOrderRepository{}
	suite.mockNotifier = &MockCustomerNotifier{}
	suite.service = NewAdminOrderService(suite.mockOrderRepo, suite.mockNotifier)
	suite.ctx = context.Background()
}

func (suite *AdminOrderServiceTestSuite) TearDownTest() {
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func TestAdminOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminOrderServiceTestSuite))
}

func (suite *AdminOrderServiceTestSuite) pendingOrder() *models.Order {
	return &models.Order{
		ID:     uuid.New(),
		Status: models.OrderStatusPending,
		Type:   models.OrderTypeDineIn,
	}
}

func (suite *AdminOrderServiceTestSuite) TestUpdateStatus_PendingToPreparingNotifies() {
	order := suite.pendingOrder()

	suite.mockOrderRepo.On("FindByID", suite.ctx, order.ID).Return(order, nil)
	suite.mockOrderRepo.On("UpdateStatus", suite.ctx, order.ID, models.OrderStatusPreparing).Return(nil)
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)

	updated, err := suite.service.UpdateStatus(suite.ctx, order.ID, "PREPARING")

	suite.NoError(err)
	suite.Equal(models.OrderStatusPreparing, updated.Status)
}

func (suite *AdminOrderServiceTestSuite) TestUpdateStatus_CancelFromPending() {
	order := suite.pendingOrder()

	suite.mockOrderRepo.On("FindByID", suite.ctx, order.ID).Return(order, nil)
	suite.mockOrderRepo.On("UpdateStatus", suite.ctx, order.ID, models.OrderStatusCancelled).Return(nil)
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.Anything).Return(nil)

	updated, err := suite.service.UpdateStatus(suite.ctx, order.ID, "CANCELLED")

	suite.NoError(err)
	suite.Equal(models.OrderStatusCancelled, updated.Status)
}

func (suite *AdminOrderServiceTestSuite) TestUpdateStatus_StaffMaySkipStages() {
	// The counter is trusted to set any valid status, including jumping
	// straight from PENDING to COMPLETED.
	order := suite.pendingOrder()

	suite.mockOrderRepo.On("FindByID", suite.ctx, order.ID).Return(order, nil)
	suite.mockOrderRepo.On("UpdateStatus", suite.ctx, order.ID, models.OrderStatusCompleted).Return(nil)
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.Anything).Return(nil)

	updated, err := suite.service.UpdateStatus(suite.ctx, order.ID, "COMPLETED")

	suite.NoError(err)
	suite.Equal(models.OrderStatusCompleted, updated.Status)
}

func (suite *AdminOrderServiceTestSuite) TestUpdateStatus_InvalidStatusRejected() {
	updated, err := suite.service.UpdateStatus(suite.ctx, uuid.New(), "REFUNDED")

	suite.Nil(updated)
	suite.Equal(common.KindInvalidRequest, common.KindOf(err))
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateStatus")
}

func (suite *AdminOrderServiceTestSuite) TestUpdateStatus_UnknownOrderNotFound() {
	id := uuid.New()
	suite.mockOrderRepo.On("FindByID", suite.ctx, id).Return(nil, nil)

	updated, err := suite.service.UpdateStatus(suite.ctx, id, "SERVED")

	suite.Nil(updated)
	suite.Equal(common.KindNotFound, common.KindOf(err))
}

func (suite *AdminOrderServiceTestSuite) TestUpdateStatus_NotifierFailureDoesNotFailUpdate() {
	order := suite.pendingOrder()

	suite.mockOrderRepo.On("FindByID", suite.ctx, order.ID).Return(order, nil)
	suite.mockOrderRepo.On("UpdateStatus", suite.ctx, order.ID, models.OrderStatusServed).Return(nil)
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.Anything).Return(errors.New("push gateway down"))

	updated, err := suite.service.UpdateStatus(suite.ctx, order.ID, "SERVED")

	suite.NoError(err)
	suite.Equal(models.OrderStatusServed, updated.Status)
}

func (suite *AdminOrderServiceTestSuite) TestGetOrder_UnknownOrderNotFound() {
	id := uuid.New()
	suite.mockOrderRepo.On("FindByID", suite.ctx, id).Return(nil, nil)

	order, err := suite.service.GetOrder(suite.ctx, id)

	suite.Nil(order)
	suite.Equal(common.KindNotFound, common.KindOf(err))
}

func (suite *AdminOrderServiceTestSuite) TestListOrders_ClampsPagination() {
	suite.mockOrderRepo.On("List", suite.ctx, 20, 0).Return([]*models.Order{}, nil)

	orders, err := suite.service.ListOrders(suite.ctx, 0, -5)

	suite.NoError(err)
	suite.Empty(orders)
}

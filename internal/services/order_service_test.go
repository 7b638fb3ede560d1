package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"breakfastpos/internal/common"
	"breakfastpos/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// Mock repositories and collaborators

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.Order, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) SumTotalAmountBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockOrderRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) TopSellingProducts(ctx context.Context, limit int) ([]*models.TopProduct, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.TopProduct), args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type MockReceiptPrinter struct {
	mock.Mock
}

func (m *MockReceiptPrinter) PrintReceipt(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockCustomerNotifier struct {
	mock.Mock
}

func (m *MockCustomerNotifier) NotifyStatusChange(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// OrderServiceTestSuite defines the checkout engine test suite
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockOrderRepository
	mockCatalog   *MockCatalog
	mockPrinter   *MockReceiptPrinter
	mockNotifier  *MockCustomerNotifier
	service       OrderService
	ctx           context.Context
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = &MockOrderRepository{}
	suite.mockCatalog = &MockCatalog{}
	suite.mockPrinter = &MockReceiptPrinter{}
	suite.mockNotifier = &MockCustomerNotifier{}
	suite.service = NewOrderService(suite.mockOrderRepo, suite.mockCatalog, suite.mockPrinter, suite.mockNotifier)
	suite.ctx = context.Background()
}

func (suite *OrderServiceTestSuite) TearDownTest() {
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockCatalog.AssertExpectations(suite.T())
	suite.mockPrinter.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (suite *OrderServiceTestSuite) availableProduct(name, price string) *models.Product {
	return &models.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: true,
	}
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_Success() {
	burger := suite.availableProduct("起司蛋堡", "45.00")

	suite.mockCatalog.On("GetProduct", suite.ctx, burger.ID).Return(burger, nil)
	suite.mockOrderRepo.On("Save", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)
	suite.mockPrinter.On("PrintReceipt", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "TAKEAWAY",
		Items: []CartLine{{ProductID: burger.ID, Quantity: 2}},
	})

	suite.NoError(err)
	suite.Equal(models.OrderStatusPending, order.Status)
	suite.Equal(models.OrderTypeTakeaway, order.Type)
	suite.True(order.TotalAmount.Equal(decimal.RequireFromString("90.00")),
		"expected 90.00, got %s", order.TotalAmount)
	suite.Len(order.Items, 1)
	suite.Equal("起司蛋堡", order.Items[0].ProductName)
	suite.True(order.Items[0].Subtotal.Equal(decimal.RequireFromString("90.00")))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_MultipleLinesSumExactly() {
	burger := suite.availableProduct("卡啦雞腿堡", "65")
	eggcrepe := suite.availableProduct("玉米蛋餅", "35")

	suite.mockCatalog.On("GetProduct", suite.ctx, burger.ID).Return(burger, nil)
	suite.mockCatalog.On("GetProduct", suite.ctx, eggcrepe.ID).Return(eggcrepe, nil)
	suite.mockOrderRepo.On("Save", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)
	suite.mockPrinter.On("PrintReceipt", suite.ctx, mock.Anything).Return(nil)
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.Anything).Return(nil)

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type: "DINE_IN",
		Items: []CartLine{
			{ProductID: burger.ID, Quantity: 1},
			{ProductID: eggcrepe.ID, Quantity: 3},
		},
	})

	suite.NoError(err)
	suite.True(order.TotalAmount.Equal(decimal.RequireFromString("170")))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_EmptyCartRejected() {
	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "DINE_IN",
		Items: nil,
	})

	suite.Nil(order)
	suite.Equal(common.KindInvalidRequest, common.KindOf(err))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_ZeroQuantityRejected() {
	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "DINE_IN",
		Items: []CartLine{{ProductID: uuid.New(), Quantity: 0}},
	})

	suite.Nil(order)
	suite.Equal(common.KindInvalidRequest, common.KindOf(err))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_UnknownTypeRejected() {
	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "DELIVERY",
		Items: []CartLine{{ProductID: uuid.New(), Quantity: 1}},
	})

	suite.Nil(order)
	suite.Equal(common.KindInvalidRequest, common.KindOf(err))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_UnknownProductNotFound() {
	productID := uuid.New()
	suite.mockCatalog.On("GetProduct", suite.ctx, productID).Return(nil, nil)

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "TAKEAWAY",
		Items: []CartLine{{ProductID: productID, Quantity: 1}},
	})

	suite.Nil(order)
	suite.Equal(common.KindNotFound, common.KindOf(err))
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Save")
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_UnavailableProductConflict() {
	soldOut := suite.availableProduct("大冰奶", "25")
	soldOut.Available = false
	suite.mockCatalog.On("GetProduct", suite.ctx, soldOut.ID).Return(soldOut, nil)

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "TAKEAWAY",
		Items: []CartLine{{ProductID: soldOut.ID, Quantity: 1}},
	})

	suite.Nil(order)
	suite.Equal(common.KindConflict, common.KindOf(err))
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Save")
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_IdempotentReplayReturnsExistingOrder() {
	key := "client-key-123"
	existing := &models.Order{
		ID:          uuid.New(),
		Status:      models.OrderStatusPreparing,
		Type:        models.OrderTypeDineIn,
		TotalAmount: decimal.RequireFromString("90.00"),
	}
	suite.mockOrderRepo.On("FindByIdempotencyKey", suite.ctx, key).Return(existing, nil)

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:           "DINE_IN",
		IdempotencyKey: &key,
		Items:          []CartLine{{ProductID: uuid.New(), Quantity: 2}},
	})

	suite.NoError(err)
	suite.Equal(existing.ID, order.ID)
	suite.Equal(models.OrderStatusPreparing, order.Status)
	// Replay must not touch the catalog or persist anything new.
	suite.mockCatalog.AssertNotCalled(suite.T(), "GetProduct")
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "Save")
	suite.mockPrinter.AssertNotCalled(suite.T(), "PrintReceipt")
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_LostIdempotencyRaceReturnsWinner() {
	key := "race-key"
	burger := suite.availableProduct("起司蛋堡", "45")
	winner := &models.Order{
		ID:          uuid.New(),
		Status:      models.OrderStatusPending,
		Type:        models.OrderTypeTakeaway,
		TotalAmount: decimal.RequireFromString("45"),
	}

	uniqueViolation := &pgconn.PgError{Code: "23505", ConstraintName: "uk_orders_idempotency_key"}

	// First lookup misses, the insert collides, the re-fetch finds the winner.
	suite.mockOrderRepo.On("FindByIdempotencyKey", suite.ctx, key).Return(nil, nil).Once()
	suite.mockCatalog.On("GetProduct", suite.ctx, burger.ID).Return(burger, nil)
	suite.mockOrderRepo.On("Save", suite.ctx, mock.AnythingOfType("*models.Order")).Return(uniqueViolation)
	suite.mockOrderRepo.On("FindByIdempotencyKey", suite.ctx, key).Return(winner, nil).Once()

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:           "TAKEAWAY",
		IdempotencyKey: &key,
		Items:          []CartLine{{ProductID: burger.ID, Quantity: 1}},
	})

	suite.NoError(err)
	suite.Equal(winner.ID, order.ID)
	suite.mockPrinter.AssertNotCalled(suite.T(), "PrintReceipt")
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_SaveFailureSurfacesInternal() {
	burger := suite.availableProduct("起司蛋堡", "45")
	suite.mockCatalog.On("GetProduct", suite.ctx, burger.ID).Return(burger, nil)
	suite.mockOrderRepo.On("Save", suite.ctx, mock.Anything).Return(errors.New("connection reset"))

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "TAKEAWAY",
		Items: []CartLine{{ProductID: burger.ID, Quantity: 1}},
	})

	suite.Nil(order)
	suite.Equal(common.KindInternal, common.KindOf(err))
	suite.mockPrinter.AssertNotCalled(suite.T(), "PrintReceipt")
	suite.mockNotifier.AssertNotCalled(suite.T(), "NotifyStatusChange")
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_SideEffectFailuresDoNotFailCheckout() {
	burger := suite.availableProduct("起司蛋堡", "45")
	suite.mockCatalog.On("GetProduct", suite.ctx, burger.ID).Return(burger, nil)
	suite.mockOrderRepo.On("Save", suite.ctx, mock.Anything).Return(nil)
	suite.mockPrinter.On("PrintReceipt", suite.ctx, mock.Anything).Return(errors.New("printer offline"))
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.Anything).Return(errors.New("push gateway down"))

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "TAKEAWAY",
		Items: []CartLine{{ProductID: burger.ID, Quantity: 1}},
	})

	suite.NoError(err)
	suite.NotNil(order)
	suite.True(order.TotalAmount.Equal(decimal.RequireFromString("45")))
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_PriceSnapshotIndependentOfLaterEdits() {
	coffee := suite.availableProduct("研磨咖啡", "45")
	suite.mockCatalog.On("GetProduct", suite.ctx, coffee.ID).Return(coffee, nil)
	suite.mockOrderRepo.On("Save", suite.ctx, mock.Anything).Return(nil)
	suite.mockPrinter.On("PrintReceipt", suite.ctx, mock.Anything).Return(nil)
	suite.mockNotifier.On("NotifyStatusChange", suite.ctx, mock.Anything).Return(nil)

	order, err := suite.service.PlaceOrder(suite.ctx, &CheckoutRequest{
		Type:  "DINE_IN",
		Items: []CartLine{{ProductID: coffee.ID, Quantity: 1}},
	})
	suite.NoError(err)

	// Mutating the catalog product afterwards must not change the order line.
	coffee.Price = decimal.RequireFromString("60")
	suite.True(order.Items[0].UnitPrice.Equal(decimal.RequireFromString("45")))
}

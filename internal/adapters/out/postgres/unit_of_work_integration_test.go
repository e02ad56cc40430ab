package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "pindrop/internal/adapters/out/postgres"
	"pindrop/internal/adapters/out/postgres/cartrepo"
	"pindrop/internal/adapters/out/postgres/catalogrepo"
	"pindrop/internal/adapters/out/postgres/complaintrepo"
	"pindrop/internal/adapters/out/postgres/notifierrepo"
	"pindrop/internal/adapters/out/postgres/offerrepo"
	"pindrop/internal/adapters/out/postgres/orderrepo"
	"pindrop/internal/adapters/out/postgres/partnerrepo"
	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/domain/model/partner"
	"pindrop/internal/core/domain/services"
	"pindrop/internal/core/ports"
	"pindrop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection for
// all tests and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&offerrepo.OfferDTO{},
		&partnerrepo.PartnerDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.DishDTO{},
		&complaintrepo.ComplaintDTO{},
		&notifierrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so each test starts from a clean slate.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE cart_lines, orders, order_lines, offers, delivery_partners," +
			" restaurants, dishes, complaints, notifications RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *UnitOfWorkIntegrationTestSuite) mustMoney(amount float64) kernel.Money {
	m, err := kernel.NewMoneyFromFloat(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *UnitOfWorkIntegrationTestSuite) mustAreaCode(code string) kernel.AreaCode {
	area, err := kernel.NewAreaCode(code)
	suite.Require().NoError(err)
	return area
}

// createTestOrder builds a placed order for customer 1 at restaurant 10.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(placedAt time.Time) *order.Order {
	line, err := order.NewLine(suite.mustID(100), "Paneer Tikka", 2, suite.mustMoney(250))
	suite.Require().NoError(err)

	charges := order.Charges{
		Subtotal: suite.mustMoney(500),
		Discount: kernel.ZeroMoney(),
		Fee:      suite.mustMoney(30),
		Total:    suite.mustMoney(530),
	}

	testOrder, err := order.NewOrder(
		suite.mustID(1), suite.mustID(10), []*order.Line{line}, charges,
		nil, order.PaymentModeCashOnDelivery, 30, placedAt)
	suite.Require().NoError(err)
	return testOrder
}

// createPreparingOrder builds an order already accepted and in preparation,
// ready for the delivery handoff.
func (suite *UnitOfWorkIntegrationTestSuite) createPreparingOrder() *order.Order {
	o := suite.createTestOrder(time.Now().UTC())
	owner, err := order.NewOwnerActor(suite.mustID(10))
	suite.Require().NoError(err)
	suite.Require().NoError(o.Transition(order.StatusAccepted, owner))
	suite.Require().NoError(o.Transition(order.StatusPreparing, owner))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestPartner(userID int64, areaCode string) *partner.DeliveryPartner {
	p, err := partner.NewDeliveryPartner(suite.mustID(userID), suite.mustAreaCode(areaCode))
	suite.Require().NoError(err)
	return p
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated
// instances with access to every repository.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.OfferRepository())
	suite.NotNil(uow1.PartnerRepository())
	suite.NotNil(uow1.CatalogRepository())
	suite.NotNil(uow1.ComplaintRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail without
// an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderRoundTrip verifies an order and its lines survive a
// full persist and reload cycle with identifiers assigned on insert.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.True(testOrder.ID().IsZero(), "New order should have no identifier yet")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.False(testOrder.ID().IsZero(), "Insert should assign the order identifier")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusPlaced, retrieved.Status())
	suite.Require().Len(retrieved.Lines(), 1)
	suite.Equal("Paneer Tikka", retrieved.Lines()[0].DishName())
	suite.Equal(2, retrieved.Lines()[0].Quantity())
	suite.True(retrieved.Charges().Total.IsEqual(suite.mustMoney(530)))
	suite.Nil(retrieved.Partner())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes made
// through multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder(time.Now().UTC())
	testPartner := suite.createTestPartner(300, "560001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.PartnerRepository().Add(ctx, testPartner)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err, "Order should be visible inside the transaction")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = newUow.PartnerRepository().Get(ctx, testPartner.ID())
	suite.Require().Error(err, "Partner should not exist after rollback")
}

// TestUnitOfWork_CartRoundTrip verifies cart lines are inserted, updated and
// deleted according to the aggregate's state.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CartRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	customerCart, err := cart.NewCart(suite.mustID(1))
	suite.Require().NoError(err)
	suite.Require().NoError(customerCart.AddItem(suite.mustID(100), suite.mustID(10), 2))
	suite.Require().NoError(customerCart.AddItem(suite.mustID(101), suite.mustID(10), 1))

	err = uow.CartRepository().Save(ctx, customerCart)
	suite.Require().NoError(err)

	reloaded, err := uow.CartRepository().GetByCustomer(ctx, suite.mustID(1))
	suite.Require().NoError(err)
	suite.Len(reloaded.Lines(), 2)
	suite.Equal(3, reloaded.TotalQuantity())

	// Clearing the cart deletes every persisted line
	reloaded.Clear()
	err = uow.CartRepository().Save(ctx, reloaded)
	suite.Require().NoError(err)

	_, err = uow.CartRepository().GetByCustomer(ctx, suite.mustID(1))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_PartnerClaimWorkflow verifies the area-scoped availability
// query and the claim and release cycle.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartnerClaimWorkflow() {
	ctx := context.Background()

	seedUow := suite.factory.Create()
	inArea := suite.createTestPartner(300, "560001")
	otherArea := suite.createTestPartner(301, "110001")

	err := seedUow.PartnerRepository().Add(ctx, inArea)
	suite.Require().NoError(err)
	err = seedUow.PartnerRepository().Add(ctx, otherArea)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	candidates, err := uow.PartnerRepository().GetAllAvailableInArea(ctx, suite.mustAreaCode("560001"))
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.True(candidates[0].ID().IsEqual(inArea.ID()))

	err = candidates[0].Claim()
	suite.Require().NoError(err)
	err = uow.PartnerRepository().Update(ctx, candidates[0])
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// The claimed partner no longer shows up as available
	newUow := suite.factory.Create()
	candidates, err = newUow.PartnerRepository().GetAllAvailableInArea(ctx, suite.mustAreaCode("560001"))
	suite.Require().NoError(err)
	suite.Empty(candidates)

	// Lookup by user still finds the claimed partner
	claimed, err := newUow.PartnerRepository().GetByUser(ctx, suite.mustID(300))
	suite.Require().NoError(err)
	suite.False(claimed.IsAvailable())
}

// TestUnitOfWork_OrderStatusUpdate verifies status and partner changes are
// persisted while lines and charges stay untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderStatusUpdate() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder(time.Now().UTC())
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	owner, err := order.NewOwnerActor(suite.mustID(10))
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Transition(order.StatusAccepted, owner))

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAccepted, retrieved.Status())
	suite.Len(retrieved.Lines(), 1)
}

// TestUnitOfWork_StaleOrderQuery verifies only old orders still in Placed
// status are returned.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StaleOrderQuery() {
	ctx := context.Background()
	uow := suite.factory.Create()

	staleOrder := suite.createTestOrder(time.Now().UTC().Add(-30 * time.Minute))
	freshOrder := suite.createTestOrder(time.Now().UTC())
	acceptedOrder := suite.createTestOrder(time.Now().UTC().Add(-30 * time.Minute))

	err := uow.OrderRepository().Add(ctx, staleOrder)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, freshOrder)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, acceptedOrder)
	suite.Require().NoError(err)

	owner, err := order.NewOwnerActor(suite.mustID(10))
	suite.Require().NoError(err)
	suite.Require().NoError(acceptedOrder.Transition(order.StatusAccepted, owner))
	err = uow.OrderRepository().Update(ctx, acceptedOrder)
	suite.Require().NoError(err)

	cutoff := time.Now().UTC().Add(-10 * time.Minute)
	staleOrders, err := uow.OrderRepository().GetAllPlacedBefore(ctx, cutoff)
	suite.Require().NoError(err)

	suite.Require().Len(staleOrders, 1)
	suite.True(staleOrders[0].ID().IsEqual(staleOrder.ID()))
}

// TestUnitOfWork_OfferRoundTrip verifies offers persist their scope and
// active flag.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OfferRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOffer, err := offer.NewOffer("10% off everything", 10, suite.mustMoney(200), offer.ScopePlatform, nil)
	suite.Require().NoError(err)

	err = uow.OfferRepository().Add(ctx, testOffer)
	suite.Require().NoError(err)
	suite.False(testOffer.ID().IsZero())

	testOffer.Deactivate()
	err = uow.OfferRepository().Update(ctx, testOffer)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OfferRepository().Get(ctx, testOffer.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
	suite.Equal(offer.ScopePlatform, retrieved.Scope())
	suite.InEpsilon(10.0, retrieved.DiscountPercentage(), 0.0001)
}

// TestUnitOfWork_CatalogReads verifies catalog reads over seeded rows,
// including the batch dish lookup used at checkout.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CatalogReads() {
	ctx := context.Background()

	ownerUserID := int64(900)
	err := suite.db.Create(&catalogrepo.RestaurantDTO{
		ID:          10,
		Name:        "Spice Route",
		AreaCode:    "560001",
		Fee:         decimal.NewFromInt(30),
		Active:      true,
		OwnerUserID: &ownerUserID,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&catalogrepo.DishDTO{
		ID: 100, RestaurantID: 10, Name: "Paneer Tikka", Price: decimal.NewFromInt(250), Available: true,
	}).Error
	suite.Require().NoError(err)

	uow := suite.factory.Create()

	restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, suite.mustID(10))
	suite.Require().NoError(err)
	suite.Equal("Spice Route", restaurant.Name())
	suite.Require().NotNil(restaurant.OwnerID())
	suite.True(restaurant.OwnerID().IsEqual(suite.mustID(900)))

	dishes, err := uow.CatalogRepository().GetDishes(ctx, []kernel.ID{suite.mustID(100)})
	suite.Require().NoError(err)
	suite.Require().Len(dishes, 1)
	suite.True(dishes[0].Price().IsEqual(suite.mustMoney(250)))

	// A missing identifier in the batch fails the whole lookup
	_, err = uow.CatalogRepository().GetDishes(ctx, []kernel.ID{suite.mustID(100), suite.mustID(404)})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_NotificationSink verifies the sink writes outside the unit
// of work and scopes reads to the owning user.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_NotificationSink() {
	ctx := context.Background()
	sink := notifierrepo.NewGormNotificationSink(suite.db)

	err := sink.Notify(ctx, suite.mustID(1), "Your order #5 is now Accepted")
	suite.Require().NoError(err)

	var stored []notifierrepo.NotificationDTO
	err = suite.db.Find(&stored).Error
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
	suite.False(stored[0].IsRead)

	err = sink.MarkRead(ctx, suite.mustID(1), suite.mustID(stored[0].ID))
	suite.Require().NoError(err)

	// Another user cannot mark the notification read
	err = sink.MarkRead(ctx, suite.mustID(2), suite.mustID(stored[0].ID))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_ConcurrentPartnerClaim verifies that two transactions racing
// for the same single available partner end with exactly one claim. The
// availability query skips rows locked by the other transaction, so the loser
// sees no candidates instead of double-claiming.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentPartnerClaim() {
	ctx := context.Background()

	seedUow := suite.factory.Create()
	orderA := suite.createPreparingOrder()
	orderB := suite.createPreparingOrder()
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, orderA))
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, orderB))
	suite.Require().NoError(seedUow.PartnerRepository().Add(ctx, suite.createTestPartner(300, "560001")))

	claim := func(orderID kernel.ID) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() { _ = uow.Rollback(ctx) }()

		o, err := uow.OrderRepository().Get(ctx, orderID)
		if err != nil {
			return err
		}

		candidates, err := uow.PartnerRepository().GetAllAvailableInArea(ctx, suite.mustAreaCode("560001"))
		if err != nil {
			return err
		}

		claimed, err := services.NewPartnerMatcher().Match(o, candidates)
		if err != nil {
			return err
		}

		if err = uow.PartnerRepository().Update(ctx, claimed); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	start := make(chan struct{})
	results := make(chan error, 2)
	for _, id := range []kernel.ID{orderA.ID(), orderB.ID()} {
		go func(orderID kernel.ID) {
			<-start
			results <- claim(orderID)
		}(id)
	}
	close(start)

	wins := 0
	var losses []error
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			losses = append(losses, err)
		} else {
			wins++
		}
	}

	suite.Equal(1, wins, "Exactly one transaction should claim the partner")
	suite.Require().Len(losses, 1)
	suite.Require().ErrorIs(losses[0], services.ErrNoPartnerAvailable)

	candidates, err := suite.factory.Create().PartnerRepository().
		GetAllAvailableInArea(ctx, suite.mustAreaCode("560001"))
	suite.Require().NoError(err)
	suite.Empty(candidates, "The partner should stay claimed by the winning order")
}

// TestUnitOfWork_ConcurrentHandoffsSerialize verifies that two handoffs of the
// same order serialize on the locked order row: the loser observes the
// winner's partner assignment instead of overwriting it, so the second
// partner is never claimed.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentHandoffsSerialize() {
	ctx := context.Background()

	seedUow := suite.factory.Create()
	contested := suite.createPreparingOrder()
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, contested))
	suite.Require().NoError(seedUow.PartnerRepository().Add(ctx, suite.createTestPartner(300, "560001")))
	suite.Require().NoError(seedUow.PartnerRepository().Add(ctx, suite.createTestPartner(301, "560001")))

	handoff := func() error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() { _ = uow.Rollback(ctx) }()

		o, err := uow.OrderRepository().Get(ctx, contested.ID())
		if err != nil {
			return err
		}

		candidates, err := uow.PartnerRepository().GetAllAvailableInArea(ctx, suite.mustAreaCode("560001"))
		if err != nil {
			return err
		}

		claimed, err := services.NewPartnerMatcher().Match(o, candidates)
		if err != nil {
			return err
		}

		owner, err := order.NewOwnerActor(suite.mustID(10))
		if err != nil {
			return err
		}
		if err = o.Transition(order.StatusOutForDelivery, owner); err != nil {
			return err
		}

		if err = uow.PartnerRepository().Update(ctx, claimed); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	start := make(chan struct{})
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			<-start
			results <- handoff()
		}()
	}
	close(start)

	wins := 0
	var losses []error
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			losses = append(losses, err)
		} else {
			wins++
		}
	}

	suite.Equal(1, wins, "Exactly one handoff should succeed")
	suite.Require().Len(losses, 1)
	suite.Require().ErrorIs(losses[0], order.ErrPartnerAlreadyAssigned)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, contested.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusOutForDelivery, retrieved.Status())
	suite.Require().NotNil(retrieved.Partner())

	candidates, err := suite.factory.Create().PartnerRepository().
		GetAllAvailableInArea(ctx, suite.mustAreaCode("560001"))
	suite.Require().NoError(err)
	suite.Len(candidates, 1, "The losing handoff should not have claimed the second partner")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"pindrop/internal/adapters/out/postgres"
	"pindrop/internal/adapters/out/postgres/notifierrepo"
	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/application/usecases/queries"
	"pindrop/internal/core/domain/services"
	"pindrop/internal/core/ports"
)

// CompositionRoot wires adapters into use case handlers. Each Create method
// returns a ready handler; queries read the shared connection directly,
// commands go through fresh unit of work instances.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCompositionRoot creates the application object graph from a database
// connection and a logger.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifierrepo.NewGormNotificationSink(gormDB),
		logger:     logger,
	}
}

// NotificationSink exposes the shared notification sink.
func (c *CompositionRoot) NotificationSink() ports.NotificationSink {
	return c.notifier
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartLineCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, services.NewDeliveryEstimator(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReorderCommandHandler() commands.ReorderCommandHandler {
	var f commands.ReorderUoWFactory = FuncReorderUoWFactory(func() commands.ReorderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReorderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateTogglePartnerAvailabilityCommandHandler() commands.TogglePartnerAvailabilityCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTogglePartnerAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateRaiseComplaintCommandHandler() commands.RaiseComplaintCommandHandler {
	var f commands.ComplaintUoWFactory = FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRaiseComplaintCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateComplaintCommandHandler() commands.UpdateComplaintCommandHandler {
	var f commands.ComplaintUoWFactory = FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateComplaintCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notifier)
}

func (c *CompositionRoot) CreateRemindStaleOrdersCommandHandler() commands.RemindStaleOrdersCommandHandler {
	var f commands.StaleOrderUoWFactory = FuncStaleOrderUoWFactory(func() commands.StaleOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemindStaleOrdersCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEligibleOffersQueryHandler() queries.GetEligibleOffersQueryHandler {
	return queries.NewGetEligibleOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListComplaintsQueryHandler() queries.ListComplaintsQueryHandler {
	return queries.NewListComplaintsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPlatformStatsQueryHandler() queries.GetPlatformStatsQueryHandler {
	return queries.NewGetPlatformStatsQueryHandler(c.gormDB)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncReorderUoWFactory func() commands.ReorderUoW

func (f FuncReorderUoWFactory) Create() commands.ReorderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}

type FuncStaleOrderUoWFactory func() commands.StaleOrderUoW

func (f FuncStaleOrderUoWFactory) Create() commands.StaleOrderUoW {
	return f()
}

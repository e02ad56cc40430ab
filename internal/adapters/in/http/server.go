// Package http is the inbound HTTP adapter. It translates echo requests into
// commands and queries, and domain errors into HTTP status codes.
//
// Authentication is out of scope for this service: an upstream gateway
// terminates auth and forwards the verified principal in the X-User-ID,
// X-User-Role and X-Area-Code headers.
package http

import (
	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addToCartHandler            commands.AddToCartCommandHandler
	removeCartLineHandler       commands.RemoveCartLineCommandHandler
	clearCartHandler            commands.ClearCartCommandHandler
	checkoutHandler             commands.CheckoutCommandHandler
	reorderHandler              commands.ReorderCommandHandler
	transitionOrderHandler      commands.TransitionOrderCommandHandler
	toggleAvailabilityHandler   commands.TogglePartnerAvailabilityCommandHandler
	createOfferHandler          commands.CreateOfferCommandHandler
	raiseComplaintHandler       commands.RaiseComplaintCommandHandler
	updateComplaintHandler      commands.UpdateComplaintCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	getCartHandler             queries.GetCartQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getAssignedOrdersHandler   queries.GetAssignedOrdersQueryHandler
	getEligibleOffersHandler   queries.GetEligibleOffersQueryHandler
	getNotificationsHandler    queries.GetNotificationsQueryHandler
	listComplaintsHandler      queries.ListComplaintsQueryHandler
	getPlatformStatsHandler    queries.GetPlatformStatsQueryHandler
}

// ServerDeps bundles the use case handlers the server dispatches to.
type ServerDeps struct {
	AddToCart            commands.AddToCartCommandHandler
	RemoveCartLine       commands.RemoveCartLineCommandHandler
	ClearCart            commands.ClearCartCommandHandler
	Checkout             commands.CheckoutCommandHandler
	Reorder              commands.ReorderCommandHandler
	TransitionOrder      commands.TransitionOrderCommandHandler
	ToggleAvailability   commands.TogglePartnerAvailabilityCommandHandler
	CreateOffer          commands.CreateOfferCommandHandler
	RaiseComplaint       commands.RaiseComplaintCommandHandler
	UpdateComplaint      commands.UpdateComplaintCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler

	GetCart             queries.GetCartQueryHandler
	GetCustomerOrders   queries.GetCustomerOrdersQueryHandler
	GetRestaurantOrders queries.GetRestaurantOrdersQueryHandler
	GetAssignedOrders   queries.GetAssignedOrdersQueryHandler
	GetEligibleOffers   queries.GetEligibleOffersQueryHandler
	GetNotifications    queries.GetNotificationsQueryHandler
	ListComplaints      queries.ListComplaintsQueryHandler
	GetPlatformStats    queries.GetPlatformStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		addToCartHandler:            deps.AddToCart,
		removeCartLineHandler:       deps.RemoveCartLine,
		clearCartHandler:            deps.ClearCart,
		checkoutHandler:             deps.Checkout,
		reorderHandler:              deps.Reorder,
		transitionOrderHandler:      deps.TransitionOrder,
		toggleAvailabilityHandler:   deps.ToggleAvailability,
		createOfferHandler:          deps.CreateOffer,
		raiseComplaintHandler:       deps.RaiseComplaint,
		updateComplaintHandler:      deps.UpdateComplaint,
		markNotificationReadHandler: deps.MarkNotificationRead,
		getCartHandler:              deps.GetCart,
		getCustomerOrdersHandler:    deps.GetCustomerOrders,
		getRestaurantOrdersHandler:  deps.GetRestaurantOrders,
		getAssignedOrdersHandler:    deps.GetAssignedOrders,
		getEligibleOffersHandler:    deps.GetEligibleOffers,
		getNotificationsHandler:     deps.GetNotifications,
		listComplaintsHandler:       deps.ListComplaints,
		getPlatformStatsHandler:     deps.GetPlatformStats,
	}
}

// RegisterRoutes mounts the API under /api/v1 with role-scoped groups.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", extractPrincipal)

	customer := api.Group("", requireRole(roleCustomer))
	customer.GET("/cart", s.getCart)
	customer.POST("/cart/items", s.addToCart)
	customer.DELETE("/cart/items/:lineID", s.removeCartLine)
	customer.DELETE("/cart", s.clearCart)
	customer.POST("/checkout", s.checkout)
	customer.GET("/orders", s.getCustomerOrders)
	customer.POST("/orders/:orderID/reorder", s.reorder)
	customer.GET("/offers", s.getEligibleOffers)
	customer.POST("/complaints", s.raiseComplaint)

	api.POST("/orders/:orderID/status", s.changeOrderStatus,
		requireRole(roleOwner, roleCare, rolePartner))

	owner := api.Group("/owner", requireRole(roleOwner, roleAdmin))
	owner.GET("/orders", s.getRestaurantOrders, requireRole(roleOwner))
	owner.POST("/offers", s.createOffer)

	care := api.Group("/care", requireRole(roleCare))
	care.GET("/complaints", s.listComplaints)
	care.POST("/complaints/:complaintID/status", s.updateComplaint)

	partner := api.Group("/partner", requireRole(rolePartner))
	partner.GET("/orders", s.getAssignedOrders)
	partner.POST("/availability", s.toggleAvailability)

	admin := api.Group("/admin", requireRole(roleAdmin))
	admin.GET("/stats", s.getPlatformStats)

	api.GET("/notifications", s.getNotifications)
	api.POST("/notifications/:notificationID/read", s.markNotificationRead)
}

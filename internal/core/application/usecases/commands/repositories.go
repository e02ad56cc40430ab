// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pindrop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest UoW shape that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// CatalogRepoFactory provides access to the catalog read model within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// ComplaintRepoFactory provides access to the complaint repository within a transaction.
	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	// CartUoW manages transactions for cart mutations that need catalog reads,
	// such as adding a dish with availability and area checks.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the checkout transaction: it converts the cart into
	// an order with offer pricing, so it spans cart, order, offer and catalog.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		OfferRepoFactory
		CatalogRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// TransitionUoW manages order status transitions, which may claim or
	// release a delivery partner and need the catalog for ownership and area
	// resolution.
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		CatalogRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// ReorderUoW manages refilling a cart from a past order.
	ReorderUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
	}

	// ReorderUoWFactory creates new reorder unit of work instances.
	ReorderUoWFactory interface {
		Create() ReorderUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// OfferUoW manages offer mutations that need catalog reads for
	// restaurant-scoped offers.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
		CatalogRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// StaleOrderUoW manages the stale order scan, reading placed orders and
	// resolving restaurant owners through the catalog.
	StaleOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// StaleOrderUoWFactory creates new stale order unit of work instances.
	StaleOrderUoWFactory interface {
		Create() StaleOrderUoW
	}

	// ComplaintUoW manages complaint mutations, with order access for
	// validating that a referenced order belongs to the complaining customer.
	ComplaintUoW interface {
		TxManager
		ComplaintRepoFactory
		OrderRepoFactory
	}

	// ComplaintUoWFactory creates new complaint unit of work instances.
	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}
)

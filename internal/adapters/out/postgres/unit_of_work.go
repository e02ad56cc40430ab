// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes.
//
// Key features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for post-commit processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Each command handler creates one unit of work, begins a transaction,
// defers a rollback and commits explicitly; repositories obtained from the
// unit of work run inside that transaction.
package postgres

import (
	"context"

	"pindrop/internal/adapters/out/postgres/cartrepo"
	"pindrop/internal/adapters/out/postgres/catalogrepo"
	"pindrop/internal/adapters/out/postgres/complaintrepo"
	"pindrop/internal/adapters/out/postgres/offerrepo"
	"pindrop/internal/adapters/out/postgres/orderrepo"
	"pindrop/internal/adapters/out/postgres/partnerrepo"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances; the transactions are not.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction if one exists, falling back to the
// main database connection.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// CartRepository provides cart persistence operations within the unit of work.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn(), uow)
}

// OrderRepository provides order persistence operations within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// OfferRepository provides offer persistence operations within the unit of work.
func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(uow.conn(), uow)
}

// PartnerRepository provides delivery partner persistence operations within
// the unit of work.
func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn(), uow)
}

// CatalogRepository provides read access to the restaurant and dish catalog
// within the unit of work.
func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

// ComplaintRepository provides complaint persistence operations within the
// unit of work.
func (uow *GormUnitOfWork) ComplaintRepository() ports.ComplaintRepository {
	return complaintrepo.NewGormComplaintRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations when aggregates are added or
// updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// Package postgres provides the GORM-based storage backend for placed
// orders, including a Unit of Work implementation over database
// transactions. The cart is not persisted here: it is a short-lived,
// single-session object, so the cart repository is injected and typically
// backed by the in-memory store even when orders live in Postgres.
package postgres

import (
	"context"

	"dineease/internal/adapters/out/postgres/orderrepo"
	"dineease/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection for orders and a fixed cart repository for the cart.
//
// Example:
//
//	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, cartRepo)
type GormUnitOfWorkFactory struct {
	db             *gorm.DB
	cartRepository ports.CartRepository
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, cartRepository ports.CartRepository) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:             db,
		cartRepository: cartRepository,
	}
}

// Create produces a new UnitOfWork. Each instance maintains its own
// transaction state, ensuring isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:             f.db,
		cartRepository: f.cartRepository,
	}
}

// GormUnitOfWork coordinates a database transaction for order writes.
// Cart access goes through the injected cart repository and is not part of
// the database transaction; the cart write happens after the order write
// succeeds and the worst case on a crash in between is a cart the customer
// clears by hand.
type GormUnitOfWork struct {
	db             *gorm.DB
	tx             *gorm.DB
	cartRepository ports.CartRepository
}

// Begin initiates a database transaction.
// Multiple calls on the same instance do not create nested transactions.
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

// Commit finalizes all order changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all order changes made within the current transaction.
// After a successful Commit the deferred Rollback finds no transaction and
// reports gorm.ErrInvalidTransaction, which handlers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CartRepository returns the injected cart repository.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return uow.cartRepository
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}

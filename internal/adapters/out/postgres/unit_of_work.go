// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a single database transaction across the
// repositories a business operation touches and coordinates commit and
// rollback.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns one transaction; concurrent operations must
// use separate instances from the factory. Rollback after a successful commit
// is a harmless no-op, which keeps the deferred-rollback idiom safe.
package postgres

import (
	"context"

	"ordernotify/internal/adapters/out/postgres/orderrepo"
	"ordernotify/internal/adapters/out/postgres/settingsrepo"
	"ordernotify/internal/adapters/out/postgres/templaterepo"
	"ordernotify/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each business operation gets a fresh unit of work with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the order,
// template, and settings repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction. Calling
// Begin again on the same instance is safe and does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After a
// commit the transaction is already gone and Rollback reports
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// TemplateRepository returns a template override repository bound to the
// current transaction.
func (uow *GormUnitOfWork) TemplateRepository() ports.TemplateRepository {
	return templaterepo.NewGormTemplateRepository(uow.conn())
}

// SettingsRepository returns a settings repository bound to the current
// transaction.
func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

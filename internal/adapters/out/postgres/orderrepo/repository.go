package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	// Save, not Updates: zero values (cleared flags, reset statuses) must be
	// written too.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllTrackable retrieves all orders with a tracking number whose lifecycle
// status is not terminal.
func (r *GormOrderRepository) GetAllTrackable(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("tracking_number != ''").
		Where("app_status NOT IN ?", []int{int(order.Delivered), int(order.Cancelled), int(order.Archived)}).
		Order("ordered_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllAwaitingReminder retrieves orders still pending customer confirmation
// whose initial notification went out at or before the cutoff. Orders already
// reminded are excluded; the reminder fires once.
func (r *GormOrderRepository) GetAllAwaitingReminder(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("app_status = ?", int(order.PendingConfirmation)).
		Where("message_status = ?", int(order.MessageSent)).
		Where("message_sent_at IS NOT NULL AND message_sent_at <= ?", cutoff).
		Order("message_sent_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

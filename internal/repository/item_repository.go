package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/domain/item"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"not null;size:1000"`
	Available   bool   `gorm:"not null"`
	OwnerID     int64  `gorm:"index;not null"`
	RequestID   *int64 `gorm:"index"`
}

// TableName returns the table name for the GORM model.
func (ItemModel) TableName() string {
	return "items"
}

// GormItemRepository is the GORM-based implementation of item.Repository.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Save persists a new item.
func (r *GormItemRepository) Save(ctx context.Context, i *item.Item) (*item.Item, error) {
	model := toItemModel(i)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	return toDomainItem(model), nil
}

// Update persists changes to an existing item.
func (r *GormItemRepository) Update(ctx context.Context, i *item.Item) (*item.Item, error) {
	model := toItemModel(i)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return toDomainItem(model), nil
}

// FindByID retrieves an item by id.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("item", id)
		}
		return nil, fmt.Errorf("failed to find item by id: %w", err)
	}
	return toDomainItem(&model), nil
}

// ListByOwner retrieves a page of the owner's items ordered by id.
func (r *GormItemRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*item.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list items by owner: %w", err)
	}
	return toDomainItems(models), nil
}

// Search retrieves a page of available items matching the text in name or
// description, case-insensitively.
func (r *GormItemRepository) Search(ctx context.Context, text string, offset, limit int) ([]*item.Item, error) {
	pattern := "%" + text + "%"
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("available = TRUE AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toDomainItems(models), nil
}

// FindIDsByOwner returns the ids of every item the user owns.
func (r *GormItemRepository) FindIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find item ids by owner: %w", err)
	}
	return ids, nil
}

// ExistsByOwner reports whether the user owns at least one item.
func (r *GormItemRepository) ExistsByOwner(ctx context.Context, ownerID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check item ownership: %w", err)
	}
	return count > 0, nil
}

// FindByRequestIDs returns items created to fulfill any of the requests.
func (r *GormItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by request ids: %w", err)
	}
	return toDomainItems(models), nil
}

// --- Conversion helpers ---

func toItemModel(i *item.Item) *ItemModel {
	return &ItemModel{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

func toDomainItem(m *ItemModel) *item.Item {
	return &item.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		OwnerID:     m.OwnerID,
		RequestID:   m.RequestID,
	}
}

func toDomainItems(models []ItemModel) []*item.Item {
	items := make([]*item.Item, len(models))
	for i := range models {
		items[i] = toDomainItem(&models[i])
	}
	return items
}

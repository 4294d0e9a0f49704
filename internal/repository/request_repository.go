package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/domain/request"
)

// RequestModel is the GORM model for the item_requests table.
type RequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"not null;size:1000"`
	RequesterID int64     `gorm:"index;not null"`
	Created     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RequestModel) TableName() string {
	return "item_requests"
}

// GormRequestRepository is the GORM-based implementation of
// request.Repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// Save persists a new item request.
func (r *GormRequestRepository) Save(ctx context.Context, req *request.ItemRequest) (*request.ItemRequest, error) {
	model := &RequestModel{
		Description: req.Description,
		RequesterID: req.RequesterID,
		Created:     req.Created,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item request: %w", err)
	}
	return toDomainRequest(model), nil
}

// FindByID retrieves a request by id.
func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*request.ItemRequest, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("item request", id)
		}
		return nil, fmt.Errorf("failed to find item request by id: %w", err)
	}
	return toDomainRequest(&model), nil
}

// ListByRequester retrieves the user's own requests, newest first.
func (r *GormRequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*request.ItemRequest, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests by requester: %w", err)
	}
	return toDomainRequests(models), nil
}

// ListOthers retrieves a page of other users' requests, newest first.
func (r *GormRequestRepository) ListOthers(ctx context.Context, userID int64, offset, limit int) ([]*request.ItemRequest, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id <> ?", userID).
		Order("created DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list other users' requests: %w", err)
	}
	return toDomainRequests(models), nil
}

func toDomainRequest(m *RequestModel) *request.ItemRequest {
	return &request.ItemRequest{
		ID:          m.ID,
		Description: m.Description,
		RequesterID: m.RequesterID,
		Created:     m.Created,
	}
}

func toDomainRequests(models []RequestModel) []*request.ItemRequest {
	requests := make([]*request.ItemRequest, len(models))
	for i := range models {
		requests[i] = toDomainRequest(&models[i])
	}
	return requests
}

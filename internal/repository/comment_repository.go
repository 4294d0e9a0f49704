package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-app/backend/internal/domain/item"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Text     string    `gorm:"not null;size:2000"`
	ItemID   int64     `gorm:"index;not null"`
	AuthorID int64     `gorm:"not null"`
	Created  time.Time `gorm:"not null"`

	Author UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// GormCommentRepository is the GORM-based implementation of
// item.CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Save persists a new comment.
func (r *GormCommentRepository) Save(ctx context.Context, c *item.Comment) (*item.Comment, error) {
	model := &CommentModel{
		Text:     c.Text,
		ItemID:   c.ItemID,
		AuthorID: c.AuthorID,
		Created:  c.Created,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	saved := toDomainComment(model)
	saved.AuthorName = c.AuthorName
	return saved, nil
}

// ListByItem retrieves all comments on an item, oldest first, with author
// names resolved.
func (r *GormCommentRepository) ListByItem(ctx context.Context, itemID int64) ([]*item.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	comments := make([]*item.Comment, len(models))
	for i := range models {
		comments[i] = toDomainComment(&models[i])
		comments[i].AuthorName = models[i].Author.Name
	}
	return comments, nil
}

func toDomainComment(m *CommentModel) *item.Comment {
	return &item.Comment{
		ID:       m.ID,
		Text:     m.Text,
		ItemID:   m.ItemID,
		AuthorID: m.AuthorID,
		Created:  m.Created,
	}
}

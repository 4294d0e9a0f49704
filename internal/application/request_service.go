package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/domain/item"
	"github.com/shareit-app/backend/internal/domain/request"
	"github.com/shareit-app/backend/internal/domain/user"
)

// CreateRequestRequest is the payload for posting an item request.
type CreateRequestRequest struct {
	Description string `json:"description"`
}

// RequestItemView is an item offered against a request.
type RequestItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// RequestView is the response representation of an item request.
type RequestView struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     time.Time         `json:"created"`
	Items       []RequestItemView `json:"items"`
}

// RequestService implements item-request posting and browsing.
type RequestService struct {
	requests request.Repository
	users    user.Repository
	items    item.Repository
	logger   *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests request.Repository,
	users user.Repository,
	items item.Repository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		users:    users,
		items:    items,
		logger:   logger,
	}
}

// CreateRequest posts a wish for an item.
func (s *RequestService) CreateRequest(ctx context.Context, userID int64, req CreateRequestRequest) (*RequestView, error) {
	if exists, err := s.users.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.NewNotFoundError("user", userID)
	}
	r, err := request.New(userID, req.Description, time.Now())
	if err != nil {
		return nil, err
	}
	saved, err := s.requests.Save(ctx, r)
	if err != nil {
		return nil, err
	}
	s.logger.Info("item request created",
		zap.Int64("request_id", saved.ID),
		zap.Int64("requester_id", userID),
	)
	view := toRequestView(saved)
	view.Items = []RequestItemView{}
	return &view, nil
}

// ListOwn retrieves the user's requests, newest first, with the items offered
// against each of them.
func (s *RequestService) ListOwn(ctx context.Context, userID int64) ([]RequestView, error) {
	if exists, err := s.users.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.NewNotFoundError("user", userID)
	}
	requests, err := s.requests.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, requests)
}

// ListAll retrieves a page of other users' requests, newest first.
func (s *RequestService) ListAll(ctx context.Context, userID int64, from, size int) ([]RequestView, error) {
	if exists, err := s.users.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.NewNotFoundError("user", userID)
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.ListOthers(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, requests)
}

// GetRequest retrieves a single request, visible to any existing user.
func (s *RequestService) GetRequest(ctx context.Context, userID, requestID int64) (*RequestView, error) {
	if exists, err := s.users.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.NewNotFoundError("user", userID)
	}
	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	views, err := s.hydrate(ctx, []*request.ItemRequest{r})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// hydrate attaches the fulfilling items to each request view.
func (s *RequestService) hydrate(ctx context.Context, requests []*request.ItemRequest) ([]RequestView, error) {
	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	byRequest := map[int64][]RequestItemView{}
	if len(ids) > 0 {
		items, err := s.items.FindByRequestIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, itm := range items {
			if itm.RequestID == nil {
				continue
			}
			byRequest[*itm.RequestID] = append(byRequest[*itm.RequestID], RequestItemView{
				ID:          itm.ID,
				Name:        itm.Name,
				Description: itm.Description,
				Available:   itm.Available,
				RequestID:   itm.RequestID,
			})
		}
	}

	views := make([]RequestView, len(requests))
	for i, r := range requests {
		views[i] = toRequestView(r)
		views[i].Items = byRequest[r.ID]
		if views[i].Items == nil {
			views[i].Items = []RequestItemView{}
		}
	}
	return views, nil
}

func toRequestView(r *request.ItemRequest) RequestView {
	return RequestView{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created,
	}
}

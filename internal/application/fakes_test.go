package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/domain/booking"
	"github.com/shareit-app/backend/internal/domain/item"
	"github.com/shareit-app/backend/internal/domain/request"
	"github.com/shareit-app/backend/internal/domain/user"
	"github.com/shareit-app/backend/internal/events"
)

// In-memory repository doubles. They mirror the ordering and filtering
// contracts of the Postgres implementations so service tests exercise the real
// listing semantics.

type fakeUserRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*user.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) (*user.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.NewConflictError("email %s is already in use", u.Email)
		}
	}
	r.nextID++
	saved := *u
	saved.ID = r.nextID
	r.users[saved.ID] = &saved
	return &saved, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) (*user.User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return nil, domain.NewNotFoundError("user", u.ID)
	}
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return nil, domain.NewConflictError("email %s is already in use", u.Email)
		}
	}
	updated := *u
	r.users[u.ID] = &updated
	return &updated, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id)
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*user.User, error) {
	result := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		found := *u
		result = append(result, &found)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.NewNotFoundError("user", id)
	}
	delete(r.users, id)
	return nil
}

type fakeItemRepo struct {
	items  map[int64]*item.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int64]*item.Item)}
}

func (r *fakeItemRepo) Save(_ context.Context, i *item.Item) (*item.Item, error) {
	r.nextID++
	saved := *i
	saved.ID = r.nextID
	r.items[saved.ID] = &saved
	return &saved, nil
}

func (r *fakeItemRepo) Update(_ context.Context, i *item.Item) (*item.Item, error) {
	if _, ok := r.items[i.ID]; !ok {
		return nil, domain.NewNotFoundError("item", i.ID)
	}
	updated := *i
	r.items[i.ID] = &updated
	return &updated, nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id int64) (*item.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("item", id)
	}
	found := *i
	return &found, nil
}

func (r *fakeItemRepo) ListByOwner(_ context.Context, ownerID int64, offset, limit int) ([]*item.Item, error) {
	var owned []*item.Item
	for _, i := range r.items {
		if i.OwnerID == ownerID {
			found := *i
			owned = append(owned, &found)
		}
	}
	sort.Slice(owned, func(a, b int) bool { return owned[a].ID < owned[b].ID })
	return window(owned, offset, limit), nil
}

func (r *fakeItemRepo) Search(_ context.Context, text string, offset, limit int) ([]*item.Item, error) {
	needle := strings.ToLower(text)
	var matched []*item.Item
	for _, i := range r.items {
		if !i.Available {
			continue
		}
		if strings.Contains(strings.ToLower(i.Name), needle) ||
			strings.Contains(strings.ToLower(i.Description), needle) {
			found := *i
			matched = append(matched, &found)
		}
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].ID < matched[b].ID })
	return window(matched, offset, limit), nil
}

func (r *fakeItemRepo) FindIDsByOwner(_ context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	for _, i := range r.items {
		if i.OwnerID == ownerID {
			ids = append(ids, i.ID)
		}
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids, nil
}

func (r *fakeItemRepo) ExistsByOwner(_ context.Context, ownerID int64) (bool, error) {
	for _, i := range r.items {
		if i.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeItemRepo) FindByRequestIDs(_ context.Context, requestIDs []int64) ([]*item.Item, error) {
	wanted := make(map[int64]bool, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = true
	}
	var matched []*item.Item
	for _, i := range r.items {
		if i.RequestID != nil && wanted[*i.RequestID] {
			found := *i
			matched = append(matched, &found)
		}
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].ID < matched[b].ID })
	return matched, nil
}

type fakeCommentRepo struct {
	comments []*item.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Save(_ context.Context, c *item.Comment) (*item.Comment, error) {
	r.nextID++
	saved := *c
	saved.ID = r.nextID
	r.comments = append(r.comments, &saved)
	found := saved
	return &found, nil
}

func (r *fakeCommentRepo) ListByItem(_ context.Context, itemID int64) ([]*item.Comment, error) {
	var matched []*item.Comment
	for _, c := range r.comments {
		if c.ItemID == itemID {
			found := *c
			matched = append(matched, &found)
		}
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].Created.Before(matched[b].Created) })
	return matched, nil
}

type fakeRequestRepo struct {
	requests map[int64]*request.ItemRequest
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]*request.ItemRequest)}
}

func (r *fakeRequestRepo) Save(_ context.Context, req *request.ItemRequest) (*request.ItemRequest, error) {
	r.nextID++
	saved := *req
	saved.ID = r.nextID
	r.requests[saved.ID] = &saved
	found := saved
	return &found, nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id int64) (*request.ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.NewNotFoundError("request", id)
	}
	found := *req
	return &found, nil
}

func (r *fakeRequestRepo) ListByRequester(_ context.Context, requesterID int64) ([]*request.ItemRequest, error) {
	var matched []*request.ItemRequest
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			found := *req
			matched = append(matched, &found)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

func (r *fakeRequestRepo) ListOthers(_ context.Context, userID int64, offset, limit int) ([]*request.ItemRequest, error) {
	var matched []*request.ItemRequest
	for _, req := range r.requests {
		if req.RequesterID != userID {
			found := *req
			matched = append(matched, &found)
		}
	}
	sortNewestFirst(matched)
	return window(matched, offset, limit), nil
}

func sortNewestFirst(requests []*request.ItemRequest) {
	sort.Slice(requests, func(a, b int) bool {
		return requests[a].Created.After(requests[b].Created)
	})
}

type fakeBookingRepo struct {
	bookings map[int64]*booking.Booking
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*booking.Booking)}
}

func (r *fakeBookingRepo) Save(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
	r.nextID++
	saved := booking.Reconstruct(r.nextID, b.Start(), b.End(), b.Item(), b.Booker(), b.Status())
	r.bookings[r.nextID] = saved
	return saved, nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking", id)
	}
	// Return a detached copy like a real repository would, so callers
	// mutating the result cannot alias the stored booking.
	return booking.Reconstruct(b.ID(), b.Start(), b.End(), b.Item(), b.Booker(), b.Status()), nil
}

func (r *fakeBookingRepo) UpdateStatusIfWaiting(_ context.Context, id int64, target booking.Status) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status() != booking.StatusWaiting {
		return false, nil
	}
	r.bookings[id] = booking.Reconstruct(b.ID(), b.Start(), b.End(), b.Item(), b.Booker(), target)
	return true, nil
}

func (r *fakeBookingRepo) ListByBooker(_ context.Context, bookerID int64, state booking.State, now time.Time, page booking.Page) ([]*booking.Booking, error) {
	return r.list(func(b *booking.Booking) bool { return b.Booker().ID == bookerID }, state, now, page), nil
}

func (r *fakeBookingRepo) ListByItems(_ context.Context, itemIDs []int64, state booking.State, now time.Time, page booking.Page) ([]*booking.Booking, error) {
	wanted := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}
	return r.list(func(b *booking.Booking) bool { return wanted[b.Item().ID] }, state, now, page), nil
}

func (r *fakeBookingRepo) list(scope func(*booking.Booking) bool, state booking.State, now time.Time, page booking.Page) []*booking.Booking {
	var matched []*booking.Booking
	for _, b := range r.bookings {
		if scope(b) && state.Matches(b, now) {
			matched = append(matched, b)
		}
	}
	// Newest start first, id ascending as the tie-break.
	sort.Slice(matched, func(a, b int) bool {
		if !matched[a].Start().Equal(matched[b].Start()) {
			return matched[a].Start().After(matched[b].Start())
		}
		return matched[a].ID() < matched[b].ID()
	})
	return window(matched, page.Offset, page.Limit)
}

func (r *fakeBookingRepo) ExistsApprovedPast(_ context.Context, itemID, bookerID int64, before time.Time) (bool, error) {
	for _, b := range r.bookings {
		if b.Item().ID == itemID && b.Booker().ID == bookerID &&
			b.Status() == booking.StatusApproved && b.End().Before(before) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) FindLastForItem(_ context.Context, itemID int64, now time.Time) (*booking.Booking, error) {
	var last *booking.Booking
	for _, b := range r.bookings {
		if b.Item().ID != itemID || b.Status() != booking.StatusApproved || !b.Start().Before(now) {
			continue
		}
		if last == nil || b.End().After(last.End()) {
			last = b
		}
	}
	return last, nil
}

func (r *fakeBookingRepo) FindNextForItem(_ context.Context, itemID int64, now time.Time) (*booking.Booking, error) {
	var next *booking.Booking
	for _, b := range r.bookings {
		if b.Item().ID != itemID || b.Status() != booking.StatusApproved || !b.Start().After(now) {
			continue
		}
		if next == nil || b.Start().Before(next.Start()) {
			next = b
		}
	}
	return next, nil
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	published []publishedEvent
}

type publishedEvent struct {
	Type  string
	Event events.BookingEvent
}

func (p *capturingPublisher) PublishBookingEvent(_ context.Context, eventType string, evt events.BookingEvent) {
	p.published = append(p.published, publishedEvent{Type: eventType, Event: evt})
}

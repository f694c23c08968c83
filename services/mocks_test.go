package services

import (
	"context"
	"errors"

	"github.com/jorotodorovv/art-on-display/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders      map[uuid.UUID]*models.Order
	created     []*models.Order
	sessions    map[uuid.UUID]string
	completed   map[uuid.UUID][]uint
	createErr   error
	completeErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    make(map[uuid.UUID]*models.Order),
		sessions:  make(map[uuid.UUID]string),
		completed: make(map[uuid.UUID][]uint),
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, order)
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok || order.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) SetStripeSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	f.sessions[id] = sessionID
	return nil
}

func (f *fakeOrderRepo) FindByStripeSession(ctx context.Context, sessionID string) (*models.Order, error) {
	for id, sid := range f.sessions {
		if sid == sessionID {
			return f.orders[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) Complete(ctx context.Context, id uuid.UUID, artworkIDs []uint) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed[id] = artworkIDs
	if order, ok := f.orders[id]; ok {
		order.Status = models.OrderStatusCompleted
	}
	return nil
}

type fakeArtworkRepo struct {
	artworks map[uint]models.Artwork
}

func newFakeArtworkRepo(artworks ...models.Artwork) *fakeArtworkRepo {
	repo := &fakeArtworkRepo{artworks: make(map[uint]models.Artwork)}
	for _, a := range artworks {
		repo.artworks[a.ID] = a
	}
	return repo
}

func (f *fakeArtworkRepo) List(ctx context.Context, tag string, forSaleOnly bool) ([]models.Artwork, error) {
	var out []models.Artwork
	for _, a := range f.artworks {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArtworkRepo) FindByID(ctx context.Context, id uint) (*models.Artwork, error) {
	a, ok := f.artworks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeArtworkRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Artwork, error) {
	var out []models.Artwork
	for _, id := range ids {
		if a, ok := f.artworks[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArtworkRepo) Create(ctx context.Context, artwork *models.Artwork) error {
	f.artworks[artwork.ID] = *artwork
	return nil
}

func (f *fakeArtworkRepo) Update(ctx context.Context, artwork *models.Artwork) error {
	f.artworks[artwork.ID] = *artwork
	return nil
}

func (f *fakeArtworkRepo) Delete(ctx context.Context, id uint) error {
	delete(f.artworks, id)
	return nil
}

func (f *fakeArtworkRepo) SetSaleState(ctx context.Context, id uint, forSale bool, price *float64) error {
	a, ok := f.artworks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.ForSale = forSale
	a.Price = price
	f.artworks[id] = a
	return nil
}

type fakeCartStore struct {
	carts   map[string]*models.Cart
	gets    int
	deleted []string
	getErr  error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*models.Cart)}
}

func (f *fakeCartStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}
	return &models.Cart{UserID: userID}, nil
}

func (f *fakeCartStore) Save(ctx context.Context, cart *models.Cart) error {
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartStore) Delete(ctx context.Context, userID string) error {
	f.deleted = append(f.deleted, userID)
	delete(f.carts, userID)
	return nil
}

type fakeSessionCreator struct {
	requests []CheckoutSessionRequest
	err      error
}

func (f *fakeSessionCreator) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.test/cs_test_123"}, nil
}

type fakeEventSink struct {
	events []models.OrderEvent
}

func (f *fakeEventSink) Publish(ctx context.Context, event models.OrderEvent) {
	f.events = append(f.events, event)
}

var errDatabaseDown = errors.New("database down")

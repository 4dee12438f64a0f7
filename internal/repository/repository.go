package repository

import (
	"context"

	"github.com/happydigitalmarketings/MangaiyarFreshFoods/internal/domain"
)

// OrderFilter defines filter criteria for listing orders.
type OrderFilter struct {
	Status *string
	Page   int
	Limit  int
}

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// Create inserts a new order and its line items atomically.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by id, including items in insertion order.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// List returns orders newest first along with the total count.
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error)

	// UpdateStatus changes the status of an order.
	UpdateStatus(ctx context.Context, id string, status string) error

	// Delete removes an order and its items.
	Delete(ctx context.Context, id string) error
}

// ProductFilter defines filter criteria for listing products.
type ProductFilter struct {
	Category *string
	Search   *string
	Page     int
	Limit    int
}

// ProductRepository defines the interface for catalog persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// BannerFilter defines filter criteria for listing banners.
type BannerFilter struct {
	Position *string
	Active   *bool
}

// BannerRepository defines the interface for banner persistence operations.
type BannerRepository interface {
	Create(ctx context.Context, banner *domain.Banner) error
	GetByID(ctx context.Context, id string) (*domain.Banner, error)
	List(ctx context.Context, filter BannerFilter) ([]domain.Banner, error)
	Update(ctx context.Context, banner *domain.Banner) error
	Delete(ctx context.Context, id string) error
}

// PostFilter defines filter criteria for listing blog posts.
type PostFilter struct {
	Tag           *string
	PublishedOnly bool
	Page          int
	Limit         int
}

// PostRepository defines the interface for blog persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetBySlugOrID(ctx context.Context, slugOrID string) (*domain.BlogPost, error)
	List(ctx context.Context, filter PostFilter) ([]domain.BlogPost, int, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// ContactFilter defines filter criteria for listing contact messages.
type ContactFilter struct {
	Status *string
	Search *string
	Page   int
	Limit  int
}

// ContactRepository defines the interface for contact-form persistence.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) ([]domain.ContactMessage, int, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

// CartRepository defines the interface for the server-side cart store.
type CartRepository interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}

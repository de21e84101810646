package service

import (
	"context"
	"time"

	"qrmenu/internal/domain"
	"qrmenu/internal/storage"
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	GetRestaurant(id string) (*domain.Restaurant, error)
	GetRestaurantBySlug(slug string) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	SaveQRCode(restaurantID string, qr []byte) error
	GetQRCode(restaurantID string) ([]byte, error)
}

type CategoryRepository interface {
	CreateCategory(cat *domain.Category) error
	ListCategories(restaurantID string) ([]domain.Category, error)
	UpdateCategory(cat *domain.Category) error
	DeleteCategory(restaurantID, id string) (int64, error)
}

type SubcategoryRepository interface {
	CreateSubcategory(sub *domain.Subcategory) error
	ListSubcategories(restaurantID string) ([]domain.Subcategory, error)
	DeleteSubcategory(id string) (int64, error)
}

type MenuItemRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, id string) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	SetAvailability(restaurantID, id string, available bool) error
	DeleteMenuItem(restaurantID, id string) (int64, error)
}

// ItemEventRepository is the durable side of the popularity board:
// counted events land in postgres too so a ranking can be rebuilt when
// the redis sorted set is empty or unavailable.
type ItemEventRepository interface {
	InsertItemEvent(event *domain.ItemEvent) error
	TopItemsToday(restaurantID string, limit int) ([]domain.PopularItem, error)
}

type LeadRepository interface {
	InsertLead(lead *domain.Lead) error
	ListLeads() ([]domain.Lead, error)
}

// MenuCache holds published menu snapshots. A miss is (nil, nil), not
// an error; the cache is an optimization, never a source of truth.
type MenuCache interface {
	MenuKey(restaurantID string) string
	GetMenu(ctx context.Context, key string) (*domain.Menu, error)
	SetMenu(ctx context.Context, key string, menu *domain.Menu) error
	Delete(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, msg domain.EventMessage) error
}

// PopularityStore folds item events into per-restaurant daily
// rankings.
type PopularityStore interface {
	RecordItemEvent(ctx context.Context, restaurantID, itemID string, day time.Time) error
	TopItems(ctx context.Context, restaurantID string, day time.Time, limit int) ([]domain.PopularItem, error)
}

type QRGenerator interface {
	Generate(slug string) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Create(rest *domain.Restaurant) error
	Get(id string) (*domain.Restaurant, error)
	GetBySlug(slug string) (*domain.Restaurant, error)
	Update(rest *domain.Restaurant) error
	MenuQRCode(id string) ([]byte, error)
}

type CatalogServiceInterface interface {
	CreateCategory(ctx context.Context, cat *domain.Category) error
	ListCategories(restaurantID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, cat *domain.Category) error
	DeleteCategory(ctx context.Context, restaurantID, id string) (int64, error)

	CreateSubcategory(ctx context.Context, restaurantID string, sub *domain.Subcategory) error
	ListSubcategories(restaurantID string) ([]domain.Subcategory, error)
	DeleteSubcategory(ctx context.Context, restaurantID, id string) (int64, error)

	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, id string) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	SetAvailability(ctx context.Context, restaurantID, id string, available bool) error
	DeleteMenuItem(ctx context.Context, restaurantID, id string) (int64, error)
}

type MenuServiceInterface interface {
	Snapshot(ctx context.Context, slug string) (*domain.Menu, error)
	Invalidate(ctx context.Context, restaurantID string) error
	RecordCartAdd(ctx context.Context, restaurantID, itemID string) error
	PopularToday(ctx context.Context, restaurantID string, limit int) ([]domain.PopularItem, error)
}

type LeadServiceInterface interface {
	Submit(ctx context.Context, lead *domain.Lead) error
	List() ([]domain.Lead, error)
}

var (
	_ RestaurantRepository  = (*storage.PostgresRepository)(nil)
	_ CategoryRepository    = (*storage.PostgresRepository)(nil)
	_ SubcategoryRepository = (*storage.PostgresRepository)(nil)
	_ MenuItemRepository    = (*storage.PostgresRepository)(nil)
	_ LeadRepository        = (*storage.PostgresRepository)(nil)
	_ ItemEventRepository   = (*storage.PostgresRepository)(nil)
	_ MenuCache             = (*storage.RedisCache)(nil)
	_ PopularityStore       = (*storage.RedisPopularity)(nil)
	_ EventPublisher        = (*storage.KafkaPublisher)(nil)
)

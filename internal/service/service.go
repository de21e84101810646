package service

import (
	"context"
	"errors"
	"log"

	"qrmenu/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrInvalidRestaurant = errors.New("restaurant slug and name are required")
	ErrInvalidCategory   = errors.New("category name and restaurant are required")
	ErrInvalidItem       = errors.New("item name and category are required")
	ErrNoQRCode          = errors.New("qr code not generated")
)

type RestaurantService struct {
	repo RestaurantRepository
	qr   QRGenerator
}

func NewRestaurantService(repo RestaurantRepository, qr QRGenerator) *RestaurantService {
	return &RestaurantService{repo: repo, qr: qr}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	if rest.Slug == "" || rest.NameEN == "" {
		return ErrInvalidRestaurant
	}
	if rest.ID == "" {
		rest.ID = uuid.NewString()
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) Get(id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) GetBySlug(slug string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurantBySlug(slug)
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	return s.repo.UpdateRestaurant(rest)
}

// MenuQRCode returns the PNG linking to the restaurant's public menu,
// generating and caching it on first use.
func (s *RestaurantService) MenuQRCode(id string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(id)
	if err != nil {
		return nil, err
	}
	if len(qr) > 0 {
		return qr, nil
	}
	if s.qr == nil {
		return nil, ErrNoQRCode
	}
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	qr, err = s.qr.Generate(rest.Slug)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveQRCode(id, qr); err != nil {
		log.Printf("[menu-svc] failed to store qr code for restaurant %s: %v", id, err)
	}
	return qr, nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

// CatalogService is the admin side of the menu: category, subcategory
// and item CRUD. Every write invalidates the restaurant's published
// snapshot so the public menu never serves stale data.
type CatalogService struct {
	categories    CategoryRepository
	subcategories SubcategoryRepository
	items         MenuItemRepository
	menus         MenuServiceInterface
}

func NewCatalogService(categories CategoryRepository, subcategories SubcategoryRepository, items MenuItemRepository, menus MenuServiceInterface) *CatalogService {
	return &CatalogService{
		categories:    categories,
		subcategories: subcategories,
		items:         items,
		menus:         menus,
	}
}

func (s *CatalogService) invalidate(ctx context.Context, restaurantID string) {
	if s.menus != nil {
		_ = s.menus.Invalidate(ctx, restaurantID)
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, cat *domain.Category) error {
	if cat.RestaurantID == "" || cat.NameEN == "" {
		return ErrInvalidCategory
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	if err := s.categories.CreateCategory(cat); err != nil {
		return err
	}
	s.invalidate(ctx, cat.RestaurantID)
	return nil
}

func (s *CatalogService) ListCategories(restaurantID string) ([]domain.Category, error) {
	return s.categories.ListCategories(restaurantID)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, cat *domain.Category) error {
	if err := s.categories.UpdateCategory(cat); err != nil {
		return err
	}
	s.invalidate(ctx, cat.RestaurantID)
	return nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, restaurantID, id string) (int64, error) {
	affected, err := s.categories.DeleteCategory(restaurantID, id)
	if err == nil && affected > 0 {
		s.invalidate(ctx, restaurantID)
	}
	return affected, err
}

func (s *CatalogService) CreateSubcategory(ctx context.Context, restaurantID string, sub *domain.Subcategory) error {
	if sub.CategoryID == "" || sub.NameEN == "" {
		return ErrInvalidCategory
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if err := s.subcategories.CreateSubcategory(sub); err != nil {
		return err
	}
	s.invalidate(ctx, restaurantID)
	return nil
}

func (s *CatalogService) ListSubcategories(restaurantID string) ([]domain.Subcategory, error) {
	return s.subcategories.ListSubcategories(restaurantID)
}

func (s *CatalogService) DeleteSubcategory(ctx context.Context, restaurantID, id string) (int64, error) {
	affected, err := s.subcategories.DeleteSubcategory(id)
	if err == nil && affected > 0 {
		s.invalidate(ctx, restaurantID)
	}
	return affected, err
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if item.RestaurantID == "" || item.CategoryID == "" || item.NameEN == "" {
		return ErrInvalidItem
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.items.CreateMenuItem(item); err != nil {
		return err
	}
	s.invalidate(ctx, item.RestaurantID)
	return nil
}

func (s *CatalogService) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	return s.items.ListMenuItems(restaurantID)
}

func (s *CatalogService) GetMenuItem(restaurantID, id string) (*domain.MenuItem, error) {
	return s.items.GetMenuItem(restaurantID, id)
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := s.items.UpdateMenuItem(item); err != nil {
		return err
	}
	s.invalidate(ctx, item.RestaurantID)
	return nil
}

func (s *CatalogService) SetAvailability(ctx context.Context, restaurantID, id string, available bool) error {
	if err := s.items.SetAvailability(restaurantID, id, available); err != nil {
		return err
	}
	s.invalidate(ctx, restaurantID)
	return nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, restaurantID, id string) (int64, error) {
	affected, err := s.items.DeleteMenuItem(restaurantID, id)
	if err == nil && affected > 0 {
		s.invalidate(ctx, restaurantID)
	}
	return affected, err
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

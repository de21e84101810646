// Package mocks holds testify mocks for the service-layer interfaces.
package mocks

import (
	"context"
	"time"

	"qrmenu/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type RestaurantRepository struct{ mock.Mock }

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	args := m.Called(id)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurantBySlug(slug string) (*domain.Restaurant, error) {
	args := m.Called(slug)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) SaveQRCode(restaurantID string, qr []byte) error {
	return m.Called(restaurantID, qr).Error(0)
}

func (m *RestaurantRepository) GetQRCode(restaurantID string) ([]byte, error) {
	args := m.Called(restaurantID)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

type CategoryRepository struct{ mock.Mock }

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CategoryRepository) CreateCategory(cat *domain.Category) error {
	return m.Called(cat).Error(0)
}

func (m *CategoryRepository) ListCategories(restaurantID string) ([]domain.Category, error) {
	args := m.Called(restaurantID)
	var r0 []domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Category)
	}
	return r0, args.Error(1)
}

func (m *CategoryRepository) UpdateCategory(cat *domain.Category) error {
	return m.Called(cat).Error(0)
}

func (m *CategoryRepository) DeleteCategory(restaurantID, id string) (int64, error) {
	args := m.Called(restaurantID, id)
	return args.Get(0).(int64), args.Error(1)
}

type SubcategoryRepository struct{ mock.Mock }

func NewSubcategoryRepository(t testingT) *SubcategoryRepository {
	m := &SubcategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SubcategoryRepository) CreateSubcategory(sub *domain.Subcategory) error {
	return m.Called(sub).Error(0)
}

func (m *SubcategoryRepository) ListSubcategories(restaurantID string) ([]domain.Subcategory, error) {
	args := m.Called(restaurantID)
	var r0 []domain.Subcategory
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Subcategory)
	}
	return r0, args.Error(1)
}

func (m *SubcategoryRepository) DeleteSubcategory(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type MenuItemRepository struct{ mock.Mock }

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuItemRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuItemRepository) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	var r0 []domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuItemRepository) GetMenuItem(restaurantID, id string) (*domain.MenuItem, error) {
	args := m.Called(restaurantID, id)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuItemRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuItemRepository) SetAvailability(restaurantID, id string, available bool) error {
	return m.Called(restaurantID, id, available).Error(0)
}

func (m *MenuItemRepository) DeleteMenuItem(restaurantID, id string) (int64, error) {
	args := m.Called(restaurantID, id)
	return args.Get(0).(int64), args.Error(1)
}

type ItemEventRepository struct{ mock.Mock }

func NewItemEventRepository(t testingT) *ItemEventRepository {
	m := &ItemEventRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ItemEventRepository) InsertItemEvent(event *domain.ItemEvent) error {
	return m.Called(event).Error(0)
}

func (m *ItemEventRepository) TopItemsToday(restaurantID string, limit int) ([]domain.PopularItem, error) {
	args := m.Called(restaurantID, limit)
	var r0 []domain.PopularItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PopularItem)
	}
	return r0, args.Error(1)
}

type LeadRepository struct{ mock.Mock }

func NewLeadRepository(t testingT) *LeadRepository {
	m := &LeadRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *LeadRepository) InsertLead(lead *domain.Lead) error {
	return m.Called(lead).Error(0)
}

func (m *LeadRepository) ListLeads() ([]domain.Lead, error) {
	args := m.Called()
	var r0 []domain.Lead
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Lead)
	}
	return r0, args.Error(1)
}

type MenuCache struct{ mock.Mock }

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) MenuKey(restaurantID string) string {
	return m.Called(restaurantID).String(0)
}

func (m *MenuCache) GetMenu(ctx context.Context, key string) (*domain.Menu, error) {
	args := m.Called(ctx, key)
	var r0 *domain.Menu
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Menu)
	}
	return r0, args.Error(1)
}

func (m *MenuCache) SetMenu(ctx context.Context, key string, menu *domain.Menu) error {
	return m.Called(ctx, key, menu).Error(0)
}

func (m *MenuCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type EventPublisher struct{ mock.Mock }

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) Publish(ctx context.Context, msg domain.EventMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type PopularityStore struct{ mock.Mock }

func NewPopularityStore(t testingT) *PopularityStore {
	m := &PopularityStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PopularityStore) RecordItemEvent(ctx context.Context, restaurantID, itemID string, day time.Time) error {
	return m.Called(ctx, restaurantID, itemID, day).Error(0)
}

func (m *PopularityStore) TopItems(ctx context.Context, restaurantID string, day time.Time, limit int) ([]domain.PopularItem, error) {
	args := m.Called(ctx, restaurantID, day, limit)
	var r0 []domain.PopularItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PopularItem)
	}
	return r0, args.Error(1)
}

type QRGenerator struct{ mock.Mock }

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(slug string) ([]byte, error) {
	args := m.Called(slug)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

type MenuServiceInterface struct{ mock.Mock }

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) Snapshot(ctx context.Context, slug string) (*domain.Menu, error) {
	args := m.Called(ctx, slug)
	var r0 *domain.Menu
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Menu)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) Invalidate(ctx context.Context, restaurantID string) error {
	return m.Called(ctx, restaurantID).Error(0)
}

func (m *MenuServiceInterface) RecordCartAdd(ctx context.Context, restaurantID, itemID string) error {
	return m.Called(ctx, restaurantID, itemID).Error(0)
}

func (m *MenuServiceInterface) PopularToday(ctx context.Context, restaurantID string, limit int) ([]domain.PopularItem, error) {
	args := m.Called(ctx, restaurantID, limit)
	var r0 []domain.PopularItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.PopularItem)
	}
	return r0, args.Error(1)
}

type RestaurantServiceInterface struct{ mock.Mock }

func NewRestaurantServiceInterface(t testingT) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantServiceInterface) Create(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantServiceInterface) Get(id string) (*domain.Restaurant, error) {
	args := m.Called(id)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantServiceInterface) GetBySlug(slug string) (*domain.Restaurant, error) {
	args := m.Called(slug)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantServiceInterface) Update(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantServiceInterface) MenuQRCode(id string) ([]byte, error) {
	args := m.Called(id)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

type CatalogServiceInterface struct{ mock.Mock }

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) CreateCategory(ctx context.Context, cat *domain.Category) error {
	return m.Called(ctx, cat).Error(0)
}

func (m *CatalogServiceInterface) ListCategories(restaurantID string) ([]domain.Category, error) {
	args := m.Called(restaurantID)
	var r0 []domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Category)
	}
	return r0, args.Error(1)
}

func (m *CatalogServiceInterface) UpdateCategory(ctx context.Context, cat *domain.Category) error {
	return m.Called(ctx, cat).Error(0)
}

func (m *CatalogServiceInterface) DeleteCategory(ctx context.Context, restaurantID, id string) (int64, error) {
	args := m.Called(ctx, restaurantID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogServiceInterface) CreateSubcategory(ctx context.Context, restaurantID string, sub *domain.Subcategory) error {
	return m.Called(ctx, restaurantID, sub).Error(0)
}

func (m *CatalogServiceInterface) ListSubcategories(restaurantID string) ([]domain.Subcategory, error) {
	args := m.Called(restaurantID)
	var r0 []domain.Subcategory
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Subcategory)
	}
	return r0, args.Error(1)
}

func (m *CatalogServiceInterface) DeleteSubcategory(ctx context.Context, restaurantID, id string) (int64, error) {
	args := m.Called(ctx, restaurantID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogServiceInterface) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *CatalogServiceInterface) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	var r0 []domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *CatalogServiceInterface) GetMenuItem(restaurantID, id string) (*domain.MenuItem, error) {
	args := m.Called(restaurantID, id)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *CatalogServiceInterface) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *CatalogServiceInterface) SetAvailability(ctx context.Context, restaurantID, id string, available bool) error {
	return m.Called(ctx, restaurantID, id, available).Error(0)
}

func (m *CatalogServiceInterface) DeleteMenuItem(ctx context.Context, restaurantID, id string) (int64, error) {
	args := m.Called(ctx, restaurantID, id)
	return args.Get(0).(int64), args.Error(1)
}

type LeadServiceInterface struct{ mock.Mock }

func NewLeadServiceInterface(t testingT) *LeadServiceInterface {
	m := &LeadServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *LeadServiceInterface) Submit(ctx context.Context, lead *domain.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *LeadServiceInterface) List() ([]domain.Lead, error) {
	args := m.Called()
	var r0 []domain.Lead
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Lead)
	}
	return r0, args.Error(1)
}

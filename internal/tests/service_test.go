package tests

import (
	"context"
	"testing"

	"qrmenu/internal/domain"
	"qrmenu/internal/mocks"
	"qrmenu/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_CreateCategory(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.Category
		mockError error
		wantErr   error
	}{
		{
			name:  "valid category",
			input: &domain.Category{RestaurantID: "r1", NameEN: "Drinks", SortOrder: 3},
		},
		{
			name:    "missing restaurant",
			input:   &domain.Category{NameEN: "Drinks"},
			wantErr: service.ErrInvalidCategory,
		},
		{
			name:    "missing name",
			input:   &domain.Category{RestaurantID: "r1"},
			wantErr: service.ErrInvalidCategory,
		},
		{
			name:      "database error",
			input:     &domain.Category{RestaurantID: "r1", NameEN: "Drinks"},
			mockError: assert.AnError,
			wantErr:   assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewCategoryRepository(t)
			mockMenus := mocks.NewMenuServiceInterface(t)
			svc := service.NewCatalogService(mockRepo, nil, nil, mockMenus)

			if testCase.wantErr == nil || testCase.mockError != nil {
				mockRepo.On("CreateCategory", testCase.input).Return(testCase.mockError).Once()
			}
			if testCase.wantErr == nil {
				mockMenus.On("Invalidate", mock.Anything, "r1").Return(nil).Once()
			}

			err := svc.CreateCategory(context.Background(), testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, testCase.input.ID, "service mints the id")
			}
		})
	}
}

func TestCatalogService_DeleteMenuItem(t *testing.T) {
	tests := []struct {
		name         string
		affected     int64
		invalidation bool
	}{
		{name: "deleted rows invalidate the snapshot", affected: 1, invalidation: true},
		{name: "missing item leaves cache alone", affected: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewMenuItemRepository(t)
			mockMenus := mocks.NewMenuServiceInterface(t)
			svc := service.NewCatalogService(nil, nil, mockRepo, mockMenus)

			mockRepo.On("DeleteMenuItem", "r1", "i1").Return(testCase.affected, nil).Once()
			if testCase.invalidation {
				mockMenus.On("Invalidate", mock.Anything, "r1").Return(nil).Once()
			}

			affected, err := svc.DeleteMenuItem(context.Background(), "r1", "i1")

			assert.NoError(t, err)
			assert.Equal(t, testCase.affected, affected)
		})
	}
}

func TestCatalogService_SetAvailability(t *testing.T) {
	mockRepo := mocks.NewMenuItemRepository(t)
	mockMenus := mocks.NewMenuServiceInterface(t)
	svc := service.NewCatalogService(nil, nil, mockRepo, mockMenus)

	mockRepo.On("SetAvailability", "r1", "i1", false).Return(nil).Once()
	mockMenus.On("Invalidate", mock.Anything, "r1").Return(nil).Once()

	assert.NoError(t, svc.SetAvailability(context.Background(), "r1", "i1", false))
}

func TestMenuService_Snapshot_CacheHit(t *testing.T) {
	mockRest := mocks.NewRestaurantRepository(t)
	mockCache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(mockRest, nil, nil, nil, mockCache, nil, nil, nil)

	rest := &domain.Restaurant{ID: "r1", Slug: "habaybna"}
	cached := &domain.Menu{Restaurant: *rest}

	mockRest.On("GetRestaurantBySlug", "habaybna").Return(rest, nil).Once()
	mockCache.On("MenuKey", "r1").Return("menu:r1").Once()
	mockCache.On("GetMenu", mock.Anything, "menu:r1").Return(cached, nil).Once()

	menu, err := svc.Snapshot(context.Background(), "habaybna")

	assert.NoError(t, err)
	assert.Equal(t, cached, menu)
}

func TestMenuService_Snapshot_AssemblesAndSorts(t *testing.T) {
	mockRest := mocks.NewRestaurantRepository(t)
	mockCats := mocks.NewCategoryRepository(t)
	mockSubs := mocks.NewSubcategoryRepository(t)
	mockItems := mocks.NewMenuItemRepository(t)
	mockCache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(mockRest, mockCats, mockSubs, mockItems, mockCache, nil, nil, nil)

	rest := &domain.Restaurant{ID: "r1", Slug: "habaybna"}
	categories := []domain.Category{
		{ID: "B", SortOrder: 2},
		{ID: "A", SortOrder: 1},
	}

	mockRest.On("GetRestaurantBySlug", "habaybna").Return(rest, nil).Once()
	mockCache.On("MenuKey", "r1").Return("menu:r1").Twice()
	mockCache.On("GetMenu", mock.Anything, "menu:r1").Return(nil, nil).Once()
	mockCats.On("ListCategories", "r1").Return(categories, nil).Once()
	mockSubs.On("ListSubcategories", "r1").Return([]domain.Subcategory{}, nil).Once()
	mockItems.On("ListMenuItems", "r1").Return([]domain.MenuItem{}, nil).Once()
	mockCache.On("SetMenu", mock.Anything, "menu:r1", mock.Anything).Return(nil).Once()

	menu, err := svc.Snapshot(context.Background(), "habaybna")

	assert.NoError(t, err)
	assert.Equal(t, "A", menu.Categories[0].ID)
	assert.Equal(t, "B", menu.Categories[1].ID)
}

func TestMenuService_Snapshot_UnknownSlug(t *testing.T) {
	mockRest := mocks.NewRestaurantRepository(t)
	svc := service.NewMenuService(mockRest, nil, nil, nil, nil, nil, nil, nil)

	mockRest.On("GetRestaurantBySlug", "ghost").Return(nil, assert.AnError).Once()

	menu, err := svc.Snapshot(context.Background(), "ghost")

	assert.Error(t, err)
	assert.Nil(t, menu)
}

func TestMenuService_PopularToday(t *testing.T) {
	mockItems := mocks.NewMenuItemRepository(t)
	mockPopularity := mocks.NewPopularityStore(t)
	svc := service.NewMenuService(nil, nil, nil, mockItems, nil, mockPopularity, nil, nil)

	ranked := []domain.PopularItem{{ItemID: "i1", Count: 7}, {ItemID: "gone", Count: 2}}
	mockPopularity.On("TopItems", mock.Anything, "r1", mock.Anything, 5).Return(ranked, nil).Once()
	mockItems.On("GetMenuItem", "r1", "i1").Return(&domain.MenuItem{ID: "i1", NameEN: "Latte", NameAR: "لاتيه"}, nil).Once()
	mockItems.On("GetMenuItem", "r1", "gone").Return(nil, assert.AnError).Once()

	result, err := svc.PopularToday(context.Background(), "r1", 5)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Latte", result[0].NameEN)
	assert.Empty(t, result[1].NameEN, "deleted items keep their rank without names")
}

func TestMenuService_PopularToday_RebuildsFromEventLog(t *testing.T) {
	tests := []struct {
		name       string
		setupRedis func(store *mocks.PopularityStore)
	}{
		{
			name: "empty sorted set",
			setupRedis: func(store *mocks.PopularityStore) {
				store.On("TopItems", mock.Anything, "r1", mock.Anything, 5).Return([]domain.PopularItem{}, nil).Once()
			},
		},
		{
			name: "redis unavailable",
			setupRedis: func(store *mocks.PopularityStore) {
				store.On("TopItems", mock.Anything, "r1", mock.Anything, 5).Return(nil, assert.AnError).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockPopularity := mocks.NewPopularityStore(t)
			mockEvents := mocks.NewItemEventRepository(t)
			svc := service.NewMenuService(nil, nil, nil, nil, nil, mockPopularity, nil, mockEvents)

			testCase.setupRedis(mockPopularity)
			fromDB := []domain.PopularItem{{ItemID: "i1", NameEN: "Latte", Count: 4}}
			mockEvents.On("TopItemsToday", "r1", 5).Return(fromDB, nil).Once()

			result, err := svc.PopularToday(context.Background(), "r1", 5)

			assert.NoError(t, err)
			assert.Equal(t, fromDB, result)
		})
	}
}

func TestMenuService_PopularToday_EmptyWithoutEventLog(t *testing.T) {
	mockPopularity := mocks.NewPopularityStore(t)
	svc := service.NewMenuService(nil, nil, nil, nil, nil, mockPopularity, nil, nil)

	mockPopularity.On("TopItems", mock.Anything, "r1", mock.Anything, 5).Return([]domain.PopularItem{}, nil).Once()

	result, err := svc.PopularToday(context.Background(), "r1", 5)

	assert.NoError(t, err)
	assert.Equal(t, []domain.PopularItem{}, result)
}

func TestRestaurantService_MenuQRCode(t *testing.T) {
	t.Run("cached code served as is", func(t *testing.T) {
		mockRepo := mocks.NewRestaurantRepository(t)
		svc := service.NewRestaurantService(mockRepo, nil)

		mockRepo.On("GetQRCode", "r1").Return([]byte("png"), nil).Once()

		qr, err := svc.MenuQRCode("r1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("png"), qr)
	})

	t.Run("missing code regenerated and stored", func(t *testing.T) {
		mockRepo := mocks.NewRestaurantRepository(t)
		mockQR := mocks.NewQRGenerator(t)
		svc := service.NewRestaurantService(mockRepo, mockQR)

		mockRepo.On("GetQRCode", "r1").Return([]byte{}, nil).Once()
		mockRepo.On("GetRestaurant", "r1").Return(&domain.Restaurant{ID: "r1", Slug: "habaybna"}, nil).Once()
		mockQR.On("Generate", "habaybna").Return([]byte("fresh"), nil).Once()
		mockRepo.On("SaveQRCode", "r1", []byte("fresh")).Return(nil).Once()

		qr, err := svc.MenuQRCode("r1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})

	t.Run("store failure still serves the fresh code", func(t *testing.T) {
		mockRepo := mocks.NewRestaurantRepository(t)
		mockQR := mocks.NewQRGenerator(t)
		svc := service.NewRestaurantService(mockRepo, mockQR)

		mockRepo.On("GetQRCode", "r1").Return([]byte{}, nil).Once()
		mockRepo.On("GetRestaurant", "r1").Return(&domain.Restaurant{ID: "r1", Slug: "habaybna"}, nil).Once()
		mockQR.On("Generate", "habaybna").Return([]byte("fresh"), nil).Once()
		mockRepo.On("SaveQRCode", "r1", []byte("fresh")).Return(assert.AnError).Once()

		qr, err := svc.MenuQRCode("r1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})

	t.Run("no generator and no cached code", func(t *testing.T) {
		mockRepo := mocks.NewRestaurantRepository(t)
		svc := service.NewRestaurantService(mockRepo, nil)

		mockRepo.On("GetQRCode", "r1").Return([]byte{}, nil).Once()

		qr, err := svc.MenuQRCode("r1")
		assert.ErrorIs(t, err, service.ErrNoQRCode)
		assert.Nil(t, qr)
	})
}

func TestRestaurantService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   *domain.Restaurant
		wantErr bool
	}{
		{name: "valid", input: &domain.Restaurant{Slug: "habaybna", NameEN: "Habaybna"}},
		{name: "missing slug", input: &domain.Restaurant{NameEN: "Habaybna"}, wantErr: true},
		{name: "missing name", input: &domain.Restaurant{Slug: "habaybna"}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewRestaurantRepository(t)
			svc := service.NewRestaurantService(mockRepo, nil)

			if !testCase.wantErr {
				mockRepo.On("CreateRestaurant", testCase.input).Return(nil).Once()
			}

			err := svc.Create(testCase.input)

			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidRestaurant)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, testCase.input.ID)
			}
		})
	}
}

func TestLeadService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		input   *domain.Lead
		wantErr bool
	}{
		{name: "valid lead", input: &domain.Lead{Name: "Ali", Phone: "0770"}},
		{name: "missing phone", input: &domain.Lead{Name: "Ali"}, wantErr: true},
		{name: "missing name", input: &domain.Lead{Phone: "0770"}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewLeadRepository(t)
			mockPublisher := mocks.NewEventPublisher(t)
			svc := service.NewLeadService(mockRepo, mockPublisher)

			if !testCase.wantErr {
				mockRepo.On("InsertLead", testCase.input).Return(nil).Once()
				mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			}

			err := svc.Submit(context.Background(), testCase.input)

			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidLead)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLeadService_SubmitSurvivesPublishError(t *testing.T) {
	mockRepo := mocks.NewLeadRepository(t)
	mockPublisher := mocks.NewEventPublisher(t)
	svc := service.NewLeadService(mockRepo, mockPublisher)

	lead := &domain.Lead{Name: "Ali", Phone: "0770"}
	mockRepo.On("InsertLead", lead).Return(nil).Once()
	mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	assert.NoError(t, svc.Submit(context.Background(), lead), "the lead is stored; the event is best effort")
}

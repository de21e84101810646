package tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "qrmenu/internal/api/http"
	"qrmenu/internal/domain"
	"qrmenu/internal/mocks"
	"qrmenu/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	restaurants *mocks.RestaurantServiceInterface
	catalog     *mocks.CatalogServiceInterface
	menus       *mocks.MenuServiceInterface
	leads       *mocks.LeadServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		catalog:     mocks.NewCatalogServiceInterface(t),
		menus:       mocks.NewMenuServiceInterface(t),
		leads:       mocks.NewLeadServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.restaurants, m.catalog, m.menus, m.leads)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func TestHandler_healthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "menu-svc", body["service"])
}

func TestHandler_getMenu(t *testing.T) {
	tests := []struct {
		name         string
		slug         string
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			slug: "habaybna",
			prepareMocks: func(m handlerMocks) {
				m.menus.On("Snapshot", mock.Anything, "habaybna").
					Return(&domain.Menu{Restaurant: domain.Restaurant{Slug: "habaybna"}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"slug":"habaybna"`,
		},
		{
			name: "backend error",
			slug: "habaybna",
			prepareMocks: func(m handlerMocks) {
				m.menus.On("Snapshot", mock.Anything, "habaybna").
					Return(nil, assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("GET", "/api/menu/"+testCase.slug, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_createLead(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m handlerMocks)
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"name":"Ali","phone":"0770","restaurant_name":"Habaybna"}`,
			prepareMocks: func(m handlerMocks) {
				m.leads.On("Submit", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid json",
			payload:      `bad json`,
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "validation error",
			payload: `{"name":"Ali"}`,
			prepareMocks: func(m handlerMocks) {
				m.leads.On("Submit", mock.Anything, mock.Anything).Return(service.ErrInvalidLead).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/api/leads", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_createCategory(t *testing.T) {
	router, m := setupTestRouter(t)

	m.catalog.On("CreateCategory", mock.Anything, mock.MatchedBy(func(cat *domain.Category) bool {
		return cat.RestaurantID == "r1" && cat.NameEN == "Drinks"
	})).Return(nil).Once()

	payload := `{"name_en":"Drinks","name_ar":"مشروبات","sort_order":2}`
	req := httptest.NewRequest("POST", "/api/restaurants/r1/categories", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHandler_deleteCategory(t *testing.T) {
	tests := []struct {
		name         string
		affected     int64
		expectedCode int
	}{
		{name: "deleted", affected: 1, expectedCode: http.StatusNoContent},
		{name: "not found", affected: 0, expectedCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			m.catalog.On("DeleteCategory", mock.Anything, "r1", "c1").Return(testCase.affected, nil).Once()

			req := httptest.NewRequest("DELETE", "/api/restaurants/r1/categories/c1", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_setAvailability(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{name: "existing item", expectedCode: http.StatusOK},
		{name: "missing item", serviceErr: sql.ErrNoRows, expectedCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			m.catalog.On("SetAvailability", mock.Anything, "r1", "i1", false).Return(testCase.serviceErr).Once()

			req := httptest.NewRequest("PATCH", "/api/restaurants/r1/items/i1/availability", bytes.NewBufferString(`{"is_available":false}`))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.serviceErr == nil {
				assert.Contains(t, recorder.Body.String(), `"is_available":false`)
			}
		})
	}
}

func TestHandler_updateMenuItem_NotFound(t *testing.T) {
	router, m := setupTestRouter(t)

	m.catalog.On("UpdateMenuItem", mock.Anything, mock.Anything).Return(sql.ErrNoRows).Once()

	payload := `{"name_en":"Latte","category_id":"c1","price":"9,000 IQD"}`
	req := httptest.NewRequest("PUT", "/api/restaurants/r1/items/missing", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_listMenuItems_EmptyIsArray(t *testing.T) {
	router, m := setupTestRouter(t)

	m.catalog.On("ListMenuItems", "r1").Return(nil, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/r1/items", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]\n", recorder.Body.String())
}

func TestHandler_recordCartAdd(t *testing.T) {
	router, m := setupTestRouter(t)

	m.menus.On("RecordCartAdd", mock.Anything, "r1", "i1").Return(nil).Once()

	req := httptest.NewRequest("POST", "/api/restaurants/r1/items/i1/cart-add", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

func TestHandler_getPopular(t *testing.T) {
	router, m := setupTestRouter(t)

	ranked := []domain.PopularItem{{ItemID: "i1", NameEN: "Latte", Count: 9}}
	m.menus.On("PopularToday", mock.Anything, "r1", 3).Return(ranked, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/r1/popular?limit=3", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Latte"`)
}

func TestHandler_getMenuQRCode(t *testing.T) {
	router, m := setupTestRouter(t)

	m.restaurants.On("MenuQRCode", "r1").Return([]byte("png-bytes"), nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/r1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

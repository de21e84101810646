package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"qrmenu/internal/domain"
	"qrmenu/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Catalog     service.CatalogServiceInterface
	Menus       service.MenuServiceInterface
	Leads       service.LeadServiceInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, catalogSvc service.CatalogServiceInterface, menuSvc service.MenuServiceInterface, leadSvc service.LeadServiceInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Catalog:     catalogSvc,
		Menus:       menuSvc,
		Leads:       leadSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getMenuQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories/{categoryId}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories/{categoryId}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/subcategories", h.createSubcategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/subcategories", h.listSubcategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/subcategories/{subcategoryId}", h.deleteSubcategory).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}/availability", h.setAvailability).Methods("PATCH")

	r.HandleFunc("/api/menu/{slug}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}/cart-add", h.recordCartAdd).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/popular", h.getPopular).Methods("GET")

	r.HandleFunc("/api/leads", h.createLead).Methods("POST")
	r.HandleFunc("/api/leads", h.listLeads).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.Create(&rest); err != nil {
		if errors.Is(err, service.ErrInvalidRestaurant) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID = mux.Vars(r)["id"]
	if err := h.Restaurants.Update(&rest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Restaurants.MenuQRCode(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, service.ErrNoQRCode) {
			http.Error(w, "QR code not available", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var cat domain.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cat.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Catalog.CreateCategory(r.Context(), &cat); err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var cat domain.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cat.ID = vars["categoryId"]
	cat.RestaurantID = vars["restaurantId"]
	if err := h.Catalog.UpdateCategory(r.Context(), &cat); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affected, err := h.Catalog.DeleteCategory(r.Context(), vars["restaurantId"], vars["categoryId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createSubcategory(w http.ResponseWriter, r *http.Request) {
	var sub domain.Subcategory
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.CreateSubcategory(r.Context(), mux.Vars(r)["restaurantId"], &sub); err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) listSubcategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Catalog.ListSubcategories(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if subs == nil {
		subs = []domain.Subcategory{}
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *Handler) deleteSubcategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affected, err := h.Catalog.DeleteSubcategory(r.Context(), vars["restaurantId"], vars["subcategoryId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.Error(w, "Subcategory not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Catalog.CreateMenuItem(r.Context(), &item); err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListMenuItems(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	item, err := h.Catalog.GetMenuItem(vars["restaurantId"], vars["itemId"])
	if err != nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = vars["itemId"]
	item.RestaurantID = vars["restaurantId"]
	if err := h.Catalog.UpdateMenuItem(r.Context(), &item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	affected, err := h.Catalog.DeleteMenuItem(r.Context(), vars["restaurantId"], vars["itemId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var payload struct {
		Available bool `json:"is_available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.SetAvailability(r.Context(), vars["restaurantId"], vars["itemId"], payload.Available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_available": payload.Available})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.Snapshot(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) recordCartAdd(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Menus.RecordCartAdd(r.Context(), vars["restaurantId"], vars["itemId"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ranked, err := h.Menus.PopularToday(r.Context(), mux.Vars(r)["restaurantId"], limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ranked == nil {
		ranked = []domain.PopularItem{}
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	var lead domain.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Leads.Submit(r.Context(), &lead); err != nil {
		if errors.Is(err, service.ErrInvalidLead) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

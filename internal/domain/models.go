package domain

import "time"

// Language selects which localized column of a record is shown.
type Language string

const (
	LangEN Language = "en"
	LangAR Language = "ar"
)

type Restaurant struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	NameEN    string    `json:"name_en"`
	NameAR    string    `json:"name_ar"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	NameEN       string    `json:"name_en"`
	NameAR       string    `json:"name_ar"`
	SortOrder    int       `json:"sort_order"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c Category) Name(lang Language) string {
	if lang == LangAR {
		return c.NameAR
	}
	return c.NameEN
}

type Subcategory struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	NameEN     string    `json:"name_en"`
	NameAR     string    `json:"name_ar"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s Subcategory) Name(lang Language) string {
	if lang == LangAR {
		return s.NameAR
	}
	return s.NameEN
}

// MenuItem's price arrives as admin-entered text ("25,000 IQD") and is
// normalized by catalog.ParsePrice before any arithmetic.
// SubcategoryID empty means the item is a direct child of its category.
// Available nil means available; only an explicit false hides the
// add-to-cart affordance.
type MenuItem struct {
	ID            string    `json:"id"`
	RestaurantID  string    `json:"restaurant_id"`
	CategoryID    string    `json:"category_id"`
	SubcategoryID string    `json:"subcategory_id,omitempty"`
	NameEN        string    `json:"name_en"`
	NameAR        string    `json:"name_ar"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAR string    `json:"description_ar"`
	Price         string    `json:"price"`
	ImageURL      string    `json:"image_url"`
	Available     *bool     `json:"is_available,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (m MenuItem) Name(lang Language) string {
	if lang == LangAR {
		return m.NameAR
	}
	return m.NameEN
}

func (m MenuItem) Description(lang Language) string {
	if lang == LangAR {
		return m.DescriptionAR
	}
	return m.DescriptionEN
}

// IsAvailable treats an unset flag as available.
func (m MenuItem) IsAvailable() bool {
	return m.Available == nil || *m.Available
}

// Lead is a contact-form submission from the marketing site.
type Lead struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	RestaurantName string    `json:"restaurant_name"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// Menu is the one-shot snapshot a template consumes: categories sorted
// by sort_order, subcategories and items in storage order.
type Menu struct {
	Restaurant    Restaurant    `json:"restaurant"`
	Categories    []Category    `json:"categories"`
	Subcategories []Subcategory `json:"subcategories"`
	Items         []MenuItem    `json:"items"`
}

// PopularItem is a ranked entry in a restaurant's daily popularity
// board.
type PopularItem struct {
	ItemID string  `json:"item_id"`
	NameEN string  `json:"name_en"`
	NameAR string  `json:"name_ar"`
	Count  float64 `json:"count"`
}

// ItemEvent is the durable copy of a counted menu event. Redis keeps
// the live ranking; these rows rebuild it when the sorted set is gone.
type ItemEvent struct {
	RestaurantID string    `json:"restaurant_id"`
	ItemID       string    `json:"item_id"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

type EventMessage struct {
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurant_id"`
	ItemID       string    `json:"item_id,omitempty"`
	LeadID       string    `json:"lead_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventCartAdd  = "cart_add"
	EventItemView = "item_view"
	EventNewLead  = "new_lead"
)

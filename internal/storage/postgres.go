package storage

import (
	"database/sql"

	"qrmenu/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (id, slug, name_en, name_ar) VALUES ($1, $2, $3, $4) RETURNING created_at",
		rest.ID, rest.Slug, rest.NameEN, rest.NameAR,
	).Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, slug, name_en, COALESCE(name_ar, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Slug, &rest.NameEN, &rest.NameAR, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantBySlug(slug string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, slug, name_en, COALESCE(name_ar, ''), created_at
		FROM restaurants
		WHERE slug = $1`, slug).
		Scan(&rest.ID, &rest.Slug, &rest.NameEN, &rest.NameAR, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"UPDATE restaurants SET slug=$1, name_en=$2, name_ar=$3 WHERE id=$4 RETURNING created_at",
		rest.Slug, rest.NameEN, rest.NameAR, rest.ID).
		Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) SaveQRCode(restaurantID string, qr []byte) error {
	_, err := r.DB.Exec("UPDATE restaurants SET qr_code = $1 WHERE id = $2", qr, restaurantID)
	return err
}

func (r *PostgresRepository) GetQRCode(restaurantID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM restaurants WHERE id = $1", restaurantID).Scan(&qr)
	if err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) CreateCategory(cat *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (id, restaurant_id, name_en, name_ar, sort_order, image_url) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at",
		cat.ID, cat.RestaurantID, cat.NameEN, cat.NameAR, cat.SortOrder, cat.ImageURL).
		Scan(&cat.CreatedAt)
}

// ListCategories orders by admin-assigned sort_order; creation time
// breaks ties so equal orders keep a stable relative position.
func (r *PostgresRepository) ListCategories(restaurantID string) ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name_en, COALESCE(name_ar, ''), sort_order, COALESCE(image_url, ''), created_at
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY sort_order ASC, created_at ASC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.RestaurantID, &cat.NameEN, &cat.NameAR, &cat.SortOrder, &cat.ImageURL, &cat.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (r *PostgresRepository) UpdateCategory(cat *domain.Category) error {
	return r.DB.QueryRow(
		"UPDATE categories SET name_en=$1, name_ar=$2, sort_order=$3, image_url=$4 WHERE id=$5 AND restaurant_id=$6 RETURNING created_at",
		cat.NameEN, cat.NameAR, cat.SortOrder, cat.ImageURL, cat.ID, cat.RestaurantID).
		Scan(&cat.CreatedAt)
}

func (r *PostgresRepository) DeleteCategory(restaurantID, id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id=$1 AND restaurant_id=$2", id, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateSubcategory(sub *domain.Subcategory) error {
	return r.DB.QueryRow(
		"INSERT INTO subcategories (id, category_id, name_en, name_ar, image_url) VALUES ($1, $2, $3, $4, $5) RETURNING created_at",
		sub.ID, sub.CategoryID, sub.NameEN, sub.NameAR, sub.ImageURL).
		Scan(&sub.CreatedAt)
}

func (r *PostgresRepository) ListSubcategories(restaurantID string) ([]domain.Subcategory, error) {
	rows, err := r.DB.Query(`
		SELECT s.id, s.category_id, s.name_en, COALESCE(s.name_ar, ''), COALESCE(s.image_url, ''), s.created_at
		FROM subcategories s
		JOIN categories c ON s.category_id = c.id
		WHERE c.restaurant_id = $1
		ORDER BY s.created_at ASC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subcategory
	for rows.Next() {
		var sub domain.Subcategory
		if err := rows.Scan(&sub.ID, &sub.CategoryID, &sub.NameEN, &sub.NameAR, &sub.ImageURL, &sub.CreatedAt); err != nil {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (r *PostgresRepository) DeleteSubcategory(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM subcategories WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (id, restaurant_id, category_id, subcategory_id, name_en, name_ar, description_en, description_ar, price, image_url, is_available)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`,
		item.ID, item.RestaurantID, item.CategoryID, item.SubcategoryID,
		item.NameEN, item.NameAR, item.DescriptionEN, item.DescriptionAR,
		item.Price, item.ImageURL, item.IsAvailable()).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, category_id, COALESCE(subcategory_id, ''), name_en, COALESCE(name_ar, ''),
		       COALESCE(description_en, ''), COALESCE(description_ar, ''), COALESCE(price, ''), COALESCE(image_url, ''),
		       is_available, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at ASC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(restaurantID, id string) (*domain.MenuItem, error) {
	row := r.DB.QueryRow(`
		SELECT id, restaurant_id, category_id, COALESCE(subcategory_id, ''), name_en, COALESCE(name_ar, ''),
		       COALESCE(description_en, ''), COALESCE(description_ar, ''), COALESCE(price, ''), COALESCE(image_url, ''),
		       is_available, created_at
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2`, id, restaurantID)

	item, err := scanMenuItem(row)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		UPDATE menu_items
		SET category_id=$1, subcategory_id=NULLIF($2, ''), name_en=$3, name_ar=$4,
		    description_en=$5, description_ar=$6, price=$7, image_url=$8, is_available=$9
		WHERE id=$10 AND restaurant_id=$11
		RETURNING created_at`,
		item.CategoryID, item.SubcategoryID, item.NameEN, item.NameAR,
		item.DescriptionEN, item.DescriptionAR, item.Price, item.ImageURL,
		item.IsAvailable(), item.ID, item.RestaurantID).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) SetAvailability(restaurantID, id string, available bool) error {
	result, err := r.DB.Exec("UPDATE menu_items SET is_available = $1 WHERE id = $2 AND restaurant_id = $3",
		available, id, restaurantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", id, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) InsertItemEvent(event *domain.ItemEvent) error {
	_, err := r.DB.Exec(
		"INSERT INTO item_events (restaurant_id, item_id, event_type, created_at) VALUES ($1, $2, $3, $4)",
		event.RestaurantID, event.ItemID, event.Type, event.CreatedAt)
	return err
}

// TopItemsToday aggregates the persisted event log for the current day.
// Names come from the join, so deleted items drop off the board here
// rather than surfacing without a label.
func (r *PostgresRepository) TopItemsToday(restaurantID string, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.DB.Query(`
		SELECT e.item_id, i.name_en, COALESCE(i.name_ar, ''), COUNT(e.item_id) AS score
		FROM item_events e
		JOIN menu_items i ON e.item_id = i.id
		WHERE e.restaurant_id = $1 AND e.created_at::date = CURRENT_DATE
		GROUP BY e.item_id, i.name_en, i.name_ar
		ORDER BY score DESC
		LIMIT $2`, restaurantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []domain.PopularItem
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.ItemID, &item.NameEN, &item.NameAR, &item.Count); err != nil {
			continue
		}
		ranked = append(ranked, item)
	}
	return ranked, nil
}

func (r *PostgresRepository) InsertLead(lead *domain.Lead) error {
	return r.DB.QueryRow(
		"INSERT INTO leads (id, name, phone, restaurant_name, message) VALUES ($1, $2, $3, $4, $5) RETURNING created_at",
		lead.ID, lead.Name, lead.Phone, lead.RestaurantName, lead.Message).
		Scan(&lead.CreatedAt)
}

func (r *PostgresRepository) ListLeads() ([]domain.Lead, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, phone, COALESCE(restaurant_name, ''), COALESCE(message, ''), created_at
		FROM leads
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Phone, &lead.RestaurantName, &lead.Message, &lead.CreatedAt); err != nil {
			continue
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var item domain.MenuItem
	var available sql.NullBool
	err := row.Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.SubcategoryID,
		&item.NameEN, &item.NameAR, &item.DescriptionEN, &item.DescriptionAR,
		&item.Price, &item.ImageURL, &available, &item.CreatedAt)
	if err != nil {
		return item, err
	}
	if available.Valid {
		item.Available = &available.Bool
	}
	return item, nil
}

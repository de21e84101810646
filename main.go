package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"qrmenu/config"
	httpapi "qrmenu/internal/api/http"
	"qrmenu/internal/service"
	"qrmenu/internal/storage"
)

const menuEventsTopic = "menu-events"

func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			slug TEXT UNIQUE NOT NULL,
			name_en TEXT NOT NULL,
			name_ar TEXT,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			name_en TEXT NOT NULL,
			name_ar TEXT,
			sort_order INT NOT NULL DEFAULT 100,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS subcategories (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL REFERENCES categories(id),
			name_en TEXT NOT NULL,
			name_ar TEXT,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			category_id TEXT NOT NULL,
			subcategory_id TEXT,
			name_en TEXT NOT NULL,
			name_ar TEXT,
			description_en TEXT,
			description_ar TEXT,
			price TEXT,
			image_url TEXT,
			is_available BOOLEAN,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS item_events (
			id SERIAL PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			restaurant_name TEXT,
			message TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 5*time.Minute)
	popularity := storage.NewRedisPopularity(rdb, 48*time.Hour)
	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter(menuEventsTopic))

	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:3000")}

	menuSvc := service.NewMenuService(repo, repo, repo, repo, cache, popularity, publisher, repo)
	restSvc := service.NewRestaurantService(repo, qr)
	catalogSvc := service.NewCatalogService(repo, repo, repo, menuSvc)
	leadSvc := service.NewLeadService(repo, publisher)

	consumer := service.NewConsumer(config.NewKafkaReader(menuEventsTopic, "menu-popularity"), popularity, repo)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(restSvc, catalogSvc, menuSvc, leadSvc)
	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), httpapi.NewRouter(handler))
}

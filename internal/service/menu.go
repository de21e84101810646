package service

import (
	"context"
	"fmt"
	"time"

	"qrmenu/internal/catalog"
	"qrmenu/internal/domain"
)

// MenuService assembles the one-shot snapshot the menu templates
// consume and keeps the popularity board.
type MenuService struct {
	restaurants RestaurantRepository
	categories  CategoryRepository
	subs        SubcategoryRepository
	items       MenuItemRepository
	cache       MenuCache
	popularity  PopularityStore
	publisher   EventPublisher
	events      ItemEventRepository
}

func NewMenuService(restaurants RestaurantRepository, categories CategoryRepository, subs SubcategoryRepository, items MenuItemRepository, cache MenuCache, popularity PopularityStore, publisher EventPublisher, events ItemEventRepository) *MenuService {
	return &MenuService{
		restaurants: restaurants,
		categories:  categories,
		subs:        subs,
		items:       items,
		cache:       cache,
		popularity:  popularity,
		publisher:   publisher,
		events:      events,
	}
}

// Snapshot returns the full menu for a restaurant slug: categories in
// stable sort_order, subcategories and items in storage order. The
// assembled snapshot is cached per restaurant; any admin write
// invalidates it.
func (s *MenuService) Snapshot(ctx context.Context, slug string) (*domain.Menu, error) {
	rest, err := s.restaurants.GetRestaurantBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve restaurant %q: %w", slug, err)
	}

	if s.cache != nil {
		key := s.cache.MenuKey(rest.ID)
		if cached, err := s.cache.GetMenu(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	categories, err := s.categories.ListCategories(rest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	subs, err := s.subs.ListSubcategories(rest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	items, err := s.items.ListMenuItems(rest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	menu := &domain.Menu{
		Restaurant:    *rest,
		Categories:    catalog.SortCategories(categories),
		Subcategories: subs,
		Items:         items,
	}

	if s.cache != nil {
		_ = s.cache.SetMenu(ctx, s.cache.MenuKey(rest.ID), menu)
	}

	return menu, nil
}

func (s *MenuService) Invalidate(ctx context.Context, restaurantID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, s.cache.MenuKey(restaurantID))
}

// RecordCartAdd publishes a cart-add event for the popularity board.
// Best effort: the gesture already succeeded on the client, so a
// broker hiccup is logged upstream, not surfaced.
func (s *MenuService) RecordCartAdd(ctx context.Context, restaurantID, itemID string) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.Publish(ctx, domain.EventMessage{
		Type:         domain.EventCartAdd,
		RestaurantID: restaurantID,
		ItemID:       itemID,
		Timestamp:    time.Now(),
	})
}

// PopularToday returns the most added items for the current day with
// localized names resolved from storage. When redis has no ranking for
// the day the board is rebuilt from the persisted event log.
func (s *MenuService) PopularToday(ctx context.Context, restaurantID string, limit int) ([]domain.PopularItem, error) {
	var ranked []domain.PopularItem
	var err error
	if s.popularity != nil {
		ranked, err = s.popularity.TopItems(ctx, restaurantID, time.Now(), limit)
	}
	if err != nil || len(ranked) == 0 {
		return s.popularTodayFromDB(restaurantID, limit)
	}

	for i := range ranked {
		item, err := s.items.GetMenuItem(restaurantID, ranked[i].ItemID)
		if err != nil {
			continue
		}
		ranked[i].NameEN = item.NameEN
		ranked[i].NameAR = item.NameAR
	}

	return ranked, nil
}

func (s *MenuService) popularTodayFromDB(restaurantID string, limit int) ([]domain.PopularItem, error) {
	if s.events == nil {
		return []domain.PopularItem{}, nil
	}
	ranked, err := s.events.TopItemsToday(restaurantID, limit)
	if err != nil {
		return nil, err
	}
	if ranked == nil {
		ranked = []domain.PopularItem{}
	}
	return ranked, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)

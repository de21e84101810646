package catalog

import (
	"sort"
	"strings"

	"qrmenu/internal/domain"
)

// AllSubcategories is the subcategory selector meaning "no subcategory
// tile chosen" for the active category.
const AllSubcategories = "ALL"

// Policy captures the one behavior the menu templates disagree on:
// whether selecting a category with no subcategory tile shows every
// item of the category, or only the items that have no subcategory
// (hiding the rest until their tile is opened).
type Policy struct {
	ShowSubcategoryItemsInAll bool
}

// View is the complete browsing state of a menu session. Everything a
// template renders is a pure function of (snapshot data, View, Policy);
// there is no hidden state.
type View struct {
	ActiveCategory    string
	ActiveSubcategory string
	SearchQuery       string
	Language          domain.Language
}

// NewView starts browsing the given category with no subcategory
// selected.
func NewView(categoryID string, lang domain.Language) View {
	return View{
		ActiveCategory:    categoryID,
		ActiveSubcategory: AllSubcategories,
		Language:          lang,
	}
}

func (v View) Searching() bool {
	return v.SearchQuery != ""
}

// SetCategory switches the active category. The subcategory selector is
// reset in the same step so no intermediate state can pair the new
// category with the old category's subcategory.
func (v View) SetCategory(categoryID string) View {
	v.ActiveCategory = categoryID
	v.ActiveSubcategory = AllSubcategories
	return v
}

func (v View) SetSubcategory(subcategoryID string) View {
	v.ActiveSubcategory = subcategoryID
	return v
}

// Back returns from a subcategory to the category's tile view.
func (v View) Back() View {
	v.ActiveSubcategory = AllSubcategories
	return v
}

// SetSearch enters search mode for a non-empty query. Clearing the
// query returns to browsing the last active category with no
// subcategory selected.
func (v View) SetSearch(query string) View {
	if query == "" && v.SearchQuery != "" {
		v.ActiveSubcategory = AllSubcategories
	}
	v.SearchQuery = query
	return v
}

// VisibleSubcategories returns the subcategory tiles to render for the
// active category, preserving input order. Search mode suppresses
// subcategory browsing entirely.
func VisibleSubcategories(subs []domain.Subcategory, activeCategory, searchQuery string) []domain.Subcategory {
	if searchQuery != "" {
		return []domain.Subcategory{}
	}

	visible := []domain.Subcategory{}
	for _, sub := range subs {
		if sub.CategoryID == activeCategory {
			visible = append(visible, sub)
		}
	}
	return visible
}

// VisibleItems returns the items to render for the current view,
// preserving input order. A non-empty search query flattens the menu
// to a case-insensitive substring match on the localized name across
// every category. Unavailable items stay visible; availability only
// affects presentation.
func VisibleItems(items []domain.MenuItem, view View, policy Policy) []domain.MenuItem {
	visible := []domain.MenuItem{}

	if view.Searching() {
		query := strings.ToLower(view.SearchQuery)
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name(view.Language)), query) {
				visible = append(visible, item)
			}
		}
		return visible
	}

	for _, item := range items {
		if item.CategoryID != view.ActiveCategory {
			continue
		}
		if view.ActiveSubcategory == AllSubcategories {
			if !policy.ShowSubcategoryItemsInAll && item.SubcategoryID != "" {
				continue
			}
		} else if item.SubcategoryID != view.ActiveSubcategory {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// SortCategories orders categories ascending by admin-assigned
// sort_order. Values are neither unique nor contiguous, so ties keep
// their arrival order.
func SortCategories(categories []domain.Category) []domain.Category {
	sorted := make([]domain.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return sorted
}

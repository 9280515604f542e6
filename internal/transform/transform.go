package transform

import (
	"github.com/tastebud-labs/foodadmin/internal/models"
)

// Transformers map raw API records into the flat view shapes the
// tables consume. Defaulting is total: every output field has a
// defined value, so downstream rendering and sorting never fails on
// missing data. Absent or empty strings become "N/A", absent numbers
// 0, an absent active flag true, absent sub-collections an empty
// slice. Identifier and image fields keep an empty string instead of
// the placeholder so they stay usable as references.

const absent = "N/A"

func Restaurant(raw models.RawRestaurant) models.Restaurant {
	r := models.Restaurant{
		ID:              raw.ID,
		Name:            str(raw.Name),
		Category:        absent,
		Address:         str(raw.Address),
		Details:         str(raw.Details),
		OpeningTime:     str(raw.OpeningTime),
		ClosingTime:     str(raw.ClosingTime),
		TaxRate:         num(raw.TaxRate),
		Rating:          num(raw.Rating),
		CreatedAt:       str(raw.CreatedAt),
		LocationAddress: str(raw.LocationAddress),
		Latitude:        num(raw.Latitude),
		Longitude:       num(raw.Longitude),
		Image:           ref(raw.Image),
		SubAdminName:    str(raw.SubAdminName),
		Active:          active(raw.Active),
		Subcategories:   []models.Subcategory{},
	}
	if raw.Category != nil {
		r.CategoryID = raw.Category.ID
		if raw.Category.Name != "" {
			r.Category = raw.Category.Name
		}
	}
	for _, sub := range raw.Subcategories {
		r.Subcategories = append(r.Subcategories, Subcategory(sub))
	}
	return r
}

func Restaurants(raw []models.RawRestaurant) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(raw))
	for _, r := range raw {
		out = append(out, Restaurant(r))
	}
	return out
}

func Subcategory(raw models.RawSubcategory) models.Subcategory {
	s := models.Subcategory{
		ID:        raw.ID,
		Name:      str(raw.Name),
		Image:     ref(raw.Image),
		MenuItems: []models.MenuItem{},
	}
	for _, item := range raw.MenuItems {
		s.MenuItems = append(s.MenuItems, MenuItem(item))
	}
	return s
}

func MenuItem(raw models.RawMenuItem) models.MenuItem {
	return models.MenuItem{
		ID:          raw.ID,
		Name:        str(raw.Name),
		Description: str(raw.Description),
		Price:       num(raw.Price),
		Image:       ref(raw.Image),
	}
}

func SubAdmin(raw models.RawSubAdmin) models.SubAdmin {
	s := models.SubAdmin{
		ID:               raw.ID,
		FullName:         str(raw.FullName),
		Email:            str(raw.Email),
		Mobile:           str(raw.Mobile),
		RestaurantID:     absent,
		RestaurantName:   absent,
		PlainPassword:    str(raw.PlainPassword),
		Active:           active(raw.Active),
		CodOrders:        count(raw.CodOrders),
		OnlineOrders:     count(raw.OnlineOrders),
		CodCollection:    num(raw.CodCollection),
		OnlineCollection: num(raw.OnlineCollection),
	}
	if raw.Restaurant != nil {
		if raw.Restaurant.ID != "" {
			s.RestaurantID = raw.Restaurant.ID
		}
		if raw.Restaurant.Name != "" {
			s.RestaurantName = raw.Restaurant.Name
		}
	}
	return s
}

func SubAdmins(raw []models.RawSubAdmin) []models.SubAdmin {
	out := make([]models.SubAdmin, 0, len(raw))
	for _, s := range raw {
		out = append(out, SubAdmin(s))
	}
	return out
}

func Category(raw models.RawCategory) models.Category {
	return models.Category{ID: raw.ID, Name: raw.Name}
}

func Categories(raw []models.RawCategory) []models.Category {
	out := make([]models.Category, 0, len(raw))
	for _, c := range raw {
		out = append(out, Category(c))
	}
	return out
}

func str(p *string) string {
	if p == nil || *p == "" {
		return absent
	}
	return *p
}

// ref is for identifier-like strings where "N/A" would be harmful.
func ref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func count(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func active(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}

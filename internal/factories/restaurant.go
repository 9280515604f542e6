package factories

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/validate"
)

type RestaurantFactory struct{}

// CreateForm produces a creation form that passes every restaurant
// field rule, referencing one of the given categories.
func (rf *RestaurantFactory) CreateForm(categories []models.Category) validate.Form {
	opening := fake.IntBetween(6, 11)
	closing := fake.IntBetween(17, 23)

	lat := 51.5074 + (rand.Float64()*2-1)*0.3
	lon := -0.1278 + (rand.Float64()*2-1)*0.3

	form := validate.Form{
		"name":            sanitizeName(fake.Company().Name()),
		"address":         sanitizeAddress(fmt.Sprintf("%d %s, %s", fake.IntBetween(1, 200), fake.Address().StreetName(), fake.Address().City())),
		"details":         sanitizeDetails(fake.Lorem().Sentence(12)),
		"opening_time":    fmt.Sprintf("%02d:00", opening),
		"closing_time":    fmt.Sprintf("%02d:30", closing),
		"tax_rate":        fmt.Sprintf("%.2f", fake.Float64(2, 0, 20)),
		"rating":          fmt.Sprintf("%.1f", float64(fake.IntBetween(10, 50))/10),
		"locationAddress": sanitizeAddress(fmt.Sprintf("%d %s", fake.IntBetween(1, 200), fake.Address().StreetName())),
		"latitude":        fmt.Sprintf("%.6f", lat),
		"longitude":       fmt.Sprintf("%.6f", lon),
	}
	if len(categories) > 0 {
		form["category_id"] = categories[rand.Intn(len(categories))].ID
	}
	return form
}

func sanitizeName(name string) string {
	s := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
			r == ' ' || r == '&' || r == '\'' || r == '-' {
			return r
		}
		return -1
	}, name)
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		s = fake.Lorem().Word() + " Kitchen"
	}
	return s
}

func sanitizeAddress(addr string) string {
	s := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
			r == ' ' || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, addr)
	return strings.TrimSpace(s)
}

func sanitizeDetails(text string) string {
	s := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
			r == '_' || r == ' ' || r == '.' || r == ',' || r == '!' || r == '?' || r == '-' {
			return r
		}
		return -1
	}, text)
	s = strings.TrimSpace(s)
	for len(s) < 10 {
		s += " and more."
	}
	return s
}

package factories

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"

	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/validate"
)

var fake = faker.New()

type SubAdminFactory struct{}

// CreateForm produces a creation form that passes every sub-admin
// field rule, assigned to one of the given restaurants.
func (sf *SubAdminFactory) CreateForm(restaurants []models.Restaurant) validate.Form {
	form := validate.Form{
		"full_name": sanitizeFullName(fake.Person().Name()),
		"email":     fake.Internet().Email(),
		"mobile":    fmt.Sprintf("%010d", rand.Int63n(1_000_000_0000)),
		"password":  fake.Internet().Password() + "1a",
	}
	if len(restaurants) > 0 {
		form["restaurant_id"] = restaurants[rand.Intn(len(restaurants))].ID
	}
	return form
}

func sanitizeFullName(name string) string {
	s := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == ' ' {
			return r
		}
		return -1
	}, name)
	s = strings.TrimSpace(s)
	if s == "" {
		s = fake.Person().FirstName() + " " + fake.Person().LastName()
	}
	return s
}

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/validate"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple", "Burger Barn", true},
		{"ampersand and apostrophe", "Mario & Luigi's", true},
		{"hyphen", "Tex-Mex Grill", true},
		{"minimum length", "Lo", true},
		{"single character", "L", false},
		{"only spaces", "   ", false},
		{"illegal punctuation", "Cafe #1", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Name(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	assert.NoError(t, validate.FullName("Jane Doe"))
	assert.Error(t, validate.FullName("Jane Doe 2"))
	assert.Error(t, validate.FullName("  "))
}

func TestAddress(t *testing.T) {
	assert.NoError(t, validate.Address("address", "12 High Street, London"))
	assert.Error(t, validate.Address("address", "No 5"))
	assert.Error(t, validate.Address("address", "     "))

	err := validate.Address("locationAddress", "")
	var verr *xerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "locationAddress", verr.Field)
}

func TestDetails(t *testing.T) {
	assert.NoError(t, validate.Details("Family run pizzeria, open late!"))
	assert.Error(t, validate.Details("too short"))
	assert.Error(t, validate.Details("contains <html> tags which are not allowed"))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, validate.Email("admin@example.com"))
	assert.Error(t, validate.Email("admin@example"))
	assert.Error(t, validate.Email("not an email"))
}

func TestMobile(t *testing.T) {
	assert.NoError(t, validate.Mobile("0712345678"))
	assert.Error(t, validate.Mobile("071234567"))
	assert.Error(t, validate.Mobile("07123456789"))
	assert.Error(t, validate.Mobile("07123-4567"))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, validate.Password("secret"))
	assert.Error(t, validate.Password("five5"))
}

func TestCategoryIDMembership(t *testing.T) {
	categories := []models.Category{
		{ID: "64a51c2f9d1e8b0012345678", Name: "Pizza"},
		{ID: "64a51c2f9d1e8b0012345679", Name: "Sushi"},
	}
	assert.NoError(t, validate.CategoryID("64a51c2f9d1e8b0012345679", categories))
	assert.Error(t, validate.CategoryID("64a51c2f9d1e8b0012345670", categories))
}

func TestCategoryIDFallbackShape(t *testing.T) {
	// no loaded categories, only the id shape is checked
	assert.NoError(t, validate.CategoryID("64a51c2f9d1e8b0012345678", nil))
	assert.Error(t, validate.CategoryID("not-hex", nil))
	assert.Error(t, validate.CategoryID("64a51c2f", nil))
}

func TestRestaurantID(t *testing.T) {
	restaurants := []models.Restaurant{{ID: "r1"}, {ID: "r2"}}
	assert.NoError(t, validate.RestaurantID("r2", restaurants))
	assert.Error(t, validate.RestaurantID("r3", restaurants))
	assert.Error(t, validate.RestaurantID("r1", nil))
}

func TestClockTime(t *testing.T) {
	assert.NoError(t, validate.ClockTime("opening_time", "00:00"))
	assert.NoError(t, validate.ClockTime("opening_time", "23:59"))
	assert.Error(t, validate.ClockTime("opening_time", "24:00"))
	assert.Error(t, validate.ClockTime("opening_time", "9:00"))
	assert.Error(t, validate.ClockTime("opening_time", "09:60"))
}

func TestClosingTime(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
		valid   bool
	}{
		{"same day", "09:00", "22:00", true},
		{"overnight wrap", "22:00", "02:00", true},
		{"closes at midnight", "10:00", "00:00", true},
		{"one minute open", "09:00", "09:01", true},
		{"equal times", "09:00", "09:00", false},
		{"closing one minute before", "09:00", "08:59", false},
		{"bad closing format", "09:00", "25:00", false},
		{"bad opening format", "9am", "22:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.ClosingTime(tt.opening, tt.closing)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRating(t *testing.T) {
	assert.NoError(t, validate.Rating("0"))
	assert.NoError(t, validate.Rating("5"))
	assert.NoError(t, validate.Rating("4.5"))
	assert.Error(t, validate.Rating("5.1"))
	assert.Error(t, validate.Rating("-0.1"))
	assert.Error(t, validate.Rating("four"))
}

func TestTaxRate(t *testing.T) {
	assert.NoError(t, validate.TaxRate("10"))
	assert.NoError(t, validate.TaxRate("10.5"))
	assert.NoError(t, validate.TaxRate("10.55"))
	assert.Error(t, validate.TaxRate("10.555"))
	assert.Error(t, validate.TaxRate("-5"))
	assert.Error(t, validate.TaxRate("ten"))
}

func TestLatitudeLongitude(t *testing.T) {
	assert.NoError(t, validate.Latitude("90"))
	assert.NoError(t, validate.Latitude("-90"))
	assert.Error(t, validate.Latitude("90.0001"))
	assert.Error(t, validate.Latitude("abc"))

	assert.NoError(t, validate.Longitude("180"))
	assert.NoError(t, validate.Longitude("-180"))
	assert.Error(t, validate.Longitude("-180.5"))
}

func TestImage(t *testing.T) {
	assert.NoError(t, validate.Image("", 0))
	assert.NoError(t, validate.Image("image/jpeg", 1024))
	assert.NoError(t, validate.Image("image/png", 5*1024*1024))
	assert.Error(t, validate.Image("image/png", 5*1024*1024+1))
	assert.Error(t, validate.Image("image/webp", 1024))
	assert.Error(t, validate.Image("application/pdf", 10))
}

func TestRestaurantFormOrder(t *testing.T) {
	categories := []models.Category{{ID: "64a51c2f9d1e8b0012345678", Name: "Pizza"}}
	form := validate.Form{
		"name":            "Burger Barn",
		"address":         "12 High Street",
		"category_id":     "64a51c2f9d1e8b0012345678",
		"tax_rate":        "10",
		"rating":          "4.5",
		"locationAddress": "12 High Street",
		"latitude":        "51.5",
		"longitude":       "-0.12",
		"opening_time":    "09:00",
		"closing_time":    "22:00",
	}
	assert.NoError(t, validate.RestaurantForm(form, categories))

	// details is optional but checked when present
	form["details"] = "short"
	assert.Error(t, validate.RestaurantForm(form, categories))
	form["details"] = "A welcoming neighbourhood grill."
	assert.NoError(t, validate.RestaurantForm(form, categories))

	// a missing required field reports before any format rule
	delete(form, "rating")
	form["latitude"] = "not a number"
	err := validate.RestaurantForm(form, categories)
	var verr *xerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "rating", verr.Field)
}

func TestRestaurantEditForm(t *testing.T) {
	form := validate.Form{
		"name":            "N/A",
		"address":         "N/A",
		"category_id":     "64a51c2f9d1e8b0012345678",
		"tax_rate":        "10",
		"rating":          "4.5",
		"locationAddress": "N/A",
		"latitude":        "51.5",
		"longitude":       "-0.12",
		"opening_time":    "09:00",
		"closing_time":    "22:00",
	}
	// the update path skips the character-class rules, so the
	// transformer's placeholder text in unrelated fields is accepted
	assert.NoError(t, validate.RestaurantEditForm(form))

	// times, tax rate and the numeric ranges are still format-checked
	form["opening_time"] = "N/A"
	assert.Error(t, validate.RestaurantEditForm(form))
	form["opening_time"] = "09:00"
	form["rating"] = "5.1"
	assert.Error(t, validate.RestaurantEditForm(form))
	form["rating"] = "4.5"
	form["tax_rate"] = "10.555"
	assert.Error(t, validate.RestaurantEditForm(form))
	form["tax_rate"] = "10"

	// presence is still required for every field
	delete(form, "address")
	err := validate.RestaurantEditForm(form)
	var verr *xerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "address", verr.Field)
}

func TestSubAdminForms(t *testing.T) {
	restaurants := []models.Restaurant{{ID: "r1", Name: "Burger Barn"}}
	form := validate.Form{
		"full_name":     "Jane Doe",
		"email":         "jane@example.com",
		"mobile":        "0712345678",
		"restaurant_id": "r1",
	}
	assert.NoError(t, validate.SubAdminForm(form, restaurants))

	// creation additionally requires the password
	assert.Error(t, validate.NewSubAdminForm(form, restaurants))
	form["password"] = "secret"
	assert.NoError(t, validate.NewSubAdminForm(form, restaurants))

	delete(form, "email")
	err := validate.SubAdminForm(form, restaurants)
	var verr *xerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "All fields are required.", verr.Reason)
}

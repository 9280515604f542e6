package validate

import (
	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// Form is the draft state of an edit or create screen: raw string
// values keyed by API field name.
type Form map[string]string

// Composite form checks run every relevant field validator and return
// the FIRST failure, in the order the screens present the fields.
// Required checks come before format checks, matching the screens.

func RestaurantForm(f Form, categories []models.Category) error {
	required := []struct{ field, label string }{
		{"name", "Restaurant name is required."},
		{"address", "Address is required."},
		{"category_id", "Category is required."},
		{"tax_rate", "Tax rate is required."},
		{"rating", "Rating is required."},
		{"locationAddress", "Location address is required."},
		{"latitude", "Latitude is required."},
		{"longitude", "Longitude is required."},
		{"opening_time", "Opening time is required."},
		{"closing_time", "Closing time is required."},
	}
	for _, r := range required {
		if f[r.field] == "" {
			return xerrors.Invalid(r.field, r.label)
		}
	}

	if err := Name(f["name"]); err != nil {
		return err
	}
	if err := Address("address", f["address"]); err != nil {
		return err
	}
	if err := CategoryID(f["category_id"], categories); err != nil {
		return err
	}
	if d := f["details"]; d != "" {
		if err := Details(d); err != nil {
			return err
		}
	}
	if err := ClosingTime(f["opening_time"], f["closing_time"]); err != nil {
		return err
	}
	if err := TaxRate(f["tax_rate"]); err != nil {
		return err
	}
	if err := Rating(f["rating"]); err != nil {
		return err
	}
	if err := Address("locationAddress", f["locationAddress"]); err != nil {
		return err
	}
	if err := Latitude(f["latitude"]); err != nil {
		return err
	}
	return Longitude(f["longitude"])
}

// RestaurantEditForm is the laxer update-path check: every field must
// be present, but only times, tax rate and the numeric ranges are
// format-checked. Edit drafts are seeded from the display record,
// where absent source fields carry the "N/A" placeholder; the strict
// character classes would reject those records outright even when the
// edit touches an unrelated field.
func RestaurantEditForm(f Form) error {
	required := []struct{ field, label string }{
		{"name", "Restaurant name is required."},
		{"address", "Address is required."},
		{"category_id", "Category is required."},
		{"tax_rate", "Tax rate is required."},
		{"rating", "Rating is required."},
		{"locationAddress", "Location address is required."},
		{"latitude", "Latitude is required."},
		{"longitude", "Longitude is required."},
		{"opening_time", "Opening time is required."},
		{"closing_time", "Closing time is required."},
	}
	for _, r := range required {
		if f[r.field] == "" {
			return xerrors.Invalid(r.field, r.label)
		}
	}

	if err := ClockTime("opening_time", f["opening_time"]); err != nil {
		return err
	}
	if err := ClockTime("closing_time", f["closing_time"]); err != nil {
		return err
	}
	if err := TaxRate(f["tax_rate"]); err != nil {
		return err
	}
	if err := Rating(f["rating"]); err != nil {
		return err
	}
	if err := Latitude(f["latitude"]); err != nil {
		return err
	}
	return Longitude(f["longitude"])
}

func SubAdminForm(f Form, restaurants []models.Restaurant) error {
	for _, field := range []string{"full_name", "email", "mobile", "restaurant_id"} {
		if f[field] == "" {
			return xerrors.Invalid(field, "All fields are required.")
		}
	}
	if err := FullName(f["full_name"]); err != nil {
		return err
	}
	if err := Email(f["email"]); err != nil {
		return err
	}
	if err := Mobile(f["mobile"]); err != nil {
		return err
	}
	return RestaurantID(f["restaurant_id"], restaurants)
}

// NewSubAdminForm adds the creation-only password rule.
func NewSubAdminForm(f Form, restaurants []models.Restaurant) error {
	if err := SubAdminForm(f, restaurants); err != nil {
		return err
	}
	return Password(f["password"])
}

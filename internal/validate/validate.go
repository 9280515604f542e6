package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// Field validators are pure, synchronous and side-effect free; they
// never perform I/O. A nil return means valid, otherwise the error is
// a *xerrors.ValidationError carrying a human-readable reason.

var (
	nameRe       = regexp.MustCompile(`^[A-Za-z0-9\s&'-]{2,100}$`)
	fullNameRe   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	addressRe    = regexp.MustCompile(`^[A-Za-z0-9\s,.-]{5,200}$`)
	detailsRe    = regexp.MustCompile(`^[\w\s.,!?-]{10,500}$`)
	categoryIDRe = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRe     = regexp.MustCompile(`^\d{10}$`)
	clockRe      = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)
	taxRateRe    = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

const (
	maxImageBytes = 5 * 1024 * 1024
	minutesPerDay = 24 * 60
)

func Name(v string) error {
	if strings.TrimSpace(v) == "" {
		return xerrors.Invalid("name", "cannot be only spaces")
	}
	if !nameRe.MatchString(v) {
		return xerrors.Invalid("name", "must be 2-100 characters, letters, numbers, spaces, &, ', or - only")
	}
	return nil
}

// FullName follows the stricter sub-admin rule: letters and spaces only.
func FullName(v string) error {
	if strings.TrimSpace(v) == "" {
		return xerrors.Invalid("full_name", "cannot be only spaces")
	}
	if !fullNameRe.MatchString(v) {
		return xerrors.Invalid("full_name", "can only contain letters and spaces")
	}
	return nil
}

func Address(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return xerrors.Invalid(field, "cannot be only spaces")
	}
	if !addressRe.MatchString(v) {
		return xerrors.Invalid(field, "must be 5-200 characters, letters, numbers, spaces, commas, or periods")
	}
	return nil
}

func Details(v string) error {
	if strings.TrimSpace(v) == "" {
		return xerrors.Invalid("details", "cannot be only spaces")
	}
	if !detailsRe.MatchString(v) {
		return xerrors.Invalid("details", "must be 10-500 characters, letters, numbers, spaces, or basic punctuation")
	}
	return nil
}

func Email(v string) error {
	if !emailRe.MatchString(v) {
		return xerrors.Invalid("email", "must be a valid email address")
	}
	return nil
}

func Mobile(v string) error {
	if !mobileRe.MatchString(v) {
		return xerrors.Invalid("mobile", "must be a valid 10-digit mobile number")
	}
	return nil
}

func Password(v string) error {
	if len(v) < 6 {
		return xerrors.Invalid("password", "must be at least 6 characters")
	}
	return nil
}

// CategoryID checks membership in the loaded category set. When no
// categories are loaded (reference fetch failed) it falls back to the
// raw 24-character hex identifier shape so manual entry still works.
func CategoryID(v string, categories []models.Category) error {
	if len(categories) > 0 {
		for _, c := range categories {
			if c.ID == v {
				return nil
			}
		}
		return xerrors.Invalid("category_id", "invalid category selected")
	}
	if !categoryIDRe.MatchString(v) {
		return xerrors.Invalid("category_id", "must be a valid 24-character id")
	}
	return nil
}

// RestaurantID checks membership in the loaded restaurant set.
func RestaurantID(v string, restaurants []models.Restaurant) error {
	for _, r := range restaurants {
		if r.ID == v {
			return nil
		}
	}
	return xerrors.Invalid("restaurant_id", "invalid restaurant selected")
}

func ClockTime(field, v string) error {
	if !clockRe.MatchString(v) {
		return xerrors.Invalid(field, "invalid time format (HH:MM)")
	}
	return nil
}

// ClosingTime applies the cross-field rule: both times valid HH:MM,
// and closing strictly after opening. A closing at or before the
// opening is treated as next-day; if it still does not land after the
// opening the pair is rejected.
func ClosingTime(opening, closing string) error {
	if err := ClockTime("opening_time", opening); err != nil {
		return err
	}
	if err := ClockTime("closing_time", closing); err != nil {
		return err
	}
	open := minutesOfDay(opening)
	close := minutesOfDay(closing)
	if close <= open {
		close += minutesPerDay
	}
	// span is in [1, 1440] after the wrap. A full-day span is the
	// equal pair; one short of a full day puts the closing on the
	// clock minute before the opening, which still counts as
	// preceding it.
	span := close - open
	if span == minutesPerDay {
		return xerrors.Invalid("closing_time", "cannot be the same as opening time")
	}
	if span >= minutesPerDay-1 {
		return xerrors.Invalid("closing_time", "must be after opening time")
	}
	return nil
}

func minutesOfDay(v string) int {
	h, _ := strconv.Atoi(v[:2])
	m, _ := strconv.Atoi(v[3:])
	return h*60 + m
}

func Rating(v string) error {
	r, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return xerrors.Invalid("rating", "must be a valid number")
	}
	if r < 0 || r > 5 {
		return xerrors.Invalid("rating", "must be between 0 and 5")
	}
	return nil
}

func TaxRate(v string) error {
	if !taxRateRe.MatchString(v) {
		return xerrors.Invalid("tax_rate", "invalid tax rate (e.g., 10 or 10.5)")
	}
	return nil
}

func Latitude(v string) error {
	lat, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return xerrors.Invalid("latitude", "must be a valid number")
	}
	if lat < -90 || lat > 90 {
		return xerrors.Invalid("latitude", "must be between -90 and 90")
	}
	return nil
}

func Longitude(v string) error {
	lon, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return xerrors.Invalid("longitude", "must be a valid number")
	}
	if lon < -180 || lon > 180 {
		return xerrors.Invalid("longitude", "must be between -180 and 180")
	}
	return nil
}

// Image validates an optional upload: absence is valid; when present
// the MIME type must be JPEG, PNG or GIF and the size at most 5 MiB.
func Image(mimeType string, size int64) error {
	if mimeType == "" && size == 0 {
		return nil
	}
	switch mimeType {
	case "image/jpeg", "image/png", "image/gif":
	default:
		return xerrors.Invalid("image", "must be JPEG, PNG, or GIF")
	}
	if size > maxImageBytes {
		return xerrors.Invalid("image", "size must not exceed 5MB")
	}
	return nil
}

package console

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/tastebud-labs/foodadmin/internal/audit"
	"github.com/tastebud-labs/foodadmin/internal/client"
	"github.com/tastebud-labs/foodadmin/internal/debounce"
	"github.com/tastebud-labs/foodadmin/internal/editor"
	"github.com/tastebud-labs/foodadmin/internal/logger"
	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/paginate"
	"github.com/tastebud-labs/foodadmin/internal/toggle"
	"github.com/tastebud-labs/foodadmin/internal/validate"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

// RestaurantScreen owns the restaurant collection snapshot: it loads
// reference data and records, pages them, and routes edit and toggle
// actions through the shared state machines. Each screen's snapshot is
// isolated; a fresh Load replaces it wholesale.
type RestaurantScreen struct {
	api    *client.Client
	cfg    *models.Config
	notify toggle.Notifier
	aud    *audit.Publisher
	log    *zap.SugaredLogger
	deb    *debounce.Debouncer

	categories []models.Category
	items      []models.Restaurant
	pager      *paginate.Pager[models.Restaurant]
	editor     *editor.Editor[models.Restaurant]
	toggler    *toggle.Controller[models.Restaurant]

	// image staged for the current edit session, cleared with it.
	image *client.Image
}

func NewRestaurantScreen(api *client.Client, cfg *models.Config, notify toggle.Notifier, aud *audit.Publisher) *RestaurantScreen {
	s := &RestaurantScreen{
		api:    api,
		cfg:    cfg,
		notify: notify,
		aud:    aud,
		log:    logger.GetLogger(),
		deb:    debounce.New(cfg.DebounceWindow),
	}
	s.pager = paginate.New([]models.Restaurant{}, cfg.PageSize)
	s.editor = editor.New(s.editorScreen(), &s.items)
	s.toggler = toggle.New(s.toggleScreen(), &s.items, notify, cfg.DebounceWindow)
	return s
}

// Load fetches categories and the full restaurant collection. A failed
// category fetch is not fatal: the edit form falls back to raw
// category-id entry, matching the manual-entry path.
func (s *RestaurantScreen) Load(ctx context.Context) error {
	categories, err := s.api.Categories(ctx)
	if err != nil {
		if errors.Is(err, xerrors.ErrAuthExpired) {
			return err
		}
		s.log.Warnw("categories unavailable, falling back to manual ids", "error", err)
		categories = nil
	}
	s.categories = categories

	items, err := s.api.RestaurantsWithDetails(ctx)
	if err != nil {
		return err
	}
	s.items = items
	s.pager.SetItems(s.items)
	s.checkCategoryRefs()
	return nil
}

// checkCategoryRefs enforces the reference invariant: every
// category_id must name a loaded Category when categories are loaded.
func (s *RestaurantScreen) checkCategoryRefs() {
	if len(s.categories) == 0 {
		return
	}
	known := make(map[string]bool, len(s.categories))
	for _, c := range s.categories {
		known[c.ID] = true
	}
	for _, r := range s.items {
		if r.CategoryID != "" && !known[r.CategoryID] {
			s.log.Warnw("restaurant references unknown category", "restaurant", r.ID, "category", r.CategoryID)
		}
	}
}

func (s *RestaurantScreen) Categories() []models.Category { return s.categories }

func (s *RestaurantScreen) Items() []models.Restaurant { return s.items }

func (s *RestaurantScreen) Pager() *paginate.Pager[models.Restaurant] { return s.pager }

func (s *RestaurantScreen) Editor() *editor.Editor[models.Restaurant] { return s.editor }

func (s *RestaurantScreen) find(id string) (models.Restaurant, bool) {
	for _, r := range s.items {
		if r.ID == id {
			return r, true
		}
	}
	return models.Restaurant{}, false
}

// HandleEdit is the interactive edit-open handler; rapid repeated
// triggers for the same record collapse within the debounce window.
func (s *RestaurantScreen) HandleEdit(id string) {
	s.deb.Trigger("edit:"+id, func() {
		record, ok := s.find(id)
		if !ok {
			s.notify.Error("Cannot edit: Invalid restaurant data")
			return
		}
		if err := s.editor.OpenEdit(record); err != nil {
			s.notify.Error(xerrors.UserMessage(err, "Failed to open edit"))
		}
	})
}

// Edit runs a full one-shot edit session: open, apply changes, submit.
func (s *RestaurantScreen) Edit(ctx context.Context, id string, changes map[string]string, image *client.Image) error {
	s.HandleEdit(id)
	s.deb.Flush("edit:" + id)
	if s.editor.State() != editor.Editing {
		return xerrors.ErrInvalidRecord
	}
	if image != nil {
		if err := validate.Image(image.ContentType, image.Size); err != nil {
			s.editor.Close()
			return err
		}
	}
	s.image = image
	defer func() { s.image = nil }()

	for name, value := range changes {
		s.editor.SetField(name, value)
	}
	if err := s.editor.Submit(ctx); err != nil {
		return err
	}
	s.aud.Record(audit.Event{Action: "restaurant.update", Entity: "restaurant", EntityID: id, Fields: changes})
	return nil
}

// HandleToggle is the interactive active-flip handler; debouncing and
// in-flight guarding live in the controller.
func (s *RestaurantScreen) HandleToggle(ctx context.Context, id string) error {
	record, ok := s.find(id)
	if !ok {
		return xerrors.ErrInvalidRecord
	}
	return s.toggler.Toggle(ctx, record)
}

// Toggle is the one-shot variant: trigger, flush, wait for the
// confirmation round trip.
func (s *RestaurantScreen) Toggle(ctx context.Context, id string) error {
	if err := s.HandleToggle(ctx, id); err != nil {
		return err
	}
	s.toggler.Flush(id)
	s.toggler.Wait()
	s.aud.Record(audit.Event{Action: "restaurant.status", Entity: "restaurant", EntityID: id})
	return nil
}

// ViewDetails opens the details view for a record, debounced like the
// edit-open action.
func (s *RestaurantScreen) ViewDetails(id string) (models.Restaurant, error) {
	var (
		record models.Restaurant
		ok     bool
	)
	s.deb.Trigger("details:"+id, func() {
		record, ok = s.find(id)
	})
	s.deb.Flush("details:" + id)
	if !ok {
		return models.Restaurant{}, xerrors.ErrInvalidRecord
	}
	return record, nil
}

// Create validates a creation form and posts it. The new record is not
// added locally; listing screens reload on next mount.
func (s *RestaurantScreen) Create(ctx context.Context, form validate.Form, image *client.Image) (client.Outcome, error) {
	if err := validate.RestaurantForm(form, s.categories); err != nil {
		return client.Outcome{}, err
	}
	if image != nil {
		if err := validate.Image(image.ContentType, image.Size); err != nil {
			return client.Outcome{}, err
		}
	}
	outcome, err := s.api.AddRestaurant(ctx, form, image)
	if err != nil {
		return outcome, err
	}
	if outcome.OK {
		s.aud.Record(audit.Event{Action: "restaurant.create", Entity: "restaurant", Fields: form})
	}
	return outcome, nil
}

// Close tears down any open edit session and pending debounced
// actions, for navigation away.
func (s *RestaurantScreen) Close() {
	s.editor.Close()
	s.toggler.Stop()
	s.deb.Stop()
}

func (s *RestaurantScreen) editorScreen() editor.Screen[models.Restaurant] {
	return editor.Screen[models.Restaurant]{
		ID: func(r models.Restaurant) string { return r.ID },
		Seed: func(r models.Restaurant) validate.Form {
			return validate.Form{
				"name":            r.Name,
				"address":         r.Address,
				"category_id":     r.CategoryID,
				"details":         r.Details,
				"opening_time":    r.OpeningTime,
				"closing_time":    r.ClosingTime,
				"tax_rate":        formatFloat(r.TaxRate),
				"rating":          formatFloat(r.Rating),
				"locationAddress": r.LocationAddress,
				"latitude":        formatFloat(r.Latitude),
				"longitude":       formatFloat(r.Longitude),
			}
		},
		Validate: func(f validate.Form) error {
			return validate.RestaurantEditForm(f)
		},
		Update: func(ctx context.Context, id string, draft validate.Form) (client.Outcome, error) {
			return s.api.UpdateRestaurant(ctx, id, draft, s.image)
		},
		Merge: func(r models.Restaurant, f validate.Form) models.Restaurant {
			r.Name = f["name"]
			r.Address = f["address"]
			r.CategoryID = f["category_id"]
			r.Category = s.categoryName(f["category_id"])
			r.Details = f["details"]
			r.OpeningTime = f["opening_time"]
			r.ClosingTime = f["closing_time"]
			r.TaxRate = parseFloat(f["tax_rate"])
			r.Rating = parseFloat(f["rating"])
			r.LocationAddress = f["locationAddress"]
			r.Latitude = parseFloat(f["latitude"])
			r.Longitude = parseFloat(f["longitude"])
			return r
		},
		Fallback: "Failed to update restaurant.",
	}
}

func (s *RestaurantScreen) toggleScreen() toggle.Screen[models.Restaurant] {
	return toggle.Screen[models.Restaurant]{
		Noun:   "Restaurant",
		ID:     func(r models.Restaurant) string { return r.ID },
		Active: func(r models.Restaurant) bool { return r.Active },
		SetActive: func(r models.Restaurant, active bool) models.Restaurant {
			r.Active = active
			return r
		},
		Update: func(ctx context.Context, id string, active bool) (client.Outcome, error) {
			return s.api.UpdateRestaurantStatus(ctx, id, active)
		},
		Fallback: "Failed to update active status.",
	}
}

func (s *RestaurantScreen) categoryName(id string) string {
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "N/A"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

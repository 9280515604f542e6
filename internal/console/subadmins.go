package console

import (
	"context"

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

// SubAdminScreen manages sub-admin accounts. The restaurant selection
// list is loaded first; the sub-admin fetch depends on it for the
// reference invariant and for resolving restaurant names.
type SubAdminScreen struct {
	api    *client.Client
	cfg    *models.Config
	notify toggle.Notifier
	aud    *audit.Publisher
	log    *zap.SugaredLogger
	deb    *debounce.Debouncer

	restaurants []models.Restaurant
	items       []models.SubAdmin
	pager       *paginate.Pager[models.SubAdmin]
	editor      *editor.Editor[models.SubAdmin]
	toggler     *toggle.Controller[models.SubAdmin]
}

func NewSubAdminScreen(api *client.Client, cfg *models.Config, notify toggle.Notifier, aud *audit.Publisher) *SubAdminScreen {
	s := &SubAdminScreen{
		api:    api,
		cfg:    cfg,
		notify: notify,
		aud:    aud,
		log:    logger.GetLogger(),
		deb:    debounce.New(cfg.DebounceWindow),
	}
	s.pager = paginate.New([]models.SubAdmin{}, cfg.PageSize)
	s.editor = editor.New(s.editorScreen(), &s.items)
	s.toggler = toggle.New(s.toggleScreen(), &s.items, notify, cfg.DebounceWindow)
	return s
}

func (s *SubAdminScreen) Load(ctx context.Context) error {
	restaurants, err := s.api.Restaurants(ctx)
	if err != nil {
		return err
	}
	s.restaurants = restaurants

	items, err := s.api.SubAdmins(ctx)
	if err != nil {
		return err
	}
	s.items = items
	s.pager.SetItems(s.items)
	s.checkRestaurantRefs()
	return nil
}

func (s *SubAdminScreen) checkRestaurantRefs() {
	known := make(map[string]bool, len(s.restaurants))
	for _, r := range s.restaurants {
		known[r.ID] = true
	}
	for _, a := range s.items {
		if a.RestaurantID != "" && a.RestaurantID != "N/A" && !known[a.RestaurantID] {
			s.log.Warnw("sub-admin references unknown restaurant", "subadmin", a.ID, "restaurant", a.RestaurantID)
		}
	}
}

func (s *SubAdminScreen) Restaurants() []models.Restaurant { return s.restaurants }

func (s *SubAdminScreen) Items() []models.SubAdmin { return s.items }

func (s *SubAdminScreen) Pager() *paginate.Pager[models.SubAdmin] { return s.pager }

func (s *SubAdminScreen) Editor() *editor.Editor[models.SubAdmin] { return s.editor }

func (s *SubAdminScreen) find(id string) (models.SubAdmin, bool) {
	for _, a := range s.items {
		if a.ID == id {
			return a, true
		}
	}
	return models.SubAdmin{}, false
}

func (s *SubAdminScreen) HandleEdit(id string) {
	s.deb.Trigger("edit:"+id, func() {
		record, ok := s.find(id)
		if !ok {
			s.notify.Error("Cannot edit: Invalid user data")
			return
		}
		if err := s.editor.OpenEdit(record); err != nil {
			s.notify.Error(xerrors.UserMessage(err, "Failed to open edit"))
		}
	})
}

func (s *SubAdminScreen) Edit(ctx context.Context, id string, changes map[string]string) error {
	s.HandleEdit(id)
	s.deb.Flush("edit:" + id)
	if s.editor.State() != editor.Editing {
		return xerrors.ErrInvalidRecord
	}
	for name, value := range changes {
		s.editor.SetField(name, value)
	}
	if err := s.editor.Submit(ctx); err != nil {
		return err
	}
	s.aud.Record(audit.Event{Action: "subadmin.update", Entity: "subadmin", EntityID: id, Fields: changes})
	return nil
}

func (s *SubAdminScreen) HandleToggle(ctx context.Context, id string) error {
	record, ok := s.find(id)
	if !ok {
		return xerrors.ErrInvalidRecord
	}
	return s.toggler.Toggle(ctx, record)
}

func (s *SubAdminScreen) Toggle(ctx context.Context, id string) error {
	if err := s.HandleToggle(ctx, id); err != nil {
		return err
	}
	s.toggler.Flush(id)
	s.toggler.Wait()
	s.aud.Record(audit.Event{Action: "subadmin.status", Entity: "subadmin", EntityID: id})
	return nil
}

// Create validates a creation form, including the creation-only
// password rule, and posts it.
func (s *SubAdminScreen) Create(ctx context.Context, form validate.Form) (client.Outcome, error) {
	if err := validate.NewSubAdminForm(form, s.restaurants); err != nil {
		return client.Outcome{}, err
	}
	payload := client.SubAdminPayload{
		FullName:     form["full_name"],
		Email:        form["email"],
		Mobile:       form["mobile"],
		Password:     form["password"],
		RestaurantID: form["restaurant_id"],
	}
	outcome, err := s.api.CreateSubAdmin(ctx, payload)
	if err != nil {
		return outcome, err
	}
	if outcome.OK {
		s.aud.Record(audit.Event{Action: "subadmin.create", Entity: "subadmin", Fields: map[string]string{
			"full_name":     form["full_name"],
			"email":         form["email"],
			"restaurant_id": form["restaurant_id"],
		}})
	}
	return outcome, nil
}

func (s *SubAdminScreen) Close() {
	s.editor.Close()
	s.toggler.Stop()
	s.deb.Stop()
}

func (s *SubAdminScreen) editorScreen() editor.Screen[models.SubAdmin] {
	return editor.Screen[models.SubAdmin]{
		ID: func(a models.SubAdmin) string { return a.ID },
		Seed: func(a models.SubAdmin) validate.Form {
			return validate.Form{
				"full_name":     a.FullName,
				"email":         a.Email,
				"mobile":        a.Mobile,
				"restaurant_id": a.RestaurantID,
			}
		},
		Validate: func(f validate.Form) error {
			return validate.SubAdminForm(f, s.restaurants)
		},
		Update: func(ctx context.Context, id string, draft validate.Form) (client.Outcome, error) {
			return s.api.UpdateSubAdmin(ctx, id, draft)
		},
		Merge: func(a models.SubAdmin, f validate.Form) models.SubAdmin {
			a.FullName = f["full_name"]
			a.Email = f["email"]
			a.Mobile = f["mobile"]
			a.RestaurantID = f["restaurant_id"]
			a.RestaurantName = s.restaurantName(f["restaurant_id"])
			return a
		},
		Fallback: "Failed to update user.",
	}
}

func (s *SubAdminScreen) toggleScreen() toggle.Screen[models.SubAdmin] {
	return toggle.Screen[models.SubAdmin]{
		Noun:   "Sub-admin",
		ID:     func(a models.SubAdmin) string { return a.ID },
		Active: func(a models.SubAdmin) bool { return a.Active },
		SetActive: func(a models.SubAdmin, active bool) models.SubAdmin {
			a.Active = active
			return a
		},
		Update: func(ctx context.Context, id string, active bool) (client.Outcome, error) {
			return s.api.UpdateUserStatus(ctx, id, active)
		},
		Fallback: "Failed to update active status",
	}
}

func (s *SubAdminScreen) restaurantName(id string) string {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r.Name
		}
	}
	return "N/A"
}

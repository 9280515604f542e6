package client

import (
	"context"
	"net/http"

	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/transform"
)

// SubAdminPayload is the JSON body for sub-admin creation.
type SubAdminPayload struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	Password     string `json:"password"`
	RestaurantID string `json:"restaurant_id"`
}

func (c *Client) SubAdmins(ctx context.Context) ([]models.SubAdmin, error) {
	var raw struct {
		SubAdmins []models.RawSubAdmin `json:"subAdmins"`
	}
	if err := c.get(ctx, "api/user/getAllSubAdmins", "Failed to load sub-admins", &raw); err != nil {
		return nil, err
	}
	return transform.SubAdmins(raw.SubAdmins), nil
}

func (c *Client) CreateSubAdmin(ctx context.Context, payload SubAdminPayload) (Outcome, error) {
	status, data, err := c.sendJSON(ctx, http.MethodPost, "api/user/createSubAdmin", payload)
	if err != nil {
		return Outcome{}, err
	}
	if status < 200 || status > 299 {
		return Outcome{OK: false, Message: firstNonEmpty(decodeEnvelope(data).Message, "Failed to create sub-admin")}, nil
	}
	return Outcome{OK: true, Message: "Sub-admin created successfully!"}, nil
}

// UpdateSubAdmin submits the edited fields. Success is the boolean
// `success` field.
func (c *Client) UpdateSubAdmin(ctx context.Context, id string, fields map[string]string) (Outcome, error) {
	payload := map[string]string{
		"full_name":     fields["full_name"],
		"email":         fields["email"],
		"mobile":        fields["mobile"],
		"restaurant_id": fields["restaurant_id"],
	}
	_, data, err := c.sendJSON(ctx, http.MethodPut, "api/user/updateSubAdmin/"+id, payload)
	if err != nil {
		return Outcome{}, err
	}
	return successOutcome(data, "Sub-admin updated successfully", "Failed to update user."), nil
}

// UpdateUserStatus flips a sub-admin's active flag. Success is the
// boolean `success` field.
func (c *Client) UpdateUserStatus(ctx context.Context, userID string, active bool) (Outcome, error) {
	payload := map[string]any{"userId": userID, "active": active}
	_, data, err := c.sendJSON(ctx, http.MethodPatch, "api/admin/updateUserStatus", payload)
	if err != nil {
		return Outcome{}, err
	}
	return successOutcome(data, "Status updated successfully", "Failed to update active status"), nil
}

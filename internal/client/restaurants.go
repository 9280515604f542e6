package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"

	"github.com/tastebud-labs/foodadmin/internal/models"
	"github.com/tastebud-labs/foodadmin/internal/transform"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

const restaurantUpdatedMessage = "Restaurant updated successfully"

// Image is an optional upload attached to a restaurant create/update.
type Image struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// LoadImage reads an image file and sniffs its content type for
// validation before anything touches the network.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Wrap(err, "reading image")
	}
	return &Image{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var raw []models.RawCategory
	if err := c.get(ctx, "api/categories/getAllCategories", "Failed to load categories", &raw); err != nil {
		return nil, err
	}
	return transform.Categories(raw), nil
}

// RestaurantsWithDetails returns the full collection including nested
// subcategories and menu items.
func (c *Client) RestaurantsWithDetails(ctx context.Context) ([]models.Restaurant, error) {
	var raw []models.RawRestaurant
	if err := c.get(ctx, "api/resturant/getAllRestaurantsWithDetails", "Failed to load restaurants", &raw); err != nil {
		return nil, err
	}
	return transform.Restaurants(raw), nil
}

// Restaurants returns the lightweight collection used by selection
// lists.
func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	var raw []models.RawRestaurant
	if err := c.get(ctx, "api/resturant/allAdmin", "Failed to load restaurants", &raw); err != nil {
		return nil, err
	}
	return transform.Restaurants(raw), nil
}

// AddRestaurant creates a restaurant from multipart form fields plus
// an optional image. The endpoint signals success with a 201.
func (c *Client) AddRestaurant(ctx context.Context, fields map[string]string, image *Image) (Outcome, error) {
	body, contentType, err := multipartBody(fields, image)
	if err != nil {
		return Outcome{}, err
	}
	status, data, err := c.do(ctx, http.MethodPost, "api/resturant/add", body, contentType)
	if err != nil {
		return Outcome{}, err
	}
	if status != http.StatusCreated {
		return Outcome{OK: false, Message: firstNonEmpty(decodeEnvelope(data).Message, "Failed to create restaurant")}, nil
	}
	return Outcome{OK: true, Message: "Restaurant created successfully!"}, nil
}

// UpdateRestaurant submits the edited fields (multipart, image
// optional). Success is the literal confirmation message.
func (c *Client) UpdateRestaurant(ctx context.Context, id string, fields map[string]string, image *Image) (Outcome, error) {
	body, contentType, err := multipartBody(fields, image)
	if err != nil {
		return Outcome{}, err
	}
	_, data, err := c.do(ctx, http.MethodPut, "api/resturant/update/"+id, body, contentType)
	if err != nil {
		return Outcome{}, err
	}
	return messageOutcome(data, restaurantUpdatedMessage, "Failed to update restaurant."), nil
}

// UpdateRestaurantStatus flips the active flag. Success is the literal
// confirmation message.
func (c *Client) UpdateRestaurantStatus(ctx context.Context, id string, active bool) (Outcome, error) {
	_, data, err := c.sendJSON(ctx, http.MethodPut, "api/resturant/statusUpdate/"+id, map[string]bool{"isActive": active})
	if err != nil {
		return Outcome{}, err
	}
	return messageOutcome(data, restaurantUpdatedMessage, "Failed to update active status."), nil
}

func multipartBody(fields map[string]string, image *Image) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := w.WriteField(name, fields[name]); err != nil {
			return nil, "", xerrors.Wrap(err, "encoding form field")
		}
	}

	if image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, image.Name))
		header.Set("Content-Type", image.ContentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", xerrors.Wrap(err, "encoding image part")
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", xerrors.Wrap(err, "encoding image part")
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", xerrors.Wrap(err, "closing multipart body")
	}
	return &buf, w.FormDataContentType(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

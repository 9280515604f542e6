package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebud-labs/foodadmin/internal/client"
	"github.com/tastebud-labs/foodadmin/internal/xerrors"
)

func newClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{BaseURL: srv.URL, Token: "test-token"})
	require.NoError(t, err)
	return c, srv
}

func TestNewRequiresConfiguration(t *testing.T) {
	_, err := client.New(client.Config{BaseURL: "http://localhost"})
	assert.ErrorIs(t, err, xerrors.ErrConfiguration)

	_, err = client.New(client.Config{Token: "t"})
	assert.ErrorIs(t, err, xerrors.ErrConfiguration)
}

func TestRequestCarriesAuthHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]any{})
	}))

	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestCategoriesDecodesAndTransforms(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories/getAllCategories", r.URL.Path)
		w.Write([]byte(`[{"_id":"c1","name":"Pizza"},{"_id":"c2","name":"Sushi"}]`))
	}))

	categories, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "c1", categories[0].ID)
	assert.Equal(t, "Sushi", categories[1].Name)
}

func TestRestaurantsWithDetailsAppliesDefaults(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resturant/getAllRestaurantsWithDetails", r.URL.Path)
		w.Write([]byte(`[{"_id":"r1","name":"Burger Barn","category_id":{"_id":"c1","name":"Fast Food"}},{"_id":"r2"}]`))
	}))

	restaurants, err := c.RestaurantsWithDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Fast Food", restaurants[0].Category)
	assert.Equal(t, "N/A", restaurants[1].Name)
	assert.True(t, restaurants[1].Active)
}

func TestAuthExpiryPhrasesMapToSentinel(t *testing.T) {
	for _, phrase := range []string{
		"Session expired",
		"Not authorized, token failed",
		"Un-Authorized",
	} {
		t.Run(phrase, func(t *testing.T) {
			c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": phrase})
			}))

			_, err := c.Categories(context.Background())
			assert.ErrorIs(t, err, xerrors.ErrAuthExpired)
		})
	}
}

func TestServerErrorKeepsAPIMessage(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "database down"})
	}))

	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.Equal(t, "database down", xerrors.UserMessage(err, "fallback"))
}

func TestAddRestaurantSucceedsOn201(t *testing.T) {
	var gotFields map[string]string
	var gotImageName string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/resturant/add", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			gotFields[name] = values[0]
		}
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			gotImageName = files[0].Filename
		}
		w.WriteHeader(http.StatusCreated)
	}))

	outcome, err := c.AddRestaurant(context.Background(),
		map[string]string{"name": "Burger Barn", "rating": "4.5"},
		&client.Image{Name: "logo.png", ContentType: "image/png", Size: 4, Data: []byte("fake")})
	require.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, "Restaurant created successfully!", outcome.Message)
	assert.Equal(t, "Burger Barn", gotFields["name"])
	assert.Equal(t, "4.5", gotFields["rating"])
	assert.Equal(t, "logo.png", gotImageName)
}

func TestAddRestaurantNon201IsFailure(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "duplicate name"})
	}))

	outcome, err := c.AddRestaurant(context.Background(), map[string]string{"name": "X"}, nil)
	require.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, "duplicate name", outcome.Message)
}

func TestUpdateRestaurantMatchesLiteralMessage(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/resturant/update/r1", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Restaurant updated successfully"})
	}))

	outcome, err := c.UpdateRestaurant(context.Background(), "r1", map[string]string{"name": "New"}, nil)
	require.NoError(t, err)
	assert.True(t, outcome.OK)
}

func TestUpdateRestaurantAnyOtherMessageIsFailure(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with a different message is still a failure
		json.NewEncoder(w).Encode(map[string]string{"message": "Restaurant updated"})
	}))

	outcome, err := c.UpdateRestaurant(context.Background(), "r1", map[string]string{"name": "New"}, nil)
	require.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, "Restaurant updated", outcome.Message)
}

func TestUpdateRestaurantStatusSendsIsActive(t *testing.T) {
	var gotBody map[string]bool
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/resturant/statusUpdate/r1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"message": "Restaurant updated successfully"})
	}))

	outcome, err := c.UpdateRestaurantStatus(context.Background(), "r1", false)
	require.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, map[string]bool{"isActive": false}, gotBody)
}

func TestSubAdminsDecodesWrapper(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/getAllSubAdmins", r.URL.Path)
		w.Write([]byte(`{"subAdmins":[{"_id":"a1","full_name":"Jane Doe","restaurant_id":{"_id":"r1","name":"Burger Barn"}}]}`))
	}))

	subAdmins, err := c.SubAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, subAdmins, 1)
	assert.Equal(t, "Jane Doe", subAdmins[0].FullName)
	assert.Equal(t, "Burger Barn", subAdmins[0].RestaurantName)
}

func TestUpdateSubAdminUsesSuccessFlag(t *testing.T) {
	var gotBody map[string]string
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/updateSubAdmin/a1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	fields := map[string]string{
		"full_name":     "Jane Doe",
		"email":         "jane@example.com",
		"mobile":        "0712345678",
		"restaurant_id": "r1",
		"password":      "must-not-be-sent",
	}
	outcome, err := c.UpdateSubAdmin(context.Background(), "a1", fields)
	require.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, "Sub-admin updated successfully", outcome.Message)

	// only the four editable fields travel
	assert.Equal(t, map[string]string{
		"full_name":     "Jane Doe",
		"email":         "jane@example.com",
		"mobile":        "0712345678",
		"restaurant_id": "r1",
	}, gotBody)
}

func TestUpdateSubAdminSuccessFalse(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "email taken"})
	}))

	outcome, err := c.UpdateSubAdmin(context.Background(), "a1", map[string]string{})
	require.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, "email taken", outcome.Message)
}

func TestUpdateUserStatusPatch(t *testing.T) {
	var gotBody map[string]any
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/updateUserStatus", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	outcome, err := c.UpdateUserStatus(context.Background(), "a1", true)
	require.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, "a1", gotBody["userId"])
	assert.Equal(t, true, gotBody["active"])
}

func TestCreateSubAdmin(t *testing.T) {
	var gotBody client.SubAdminPayload
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/createSubAdmin", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))

	payload := client.SubAdminPayload{
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Mobile:       "0712345678",
		Password:     "secret",
		RestaurantID: "r1",
	}
	outcome, err := c.CreateSubAdmin(context.Background(), payload)
	require.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, payload, gotBody)
}

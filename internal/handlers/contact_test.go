package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/assistco/assist-api/internal/models"
)

func TestCreateContact(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")

	email := "venue@example.com"
	w := env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Venue",
		"last_name":  "Desk",
		"email":      email,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]interface{}
	decodeJSON(t, w, &body)
	require.Equal(t, "Venue", body["first_name"])
	require.Equal(t, email, body["email"])
	require.Nil(t, body["phone"])
	require.Nil(t, body["client_id"])

	// The same attributes resolve to the existing row instead of a
	// duplicate.
	w = env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Venue",
		"last_name":  "Desk",
		"email":      email,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Contact{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestCreateContactRequiresEmailOrPhone(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Venue",
		"last_name":  "Desk",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Either email or phone is required."}, resp["non_field_errors"])
}

func TestCreateContactScopedToClient(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")

	w := env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Driver",
		"last_name":  "Dan",
		"phone":      "+15550009999",
		"client":     cid,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]interface{}
	decodeJSON(t, w, &body)
	require.Equal(t, float64(cid), body["client_id"])

	// Same phone under no client is a distinct contact.
	w = env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Driver",
		"last_name":  "Dan",
		"phone":      "+15550009999",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Contact{}).Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestPatchContact(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Venue",
		"last_name":  "Desk",
		"email":      "venue@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, w, &created)

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/contacts/%d", created.ID), token, map[string]interface{}{
		"first_name": "Front",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	decodeJSON(t, w, &body)
	require.Equal(t, "Front", body["first_name"])
	require.Equal(t, "venue@example.com", body["email"])

	// Clearing the only reachable attribute is rejected.
	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/contacts/%d", created.ID), token, map[string]interface{}{
		"email": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Patching one contact onto another's identity must surface as a
// validation error, not a constraint violation.
func TestPatchContactDuplicateIdentity(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Venue",
		"last_name":  "Desk",
		"email":      "venue@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/contacts", token, map[string]interface{}{
		"first_name": "Driver",
		"last_name":  "Dan",
		"phone":      "+15550009999",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var driver struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, w, &driver)

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/contacts/%d", driver.ID), token, map[string]interface{}{
		"email": "venue@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Email already exists"}, resp["email"])

	// Patching a contact's own identity back onto itself stays fine.
	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/contacts/%d", driver.ID), token, map[string]interface{}{
		"phone": "+15550009999",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestDeleteContactRemovesTaskLinks(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")
	tid := createTask(t, env, token, cid, "Call the venue")

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, map[string]interface{}{
		"contacts": []map[string]interface{}{
			{"first_name": "Venue", "last_name": "Desk", "email": "venue@example.com"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var contact models.Contact
	require.NoError(t, env.db.Where("email = ?", "venue@example.com").First(&contact).Error)

	w = env.request(t, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", contact.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var contactCount, linkCount int64
	require.NoError(t, env.db.Model(&models.Contact{}).Count(&contactCount).Error)
	require.NoError(t, env.db.Model(&models.TaskContact{}).Count(&linkCount).Error)
	require.Equal(t, int64(0), contactCount)
	require.Equal(t, int64(0), linkCount)

	w = env.request(t, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", contact.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/assistco/assist-api/internal/models"
)

type taskPage struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []json.RawMessage `json:"results"`
}

func createTask(t *testing.T, env *testEnv, token string, clientID uint, text string) uint {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"client":    clientID,
		"task_type": "errand",
		"text":      text,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		ID    uint             `json:"id"`
		State models.TaskState `json:"state"`
	}
	decodeJSON(t, w, &body)
	require.Equal(t, models.TaskStateReady, body.State)
	return body.ID
}

func TestCreateTask(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")

	w := env.request(t, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"client":    cid,
		"task_type": "reservation",
		"text":      "Book a table for two at 7pm",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]interface{}
	decodeJSON(t, w, &body)
	require.Equal(t, "reservation", body["task_type"])
	require.Equal(t, "ready", body["state"])
	require.Equal(t, false, body["is_complete"])
	require.Equal(t, float64(cid), body["client_id"])
}

func TestCreateTaskUnknownType(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")

	w := env.request(t, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"client":    cid,
		"task_type": "teleportation",
		"text":      "Beam me up",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Object with permalink=teleportation does not exist."}, resp["task_type"])
}

func TestCreateTaskUnknownClient(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")

	w := env.request(t, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"client":    99999,
		"task_type": "errand",
		"text":      "Pick up dry cleaning",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Client does not exist."}, resp["client"])
}

func TestClientTaskListExcludesArchived(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")

	keep := createTask(t, env, token, cid, "Keep this one")
	gone := createTask(t, env, token, cid, "Archive this one")

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, gone), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var page taskPage
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/clients/%d/tasks", cid), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	require.Equal(t, int64(1), page.Count)

	// The archived task is no longer addressable under the client.
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, gone), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, keep), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The global list still carries it for assistants.
	w = env.request(t, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	require.Equal(t, int64(2), page.Count)

	// Archiving again stays 204 and leaves the row in place.
	w = env.request(t, http.MethodDelete, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, gone), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var stored models.Task
	require.NoError(t, env.db.First(&stored, gone).Error)
	require.True(t, stored.IsArchived)
}

func TestPatchClientTask(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")
	tid := createTask(t, env, token, cid, "Research venues")

	w := env.request(t, http.MethodPatch, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, tid), token, map[string]interface{}{
		"state":     "executing",
		"task_type": "research",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	decodeJSON(t, w, &body)
	require.Equal(t, "executing", body["state"])
	require.Equal(t, "research", body["task_type"])

	// Any valid state is accepted from any other state.
	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, tid), token, map[string]interface{}{
		"state": "terminated",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, tid), token, map[string]interface{}{
		"state": "ready",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/clients/%d/tasks/%d", cid, tid), token, map[string]interface{}{
		"state": "paused",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string][]string
	decodeJSON(t, w, &resp)
	require.Equal(t, []string{"Not a valid task state."}, resp["state"])
}

func TestClientTaskScoping(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	env.signupClient(t, "bob@example.com", "+15550002222")
	alice := clientID(t, env, "alice@example.com")
	bob := clientID(t, env, "bob@example.com")
	tid := createTask(t, env, token, alice, "Alice's task")

	// Another client's path does not expose the task.
	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/clients/%d/tasks/%d", bob, tid), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddTaskContacts(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")
	tid := createTask(t, env, token, cid, "Call the venue")

	email := "venue@example.com"
	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, map[string]interface{}{
		"contacts": []map[string]interface{}{
			{"first_name": "Venue", "last_name": "Desk", "email": email},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Contacts []struct {
			ID    uint    `json:"id"`
			Email *string `json:"email"`
		} `json:"contacts"`
	}
	decodeJSON(t, w, &body)
	require.Len(t, body.Contacts, 1)
	require.Equal(t, email, *body.Contacts[0].Email)
	contactID := body.Contacts[0].ID

	// Posting the same attributes reuses the contact and link.
	w = env.request(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, map[string]interface{}{
		"contacts": []map[string]interface{}{
			{"first_name": "Venue", "last_name": "Desk", "email": email},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeJSON(t, w, &body)
	require.Len(t, body.Contacts, 1)
	require.Equal(t, contactID, body.Contacts[0].ID)

	var contactCount, linkCount int64
	require.NoError(t, env.db.Model(&models.Contact{}).Count(&contactCount).Error)
	require.NoError(t, env.db.Model(&models.TaskContact{}).Count(&linkCount).Error)
	require.Equal(t, int64(1), contactCount)
	require.Equal(t, int64(1), linkCount)

	// Attaching by id works too, and stays idempotent.
	w = env.request(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, map[string]interface{}{
		"contacts": []uint{contactID, contactID},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, env.db.Model(&models.TaskContact{}).Count(&linkCount).Error)
	require.Equal(t, int64(1), linkCount)
}

func TestAddTaskContactsRejectsMixedArray(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")
	tid := createTask(t, env, token, cid, "Call the venue")

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, map[string]interface{}{
		"contacts": []interface{}{
			1,
			map[string]interface{}{"first_name": "Venue", "last_name": "Desk", "email": "venue@example.com"},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddTaskContactsUnresolvedID(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")
	tid := createTask(t, env, token, cid, "Call the venue")

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, map[string]interface{}{
		"contacts": []uint{99999},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing is linked when any id fails to resolve.
	var linkCount int64
	require.NoError(t, env.db.Model(&models.TaskContact{}).Count(&linkCount).Error)
	require.Equal(t, int64(0), linkCount)
}

func TestListTaskContacts(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupClient(t, "alice@example.com", "+15550001111")
	cid := clientID(t, env, "alice@example.com")
	tid := createTask(t, env, token, cid, "Call the venue")

	env.request(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, map[string]interface{}{
		"contacts": []map[string]interface{}{
			{"first_name": "Venue", "last_name": "Desk", "email": "venue@example.com"},
			{"first_name": "Driver", "last_name": "Dan", "phone": "+15550009999"},
		},
	})

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d/contacts", tid), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var contacts []map[string]interface{}
	decodeJSON(t, w, &contacts)
	require.Len(t, contacts, 2)
	require.Equal(t, "Venue", contacts[0]["first_name"])
	require.Equal(t, "Driver", contacts[1]["first_name"])
}

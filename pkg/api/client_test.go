package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tempo/pkg/task"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"token":   "tok-123",
			"user":    map[string]string{"id": "u1", "username": "ada", "email": "ada@example.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	sess, err := c.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, "ada", sess.User.Username)
}

func TestLoginFailureCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "email or password incorrect",
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	_, err := c.Login(context.Background(), "ada@example.com", "nope")
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok, "expected *Error, got %T", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Message, "incorrect")
}

func TestListSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"tasks": []map[string]string{
				{"id": "t1", "title": "standup", "date": "2026-01-05", "startTime": "09:00", "endTime": "09:30"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", WithToken("tok-123"))
	tasks, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "standup", tasks[0].Title)
}

func TestListToleratesSnakeCaseAndBadDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"tasks": []map[string]string{
				{"_id": "t1", "title": "legacy", "date": "2026-01-05", "start_time": "09:00", "end_time": "10:30", "user_id": "u1"},
				{"id": "t2", "title": "broken", "date": "not-a-date", "startTime": "09:00", "endTime": "10:00"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	tasks, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1, "malformed-date record should be dropped")

	got := tasks[0]
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, "09:00", got.Start)
	assert.Equal(t, "10:30", got.End)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, "2026-01-05", got.Date.String())
}

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/tasks", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2026-01-05", body["date"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"task": map[string]string{
				"id": "t9", "title": body["title"], "date": body["date"],
				"startTime": body["startTime"], "endTime": body["endTime"],
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	created, err := c.Create(context.Background(), task.Draft{
		Title: "standup", Date: "2026-01-05", Start: "09:00", End: "09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "t9", created.ID)
}

func TestCreateRejectsInvalidDraftLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid draft must not reach the backend")
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	_, err := c.Create(context.Background(), task.Draft{
		Title: "late show", Date: "2026-01-05", Start: "23:00", End: "01:00",
	})
	require.ErrorIs(t, err, task.ErrTimeOrder)
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/tasks/t1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "deleted"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	require.NoError(t, c.Delete(context.Background(), "t1"))
}

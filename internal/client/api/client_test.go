package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin_StoresTokenForLaterRequests(t *testing.T) {
	var seenAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			require.Equal(t, "testuser", creds["username"])
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
		case "/api/notes":
			seenAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]Note{})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Login(context.Background(), "testuser", "testpass"))

	_, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", seenAuth)
}

func TestRegister_DuplicateMapsToError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Username already exists"})
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Register(context.Background(), "testuser", "testpass")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Username already exists", apiErr.Error())
}

func TestGetNote_DecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notes/n-1", r.URL.Path)
		json.NewEncoder(w).Encode(Note{
			ID: "n-1", Title: "Test Note", Content: "Note content", CreatedAt: "2024-05-01 10:00:00",
		})
	}))
	defer srv.Close()

	note, err := NewClient(srv.URL).GetNote(context.Background(), "n-1")
	require.NoError(t, err)
	require.Equal(t, "Test Note", note.Title)
	require.Equal(t, "2024-05-01 10:00:00", note.CreatedAt)
}

func TestUpdateNote_SendsOnlyChangedFields(t *testing.T) {
	var body map[string]*string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]string{"msg": "Note updated!"})
	}))
	defer srv.Close()

	title := "After"
	err := NewClient(srv.URL).UpdateNote(context.Background(), "n-1", &title, nil)
	require.NoError(t, err)

	require.Len(t, body, 1)
	require.Equal(t, "After", *body["title"])
}

func TestSearchNotes_BuildsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notes/search", r.URL.Path)
		require.Equal(t, "python", r.URL.Query().Get("title"))
		require.Empty(t, r.URL.Query().Get("content"))
		json.NewEncoder(w).Encode([]Note{{ID: "n-1", Title: "Python Tips"}})
	}))
	defer srv.Close()

	notes, err := NewClient(srv.URL).SearchNotes(context.Background(), "python", "")
	require.NoError(t, err)
	require.Len(t, notes, 1)
}

func TestDo_ErrorWithoutMsgFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).DeleteNote(context.Background(), "n-1")
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "server returned status 502", apiErr.Error())
}

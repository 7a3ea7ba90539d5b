package sheetdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListSuccess(t *testing.T) {
	var gotPassword string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPassword = r.URL.Query().Get("password")
		io.WriteString(w, `[
			{"id": 1, "name": "Jane Smith", "username": "jsmith", "type": "Personal Leave", "start": "2024-01-10", "end": "2024-01-12", "status": "Pending"},
			{"id": "row-2", "name": "John Doe", "type": "Military Leave", "start": "2024-02-01", "end": "2024-02-05", "status": "Approved"}
		]`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	records, err := client.List(context.Background(), "s3cret")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "s3cret", gotPassword)
	assert.Equal(t, leave.RowID("1"), records[0].ID)
	assert.Equal(t, leave.RowID("row-2"), records[1].ID)
	assert.Equal(t, "Jane Smith", records[0].Name)
	assert.Equal(t, leave.StatusApproved, records[1].Status)
}

func TestClientListIncorrectPasscode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error": "Invalid password"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.List(context.Background(), "wrong")
	assert.ErrorIs(t, err, leave.ErrIncorrectPasscode)
}

func TestClientListUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"ok": true}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	records, err := client.List(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientListTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, nil)
	_, err := client.List(context.Background(), "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, leave.ErrIncorrectPasscode)
}

func TestClientMutateSendsFlatBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.Mutate(context.Background(), "s3cret", Mutation{
		Action: ActionUpdateStatus,
		ID:     "7",
		Status: leave.StatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, "updateStatus", got["action"])
	assert.Equal(t, "s3cret", got["password"])
	assert.Equal(t, "7", got["id"])
	assert.Equal(t, "Approved", got["status"])
}

func TestClientMutateIgnoresResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "not json at all")
	}))
	defer srv.Close()

	// The web app's responses are opaque: only transport failures count.
	client := NewClient(srv.URL, nil)
	err := client.Mutate(context.Background(), "s3cret", Mutation{Action: ActionDelete, ID: "1"})
	assert.NoError(t, err)
}

func TestClientMutateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, nil)
	err := client.Mutate(context.Background(), "s3cret", Mutation{Action: ActionDelete, ID: "1"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, leave.ErrIncorrectPasscode))
}

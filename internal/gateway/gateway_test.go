package gateway

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlzmm5188/fryctl/internal/session"
)

type recordingNavigator struct {
	calls int
}

func (n *recordingNavigator) NavigateToLogin() { n.calls++ }

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(session.NewFileSlotAt(filepath.Join(t.TempDir(), "session.json")))
}

func loginTestStore(t *testing.T, store *session.Store) {
	t.Helper()
	require.NoError(t, store.Login("tok123", session.Identity{ID: 1, Username: "alice", Role: session.RoleAdmin}))
}

func TestTransportAttachesBearerToken(t *testing.T) {
	store := newTestStore(t)
	loginTestStore(t, store)

	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	nav := &recordingNavigator{}
	client := NewHTTPClient(store, nav)

	resp, err := client.Get(srv.URL + "/dashboard/fry-records")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestTransportSkipsHeaderWhenLoggedOut(t *testing.T) {
	store := newTestStore(t)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(store, &recordingNavigator{})

	resp, err := client.Get(srv.URL + "/auth/login")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, gotAuth)
}

func TestTransportReadsTokenAtDispatchTime(t *testing.T) {
	store := newTestStore(t)
	loginTestStore(t, store)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(store, &recordingNavigator{})

	// The request is built before the token changes; the header must carry
	// the token current at dispatch time.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
	require.NoError(t, err)
	require.NoError(t, store.Login("tok456", session.Identity{ID: 1, Username: "alice", Role: session.RoleAdmin}))

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer tok456", gotAuth)
}

func TestTransportTearsDownSessionOn401(t *testing.T) {
	store := newTestStore(t)
	loginTestStore(t, store)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	nav := &recordingNavigator{}
	client := NewHTTPClient(store, nav)

	resp, err := client.Get(srv.URL + "/agents")
	require.NoError(t, err)
	defer resp.Body.Close()

	// The rejection is still surfaced to the caller.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.Identity)
	assert.Equal(t, 1, nav.calls)
}

func TestTransportLeavesSessionAloneOnSuccess(t *testing.T) {
	store := newTestStore(t)
	loginTestStore(t, store)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	nav := &recordingNavigator{}
	client := NewHTTPClient(store, nav)

	resp, err := client.Get(srv.URL + "/dashboard/fry-records")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.True(t, store.Snapshot().IsAuthenticated)
	assert.Equal(t, 0, nav.calls)
}

func TestTransportLeavesSessionAloneOnServerError(t *testing.T) {
	store := newTestStore(t)
	loginTestStore(t, store)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	nav := &recordingNavigator{}
	client := NewHTTPClient(store, nav)

	resp, err := client.Get(srv.URL + "/agents")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, store.Snapshot().IsAuthenticated)
	assert.Equal(t, 0, nav.calls)
}

func TestTransportLeavesSessionAloneOnTimeout(t *testing.T) {
	store := newTestStore(t)
	loginTestStore(t, store)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	nav := &recordingNavigator{}
	client := NewHTTPClient(store, nav, WithTimeout(20*time.Millisecond))

	_, err := client.Get(srv.URL + "/dashboard/fry-records")
	require.Error(t, err)

	assert.True(t, store.Snapshot().IsAuthenticated)
	assert.Equal(t, 0, nav.calls)
}

package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run("success returns token and user", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req loginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "secret", req.Password)

			json.NewEncoder(w).Encode(loginResponse{
				Success: true,
				Token:   "tok123",
				User:    &User{ID: 1, Username: "alice", Role: "admin"},
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		result, err := client.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok123", result.Token)
		assert.Equal(t, "alice", result.User.Username)
		assert.Equal(t, "admin", result.User.Role)
	})

	t.Run("rejected login surfaces server message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(loginResponse{Success: false, Message: "invalid username or password"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.Login(context.Background(), "alice", "wrong")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid username or password", apiErr.Message)
	})

	t.Run("success without token is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(loginResponse{Success: true})
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.Login(context.Background(), "alice", "secret")
		assert.Error(t, err)
	})
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		json.NewEncoder(w).Encode(User{ID: 2, Username: "bob", Role: "agent", InviteCode: "inv-2"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "agent", user.Role)
	assert.Equal(t, "inv-2", user.InviteCode)
}

func TestListFryRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/fry-records", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("pageSize"))
		assert.Equal(t, "2026-01-02", q.Get("date"))
		assert.Equal(t, "+100", q.Get("phone"))
		assert.False(t, q.Has("agent"), "empty filters must be omitted")

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []FryRecord{
				{ID: 10, Phone: "+100", StateID: "st-1", CreatedAt: 1_700_000_000},
			},
			"total": 120,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	page, err := client.ListFryRecords(context.Background(), ListFryRecordsInput{
		Page:     2,
		PageSize: 50,
		Date:     "2026-01-02",
		Phone:    "+100",
	})
	require.NoError(t, err)
	assert.Equal(t, 120, page.Total)
	require.Len(t, page.Records, 1)
	assert.Equal(t, int64(10), page.Records[0].ID)
}

func TestListFryRecordsDefaultsPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "20", q.Get("pageSize"))
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []FryRecord{}, "total": 0})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListFryRecords(context.Background(), ListFryRecordsInput{})
	require.NoError(t, err)
}

func TestUpdateRemark(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/dashboard/fry-records/7/remark", r.URL.Path)

		var req updateRemarkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "checked", req.Remark)

		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.NoError(t, client.UpdateRemark(context.Background(), 7, "checked"))
}

func TestDeleteFryRecordNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"detail": "record not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.DeleteFryRecord(context.Background(), 404)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Message, "record not found")
}

func TestCreateAgent(t *testing.T) {
	t.Run("returns created agent with invite code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/agents", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    User{ID: 3, Username: "new-agent", Role: "agent", InviteCode: "inv-3"},
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		user, err := client.CreateAgent(context.Background(), "new-agent", "pw")
		require.NoError(t, err)
		assert.Equal(t, "inv-3", user.InviteCode)
	})

	t.Run("duplicate username is an APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "username already exists"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.CreateAgent(context.Background(), "dup", "pw")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "username already exists", apiErr.Message)
	})
}

func TestListAgents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents", r.URL.Path)
		assert.Equal(t, "smith", r.URL.Query().Get("username"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []User{{ID: 5, Username: "smith", Role: "agent"}},
			"total":   1,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	page, err := client.ListAgents(context.Background(), ListAgentsInput{Username: "smith"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Agents, 1)
	assert.Equal(t, "smith", page.Agents[0].Username)
}

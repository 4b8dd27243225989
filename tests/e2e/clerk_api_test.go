package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// mockClerkServer records user metadata updates sent to the Clerk Backend API.
type mockClerkServer struct {
	server   *httptest.Server
	metadata map[string]map[string]any // user id -> last public metadata
	failing  map[string]int            // user id -> status code to answer with
	mu       sync.RWMutex
}

func setupClerkServer(*testing.T) *mockClerkServer {
	m := &mockClerkServer{
		metadata: make(map[string]map[string]any),
		failing:  make(map[string]int),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := metadataUserID(r.URL.Path)
		if r.Method != http.MethodPatch || !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		m.mu.RLock()
		status, fail := m.failing[userID]
		m.mu.RUnlock()
		if fail {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"errors":[{"message":"failure","long_message":"Injected failure","code":"internal_clerk_error"}]}`))
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var req struct {
			PublicMetadata map[string]any `json:"public_metadata"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		m.mu.Lock()
		m.metadata[userID] = req.PublicMetadata
		m.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":              userID,
			"object":          "user",
			"public_metadata": req.PublicMetadata,
		})
	}))

	m.server = server
	return m
}

// metadataUserID extracts the user id from /v1/users/{id}/metadata.
func metadataUserID(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 4 || parts[0] != "v1" || parts[1] != "users" || parts[3] != "metadata" {
		return "", false
	}
	return parts[2], true
}

// Metadata returns the last public metadata written for userID.
func (m *mockClerkServer) Metadata(userID string) (map[string]any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	md, ok := m.metadata[userID]
	return md, ok
}

// FailFor makes metadata updates for userID answer with status.
func (m *mockClerkServer) FailFor(userID string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[userID] = status
}

func (m *mockClerkServer) URL() string {
	return m.server.URL
}

func (m *mockClerkServer) Close() {
	m.server.Close()
}

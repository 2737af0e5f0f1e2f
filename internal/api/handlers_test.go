package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad-MoBe/LogKVStore/internal/storage"
)

func setupTestRouter(t *testing.T) http.Handler {
	engine, err := storage.Open(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })

	// metrics stay nil: promauto registers on the global registry and
	// would collide across test cases
	handler := NewHandler(engine, nil)
	return Router(handler, nil, nil)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return w, response
}

func TestSetThenGetValue(t *testing.T) {
	router := setupTestRouter(t)

	w, response := doJSON(t, router, http.MethodPut, "/api/v1/keys/name",
		map[string]interface{}{"value": "alice"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", response["value"])

	w, response = doJSON(t, router, http.MethodGet, "/api/v1/keys/name", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "name", response["key"])
	assert.Equal(t, "alice", response["value"])
}

func TestGetValueNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/keys/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, response, "error")
}

func TestSetValueInvalidBody(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/keys/k", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetValueEmptyValueRejected(t *testing.T) {
	router := setupTestRouter(t)

	w, response := doJSON(t, router, http.MethodPut, "/api/v1/keys/k",
		map[string]interface{}{"value": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	errBody, ok := response["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "INVALID_VALUE", errBody["type"])
}

func TestListKeys(t *testing.T) {
	router := setupTestRouter(t)

	for _, k := range []string{"b", "a", "c"} {
		w, _ := doJSON(t, router, http.MethodPut, "/api/v1/keys/"+k,
			map[string]interface{}{"value": "v"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/keys", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), response["count"])
	assert.Equal(t, []interface{}{"a", "b", "c"}, response["keys"])
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t)

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", response["status"])
}

func TestStats(t *testing.T) {
	router := setupTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPut, "/api/v1/keys/k",
		map[string]interface{}{"value": "v"})
	require.Equal(t, http.StatusOK, w.Code)

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), response["keys"])
	assert.Equal(t, float64(1), response["sets"])
}

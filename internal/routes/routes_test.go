package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bus_transport/internal/controllers"
	"bus_transport/internal/routes"
	"bus_transport/internal/services"
	"bus_transport/internal/store"
	"bus_transport/internal/testutil"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	st := store.New(testutil.NewDB(t))
	log := testutil.NewLogger()
	return routes.SetupRouter(routes.Deps{
		Routes: controllers.NewRouteController(services.NewRouteService(st, log)),
		Buses:  controllers.NewBusController(services.NewBusService(st, log)),
		Health: controllers.NewHealthController(st),
	})
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func createRoute(t *testing.T, r http.Handler) uint {
	t.Helper()
	w, body := do(t, r, http.MethodPost, "/transport/route",
		`{"title":"PUNE_TO_MUMBAI","source":"Pune","destination":"Mumbai","stations":"Lonavala,Panvel"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(body["id"].(float64))
}

func TestCreateRouteEndpoint(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/transport/route",
		`{"title":"PUNE_TO_MUMBAI","source":"Pune","destination":"Mumbai"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.NotZero(t, body["id"])
	assert.Equal(t, "PUNE_TO_MUMBAI", body["title"])
	assert.Equal(t, "Pune", body["source"])
	assert.Equal(t, "Mumbai", body["destination"])
	assert.Contains(t, body, "stations")
	assert.Nil(t, body["stations"])
	assert.NotContains(t, body, "buses")
}

func TestCreateRouteValidationBody(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/transport/route", `{"title":" ","source":"A"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, float64(400), body["status"])
	assert.Equal(t, "Validation Failed", body["error"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Equal(t, map[string]any{
		"title":       "Title cannot be blank",
		"destination": "Destination cannot be blank",
	}, body["errors"])
}

func TestUndecodableBodiesAreInternalErrors(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"empty body", "/transport/route", ""},
		{"truncated json", "/transport/route", `{"title":`},
		{"wrong type", "/transport/bus", `{"busNo":"X","capacity":"big","routeId":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, r, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, float64(500), body["status"])
			assert.Equal(t, "Internal Server Error", body["error"])
			assert.Contains(t, body["message"], "An unexpected error occurred: ")
		})
	}
}

func TestGetRouteWithBuses(t *testing.T) {
	r := newRouter(t)
	routeID := createRoute(t, r)

	w, body := do(t, r, http.MethodGet, fmt.Sprintf("/transport/route/%d", routeID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lonavala,Panvel", body["stations"])
	assert.Equal(t, []any{}, body["buses"])

	ids := map[float64]bool{}
	for _, no := range []string{"MH12 AU-3456", "MH12 AU-7777"} {
		w, bus := do(t, r, http.MethodPost, "/transport/bus",
			fmt.Sprintf(`{"busNo":%q,"color":"Green","capacity":40,"routeId":%d}`, no, routeID))
		require.Equal(t, http.StatusCreated, w.Code)
		ids[bus["id"].(float64)] = true
	}

	w, body = do(t, r, http.MethodGet, fmt.Sprintf("/transport/route/%d", routeID), "")
	require.Equal(t, http.StatusOK, w.Code)
	buses := body["buses"].([]any)
	require.Len(t, buses, 2)
	for _, b := range buses {
		bus := b.(map[string]any)
		assert.True(t, ids[bus["id"].(float64)])
		assert.Equal(t, float64(routeID), bus["routeId"])
		assert.Equal(t, "Green", bus["color"])
		assert.Equal(t, float64(40), bus["capacity"])
	}
}

func TestGetRouteNotFound(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodGet, "/transport/route/123", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(404), body["status"])
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "Route with ID 123 not found", body["message"])
}

func TestNonNumericIDIsInternalError(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/transport/route/abc", "/transport/bus/search/abc"} {
		w, body := do(t, r, http.MethodGet, path, "")
		require.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Equal(t, "Internal Server Error", body["error"])
		assert.Contains(t, body["message"], "An unexpected error occurred: ")
	}
}

func TestNegativeIDsAreNotFound(t *testing.T) {
	r := newRouter(t)
	createRoute(t, r)

	w, body := do(t, r, http.MethodGet, "/transport/route/-5", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route with ID -5 not found", body["message"])

	w, body = do(t, r, http.MethodGet, "/transport/bus/search/-1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route with ID -1 not found", body["message"])

	w, body = do(t, r, http.MethodPost, "/transport/bus", `{"busNo":"X","routeId":-1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route with ID -1 not found", body["message"])
}

func TestCreateBusEndpoint(t *testing.T) {
	r := newRouter(t)
	routeID := createRoute(t, r)

	w, body := do(t, r, http.MethodPost, "/transport/bus", fmt.Sprintf(`{"busNo":"KA01","routeId":%d}`, routeID))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "KA01", body["busNo"])
	assert.Contains(t, body, "color")
	assert.Nil(t, body["color"])
	assert.Contains(t, body, "capacity")
	assert.Nil(t, body["capacity"])
	assert.Equal(t, float64(routeID), body["routeId"])
}

func TestCreateBusValidation(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/transport/bus", `{"busNo":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{
		"busNo":   "Bus number cannot be blank",
		"routeId": "Route ID cannot be null",
	}, body["errors"])
}

func TestCreateBusUnknownRoute(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodPost, "/transport/bus", `{"busNo":"X","routeId":55}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route with ID 55 not found", body["message"])

	w, _ = do(t, r, http.MethodGet, "/transport/bus/search/55", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchBusesByRoute(t *testing.T) {
	r := newRouter(t)
	routeID := createRoute(t, r)
	path := fmt.Sprintf("/transport/bus/search/%d", routeID)

	w, _ := do(t, r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	_, bus := do(t, r, http.MethodPost, "/transport/bus", fmt.Sprintf(`{"busNo":"KA01","routeId":%d}`, routeID))

	w, _ = do(t, r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, bus["id"], list[0]["id"])
}

func TestHealthz(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestUnknownPath(t *testing.T) {
	r := newRouter(t)

	w, body := do(t, r, http.MethodGet, "/transport/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", body["error"])
}

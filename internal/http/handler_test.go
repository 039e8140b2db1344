package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/auth"
	"fleet-service/internal/http/middleware"
	"fleet-service/internal/repository"
	"fleet-service/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zerolog.Nop()
	vehicles := repository.NewMemoryVehicleStore(repository.SeedVehicles())
	maintenance := repository.NewMemoryMaintenanceStore(repository.SeedMaintenanceRecords())
	assignments := repository.NewMemoryAssignmentStore(repository.SeedAssignmentHistory())

	handler := NewHandler(
		service.NewFleetService(vehicles, log),
		service.NewDashboardService(vehicles, maintenance, assignments),
		service.NewMaintenanceService(vehicles, maintenance),
		service.NewAssignmentService(assignments),
		auth.NewIssuer("test-secret", time.Hour),
		log,
	)
	return NewRouter(handler, middleware.Auth(auth.NewParser("test-secret")), "test")
}

func loginToken(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func doJSON(router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "Fleet Management API is running", resp["message"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid credentials return token and stripped user", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"username": "admin", "password": "admin123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp, "token")

		var user map[string]any
		require.NoError(t, json.Unmarshal(resp["user"], &user))
		assert.Equal(t, "admin", user["username"])
		assert.NotContains(t, user, "password")
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "admin", "password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/vehicles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodGet, "/vehicles", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListVehicles(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "manager", "manager123")

	rec := doJSON(router, http.MethodGet, "/vehicles", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var vehicles []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	assert.Len(t, vehicles, 8)
}

func TestGetVehicle(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "admin", "admin123")

	t.Run("found", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/vehicles/VEH-004", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var vehicle map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicle))
		assert.Equal(t, "Honda", vehicle["make"])
	})

	t.Run("missing id answers 404 with the wire message", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/vehicles/VEH-999", token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Vehicle not found", resp["message"])
	})
}

func TestCreateVehicle(t *testing.T) {
	newVehicle := func() map[string]any {
		return map[string]any{
			"make":           "Honda",
			"model":          "Accord",
			"year":           2023,
			"vin":            "1HGCM82633A004352",
			"currentMileage": 120.0,
		}
	}

	t.Run("manager can create, id is server-assigned", func(t *testing.T) {
		router := newTestRouter(t)
		token := loginToken(t, router, "manager", "manager123")

		rec := doJSON(router, http.MethodPost, "/vehicles", token, newVehicle())
		require.Equal(t, http.StatusCreated, rec.Code)

		var vehicle map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicle))
		assert.Regexp(t, `^VEH-\d+$`, vehicle["vehicleId"])
		assert.Equal(t, "Active", vehicle["status"])
		assert.Equal(t, "Unassigned", vehicle["assignedDriver"])
	})

	t.Run("driver is denied", func(t *testing.T) {
		router := newTestRouter(t)
		token := loginToken(t, router, "driver", "driver123")

		rec := doJSON(router, http.MethodPost, "/vehicles", token, newVehicle())
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid draft answers 400 with field errors", func(t *testing.T) {
		router := newTestRouter(t)
		token := loginToken(t, router, "admin", "admin123")

		bad := newVehicle()
		bad["vin"] = "SHORT"
		bad["year"] = 1985
		rec := doJSON(router, http.MethodPost, "/vehicles", token, bad)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Message     string            `json:"message"`
			FieldErrors map[string]string `json:"fieldErrors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.FieldErrors, "vin")
		assert.Contains(t, resp.FieldErrors, "year")
	})

	t.Run("duplicate VIN answers 400", func(t *testing.T) {
		router := newTestRouter(t)
		token := loginToken(t, router, "admin", "admin123")

		dup := newVehicle()
		dup["vin"] = "1FTEW1EP5KFA10001" // VEH-001
		rec := doJSON(router, http.MethodPost, "/vehicles", token, dup)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp["message"], "VIN")
	})
}

func TestUpdateVehicle(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "manager", "manager123")

	rec := doJSON(router, http.MethodPut, "/vehicles/VEH-002", token, map[string]any{
		"make":           "Toyota",
		"model":          "Camry",
		"year":           2020,
		"vin":            "4T1B11HK5LU200022",
		"currentMileage": 40000.0,
		"status":         "Maintenance",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var vehicle map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicle))
	assert.Equal(t, "Maintenance", vehicle["status"])
	assert.Equal(t, 40000.0, vehicle["currentMileage"])
}

func TestAuthRoutesAndPermissions(t *testing.T) {
	router := newTestRouter(t)

	t.Run("driver navigation excludes drivers and admin", func(t *testing.T) {
		token := loginToken(t, router, "driver", "driver123")

		rec := doJSON(router, http.MethodGet, "/auth/routes", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Routes []string `json:"routes"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"/dashboard", "/vehicles", "/maintenance"}, resp.Routes)
	})

	t.Run("driver permissions are view-only", func(t *testing.T) {
		token := loginToken(t, router, "driver", "driver123")

		rec := doJSON(router, http.MethodGet, "/auth/permissions", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var perms map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &perms))
		assert.False(t, perms["canCreate"])
		assert.False(t, perms["canEdit"])
		assert.False(t, perms["canDelete"])
		assert.True(t, perms["canView"])
	})
}

func TestDashboardEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "manager", "manager123")

	rec := doJSON(router, http.MethodGet, "/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 8.0, stats["totalVehicles"])
	assert.Equal(t, 6.0, stats["activeVehicles"])
	assert.Equal(t, 1.0, stats["inMaintenance"])

	rec = doJSON(router, http.MethodGet, "/dashboard/activity", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/dashboard/alerts", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDriverScopedListings(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "driver", "driver123")

	rec := doJSON(router, http.MethodGet, "/maintenance", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	driverVehicles := map[string]bool{"VEH-004": true, "VEH-005": true, "VEH-006": true, "VEH-007": true}
	for _, record := range records {
		assert.True(t, driverVehicles[record["vehicleId"].(string)],
			"unexpected vehicle %v in driver maintenance listing", record["vehicleId"])
	}

	rec = doJSON(router, http.MethodGet, "/assignments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	for _, row := range history {
		assert.Equal(t, "Driver User", row["driverName"])
	}
}

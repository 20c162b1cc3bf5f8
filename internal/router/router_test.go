package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docspot/docspot-api/internal/handler"
	appointmentHandler "github.com/docspot/docspot-api/internal/handler/appointment"
	authHandler "github.com/docspot/docspot-api/internal/handler/auth"
	dashboardHandler "github.com/docspot/docspot-api/internal/handler/dashboard"
	doctorHandler "github.com/docspot/docspot-api/internal/handler/doctor"
	medicalHandler "github.com/docspot/docspot-api/internal/handler/medical"
	patientHandler "github.com/docspot/docspot-api/internal/handler/patient"
	profileHandler "github.com/docspot/docspot-api/internal/handler/profile"
	"github.com/docspot/docspot-api/internal/middleware"
	"github.com/docspot/docspot-api/internal/repository/kv"
	"github.com/docspot/docspot-api/internal/router"
	appointmentService "github.com/docspot/docspot-api/internal/service/appointment"
	authService "github.com/docspot/docspot-api/internal/service/auth"
	doctorService "github.com/docspot/docspot-api/internal/service/doctor"
	medicalService "github.com/docspot/docspot-api/internal/service/medical"
	patientService "github.com/docspot/docspot-api/internal/service/patient"
	profileService "github.com/docspot/docspot-api/internal/service/profile"
	"github.com/docspot/docspot-api/internal/store"
)

func newTestEngine(t *testing.T) http.Handler {
	t.Helper()

	docStore := store.NewMemoryStore()
	t.Cleanup(func() { docStore.Close() })

	registry := kv.NewCredentialRegistry(docStore)
	sessions := kv.NewSessionRepository(docStore)
	appointments := kv.NewAppointmentRepository(docStore)
	schedules := kv.NewScheduleRepository(docStore)
	summaries := kv.NewSummaryRepository(docStore)
	profiles := kv.NewProfileRepository(docStore)

	authSvc := authService.NewService(registry, sessions)
	doctorSvc := doctorService.NewService(schedules)
	appointmentSvc := appointmentService.NewService(appointments, doctorSvc, false)
	medicalSvc := medicalService.NewService(summaries, false)
	patientSvc := patientService.NewService()
	profileSvc := profileService.NewService(profiles)

	sessionAuth := middleware.NewSessionAuth(authSvc)
	docStore.Subscribe(store.KeyCurrentUser, sessionAuth.Invalidate)

	router.RegisterValidators()

	r := router.NewRouter(
		sessionAuth,
		authHandler.NewHandler(authSvc),
		dashboardHandler.NewHandler(appointmentSvc, doctorSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		medicalHandler.NewHandler(medicalSvc),
		patientHandler.NewHandler(patientSvc),
		profileHandler.NewHandler(profileSvc),
		handler.NewHandler(docStore),
		router.RouterConfig{
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "docspot_test",
		},
	)
	r.Setup()
	return r.Engine()
}

func doJSON(t *testing.T, engine http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func registerAs(t *testing.T, engine http.Handler, role string) {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/auth/register", map[string]interface{}{
		"name":     "Test User",
		"email":    fmt.Sprintf("%s@example.com", role),
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestAnonymousIsRedirectedToAuth(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/auth", w.Header().Get("Location"))
}

func TestRootRedirectsToDashboard(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestAuthPageBouncesAuthenticatedUsers(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/auth", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	registerAs(t, engine, "patient")

	w = doJSON(t, engine, http.MethodGet, "/auth", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestDashboardVariantFollowsRole(t *testing.T) {
	cases := []struct {
		role    string
		variant string
	}{
		{"patient", "patient"},
		{"doctor", "doctor"},
		{"admin", "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			engine := newTestEngine(t)
			registerAs(t, engine, tc.role)

			w := doJSON(t, engine, http.MethodGet, "/dashboard", nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp struct {
				Data struct {
					Variant string `json:"variant"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.variant, resp.Data.Variant)
		})
	}
}

func TestRoleGates(t *testing.T) {
	engine := newTestEngine(t)
	registerAs(t, engine, "patient")

	// Patients can browse the directory and book.
	w := doJSON(t, engine, http.MethodGet, "/find-doctors", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// But the doctor and admin subtrees are off limits.
	w = doJSON(t, engine, http.MethodGet, "/schedule", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/patient-records", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/admin/approvals", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDoctorCanBrowsePatientRecords(t *testing.T) {
	engine := newTestEngine(t)
	registerAs(t, engine, "doctor")

	w := doJSON(t, engine, http.MethodGet, "/patient-records?q=emily", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "emily.davis@email.com")

	w = doJSON(t, engine, http.MethodGet, "/patient-records/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginLogoutFlow(t *testing.T) {
	engine := newTestEngine(t)
	registerAs(t, engine, "patient")

	w := doJSON(t, engine, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "patient@example.com",
		"password": "secret123",
		"role":     "patient",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	engine := newTestEngine(t)
	registerAs(t, engine, "patient")
	doJSON(t, engine, http.MethodPost, "/auth/logout", nil)

	w := doJSON(t, engine, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "patient@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password. Please try again.")
}

func TestBookAndManageAppointment(t *testing.T) {
	engine := newTestEngine(t)
	registerAs(t, engine, "patient")

	w := doJSON(t, engine, http.MethodPost, "/appointments", map[string]interface{}{
		"doctorId": "1",
		"date":     "2024-02-01",
		"time":     "10:00 AM",
		"type":     "Consultation",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Pending", created.Data.Status)

	w = doJSON(t, engine, http.MethodPatch, "/appointments/"+created.Data.ID+"/status", map[string]interface{}{
		"status": "Confirmed",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Unknown status values fail validation before the service runs.
	w = doJSON(t, engine, http.MethodPatch, "/appointments/"+created.Data.ID+"/status", map[string]interface{}{
		"status": "Nonsense",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodPatch, "/appointments/missing/status", map[string]interface{}{
		"status": "Cancelled",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownPageIs404(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "page not found")
}

package admin_schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	scheduleRepo "github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
	"github.com/m04kA/SMC-ZoneBooking/pkg/txmanager"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, qb := storagetest.Open(t)
	svc := schedule.NewService(scheduleRepo.NewRepository(db, qb), txmanager.NewTransactionManager(db, false), logger.Discard())
	h := NewHandler(svc, logger.Discard())

	r := mux.NewRouter()
	r.HandleFunc("/admin/zones", h.ListZones).Methods(http.MethodGet)
	r.HandleFunc("/admin/zones", h.CreateZone).Methods(http.MethodPost)
	r.HandleFunc("/admin/zones/{id}", h.GetZone).Methods(http.MethodGet)
	r.HandleFunc("/admin/zones/{id}", h.DeleteZone).Methods(http.MethodDelete)
	r.HandleFunc("/admin/zone_rules", h.ListRules).Methods(http.MethodGet)
	r.HandleFunc("/admin/zone_rules/{id}", h.DeleteRule).Methods(http.MethodDelete)
	r.HandleFunc("/admin/generate_weekly_rules", h.GenerateWeeklyRules).Methods(http.MethodPost)
	r.HandleFunc("/admin/generate_exceptions_range", h.GenerateExceptionsRange).Methods(http.MethodPost)
	r.HandleFunc("/admin/staff", h.CreateStaff).Methods(http.MethodPost)
	r.HandleFunc("/admin/zone_selections", h.GetSelections).Methods(http.MethodGet)
	r.HandleFunc("/admin/zone_selections", h.SetSelection).Methods(http.MethodPut)
	r.HandleFunc("/admin/zone_selections", h.DeleteSelection).Methods(http.MethodDelete)
	return r
}

func do(t *testing.T, r http.Handler, method, target, payload string, out interface{}) int {
	t.Helper()
	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(payload))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestHandler_ZoneLifecycle(t *testing.T) {
	r := newRouter(t)

	var zone models.ZoneResponse
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/admin/zones", `{"name":"Paris","color":"#ff0000"}`, &zone))

	var errResp handlers.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/admin/zones", `{"name":"PARIS"}`, &errResp))
	assert.NotEmpty(t, errResp.Details)

	var gen models.GenerateRulesResponse
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/admin/generate_weekly_rules",
		`{"zoneId":1,"weekdays":[1,2,3,4,5],"startTime":"09:00:00","endTime":"18:00:00","replace":true}`, &gen))
	assert.Len(t, gen.Rules, 5)

	errResp = handlers.ErrorResponse{}
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodDelete, "/admin/zones/1", "", &errResp))
	assert.False(t, errResp.Retryable)

	var rules []models.RuleResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/admin/zone_rules?zoneId=1", "", &rules))
	for _, rule := range rules {
		require.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/admin/zone_rules/"+itoa(rule.ID), "", nil))
	}

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/admin/zones/1", "", nil))
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/admin/zones/1", "", nil))
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/admin/zones/abc", "", nil))
}

func TestHandler_GenerateExceptionsRange(t *testing.T) {
	r := newRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/admin/zones", `{"name":"Lyon"}`, nil))

	var gen models.GenerateExceptionsResponse
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/admin/generate_exceptions_range",
		`{"zoneId":1,"fromDate":"2026-10-19","toDate":"2026-10-25","weekdays":[1,3],"startTime":"10:00","endTime":"12:00","replace":true}`, &gen))
	require.Len(t, gen.Exceptions, 2)
	assert.Equal(t, "2026-10-19", gen.Exceptions[0].Date)
	assert.Equal(t, "2026-10-21", gen.Exceptions[1].Date)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/admin/generate_exceptions_range",
		`{"zoneId":1,"fromDate":"2026-01-01","toDate":"2027-12-31","startTime":"10:00","endTime":"12:00"}`, nil))
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/admin/generate_exceptions_range",
		`{"zoneId":9,"fromDate":"2026-10-19","toDate":"2026-10-20","startTime":"10:00","endTime":"12:00"}`, nil))
}

func TestHandler_Selections(t *testing.T) {
	r := newRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/admin/zones", `{"name":"Paris"}`, nil))
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/admin/staff", `{"name":"Alice"}`, nil))

	var sel models.SelectionResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/admin/zone_selections", `{"staffId":1,"date":"2026-10-19","zoneId":1}`, &sel))
	assert.Equal(t, "2026-10-19", sel.Date)

	sel = models.SelectionResponse{}
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/admin/zone_selections?staffId=1&date=2026-10-19", "", &sel))
	assert.Equal(t, int64(1), sel.ZoneID)

	var list []models.SelectionResponse
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/admin/zone_selections?from=2026-10-01&to=2026-10-31", "", &list))
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodDelete, "/admin/zone_selections?staffId=1", "", nil))
	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/admin/zone_selections?staffId=1&date=2026-10-19", "", nil))
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/admin/zone_selections?staffId=1&date=2026-10-19", "", nil))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

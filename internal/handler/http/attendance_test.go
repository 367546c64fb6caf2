package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTimesheetService returns canned results so the tests pin down routing,
// the response envelope and the error mapping, not the service logic.
type stubTimesheetService struct {
	entry timesheet.EntryResponse
	err   error

	clockInCalls int
}

func (s *stubTimesheetService) ClockIn(_ context.Context, _ timesheet.ClockInRequest) (timesheet.EntryResponse, error) {
	s.clockInCalls++
	return s.entry, s.err
}

func (s *stubTimesheetService) ClockOut(_ context.Context, _ timesheet.ClockOutRequest) (timesheet.EntryResponse, error) {
	return s.entry, s.err
}

func (s *stubTimesheetService) StartBreak(_ context.Context, _ timesheet.StartBreakRequest) (timesheet.EntryResponse, error) {
	return s.entry, s.err
}

func (s *stubTimesheetService) EndBreak(_ context.Context, _ timesheet.EndBreakRequest) (timesheet.EntryResponse, error) {
	return s.entry, s.err
}

func (s *stubTimesheetService) Correct(_ context.Context, _ timesheet.CorrectionRequest) (timesheet.EntryResponse, error) {
	return s.entry, s.err
}

func (s *stubTimesheetService) ValidateEntry(_ context.Context, _ timesheet.ValidateEntryRequest) (timesheet.EntryResponse, error) {
	return s.entry, s.err
}

func (s *stubTimesheetService) GetEntry(_ context.Context, _, _, _ string) (timesheet.EntryResponse, error) {
	return s.entry, s.err
}

func attendanceTestRouter(svc timesheet.TimesheetService) *chi.Mux {
	h := NewAttendanceHandler(svc)
	r := chi.NewRouter()
	r.Post("/attendance/clock-in", h.ClockIn)
	r.Post("/attendance/breaks/{breakID}/end", h.EndBreak)
	r.Get("/attendance/{workerID}/{date}", h.Get)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAttendanceHandler_ClockIn_Created(t *testing.T) {
	t.Parallel()
	svc := &stubTimesheetService{entry: timesheet.EntryResponse{
		ID: "e1", WorkerID: "w1", Date: "2025-03-03", Status: "PRESENT",
	}}
	router := attendanceTestRouter(svc)

	payload := bytes.NewBufferString(`{"worker_id":"w1","tenant_id":"t1"}`)
	req := httptest.NewRequest(http.MethodPost, "/attendance/clock-in", payload)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PRESENT", data["status"])
}

func TestAttendanceHandler_ClockIn_ValidationFailure(t *testing.T) {
	t.Parallel()
	svc := &stubTimesheetService{}
	router := attendanceTestRouter(svc)

	payload := bytes.NewBufferString(`{"tenant_id":"t1"}`)
	req := httptest.NewRequest(http.MethodPost, "/attendance/clock-in", payload)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
	assert.Contains(t, errDetail["details"], "worker_id")
	assert.Zero(t, svc.clockInCalls, "a rejected request never reaches the service")
}

func TestAttendanceHandler_ClockIn_StateConflict(t *testing.T) {
	t.Parallel()
	svc := &stubTimesheetService{err: timesheet.ErrAlreadyClockedIn}
	router := attendanceTestRouter(svc)

	payload := bytes.NewBufferString(`{"worker_id":"w1","tenant_id":"t1"}`)
	req := httptest.NewRequest(http.MethodPost, "/attendance/clock-in", payload)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "CONFLICT", errDetail["code"])
}

func TestAttendanceHandler_EndBreak_TakesIDFromPath(t *testing.T) {
	t.Parallel()
	svc := &stubTimesheetService{entry: timesheet.EntryResponse{ID: "e1", Status: "PRESENT"}}
	router := attendanceTestRouter(svc)

	// The break id comes from the URL, not the body.
	payload := bytes.NewBufferString(`{"worker_id":"w1","tenant_id":"t1"}`)
	req := httptest.NewRequest(http.MethodPost, "/attendance/breaks/b42/end", payload)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceHandler_Get_NotFound(t *testing.T) {
	t.Parallel()
	svc := &stubTimesheetService{err: timesheet.ErrEntryNotFound}
	router := attendanceTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/attendance/w1/2025-03-03?tenant_id=t1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

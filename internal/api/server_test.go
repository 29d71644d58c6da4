package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/viewalign/pkg/cache"
	"github.com/matzehuels/viewalign/pkg/observability"
	"github.com/matzehuels/viewalign/pkg/pipeline"
)

const objects = `{
  "objects": [
    {"id": "a", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"id": "b", "min": [3, 2, 0], "max": [4, 3, 0],
     "location": {"point": [3.5, 2.5, 0], "rotation": 0}},
    {"id": "c", "min": [6, 1, 0], "max": [7, 2, 0],
     "curve": {"type": "line", "start": [6, 1, 0], "end": [6, 2, 0]}}
  ],
  "tags": [{"id": "t1", "head": [0, 0, 0]}, {"id": "t2", "head": [2, 3, 0]}]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return New(pipeline.NewRunner(c, nil, nil), nil, Config{})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("response has no request id")
	}

	rec = do(t, s, http.MethodGet, "/version", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"version"`) {
		t.Errorf("version = %d %s", rec.Code, rec.Body.String())
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestModes(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/v1/modes", "")
	var modes []modeInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &modes); err != nil {
		t.Fatal(err)
	}
	if len(modes) != 10 {
		t.Fatalf("modes = %d, want 10", len(modes))
	}
	if modes[0].Name != "left" || modes[6].Name != "distribute-h" || modes[6].MinObjects != 3 {
		t.Errorf("modes = %+v", modes)
	}
}

func TestAlign(t *testing.T) {
	s := newTestServer(t)
	body := `{"scene": ` + objects + `, "mode": "bottom", "apply": true}`

	rec := do(t, s, http.MethodPost, "/v1/align", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp planResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Plan.Mode != "bottom" || len(resp.Plan.Moves) != 2 {
		t.Fatalf("plan = %+v", resp.Plan)
	}
	if resp.CacheHit {
		t.Error("first request should miss the cache")
	}
	if resp.Scene == nil {
		t.Fatal("apply requested but no scene returned")
	}
	for _, o := range resp.Scene.Objects {
		if o.Min[1] != 0 {
			t.Errorf("%s bottom = %v, want 0", o.ID, o.Min[1])
		}
	}

	rec = do(t, s, http.MethodPost, "/v1/align", body)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.CacheHit {
		t.Error("second request should hit the cache")
	}
}

func TestOrient(t *testing.T) {
	s := newTestServer(t)
	body := `{"scene": ` + objects + `, "base_id": "b"}`

	rec := do(t, s, http.MethodPost, "/v1/orient", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp planResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Plan.Rotations) != 1 || resp.Plan.Rotations[0].ID != "c" {
		t.Fatalf("rotations = %+v", resp.Plan.Rotations)
	}
	if resp.Plan.Rotations[0].Axis != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("axis = %v", resp.Plan.Rotations[0].Axis)
	}
	if len(resp.Plan.Skipped) != 1 || resp.Plan.Skipped[0].ID != "a" {
		t.Errorf("skipped = %+v", resp.Plan.Skipped)
	}
}

func TestTags(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/v1/tags", `{"scene": `+objects+`, "vertical": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp planResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Plan.Moves) != 1 || resp.Plan.Moves[0].Delta != (mgl64.Vec3{0, -3, 0}) {
		t.Errorf("moves = %+v", resp.Plan.Moves)
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed body", "/v1/align", `{"scene":`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"missing scene", "/v1/align", `{"mode":"left"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown mode", "/v1/align", `{"scene":` + objects + `,"mode":"diagonal"}`, http.StatusBadRequest, "INVALID_MODE"},
		{"negative gap", "/v1/align", `{"scene":` + objects + `,"mode":"untangle-h","min_gap_mm":-1}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"too few", "/v1/align", `{"scene":{"objects":[{"id":"a","min":[0,0,0],"max":[1,1,0]}]},"mode":"left"}`, http.StatusBadRequest, "INSUFFICIENT_INPUT"},
		{"unknown base", "/v1/orient", `{"scene":` + objects + `,"base_id":"zz"}`, http.StatusNotFound, "NOT_FOUND"},
		{"base without orientation", "/v1/orient", `{"scene":` + objects + `,"base_id":"a"}`, http.StatusUnprocessableEntity, "NO_ORIENTATION"},
		{"bad scene", "/v1/tags", `{"scene":{"objects":[{"id":"a","min":[1,0,0],"max":[0,1,0]}]}}`, http.StatusBadRequest, "INVALID_INPUT"},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if got := decodeError(t, rec); got.Code != tt.code {
				t.Errorf("code = %s, want %s", got.Code, tt.code)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/v2/align", "")
	if rec.Code != http.StatusNotFound || decodeError(t, rec).Code != "NOT_FOUND" {
		t.Errorf("unknown route = %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, s, http.MethodGet, "/v1/align", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/align = %d, want 405", rec.Code)
	}
}

type countingHTTPHooks struct {
	observability.NoopHTTPHooks
	requests, responses int
	lastStatus          int
}

func (h *countingHTTPHooks) OnRequest(context.Context, string, string) { h.requests++ }

func (h *countingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.responses++
	h.lastStatus = status
}

func TestHTTPHooks(t *testing.T) {
	hooks := &countingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	s := newTestServer(t)
	do(t, s, http.MethodGet, "/healthz", "")
	do(t, s, http.MethodPost, "/v1/orient", `{"scene":`+objects+`,"base_id":"zz"}`)
	if hooks.requests != 2 || hooks.responses != 2 {
		t.Errorf("hooks = %d requests, %d responses", hooks.requests, hooks.responses)
	}
	if hooks.lastStatus != http.StatusNotFound {
		t.Errorf("last status = %d, want 404", hooks.lastStatus)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	s := New(pipeline.NewRunner(nil, nil, nil), nil, Config{Addr: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestWriteErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, context.Canceled)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if got := decodeError(t, rec); got.Message != "internal error" {
		t.Errorf("message = %q", got.Message)
	}
}

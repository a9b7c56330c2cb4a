package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yatrakit/yatrakit/internal/store"
	"github.com/yatrakit/yatrakit/internal/testutil"
	"github.com/yatrakit/yatrakit/internal/trip"
)

var errMockGenerate = errors.New("generation backend down")

// MockGenerator implements state.Generator for testing
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (trip.Trip, error)
	calls        int
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (trip.Trip, error) {
	m.calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return testutil.Trip("generated", "2025-06-01T10:00:00.000Z"), nil
}

func newTestServer(gen *MockGenerator) (*Server, *store.TripStore) {
	gin.SetMode(gin.TestMode)
	st := store.New(store.NewMemoryKV())
	return NewServer(gen, st, time.Minute), st
}

func doRequest(s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestHandleGenerate_PersistsAndReturnsTrip(t *testing.T) {
	gen := &MockGenerator{}
	s, st := newTestServer(gen)

	w := doRequest(s, http.MethodPost, "/api/trips/generate", []byte(`{"prompt":"2 days in goa"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool      `json:"success"`
		Trip    trip.Trip `json:"trip"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || resp.Trip.ID != "generated" {
		t.Errorf("unexpected response %+v", resp)
	}
	if all := st.ReadAll(); len(all) != 1 {
		t.Errorf("trip not persisted, store has %d", len(all))
	}
}

func TestHandleGenerate_MemoizesByPrompt(t *testing.T) {
	gen := &MockGenerator{}
	s, _ := newTestServer(gen)

	doRequest(s, http.MethodPost, "/api/trips/generate", []byte(`{"prompt":"2 days in goa"}`))
	doRequest(s, http.MethodPost, "/api/trips/generate", []byte(`{"prompt":"2 days in goa"}`))

	if gen.calls != 1 {
		t.Errorf("expected 1 generator call for repeated prompt, got %d", gen.calls)
	}
}

func TestHandleGenerate_BadRequests(t *testing.T) {
	cases := map[string][]byte{
		"empty prompt":   []byte(`{"prompt":"   "}`),
		"no body":        nil,
		"malformed json": []byte(`{"prompt":`),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestServer(&MockGenerator{})
			w := doRequest(s, http.MethodPost, "/api/trips/generate", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestHandleGenerate_BackendFailure(t *testing.T) {
	gen := &MockGenerator{GenerateFunc: func(ctx context.Context, prompt string) (trip.Trip, error) {
		return trip.Trip{}, errMockGenerate
	}}
	s, st := newTestServer(gen)

	w := doRequest(s, http.MethodPost, "/api/trips/generate", []byte(`{"prompt":"x"}`))
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	if all := st.ReadAll(); len(all) != 0 {
		t.Errorf("failed generation must not persist, store has %d", len(all))
	}
}

func TestHandleList_PageWireShape(t *testing.T) {
	s, st := newTestServer(&MockGenerator{})
	for _, tr := range testutil.Trips(3) {
		st.Persist(tr)
	}

	w := doRequest(s, http.MethodGet, "/api/trips?limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var page struct {
		Trips      []trip.Trip `json:"trips"`
		NextCursor *string     `json:"nextCursor"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad page body: %v", err)
	}
	if len(page.Trips) != 2 || page.NextCursor == nil {
		t.Fatalf("unexpected first page %+v", page)
	}

	w = doRequest(s, http.MethodGet, "/api/trips?limit=2&cursor="+*page.NextCursor, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad page body: %v", err)
	}
	if len(page.Trips) != 1 {
		t.Errorf("expected final page of 1, got %d", len(page.Trips))
	}
	// Exhausted pages must serialize the cursor as an explicit null.
	if !bytes.Contains(w.Body.Bytes(), []byte(`"nextCursor":null`)) {
		t.Errorf("exhausted page should carry nextCursor null: %s", w.Body.String())
	}
}

func TestHandleLatest(t *testing.T) {
	s, st := newTestServer(&MockGenerator{})

	w := doRequest(s, http.MethodGet, "/api/trips/latest", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("empty store should 404, got %d", w.Code)
	}

	st.Persist(testutil.Trip("t1", "2025-06-01T10:00:00.000Z"))
	w = doRequest(s, http.MethodGet, "/api/trips/latest", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestHandleNormalize_MalformedBodyYieldsEmptyTrip(t *testing.T) {
	s, _ := newTestServer(&MockGenerator{})

	w := doRequest(s, http.MethodPost, "/api/trips/normalize?prompt=x", []byte(`not json`))
	if w.Code != http.StatusOK {
		t.Fatalf("normalize must not fail on garbage, status = %d", w.Code)
	}

	var resp struct {
		Trip trip.Trip `json:"trip"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Trip.TripTitle != "Untitled Trip" || resp.Trip.Prompt != "x" {
		t.Errorf("unexpected normalized trip %+v", resp.Trip)
	}
}

func TestHandleNormalize_CoercesPayload(t *testing.T) {
	s, st := newTestServer(&MockGenerator{})

	payload := []byte(`{"tripTitle":"Goa","days":[{"day":1,"activities":[{"place":"X"}]}]}`)
	w := doRequest(s, http.MethodPost, "/api/trips/normalize?prompt=goa", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	all := st.ReadAll()
	if len(all) != 1 || all[0].Days[0].Activities[0].MapQuery != "X" {
		t.Errorf("normalized trip not persisted correctly: %+v", all)
	}
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(&MockGenerator{})
	w := doRequest(s, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/relsqui/prettydoc/pkg/ppcache"
	"github.com/relsqui/prettydoc/pkg/ppconfig"
	"github.com/relsqui/prettydoc/pkg/pphistory"
)

func newTestServer() *server {
	return &server{
		cache:   ppcache.NewCoalescingCache(ppcache.NewMemoryCache()),
		history: pphistory.NewMemoryStore(10),
	}
}

func TestHandleRenderRoundTrip(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(renderRequest{
		Doc:   []byte(`{"op":"string","value":"hi"}`),
		Width: 80,
	})
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleRender(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}

	var resp renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Output != "hi" {
		t.Errorf("Output = %q, want %q", resp.Output, "hi")
	}
	if resp.CacheHit {
		t.Error("first request should not be a cache hit")
	}
}

func TestHandleRenderSecondRequestIsCacheHit(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(renderRequest{Doc: []byte(`{"op":"string","value":"hi"}`), Width: 80})

	for i, wantHit := range []bool{false, true} {
		req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		s.handleRender(rec, req)

		var resp renderResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.CacheHit != wantHit {
			t.Errorf("request %d: CacheHit = %v, want %v", i, resp.CacheHit, wantHit)
		}
	}
}

func TestHandleRenderRejectsMalformedBody(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	s.handleRender(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRenderRejectsInvalidDoc(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(renderRequest{Doc: []byte(`{"op":"wat"}`), Width: 80})
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleRender(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestParseCacheFlag(t *testing.T) {
	cases := []struct {
		in, backend, addr string
	}{
		{"memory", "memory", ""},
		{"off", "off", ""},
		{"redis://localhost:6379/0", "redis", "redis://localhost:6379/0"},
	}
	for _, tc := range cases {
		backend, addr := parseCacheFlag(tc.in)
		if backend != tc.backend || addr != tc.addr {
			t.Errorf("parseCacheFlag(%q) = (%q, %q), want (%q, %q)", tc.in, backend, addr, tc.backend, tc.addr)
		}
	}
}

func TestParseHistoryFlag(t *testing.T) {
	cases := []struct {
		in, backend, uri string
	}{
		{"memory", "memory", ""},
		{"mongodb://localhost:27017", "mongo", "mongodb://localhost:27017"},
	}
	for _, tc := range cases {
		backend, uri := parseHistoryFlag(tc.in)
		if backend != tc.backend || uri != tc.uri {
			t.Errorf("parseHistoryFlag(%q) = (%q, %q), want (%q, %q)", tc.in, backend, uri, tc.backend, tc.uri)
		}
	}
}

func TestNewHistoryStoreDefaultsToMemory(t *testing.T) {
	store, closeFn, err := newHistoryStore(context.Background(), ppconfig.Config{}, 10)
	if err != nil {
		t.Fatalf("newHistoryStore error: %v", err)
	}
	defer closeFn()
	if _, ok := store.(*pphistory.MemoryStore); !ok {
		t.Errorf("newHistoryStore(\"\") = %T, want *pphistory.MemoryStore", store)
	}
}

func TestNewHistoryStoreRejectsUnknownBackend(t *testing.T) {
	_, _, err := newHistoryStore(context.Background(), ppconfig.Config{HistoryBackend: "carrier-pigeon"}, 10)
	if err == nil {
		t.Fatal("newHistoryStore should reject an unrecognized history backend")
	}
}

func TestHandleHistoryReturnsRecordedRenders(t *testing.T) {
	s := newTestServer()
	body, _ := json.Marshal(renderRequest{Doc: []byte(`{"op":"string","value":"hi"}`), Width: 80})
	renderReq := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(body))
	s.handleRender(httptest.NewRecorder(), renderReq)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	s.handleHistory(rec, req)

	var entries []pphistory.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].OutputBytes != 2 {
		t.Errorf("OutputBytes = %d, want 2", entries[0].OutputBytes)
	}
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jonathan/skill-extractor/internal/config"
	"github.com/jonathan/skill-extractor/internal/keywords"
	"github.com/jonathan/skill-extractor/internal/skills"
)

// hashProvider embeds each text as a deterministic near-one-hot vector,
// so distinct terms are (almost always) orthogonal and no network is
// involved.
type hashProvider struct {
	dim int
}

func (p *hashProvider) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		h := fnv.New32a()
		h.Write([]byte(text)) //nolint:errcheck
		vec := make([]float32, p.dim)
		vec[int(h.Sum32())%p.dim] = 1
		vectors[i] = vec
	}
	return vectors, nil
}

func (p *hashProvider) Close() error { return nil }

// newHandlerTestServer builds a server with no database and a local
// embedding provider, enough to exercise the handlers directly.
func newHandlerTestServer() *Server {
	provider := &hashProvider{dim: 512}
	extractor := keywords.NewExtractor(provider, keywords.DefaultOptions())
	normalizer := skills.NewNormalizer(provider)

	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})

	return &Server{
		provider:   provider,
		extractor:  extractor,
		skills:     skills.NewService(extractor, normalizer),
		jwtService: jwtService,
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newHandlerTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", resp["status"])
	}
}

func TestExtractEndpoint_InvalidJSON(t *testing.T) {
	s := newHandlerTestServer()

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString(`{invalid json}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleExtract(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestExtractEndpoint_MissingTexts(t *testing.T) {
	s := newHandlerTestServer()

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString(`{"texts": []}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleExtract(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected error message in response")
	}
}

func TestExtractEndpoint(t *testing.T) {
	s := newHandlerTestServer()

	body := `{"texts": ["We are hiring a backend engineer with Go and PostgreSQL experience. Kubernetes knowledge is a plus."], "top_k": 5}`
	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleExtract(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ExtractResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Keywords) > 5 {
		t.Errorf("expected at most 5 keywords, got %d", len(resp.Keywords))
	}
	if resp.ExtractionID != nil {
		t.Error("extraction_id should be absent when save is false")
	}
}

func TestNormalizeEndpoint_MissingTerms(t *testing.T) {
	s := newHandlerTestServer()

	req := httptest.NewRequest(http.MethodPost, "/skills/normalize", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleNormalizeSkills(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGapEndpoint_MissingInputs(t *testing.T) {
	s := newHandlerTestServer()

	tests := []struct {
		name string
		body string
	}{
		{name: "no profile", body: `{"job_skills": ["go"]}`},
		{name: "no job", body: `{"profile_skills": ["go"]}`},
		{name: "empty", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/gap", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			s.handleGap(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestGapEndpoint_DirectSkills(t *testing.T) {
	s := newHandlerTestServer()

	body := `{"profile_skills": ["go", "postgresql"], "job_skills": ["go", "kubernetes"]}`
	req := httptest.NewRequest(http.MethodPost, "/gap", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleGap(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp GapResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Matched) != 1 || resp.Matched[0] != "go" {
		t.Errorf("expected matched [go], got %v", resp.Matched)
	}
	if len(resp.Missing) != 1 || resp.Missing[0] != "kubernetes" {
		t.Errorf("expected missing [kubernetes], got %v", resp.Missing)
	}
}

func TestIngestEndpoint_MissingURL(t *testing.T) {
	s := newHandlerTestServer()

	req := httptest.NewRequest(http.MethodPost, "/jobs/ingest", bytes.NewBufferString(`{"url": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleIngestJob(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	s := newHandlerTestServer()

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header Access-Control-Allow-Origin: *")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected CORS header Access-Control-Allow-Methods")
	}
}

func TestCORSMiddleware_OPTIONS(t *testing.T) {
	s := newHandlerTestServer()

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("should not reach here")) //nolint:errcheck
	}))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for OPTIONS, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("OPTIONS response should have empty body")
	}
}

func TestLoggingMiddleware(t *testing.T) {
	s := newHandlerTestServer()

	called := false
	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !called {
		t.Error("logging middleware should call next handler")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestJSONResponse(t *testing.T) {
	s := newHandlerTestServer()
	w := httptest.NewRecorder()

	s.jsonResponse(w, http.StatusOK, map[string]string{"key": "value"})

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("expected Content-Type: application/json")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resp["key"] != "value" {
		t.Errorf("expected key='value', got '%s'", resp["key"])
	}
}

func TestErrorResponse(t *testing.T) {
	s := newHandlerTestServer()
	w := httptest.NewRecorder()

	s.errorResponse(w, http.StatusBadRequest, "test error")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resp["error"] != "test error" {
		t.Errorf("expected error='test error', got '%s'", resp["error"])
	}
}

func TestOptionalUserID(t *testing.T) {
	s := newHandlerTestServer()
	userID := uuid.New()

	token, err := s.jwtService.GenerateToken(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   *uuid.UUID
	}{
		{name: "no header", header: "", want: nil},
		{name: "valid token", header: "Bearer " + token, want: &userID},
		{name: "lowercase bearer", header: "bearer " + token, want: &userID},
		{name: "garbage token", header: "Bearer garbage", want: nil},
		{name: "missing prefix", header: token, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/extract", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got := s.optionalUserID(req)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil user ID, got %v", got)
				}
			} else if got == nil || *got != *tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOwnedBy(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()

	if ownedBy(nil, userID) {
		t.Error("anonymous rows should not be owned by anyone")
	}
	if ownedBy(&other, userID) {
		t.Error("rows of another user should not be owned")
	}
	if !ownedBy(&userID, userID) {
		t.Error("expected ownership for matching user ID")
	}
}

func TestParseQueryInt(t *testing.T) {
	tests := []struct {
		name  string
		query string
		def   int
		cap   int
		want  int
	}{
		{name: "absent", query: "", def: 20, cap: 100, want: 20},
		{name: "valid", query: "limit=50", def: 20, cap: 100, want: 50},
		{name: "capped", query: "limit=500", def: 20, cap: 100, want: 100},
		{name: "uncapped", query: "limit=500", def: 20, cap: 0, want: 500},
		{name: "negative", query: "limit=-1", def: 20, cap: 100, want: 20},
		{name: "not a number", query: "limit=abc", def: 20, cap: 100, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/extractions?"+tt.query, nil)
			got := parseQueryInt(req, "limit", tt.def, tt.cap)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestExtractClientID(t *testing.T) {
	s := newHandlerTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.10:54321"
	if got := s.extractClientID(req); got != "192.0.2.10" {
		t.Errorf("expected 192.0.2.10, got %s", got)
	}

	// X-Forwarded-For is client-controlled and must be ignored.
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	if got := s.extractClientID(req); got != "192.0.2.10" {
		t.Errorf("expected 192.0.2.10, got %s", got)
	}
}

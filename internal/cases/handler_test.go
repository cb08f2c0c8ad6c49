// AngelaMos | 2026
// handler_test.go

package cases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/precinct/internal/middleware"
)

// asUser stands in for the session middleware in handler tests.
func asUser(id int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler := NewHandler(NewService(NewMemoryRepository()))

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r, asUser(3))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestCreateCaseStampsAuthorFromSession(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(
		srv.URL+"/api/cases/",
		"application/json",
		// createdById in the payload must be ignored.
		strings.NewReader(`{"title":"burglary on 5th","priority":"high","createdById":99}`),
	)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body CaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Case.CreatedByID != 3 {
		t.Errorf("CreatedByID = %d, want 3 (session user)", body.Case.CreatedByID)
	}
	if !strings.HasPrefix(body.Case.CaseNumber, "CASE-") {
		t.Errorf("CaseNumber = %q", body.Case.CaseNumber)
	}
	if body.Case.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want high", body.Case.Priority)
	}
}

func TestCreateCaseMissingTitle(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(
		srv.URL+"/api/cases/",
		"application/json",
		strings.NewReader(`{"priority":"high"}`),
	)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateMissingCaseReturns404(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(
		http.MethodPut,
		srv.URL+"/api/cases/999",
		strings.NewReader(`{"status":"closed"}`),
	)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestListCasesEnvelope(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/cases/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["cases"]; !ok {
		t.Error(`response missing "cases" envelope`)
	}
}

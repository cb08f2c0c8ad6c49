// AngelaMos | 2026
// handler_test.go

package plates

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
		handler.RegisterRoutes(r, asUser(5))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func createPlate(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(
		srv.URL+"/api/license-plates/",
		"application/json",
		strings.NewReader(body),
	)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreatePlateAndDuplicateConflict(t *testing.T) {
	srv := newTestServer(t)

	resp := createPlate(t, srv,
		`{"plateNumber":"ABC-123","ownerName":"Jane Doe"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body PlateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.LicensePlate.AddedByID != 5 {
		t.Errorf("AddedByID = %d, want 5 (session user)",
			body.LicensePlate.AddedByID)
	}

	dup := createPlate(t, srv,
		`{"plateNumber":"ABC-123","ownerName":"Someone Else"}`)
	if dup.StatusCode != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", dup.StatusCode)
	}
}

func TestSearchPlateByNumber(t *testing.T) {
	srv := newTestServer(t)

	resp := createPlate(t, srv,
		`{"plateNumber":"XYZ-789","ownerName":"John Roe"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	found, err := http.Get(srv.URL + "/api/license-plates/search/XYZ-789")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer found.Body.Close()
	if found.StatusCode != http.StatusOK {
		t.Errorf("search status = %d, want 200", found.StatusCode)
	}

	var body PlateResponse
	if err := json.NewDecoder(found.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.LicensePlate.OwnerName != "John Roe" {
		t.Errorf("OwnerName = %q", body.LicensePlate.OwnerName)
	}

	missing, err := http.Get(srv.URL + "/api/license-plates/search/NOPE-000")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("missing search status = %d, want 404", missing.StatusCode)
	}
}

func TestCreatePlateMissingOwnerName(t *testing.T) {
	srv := newTestServer(t)

	resp := createPlate(t, srv, `{"plateNumber":"ABC-123"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

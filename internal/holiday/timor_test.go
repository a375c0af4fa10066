package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

const sample2024 = `{
  "code": 0,
  "holiday": {
    "01-01": {"holiday": true, "name": "元旦", "wage": 3, "date": "2024-01-01", "rest": 1},
    "02-04": {"holiday": false, "name": "春节前补班", "wage": 1, "after": false, "target": "春节", "date": "2024-02-04"},
    "02-10": {"holiday": true, "name": "初一", "wage": 3, "date": "2024-02-10", "rest": 1}
  }
}`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/holiday/year/2024" {
			t.Errorf("Expected path '/api/holiday/year/2024', got '%s'", r.URL.Path)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTimorProvider_Fetch(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, sample2024)
	p := NewTimorProvider(srv.URL+"/api/holiday/year/", time.Second, zap.NewNop())

	ds, err := p.Fetch(context.Background(), 2024)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if ds.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ds.Len())
	}

	rec := ds.Records["02-04"]
	if rec.IsHoliday {
		t.Error("02-04 IsHoliday = true, want false")
	}
	if rec.Date != "2024-02-04" || rec.Name != "春节前补班" || rec.Wage != 1 {
		t.Errorf("02-04 = %+v", rec)
	}
	if rec.After == nil || *rec.After {
		t.Errorf("02-04 After = %v, want false", rec.After)
	}
	if rec.Target == nil || *rec.Target != "春节" {
		t.Errorf("02-04 Target = %v, want 春节", rec.Target)
	}
	if r := ds.Records["01-01"].Rest; r == nil || *r != 1 {
		t.Errorf("01-01 Rest = %v, want 1", r)
	}
}

func TestTimorProvider_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{"Server error", http.StatusInternalServerError, "oops", KindTransport},
		{"Forbidden", http.StatusForbidden, "", KindTransport},
		{"Not JSON", http.StatusOK, "<html>", KindMalformed},
		{"Wrong shape", http.StatusOK, `{"code": 0, "holiday": []}`, KindMalformed},
		{"Non-zero code", http.StatusOK, `{"code": -1, "holiday": {}}`, KindMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body)
			p := NewTimorProvider(srv.URL+"/api/holiday/year", time.Second, zap.NewNop())

			_, err := p.Fetch(context.Background(), 2024)
			if err == nil {
				t.Fatal("Fetch() expected error, got nil")
			}
			if KindOf(err) != tt.wantKind {
				t.Errorf("KindOf(%v) = %s, want %s", err, KindOf(err), tt.wantKind)
			}
		})
	}
}

func TestTimorProvider_EmptyYear(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"code": 0, "holiday": {}}`)
	p := NewTimorProvider(srv.URL+"/api/holiday/year", time.Second, zap.NewNop())

	ds, err := p.Fetch(context.Background(), 2024)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if ds.Len() != 0 || ds.Records == nil {
		t.Errorf("Fetch() = %+v, want empty non-nil records", ds)
	}
}

func TestTimorProvider_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewTimorProvider(url, time.Second, zap.NewNop())
	_, err := p.Fetch(context.Background(), 2024)
	if !IsTransport(err) {
		t.Errorf("Fetch() error = %v, want transport error", err)
	}
}

func TestTimorProvider_CanceledContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, sample2024)
	p := NewTimorProvider(srv.URL+"/api/holiday/year", time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Fetch(ctx, 2024)
	if !IsTransport(err) {
		t.Errorf("Fetch() error = %v, want transport error", err)
	}
}

func TestNewTimorProvider_Defaults(t *testing.T) {
	p := NewTimorProvider("", 0, zap.NewNop())

	if p.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", p.baseURL, DefaultBaseURL)
	}
	if p.httpClient.Timeout != defaultHTTPTimeout {
		t.Errorf("Timeout = %v, want %v", p.httpClient.Timeout, defaultHTTPTimeout)
	}
}

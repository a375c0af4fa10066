package holiday

import (
	"context"
	"errors"
	"testing"

	"github.com/username/holiday-calendar/internal/calendar"
	"go.uber.org/zap"
)

type stubProvider struct {
	ds    *calendar.Dataset
	err   error
	calls int
}

func (s *stubProvider) Fetch(ctx context.Context, year int) (*calendar.Dataset, error) {
	s.calls++
	return s.ds, s.err
}

func TestCompositeProvider_PrimarySucceeds(t *testing.T) {
	want := &calendar.Dataset{Records: map[string]calendar.Record{"a": {Date: "2024-01-01"}}}
	primary := &stubProvider{ds: want}
	fallback := &stubProvider{err: errors.New("unused")}

	cp := NewCompositeProvider(primary, fallback, zap.NewNop())
	got, err := cp.Fetch(context.Background(), 2024)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != want {
		t.Errorf("Fetch() returned %+v, want primary dataset", got)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
}

func TestCompositeProvider_FallsBack(t *testing.T) {
	want := &calendar.Dataset{Records: map[string]calendar.Record{}}
	primary := &stubProvider{err: transportError(2024, errors.New("down"))}
	fallback := &stubProvider{ds: want}

	cp := NewCompositeProvider(primary, fallback, zap.NewNop())
	got, err := cp.Fetch(context.Background(), 2024)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != want {
		t.Errorf("Fetch() returned %+v, want fallback dataset", got)
	}
}

func TestCompositeProvider_BothFail(t *testing.T) {
	primary := &stubProvider{err: malformedError(2024, errors.New("bad json"))}
	fallback := &stubProvider{err: transportError(2024, errors.New("no file"))}

	cp := NewCompositeProvider(primary, fallback, zap.NewNop())
	_, err := cp.Fetch(context.Background(), 2024)
	if !IsMalformed(err) {
		t.Errorf("Fetch() error = %v, want primary malformed error", err)
	}
}

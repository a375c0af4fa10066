package holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/username/holiday-calendar/internal/calendar"
)

// Provider fetches the holiday dataset of a year
type Provider interface {
	Fetch(ctx context.Context, year int) (*calendar.Dataset, error)
}

// ErrorKind distinguishes why a fetch failed
type ErrorKind int

const (
	// KindTransport covers connection failures, bad HTTP status and unreadable bodies
	KindTransport ErrorKind = iota + 1
	// KindMalformed covers undecodable payloads and non-zero dataset codes
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// FetchError is returned by every Provider
type FetchError struct {
	Kind ErrorKind
	Year int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch holidays for %d (%s): %v", e.Year, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func transportError(year int, err error) *FetchError {
	return &FetchError{Kind: KindTransport, Year: year, Err: err}
}

func malformedError(year int, err error) *FetchError {
	return &FetchError{Kind: KindMalformed, Year: year, Err: err}
}

// KindOf returns the kind of a fetch error, 0 if err is not one
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// IsTransport reports whether err is a transport failure
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// IsMalformed reports whether err is a malformed response
func IsMalformed(err error) bool {
	return KindOf(err) == KindMalformed
}

// checkDataset validates a decoded dataset
func checkDataset(year int, ds *calendar.Dataset) error {
	if ds.Code != 0 {
		return malformedError(year, fmt.Errorf("provider returned code %d", ds.Code))
	}
	if ds.Records == nil {
		ds.Records = make(map[string]calendar.Record)
	}
	return nil
}

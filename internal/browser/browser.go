package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/holiday"
	"go.uber.org/zap"
)

// Intent is a navigation request from a display surface
type Intent int

const (
	NextMonth Intent = iota + 1
	PreviousMonth
	CurrentMonth
)

func (i Intent) String() string {
	switch i {
	case NextMonth:
		return "next_month"
	case PreviousMonth:
		return "previous_month"
	case CurrentMonth:
		return "current_month"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// State is the navigation state of one display surface.
// It is a value: Apply returns a new State and never mutates its input.
type State struct {
	Month calendar.YearMonth
	// Dataset is the last successfully fetched dataset, for DatasetYear
	Dataset     *calendar.Dataset
	DatasetYear int
	// Err is the error of the last navigation, nil when it succeeded
	Err error
}

// Navigator moves State between months and fetches holiday data when the
// year changes
type Navigator struct {
	provider holiday.Provider
	logger   *zap.Logger
	now      func() time.Time
}

// NewNavigator creates a new Navigator
func NewNavigator(provider holiday.Provider, logger *zap.Logger) *Navigator {
	return &Navigator{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// Today returns the month containing the current local date
func (n *Navigator) Today() calendar.YearMonth {
	return calendar.YearMonthOf(n.now())
}

// Load fetches the dataset for ym and returns the initial state
func (n *Navigator) Load(ctx context.Context, ym calendar.YearMonth) (State, error) {
	if !ym.Valid() {
		return State{}, fmt.Errorf("%w: %d", calendar.ErrInvalidMonth, int(ym.Month))
	}

	ds, err := n.provider.Fetch(ctx, ym.Year)
	if err != nil {
		return State{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	n.logger.Info("Calendar loaded",
		zap.String("month", ym.String()),
		zap.Int("records", ds.Len()))

	return State{Month: ym, Dataset: ds, DatasetYear: ym.Year}, nil
}

// Apply returns the state after intent. The dataset is re-fetched only
// when the target month lies in another year. On a failed fetch the
// returned state keeps the previous month and dataset and carries the
// error in Err.
func (n *Navigator) Apply(ctx context.Context, st State, intent Intent) State {
	var target calendar.YearMonth
	switch intent {
	case NextMonth:
		target = st.Month.Next()
	case PreviousMonth:
		target = st.Month.Prev()
	case CurrentMonth:
		target = n.Today()
	default:
		st.Err = fmt.Errorf("unknown navigation intent: %s", intent)
		return st
	}

	if st.Dataset != nil && target.Year == st.DatasetYear {
		return State{Month: target, Dataset: st.Dataset, DatasetYear: st.DatasetYear}
	}

	ds, err := n.provider.Fetch(ctx, target.Year)
	if err != nil {
		n.logger.Warn("Failed to fetch holidays, keeping previous data",
			zap.String("intent", intent.String()),
			zap.String("target", target.String()),
			zap.String("kind", holiday.KindOf(err).String()),
			zap.Error(err))

		st.Err = err
		return st
	}

	n.logger.Info("Holiday data switched",
		zap.String("intent", intent.String()),
		zap.String("month", target.String()),
		zap.Int("records", ds.Len()))

	return State{Month: target, Dataset: ds, DatasetYear: target.Year}
}

// View lays out the state's month against its dataset
func (n *Navigator) View(st State) (*calendar.View, error) {
	if st.Dataset == nil {
		return nil, fmt.Errorf("no holiday data loaded for %s", st.Month)
	}

	view, err := calendar.BuildView(st.Dataset, st.Month.Year, st.Month.Month)
	if err != nil {
		return nil, err
	}

	for _, skipped := range view.Classification.Skipped {
		n.logger.Warn("Skipped holiday record",
			zap.String("key", skipped.Key),
			zap.String("date", skipped.Date),
			zap.Error(skipped.Err))
	}

	return view, nil
}

package holiday

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

var builtinRegions = map[string][]*cal.Holiday{
	"us": {
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	},
}

// Regions returns the region codes BuiltinProvider supports
func Regions() []string {
	out := make([]string, 0, len(builtinRegions))
	for region := range builtinRegions {
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}

// BuiltinProvider implements Provider offline from rule-based holiday
// definitions. Its datasets never contain make-up workdays.
type BuiltinProvider struct {
	region   string
	holidays []*cal.Holiday
	logger   *zap.Logger
}

// NewBuiltinProvider creates a provider for one of Regions()
func NewBuiltinProvider(region string, logger *zap.Logger) (*BuiltinProvider, error) {
	holidays, ok := builtinRegions[region]
	if !ok {
		return nil, fmt.Errorf("unknown holiday region %q, supported: %v", region, Regions())
	}

	return &BuiltinProvider{
		region:   region,
		holidays: holidays,
		logger:   logger,
	}, nil
}

// Fetch computes the dataset of the given year. A holiday observed on
// another day adds a second record for the observed date, including one
// observed in year but belonging to year+1.
func (p *BuiltinProvider) Fetch(ctx context.Context, year int) (*calendar.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, transportError(year, err)
	}

	ds := &calendar.Dataset{Records: make(map[string]calendar.Record)}
	add := func(date time.Time, name string) {
		ds.Records[date.Format("01-02")] = calendar.Record{
			IsHoliday: true,
			Name:      name,
			Date:      dateutil.FormatDate(date),
		}
	}

	for _, h := range p.holidays {
		actual, observed := h.Calc(year)
		if !actual.IsZero() {
			add(actual, h.Name)
			if !observed.IsZero() && !observed.Equal(actual) && observed.Year() == year {
				add(observed, h.Name+" (observed)")
			}
		}

		// New Year's Day on a Saturday is observed on the last day of the previous year
		if nextActual, nextObserved := h.Calc(year + 1); !nextActual.IsZero() && nextObserved.Year() == year {
			add(nextObserved, h.Name+" (observed)")
		}
	}

	p.logger.Debug("Builtin holidays computed",
		zap.String("region", p.region),
		zap.Int("year", year),
		zap.Int("records", ds.Len()))

	return ds, nil
}

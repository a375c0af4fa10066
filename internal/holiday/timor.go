package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/username/holiday-calendar/internal/calendar"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL serves one JSON document per year under /{year}
	DefaultBaseURL     = "http://timor.tech/api/holiday/year"
	defaultHTTPTimeout = 10 * time.Second
	maxBodySize        = 4 << 20
)

// TimorProvider implements Provider using the timor.tech holiday API
type TimorProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTimorProvider creates a new TimorProvider instance
func NewTimorProvider(baseURL string, timeout time.Duration, logger *zap.Logger) *TimorProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &TimorProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch downloads the dataset of the given year
func (p *TimorProvider) Fetch(ctx context.Context, year int) (*calendar.Dataset, error) {
	// Build URL: http://timor.tech/api/holiday/year/2024
	url := fmt.Sprintf("%s/%d", p.baseURL, year)

	p.logger.Debug("Fetching holiday data",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, transportError(year, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	// timor.tech rejects requests without a browser-like user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; holiday-calendar)")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, transportError(year, fmt.Errorf("failed to fetch holiday data: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transportError(year, fmt.Errorf("API returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, transportError(year, fmt.Errorf("failed to read response: %w", err))
	}

	ds, err := decodeDataset(year, body)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Holiday data fetched",
		zap.Int("year", year),
		zap.Int("records", ds.Len()))

	return ds, nil
}

// decodeDataset parses the {code, holiday: {...}} wire shape
func decodeDataset(year int, body []byte) (*calendar.Dataset, error) {
	var ds calendar.Dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, malformedError(year, fmt.Errorf("failed to parse holiday data: %w", err))
	}

	if err := checkDataset(year, &ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

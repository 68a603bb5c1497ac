package holidayinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/kernel"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

const (
	DefaultFeriadosURL = "https://www.feriadosapp.com/api/holidays.json"
	defaultHTTPTimeout = 10 * time.Second
)

// FeriadosClient fetches Chilean holidays from the public feriados API
type FeriadosClient struct {
	url        string
	httpClient *http.Client
}

type feriadosResponse struct {
	Data []feriadosEntry `json:"data"`
}

type feriadosEntry struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// NewFeriadosClient creates a client. Empty url and zero timeout use the defaults.
func NewFeriadosClient(url string, timeout time.Duration) *FeriadosClient {
	if url == "" {
		url = DefaultFeriadosURL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &FeriadosClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the full list and keeps the entries of year
func (c *FeriadosClient) Fetch(ctx context.Context, year int) ([]holiday.Holiday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var body feriadosResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}

	return parseEntries(body.Data, year), nil
}

// parseEntries filters by the year prefix of the date string and drops malformed dates
func parseEntries(entries []feriadosEntry, year int) []holiday.Holiday {
	prefix := strconv.Itoa(year)
	holidays := make([]holiday.Holiday, 0, len(entries))

	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		d, err := kernel.ParseDate(e.Date)
		if err != nil {
			logx.Debugf("skipping holiday %q with bad date %q: %v", e.Title, e.Date, err)
			continue
		}
		holidays = append(holidays, holiday.Holiday{Date: d, Title: e.Title})
	}

	holiday.SortByDate(holidays)
	return holidays
}

package providers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/models"
)

// Error kinds the loader distinguishes when deciding to fall back. ErrFetch
// covers the transport (timeouts, refused connections, non-2xx); ErrParse
// covers a reachable sheet whose body is not usable CSV.
var (
	ErrFetch = errors.New("sheet fetch failed")
	ErrParse = errors.New("sheet content unusable")
)

// Google serves an interstitial page to clients without a browser UA.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

var requiredColumns = []string{"Player", "Tournament", "Game", "Net_Score"}

// SheetsClient fetches the published CSV export of the league's scoring
// sheet. Several export URL variants exist and not all of them work for
// every sharing configuration, so each is tried in order.
type SheetsClient struct {
	httpClient *http.Client
	logger     *logrus.Logger
	baseURL    string
	sheetID    string
	gid        string
}

// NewSheetsClient creates a client for one sheet document. The timeout bounds
// each individual request, not the whole variant sequence.
func NewSheetsClient(sheetID, gid string, timeout time.Duration, logger *logrus.Logger) *SheetsClient {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		baseURL: "https://docs.google.com",
		sheetID: sheetID,
		gid:     gid,
	}
}

func (c *SheetsClient) exportURLs() []string {
	return []string{
		fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s", c.baseURL, c.sheetID, c.gid),
		fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv", c.baseURL, c.sheetID),
		fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&gid=%s", c.baseURL, c.sheetID, c.gid),
	}
}

// FetchRows tries every export variant in order and returns the rows of the
// first one that yields valid CSV with the required header. The returned
// error wraps ErrFetch or ErrParse from the last variant tried.
func (c *SheetsClient) FetchRows(ctx context.Context) ([]models.RawRow, error) {
	var lastErr error
	for _, url := range c.exportURLs() {
		rows, err := c.fetchOne(ctx, url)
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"url":   url,
				"error": err.Error(),
			}).Warn("Sheet export variant failed")
			lastErr = err
			continue
		}
		c.logger.WithFields(logrus.Fields{
			"url":  url,
			"rows": len(rows),
		}).Info("Loaded scoring sheet")
		return rows, nil
	}
	return nil, lastErr
}

func (c *SheetsClient) fetchOne(ctx context.Context, url string) ([]models.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetch, err)
	}

	return parseCSV(body)
}

// parseCSV turns a CSV body into raw rows. A sheet behind a login or sharing
// wall comes back as an HTML page with status 200, so the body is sniffed
// before parsing.
func parseCSV(body []byte) ([]models.RawRow, error) {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return nil, fmt.Errorf("%w: empty response body", ErrParse)
	}
	if strings.HasPrefix(text, "<!DOCTYPE") || strings.HasPrefix(text, "<html") {
		return nil, fmt.Errorf("%w: got HTML instead of CSV", ErrParse)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrParse, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF")
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrParse, col)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rows []models.RawRow
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", ErrParse, err)
		}
		rows = append(rows, models.RawRow{
			Player:       cell(row, "Player"),
			Tournament:   cell(row, "Tournament"),
			Game:         cell(row, "Game"),
			NetScore:     cell(row, "Net_Score"),
			Birdies:      cell(row, "Birdies"),
			Pars:         cell(row, "Pars"),
			Bogeys:       cell(row, "Bogeys"),
			DoubleBogeys: cell(row, "Double_Bogeys"),
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet has a header but no data rows", ErrParse)
	}
	return rows, nil
}

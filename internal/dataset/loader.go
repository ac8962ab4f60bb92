// Package dataset fetches the bundled reference CSVs over HTTP at
// startup and keeps an immutable in-memory snapshot. A failed load is
// sticky: the snapshot carries the error and views degrade instead of
// crashing. Fetches are not retried.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"dairyportal/internal/domain"
)

// Resource paths relative to the dataset base URL.
const (
	stateRankingPath   = "/data/state_milk_consumption_ranking.csv"
	demandForecastPath = "/data/national_milk_demand_forecast.csv"
	productsPath       = "/data/dairy_dataset.csv"
)

// maxProductRows caps the product dataset for performance, matching the
// portal's 100-row sample.
const maxProductRows = 100

// Snapshot is the loaded reference data. Err is set (and the slices
// empty) when any fetch or parse failed.
type Snapshot struct {
	StateRanking   []domain.StateProduction
	DemandForecast []domain.DemandForecast
	Products       []domain.DairyProduct
	LoadedAt       time.Time
	Err            error
}

// Loader fetches and caches the reference datasets.
type Loader struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger

	mu   sync.RWMutex
	snap Snapshot
}

// NewLoader builds a Loader. A zero timeout defaults to 15 seconds.
func NewLoader(baseURL string, timeout time.Duration, logger *log.Logger) *Loader {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Load fetches all three datasets and replaces the snapshot. On failure
// the snapshot holds the error and empty data.
func (l *Loader) Load(ctx context.Context) Snapshot {
	snap := Snapshot{LoadedAt: time.Now()}

	ranking, err := l.fetchStateRanking(ctx)
	if err == nil {
		snap.StateRanking = ranking
		snap.DemandForecast, err = l.fetchDemandForecast(ctx)
	}
	if err == nil {
		snap.Products, err = l.fetchProducts(ctx)
	}
	if err != nil {
		l.logger.Printf("dataset load failed: %v", err)
		snap = Snapshot{LoadedAt: snap.LoadedAt, Err: err}
	}

	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()
	return snap
}

// Snapshot returns the current snapshot.
func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

func (l *Loader) fetchStateRanking(ctx context.Context) ([]domain.StateProduction, error) {
	records, err := l.fetchCSV(ctx, stateRankingPath)
	if err != nil {
		return nil, err
	}
	out := make([]domain.StateProduction, 0, len(records))
	for _, rec := range records {
		if len(rec) < 4 {
			continue
		}
		out = append(out, domain.StateProduction{
			State:      strings.TrimSpace(rec[0]),
			Year:       strings.TrimSpace(rec[1]),
			Production: parseFloat(rec[2]),
			Rank:       parseInt(rec[3]),
		})
	}
	return out, nil
}

func (l *Loader) fetchDemandForecast(ctx context.Context) ([]domain.DemandForecast, error) {
	records, err := l.fetchCSV(ctx, demandForecastPath)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DemandForecast, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		out = append(out, domain.DemandForecast{
			Year:       parseInt(rec[0]),
			Production: parseFloat(rec[1]),
		})
	}
	return out, nil
}

// fetchProducts consumes a fixed positional subset of the product/sales
// dataset columns.
func (l *Loader) fetchProducts(ctx context.Context) ([]domain.DairyProduct, error) {
	records, err := l.fetchCSV(ctx, productsPath)
	if err != nil {
		return nil, err
	}
	if len(records) > maxProductRows {
		records = records[:maxProductRows]
	}
	out := make([]domain.DairyProduct, 0, len(records))
	for _, rec := range records {
		if len(rec) < 19 {
			continue
		}
		out = append(out, domain.DairyProduct{
			Location:         strings.TrimSpace(rec[0]),
			ProductName:      strings.TrimSpace(rec[6]),
			Brand:            strings.TrimSpace(rec[7]),
			Quantity:         parseFloat(rec[8]),
			PricePerUnit:     parseFloat(rec[9]),
			TotalValue:       parseFloat(rec[10]),
			CustomerLocation: strings.TrimSpace(rec[17]),
			SalesChannel:     strings.TrimSpace(rec[18]),
		})
	}
	return out, nil
}

// fetchCSV retrieves one resource and returns its data rows, header
// stripped.
func (l *Loader) fetchCSV(ctx context.Context, path string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// Malformed numerics parse as zero, matching the source data's behavior.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dairyportal/internal/domain"
)

type CollectionWriter interface {
	Upsert(ctx context.Context, c domain.MilkCollection) (*domain.MilkCollection, error)
}

// CSVImporter reads milk-collection CSV exports and upserts records for a
// farmer. Expected header: date, shift, quantity, fat, snf, rate,
// cattle_type, status.
type CSVImporter struct {
	reader   *csv.Reader
	repo     CollectionWriter
	farmerID string
}

func NewCSVImporter(r io.Reader, repo CollectionWriter, farmerID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		repo:     repo,
		farmerID: farmerID,
	}
}

// Run parses CSV rows and upserts collections. It returns the number of
// imported records.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		c, err := i.parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if c == nil {
			continue
		}
		if _, err := i.repo.Upsert(ctx, *c); err != nil {
			return imported, fmt.Errorf("upsert collection %s/%s: %w", c.Date, c.Shift, err)
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) parseRow(record []string, index map[string]int) (*domain.MilkCollection, error) {
	date := pick(record, index, "date")
	shift := strings.ToLower(pick(record, index, "shift"))
	if date == "" && shift == "" {
		return nil, nil
	}
	if date == "" || (shift != "morning" && shift != "evening") {
		return nil, fmt.Errorf("invalid collection row (date %q, shift %q)", date, shift)
	}

	qty, err := strconv.ParseFloat(pick(record, index, "quantity"), 64)
	if err != nil || qty <= 0 {
		return nil, fmt.Errorf("invalid quantity for row %s/%s", date, shift)
	}

	status := strings.ToLower(pick(record, index, "status"))
	switch status {
	case "":
		status = domain.CollectionPending
	case domain.CollectionPending, domain.CollectionVerified, domain.CollectionPaid:
	default:
		return nil, fmt.Errorf("invalid status %q for row %s/%s", status, date, shift)
	}

	cattle := domain.CattleType(strings.ToLower(pick(record, index, "cattle_type")))
	if cattle == "" {
		cattle = domain.CattleCow
	}
	if !domain.ValidCattleType(cattle) || cattle == domain.CattleBoth {
		return nil, fmt.Errorf("invalid cattle type %q for row %s/%s", cattle, date, shift)
	}

	return &domain.MilkCollection{
		FarmerID:     i.farmerID,
		Date:         date,
		Shift:        shift,
		Quantity:     qty,
		FatContent:   parseOptionalFloat(pick(record, index, "fat")),
		SNFContent:   parseOptionalFloat(pick(record, index, "snf")),
		RatePerLiter: parseOptionalFloat(pick(record, index, "rate")),
		CattleType:   cattle,
		Status:       status,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func parseOptionalFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

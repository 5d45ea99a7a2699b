package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
	productsvc "order-backoffice/internal/service/product"
)

type ProductCreator interface {
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
}

type CostWriter interface {
	Upsert(ctx context.Context, productID string, cost decimal.Decimal) (*domain.ProductCost, error)
}

// CSVImporter reads productId,productName,cost rows, creating missing products
// and setting their cost.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductCreator
	costs    CostWriter
	logger   zerolog.Logger
}

func NewCSVImporter(r io.Reader, products ProductCreator, costs CostWriter, logger zerolog.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:   csvr,
		products: products,
		costs:    costs,
		logger:   logger,
	}
}

type csvRow struct {
	Line        int
	ProductID   string
	ProductName string
	Cost        decimal.Decimal
}

// Run imports every row and returns how many costs were written. It stops at
// the first invalid row; rows before it stay imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range []string{"productId", "cost"} {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q", col)
		}
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index, line)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}
		if err := i.save(ctx, row); err != nil {
			return imported, err
		}
		imported++
	}

	i.logger.Info().Int("imported", imported).Msg("cost import finished")
	return imported, nil
}

// save creates the product when the row names it, then sets the cost. A row
// without productName must refer to an existing product.
func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.ProductName != "" {
		_, err := i.products.Create(ctx, productsvc.CreateInput{ID: row.ProductID, Name: row.ProductName})
		switch {
		case err == nil:
			i.logger.Debug().Str("product_id", row.ProductID).Msg("product created")
		case errors.Is(err, domain.ErrConflict):
			// already exists
		default:
			return fmt.Errorf("line %d: create product %q: %w", row.Line, row.ProductID, err)
		}
	}

	_, err := i.costs.Upsert(ctx, row.ProductID, row.Cost)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("line %d: product %q does not exist and has no productName: %w", row.Line, row.ProductID, err)
	case err != nil:
		return fmt.Errorf("line %d: set cost for %q: %w", row.Line, row.ProductID, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

// parseRow returns nil for blank lines.
func parseRow(record []string, index map[string]int, line int) (*csvRow, error) {
	id := pick(record, index, "productId")
	name := pick(record, index, "productName")
	costStr := pick(record, index, "cost")

	if id == "" && name == "" && costStr == "" {
		return nil, nil
	}
	if id == "" {
		return nil, fmt.Errorf("line %d: productId required", line)
	}
	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid cost %q", line, costStr)
	}
	return &csvRow{Line: line, ProductID: id, ProductName: name, Cost: cost}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

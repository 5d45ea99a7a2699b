package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
	productsvc "order-backoffice/internal/service/product"
)

type stubProducts struct {
	existing  map[string]domain.Product
	created   []productsvc.CreateInput
	calls     int
	createErr error
}

func (s *stubProducts) Create(_ context.Context, in productsvc.CreateInput) (*domain.Product, error) {
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.existing[in.ID]; ok {
		return nil, fmt.Errorf("product %q: %w", in.ID, domain.ErrConflict)
	}
	s.created = append(s.created, in)
	p := domain.Product{ID: in.ID, Name: in.Name}
	s.existing[in.ID] = p
	return &p, nil
}

type stubCosts struct {
	products *stubProducts
	set      map[string]decimal.Decimal
	err      error
}

func (s *stubCosts) Upsert(_ context.Context, productID string, cost decimal.Decimal) (*domain.ProductCost, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.products.existing[productID]; !ok {
		return nil, fmt.Errorf("product %q: %w", productID, domain.ErrNotFound)
	}
	s.set[productID] = cost
	return &domain.ProductCost{ProductID: productID, Cost: cost}, nil
}

func newStubs() (*stubProducts, *stubCosts) {
	products := &stubProducts{existing: map[string]domain.Product{"P-001": {ID: "P-001", Name: "Camiseta"}}}
	return products, &stubCosts{products: products, set: map[string]decimal.Decimal{}}
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `productId,productName,cost
P-001,Camiseta,21.50
P-010, Squeeze ,12.00

P-011,Mouse pad,0
`
	products, costs := newStubs()
	imp := NewCSVImporter(strings.NewReader(csvData), products, costs, zerolog.Nop())

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 rows imported, got %d", count)
	}
	if products.calls != 3 {
		t.Fatalf("expected one create call per named row, got %d", products.calls)
	}
	if len(products.created) != 2 {
		t.Fatalf("expected 2 products created, got %+v", products.created)
	}
	if products.created[0].ID != "P-010" || products.created[0].Name != "Squeeze" {
		t.Fatalf("unexpected product data: %+v", products.created[0])
	}
	if !costs.set["P-001"].Equal(decimal.RequireFromString("21.5")) {
		t.Fatalf("unexpected cost for P-001: %s", costs.set["P-001"])
	}
	if !costs.set["P-011"].IsZero() {
		t.Fatalf("expected zero cost for P-011, got %s", costs.set["P-011"])
	}
}

func TestCSVImporter_ColumnOrderFromHeader(t *testing.T) {
	products, costs := newStubs()
	imp := NewCSVImporter(strings.NewReader("cost,productId\n3.00,P-001\n"), products, costs, zerolog.Nop())

	count, err := imp.Run(context.Background())
	if err != nil || count != 1 {
		t.Fatalf("expected 1 row, got %d (%v)", count, err)
	}
	if !costs.set["P-001"].Equal(decimal.RequireFromString("3")) {
		t.Fatalf("unexpected cost %s", costs.set["P-001"])
	}
}

func TestCSVImporter_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"missing column", "productId,productName\nP-1,x\n", `missing column "cost"`},
		{"bad cost", "productId,productName,cost\nP-001,x,abc\n", `line 2: invalid cost "abc"`},
		{"missing id", "productId,productName,cost\n,x,1\n", "line 2: productId required"},
		{"unknown without name", "productId,productName,cost\nP-001,,1\nP-404,,1\n", `line 3: product "P-404" does not exist`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products, costs := newStubs()
			_, err := NewCSVImporter(strings.NewReader(tc.data), products, costs, zerolog.Nop()).Run(context.Background())
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCSVImporter_StopsOnCostError(t *testing.T) {
	products, costs := newStubs()
	costs.err = domain.Invalid("cost must not be negative")
	count, err := NewCSVImporter(strings.NewReader("productId,cost\nP-001,-1\n"), products, costs, zerolog.Nop()).Run(context.Background())
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if count != 0 {
		t.Fatalf("expected nothing imported, got %d", count)
	}
}

func TestCSVImporter_RowWithoutNameSkipsCreate(t *testing.T) {
	products, costs := newStubs()
	count, err := NewCSVImporter(strings.NewReader("productId,cost\nP-001,4.20\n"), products, costs, zerolog.Nop()).Run(context.Background())
	if err != nil || count != 1 {
		t.Fatalf("expected 1 row, got %d (%v)", count, err)
	}
	if products.calls != 0 {
		t.Fatalf("expected no create calls, got %d", products.calls)
	}
}

func TestCSVImporter_CreateFailure(t *testing.T) {
	products, costs := newStubs()
	boom := errors.New("db down")
	products.createErr = boom
	_, err := NewCSVImporter(strings.NewReader("productId,productName,cost\nP-001,Camiseta,1\n"), products, costs, zerolog.Nop()).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

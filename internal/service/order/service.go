package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
	orderrepo "order-backoffice/internal/repository/order"
)

// Service turns web-form and webhook submissions into stored orders.
type Service struct {
	repo     orderrepo.Repository
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func New(repo orderrepo.Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateInput is an order placed from the back-office form.
type CreateInput struct {
	BuyerName  string
	BuyerEmail string
	Items      []ItemInput
}

// ExternalInput is an order already priced and timestamped by the external platform.
type ExternalInput struct {
	ExternalID  string
	BuyerName   string
	BuyerEmail  string
	Items       []ItemInput
	TotalAmount decimal.Decimal
	CreatedAt   string
}

// CreateFromForm computes the total from the items and stamps the order with
// a WEB- external id and the current time.
func (s *Service) CreateFromForm(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if err := s.validateBuyer(in.BuyerName, in.BuyerEmail, true); err != nil {
		return nil, err
	}
	items, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	o := domain.Order{
		ID:         s.newID(),
		ExternalID: fmt.Sprintf("WEB-%d", now.UnixMilli()),
		BuyerName:  strings.TrimSpace(in.BuyerName),
		BuyerEmail: strings.TrimSpace(in.BuyerEmail),
		CreatedAt:  now.Truncate(time.Millisecond),
		Items:      items,
	}
	o.TotalAmount = o.ItemsTotal()
	if err := domain.CheckMoney("totalAmount", o.TotalAmount); err != nil {
		return nil, err
	}
	return s.store(ctx, o)
}

// CreateFromWebhook stores an order from the external platform. The supplied
// total and timestamp are authoritative and are not checked against the items.
func (s *Service) CreateFromWebhook(ctx context.Context, in ExternalInput) (*domain.Order, error) {
	externalID := strings.TrimSpace(in.ExternalID)
	if externalID == "" {
		return nil, domain.Invalid("id required")
	}
	if err := s.validateBuyer(in.BuyerName, in.BuyerEmail, false); err != nil {
		return nil, err
	}
	items, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckMoney("totalAmount", in.TotalAmount); err != nil {
		return nil, err
	}
	createdAt, err := domain.ParseInstant(in.CreatedAt)
	if err != nil {
		return nil, domain.Invalid("createdAt: %q is not a valid ISO-8601 date", in.CreatedAt)
	}

	return s.store(ctx, domain.Order{
		ID:          s.newID(),
		ExternalID:  externalID,
		BuyerName:   strings.TrimSpace(in.BuyerName),
		BuyerEmail:  strings.TrimSpace(in.BuyerEmail),
		TotalAmount: in.TotalAmount,
		CreatedAt:   createdAt,
		Items:       items,
	})
}

// List returns orders inside r, newest first.
func (s *Service) List(ctx context.Context, r domain.DateRange) ([]domain.Order, error) {
	return s.repo.List(ctx, r)
}

func (s *Service) store(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	return &o, nil
}

func (s *Service) validateBuyer(name, email string, nameRequired bool) error {
	if nameRequired && strings.TrimSpace(name) == "" {
		return domain.Invalid("buyerName required")
	}
	if err := s.validate.Var(strings.TrimSpace(email), "required,email"); err != nil {
		return domain.Invalid("buyerEmail must be a valid email address")
	}
	return nil
}

func validateItems(in []ItemInput) ([]domain.OrderItem, error) {
	if len(in) == 0 {
		return nil, domain.Invalid("order must contain at least one item")
	}
	items := make([]domain.OrderItem, 0, len(in))
	for i, item := range in {
		productID := strings.TrimSpace(item.ProductID)
		productName := strings.TrimSpace(item.ProductName)
		switch {
		case productID == "":
			return nil, domain.Invalid("items[%d]: productId required", i)
		case productName == "":
			return nil, domain.Invalid("items[%d]: productName required", i)
		case item.Quantity < 1:
			return nil, domain.Invalid("items[%d]: quantity must be at least 1", i)
		case item.Quantity > domain.MaxQuantity:
			return nil, domain.Invalid("items[%d]: quantity must be at most %d", i, domain.MaxQuantity)
		}
		if err := domain.CheckMoney(fmt.Sprintf("items[%d]: unitPrice", i), item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID:   productID,
			ProductName: productName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return items, nil
}

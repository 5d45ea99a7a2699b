package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"order-backoffice/internal/domain"
	productrepo "order-backoffice/internal/repository/product"
)

type Service struct {
	repo  productrepo.Repository
	newID func() string
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo, newID: uuid.NewString}
}

// CreateInput carries an optional caller-chosen id.
type CreateInput struct {
	ID   string
	Name string
}

// Create stores a new product. A blank id is replaced by a generated UUID; an
// id that already exists, given or generated, yields domain.ErrConflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name required")
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = s.newID()
	}

	_, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return nil, fmt.Errorf("product %q: %w", id, domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	return s.repo.Create(ctx, domain.Product{ID: id, Name: name})
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

package catalog

import (
	"context"
	"errors"

	"fashion_store_back_end/internal/apperrors"
	"fashion_store_back_end/internal/models"
)

// Repository : une seule interface, deux implémentations (statique + Mongo),
// composées en lecture par Merged.
type Repository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, p models.Product) error
	Delete(ctx context.Context, id string) error
}

// Merged compose le jeu statique et le store dynamique en une vue unique.
// La fusion est recalculée à chaque lecture, jamais mise en cache.
type Merged struct {
	Static  Repository
	Dynamic Repository
}

func NewMerged(static, dynamic Repository) *Merged {
	return &Merged{Static: static, Dynamic: dynamic}
}

// List retourne la vue fusionnée et ordonnée du catalogue complet.
func (m *Merged) List(ctx context.Context) ([]models.Product, error) {
	static, err := m.Static.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dynamic, err := m.Dynamic.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Merge(static, dynamic), nil
}

// Find cherche d'abord dans le statique, puis dans le dynamique.
func (m *Merged) Find(ctx context.Context, id string) (*models.Product, error) {
	p, err := m.Static.FindByID(ctx, id)
	if err == nil {
		return p, nil
	}
	var nf *apperrors.NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}
	return m.Dynamic.FindByID(ctx, id)
}

// Insert ne touche que le store dynamique.
func (m *Merged) Insert(ctx context.Context, p *models.Product) error {
	return m.Dynamic.Insert(ctx, p)
}

// Update refuse les ids statiques (ConflictError) et route le reste vers Mongo.
func (m *Merged) Update(ctx context.Context, id string, p models.Product) error {
	if _, err := m.Static.FindByID(ctx, id); err == nil {
		return m.Static.Update(ctx, id, p)
	}
	return m.Dynamic.Update(ctx, id, p)
}

// Delete suit la même règle que Update.
func (m *Merged) Delete(ctx context.Context, id string) error {
	if _, err := m.Static.FindByID(ctx, id); err == nil {
		return m.Static.Delete(ctx, id)
	}
	return m.Dynamic.Delete(ctx, id)
}

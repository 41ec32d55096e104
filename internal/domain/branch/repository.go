package branch

import "context"

type Repository interface {
	Save(ctx context.Context, b *Branch) error
	Update(ctx context.Context, b *Branch) error
	GetByID(ctx context.Context, id uint) (*Branch, error)

	// GetDefaultProduction returns the active branch flagged as the default
	// production site, or (nil, nil) when none exists.
	GetDefaultProduction(ctx context.Context) (*Branch, error)

	ListActive(ctx context.Context) ([]*Branch, error)
}

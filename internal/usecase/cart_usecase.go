package usecase

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the server-side cart of the calling staff member.
type CartUsecase interface {
	// GetCart returns the stored cart, or an empty one.
	GetCart(ctx context.Context, actor *Actor) (*entity.Cart, error)
	// SelectDestination sets location and delivery date. Lines not offered at the new location are dropped.
	SelectDestination(ctx context.Context, actor *Actor, location entity.Location, orderDate time.Time) (*entity.Cart, error)
	AddItem(ctx context.Context, actor *Actor, itemID uuid.UUID, quantity int) (*entity.Cart, error)
	// UpdateQuantity overwrites a line's quantity; zero removes the line.
	UpdateQuantity(ctx context.Context, actor *Actor, itemID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, actor *Actor, itemID uuid.UUID) (*entity.Cart, error)
	SetNote(ctx context.Context, actor *Actor, note string) (*entity.Cart, error)
	ClearCart(ctx context.Context, actor *Actor) error
}

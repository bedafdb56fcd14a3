package repository

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartNotFound is returned when a staff member has no stored cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository keeps in-progress carts outside the relational store.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)
	SaveCart(ctx context.Context, cart *entity.Cart) error
	DeleteCart(ctx context.Context, ownerID uuid.UUID) error
}

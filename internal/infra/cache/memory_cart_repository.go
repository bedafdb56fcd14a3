package cache

import (
	"context"
	"encoding/json"
	"sync"

	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memoryCartRepository keeps carts per process. Carts are deep-copied through JSON
// so callers never share slices with the store.
type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]byte
}

// NewMemoryCartRepository is the constructor for memoryCartRepository.
func NewMemoryCartRepository() repository.CartRepository {
	return &memoryCartRepository{
		carts: make(map[uuid.UUID][]byte),
	}
}

func (r *memoryCartRepository) GetCart(_ context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	r.mu.RLock()
	raw, ok := r.carts[ownerID]
	r.mu.RUnlock()

	if !ok {
		return nil, repository.ErrCartNotFound
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, errors.WithStack(err)
	}

	return &cart, nil
}

func (r *memoryCartRepository) SaveCart(_ context.Context, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return errors.WithStack(err)
	}

	r.mu.Lock()
	r.carts[cart.OwnerID] = raw
	r.mu.Unlock()

	return nil
}

func (r *memoryCartRepository) DeleteCart(_ context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	delete(r.carts, ownerID)
	r.mu.Unlock()

	return nil
}

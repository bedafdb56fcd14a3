package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
	}
}

func (s *cartService) GetCart(ctx context.Context, actor *usecase.Actor) (*entity.Cart, error) {
	return s.loadCart(ctx, actor.UserID)
}

// SelectDestination sets where and when the order goes, dropping lines the new branch does not offer.
func (s *cartService) SelectDestination(ctx context.Context, actor *usecase.Actor, location entity.Location, orderDate time.Time) (*entity.Cart, error) {
	if !location.IsBranch() || orderDate.IsZero() {
		return nil, domainerrors.ErrInvalidOrder
	}
	if actor.Role != entity.RoleAdmin && !actor.Locations.Offers(location) {
		return nil, domainerrors.ErrForbidden.WrapMessage("user is not assigned to this location")
	}

	cart, err := s.loadCart(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if cart.Location != location && !cart.IsEmpty() {
		if err := s.dropUnavailableLines(ctx, cart, location); err != nil {
			return nil, err
		}
	}

	cart.Location = location
	cart.OrderDate = dateOnly(orderDate)

	return s.save(ctx, cart)
}

func (s *cartService) dropUnavailableLines(ctx context.Context, cart *entity.Cart, location entity.Location) error {
	ids := make([]uuid.UUID, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.ItemID)
	}

	items, err := s.itemRepo.FindItemsByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load cart items")
	}

	available := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		available[item.ID] = item.AvailableAt(location)
	}

	for _, id := range ids {
		if !available[id] {
			cart.Remove(id)
			s.log(ctx).Debug("Dropped cart line not offered at location",
				slog.String("item_id", id.String()),
				slog.String("location", location.String()),
			)
		}
	}

	return nil
}

func (s *cartService) AddItem(ctx context.Context, actor *usecase.Actor, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	cart, err := s.loadCart(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !cart.Location.IsBranch() {
		return nil, domainerrors.ErrInvalidOrder.WrapMessage("select a location before adding items")
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if errors.Is(err, repository.ErrItemNotFound) {
		return nil, domainerrors.ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find item")
	}
	if !item.AvailableAt(cart.Location) {
		return nil, domainerrors.ErrItemUnavailable.WrapMessage(item.Name)
	}

	cart.Add(item, quantity)

	return s.save(ctx, cart)
}

func (s *cartService) UpdateQuantity(ctx context.Context, actor *usecase.Actor, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	cart, err := s.loadCart(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(itemID, quantity) {
		return nil, domainerrors.ErrItemNotFound.WrapMessage("item is not in the cart")
	}

	return s.save(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, actor *usecase.Actor, itemID uuid.UUID) (*entity.Cart, error) {
	return s.UpdateQuantity(ctx, actor, itemID, 0)
}

func (s *cartService) SetNote(ctx context.Context, actor *usecase.Actor, note string) (*entity.Cart, error) {
	cart, err := s.loadCart(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	cart.StaffNote = strings.TrimSpace(note)

	return s.save(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, actor *usecase.Actor) error {
	if err := s.cartRepo.DeleteCart(ctx, actor.UserID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (s *cartService) loadCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetCart(ctx, ownerID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return entity.NewCart(ownerID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (s *cartService) save(ctx context.Context, cart *entity.Cart) (*entity.Cart, error) {
	cart.UpdatedAt = time.Now()

	if err := s.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

package impl

import (
	"context"
	"testing"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	mockRepo "kitchen/internal/mocks/repository"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service  usecase.CartUsecase
	cartRepo *mockRepo.MockCartRepository
	itemRepo *mockRepo.MockItemRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo: cartRepo,
		ItemRepo: itemRepo,
		Logger:   newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:  service,
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

func TestCartService_GetCart_NewCartWhenMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetCart(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, actor.UserID, cart.OwnerID)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_SelectDestination_ForbiddenLocation(t *testing.T) {
	fx := createTestCartService(t)

	actor := staffActor(entity.LocationThornhill)

	_, err := fx.service.SelectDestination(context.Background(), actor, entity.LocationNorthYork, deliveryDate())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCartService_SelectDestination_RejectsBoth(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.SelectDestination(context.Background(), adminActor(), entity.LocationBoth, deliveryDate())

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrder)
}

func TestCartService_SelectDestination_DropsLinesNotOffered(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork, entity.LocationThornhill)
	rice := testItem("Rice", entity.LocationBoth)
	stew := testItem("Stew", entity.LocationNorthYork)

	existing := filledCart(actor.UserID, entity.LocationNorthYork, rice, stew)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(existing, nil)
	fx.itemRepo.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{rice.ID, stew.ID}).Return([]*entity.Item{rice, stew}, nil)
	fx.cartRepo.EXPECT().SaveCart(ctx, existing).Return(nil)

	cart, err := fx.service.SelectDestination(ctx, actor, entity.LocationThornhill, deliveryDate())

	require.NoError(t, err)
	assert.Equal(t, entity.LocationThornhill, cart.Location)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, rice.ID, cart.Lines[0].ItemID)
}

func TestCartService_AddItem_MergesQuantities(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	rice := testItem("Rice", entity.LocationBoth)
	existing := filledCart(actor.UserID, entity.LocationNorthYork, rice)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(existing, nil)
	fx.itemRepo.EXPECT().FindItemByID(ctx, rice.ID).Return(rice, nil)
	fx.cartRepo.EXPECT().SaveCart(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := fx.service.AddItem(ctx, actor, rice.ID, 3)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCartService_AddItem_RequiresLocation(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.AddItem(ctx, actor, uuid.New(), 1)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrder)
}

func TestCartService_AddItem_Errors(t *testing.T) {
	actor := staffActor(entity.LocationThornhill)
	stew := testItem("Stew", entity.LocationNorthYork)
	inactive := testItem("Soup", entity.LocationBoth)
	inactive.IsActive = false

	tests := []struct {
		name    string
		item    *entity.Item
		repoErr error
		wantErr error
	}{
		{name: "unknown item", repoErr: repository.ErrItemNotFound, wantErr: domainerrors.ErrItemNotFound},
		{name: "not offered at branch", item: stew, wantErr: domainerrors.ErrItemUnavailable},
		{name: "inactive item", item: inactive, wantErr: domainerrors.ErrItemUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			ctx := context.Background()
			id := uuid.New()
			if tt.item != nil {
				id = tt.item.ID
			}

			fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(filledCart(actor.UserID, entity.LocationThornhill), nil)
			fx.itemRepo.EXPECT().FindItemByID(ctx, id).Return(tt.item, tt.repoErr)

			_, err := fx.service.AddItem(ctx, actor, id, 1)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCartService_AddItem_RejectsZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), staffActor(entity.LocationNorthYork), uuid.New(), 0)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)
	rice := testItem("Rice", entity.LocationBoth)
	existing := filledCart(actor.UserID, entity.LocationNorthYork, rice)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(existing, nil)
	fx.cartRepo.EXPECT().SaveCart(ctx, existing).Return(nil)

	cart, err := fx.service.UpdateQuantity(ctx, actor, rice.ID, 0)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(filledCart(actor.UserID, entity.LocationNorthYork), nil)

	_, err := fx.service.RemoveItem(ctx, actor, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCartService_SetNote_Trims(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)

	fx.cartRepo.EXPECT().GetCart(ctx, actor.UserID).Return(filledCart(actor.UserID, entity.LocationNorthYork), nil)
	fx.cartRepo.EXPECT().SaveCart(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := fx.service.SetNote(ctx, actor, "  no onions \n")

	require.NoError(t, err)
	assert.Equal(t, "no onions", cart.StaffNote)
	assert.False(t, cart.UpdatedAt.IsZero())
}

func TestCartService_ClearCart_RepositoryError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	actor := staffActor(entity.LocationNorthYork)

	fx.cartRepo.EXPECT().DeleteCart(ctx, actor.UserID).Return(errors.New("redis down"))

	err := fx.service.ClearCart(ctx, actor)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cart")
}

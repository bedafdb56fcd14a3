package handler

import (
	"net/http"
	"testing"
	"time"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	mockUsecase "kitchen/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC}), cartUC
}

func TestCartHandler_SelectDestination(t *testing.T) {
	h, cartUC := newTestCartHandler(t)
	actor := staffActor()
	c, rec := newTestContext(http.MethodPut, "/api/v1/cart/destination", `{"location":"Thornhill","orderDate":"2025-02-14"}`, actor)

	orderDate := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)
	cartUC.EXPECT().
		SelectDestination(mock.Anything, actor, entity.LocationThornhill, orderDate).
		Return(&entity.Cart{Location: entity.LocationThornhill, OrderDate: orderDate}, nil)

	require.NoError(t, h.SelectDestination(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_SelectDestination_UnknownBranch(t *testing.T) {
	h, _ := newTestCartHandler(t)
	c, rec := newTestContext(http.MethodPut, "/api/v1/cart/destination", `{"location":"Downtown","orderDate":"2025-02-14"}`, staffActor())

	require.NoError(t, h.SelectDestination(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestCartHandler_AddItem_Unavailable(t *testing.T) {
	h, cartUC := newTestCartHandler(t)
	actor := staffActor()
	itemID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{"itemId":"`+itemID.String()+`","quantity":2}`, actor)

	cartUC.EXPECT().AddItem(mock.Anything, actor, itemID, 2).Return(nil, domainerrors.ErrItemUnavailable)

	require.NoError(t, h.AddItem(c))

	assert.Equal(t, domainerrors.ErrItemUnavailable.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrItemUnavailable.ErrorCode(), decodeError(t, rec).Code)
}

func TestCartHandler_UpdateQuantity_ZeroIsAllowed(t *testing.T) {
	h, cartUC := newTestCartHandler(t)
	actor := staffActor()
	itemID := uuid.New()
	c, rec := newTestContext(http.MethodPut, "/api/v1/cart/items/"+itemID.String(), `{"quantity":0}`, actor)
	c.SetParamNames("itemId")
	c.SetParamValues(itemID.String())

	cartUC.EXPECT().UpdateQuantity(mock.Anything, actor, itemID, 0).Return(&entity.Cart{}, nil)

	require.NoError(t, h.UpdateQuantity(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateQuantity_Negative(t *testing.T) {
	h, _ := newTestCartHandler(t)
	itemID := uuid.New()
	c, rec := newTestContext(http.MethodPut, "/api/v1/cart/items/"+itemID.String(), `{"quantity":-1}`, staffActor())
	c.SetParamNames("itemId")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.UpdateQuantity(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_ClearCart(t *testing.T) {
	h, cartUC := newTestCartHandler(t)
	actor := staffActor()
	c, rec := newTestContext(http.MethodDelete, "/api/v1/cart", "", actor)

	cartUC.EXPECT().ClearCart(mock.Anything, actor).Return(nil)

	require.NoError(t, h.ClearCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var msg MessageResponse
	decodeData(t, rec, &msg)
	assert.Equal(t, "Cart cleared", msg.Message)
}

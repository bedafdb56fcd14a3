package impl

import (
	"strings"
	"testing"
	"time"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:           uuid.New(),
		OrderNumber:  "48213",
		OrderDate:    deliveryDate(),
		Location:     entity.LocationNorthYork,
		PlacedByName: "Sara Staff",
		Items: []entity.OrderItem{
			{ItemName: "Rice", Quantity: 2},
			{ItemName: "Stew", Quantity: 1},
		},
		StaffNote: "Extra napkins",
		Status:    entity.OrderStatusActive,
		CreatedAt: time.Date(2025, time.January, 5, 23, 15, 0, 0, time.UTC),
	}
}

func torontoLocation(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	return loc
}

func TestOrderMessage_SMSBody(t *testing.T) {
	msg := newOrderMessage(testOrder(), torontoLocation(t))

	want := "🍽️ NEW ORDER ALERT 🍽️\n\n" +
		"Order #48213\n" +
		"Delivery: Monday, January 6, 2025\n" +
		"Location: North York\n" +
		"Placed by: Sara Staff\n\n" +
		"Items ordered:\n" +
		"Rice (2)\nStew (1)\n\n" +
		"Notes: Extra napkins\n" +
		"Please check the admin panel for details.\n\n" +
		"- Kitchen Team"

	assert.Equal(t, want, msg.smsBody("Kitchen Team"))
}

func TestOrderMessage_SMSBodyWithoutNote(t *testing.T) {
	order := testOrder()
	order.StaffNote = "   "

	body := newOrderMessage(order, time.UTC).smsBody("Kitchen Team")

	assert.NotContains(t, body, "Notes:")
	assert.Contains(t, body, "Stew (1)\n\nPlease check the admin panel for details.")
}

func TestOrderMessage_PlacedAtUsesConfiguredZone(t *testing.T) {
	msg := newOrderMessage(testOrder(), torontoLocation(t))

	assert.Equal(t, "Sunday, January 5, 2025 at 06:15 PM", msg.PlacedAt)
	assert.Equal(t, "Monday, January 6, 2025", msg.DeliveryDate)
}

func TestOrderMessage_EmailText(t *testing.T) {
	text := newOrderMessage(testOrder(), torontoLocation(t)).emailText("Kitchen Team")

	assert.True(t, strings.HasPrefix(text, "NEW ORDER NOTIFICATION\n\nOrder Details:\n"))
	assert.Contains(t, text, "Order Number: #48213\n")
	assert.Contains(t, text, "Order Placed: Sunday, January 5, 2025 at 06:15 PM\n")
	assert.Contains(t, text, "• Rice - Quantity: 2\n• Stew - Quantity: 1\n")
	assert.Contains(t, text, "Staff Notes:\nExtra napkins\n")
	assert.True(t, strings.HasSuffix(text, "Best regards,\nKitchen Team"))
}

func TestOrderMessage_EmailHTMLEscapesInput(t *testing.T) {
	order := testOrder()
	order.StaffNote = "<script>alert(1)</script>"

	html, err := newOrderMessage(order, time.UTC).emailHTML("Kitchen Team")

	require.NoError(t, err)
	assert.Contains(t, html, "#48213")
	assert.Contains(t, html, "<li><strong>Rice</strong> - Quantity: 2</li>")
	assert.Contains(t, html, "automated notification from Kitchen Team")
	assert.NotContains(t, html, "<script>")
}

func TestOrderMessage_Subject(t *testing.T) {
	msg := newOrderMessage(testOrder(), time.UTC)

	assert.Equal(t, "🍽️ New Order #48213 - North York", msg.emailSubject())
}

func TestOrderMessage_PushContent(t *testing.T) {
	title, body := newOrderMessage(testOrder(), time.UTC).pushContent()

	assert.Equal(t, "🍽️ New Order #48213", title)
	assert.Equal(t, "North York · Sara Staff · 3 items for Monday, January 6, 2025", body)
}

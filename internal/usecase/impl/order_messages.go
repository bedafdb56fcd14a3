package impl

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"kitchen/internal/domain/entity"
	"kitchen/internal/util"

	"github.com/pkg/errors"
)

const messageRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// orderMessage is the channel-neutral view of an order used by every alert.
type orderMessage struct {
	OrderNumber  string
	DeliveryDate string
	Location     string
	PlacedBy     string
	PlacedAt     string // empty when the alert does not carry a placement time
	StaffNote    string
	Items        []messageItem
	Signature    string // footer, filled in per channel
}

type messageItem struct {
	Name     string
	Quantity int
}

// newOrderMessage renders an order for alerts. The delivery date is a calendar date and is
// formatted as stored; the placement time is shown in loc.
func newOrderMessage(order *entity.Order, loc *time.Location) *orderMessage {
	items := make([]messageItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, messageItem{Name: item.ItemName, Quantity: item.Quantity})
	}

	return &orderMessage{
		OrderNumber:  order.OrderNumber,
		DeliveryDate: util.FormatLongDate(order.OrderDate),
		Location:     order.Location.String(),
		PlacedBy:     order.PlacedByName,
		PlacedAt:     util.FormatLongDateTime(order.CreatedAt.In(loc)),
		StaffNote:    strings.TrimSpace(order.StaffNote),
		Items:        items,
	}
}

// smsBody renders the compact SMS alert with one "name (qty)" line per item.
func (m *orderMessage) smsBody(signature string) string {
	var b strings.Builder

	b.WriteString("🍽️ NEW ORDER ALERT 🍽️\n\n")
	fmt.Fprintf(&b, "Order #%s\n", m.OrderNumber)
	fmt.Fprintf(&b, "Delivery: %s\n", m.DeliveryDate)
	fmt.Fprintf(&b, "Location: %s\n", m.Location)
	fmt.Fprintf(&b, "Placed by: %s\n\n", m.PlacedBy)
	b.WriteString("Items ordered:\n")
	for i, item := range m.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s (%d)", item.Name, item.Quantity)
	}
	b.WriteString("\n\n")
	if m.StaffNote != "" {
		fmt.Fprintf(&b, "Notes: %s\n", m.StaffNote)
	}
	b.WriteString("Please check the admin panel for details.\n\n")
	b.WriteString("- " + signature)

	return b.String()
}

func (m *orderMessage) emailSubject() string {
	return fmt.Sprintf("🍽️ New Order #%s - %s", m.OrderNumber, m.Location)
}

func (m *orderMessage) emailText(signature string) string {
	var b strings.Builder

	b.WriteString("NEW ORDER NOTIFICATION\n\n")
	b.WriteString("Order Details:\n")
	b.WriteString(messageRule + "\n")
	fmt.Fprintf(&b, "Order Number: #%s\n", m.OrderNumber)
	fmt.Fprintf(&b, "Delivery Date: %s\n", m.DeliveryDate)
	fmt.Fprintf(&b, "Location: %s\n", m.Location)
	fmt.Fprintf(&b, "Placed by: %s\n", m.PlacedBy)
	if m.PlacedAt != "" {
		fmt.Fprintf(&b, "Order Placed: %s\n", m.PlacedAt)
	}
	b.WriteString("\nItems Ordered:\n")
	for _, item := range m.Items {
		fmt.Fprintf(&b, "• %s - Quantity: %d\n", item.Name, item.Quantity)
	}
	b.WriteByte('\n')
	if m.StaffNote != "" {
		fmt.Fprintf(&b, "Staff Notes:\n%s\n", m.StaffNote)
	}
	b.WriteString(messageRule + "\n\n")
	b.WriteString("Please check the admin panel for full details and to manage this order.\n\n")
	b.WriteString("Best regards,\n" + signature)

	return b.String()
}

//nolint:gochecknoglobals // parsed once, read-only
var orderEmailTemplate = template.Must(template.New("order_email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
  <h2 style="color: #b32127; text-align: center; margin-bottom: 30px;">🍽️ New Order Notification</h2>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h3 style="color: #333; margin-top: 0;">Order Details</h3>
    <p><strong>Order Number:</strong> #{{.OrderNumber}}</p>
    <p><strong>Delivery Date:</strong> {{.DeliveryDate}}</p>
    <p><strong>Location:</strong> {{.Location}}</p>
    <p><strong>Placed By:</strong> {{.PlacedBy}}</p>
    {{- if .PlacedAt}}
    <p><strong>Order Placed:</strong> {{.PlacedAt}}</p>
    {{- end}}
  </div>
  <div style="background: #fff; padding: 20px; border: 1px solid #ddd; border-radius: 8px; margin-bottom: 20px;">
    <h3 style="color: #333; margin-top: 0;">Items Ordered</h3>
    <ul style="padding-left: 20px;">
      {{- range .Items}}
      <li><strong>{{.Name}}</strong> - Quantity: {{.Quantity}}</li>
      {{- end}}
    </ul>
  </div>
  {{- if .StaffNote}}
  <div style="background: #e8f4f8; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h3 style="color: #333; margin-top: 0;">Staff Notes</h3>
    <p style="margin: 0; white-space: pre-wrap;">{{.StaffNote}}</p>
  </div>
  {{- end}}
  <div style="text-align: center; margin-top: 30px; color: #666;">
    <p>This is an automated notification from {{.Signature}}.</p>
    <p>Please check the admin panel for full details and to manage this order.</p>
  </div>
</div>
`))

func (m *orderMessage) emailHTML(signature string) (string, error) {
	var buf bytes.Buffer

	view := *m
	view.Signature = signature

	if err := orderEmailTemplate.Execute(&buf, &view); err != nil {
		return "", errors.Wrap(err, "failed to render order email")
	}

	return buf.String(), nil
}

// pushContent renders the short push title and body.
func (m *orderMessage) pushContent() (title, body string) {
	total := 0
	for _, item := range m.Items {
		total += item.Quantity
	}

	title = fmt.Sprintf("🍽️ New Order #%s", m.OrderNumber)
	body = fmt.Sprintf("%s · %s · %d items for %s", m.Location, m.PlacedBy, total, m.DeliveryDate)

	return title, body
}

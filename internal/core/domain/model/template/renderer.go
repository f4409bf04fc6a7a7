package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ordernotify/internal/core/domain/model/order"
	"ordernotify/internal/core/domain/model/settings"
)

// Render substitutes every known placeholder token in tmpl with the
// corresponding value from the order and settings. Substitution is global and
// literal (no pattern matching), so tokens containing brace metacharacters
// cannot break the replacement. Tokens outside the vocabulary are left
// verbatim. Pure function: same inputs, same output.
func Render(tmpl string, o *order.Order, cfg settings.Settings) string {
	customer := o.Customer()
	discountPct := cfg.AdvanceDiscountPercentage()
	advancePrice := math.Round(customer.Price * (1 - discountPct/100))

	replacer := strings.NewReplacer(
		TokenCustomerName, customer.Name,
		TokenOrderID, o.ID(),
		TokenPhoneNumber, customer.Phone,
		TokenAddress, customer.Address,
		TokenCity, customer.City,
		TokenTotalAmount, fmt.Sprintf("%s %.0f", customer.CurrencySymbol, customer.Price),
		TokenCurrencySymbol, customer.CurrencySymbol,
		TokenPaymentMethod, customer.PaymentMethod,
		TokenDeliveryMethod, customer.DeliveryMethod,
		TokenOrderTimestamp, o.OrderedAt().Format("02/01/2006"),
		TokenItemsList, itemsList(o.Items()),
		TokenTrackingNumber, o.TrackingNumber(),
		TokenTrackingLink, trackingLink(o, cfg),
		TokenLatestCourierStatus, o.LatestCourierStatus(),
		TokenAdvancePaymentPrice, fmt.Sprintf("%s %.0f", customer.CurrencySymbol, advancePrice),
		TokenPaymentAccount, cfg.PaymentAccountNumber(),
		TokenPaymentAccountName, cfg.PaymentAccountName(),
		TokenDiscountPercentage, strconv.FormatFloat(discountPct, 'f', -1, 64),
		TokenAppStatus, o.AppStatus().String(),
	)
	return replacer.Replace(tmpl)
}

// itemsList renders the order lines as one "- name (Qty: n)" line each, or a
// stock "no item details" sentence when the order has no lines.
func itemsList(items []order.Item) string {
	if len(items) == 0 {
		return "- _Order items ki tafseel mojood nahi._"
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s (Qty: %d)", item.Name, item.Quantity))
	}
	return strings.Join(lines, "\n")
}

// trackingLink builds the public tracking URL, or "N/A" when no consignment
// number is assigned yet.
func trackingLink(o *order.Order, cfg settings.Settings) string {
	if !o.HasTrackingNumber() {
		return "N/A"
	}
	return cfg.TrackingLinkPrefix() + o.TrackingNumber()
}

package template

// Placeholder tokens recognized by the renderer. Tokens keep their double
// brace delimiters so templates read the same in storage, in the settings UI,
// and here.
const (
	TokenCustomerName        = "{{customerName}}"
	TokenOrderID             = "{{orderId}}"
	TokenPhoneNumber         = "{{phoneNumber}}"
	TokenAddress             = "{{address}}"
	TokenCity                = "{{city}}"
	TokenTotalAmount         = "{{totalAmount}}"
	TokenCurrencySymbol      = "{{currencySymbol}}"
	TokenPaymentMethod       = "{{paymentMethod}}"
	TokenDeliveryMethod      = "{{deliveryMethod}}"
	TokenOrderTimestamp      = "{{orderTimestamp}}"
	TokenItemsList           = "{{itemsList}}"
	TokenTrackingNumber      = "{{trackingNumber}}"
	TokenTrackingLink        = "{{trackingLink}}"
	TokenLatestCourierStatus = "{{latestCourierStatus}}"
	TokenAdvancePaymentPrice = "{{advancePaymentPrice}}"
	TokenPaymentAccount      = "{{paymentAccountNumber}}"
	TokenPaymentAccountName  = "{{paymentAccountName}}"
	TokenDiscountPercentage  = "{{discountPercentage}}"
	TokenAppStatus           = "{{appStatus}}"
)

// AllTokens returns the full placeholder vocabulary.
func AllTokens() []string {
	return []string{
		TokenCustomerName, TokenOrderID, TokenPhoneNumber, TokenAddress,
		TokenCity, TokenTotalAmount, TokenCurrencySymbol, TokenPaymentMethod,
		TokenDeliveryMethod, TokenOrderTimestamp, TokenItemsList,
		TokenTrackingNumber, TokenTrackingLink, TokenLatestCourierStatus,
		TokenAdvancePaymentPrice, TokenPaymentAccount, TokenPaymentAccountName,
		TokenDiscountPercentage, TokenAppStatus,
	}
}

// Definition describes one intent's message template as stored and edited.
type Definition struct {
	// Name is the operator-facing display name of the template.
	Name string
	// Template is the message text with placeholder tokens.
	Template string
	// Description explains when the message is sent.
	Description string
	// Placeholders lists the tokens that make sense for this intent; the
	// settings UI shows them as hints. The renderer does not enforce the list.
	Placeholders []string
}

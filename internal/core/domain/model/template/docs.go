// Package template maps notification intents to editable message templates and
// renders them against an order.
//
// Resolution checks an operator-provided override first and falls back to the
// built-in default for the intent. When neither exists the resolver returns a
// visibly flagged error string instead of blank content, so a misconfigured
// intent shows up in the message preview rather than reaching a customer as an
// empty message.
//
// Rendering substitutes tokens from a fixed closed vocabulary. Unknown tokens
// are left verbatim because templates are operator-editable free text; a typo
// in a token name should survive rendering where the operator can see it.
package template

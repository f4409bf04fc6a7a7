package template

import (
	"fmt"

	"ordernotify/internal/core/domain/model/order"
)

// Resolve picks the template definition for an intent: the operator override
// when one exists with non-empty text, otherwise the built-in default. When
// neither exists the returned definition carries an error marker as its
// template text, so the misconfiguration is visible in the rendered message
// instead of producing blank content.
func Resolve(intent order.MessageIntent, overrides map[order.MessageIntent]Definition) Definition {
	if def, ok := overrides[intent]; ok && def.Template != "" {
		return def
	}
	if def, ok := Defaults()[intent]; ok {
		return def
	}
	return Definition{
		Name:     string(intent),
		Template: fmt.Sprintf("Error: Template for %s not found.", intent),
	}
}

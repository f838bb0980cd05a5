package split

import "fmt"

// ValidationError reports a constraint violation with enough detail for the
// caller to build a corrective clarification prompt. Any validation failure
// aborts the whole split with no mutation.
type ValidationError struct {
	Field   string
	Message string
	Allowed string
}

func (e *ValidationError) Error() string {
	if e.Allowed == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s (allowed: %s)", e.Field, e.Message, e.Allowed)
}

// NotInOrderError means the modification named a line that is not part of
// the current order. The engine never silently creates a new line.
type NotInOrderError struct {
	ItemName string
}

func (e *NotInOrderError) Error() string {
	return fmt.Sprintf("could not find %s in your current order", e.ItemName)
}

// Package pipeline runs an ordered list of field checks against a raw
// record and gates entity construction on all of them passing.
//
// The order of checks is part of each entity's contract: when several
// fields are invalid at once, the caller sees the message of the first
// failing check only. Checks after the first failure never run.
package pipeline

// Record is an untyped field mapping supplied by the caller, typically
// decoded from a form or API payload.
type Record map[string]any

// Check names a field and the validator that guards it. Run receives the
// whole record so cross-field checks can read more than one value.
type Check struct {
	Field string
	Run   func(Record) error
}

// Run evaluates checks in order, short-circuiting on the first failure.
// If every check passes, build constructs the entity from the record.
func Run[T any](rec Record, checks []Check, build func(Record) *T) (*T, error) {
	for _, c := range checks {
		if err := c.Run(rec); err != nil {
			return nil, err
		}
	}
	return build(rec), nil
}

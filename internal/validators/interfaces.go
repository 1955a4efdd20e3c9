// Package validators checks sync requests and state before the services act
// on them.
package validators

import "context"

// Validator checks obj. Fields narrows the check to the named fields; with
// none, every rule for the type applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

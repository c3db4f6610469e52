// Package guard detects value objects that bypassed their constructor.
package guard

import "errors"

var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into command and query objects. Its zero value
// marks an instance that was declared as a literal instead of built by NewX.
type ConstructorGuard struct {
	constructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns err (or ErrDefaultConstructorGuard when err is nil) for a
// zero-value guard.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}

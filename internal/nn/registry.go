package nn

import (
	"fmt"
	"maps"
	"slices"
)

// Creator constructs a new, unloaded layer.
type Creator func(opts ...Option) Layer

// registry maps layer type names to constructors. It is fully populated at
// package initialization and never written afterwards.
var registry = map[string]Creator{
	BiasType: func(opts ...Option) Layer { return NewBias(opts...) },
}

// Create returns a new layer of the named type.
func Create(typeName string, opts ...Option) (Layer, error) {
	creator, ok := registry[typeName]
	if !ok {
		return nil, fail(typeName, "create", fmt.Errorf("%w: %q", ErrUnknownLayer, typeName))
	}
	return creator(opts...), nil
}

// Types returns the registered layer type names in sorted order.
func Types() []string {
	return slices.Sorted(maps.Keys(registry))
}

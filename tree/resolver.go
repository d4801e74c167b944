package tree

import (
	"fmt"
	"strings"
)

// Resolver computes the result of Get for a missing path.
// It receives the key exactly as passed to Get and the root mapping Get was called with.
type Resolver func(key any, root *Mapping) (any, error)

// Strict returns a Resolver that fails with ErrUnknownKey naming the missing key.
// A non-empty message is appended to the error.
func Strict(message string) Resolver {
	return func(key any, _ *Mapping) (any, error) {
		if message == "" {
			return nil, fmt.Errorf("%w [%s]", ErrUnknownKey, describeKey(key))
		}

		return nil, fmt.Errorf("%w [%s]: %s", ErrUnknownKey, describeKey(key), message)
	}
}

// resolveDefault returns def, or the result of calling it when it is a resolver.
func resolveDefault(def any, key any, root *Mapping) (any, error) {
	switch resolve := def.(type) {
	case Resolver:
		return resolve(key, root)
	case func(any, *Mapping) (any, error):
		return resolve(key, root)
	default:
		return def, nil
	}
}

func describeKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case []string:
		return strings.Join(k, ".")
	case fmt.Stringer:
		return k.String()
	case []any:
		parts := make([]string, len(k))
		for i, part := range k {
			parts[i] = fmt.Sprint(part)
		}

		return strings.Join(parts, ".")
	default:
		return fmt.Sprint(key)
	}
}

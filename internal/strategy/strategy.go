// Package strategy defines the closed set of authentication strategies a
// generated project can wire in, together with the artifacts each one needs.
package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by Parse for identifiers outside the registry.
var ErrUnknownStrategy = errors.New("unknown authentication strategy")

// Kind identifies one authentication strategy. The zero value is not a valid kind.
type Kind int

const (
	Local Kind = iota + 1
	Bearer
	Google
	Facebook
	Twitter
	Microsoft
	LinkedIn
	Steam
	Amazon
)

// All returns every known kind in canonical order.
func All() []Kind {
	return []Kind{Local, Bearer, Google, Facebook, Twitter, Microsoft, LinkedIn, Steam, Amazon}
}

// IDs returns the identifiers of every known kind in canonical order.
func IDs() []string {
	kinds := All()
	ids := make([]string, len(kinds))
	for i, k := range kinds {
		ids[i] = k.String()
	}
	return ids
}

// Parse resolves an identifier to its Kind. Matching ignores case and
// surrounding whitespace.
func Parse(id string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(id))
	for _, k := range All() {
		if registry[k].ID == needle {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
}

// String returns the strategy identifier, e.g. "google".
func (k Kind) String() string {
	if d, ok := registry[k]; ok {
		return d.ID
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Descriptor returns the artifacts required by k. Descriptors are shared
// and must not be modified by callers.
func (k Kind) Descriptor() Descriptor {
	return registry[k]
}


package digester

import (
	"fmt"
	"maps"
	"slices"

	"xml-digester/property"
)

// SetAttributesRule copies the opening element's XML attributes onto
// same-named properties of the stack top, with the usual descriptor
// pre-check and string coercion.
type SetAttributesRule struct {
	BaseRule

	// IgnoreMissing skips attributes without a matching property instead of
	// failing the parse.
	IgnoreMissing bool
}

func NewSetAttributes() *SetAttributesRule {
	return &SetAttributesRule{}
}

func (r *SetAttributesRule) Begin(_ string, attrs map[string]string) error {
	top, err := r.Digester().Peek()
	if err != nil {
		return err
	}

	// sorted for deterministic failure order
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		if _, ok := property.Describe(top, name); !ok {
			if r.IgnoreMissing {
				r.Digester().Logger().Debug("skipping unmatched attribute",
					"match", r.Digester().Match(), "attribute", name)
				continue
			}
			return fmt.Errorf("%w: attribute %q on %T", ErrNoSuchProperty, name, top)
		}

		if err := property.Set(top, name, attrs[name]); err != nil {
			return fmt.Errorf("assign attribute %q: %w", name, err)
		}
	}
	return nil
}

func (r *SetAttributesRule) String() string {
	return fmt.Sprintf("SetAttributesRule[ignoreMissing=%t]", r.IgnoreMissing)
}

package digester

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"xml-digester/escape"
	"xml-digester/property"
)

// ErrNoSuchProperty reports that the resolved property name has no
// descriptor on the target. The generic setter would silently ignore an
// unknown name, masking configuration mistakes; rules pre-check and fail
// loudly instead.
var ErrNoSuchProperty = errors.New("target has no property with that name")

// PropertySetterRule assigns an element's trimmed body text to a property
// on the top stack object when the element closes.
//
// The property is either fixed at construction, or derived from the matched
// element's local name on every cycle. The derived form combined with a
// wildcard pattern maps all child elements onto parent properties at once.
//
// Captured text is transient, scoped to a single element cycle and cleared
// in Finish whether or not End succeeded. If several body events land in
// one cycle, the last write wins.
type PropertySetterRule struct {
	BaseRule
	propertyName string // empty: derive from the element name at match time
	bodyText     string
}

// NewPropertySetter creates a rule that sets the property named the same as
// the matched element.
func NewPropertySetter() *PropertySetterRule {
	return &PropertySetterRule{}
}

// NewNamedPropertySetter creates a rule that always sets propertyName, no
// matter which element name matched.
func NewNamedPropertySetter(propertyName string) *PropertySetterRule {
	return &PropertySetterRule{propertyName: propertyName}
}

// PropertyName returns the configured property name, empty when the rule
// derives it from the element.
func (r *PropertySetterRule) PropertyName() string { return r.propertyName }

func (r *PropertySetterRule) Body(_, text string) error {
	if logger := r.Digester().Logger(); logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("captured body text",
			"rule", r.String(),
			"match", r.Digester().Match(),
			"text", escape.LogString(text))
	}

	r.bodyText = strings.TrimSpace(text)
	return nil
}

func (r *PropertySetterRule) End(name string) error {
	prop := r.propertyName
	if prop == "" {
		// no configured property, follow the element name
		prop = name
	}

	top, err := r.Digester().Peek()
	if err != nil {
		return err
	}

	if logger := r.Digester().Logger(); logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("setting property",
			"rule", r.String(),
			"match", r.Digester().Match(),
			"target", fmt.Sprintf("%T", top),
			"property", prop,
			"value", escape.LogString(r.bodyText))
	}

	if _, ok := property.Describe(top, prop); !ok {
		return fmt.Errorf("%w: %q on %T", ErrNoSuchProperty, prop, top)
	}

	if err := property.Set(top, prop, r.bodyText); err != nil {
		return fmt.Errorf("assign property %q: %w", prop, err)
	}
	return nil
}

// Finish clears the captured text so nothing leaks into the next cycle.
func (r *PropertySetterRule) Finish() error {
	r.bodyText = ""
	return nil
}

func (r *PropertySetterRule) String() string {
	return "PropertySetterRule[propertyName=" + r.propertyName + "]"
}

package digester

import (
	"fmt"

	"xml-digester/property"
)

// CreateObjectRule pushes a freshly made object when its element opens and
// pops it when the element closes, so rules matched on child elements see
// it as their target. When a parent property is configured, the finished
// object is attached to whatever the pop leaves on top.
type CreateObjectRule struct {
	BaseRule
	factory        func() any
	parentProperty string
}

// NewCreateObject creates a rule around the given factory.
func NewCreateObject(factory func() any) *CreateObjectRule {
	if factory == nil {
		panic("object factory cannot be nil")
	}

	return &CreateObjectRule{factory: factory}
}

// NewCreateObjectAttached additionally attaches the finished object to the
// parent's named property; slice properties collect repeated elements.
func NewCreateObjectAttached(factory func() any, parentProperty string) *CreateObjectRule {
	rule := NewCreateObject(factory)
	rule.parentProperty = parentProperty
	return rule
}

func (r *CreateObjectRule) Begin(string, map[string]string) error {
	r.Digester().Push(r.factory())
	return nil
}

func (r *CreateObjectRule) End(string) error {
	obj, err := r.Digester().Pop()
	if err != nil {
		return err
	}

	if r.parentProperty == "" {
		return nil
	}

	parent, err := r.Digester().Peek()
	if err != nil {
		// the object was the root, there is no parent to attach to
		return nil
	}

	if _, ok := property.Describe(parent, r.parentProperty); !ok {
		return fmt.Errorf("%w: %q on %T", ErrNoSuchProperty, r.parentProperty, parent)
	}

	if err := property.Attach(parent, r.parentProperty, obj); err != nil {
		return fmt.Errorf("attach to property %q: %w", r.parentProperty, err)
	}
	return nil
}

func (r *CreateObjectRule) String() string {
	return "CreateObjectRule[parentProperty=" + r.parentProperty + "]"
}

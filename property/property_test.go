package property_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xml-digester/property"
)

type person struct {
	Name     string `xml:"name"`
	Age      int
	Nickname string `xml:"nick,omitempty"`
	secret   string
}

func ExampleDescribe() {
	target := &person{}

	desc, ok := property.Describe(target, "age")
	fmt.Println(ok, desc.Name, desc.Type)

	desc, ok = property.Describe(target, "nick")
	fmt.Println(ok, desc.Name, desc.Type)

	_, ok = property.Describe(target, "salary")
	fmt.Println(ok)

	// Output:
	// true age int
	// true nick string
	// false
}

func TestDescribeStruct(t *testing.T) {
	t.Parallel()

	t.Run("case-insensitive field match", func(t *testing.T) {
		t.Parallel()

		desc, ok := property.Describe(&person{}, "Age")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeFor[int](), desc.Type)
	})

	t.Run("xml tag wins over field name", func(t *testing.T) {
		t.Parallel()

		_, ok := property.Describe(&person{}, "nickname")
		assert.True(t, ok) // field-name fallback still matches
		desc, ok := property.Describe(&person{}, "nick")
		require.True(t, ok)
		assert.Equal(t, "nick", desc.Name)
	})

	t.Run("unexported fields are invisible", func(t *testing.T) {
		t.Parallel()

		_, ok := property.Describe(&person{}, "secret")
		assert.False(t, ok)
	})

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()

		_, ok := property.Describe(42, "anything")
		assert.False(t, ok)
	})
}

func TestSetStruct(t *testing.T) {
	t.Parallel()

	t.Run("coerces and assigns", func(t *testing.T) {
		t.Parallel()

		target := &person{}
		require.NoError(t, property.Set(target, "age", "30"))
		assert.Equal(t, 30, target.Age)
	})

	t.Run("unknown name silently ignored", func(t *testing.T) {
		t.Parallel()

		target := &person{}
		assert.NoError(t, property.Set(target, "salary", "100"))
		assert.Equal(t, person{}, *target)
	})

	t.Run("conversion failure surfaces", func(t *testing.T) {
		t.Parallel()

		target := &person{}
		err := property.Set(target, "age", "not-a-number")
		assert.ErrorContains(t, err, `property "age"`)
	})

	t.Run("value target is rejected", func(t *testing.T) {
		t.Parallel()

		err := property.Set(person{}, "age", "30")
		assert.ErrorContains(t, err, "not settable")
	})
}

func TestBag(t *testing.T) {
	t.Parallel()

	newBag := func() *property.Bag {
		return property.NewBag().
			Declare("name", reflect.TypeFor[string]()).
			Declare("age", reflect.TypeFor[int]())
	}

	t.Run("descriptor lookup", func(t *testing.T) {
		t.Parallel()

		bag := newBag()
		desc, ok := bag.Descriptor("age")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeFor[int](), desc.Type)

		_, ok = bag.Descriptor("salary")
		assert.False(t, ok)
	})

	t.Run("set through the generic setter", func(t *testing.T) {
		t.Parallel()

		bag := newBag()
		require.NoError(t, property.Set(bag, "age", "30"))

		v, ok := bag.Value("age")
		require.True(t, ok)
		assert.Equal(t, 30, v)
	})

	t.Run("undeclared value rejected", func(t *testing.T) {
		t.Parallel()

		err := newBag().SetValue("salary", 100)
		assert.ErrorContains(t, err, "no declared property")
	})

	t.Run("declared type enforced", func(t *testing.T) {
		t.Parallel()

		err := newBag().SetValue("age", "thirty")
		assert.ErrorContains(t, err, "declared as int")
	})

	t.Run("unknown name silently ignored via Set", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, property.Set(newBag(), "salary", "100"))
	})
}

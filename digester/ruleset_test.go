package digester_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"xml-digester/digester"
)

func ExampleRuleSet_Match() {
	rs := digester.NewRuleSet()
	rs.Add("order/item", digester.NewPropertySetter())
	rs.Add("*/sku", digester.NewNamedPropertySetter("sku"))

	fmt.Println(len(rs.Match("order/item")))
	fmt.Println(len(rs.Match("order/item/sku")))
	fmt.Println(len(rs.Match("nowhere")))

	// Output:
	// 1
	// 1
	// 0
}

func TestRuleSetExactBeatsWildcard(t *testing.T) {
	t.Parallel()

	exact := digester.NewNamedPropertySetter("exact")
	wild := digester.NewNamedPropertySetter("wild")

	rs := digester.NewRuleSet()
	rs.Add("*/name", wild)
	rs.Add("person/name", exact)

	matched := rs.Match("person/name")
	assert.Equal(t, []digester.Rule{exact}, matched)
}

func TestRuleSetLongestWildcardWins(t *testing.T) {
	t.Parallel()

	short := digester.NewNamedPropertySetter("short")
	long := digester.NewNamedPropertySetter("long")

	rs := digester.NewRuleSet()
	rs.Add("*/name", short)
	rs.Add("*/customer/name", long)

	assert.Equal(t, []digester.Rule{long}, rs.Match("order/customer/name"))
	assert.Equal(t, []digester.Rule{short}, rs.Match("order/item/name"))
}

func TestRuleSetWildcardNeedsBoundary(t *testing.T) {
	t.Parallel()

	rs := digester.NewRuleSet()
	rs.Add("*/name", digester.NewPropertySetter())

	assert.Empty(t, rs.Match("nickname"), "suffix must match on a path boundary")
	assert.Len(t, rs.Match("name"), 1, "a bare root element equals the suffix")
}

func TestRuleSetPreservesRegistrationOrder(t *testing.T) {
	t.Parallel()

	first := digester.NewNamedPropertySetter("first")
	second := digester.NewNamedPropertySetter("second")

	rs := digester.NewRuleSet()
	rs.Add("a/b", first)
	rs.Add("a/b", second)

	assert.Equal(t, []digester.Rule{first, second}, rs.Match("a/b"))
}

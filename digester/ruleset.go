package digester

import "strings"

// RuleSet maps match patterns to rules. A pattern is an element path like
// "order/item/sku", or "*/suffix" which matches any path ending with the
// suffix. An exact match wins; among wildcard candidates the longest suffix
// wins, ties going to the earliest registration.
type RuleSet struct {
	byPattern map[string][]Rule
	wildcards []string // registration order
}

func NewRuleSet() *RuleSet {
	return &RuleSet{byPattern: make(map[string][]Rule)}
}

func (rs *RuleSet) Add(pattern string, rule Rule) {
	if _, seen := rs.byPattern[pattern]; !seen && strings.HasPrefix(pattern, "*/") {
		rs.wildcards = append(rs.wildcards, pattern)
	}

	rs.byPattern[pattern] = append(rs.byPattern[pattern], rule)
}

// Match returns the rules registered for the best pattern matching path, in
// registration order. No match returns nil.
func (rs *RuleSet) Match(path string) []Rule {
	if rules, ok := rs.byPattern[path]; ok {
		return rules
	}

	best := ""
	for _, pattern := range rs.wildcards {
		suffix := strings.TrimPrefix(pattern, "*/")
		if path != suffix && !strings.HasSuffix(path, "/"+suffix) {
			continue
		}

		if len(suffix) > len(strings.TrimPrefix(best, "*/")) {
			best = pattern
		}
	}

	if best == "" {
		return nil
	}
	return rs.byPattern[best]
}

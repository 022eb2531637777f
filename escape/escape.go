// Package escape sanitizes untrusted document text before it is echoed into
// log lines, so captured XML content cannot forge log records or inject
// markup into log viewers.
package escape

import "strings"

// javaReplacer handles control characters, quotes and backslash the way
// Java string literals escape them.
var javaReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

// xmlEscapes is ordered: ampersand must be replaced first, otherwise the
// entities introduced by later replacements get double-escaped.
var xmlEscapes = [][2]string{
	{`&`, `&amp;`},
	{`<`, `&lt;`},
	{`>`, `&gt;`},
	{`"`, `&quot;`},
	{`'`, `&apos;`},
}

// Java escapes control characters, quotes and backslashes.
func Java(s string) string {
	return javaReplacer.Replace(s)
}

// XML replaces the five XML special characters with their entities.
func XML(s string) string {
	for _, e := range xmlEscapes {
		if !strings.Contains(s, e[0]) {
			continue
		}
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return s
}

// LogString makes a string safe for logging: Java-style escaping first, then
// XML entity escaping, since some log sinks render in browsers.
func LogString(s string) string {
	return XML(Java(s))
}

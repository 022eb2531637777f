// Package digester walks XML element-boundary events and applies registered
// rules that build and populate objects on a processing stack. Patterns
// select which rules fire for which elements; the rules own all mapping
// behavior, the engine owns ordering and the stack.
package digester

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"xml-digester/stack"
)

// Digester drives an xml.Decoder over a document and fires matching rules
// in element-processing order: Begin on open, then at close Body with the
// accumulated character data, End in reverse registration order, and Finish
// for every fired rule regardless of End's outcome.
//
// A Digester is single-threaded; one instance must not run overlapping
// parses.
type Digester struct {
	rules  *RuleSet
	logger *slog.Logger

	runLogger *slog.Logger
	objects   stack.Stack
	path      []string
	root      any
}

func New(rules *RuleSet, logger *slog.Logger) *Digester {
	if rules == nil {
		rules = NewRuleSet()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Digester{rules: rules, logger: logger}
}

// AddRule registers rule under pattern and wires this engine into it.
func (d *Digester) AddRule(pattern string, rule Rule) {
	rule.SetDigester(d)
	d.rules.Add(pattern, rule)
}

// Logger returns the logger rules should trace through. During a parse it
// carries the run's correlation id.
func (d *Digester) Logger() *slog.Logger {
	if d.runLogger != nil {
		return d.runLogger
	}
	return d.logger
}

// Match returns the element path of the element currently being processed,
// e.g. "order/item/sku".
func (d *Digester) Match() string { return strings.Join(d.path, "/") }

// Push makes obj the current target object. The first object pushed becomes
// the parse result.
func (d *Digester) Push(obj any) {
	if d.objects.Len() == 0 {
		d.root = obj
	}
	d.objects.Push(obj)
}

func (d *Digester) Pop() (any, error) { return d.objects.Pop() }

// Peek returns the current target object without removing it. An empty
// stack is a fatal condition that propagates to the caller.
func (d *Digester) Peek() (any, error) { return d.objects.Peek() }

// frame tracks one open element: the rules it matched and its character
// data, accumulated until the element closes.
type frame struct {
	rules []Rule
	body  strings.Builder
}

// Parse walks the document and returns the root object: the one pushed
// first, or the object already on the stack when Parse was called. Rule
// errors abort the walk after the failing cycle's Finish callbacks ran.
func (d *Digester) Parse(r io.Reader) (any, error) {
	d.path = d.path[:0]
	d.root = nil
	if top, err := d.objects.Peek(); err == nil {
		d.root = top
	}

	d.runLogger = d.logger.With("run", uuid.NewString())
	logger := d.runLogger

	dec := xml.NewDecoder(r)
	var frames []*frame

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading xml token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			d.path = append(d.path, t.Name.Local)
			matched := d.rules.Match(d.Match())
			frames = append(frames, &frame{rules: matched})

			if logger.Enabled(context.Background(), slog.LevelDebug) {
				logger.Debug("element open", "match", d.Match(), "rules", len(matched))
			}

			if err := d.fireBegin(matched, t); err != nil {
				return nil, err
			}

		case xml.CharData:
			if len(frames) > 0 {
				frames[len(frames)-1].body.Write(t)
			}

		case xml.EndElement:
			fr := frames[len(frames)-1]
			frames = frames[:len(frames)-1]

			err := d.fireEnd(fr.rules, t.Name.Local, fr.body.String())
			d.path = d.path[:len(d.path)-1]
			if err != nil {
				return nil, err
			}
		}
	}

	return d.root, nil
}

func (d *Digester) fireBegin(rules []Rule, elem xml.StartElement) error {
	if len(rules) == 0 {
		return nil
	}

	attrs := make(map[string]string, len(elem.Attr))
	for _, a := range elem.Attr {
		attrs[a.Name.Local] = a.Value
	}

	for _, rule := range rules {
		if err := rule.Begin(elem.Name.Local, attrs); err != nil {
			return fmt.Errorf("rule %v begin at %q: %w", rule, d.Match(), err)
		}
	}
	return nil
}

// fireEnd completes one element cycle. Finish runs for every matched rule
// even when Body or End failed, so capture state never leaks into the next
// cycle.
func (d *Digester) fireEnd(rules []Rule, name, text string) (err error) {
	defer func() {
		for _, rule := range rules {
			if ferr := rule.Finish(); ferr != nil && err == nil {
				err = fmt.Errorf("rule %v finish at %q: %w", rule, d.Match(), ferr)
			}
		}
	}()

	if text != "" {
		for _, rule := range rules {
			if err = rule.Body(name, text); err != nil {
				return fmt.Errorf("rule %v body at %q: %w", rule, d.Match(), err)
			}
		}
	}

	for i := len(rules) - 1; i >= 0; i-- {
		if err = rules[i].End(name); err != nil {
			return fmt.Errorf("rule %v end at %q: %w", rules[i], d.Match(), err)
		}
	}
	return nil
}

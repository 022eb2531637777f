package digester

// Rule reacts to element-boundary events for the patterns it is registered
// under. The engine calls Begin when the element opens, Body with the
// accumulated character data, End when the element closes, and Finish after
// End even when End failed, so per-cycle state always resets.
type Rule interface {
	// SetDigester wires the owning engine into the rule before any event.
	SetDigester(d *Digester)

	Begin(name string, attrs map[string]string) error
	Body(name, text string) error
	End(name string) error
	Finish() error
}

// BaseRule is a no-op Rule for embedding; concrete rules override only the
// callbacks they care about.
type BaseRule struct {
	digester *Digester
}

func (r *BaseRule) SetDigester(d *Digester) { r.digester = d }

// Digester returns the engine currently driving this rule.
func (r *BaseRule) Digester() *Digester { return r.digester }

func (r *BaseRule) Begin(string, map[string]string) error { return nil }
func (r *BaseRule) Body(string, string) error             { return nil }
func (r *BaseRule) End(string) error                      { return nil }
func (r *BaseRule) Finish() error                         { return nil }

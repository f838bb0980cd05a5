package domain

import "strings"

// Action is the closed set of canonical modifier actions. Raw modifier
// strings are reduced to one of these at parse time; unknown actions are
// never propagated.
type Action string

const (
	ActionAdd      Action = "add"
	ActionRemove   Action = "remove"
	ActionExtra    Action = "extra"
	ActionLight    Action = "light"
	ActionWellDone Action = "well_done"
	ActionRare     Action = "rare"
)

// ChargesAddon reports whether the action incurs the ingredient's
// additional cost. The raw extra-class synonyms (heavy, double, more,
// additional, lots of) all canonicalize to ActionExtra, so this is the
// only action that charges.
func (a Action) ChargesAddon() bool {
	return a == ActionExtra
}

// Valid reports whether a is a known canonical action.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionExtra, ActionLight, ActionWellDone, ActionRare:
		return true
	}
	return false
}

// actionPatterns maps leading phrases to canonical actions. Order matters:
// longer phrases must precede their prefixes ("hold the" before "hold").
var actionPatterns = []struct {
	prefix string
	action Action
}{
	{"no ", ActionRemove},
	{"without ", ActionRemove},
	{"hold the ", ActionRemove},
	{"hold ", ActionRemove},
	{"remove ", ActionRemove},
	{"exclude ", ActionRemove},
	{"omit ", ActionRemove},
	{"extra ", ActionExtra},
	{"heavy ", ActionExtra},
	{"lots of ", ActionExtra},
	{"loads of ", ActionExtra},
	{"ton of ", ActionExtra},
	{"double ", ActionExtra},
	{"more ", ActionExtra},
	{"additional ", ActionExtra},
	{"light ", ActionLight},
	{"easy on the ", ActionLight},
	{"easy on ", ActionLight},
	{"less ", ActionLight},
	{"minimal ", ActionLight},
	{"reduced ", ActionLight},
	{"sparse ", ActionLight},
	{"well done", ActionWellDone},
	{"well-done", ActionWellDone},
	{"medium rare", ActionRare},
	{"rare", ActionRare},
	{"pink", ActionRare},
	{"add ", ActionAdd},
	{"with ", ActionAdd},
	{"include ", ActionAdd},
	{"plus ", ActionAdd},
}

// ParseModifier splits a raw modifier string into its canonical action and
// ingredient term using fixed lexical rules. Anything that matches no
// pattern is an "add". Parsing is deterministic; there is no scoring here.
func ParseModifier(raw string) (Action, string) {
	s := strings.ToLower(strings.TrimSpace(raw))

	for _, p := range actionPatterns {
		if !strings.HasPrefix(s, p.prefix) {
			continue
		}
		term := strings.TrimSpace(s[len(p.prefix):])
		term = strings.TrimSpace(strings.TrimPrefix(term, "the "))
		return p.action, term
	}

	return ActionAdd, s
}

package domain

import "go.trai.ch/zerr"

// EventKind identifies the kind of version-control event that can fire a
// workflow.
type EventKind string

const (
	// EventPush is a branch push event.
	EventPush EventKind = "push"
	// EventPullRequest is a pull-request event targeting a branch.
	EventPullRequest EventKind = "pull_request"
)

// ParseEventKind converts a string into an EventKind.
func ParseEventKind(s string) (EventKind, error) {
	switch EventKind(s) {
	case EventPush:
		return EventPush, nil
	case EventPullRequest:
		return EventPullRequest, nil
	default:
		return "", zerr.With(ErrUnknownEventKind, "event", s)
	}
}

// Event is the external occurrence a trigger is matched against: an event
// kind plus the branch it concerns. For pull requests the branch is the
// target branch.
type Event struct {
	Kind   EventKind
	Branch string
}

// Rule binds an event kind to a branch filter. An empty Branches list
// matches any branch.
type Rule struct {
	Kind     EventKind
	Branches []string
}

// matches reports whether the rule applies to the given event.
func (r Rule) matches(ev Event) bool {
	if r.Kind != ev.Kind {
		return false
	}
	if len(r.Branches) == 0 {
		return true
	}
	for _, b := range r.Branches {
		if b == ev.Branch {
			return true
		}
	}
	return false
}

// Trigger is the set of rules that decide whether a workflow fires for an
// event. It is immutable after construction.
type Trigger struct {
	rules []Rule
}

// NewTrigger creates a Trigger from the given rules. At least one rule is
// required.
func NewTrigger(rules []Rule) (Trigger, error) {
	if len(rules) == 0 {
		return Trigger{}, ErrNoTrigger
	}
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return Trigger{rules: copied}, nil
}

// Matches reports whether any rule of the trigger applies to the event.
func (t Trigger) Matches(ev Event) bool {
	for _, r := range t.rules {
		if r.matches(ev) {
			return true
		}
	}
	return false
}

// Rules returns a copy of the trigger's rules.
func (t Trigger) Rules() []Rule {
	copied := make([]Rule, len(t.rules))
	copy(copied, t.rules)
	return copied
}

package board

// AssigneeChange says what a move request wants done with a task's assignee.
// The three cases are distinct: most moves request no change at all, an
// explicit empty value means "unassign", and a name means "hand this task to
// that person".
type AssigneeChange struct {
	kind assigneeKind
	name string
}

type assigneeKind int

const (
	assigneeNoChange assigneeKind = iota
	assigneeSet
	assigneeClear
)

// NoChange leaves the task's assignee untouched.
func NoChange() AssigneeChange {
	return AssigneeChange{kind: assigneeNoChange}
}

// SetTo assigns the task to the named person. An empty name is treated as
// Clear, matching what callers that forward raw form values send.
func SetTo(name string) AssigneeChange {
	if name == "" {
		return AssigneeChange{kind: assigneeClear}
	}
	return AssigneeChange{kind: assigneeSet, name: name}
}

// Clear removes the task's assignee.
func Clear() AssigneeChange {
	return AssigneeChange{kind: assigneeClear}
}

// FromOptional maps the wire encoding to the variant: an absent field is no
// change, an empty string is an explicit unassign.
func FromOptional(v *string) AssigneeChange {
	if v == nil {
		return NoChange()
	}
	return SetTo(*v)
}

func (a AssigneeChange) IsNoChange() bool { return a.kind == assigneeNoChange }
func (a AssigneeChange) IsClear() bool    { return a.kind == assigneeClear }
func (a AssigneeChange) IsSet() bool      { return a.kind == assigneeSet }

// Name returns the target person for the Set case.
func (a AssigneeChange) Name() string { return a.name }

package todo

// EditTarget is either None or Editing(id). The zero value is None.
type EditTarget struct {
	id     string
	active bool
}

func None() EditTarget { return EditTarget{} }

func Editing(id string) EditTarget { return EditTarget{id: id, active: true} }

// ID returns the target and whether an edit is active.
func (e EditTarget) ID() (string, bool) { return e.id, e.active }

func (e EditTarget) Active() bool { return e.active }

// Is reports whether id is being edited.
func (e EditTarget) Is(id string) bool { return e.active && e.id == id }

package entity

// Action is a bulk operation applied to selected catalog entities.
type Action string

const (
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionExport     Action = "export"
	ActionDelete     Action = "delete"
)

// Valid reports whether a is a member of the closed action set.
func (a Action) Valid() bool {
	switch a {
	case ActionActivate, ActionDeactivate, ActionExport, ActionDelete:
		return true
	}

	return false
}

// Mutates reports whether the action changes entity state on the backend.
// Export reads data out; it never invalidates the authoritative collection.
func (a Action) Mutates() bool {
	return a != ActionExport
}

func (a Action) String() string {
	return string(a)
}

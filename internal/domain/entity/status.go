package entity

// Status is the approval/visibility state of a catalog entity.
// It is the single source of truth; the legacy is_active boolean carried by
// some gateway payloads is reconciled into it at the infra boundary.
type Status string

const (
	// StatusActive marks an entity that is live and visible in the catalog.
	StatusActive Status = "active"
	// StatusInactive marks an entity that has been switched off by an operator.
	StatusInactive Status = "inactive"
	// StatusPending marks an entity awaiting approval.
	StatusPending Status = "pending"
	// StatusRejected marks an entity that failed approval.
	StatusRejected Status = "rejected"
)

// AllStatuses lists every member of the closed status set.
var AllStatuses = []Status{StatusActive, StatusInactive, StatusPending, StatusRejected}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusRejected:
		return true
	}

	return false
}

func (s Status) String() string {
	return string(s)
}

package model

// Status is the delivery state of a stored message.
type Status string

const (
	StatusReceived         Status = "received"
	StatusRetrying         Status = "retrying"
	StatusPublished        Status = "published"
	StatusFailed           Status = "failed"
	StatusQueued           Status = "queued"
	StatusReprocessPending Status = "reprocess_pending"
	StatusReprocessed      Status = "reprocessed"
	StatusDeleted          Status = "deleted"
)

// Statuses lists every known status in lifecycle order.
var Statuses = []Status{
	StatusReceived,
	StatusRetrying,
	StatusPublished,
	StatusFailed,
	StatusQueued,
	StatusReprocessPending,
	StatusReprocessed,
	StatusDeleted,
}

// sources maps a target status to the statuses it may be entered from.
// StatusDeleted is reachable from anything and is handled in AllowedFrom.
var sources = map[Status][]Status{
	StatusReceived:         {StatusReceived},
	StatusRetrying:         {StatusReceived, StatusRetrying, StatusReprocessPending},
	StatusPublished:        {StatusReceived, StatusRetrying},
	StatusFailed:           {StatusRetrying, StatusReprocessPending},
	StatusQueued:           {StatusFailed},
	StatusReprocessPending: {StatusFailed, StatusQueued},
	StatusReprocessed:      {StatusReprocessPending, StatusRetrying},
}

// AllowedFrom returns the statuses from which target may be entered.
func AllowedFrom(target Status) []Status {
	if target == StatusDeleted {
		out := make([]Status, 0, len(Statuses)-1)
		for _, s := range Statuses {
			if s != StatusDeleted {
				out = append(out, s)
			}
		}

		return out
	}

	return sources[target]
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to Status) bool {
	for _, s := range AllowedFrom(to) {
		if s == from {
			return true
		}
	}

	return false
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}

	return false
}

// Terminal reports whether s ends the normal delivery flow.
func (s Status) Terminal() bool {
	return s == StatusPublished || s == StatusReprocessed || s == StatusDeleted
}

// TimestampColumn returns the column stamped when entering s, if any.
func (s Status) TimestampColumn() string {
	switch s {
	case StatusPublished:
		return "published_at"
	case StatusFailed:
		return "failed_at"
	case StatusQueued:
		return "queued_at"
	case StatusReprocessPending:
		return "reprocess_requested_at"
	case StatusReprocessed:
		return "reprocessed_at"
	case StatusDeleted:
		return "deleted_at"
	default:
		return ""
	}
}

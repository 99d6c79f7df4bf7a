package domain

// SessionState is a snapshot of one conversation instance: the ordered
// message log, the requests still waiting on the backend, and whether
// new submissions are currently accepted.
//
// Snapshots are defensive copies. Only the session engine mutates the
// live state; readers never observe a partially applied change.
type SessionState struct {
	Messages    []Message
	Pending     []PendingRequest
	InputLocked bool
}

// MessageCount reports user and assistant entries, excluding the
// greeting seeded at session start.
func (s SessionState) MessageCount() int {
	n := len(s.Messages)
	if n > 0 && s.Messages[0].ID == 0 {
		n--
	}
	return n
}

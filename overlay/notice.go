package overlay

import "time"

// NoticeDuration is how long a status message stays on screen
const NoticeDuration = 3 * time.Second

// Notice is a transient status message, e.g. the snapshot confirmation
type Notice struct {
	Message  string
	IssuedAt time.Time
}

// NewNotice arms a notice at now
func NewNotice(message string, now time.Time) *Notice {
	return &Notice{Message: message, IssuedAt: now}
}

// Active reports whether the notice is less than NoticeDuration old at now
func (n *Notice) Active(now time.Time) bool {
	if n == nil {
		return false
	}
	return now.Sub(n.IssuedAt) < NoticeDuration
}

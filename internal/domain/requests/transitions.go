package requests

import "errors"

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var ErrInvalidTransition = errors.New("invalid purchase request transition")

// transitions is the full lifecycle: pending may be decided by the artist
// (approved/rejected) or withdrawn by the buyer (cancelled); a sale is
// confirmed out of band by completing an approved request. rejected,
// cancelled and completed are terminal.
var transitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted},
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ArtistAction reports whether the target status is one only the artwork's
// artist (or an admin) may set. Cancellation is the buyer's move and is the
// only non-artist transition.
func ArtistAction(to string) bool {
	switch to {
	case StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

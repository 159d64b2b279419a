package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
)

// Entry is one recorded submission attempt. Error is empty for a success.
type Entry struct {
	ID         string               `json:"id"`
	UserID     string               `json:"userID"`
	Kind       attendance.EventKind `json:"typeCheckInOut"`
	OccurredAt string               `json:"dateCheckInOut"`
	CreatedAt  time.Time            `json:"timestamp"`
	Error      string               `json:"error,omitempty"`
}

// NewEntry records payload as attempted at createdAt. errMsg is empty for a
// successful attempt.
func NewEntry(payload attendance.Payload, createdAt time.Time, errMsg string) Entry {
	return Entry{
		ID:         uuid.NewString(),
		UserID:     payload.UserID,
		Kind:       payload.Kind,
		OccurredAt: payload.OccurredAt,
		CreatedAt:  createdAt,
		Error:      errMsg,
	}
}

// Succeeded reports whether the attempt was accepted.
func (e Entry) Succeeded() bool {
	return e.Error == ""
}

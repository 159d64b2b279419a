package attendance

import (
	"net/url"
	"strconv"
)

// Payload is one attendance event as submitted. Build it with NewPayload.
type Payload struct {
	UserID     string    `json:"userID"`
	Kind       EventKind `json:"typeCheckInOut"`
	OccurredAt string    `json:"dateCheckInOut"`
}

// NewPayload builds the payload for userID submitting kind at date + tod.
func NewPayload(userID string, kind EventKind, date, tod string) Payload {
	return Payload{
		UserID:     userID,
		Kind:       kind,
		OccurredAt: FormatPayloadDate(date, tod),
	}
}

// Query returns the request query parameters for the payload.
func (p Payload) Query() url.Values {
	q := url.Values{}
	q.Set("userId", p.UserID)
	q.Set("typeCheckInOut", strconv.Itoa(int(p.Kind)))
	q.Set("dateCheckInOut", p.OccurredAt)
	return q
}

package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/nvquaan/con-bo-cham-chi/internal/history"
	"github.com/nvquaan/con-bo-cham-chi/internal/submission"
	"github.com/stretchr/testify/assert"
)

func TestPrintOutcome(t *testing.T) {
	payload := attendance.NewPayload("BO-9988", attendance.CheckOut, "2024-03-05", "17:45:10")

	buf := new(bytes.Buffer)
	printOutcome(buf, submission.Outcome{Kind: submission.KindSuccess, Payload: payload, EventKind: attendance.CheckOut})
	assert.Contains(t, buf.String(), "✔")
	assert.Contains(t, buf.String(), "CHECK-OUT at 05-03-2024 17:45:10 submitted")

	buf.Reset()
	printOutcome(buf, submission.Outcome{Kind: submission.KindHTTP, StatusCode: 502, Message: "HTTP 502: server rejected the submission"})
	assert.Contains(t, buf.String(), "✘")
	assert.Contains(t, buf.String(), "HTTP 502")
}

func TestPrintHistory(t *testing.T) {
	buf := new(bytes.Buffer)
	printHistory(buf, nil, 15)
	assert.Contains(t, buf.String(), "History (0/15)")
	assert.Contains(t, buf.String(), "no attempts yet")

	created := time.Date(2024, 3, 5, 8, 21, 0, 0, time.UTC)
	ok := history.NewEntry(attendance.NewPayload("BO-9988", attendance.CheckIn, "2024-03-05", "08:20:15"), created, "")
	failed := history.NewEntry(attendance.NewPayload("BO-9988", attendance.CheckOut, "2024-03-05", "17:40:15"), created, "HTTP 500: server rejected the submission")

	buf.Reset()
	printHistory(buf, []history.Entry{failed, ok}, 10)
	out := buf.String()
	assert.Contains(t, out, "History (2/10)")
	assert.Contains(t, out, ok.ID[:8])
	assert.Contains(t, out, "05-03-2024 08:20:15")
	assert.Contains(t, out, "HTTP 500")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("17:40:15")), bytes.Index(buf.Bytes(), []byte("08:20:15")))
}

func TestPrintSelectionFlagsInvalidTime(t *testing.T) {
	buf := new(bytes.Buffer)
	printSelection(buf, "2024-03-05", attendance.CheckIn, "8:20")

	assert.Contains(t, buf.String(), "05-03-2024")
	assert.Contains(t, buf.String(), "expected HH:MM:SS")
	assert.Contains(t, buf.String(), "08:13:00–08:29:59")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "01234567", shortID("0123456789"))
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execDates(monthFlag string) (string, error) {
	stdout := new(bytes.Buffer)
	err := runDates(newTestCmd(stdout), monthFlag, fixedNow)
	return stdout.String(), err
}

func TestDatesCurrentMonth(t *testing.T) {
	stdout, err := execDates("")

	require.NoError(t, err)
	assert.Contains(t, stdout, "March 2024")
	assert.Contains(t, stdout, "01-03-2024  Fri")
	assert.NotContains(t, stdout, "02-03-2024")
	assert.Contains(t, stdout, "05-03-2024  Tue  today")
	assert.Equal(t, 21, strings.Count(stdout, "-2024"))
}

func TestDatesOtherMonth(t *testing.T) {
	stdout, err := execDates("2024-02")

	require.NoError(t, err)
	assert.Contains(t, stdout, "February 2024")
	assert.Contains(t, stdout, "29-02-2024  Thu")
	assert.NotContains(t, stdout, "today")
}

func TestDatesInvalidMonth(t *testing.T) {
	_, err := execDates("03/2024")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --month format")
}

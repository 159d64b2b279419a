package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stepSource returns 0, 1, 2, ... on successive draws.
type stepSource struct{ next int }

func (s *stepSource) IntN(n int) int {
	v := s.next % n
	s.next++
	return v
}

func TestSamplerInitialCandidates(t *testing.T) {
	s := NewSampler(&stepSource{}, "2024-03-05")

	assert.Equal(t, "2024-03-05", s.Date())
	assert.Equal(t, "08:13:00", s.For(CheckIn))
	assert.Equal(t, "17:33:01", s.For(CheckOut))
}

func TestSamplerKindToggleKeepsCandidates(t *testing.T) {
	s := NewSampler(&stepSource{}, "2024-03-05")
	in := s.For(CheckIn)
	out := s.For(CheckOut)

	for i := 0; i < 3; i++ {
		assert.Equal(t, in, s.For(CheckIn))
		assert.Equal(t, out, s.For(CheckOut))
	}
}

func TestSamplerDateChange(t *testing.T) {
	s := NewSampler(&stepSource{}, "2024-03-05")
	in := s.For(CheckIn)

	assert.False(t, s.DateChanged("2024-03-05"))
	assert.Equal(t, in, s.For(CheckIn))

	assert.True(t, s.DateChanged("2024-03-06"))
	assert.Equal(t, "2024-03-06", s.Date())
	assert.NotEqual(t, in, s.For(CheckIn))
}

func TestSamplerSubmitted(t *testing.T) {
	s := NewSampler(&stepSource{}, "2024-03-05")
	in, out := s.For(CheckIn), s.For(CheckOut)

	s.Submitted()

	assert.NotEqual(t, in, s.For(CheckIn))
	assert.NotEqual(t, out, s.For(CheckOut))
	assert.Equal(t, "2024-03-05", s.Date())
}

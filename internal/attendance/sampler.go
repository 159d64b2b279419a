package attendance

// Sampler holds the current candidate time for each kind.
//
// Candidates are redrawn when the selected date actually changes and after a
// completed submission. Asking for the other kind never redraws; it returns
// that kind's held candidate.
type Sampler struct {
	src   Source
	date  string
	times map[EventKind]string
}

// NewSampler creates a sampler seeded for date.
func NewSampler(src Source, date string) *Sampler {
	if src == nil {
		src = DefaultSource
	}
	s := &Sampler{src: src, date: date}
	s.resample()
	return s
}

func (s *Sampler) resample() {
	s.times = map[EventKind]string{
		CheckIn:  Sample(CheckIn, s.src),
		CheckOut: Sample(CheckOut, s.src),
	}
}

// Date returns the date the current candidates belong to.
func (s *Sampler) Date() string { return s.date }

// For returns the held candidate for kind.
func (s *Sampler) For(kind EventKind) string {
	return s.times[windowKind(kind)]
}

func windowKind(kind EventKind) EventKind {
	if kind == CheckIn {
		return CheckIn
	}
	return CheckOut
}

// DateChanged redraws the candidates if date differs from the current one
// and reports whether it did.
func (s *Sampler) DateChanged(date string) bool {
	if date == s.date {
		return false
	}
	s.date = date
	s.resample()
	return true
}

// Submitted redraws the candidates after a completed submission.
func (s *Sampler) Submitted() {
	s.resample()
}

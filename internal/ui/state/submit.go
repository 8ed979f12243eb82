package state

// SubmitPhase tracks a modal's save request.
type SubmitPhase int

const (
	SubmitIdle SubmitPhase = iota
	SubmitSubmitting
	SubmitFailed
)

func (p SubmitPhase) String() string {
	switch p {
	case SubmitSubmitting:
		return "submitting"
	case SubmitFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Submit is the busy flag of the open modal. Every Begin issues a new
// sequence number; Reset keeps the counter so numbers are never reused.
type Submit struct {
	Phase SubmitPhase
	Err   error
	seq   uint64
}

// Begin moves to Submitting and returns the sequence number of the new
// request. It returns 0 when a request is already in flight, in which case
// the caller must not send another.
func (s *Submit) Begin() uint64 {
	if s.Phase == SubmitSubmitting {
		return 0
	}
	s.seq++
	s.Phase = SubmitSubmitting
	s.Err = nil
	return s.seq
}

// Owns reports whether seq is the request currently in flight.
func (s Submit) Owns(seq uint64) bool {
	return seq != 0 && s.Phase == SubmitSubmitting && s.seq == seq
}

// Fail records a failed request and allows a retry.
func (s *Submit) Fail(err error) {
	s.Phase = SubmitFailed
	s.Err = err
}

// Reset returns to Idle.
func (s *Submit) Reset() {
	s.Phase = SubmitIdle
	s.Err = nil
}

// Busy reports whether a request is in flight.
func (s Submit) Busy() bool {
	return s.Phase == SubmitSubmitting
}

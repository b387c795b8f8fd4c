package catalog

// sequencer orders responses for one entity list. Every dispatched request takes a
// token; a full-replace response is applied only when no newer response has been
// applied yet. Local patches always apply but still advance the watermark.
// The owning catalog's mutex guards it.
type sequencer struct {
	issued  uint64
	applied uint64
}

func (s *sequencer) next() uint64 {
	s.issued++
	return s.issued
}

// replaceable reports whether a full-replace response for token is still current
func (s *sequencer) replaceable(token uint64) bool {
	return token > s.applied
}

func (s *sequencer) mark(token uint64) {
	if token > s.applied {
		s.applied = token
	}
}

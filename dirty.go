package gui

// markDirty records that a layout pass is needed.
// Called by Invalidate and by tree mutations under this System.
func (s *System) markDirty() {
	if s == nil {
		return
	}
	s.pending.Store(true)
}

// checkAndClearDirty returns true if a pass is pending and clears the flag.
func (s *System) checkAndClearDirty() bool {
	return s.pending.Swap(false)
}

// Pending reports whether anything was invalidated since the last pass.
func (s *System) Pending() bool {
	return s.pending.Load()
}

// countMeasure and countArrange feed PassStats. Detached trees have no
// System and are not counted.
func (s *System) countMeasure() {
	if s != nil {
		s.stats.Measured++
	}
}

func (s *System) countArrange() {
	if s != nil {
		s.stats.Arranged++
	}
}

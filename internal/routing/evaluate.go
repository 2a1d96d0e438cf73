package routing

import "math/rand/v2"

// IsComplete reports whether the current route is a finished tour: every
// demand cell visited and the vehicle back at the depot. A depot-only route
// is never complete. Pure predicate; completion effects live in
// ApplyCompletion.
func (s *PuzzleState) IsComplete() bool {
	return len(s.Visited) == len(s.Demands) &&
		s.Current() == s.Depot &&
		len(s.Route) > 1
}

// Distance is the number of links traversed by the route, revisits included.
func Distance(route []Coord) int {
	return max(0, len(route)-1)
}

// Deviation is the percentage increase of the re-routed distance over the
// initial one; 0 when the initial distance is zero.
func Deviation(initial, reroute int) float64 {
	if initial == 0 {
		return 0
	}
	return float64(reroute-initial) / float64(initial) * 100
}

// ApplyCompletion applies the effects of a finished tour and reports whether
// anything changed. Completing the initial tour records its distance,
// generates the road closures from the just-walked route, and restarts the
// walk in the re-route phase; completing the re-route tour records the final
// distance and deviation. No-op while the tour is unfinished or after the
// instance is already completed.
func (s *PuzzleState) ApplyCompletion(r *rand.Rand) bool {
	if !s.IsComplete() || s.Completed {
		return false
	}
	switch s.Phase {
	case Initial:
		s.InitialDistance = Distance(s.Route)
		s.Closed = makeClosures(s.Route, r)
		s.Phase = Reroute
		s.Reset()
		Log.Debugf("initial tour complete: distance=%d closures=%d",
			s.InitialDistance, len(s.Closed))
	case Reroute:
		s.RerouteDistance = Distance(s.Route)
		s.DeviationPct = Deviation(s.InitialDistance, s.RerouteDistance)
		s.Completed = true
		Log.Debugf("re-route complete: distance=%d deviation=%.1f%%",
			s.RerouteDistance, s.DeviationPct)
	}
	return true
}

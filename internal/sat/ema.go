package sat

// restartEMA holds the fast and slow exponential moving averages of
// learned-clause LBD that drive the restart predicate, ported directly
// from microsat's fast/slow update. Both are integer fixed-point
// accumulators, not a generic float64 EMA: microsat's update rule is
// tied to specific bit shifts (fast decays at 1/32 per update, slow at
// 1/32768), which a generic decay-rate type would only obscure, so the
// shift arithmetic is kept explicit here.
type restartEMA struct {
	fast int64
	slow int64
}

// newRestartEMA initializes both averages to 1<<24, matching microsat.
func newRestartEMA() restartEMA {
	const init = 1 << 24
	return restartEMA{fast: init, slow: init}
}

// update folds in the LBD of a freshly learned clause.
func (e *restartEMA) update(lbd int) {
	e.fast -= e.fast >> 5
	e.fast += int64(lbd) << 15
	e.slow -= e.slow >> 15
	e.slow += int64(lbd) << 5
}

// shouldRestart implements microsat's restart predicate: the recent
// glue average exceeds 1.25x the long-term average.
func (e *restartEMA) shouldRestart() bool {
	return e.fast > (e.slow/100)*125
}

// clampFast pins fast to exactly the restart threshold, which the strict
// comparison in shouldRestart does not count as exceeded, so the
// predicate does not immediately re-fire on the next conflict.
func (e *restartEMA) clampFast() {
	e.fast = (e.slow / 100) * 125
}

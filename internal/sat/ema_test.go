package sat

import "testing"

func TestRestartEMA_InitialState(t *testing.T) {
	e := newRestartEMA()
	const init = 1 << 24
	if e.fast != init || e.slow != init {
		t.Fatalf("newRestartEMA() = %+v, want fast=slow=%d", e, init)
	}
	if e.shouldRestart() {
		t.Fatal("a freshly initialized EMA should not already request a restart")
	}
}

func TestRestartEMA_HighLBDTriggersRestart(t *testing.T) {
	e := newRestartEMA()
	// A run of high-LBD lemmas drags fast up much faster than slow, since
	// fast decays at 1/32 per update and slow at 1/32768: this should
	// eventually cross the 1.25x threshold.
	fired := false
	for i := 0; i < 64; i++ {
		e.update(50)
		if e.shouldRestart() {
			fired = true
			break
		}
	}
	if !fired {
		t.Fatal("shouldRestart() never fired under a sustained high-LBD run")
	}
}

func TestRestartEMA_ClampFastStopsImmediateRefire(t *testing.T) {
	e := newRestartEMA()
	for i := 0; i < 64 && !e.shouldRestart(); i++ {
		e.update(50)
	}
	if !e.shouldRestart() {
		t.Fatal("setup failed: expected shouldRestart() to be true before clamping")
	}
	e.clampFast()
	if e.shouldRestart() {
		t.Fatal("shouldRestart() is still true immediately after clampFast()")
	}
}

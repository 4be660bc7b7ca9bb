package lifecycle

import "testing"

func TestDefaultLifecycleIsNoop(t *testing.T) {
	lc := MakeDefaultLifecycle("noop", 10)
	lc.OnStart(10)
	lc.OnChunk(5)
	lc.OnEnd()
}

func TestProgressBarsAcceptEvents(t *testing.T) {
	lc := MakeProgressBars("bytes", 4)
	lc.OnStart(4)
	lc.OnChunk(4)
	lc.OnEnd()

	lc = MakeCountProgressBars("ops", 3)
	lc.OnStart(3)
	for i := 0; i < 3; i++ {
		lc.OnChunk(1)
	}
	lc.OnEnd()
}

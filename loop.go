package frond

import "github.com/frondlabs/frond/internal"

type (
	// Loop schedules resumptions of the engine's work loop. The engine
	// hands each continuation to the adapter; the adapter decides when it
	// runs. Tasks must execute on the goroutine that owns the engine.
	Loop = internal.Loop

	// RunLoop is a caller-driven task queue drained via Run or Tick.
	RunLoop = internal.RunLoop
)

// NewRunLoop creates an empty caller-driven loop.
func NewRunLoop() *RunLoop {
	return internal.NewRunLoop()
}

// TimerLoop adapts a GUI toolkit's zero-delay single-shot timer primitive
// into a Loop.
func TimerLoop(singleShot func(fn func())) Loop {
	return internal.NewTimerLoop(singleShot)
}

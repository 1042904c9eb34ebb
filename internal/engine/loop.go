package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Loop is the cooperative polling driver: one iteration tests the tick
// source and, on a tick, samples the input once, steps once and renders
// once, in that order.
type Loop struct {
	Engine *Engine
	Ticks  core.TickSource
	Input  core.InputSource
	Out    core.Renderer
}

// Poll runs one loop iteration. It reports whether a step ran.
func (l *Loop) Poll() (StepResult, bool) {
	if !l.Ticks.Tick() {
		return StepResult{}, false
	}
	res := l.Engine.Step(l.Input.CurrentButtons())
	l.Engine.Render(l.Out)
	return res, true
}

package headless

import (
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Result summarizes a headless run.
type Result struct {
	State core.GameState
	Ticks int // Ticks actually simulated
}

// Run resets g with cfg and feeds it frames, one per tick, then idle
// frames up to maxTicks. It stops early when the game ends.
// A maxTicks of zero runs exactly the scripted frames.
func Run(g registry.Game, cfg core.RuntimeConfig, frames []core.InputFrame, maxTicks int) Result {
	if maxTicks <= 0 {
		maxTicks = len(frames)
	}

	g.Reset(cfg)
	idle := core.NewInputFrame()
	res := Result{State: g.State()}
	for res.Ticks < maxTicks && !res.State.GameOver {
		in := idle
		if res.Ticks < len(frames) {
			in = frames[res.Ticks]
		}
		res.State = g.Step(in).State
		res.Ticks++
	}
	return res
}

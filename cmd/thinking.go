package cmd

import (
	"io"
	"time"

	"github.com/briandowns/spinner"

	"rbnim/engine"
	"rbnim/game"
	"rbnim/searcher"
)

// thinkingAgent spins on w while the wrapped agent picks its move.
type thinkingAgent struct {
	agent engine.Agent
	w     io.Writer
}

func newThinkingAgent(agent engine.Agent, w io.Writer) *thinkingAgent {
	return &thinkingAgent{agent: agent, w: w}
}

func (t *thinkingAgent) FindMove(state game.State, role game.Role) (game.Move, searcher.SearchMetrics, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(t.w))
	s.Suffix = " " + role.String() + " is thinking..."
	s.Start()
	defer s.Stop()

	return t.agent.FindMove(state, role)
}

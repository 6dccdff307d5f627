package engine

import (
	"fmt"
	"io"
	"time"

	"rbnim/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Engine struct {
	State  game.State
	First  game.Role
	Agents map[game.Role]Agent
	out    io.Writer
}

// LocalEngine seats one agent per role. The transcript of the game is written to out.
func LocalEngine(state game.State, first game.Role, agents map[game.Role]Agent, out io.Writer) *Engine {
	for _, role := range []game.Role{game.Human, game.Computer} {
		if agents[role] == nil {
			panic(fmt.Sprintf("no agent seated for %s", role))
		}
	}
	if out == nil {
		out = io.Discard
	}

	return &Engine{
		State:  state,
		First:  first,
		Agents: agents,
		out:    out,
	}
}

// Run plays the game to the end and declares the winner.
func (e *Engine) Run() (Result, error) {
	result := Result{
		First:     e.First,
		StartTime: time.Now(),
	}

	log.Debug().Msgf("%s is starting from %s (%s)", e.First, e.State, e.State.Variant())

	state := e.State
	current := e.First
	step := 1
	for !state.IsTerminal() {
		e.printState(state)

		move, metrics, err := e.Agents[current].FindMove(state, current)
		if err != nil {
			return result, fmt.Errorf("turn %d (%s): %w", step, current, err)
		}
		if !lo.Contains(state.LegalMoves(), move) {
			return result, fmt.Errorf("turn %d (%s): %w %s from %s", step, current, ErrIllegalMove, move, state)
		}
		fmt.Fprintf(e.out, "Chosen move by %s: %s\n", current, move)

		next, err := state.Play(move)
		if err != nil {
			return result, fmt.Errorf("turn %d (%s): %w", step, current, err)
		}

		result.Turns = append(result.Turns, Turn{
			Step:    step,
			Player:  current,
			Move:    move,
			Metrics: metrics,
		})
		state = next
		current = current.Opponent()
		step++
	}

	e.printState(state)

	winner, _ := state.Winner(current)
	result.Winner = winner
	result.Score = state.Score()
	result.Final = state
	result.Duration = time.Since(result.StartTime)
	e.State = state

	fmt.Fprintf(e.out, "Game Over! %s wins!\n", cases.Title(language.English).String(winner.String()))
	fmt.Fprintf(e.out, "Winning score difference: %d\n", result.Score)

	log.Debug().Msgf("game over after %d moves, winner: %s", len(result.Turns), winner)

	return result, nil
}

func (e *Engine) printState(state game.State) {
	fmt.Fprintf(e.out, "Current game state: %s\n", state)
}

// Package game drives a wave through the title, play, pause and game-over screens.
package game

import "fmt"

// State is a screen of the game.
type State int

const (
	Inactive State = iota // Title screen
	Loading               // Building a new wave; lasts no longer than one Update
	Active                // Wave in play
	Paused                // Ship destroyed, waiting for the player to continue
	Continue              // Respawning the ship; lasts no longer than one Update
	Complete              // Wave won or lost, waiting for a restart
)

var stateNames = [...]string{
	Inactive: "inactive",
	Loading:  "loading",
	Active:   "active",
	Paused:   "paused",
	Continue: "continue",
	Complete: "complete",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// transitions lists the states reachable from each state.
var transitions = map[State][]State{
	Inactive: {Loading},
	Loading:  {Active},
	Active:   {Paused, Complete},
	Paused:   {Continue},
	Continue: {Active},
	Complete: {Loading},
}

// CanTransition reports whether the controller may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

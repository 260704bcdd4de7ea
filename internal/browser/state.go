// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package browser holds the paging state machine. It knows nothing about the
// terminal: a UI feeds it Events and draws the Frames it produces.
package browser

// Event is a discrete user input.
type Event int

const (
	// Ignored is any input without a binding.
	Ignored Event = iota
	NextPage
	PrevPage
	Quit
)

func (e Event) String() string {
	switch e {
	case NextPage:
		return "next-page"
	case PrevPage:
		return "prev-page"
	case Quit:
		return "quit"
	default:
		return "ignored"
	}
}

// State is the browser position. PageSize, KeyCount and PageCount are fixed
// for the session; PageIndex stays in [0, PageCount).
type State struct {
	PageIndex int
	PageSize  int
	KeyCount  int
	PageCount int
}

// HasNext reports whether a later page exists.
func (s State) HasNext() bool { return s.PageIndex+1 < s.PageCount }

// HasPrev reports whether an earlier page exists.
func (s State) HasPrev() bool { return s.PageIndex > 0 }

// CommandKind tells the caller what a transition requires.
type CommandKind int

const (
	// None means nothing changed and nothing is redrawn.
	None CommandKind = iota
	// Load means the page at Command.PageIndex must be fetched and rendered.
	Load
	// Exit ends the session.
	Exit
)

// Command is the side effect requested by Transition.
type Command struct {
	Kind      CommandKind
	PageIndex int
}

// Transition is the pure state function. Navigation past either end is a
// no-op without wraparound.
func Transition(s State, ev Event) (State, Command) {
	switch ev {
	case NextPage:
		if !s.HasNext() {
			return s, Command{Kind: None}
		}
		s.PageIndex++
		return s, Command{Kind: Load, PageIndex: s.PageIndex}
	case PrevPage:
		if !s.HasPrev() {
			return s, Command{Kind: None}
		}
		s.PageIndex--
		return s, Command{Kind: Load, PageIndex: s.PageIndex}
	case Quit:
		return s, Command{Kind: Exit}
	default:
		return s, Command{Kind: None}
	}
}

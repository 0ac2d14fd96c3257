// Package search implements incremental search over a rows.Store.
//
// A Session is fed every key typed into the search prompt together with the
// current query. Each step undoes the Match highlight of the previous hit,
// then looks for the next row containing the query, wrapping around at
// either end of the document.
package search

import (
	"src.elv.sh/kilo/pkg/rows"
	"src.elv.sh/kilo/pkg/ui"
	"src.elv.sh/kilo/pkg/view"
)

// Action is what a key means to a search session.
type Action int

// Possible Action values.
const (
	QueryChanged Action = iota
	NavigateForward
	NavigateBackward
	Confirm
	Cancel
)

func (a Action) String() string {
	switch a {
	case QueryChanged:
		return "QueryChanged"
	case NavigateForward:
		return "NavigateForward"
	case NavigateBackward:
		return "NavigateBackward"
	case Confirm:
		return "Confirm"
	case Cancel:
		return "Cancel"
	}
	return "Action(?)"
}

// ActionOf returns the action of a key typed into the search prompt. Keys
// without a special meaning edit the query.
func ActionOf(k ui.Key) Action {
	switch k {
	case ui.Enter:
		return Confirm
	case ui.Escape:
		return Cancel
	case ui.ArrowRight, ui.ArrowDown:
		return NavigateForward
	case ui.ArrowLeft, ui.ArrowUp:
		return NavigateBackward
	}
	return QueryChanged
}

type state struct {
	// Row of the last hit, or -1.
	LastMatch int
	// 1 or -1.
	Direction int
	// Set after Confirm or Cancel.
	Done bool
}

var initial = state{LastMatch: -1, Direction: 1}

// next is the transition function of a session.
func next(s state, a Action) state {
	switch a {
	case Confirm, Cancel:
		done := initial
		done.Done = true
		return done
	case NavigateForward:
		s.Direction = 1
	case NavigateBackward:
		s.Direction = -1
	default:
		s.LastMatch = -1
		s.Direction = 1
	}
	if s.LastMatch == -1 {
		// Without a previous hit there is nothing to go back from.
		s.Direction = 1
	}
	s.Done = false
	return s
}

// Hit is the position of a match.
type Hit struct {
	Row int
	// Byte offset into the row.
	Cx int
}

// Session is the state of one search prompt.
type Session struct {
	st state
	// Highlight of the row of the last hit, before it was marked.
	savedRow     int
	savedClasses []rows.Class
}

// NewSession returns a new Session.
func NewSession() *Session {
	return &Session{st: initial, savedRow: -1}
}

// Step advances the session with a key, given the query as edited by that
// key. The scan steps away from the last hit, or from row fromRow when there
// is none, so fromRow itself is examined last. When a row contains the query, its
// span is highlighted as Match and Step returns the hit and true.
func (s *Session) Step(store *rows.Store, query string, k ui.Key, fromRow int) (Hit, bool) {
	s.restore(store)
	s.st = next(s.st, ActionOf(k))
	if s.st.Done || query == "" {
		return Hit{}, false
	}

	n := store.NumRows()
	dir := s.st.Direction
	current := s.st.LastMatch
	if current == -1 {
		current = fromRow
	}
	for i := 0; i < n; i++ {
		current += dir
		if current < 0 {
			current = n - 1
		} else if current >= n {
			current = 0
		}
		if off := store.Find(current, query); off >= 0 {
			s.st.LastMatch = current
			s.savedRow = current
			s.savedClasses = store.Classes(current)
			store.MarkMatch(current, off, len(query))
			return Hit{Row: current, Cx: view.RxToCx(store.Row(current).Chars(), off)}, true
		}
	}
	return Hit{}, false
}

// Done reports whether the session has been confirmed or cancelled.
func (s *Session) Done() bool { return s.st.Done }

func (s *Session) restore(store *rows.Store) {
	if s.savedClasses != nil {
		store.RestoreClasses(s.savedRow, s.savedClasses)
		s.savedClasses = nil
		s.savedRow = -1
	}
}

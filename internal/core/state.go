package core

import (
	"github.com/lumipallolabs/codemap/internal/model"
	"github.com/lumipallolabs/codemap/internal/scanner"
)

// StatusCycles is how many render cycles a status message stays visible
const StatusCycles = 30

// Status is a transient message shown below the list
type Status struct {
	Message   string
	Remaining int // render cycles left
	IsError   bool
}

// Visible reports whether the message should be drawn
func (s Status) Visible() bool {
	return s.Message != "" && s.Remaining > 0
}

// BrowserState is a read-only snapshot of the browser
type BrowserState struct {
	Path         string
	Entries      []model.Entry
	Selected     int
	Offset       int
	ViewportRows int
	Order        scanner.Order
	Status       Status
}

// SelectedEntry returns the entry under the cursor
func (s BrowserState) SelectedEntry() (model.Entry, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Entries) {
		return model.Entry{}, false
	}
	return s.Entries[s.Selected], true
}

// Visible returns the entries inside the viewport
func (s BrowserState) Visible() []model.Entry {
	if s.Offset >= len(s.Entries) {
		return nil
	}
	end := s.Offset + s.ViewportRows
	if end > len(s.Entries) {
		end = len(s.Entries)
	}
	return s.Entries[s.Offset:end]
}

// Aggregate returns the stats of the "." entry
func (s BrowserState) Aggregate() model.Stats {
	for _, e := range s.Entries {
		if e.Name == model.CurrentDir && e.Stats != nil {
			return *e.Stats
		}
	}
	return model.Stats{}
}

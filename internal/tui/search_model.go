package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akyairhashvil/timeflow/internal/models"
)

type SearchManager struct {
	Input   textinput.Model
	Results []models.Task
	Cursor  int
}

func NewSearchManager(input textinput.Model) SearchManager {
	return SearchManager{
		Input: input,
	}
}

func (s *SearchManager) Reset() {
	s.Input.Reset()
	s.Results = nil
	s.Cursor = 0
}

func (s SearchManager) Selected() (models.Task, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return models.Task{}, false
	}
	return s.Results[s.Cursor], true
}

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/storage"
)

type fakeHistory struct {
	top    []storage.SessionRecord
	player map[string][]storage.SessionRecord
	err    error
}

func (f *fakeHistory) TopSessions(limit int) ([]storage.SessionRecord, error) {
	return f.top, f.err
}

func (f *fakeHistory) PlayerSessions(player string, limit int) ([]storage.SessionRecord, error) {
	return f.player[player], f.err
}

func (f *fakeHistory) Stats() (*storage.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &storage.Stats{Games: len(f.top), HighScore: 1200}, nil
}

func newHistory() *fakeHistory {
	now := time.Now()
	return &fakeHistory{
		top: []storage.SessionRecord{
			{ID: 2, Player: "bob", Score: 1200, Level: 3, Rows: 31, CreatedAt: now},
			{ID: 1, Player: "ann", Score: 40, Rows: 1, CreatedAt: now},
		},
		player: map[string][]storage.SessionRecord{
			"ann": {{ID: 1, Player: "ann", Score: 40, Rows: 1, CreatedAt: now}},
		},
	}
}

func TestScoreboardShowsTopGames(t *testing.T) {
	m := NewScoreboardModel(newHistory(), "ann", 100, 30)

	if len(m.Records()) != 2 {
		t.Fatalf("Records() = %d, want 2", len(m.Records()))
	}
	view := m.View()
	for _, want := range []string{"Top games", "1200", "bob", "2 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	m := NewScoreboardModel(newHistory(), "ann", 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.Records()) != 1 || m.Records()[0].Player != "ann" {
		t.Errorf("player view records = %+v", m.Records())
	}
	if !strings.Contains(m.View(), "My recent games") {
		t.Error("title should name the player view")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.Records()) != 2 {
		t.Errorf("tab should switch back to top games, got %d records", len(m.Records()))
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	empty := NewScoreboardModel(&fakeHistory{}, "ann", 100, 30)
	if !strings.Contains(empty.View(), "No games recorded yet") {
		t.Error("empty history should show a hint")
	}

	broken := NewScoreboardModel(&fakeHistory{err: errors.New("locked")}, "ann", 100, 30)
	if !strings.Contains(broken.View(), "locked") {
		t.Error("load error should be shown")
	}

	none := NewScoreboardModel(nil, "ann", 100, 30)
	if len(none.Records()) != 0 {
		t.Error("nil store should list nothing")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(newHistory(), "ann", 100, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("back should quit the program")
	}
	if next.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(openModelStore(t), "asteroids", 80, 24)
	view := m.View()
	if !strings.Contains(view, "No games played yet") || !strings.Contains(view, "No finished games") {
		t.Errorf("empty scoreboard:\n%s", view)
	}

	// Works without a database too
	if view := NewScoreboardModel(nil, "asteroids", 80, 24).View(); !strings.Contains(view, "HIGH SCORES") {
		t.Errorf("scoreboard without store:\n%s", view)
	}
}

func TestScoreboardSummary(t *testing.T) {
	store := openModelStore(t)
	store.SaveScore("asteroids", 100)
	store.SaveScore("asteroids", 300)
	store.SaveScore("other", 9000)
	if err := store.HighScores("asteroids").Write(450); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, "asteroids", 100, 30)
	if len(m.scores) != 2 {
		t.Fatalf("scores = %d, expected 2", len(m.scores))
	}

	// The kept best beats the finished-game maximum
	summary := m.summary()
	if !strings.Contains(summary, "Games 2") || !strings.Contains(summary, "Best 450") || !strings.Contains(summary, "Average 200") {
		t.Errorf("summary() = %q", summary)
	}
	if strings.Contains(m.View(), "9000") {
		t.Error("scoreboard should only list its own game")
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		back bool
		quit bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, true, false},
		{"q", runeKey('q'), false, true},
		{"scroll", tea.KeyMsg{Type: tea.KeyDown}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, "asteroids", 80, 24)
			next, _ := m.Update(tc.msg)
			sb := next.(ScoreboardModel)
			if sb.IsGoingBack() != tc.back || sb.IsQuitting() != tc.quit {
				t.Errorf("back %v quit %v, expected %v %v", sb.IsGoingBack(), sb.IsQuitting(), tc.back, tc.quit)
			}
		})
	}
}

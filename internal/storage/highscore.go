package storage

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// HighScoreKeeper persists one game's best score as a single setting.
// It satisfies core.HighScoreStore.
type HighScoreKeeper struct {
	store *Store
	key   string
}

// HighScores returns the keeper for gameID.
func (s *Store) HighScores(gameID string) *HighScoreKeeper {
	return &HighScoreKeeper{store: s, key: HighScoreKey(gameID)}
}

// HighScoreKey is the settings key holding a game's best score.
func HighScoreKey(gameID string) string {
	return gameID + ".highscore"
}

// Read returns the stored best score. Missing, unreadable or malformed
// values report false so the caller starts from zero.
func (k *HighScoreKeeper) Read() (int, bool) {
	raw, ok, err := k.store.Setting(k.key)
	if err != nil {
		log.Warn("cannot read high score", "key", k.key, "err", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		log.Warn("ignoring malformed high score", "key", k.key, "value", raw)
		return 0, false
	}
	return v, true
}

// Write stores score synchronously.
func (k *HighScoreKeeper) Write(score int) error {
	return k.store.SetSetting(k.key, strconv.Itoa(score))
}

// Reset forgets the stored best score.
func (k *HighScoreKeeper) Reset() error {
	return k.store.DeleteSetting(k.key)
}

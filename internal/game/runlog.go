package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunLog summarizes one session. A line is appended to runs.jsonl when
// the player quits or dies.
type RunLog struct {
	Seed          int64  `json:"seed"`
	Mode          string `json:"mode"`
	FloorsReached int    `json:"floors_reached"`
	PlayerLevel   int    `json:"player_level"`
	TurnsPlayed   int    `json:"turns_played"`
	EnemiesKilled int    `json:"enemies_killed"`
	ItemsPickedUp int    `json:"items_picked_up"`
	DamageTaken   int    `json:"damage_taken"`
	Died          bool   `json:"died"`
}

const runLogFile = "runs.jsonl"

func saveRunLog(log RunLog) error {
	path, err := runLogPath()
	if err != nil {
		return fmt.Errorf("locate run log: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	if err := json.NewEncoder(f).Encode(log); err != nil {
		f.Close()
		return fmt.Errorf("append run log: %w", err)
	}
	return f.Close()
}

// runLogPath is $XDG_DATA_HOME/bsp-roguelike/runs.jsonl, with
// XDG_DATA_HOME defaulting to ~/.local/share.
func runLogPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "bsp-roguelike", runLogFile), nil
}

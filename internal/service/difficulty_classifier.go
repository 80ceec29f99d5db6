package service

import (
	"strings"

	"github.com/csprep/backend/internal/model"
)

// DifficultyClassifier maps free-text difficulty labels to the ordinal
// levels stored on questions, and back to display labels.
type DifficultyClassifier interface {
	// Classify is deliberately lossy: "medium" and "hard" substrings are
	// recognized case-insensitively, everything else (including "easy",
	// empty, garbage) lands on the lowest level. Ingestion never fails on
	// difficulty text.
	Classify(raw string) int
	// Label returns the display label for a level ("Low"/"Medium"/"Hard").
	Label(level int) string
	// Level resolves a display label case-insensitively; ok=false for
	// anything unrecognized.
	Level(label string) (int, bool)
}

type difficultyClassifier struct{}

func NewDifficultyClassifier() DifficultyClassifier {
	return &difficultyClassifier{}
}

func (c *difficultyClassifier) Classify(raw string) int {
	label := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(label, "medium"):
		return model.DifficultyMedium
	case strings.Contains(label, "hard"):
		return model.DifficultyHard
	default:
		return model.DifficultyLow
	}
}

func (c *difficultyClassifier) Label(level int) string {
	switch level {
	case model.DifficultyMedium:
		return "Medium"
	case model.DifficultyHard:
		return "Hard"
	default:
		return "Low"
	}
}

func (c *difficultyClassifier) Level(label string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "low":
		return model.DifficultyLow, true
	case "medium":
		return model.DifficultyMedium, true
	case "hard":
		return model.DifficultyHard, true
	default:
		return 0, false
	}
}

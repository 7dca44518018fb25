package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/triqui/internal/apperror"
)

// Difficulty selects the opponent's move strategy.
type Difficulty int

const (
	Easy Difficulty = iota
	Harder
	Expert
)

func (that Difficulty) String() string {
	switch that {
	case Easy:
		return "easy"
	case Harder:
		return "harder"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(that))
	}
}

func (that Difficulty) IsValid() bool {
	return that >= Easy && that <= Expert
}

// ParseDifficulty accepts the label of a level, ignoring case and surrounding spaces.
func ParseDifficulty(label string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return Easy, nil
	case "harder":
		return Harder, nil
	case "expert":
		return Expert, nil
	default:
		return Easy, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, label)
	}
}

// DifficultyFromOrdinal is the inverse of int(Difficulty).
func DifficultyFromOrdinal(ordinal int) (Difficulty, error) {
	difficulty := Difficulty(ordinal)
	if !difficulty.IsValid() {
		return Easy, fmt.Errorf("%w: ordinal %d", apperror.ErrUnknownDifficulty, ordinal)
	}
	return difficulty, nil
}

func (that Difficulty) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: ordinal %d", apperror.ErrUnknownDifficulty, int(that))
	}
	return []byte(that.String()), nil
}

func (that *Difficulty) UnmarshalText(text []byte) error {
	difficulty, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*that = difficulty
	return nil
}

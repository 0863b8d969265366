package game

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// Difficulty names a board shape: grid size and mine count.
type Difficulty struct {
	Name     string `yaml:"name"`
	Cols     int    `yaml:"cols"`
	Rows     int    `yaml:"rows"`
	NumMines int    `yaml:"mines"`
}

// The built-in presets, matching the classic game.
var (
	Beginner     = Difficulty{Name: "beginner", Cols: 9, Rows: 9, NumMines: 10}
	Intermediate = Difficulty{Name: "intermediate", Cols: 16, Rows: 16, NumMines: 40}
	Expert       = Difficulty{Name: "expert", Cols: 30, Rows: 16, NumMines: 99}
)

// Presets returns the built-in difficulties, easiest first.
func Presets() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Expert}
}

// PresetByName looks up a built-in difficulty case-insensitively.
func PresetByName(name string) (Difficulty, bool) {
	for _, preset := range Presets() {
		if strings.EqualFold(preset.Name, name) {
			return preset, true
		}
	}
	return Difficulty{}, false
}

// Validate applies the board construction rules without building a board.
func (difficulty Difficulty) Validate() error {
	return validateConfig(difficulty.Cols, difficulty.Rows, difficulty.NumMines)
}

func (difficulty Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)",
		difficulty.Name, difficulty.Cols, difficulty.Rows, difficulty.NumMines)
}

// LoadDifficulties reads a YAML list of difficulties, as used for custom
// preset files:
//
//	- name: classroom
//	  cols: 12
//	  rows: 8
//	  mines: 14
//
// Every entry must carry a name and describe a playable board.
func LoadDifficulties(in io.Reader) ([]Difficulty, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	var difficulties []Difficulty
	if err := yaml.Unmarshal(data, &difficulties); err != nil {
		return nil, err
	}

	for i, difficulty := range difficulties {
		if difficulty.Name == "" {
			return nil, fmt.Errorf("difficulty %d: missing name", i)
		}
		if err := difficulty.Validate(); err != nil {
			return nil, fmt.Errorf("difficulty %q: %w", difficulty.Name, err)
		}
	}
	return difficulties, nil
}

package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 3)

	assert.Equal(t, Difficulty{Name: "beginner", Cols: 9, Rows: 9, NumMines: 10}, presets[0])
	assert.Equal(t, Difficulty{Name: "intermediate", Cols: 16, Rows: 16, NumMines: 40}, presets[1])
	assert.Equal(t, Difficulty{Name: "expert", Cols: 30, Rows: 16, NumMines: 99}, presets[2])

	for _, preset := range presets {
		assert.NoError(t, preset.Validate())
	}
}

func TestPresetByName(t *testing.T) {
	preset, ok := PresetByName("expert")
	require.True(t, ok)
	assert.Equal(t, Expert, preset)

	preset, ok = PresetByName("InTeRmEdIaTe")
	require.True(t, ok)
	assert.Equal(t, Intermediate, preset)

	_, ok = PresetByName("nightmare")
	assert.False(t, ok)
}

func TestDifficultyValidate(t *testing.T) {
	assert.NoError(t, Difficulty{Name: "ok", Cols: 4, Rows: 4, NumMines: 15}.Validate())

	err := Difficulty{Name: "bad", Cols: 4, Rows: 4, NumMines: 16}.Validate()
	var configErr InvalidConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, 16, configErr.NumMines)
}

func TestDifficultyString(t *testing.T) {
	assert.Equal(t, "beginner (9x9, 10 mines)", Beginner.String())
}

func TestLoadDifficulties(t *testing.T) {
	in := strings.NewReader(`
- name: classroom
  cols: 12
  rows: 8
  mines: 14
- name: huge
  cols: 40
  rows: 20
  mines: 150
`)

	difficulties, err := LoadDifficulties(in)
	require.NoError(t, err)
	require.Len(t, difficulties, 2)

	assert.Equal(t, Difficulty{Name: "classroom", Cols: 12, Rows: 8, NumMines: 14}, difficulties[0])
	assert.Equal(t, Difficulty{Name: "huge", Cols: 40, Rows: 20, NumMines: 150}, difficulties[1])
}

func TestLoadDifficultiesRejectsMissingName(t *testing.T) {
	in := strings.NewReader(`
- cols: 12
  rows: 8
  mines: 14
`)

	_, err := LoadDifficulties(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name")
}

func TestLoadDifficultiesRejectsUnplayable(t *testing.T) {
	in := strings.NewReader(`
- name: solid-mines
  cols: 3
  rows: 3
  mines: 9
`)

	_, err := LoadDifficulties(in)
	require.Error(t, err)

	var configErr InvalidConfigError
	assert.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "solid-mines")
}

func TestLoadDifficultiesRejectsMalformedYAML(t *testing.T) {
	_, err := LoadDifficulties(strings.NewReader("{not: [valid"))
	assert.Error(t, err)
}

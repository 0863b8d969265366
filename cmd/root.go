package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dlwoals256/minesweeper/director/constraint"
	"github.com/dlwoals256/minesweeper/director/random"
	"github.com/dlwoals256/minesweeper/game"
)

var (
	gameConfig     = game.NewGameConfig()
	difficultyName = game.Beginner.Name
	directorName   directorValue
	configPath     string
	width          uint
	height         uint
	numMines       uint
	seed           int64
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Play manual or computer-driven minesweeper",
	Long: `minesweeper is the classic mine-hunting game, playable by a
human or by the computer.

Run with no arguments to play a beginner board
	minesweeper

Pick a bigger board
	minesweeper --difficulty expert

Use the director flag to make the computer play for you
	minesweeper -d
`,
	Run: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   true,
			FullTimestamp: true,
		})
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		var extra []game.Difficulty
		if configPath != "" {
			file, err := os.Open(configPath)
			if err != nil {
				logrus.WithError(err).Fatal("cannot open the difficulty file")
			}
			extra, err = game.LoadDifficulties(file)
			file.Close()
			if err != nil {
				logrus.WithError(err).Fatal("cannot read the difficulty file")
			}
		}

		difficulty, err := resolveDifficulty(difficultyName, extra)
		if err != nil {
			logrus.WithError(err).Fatal("unknown difficulty")
		}

		flags := cmd.Flags()
		if flags.Changed("width") || flags.Changed("height") || flags.Changed("mines") {
			difficulty.Name = "custom"
			if flags.Changed("width") {
				difficulty.Cols = int(width)
			}
			if flags.Changed("height") {
				difficulty.Rows = int(height)
			}
			if flags.Changed("mines") {
				difficulty.NumMines = int(numMines)
			}
			if err := difficulty.Validate(); err != nil {
				logrus.WithError(err).Fatal("unplayable board")
			}
		}

		gameConfig.Difficulty = difficulty
		gameConfig.Seed = seed
		if directorName != "" {
			gameConfig.Director = directors[string(directorName)]()
		}

		logrus.WithFields(logrus.Fields{
			"difficulty": difficulty,
			"director":   string(directorName),
			"seed":       seed,
		}).Debug("starting")

		pixelgl.Run(func() {
			game.Run(gameConfig)
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func resolveDifficulty(name string, extra []game.Difficulty) (game.Difficulty, error) {
	for _, difficulty := range extra {
		if strings.EqualFold(difficulty.Name, name) {
			return difficulty, nil
		}
	}
	if preset, ok := game.PresetByName(name); ok {
		return preset, nil
	}

	known := make([]string, 0, len(extra)+3)
	for _, preset := range game.Presets() {
		known = append(known, preset.Name)
	}
	for _, difficulty := range extra {
		known = append(known, difficulty.Name)
	}
	return game.Difficulty{}, fmt.Errorf("no difficulty named %q (available: %s)",
		name, strings.Join(known, ", "))
}

var directors = map[string]func() game.Director{
	"random":     func() game.Director { return &random.Director{} },
	"constraint": func() game.Director { return &constraint.Director{} },
}

type directorValue string

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; !isValid {
		return fmt.Errorf("invalid director %q (available: constraint, random)", value)
	}
	*directorVal = directorValue(value)
	return nil
}

func (directorVal *directorValue) Type() string {
	return "game.Director"
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVar(&difficultyName, "difficulty", difficultyName,
		"Difficulty to play: beginner, intermediate, expert, or a name from --config")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"YAML file of extra difficulties")
	rootCmd.Flags().UintVarP(&width, "width", "w", 0,
		"Width of game board, in cells (overrides the difficulty)")
	rootCmd.Flags().UintVarP(&height, "height", "h", 0,
		"Height of game board, in cells (overrides the difficulty)")
	rootCmd.Flags().UintVarP(&numMines, "mines", "m", 0,
		"Number of mines to place in the game board (overrides the difficulty)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0,
		"Seed for mine placement; 0 picks one from the clock")
	rootCmd.Flags().VarP(&directorName, "director", "d",
		"Make the computer play (constraint or random)")
	rootCmd.Flags().Lookup("director").NoOptDefVal = "constraint"
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug detail, including director reasoning")
}

package main

import (
	"fmt"

	"github.com/Seednode/quizbox/game"
	"github.com/spf13/viper"
)

type questionEntry struct {
	ID            int      `mapstructure:"id"`
	Question      string   `mapstructure:"question"`
	Options       []string `mapstructure:"options"`
	CorrectOption int      `mapstructure:"correct_option"`
}

// loadQuestions reads the question file named by --questions, falling
// back to the built-in set when none is configured. File format is
// whatever viper can read (yaml, json, toml) with a top-level
// "questions" list. Validation happens in game.NewCatalog.
func loadQuestions(cfg *Config) ([]game.Quiz, error) {
	if cfg.questions == "" {
		return game.DefaultQuestions(), nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.questions)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading question file %s: %w", cfg.questions, err)
	}

	var entries []questionEntry
	if err := v.UnmarshalKey("questions", &entries); err != nil {
		return nil, fmt.Errorf("parsing question file %s: %w", cfg.questions, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("question file %s contains no questions", cfg.questions)
	}

	quizzes := make([]game.Quiz, 0, len(entries))
	for _, e := range entries {
		quizzes = append(quizzes, game.Quiz{
			ID:            e.ID,
			Question:      e.Question,
			Options:       e.Options,
			CorrectOption: e.CorrectOption,
		})
	}

	return quizzes, nil
}

package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/llm"
)

// loadDotEnv loads .env from the working directory. Variables already set
// in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("error reading .env file", "error", err)
	}
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("ORALEXAM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("oralexam")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/oralexam")
	v.AddConfigPath("/etc/oralexam")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// prepare runs the setup shared by every command: .env, logging and the
// console language.
func prepare(cmd *cobra.Command) (*viper.Viper, error) {
	loadDotEnv()
	setupLogging(cmd)
	v := viperForCmd(cmd)
	if err := i18n.Init(v.GetString("lang")); err != nil {
		return nil, err
	}
	return v, nil
}

func colorEnabled(v *viper.Viper) bool {
	if v.GetBool("no-color") || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// newConsole picks the bubbletea prompt when --tui is set and stdin is a
// terminal, and the line console otherwise.
func newConsole(v *viper.Viper) console.Console {
	color := colorEnabled(v)
	if v.GetBool("tui") && isatty.IsTerminal(os.Stdin.Fd()) {
		return console.NewPromptConsole(os.Stdout, color)
	}
	return console.NewLineConsole(os.Stdin, os.Stdout, color)
}

// llmConfig materializes the provider configuration: ORALEXAM_ variables,
// then the vendors' own API key variables when nothing is configured, then
// flags.
func llmConfig(v *viper.Viper) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()

	if p := v.GetString("llm-provider"); p != "" {
		cfg.Provider = p
	} else if !cfg.HasCredentials() {
		if found, ok := llm.DiscoverConfig(cfg); ok {
			cfg = found
		}
	}
	cfg.SetModel(v.GetString("llm-model"))
	cfg.SetBaseURL(v.GetString("llm-base-url"))
	cfg.Timeout = v.GetDuration("llm-timeout")
	cfg.Retry.MaxAttempts = v.GetInt("llm-retries") + 1

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

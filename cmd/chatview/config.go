package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/chatview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type configOption struct {
	Key     string
	Default any
	Comment string
}

func configOptions() []configOption {
	return []configOption{
		{Key: "role", Default: "assistant", Comment: "Role of messages read from files: user or assistant"},
		{Key: "format", Default: "ansi", Comment: "Output of render: ansi or json"},
		{Key: "renderer", Default: "lipgloss", Comment: "Drawing backend: lipgloss or glamour"},
		{Key: "glamour_style", Default: "auto", Comment: "glamour style: auto, dark, light or dracula"},
		{Key: "width", Default: 0, Comment: "Output width; 0 uses the terminal width, or 80"},
		{Key: "highlight", Default: true, Comment: "Syntax-highlight fenced code"},
		{Key: "clipboard", Default: "system", Comment: "Clipboard used by view: system or osc52"},
		{Key: "replay_chunk", Default: 8, Comment: "Grapheme clusters per replayed delta"},
		{Key: "replay_delay", Default: "30ms", Comment: "Pause between replayed deltas"},
		{Key: "log_level", Default: "info", Comment: "debug, info, warn or error"},
		{Key: "log_file", Default: "", Comment: "Log destination; view discards logs when empty"},
	}
}

// loadConfig resolves configuration with precedence: defaults < file < env.
func loadConfig(v *viper.Viper, cfgPath string) error {
	for _, o := range configOptions() {
		v.SetDefault(o.Key, o.Default)
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	} else {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "chatview"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "chatview"))
		}
		// A missing default config file is fine.
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("chatview")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return nil
}

// applyFlagOverrides copies changed flags into v. Flag names use dashes
// where config keys use underscores.
func applyFlagOverrides(cmd *cobra.Command, v *viper.Viper) {
	for _, o := range configOptions() {
		name := strings.ReplaceAll(o.Key, "_", "-")
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		switch flag.Value.Type() {
		case "bool":
			if val, err := cmd.Flags().GetBool(name); err == nil {
				v.Set(o.Key, val)
			}
		case "int":
			if val, err := cmd.Flags().GetInt(name); err == nil {
				v.Set(o.Key, val)
			}
		default:
			v.Set(o.Key, flag.Value.String())
		}
	}
}

// settings is the validated configuration of one command run.
type settings struct {
	Role         chatview.Role
	Format       string
	Renderer     string
	GlamourStyle string
	Width        int
	Highlight    bool
	Clipboard    string
	ReplayChunk  int
	ReplayDelay  time.Duration
	LogLevel     slog.Level
	LogFile      string
}

func resolveSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Format:       v.GetString("format"),
		Renderer:     v.GetString("renderer"),
		GlamourStyle: v.GetString("glamour_style"),
		Width:        v.GetInt("width"),
		Highlight:    v.GetBool("highlight"),
		Clipboard:    v.GetString("clipboard"),
		ReplayChunk:  v.GetInt("replay_chunk"),
		LogFile:      v.GetString("log_file"),
	}

	role, err := chatview.ParseRole(v.GetString("role"))
	if err != nil {
		return settings{}, err
	}
	s.Role = role

	if err := oneOf("format", s.Format, "ansi", "json"); err != nil {
		return settings{}, err
	}
	if err := oneOf("renderer", s.Renderer, "lipgloss", "glamour"); err != nil {
		return settings{}, err
	}
	if err := oneOf("clipboard", s.Clipboard, "system", "osc52", "osc52-tmux"); err != nil {
		return settings{}, err
	}
	if s.Width < 0 {
		return settings{}, fmt.Errorf("%w: width must not be negative", chatview.ErrValidation)
	}
	if s.ReplayChunk < 1 {
		return settings{}, fmt.Errorf("%w: replay_chunk must be greater than 0", chatview.ErrValidation)
	}

	delay, err := time.ParseDuration(v.GetString("replay_delay"))
	if err != nil || delay < 0 {
		return settings{}, fmt.Errorf("%w: invalid replay_delay %q", chatview.ErrValidation, v.GetString("replay_delay"))
	}
	s.ReplayDelay = delay

	if err := s.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return settings{}, fmt.Errorf("%w: invalid log_level %q", chatview.ErrValidation, v.GetString("log_level"))
	}
	return s, nil
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %s, got %q", chatview.ErrValidation, key, strings.Join(allowed, ", "), value)
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/chatview"
	"github.com/fwojciec/chatview/chroma"
	cvfs "github.com/fwojciec/chatview/fs"
	"github.com/fwojciec/chatview/goldmark"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const defaultWidth = 80

// app carries the streams and resolved configuration of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgPath string
	v       *viper.Viper
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:           "chatview",
		Short:         "Render chat messages with markdown, code blocks and images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.v = viper.New()
			if err := loadConfig(a.v, a.cfgPath); err != nil {
				return err
			}
			applyFlagOverrides(cmd, a.v)
			return nil
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to config file (yaml|toml|json)")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newViewCmd(a))

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }
	return cmd
}

// addMessageFlags registers the flags shared by render and view.
func addMessageFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("role", "assistant", "role of the messages: user or assistant")
	f.String("renderer", "lipgloss", "drawing backend: lipgloss or glamour")
	f.String("glamour-style", "auto", "glamour style: auto, dark, light or dracula")
	f.Int("width", 0, "output width (0 = terminal width)")
	f.Bool("highlight", true, "syntax-highlight fenced code")
	f.String("log-level", "info", "log level: debug, info, warn or error")
	f.String("log-file", "", "write logs to this file")
	f.String("dir", ".", "base directory for --glob")
	f.String("glob", "", "also read files matching this pattern under --dir (supports **)")
}

// presenter builds the goldmark presenter, highlighting code when enabled.
func presenter(s settings) *goldmark.Presenter {
	if !s.Highlight {
		return goldmark.NewPresenter()
	}
	return goldmark.NewPresenter(goldmark.WithHighlighter(chroma.NewHighlighter()))
}

// readMessages loads messages from file arguments, "-" for standard input,
// and files matching --glob. With no source at all, standard input is read.
func (a *app) readMessages(cmd *cobra.Command, args []string, role chatview.Role) ([]chatview.Message, error) {
	dir, _ := cmd.Flags().GetString("dir")
	pattern, _ := cmd.Flags().GetString("glob")

	paths := append([]string(nil), args...)
	if pattern != "" {
		matches, err := cvfs.Glob(dir, pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	msgs := make([]chatview.Message, 0, len(paths))
	for _, p := range paths {
		var (
			msg chatview.Message
			err error
		)
		if p == "-" {
			msg, err = cvfs.Read(a.in, role)
		} else {
			msg, err = cvfs.Load(p, role)
		}
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// width resolves the output width: the configured value, else the width
// of a terminal on out, else 80.
func width(configured int, out io.Writer) int {
	if configured > 0 {
		return configured
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// newLogger builds a text logger at level writing to path, or to fallback
// when path is empty. The returned close function releases the file.
func newLogger(path string, fallback io.Writer, level slog.Level) (*slog.Logger, func() error, error) {
	w, closeFn := fallback, func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

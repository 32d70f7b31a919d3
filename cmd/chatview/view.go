package main

import (
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/fwojciec/chatview"
	bt "github.com/fwojciec/chatview/bubbletea"
	"github.com/fwojciec/chatview/clipboard"
	"github.com/fwojciec/chatview/osc52"
	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file|-]...",
		Short: "Browse messages and copy code blocks interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(a.v)
			if err != nil {
				return err
			}
			// The viewer owns the terminal; logs go to --log-file or nowhere.
			logger, closeLog, err := newLogger(s.LogFile, io.Discard, s.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			msgs, err := a.readMessages(cmd, args, s.Role)
			if err != nil {
				return err
			}

			cfg := bt.Config{
				Presenter: presenter(s),
				Theme:     chatview.DefaultTheme(),
				Clipboard: newClipboard(s.Clipboard, a.out),
				Clock:     clock.New(),
				Logger:    logger,
			}
			replay, _ := cmd.Flags().GetBool("replay")
			if replay && len(msgs) > 0 {
				last := msgs[len(msgs)-1]
				msgs = msgs[:len(msgs)-1]
				cfg.Stream = bt.Replay(last.Content, s.ReplayChunk, s.ReplayDelay, cfg.Clock)
			}
			logger.Info("starting viewer", "messages", len(msgs), "replay", replay, "clipboard", s.Clipboard)

			if err := bt.Run(cmd.Context(), bt.New(cfg, msgs...)); err != nil {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		},
	}
	addMessageFlags(cmd)
	cmd.Flags().String("clipboard", "system", "clipboard: system, osc52 or osc52-tmux")
	cmd.Flags().Bool("replay", false, "stream the last message into the viewer")
	cmd.Flags().Int("replay-chunk", 8, "grapheme clusters per replayed delta")
	cmd.Flags().String("replay-delay", "30ms", "pause between replayed deltas")
	return cmd
}

func newClipboard(kind string, out io.Writer) chatview.Clipboard {
	switch kind {
	case "osc52":
		return &osc52.Clipboard{W: out}
	case "osc52-tmux":
		return &osc52.Clipboard{W: out, Tmux: true}
	default:
		if os.Getenv("SSH_TTY") != "" && os.Getenv("DISPLAY") == "" {
			return &osc52.Clipboard{W: out}
		}
		return clipboard.System{}
	}
}

package main

import (
	"fmt"

	"github.com/fwojciec/chatview"
	"github.com/fwojciec/chatview/glamour"
	cvjson "github.com/fwojciec/chatview/json"
	cvlipgloss "github.com/fwojciec/chatview/lipgloss"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]...",
		Short: "Render messages to standard output",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(a.v)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(s.LogFile, a.errOut, s.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			msgs, err := a.readMessages(cmd, args, s.Role)
			if err != nil {
				return err
			}
			stream, _ := cmd.Flags().GetBool("stream")
			for i := range msgs {
				msgs[i].Streaming = stream
			}

			p := presenter(s)
			var renderer chatview.Renderer = cvlipgloss.NewRenderer(p, chatview.DefaultTheme())
			if s.Renderer == "glamour" {
				renderer, err = glamour.NewRenderer(s.GlamourStyle)
				if err != nil {
					return err
				}
			}
			w := width(s.Width, a.out)
			logger.Debug("rendering", "messages", len(msgs), "format", s.Format, "renderer", s.Renderer, "width", w)

			for i, msg := range msgs {
				if i > 0 {
					fmt.Fprintln(a.out)
				}
				if s.Format == "json" {
					tree, err := p.Present(msg)
					if err != nil {
						return fmt.Errorf("message %d: %w", i, err)
					}
					data, err := cvjson.MarshalTree(tree)
					if err != nil {
						return fmt.Errorf("message %d: %w", i, err)
					}
					fmt.Fprintln(a.out, string(data))
					continue
				}
				out, err := renderer.Render(msg, w)
				if err != nil {
					return fmt.Errorf("message %d: %w", i, err)
				}
				fmt.Fprintln(a.out, out)
			}
			return nil
		},
	}
	addMessageFlags(cmd)
	cmd.Flags().String("format", "ansi", "output format: ansi or json")
	cmd.Flags().Bool("stream", false, "draw messages as still streaming")
	return cmd
}

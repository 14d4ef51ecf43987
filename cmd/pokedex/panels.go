package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/command"
	"github.com/kapu/pokedex-web-go/internal/domain"
)

var searchCmd = &cobra.Command{
	Use:   "search <name-or-id>",
	Short: "Print the detail card of one Pokémon",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := map[string]any{"query": strings.Join(args, " ")}
		return runPanel(cmd, domain.CommandSearch, params, func(t *adapter.TerminalRenderer, r *command.Recorder) string {
			return t.RenderDetail(r.Detail())
		})
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Print every Pokémon of the configured type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPanel(cmd, domain.CommandBatch, nil, func(t *adapter.TerminalRenderer, r *command.Recorder) string {
			return t.RenderGrid(r.Grid())
		})
	},
}

type panelFunc func(*adapter.TerminalRenderer, *command.Recorder) string

// panelError carries an error-tone status out of RunE so the process exits non-zero.
type panelError struct{ status domain.Status }

func (e panelError) Error() string {
	return e.status.Message
}

func runPanel(cmd *cobra.Command, name domain.CommandType, params map[string]any, render panelFunc) error {
	container, cleanup, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	recorder, err := container.Run(cmd.Context(), name.String(), params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render(container.Terminal, recorder))

	status := recorder.Status()
	if line := container.Terminal.RenderStatus(status); line != "" {
		fmt.Fprintln(out, line)
	}

	if status.Tone == domain.ToneError {
		return panelError{status: status}
	}
	return nil
}

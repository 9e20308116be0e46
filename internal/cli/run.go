package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/logging"
	"github.com/aretw0/decisiontree/internal/presentation/tui"
	"github.com/aretw0/decisiontree/pkg/adapters/file"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/ports"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RunOptions configures an interactive traversal.
type RunOptions struct {
	Headless bool
	// Plain disables markdown rendering and colors even on a terminal.
	Plain bool
	// SessionID, when set, resumes and persists the traversal in StateDir.
	SessionID string
	StateDir  string
	// StateKey, when set, encrypts the persisted session.
	StateKey []byte

	Input  io.Reader
	Output io.Writer
	Logger *slog.Logger
}

// RunSession walks tree over the configured IO until an outcome, EOF or
// "exit". With a session ID the cursor is restored first and saved after.
func RunSession(ctx context.Context, tree *decisiontree.Tree, opts RunOptions) error {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var store ports.StateStore
	if opts.SessionID != "" {
		var err error
		store, err = sealStore(file.New(opts.StateDir), opts.StateKey)
		if err != nil {
			return err
		}
		state, err := store.Load(ctx, opts.SessionID)
		switch {
		case err == nil:
			if err := tree.Restore(state); err != nil {
				return fmt.Errorf("cannot resume session %s: %w", opts.SessionID, err)
			}
			logger.Info("Session Resumed", "session_id", opts.SessionID, "node", state.CurrentNode)
			if !opts.Headless {
				fmt.Fprintf(opts.Output, ">>> Resuming at '%s'...\n", state.CurrentNode)
			}
		case errors.Is(err, domain.ErrSessionNotFound):
			logger.Info("Session Created", "session_id", opts.SessionID)
		default:
			return err
		}
	}

	runner := decisiontree.NewRunner(opts.Input, opts.Output)
	runner.Headless = opts.Headless
	if !opts.Headless && !opts.Plain && IsTerminal(opts.Output) {
		out := termenv.NewOutput(opts.Output)
		width := 80
		if f, ok := opts.Output.(*os.File); ok {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		render, err := tui.NewRenderer(width, "")
		if err != nil {
			logger.Warn("markdown rendering disabled", "err", err)
		} else {
			runner.Renderer = render
		}
		runner.Headline = tui.Headline(out)
		runner.Banner = func(title string) { tui.PrintBanner(out, title) }
	}

	runErr := runner.Run(tree)

	if store != nil {
		if err := store.Save(ctx, opts.SessionID, tree.State()); err != nil {
			return errors.Join(runErr, fmt.Errorf("failed to save session: %w", err))
		}
	}
	return runErr
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

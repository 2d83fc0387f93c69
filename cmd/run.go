package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quiztime/internal/config"
	"github.com/abhisek/quiztime/internal/console"
	"github.com/abhisek/quiztime/internal/quiz"
	"github.com/abhisek/quiztime/internal/store"
	"github.com/abhisek/quiztime/internal/ui/components"
)

// runApp loads config, opens the store when recording, and runs quizzes
// until the user stops or input ends.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := quiz.Options{RetryPolicy: cfg.RetryPolicy()}
	if cfg.Record {
		st, err := openRecorder(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: results will not be recorded:", err)
		} else {
			defer st.Close()
			opts.EventRepo = st.EventRepo()
		}
	}

	return runSessions(ctx, newConsole(cmd, cfg), opts)
}

func openRecorder(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return store.Open(dbPath)
}

func newConsole(cmd *cobra.Command, cfg config.Config) *console.Console {
	opts := []console.Option{
		console.WithColor(cfg.Color),
		console.WithMaxAttempts(cfg.MaxAttempts),
	}
	if cfg.TUI {
		term := components.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
		return console.NewWithSource(term, cmd.OutOrStdout(), opts...)
	}
	return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
}

// runSessions builds and administers one quiz after another. End of input
// finishes cleanly; a cancelled ctx stops before the next quiz.
func runSessions(ctx context.Context, c *console.Console, opts quiz.Options) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, err := console.PromptLine(c, "Enter a name for your quiz", console.NotBlank)
		if err != nil {
			return endOfInput(c, err)
		}

		q, err := quiz.Build(strings.TrimSpace(name), c, opts)
		if err != nil {
			return endOfInput(c, err)
		}
		if _, err := q.Run(ctx); err != nil {
			return endOfInput(c, err)
		}

		c.Println()
		n, err := console.PromptInt(c, "Build another quiz?\n1: Yes\n2: No", console.InRange(1, 2))
		if err != nil {
			return endOfInput(c, err)
		}
		if n != 1 {
			c.Println("Goodbye!")
			return nil
		}
	}
}

func endOfInput(c *console.Console, err error) error {
	if errors.Is(err, io.EOF) {
		c.Println()
		return nil
	}
	return err
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/abdullahosa/duo-list/internal/board"
	"github.com/abdullahosa/duo-list/internal/config"
	"github.com/abdullahosa/duo-list/internal/logger"
	"github.com/abdullahosa/duo-list/internal/models"
	"github.com/abdullahosa/duo-list/internal/provision"
	"github.com/abdullahosa/duo-list/internal/storage"
)

type Context struct {
	Store       storage.Provider
	Provisioner *provision.Provisioner
	Config      config.Config
	ConfigDir   string
}

// loadBoard loads and normalizes the shared document. A degraded load is
// reported once and the command keeps going with zero records.
func loadBoard(ctx *Context) board.Table {
	t, err := board.Load(context.Background(), ctx.Store)
	if err != nil {
		logger.Warn("degraded load", "source", ctx.Store.Source(), "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not load activities: %v\n", err)
	}
	return t
}

// loadBoardStrict loads the shared document and fails on any degradation.
// Used by commands that write back, so a half-loaded table never overwrites
// the full document.
func loadBoardStrict(ctx *Context) (board.Table, error) {
	t, err := board.Load(context.Background(), ctx.Store)
	if err != nil {
		return board.Empty(), fmt.Errorf("refusing to modify the board after a degraded load: %w", err)
	}
	return t, nil
}

func parseStatus(s string) (models.Status, error) {
	status := models.Status(s)
	if !models.ValidStatus(status) {
		return "", fmt.Errorf("invalid status %q (one of: To Do, In Progress, Completed)", s)
	}
	return status, nil
}

func validateAttribute(label string, value string, options []string) error {
	if value == "" {
		return nil
	}
	for _, opt := range options {
		if value == opt {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (one of: %v)", label, value, options)
}

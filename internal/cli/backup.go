package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/abdullahosa/duo-list/internal/backup"
	"github.com/abdullahosa/duo-list/internal/board"
	"github.com/abdullahosa/duo-list/internal/logger"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	doc, err := ctx.Store.Fetch(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch document for snapshot: %w", err)
	}

	mgr := backup.NewManager(ctx.ConfigDir)
	path, err := mgr.CreateSnapshot(doc)
	if err != nil {
		return err
	}

	fmt.Printf("Created snapshot: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.ConfigDir)
	snapshots, err := mgr.ListSnapshots()
	if err != nil {
		return err
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots found")
		return nil
	}

	fmt.Println("Snapshots (newest first):")
	for _, snap := range snapshots {
		fmt.Printf("  %s  %s  %d bytes\n",
			snap.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(snap.Path), snap.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" optional:"" help:"Snapshot file to restore. Defaults to the newest."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.ConfigDir)

	path := c.Path
	if path == "" {
		snapshots, err := mgr.ListSnapshots()
		if err != nil {
			return err
		}
		if len(snapshots) == 0 {
			return fmt.Errorf("no snapshots to restore")
		}
		path = snapshots[0].Path
	}

	doc, err := mgr.ReadSnapshot(path)
	if err != nil {
		return err
	}

	t, err := board.Normalize(doc)
	if err != nil {
		return fmt.Errorf("snapshot is not a usable document: %w", err)
	}

	// Snapshot the current document before overwriting it, so a bad restore
	// is itself recoverable.
	if current, err := ctx.Store.Fetch(context.Background()); err == nil {
		if pre, err := mgr.CreateSnapshot(current); err == nil {
			fmt.Printf("Saved current document as: %s\n", filepath.Base(pre))
		} else {
			logger.Warn("failed to snapshot current document before restore", "err", err)
		}
	}

	if err := ctx.Store.Persist(context.Background(), t.Records); err != nil {
		return err
	}

	fmt.Printf("Restored %d activities from %s\n", len(t.Records), filepath.Base(path))
	return nil
}

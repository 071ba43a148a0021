package cli

import (
	"context"
	"fmt"

	"github.com/abdullahosa/duo-list/internal/board"
	"github.com/abdullahosa/duo-list/internal/models"
)

type StatusCmd struct {
	Name     string `arg:"" help:"Activity name to update."`
	Status   string `arg:"" help:"New status (To Do|In Progress|Completed)."`
	Category string `short:"c" help:"Disambiguate when the name exists in several categories."`
}

func (c *StatusCmd) Validate() error {
	if _, err := parseStatus(c.Status); err != nil {
		return err
	}
	if c.Category != "" {
		if _, err := models.OptionsFor(c.Category); err != nil {
			return err
		}
	}
	return nil
}

func (c *StatusCmd) Run(ctx *Context) error {
	t, err := loadBoardStrict(ctx)
	if err != nil {
		return err
	}

	status, err := parseStatus(c.Status)
	if err != nil {
		return err
	}

	var original []models.Record
	for _, rec := range t.Records {
		if rec.Activity != c.Name {
			continue
		}
		if c.Category != "" && rec.Category != c.Category {
			continue
		}
		original = append(original, rec)
	}

	switch len(original) {
	case 0:
		return fmt.Errorf("activity not found: %s", c.Name)
	case 1:
	default:
		return fmt.Errorf("%d activities named %q, disambiguate with --category", len(original), c.Name)
	}

	edited := make([]models.Record, len(original))
	copy(edited, original)
	edited[0].Status = status

	if !board.Reconcile(&t, original, edited) {
		fmt.Printf("%s is already %s\n", c.Name, status)
		return nil
	}

	if err := ctx.Store.Persist(context.Background(), t.Records); err != nil {
		return err
	}

	fmt.Printf("Updated %s: %s\n", c.Name, status)
	return nil
}

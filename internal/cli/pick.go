package cli

import (
	"fmt"

	"github.com/abdullahosa/duo-list/internal/board"
	"github.com/abdullahosa/duo-list/internal/models"
)

type PickCmd struct {
	Category string   `arg:"" help:"Category to pick from."`
	Status   string   `short:"s" help:"Status view." default:"To Do"`
	Type     []string `short:"t" help:"Restrict to these first-attribute values."`
	Vibe     []string `short:"v" help:"Restrict to these second-attribute values."`
}

func (c *PickCmd) Validate() error {
	if _, err := models.OptionsFor(c.Category); err != nil {
		return err
	}
	if _, err := parseStatus(c.Status); err != nil {
		return err
	}
	return nil
}

func (c *PickCmd) Run(ctx *Context) error {
	t := loadBoard(ctx)

	status, err := parseStatus(c.Status)
	if err != nil {
		return err
	}

	rows := board.Filter(t, c.Category, status, c.Type, c.Vibe)
	rec, err := board.PickRandom(rows)
	if err != nil {
		return err
	}

	fmt.Printf("🎲 %s\n", rec.Activity)
	if rec.Type != "" || rec.Vibe != "" {
		fmt.Printf("   %s / %s\n", rec.Type, rec.Vibe)
	}
	if rec.Link != "" {
		fmt.Printf("   Link: %s\n", rec.Link)
	}
	return nil
}

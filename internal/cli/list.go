package cli

import (
	"fmt"

	"github.com/abdullahosa/duo-list/internal/board"
	"github.com/abdullahosa/duo-list/internal/models"
)

type ListCmd struct {
	Category string   `short:"c" help:"Restrict to one category."`
	Status   string   `short:"s" help:"Status view." default:"To Do"`
	Type     []string `short:"t" help:"Restrict to these first-attribute values."`
	Vibe     []string `short:"v" help:"Restrict to these second-attribute values."`
	All      bool     `short:"a" help:"Show every record regardless of status."`
}

func (c *ListCmd) Validate() error {
	if c.Category != "" {
		if _, err := models.OptionsFor(c.Category); err != nil {
			return err
		}
	}
	if _, err := parseStatus(c.Status); err != nil {
		return err
	}
	return nil
}

func (c *ListCmd) Run(ctx *Context) error {
	t := loadBoard(ctx)

	if c.All {
		if len(t.Records) == 0 {
			fmt.Println("No activities found")
			return nil
		}
		printRecords(t.Records)
		return nil
	}

	status, err := parseStatus(c.Status)
	if err != nil {
		return err
	}

	categories := models.Categories
	if c.Category != "" {
		categories = []string{c.Category}
	}

	total := 0
	for _, category := range categories {
		rows := board.Filter(t, category, status, c.Type, c.Vibe)
		if len(rows) == 0 {
			continue
		}
		fmt.Printf("%s (%s):\n", category, status)
		printRecords(rows)
		total += len(rows)
	}

	if total == 0 {
		fmt.Println("No activities found")
	}
	return nil
}

func printRecords(recs []models.Record) {
	for _, rec := range recs {
		attrs := ""
		if rec.Type != "" || rec.Vibe != "" {
			attrs = fmt.Sprintf(" (%s / %s)", rec.Type, rec.Vibe)
		}
		fmt.Printf("  [%s] %s - %s%s\n", rec.Status, rec.Activity, rec.Category, attrs)
		if rec.Link != "" {
			fmt.Printf("      Link: %s\n", rec.Link)
		}
	}
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/abdullahosa/duo-list/internal/logger"
	"github.com/abdullahosa/duo-list/internal/models"
)

type AddCmd struct {
	Name     string `arg:"" help:"Activity name."`
	Category string `short:"c" help:"Category (Vacation|Gaming|Date Night|Challenge|Movies|Projects)." required:""`
	Type     string `short:"t" help:"Category-specific first attribute."`
	Vibe     string `short:"v" help:"Category-specific second attribute."`
	Status   string `short:"s" help:"Initial status." default:"To Do"`
	Link     string `short:"l" help:"External resource link."`
}

func (c *AddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("activity name cannot be empty")
	}
	opts, err := models.OptionsFor(c.Category)
	if err != nil {
		return err
	}
	if err := validateAttribute(opts.TypeLabel, c.Type, opts.TypeOptions); err != nil {
		return err
	}
	if err := validateAttribute(opts.VibeLabel, c.Vibe, opts.VibeOptions); err != nil {
		return err
	}
	if _, err := parseStatus(c.Status); err != nil {
		return err
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	t, err := loadBoardStrict(ctx)
	if err != nil {
		return err
	}

	status, err := parseStatus(c.Status)
	if err != nil {
		return err
	}

	link := c.Link
	if link == "" && c.Category == models.CategoryVacation && ctx.Provisioner.Enabled() {
		// Best-effort: a failed provisioning call still creates the record,
		// just without a link.
		provisioned, provErr := ctx.Provisioner.ProvisionTab(context.Background(), c.Name)
		if provErr != nil {
			logger.Warn("tab provisioning failed", "activity", c.Name, "err", provErr)
			fmt.Fprintf(os.Stderr, "Warning: could not provision planning tab: %v\n", provErr)
		}
		link = provisioned
	}

	rec := models.Record{
		ID:       uuid.New().String(),
		Category: c.Category,
		Activity: c.Name,
		Type:     c.Type,
		Vibe:     c.Vibe,
		Status:   status,
		Link:     link,
	}
	t.Records = append(t.Records, rec)

	if err := ctx.Store.Persist(context.Background(), t.Records); err != nil {
		return err
	}

	fmt.Printf("Added activity: %s (%s)\n", c.Name, c.Category)
	if link != "" {
		fmt.Printf("  Link: %s\n", link)
	}
	return nil
}

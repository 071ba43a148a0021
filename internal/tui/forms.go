package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/abdullahosa/duo-list/internal/models"
)

func statusOptions() []huh.Option[models.Status] {
	opts := make([]huh.Option[models.Status], len(models.Statuses))
	for i, s := range models.Statuses {
		opts[i] = huh.NewOption(string(s), s)
	}
	return opts
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// NewAddForm creates the form for a new activity in the current category.
func NewAddForm(fm *AddFormModel, opts models.CategoryOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Value(&fm.Activity).
				Validate(nonEmpty),
			huh.NewSelect[string]().
				Title(opts.TypeLabel).
				Options(huh.NewOptions(opts.TypeOptions...)...).
				Value(&fm.Type),
			huh.NewSelect[string]().
				Title(opts.VibeLabel).
				Options(huh.NewOptions(opts.VibeOptions...)...).
				Value(&fm.Vibe),
			huh.NewSelect[models.Status]().
				Title("Status").
				Options(statusOptions()...).
				Value(&fm.Status),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewEditForm creates the form for editing the selected activity.
func NewEditForm(fm *EditFormModel, opts models.CategoryOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Value(&fm.Activity).
				Validate(nonEmpty),
			huh.NewSelect[string]().
				Title(opts.TypeLabel).
				Options(huh.NewOptions(opts.TypeOptions...)...).
				Value(&fm.Type),
			huh.NewSelect[string]().
				Title(opts.VibeLabel).
				Options(huh.NewOptions(opts.VibeOptions...)...).
				Value(&fm.Vibe),
			huh.NewSelect[models.Status]().
				Title("Status").
				Options(statusOptions()...).
				Value(&fm.Status),
			huh.NewInput().
				Title("Link").
				Value(&fm.Link),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewFilterForm creates the attribute multi-select filters for the current
// category. Selecting nothing on a dimension leaves it unfiltered.
func NewFilterForm(fm *FilterFormModel, opts models.CategoryOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(opts.TypeLabel).
				Options(huh.NewOptions(opts.TypeOptions...)...).
				Value(&fm.Types),
			huh.NewMultiSelect[string]().
				Title(opts.VibeLabel).
				Options(huh.NewOptions(opts.VibeOptions...)...).
				Value(&fm.Vibes),
		),
	).WithTheme(huh.ThemeDracula())
}

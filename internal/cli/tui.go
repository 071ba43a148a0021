package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abdullahosa/duo-list/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	m := tui.NewModel(ctx.Store, ctx.Provisioner)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

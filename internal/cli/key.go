package cli

import (
	"fmt"

	"github.com/abdullahosa/duo-list/internal/keyring"
)

type KeySetCmd struct {
	Key string `arg:"" help:"Master key for the shared document."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetMasterKey(c.Key); err != nil {
		return err
	}
	fmt.Println("Master key stored in OS keyring")
	return nil
}

type KeyClearCmd struct{}

func (c *KeyClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteMasterKey(); err != nil {
		return err
	}
	fmt.Println("Master key removed from OS keyring")
	return nil
}

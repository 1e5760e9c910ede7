package system

import (
	"fmt"

	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/keyring"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the API key in the OS keyring."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the API key from the OS keyring."`
	Check  KeyringCheckCmd  `cmd:"" help:"Check keyring availability and whether a key is stored."`
}

type KeyringSetCmd struct {
	Key string `arg:"" help:"API key to store."`
}

func (c *KeyringSetCmd) Run(_ *cli.Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in OS keyring.")
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(_ *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("✓ API key removed from OS keyring.")
	return nil
}

type KeyringCheckCmd struct{}

func (c *KeyringCheckCmd) Run(_ *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("OS keyring is not available on this system.")
		return nil
	}
	if _, err := keyring.GetAPIKey(); err != nil {
		fmt.Println("OS keyring is available; no API key stored.")
		return nil
	}
	fmt.Println("OS keyring is available; an API key is stored.")
	return nil
}

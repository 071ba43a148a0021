package config

import "fmt"

// EnvMasterKey overrides the keyring-stored credential when set.
const EnvMasterKey = "DUOLIST_MASTER_KEY"

// Config carries the settings the remote store and the tab provisioner are
// constructed with. Nothing in this struct is read from globals.
type Config struct {
	// Credential is the opaque master key sent as X-Master-Key.
	Credential string
	// DocumentURL is the base URL of the shared document. GET {url}/latest
	// reads it, PUT {url} overwrites it.
	DocumentURL string
	// WebhookURL is the tab-provisioning endpoint. Empty disables
	// provisioning.
	WebhookURL string
}

// ValidateRemote checks the fields required to reach the shared document.
func (c Config) ValidateRemote() error {
	if c.DocumentURL == "" {
		return fmt.Errorf("document URL is not configured")
	}
	if c.Credential == "" {
		return fmt.Errorf("master key is not configured, run 'duolist key set' or set %s", EnvMasterKey)
	}
	return nil
}

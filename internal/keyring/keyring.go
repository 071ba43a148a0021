package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/abdullahosa/duo-list/internal/constants"
)

var (
	// ErrNotFound is returned when no master key is stored in the keyring
	ErrNotFound = errors.New("master key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetMasterKey retrieves the shared document credential from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetMasterKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.KeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetMasterKey stores the shared document credential in the OS keyring.
func SetMasterKey(key string) error {
	if key == "" {
		return errors.New("master key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringUser, key); err != nil {
		return fmt.Errorf("failed to store master key in keyring: %w", err)
	}
	return nil
}

// DeleteMasterKey removes the stored credential from the OS keyring.
func DeleteMasterKey() error {
	err := keyring.Delete(constants.AppName, constants.KeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete master key from keyring: %w", err)
	}
	return nil
}

package constants

const (
	// AppName is used for the keyring service and log prefix.
	AppName = "duolist"
	// KeyringUser is the keyring account the master key is stored under.
	KeyringUser = "master-key"
	// ProcessName is the executable name doctor looks for when checking for
	// concurrent sessions.
	ProcessName = "duolist"
)

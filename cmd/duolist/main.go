package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/abdullahosa/duo-list/internal/cli"
	"github.com/abdullahosa/duo-list/internal/config"
	"github.com/abdullahosa/duo-list/internal/keyring"
	"github.com/abdullahosa/duo-list/internal/logger"
	"github.com/abdullahosa/duo-list/internal/provision"
	"github.com/abdullahosa/duo-list/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	Store     string `help:"Document location: an https:// bin URL, a .json file, or a SQLite path." env:"DUOLIST_DOCUMENT_URL" default:"~/.config/duolist/duolist.db"`
	MasterKey string `help:"Master key for the shared document. Falls back to the OS keyring." env:"DUOLIST_MASTER_KEY"`
	Webhook   string `help:"Tab-provisioning webhook URL." env:"DUOLIST_WEBHOOK_URL"`
	Debug     bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize local storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive board." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add a new activity."`
	List   cli.ListCmd   `cmd:"" help:"List activities."`
	Pick   cli.PickCmd   `cmd:"" help:"Pick a random activity."`
	Status cli.StatusCmd `cmd:"" help:"Update an activity's status."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Key    struct {
		Set   cli.KeySetCmd   `cmd:"" help:"Store the master key in the OS keyring."`
		Clear cli.KeyClearCmd `cmd:"" help:"Remove the master key from the OS keyring."`
	} `cmd:"" help:"Manage the shared document credential."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the shared document." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a snapshot."`
	} `cmd:"" help:"Manage local snapshots of the shared document."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("duolist"),
		kong.Description("Shared activity board / pick-something-to-do companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	credential := CLI.MasterKey
	if credential == "" {
		// Best-effort keyring lookup; local stores don't need a credential.
		if key, err := keyring.GetMasterKey(); err == nil {
			credential = key
		}
	}

	cfg := config.Config{
		Credential: credential,
		WebhookURL: CLI.Webhook,
	}

	// Pick the backend from the document location, the same way the config
	// value reads: URL means the shared bin, extension means a local file.
	var store storage.Provider
	var configDir string
	switch {
	case strings.HasPrefix(CLI.Store, "http://"), strings.HasPrefix(CLI.Store, "https://"):
		cfg.DocumentURL = CLI.Store
		store = storage.NewRemoteStore(cfg)
		configDir = defaultConfigDir()
	case strings.HasSuffix(CLI.Store, ".json"):
		path := expandPath(CLI.Store)
		store = storage.NewJSONStore(path)
		configDir = filepath.Dir(path)
	default:
		path := expandPath(CLI.Store)
		store = storage.NewSQLiteStore(path)
		configDir = filepath.Dir(path)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:       store,
		Provisioner: provision.New(cfg),
		Config:      cfg,
		ConfigDir:   configDir,
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "duolist")
}

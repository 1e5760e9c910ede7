package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/fijnedagvan/dagvan/internal/api"
	"github.com/fijnedagvan/dagvan/internal/cache"
	"github.com/fijnedagvan/dagvan/internal/cli"
	"github.com/fijnedagvan/dagvan/internal/cli/days"
	"github.com/fijnedagvan/dagvan/internal/cli/settings"
	"github.com/fijnedagvan/dagvan/internal/cli/subs"
	"github.com/fijnedagvan/dagvan/internal/cli/system"
	"github.com/fijnedagvan/dagvan/internal/constants"
	apperrors "github.com/fijnedagvan/dagvan/internal/errors"
	"github.com/fijnedagvan/dagvan/internal/keyring"
	"github.com/fijnedagvan/dagvan/internal/logger"
	"github.com/fijnedagvan/dagvan/internal/notify"
	"github.com/fijnedagvan/dagvan/internal/scheduler"
	"github.com/fijnedagvan/dagvan/internal/service"
	"github.com/fijnedagvan/dagvan/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/dagvan/dagvan.db"`
	BaseURL string `help:"Remote API base URL." default:"${base_url}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize dagvan storage."`
	Run     system.RunCmd     `cmd:"" help:"Run the notification daemon."`
	Notify  system.NotifyCmd  `cmd:"" hidden:"" help:"Run the daily notification job once (used internally)."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the API key in the OS keyring."`

	Today   days.TodayCmd   `cmd:"" help:"Show today's days." default:"1"`
	Day     days.DayCmd     `cmd:"" help:"Show the days of a date."`
	Year    days.YearCmd    `cmd:"" help:"Show the days of a year."`
	List    days.ListCmd    `cmd:"" help:"Show the full dataset."`
	Refresh days.RefreshCmd `cmd:"" help:"Force-refresh the cache for a date."`

	Subscribe     subs.SubscribeCmd   `cmd:"" help:"Subscribe to a day's individual notification."`
	Unsubscribe   subs.UnsubscribeCmd `cmd:"" help:"Unsubscribe from a day's individual notification."`
	Subscriptions subs.SubListCmd     `cmd:"" help:"List subscriptions."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Special observance day calendar and notifier"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":  constants.Version,
			"base_url": constants.DefaultBaseURL,
		},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	cacheStore, err := cache.New(filepath.Join(configDir, constants.CacheDirName))
	if err != nil {
		apperrors.Fatalf("failed to create cache directory: %v", err)
	}

	store := storage.NewSQLiteStore(CLI.Config)
	client := api.NewClient(CLI.BaseURL, keyring.ResolveAPIKey())
	svc := service.New(client, cacheStore)

	appCtx := &cli.Context{
		Store:    store,
		Svc:      svc,
		Sched:    scheduler.New(store),
		Notifier: notify.New(),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

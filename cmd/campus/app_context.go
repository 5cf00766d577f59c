package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/campus/internal/config"
	"github.com/alexisbeaulieu97/campus/internal/events"
	"github.com/alexisbeaulieu97/campus/internal/logger"
	"github.com/alexisbeaulieu97/campus/internal/site/admin"
	"github.com/alexisbeaulieu97/campus/internal/site/content"
	"github.com/alexisbeaulieu97/campus/internal/site/registration"
	"github.com/alexisbeaulieu97/campus/internal/tui"
)

// appContext bundles long-lived services created at startup.
type appContext struct {
	cfg           *config.Config
	log           *logger.Logger
	catalog       *content.Catalog
	publisher     events.Publisher
	registrations *registration.Service
	admin         *admin.Session
}

// newAppContext loads configuration and wires the site services. Interactive
// sessions own the terminal, so their logs go to log.file or nowhere.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Check the file against the documented keys or unset CAMPUS_* overrides.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	var writer io.Writer
	if cfg.Log.File == "" {
		writer = cmd.ErrOrStderr()
		if interactive {
			writer = io.Discard
		}
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Writer:        writer,
		File:          cfg.Log.File,
	})
	if err != nil {
		return nil, newCommandError("create logger", cfg.Log.File, err, "Make sure the log file directory exists and is writable.")
	}

	catalog, err := content.Load(cfg.Content.Path)
	if err != nil {
		_ = log.Close()
		return nil, newCommandError("load content", cfg.Content.Path, err, "Fix the catalog file or leave content.path empty to use the built-in catalog.")
	}

	publisher := events.NewLoggingPublisher(log)
	return &appContext{
		cfg:       cfg,
		log:       log,
		catalog:   catalog,
		publisher: publisher,
		registrations: registration.NewService(registration.Options{
			Catalog:   catalog,
			Publisher: publisher,
			Logger:    log,
			Latency:   cfg.Registration.Latency,
		}),
		admin: admin.NewSession(admin.Options{
			Username:  cfg.Admin.Username,
			Password:  cfg.Admin.Password,
			Publisher: publisher,
			Logger:    log,
		}),
	}, nil
}

func (a *appContext) model(page tui.Page, width int) tui.Model {
	return tui.NewModel(tui.Options{
		Config:        a.cfg,
		Catalog:       a.catalog,
		Registrations: a.registrations,
		Admin:         a.admin,
		Publisher:     a.publisher,
		Logger:        a.log,
		Page:          page,
		Width:         width,
	})
}

func (a *appContext) Close() {
	_ = a.log.Close()
}

// Command resrel is a terminal client for the (RE)Sources Relationnelles
// platform: browse the resource catalog, manage favorites, join group
// activities, and inspect your dashboard without leaving the shell.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/ressources-relationnelles/resrel-go/config"
	"github.com/ressources-relationnelles/resrel-go/internal/bootstrap"
	"github.com/ressources-relationnelles/resrel-go/resrel"
)

type commandFn func(cc *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

// commandContext carries everything a command needs: config, logger, and
// the SDK surface built once in main.
type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig

	Client     *resrel.Client
	Session    *resrel.Session
	Reporter   *resrel.Reporter
	Resources  *resrel.ResourcesAPI
	Favorites  *resrel.FavoritesAPI
	Activities *resrel.ActivitiesAPI
	Dashboard  *resrel.DashboardAPI
	Profile    *resrel.ProfileAPI
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	cc, err := newCommandContext(cfg, logger)
	if err != nil {
		logger.Error("build client", "error", err)
		os.Exit(1)
	}

	if runErr := cmd.run(cc, os.Args[2:]); runErr != nil {
		logger.Error("command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func newCommandContext(cfg config.AppConfig, logger *slog.Logger) (*commandContext, error) {
	client, err := resrel.New(resrel.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Tokens:    resrel.NewFileTokenStore(cfg.Storage.TokenPath),
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	auth := resrel.NewAuthAPI(client)
	reporter := &resrel.Reporter{
		Logger: logger,
		OnAuthError: func(info resrel.ErrorInfo) {
			_ = writef(os.Stderr, "%s\n", info.Message)
		},
	}
	return &commandContext{
		Ctx:        context.Background(),
		Logger:     logger,
		Config:     cfg,
		Client:     client,
		Session:    resrel.NewSession(auth, logger),
		Reporter:   reporter,
		Resources:  resrel.NewResourcesAPI(client),
		Favorites:  resrel.NewFavoritesAPI(client),
		Activities: resrel.NewActivitiesAPI(client),
		Dashboard:  resrel.NewDashboardAPI(client),
		Profile:    resrel.NewProfileAPI(client),
	}, nil
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in and store the session token locally",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Sign out and remove the local session token",
			run:         runLogout,
		},
		"register": {
			name:        "register",
			description: "Create an account and sign in",
			run:         runRegister,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the account bound to the stored token",
			run:         runWhoami,
		},
		"resources": {
			name:        "resources",
			description: "List resources from the catalog",
			run:         runResourcesList,
		},
		"resource": {
			name:        "resource",
			description: "Show a single resource by id",
			run:         runResourceShow,
		},
		"favorites": {
			name:        "favorites",
			description: "List your favorite resources",
			run:         runFavoritesList,
		},
		"favorite": {
			name:        "favorite",
			description: "Toggle the favorite state of a resource by id",
			run:         runFavoriteToggle,
		},
		"activities": {
			name:        "activities",
			description: "List group activities",
			run:         runActivitiesList,
		},
		"join": {
			name:        "join",
			description: "Join an activity by id",
			run:         runActivityJoin,
		},
		"leave": {
			name:        "leave",
			description: "Leave an activity by id",
			run:         runActivityLeave,
		},
		"profile": {
			name:        "profile",
			description: "Show or update your profile (name, email, avatar)",
			run:         runProfile,
		},
		"dashboard": {
			name:        "dashboard",
			description: "Show your dashboard summary and progression",
			run:         runDashboard,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: resrel <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writef(os.Stdout, "  %-12s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

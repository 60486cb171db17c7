package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"habitual/internal/cli"
	"habitual/internal/config"
	"habitual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db for SQLite, .json for flat file)." type:"path" default:"~/.config/habitual/habitual.db"`
	User    string `help:"User whose habits to work with." default:"default" env:"HABITUAL_USER"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize habitual storage."`
	Chat      cli.ChatCmd      `cmd:"" help:"Launch the interactive chat." default:"1"`
	Do        cli.DoCmd        `cmd:"" help:"Run a single natural-language command."`
	Streaks   cli.StreaksCmd   `cmd:"" help:"Show current streaks."`
	Progress  cli.ProgressCmd  `cmd:"" help:"Show this week's goal progress."`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show overall stats."`
	Goal      struct {
		Set cli.GoalSetCmd `cmd:"" help:"Set a weekly goal for a habit."`
	} `cmd:"" help:"Manage weekly goals."`
	Suggest cli.SuggestCmd `cmd:"" help:"Suggest habits to try next."`
	Export  cli.ExportCmd  `cmd:"" help:"Export your data."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Users cli.UsersCmd `cmd:"" help:"List known users."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitual"),
		kong.Description("Natural-language habit tracking companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		Store:    storage.ForPath(CLI.Config),
		Settings: config.Load(),
		User:     CLI.User,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/cli"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/constants"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/errors"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/logger"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/sample"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/storage"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	Db      string `help:"Optional SQLite snapshot file. Without it the session is memory-only, seeded with sample data." type:"path"`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Agenda cli.AgendaCmd `cmd:"" help:"Show the expanded agenda for a date window."`
	Inbox  cli.InboxCmd  `cmd:"" help:"List unscheduled tasks."`
	Task   struct {
		Add        cli.TaskAddCmd        `cmd:"" help:"Add a new task."`
		List       cli.TaskListCmd       `cmd:"" help:"List active tasks."`
		Edit       cli.TaskEditCmd       `cmd:"" help:"Edit an existing task."`
		Delete     cli.TaskDeleteCmd     `cmd:"" help:"Move a task to the trash."`
		Duplicate  cli.TaskDuplicateCmd  `cmd:"" help:"Duplicate a task."`
		Status     cli.TaskStatusCmd     `cmd:"" help:"Set a task's status."`
		Done       cli.TaskDoneCmd       `cmd:"" help:"Mark a task completed."`
		Rate       cli.TaskRateCmd       `cmd:"" help:"Rate a task, or cycle its rating."`
		Unschedule cli.TaskUnscheduleCmd `cmd:"" help:"Move tasks back to the inbox."`
	} `cmd:"" help:"Manage tasks."`
	Archive struct {
		List    cli.ArchiveListCmd    `cmd:"" help:"List archived tasks." default:"1"`
		Add     cli.ArchiveTaskCmd    `cmd:"" help:"Archive active tasks."`
		Restore cli.ArchiveRestoreCmd `cmd:"" help:"Restore an archived task."`
		Purge   cli.ArchivePurgeCmd   `cmd:"" help:"Permanently delete an archived task."`
		Empty   cli.ArchiveEmptyCmd   `cmd:"" help:"Empty one archive bucket."`
	} `cmd:"" help:"Manage the archive."`
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", constants.AppName)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal task tracker with recurring tasks, archive buckets and undo"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	taskStore := store.New()
	appCtx := &cli.Context{Store: taskStore}

	if CLI.Db != "" {
		snap := storage.NewSnapshotStore(CLI.Db)
		if err := snap.Open(); err != nil {
			errors.Fatal(err)
		}
		defer snap.Close()

		active, archived, err := snap.Load()
		if err != nil {
			errors.Fatal(err)
		}
		if len(active) > 0 || len(archived) > 0 {
			taskStore.ReplaceAll(active, archived)
		} else {
			sample.Seed(taskStore)
		}
		appCtx.Snapshot = snap
	} else {
		sample.Seed(taskStore)
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

func parseArchiveReason(s string) (models.ArchiveReason, error) {
	switch models.ArchiveReason(s) {
	case models.ArchiveReasonNotStarted, models.ArchiveReasonStarted,
		models.ArchiveReasonCompleted, models.ArchiveReasonDeleted:
		return models.ArchiveReason(s), nil
	default:
		return "", fmt.Errorf("invalid archive bucket: %s (expected not_started|started|completed|deleted)", s)
	}
}

type ArchiveListCmd struct {
	Reason string `short:"r" help:"Only one bucket (not_started|started|completed|deleted)."`
}

func (c *ArchiveListCmd) Run(ctx *Context) error {
	entries := ctx.Store.ArchivedTasks()
	if c.Reason != "" {
		reason, err := parseArchiveReason(c.Reason)
		if err != nil {
			return err
		}
		entries = ctx.Store.ArchiveBucket(reason)
	}
	if len(entries) == 0 {
		fmt.Println("Archive is empty")
		return nil
	}
	for _, a := range entries {
		fmt.Println(FormatArchivedLine(a))
	}
	return nil
}

type ArchiveTaskCmd struct {
	IDs []int `arg:"" help:"Active task IDs to archive."`
}

func (c *ArchiveTaskCmd) Run(ctx *Context) error {
	ctx.Store.ArchiveSelectedInbox(c.IDs)
	ctx.Persist()
	fmt.Printf("Archived %d task(s)\n", len(c.IDs))
	return nil
}

type ArchiveRestoreCmd struct {
	ID int `arg:"" help:"Archived task ID to restore."`
}

func (c *ArchiveRestoreCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.ArchivedTask(c.ID); !ok {
		return fmt.Errorf("archived task not found: %d", c.ID)
	}
	ctx.Store.RestoreTask(c.ID)
	ctx.Persist()
	fmt.Printf("Restored task %d\n", c.ID)
	return nil
}

type ArchivePurgeCmd struct {
	ID    int  `arg:"" help:"Archived task ID to delete permanently."`
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ArchivePurgeCmd) Run(ctx *Context) error {
	entry, ok := ctx.Store.ArchivedTask(c.ID)
	if !ok {
		return fmt.Errorf("archived task not found: %d", c.ID)
	}
	if !c.Force {
		confirmed, err := confirm(fmt.Sprintf("Permanently delete %q?", entry.Text))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}
	ctx.Store.DeletePermanently(c.ID)
	ctx.Persist()
	fmt.Printf("Permanently deleted task %d\n", c.ID)
	return nil
}

type ArchiveEmptyCmd struct {
	Reason string `arg:"" help:"Bucket to empty (not_started|started|completed|deleted)."`
	Force  bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ArchiveEmptyCmd) Run(ctx *Context) error {
	reason, err := parseArchiveReason(c.Reason)
	if err != nil {
		return err
	}
	entries := ctx.Store.ArchiveBucket(reason)
	if len(entries) == 0 {
		fmt.Println("Bucket is already empty")
		return nil
	}
	if !c.Force {
		confirmed, err := confirm(fmt.Sprintf("Empty the %s bucket (%d entries)?", reason, len(entries)))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}
	ctx.Store.EmptyArchiveBucket(reason)
	ctx.Persist()
	fmt.Printf("Emptied %s bucket (%d entries)\n", reason, len(entries))
	return nil
}

func confirm(prompt string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(prompt).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation aborted: %w", err)
	}
	return confirmed, nil
}

package cli

import (
	"fmt"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/store"
)

type TaskAddCmd struct {
	Text       string `arg:"" help:"Task text."`
	Notes      string `short:"n" help:"Free-form notes."`
	Date       string `short:"d" help:"Schedule on a day (YYYY-MM-DD)."`
	Recurrence string `short:"r" help:"Recurrence rule (never|daily|weekly|monthly)." default:"never"`
	Assignee   string `short:"a" help:"Assignee label."`
}

func (c *TaskAddCmd) Validate() error {
	if err := ValidateDate(c.Date); err != nil {
		return err
	}
	rec, err := ParseRecurrence(c.Recurrence)
	if err != nil {
		return err
	}
	if rec.IsRecurring() && c.Date == "" {
		return fmt.Errorf("recurring tasks need --date as the anchor day")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	before := len(ctx.Store.ActiveTasks())
	ctx.Store.AddTask(c.Text, c.Notes, c.Assignee)

	tasks := ctx.Store.ActiveTasks()
	if len(tasks) == before {
		return fmt.Errorf("task text must not be blank")
	}
	task := tasks[len(tasks)-1]

	if c.Date != "" {
		ctx.Store.Reschedule(task.ID, c.Date)
	}
	if rec, _ := ParseRecurrence(c.Recurrence); rec.IsRecurring() {
		ctx.Store.UpdateRecurrence(task.ID, rec)
	}

	ctx.Persist()
	fmt.Printf("Added task: %s (ID: %d)\n", task.Text, task.ID)
	return nil
}

type TaskListCmd struct {
	Query string `short:"q" help:"Case-insensitive text/notes filter."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	match := store.SearchFilter(c.Query)
	for _, t := range ctx.Store.ActiveTasks() {
		if match(t) {
			fmt.Println(FormatTaskLine(t))
		}
	}
	return nil
}

type TaskEditCmd struct {
	ID         int     `arg:"" help:"Task ID."`
	Text       *string `help:"New task text."`
	Notes      *string `help:"New notes."`
	Date       *string `help:"New date (YYYY-MM-DD, empty clears)."`
	Status     *string `help:"New status (not_started|started|completed)."`
	Recurrence *string `help:"New recurrence (never|daily|weekly|monthly)."`
	Assignee   *string `help:"New assignee."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	t, ok := ctx.Store.Task(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %d", c.ID)
	}

	text, notes, date, assignee := t.Text, t.Notes, t.Date, t.AssignedTo
	status, rec := t.Status, t.Recurrence
	if c.Text != nil {
		text = *c.Text
	}
	if c.Notes != nil {
		notes = *c.Notes
	}
	if c.Date != nil {
		if err := ValidateDate(*c.Date); err != nil {
			return err
		}
		date = *c.Date
	}
	if c.Status != nil {
		parsed, err := ParseStatus(*c.Status)
		if err != nil {
			return err
		}
		status = parsed
	}
	if c.Recurrence != nil {
		parsed, err := ParseRecurrence(*c.Recurrence)
		if err != nil {
			return err
		}
		rec = parsed
	}

	ctx.Store.UpdateTask(c.ID, text, notes, date, status, rec, assignee)
	ctx.Persist()
	fmt.Printf("Updated task %d\n", c.ID)
	return nil
}

type TaskDeleteCmd struct {
	ID int `arg:"" help:"Task ID to move to trash."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	t, ok := ctx.Store.Task(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %d", c.ID)
	}
	ctx.Store.DeleteToTrash(c.ID)
	ctx.Persist()
	fmt.Printf("Deleted task: %s (ID: %d)\n", t.Text, c.ID)
	return nil
}

type TaskDuplicateCmd struct {
	ID int `arg:"" help:"Task ID to duplicate."`
}

func (c *TaskDuplicateCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.Task(c.ID); !ok {
		return fmt.Errorf("task not found: %d", c.ID)
	}
	ctx.Store.Duplicate(c.ID)
	ctx.Persist()
	fmt.Printf("Duplicated task %d\n", c.ID)
	return nil
}

type TaskStatusCmd struct {
	ID     int    `arg:"" help:"Task ID."`
	Status string `arg:"" help:"Target status (not_started|started|completed)."`
	On     string `help:"Instance day (YYYY-MM-DD) for recurring tasks."`
}

func (c *TaskStatusCmd) Validate() error {
	if _, err := ParseStatus(c.Status); err != nil {
		return err
	}
	return ValidateDate(c.On)
}

func (c *TaskStatusCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.Task(c.ID); !ok {
		return fmt.Errorf("task not found: %d", c.ID)
	}
	status, _ := ParseStatus(c.Status)
	ctx.Store.UpdateStatus(c.ID, status, c.On)
	ctx.Persist()
	fmt.Printf("Task %d -> %s\n", c.ID, status)
	return nil
}

type TaskDoneCmd struct {
	ID int    `arg:"" help:"Task ID."`
	On string `help:"Instance day (YYYY-MM-DD) for recurring tasks."`
}

func (c *TaskDoneCmd) Validate() error {
	return ValidateDate(c.On)
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.Task(c.ID); !ok {
		return fmt.Errorf("task not found: %d", c.ID)
	}
	ctx.Store.UpdateStatus(c.ID, models.StatusCompleted, c.On)
	ctx.Persist()
	fmt.Printf("Task %d completed\n", c.ID)
	return nil
}

type TaskRateCmd struct {
	ID     int    `arg:"" help:"Task ID."`
	Rating string `arg:"" optional:"" help:"Rating (none|liked|disliked); omit to cycle."`
	On     string `help:"Instance day (YYYY-MM-DD) for recurring tasks."`
}

func (c *TaskRateCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.Task(c.ID); !ok {
		return fmt.Errorf("task not found: %d", c.ID)
	}
	if err := ValidateDate(c.On); err != nil {
		return err
	}
	switch c.Rating {
	case "":
		ctx.Store.CycleRating(c.ID, c.On)
	case "none":
		ctx.Store.Rate(c.ID, models.RatingNone, c.On)
	case "liked":
		ctx.Store.Rate(c.ID, models.RatingLiked, c.On)
	case "disliked":
		ctx.Store.Rate(c.ID, models.RatingDisliked, c.On)
	default:
		return fmt.Errorf("invalid rating: %s", c.Rating)
	}
	ctx.Persist()
	return nil
}

type TaskUnscheduleCmd struct {
	IDs []int `arg:"" help:"Task IDs to move back to the inbox."`
}

func (c *TaskUnscheduleCmd) Run(ctx *Context) error {
	ctx.Store.MoveTasksToInbox(c.IDs)
	ctx.Persist()
	fmt.Printf("Moved %d task(s) to the inbox\n", len(c.IDs))
	return nil
}

type InboxCmd struct {
	Query string `short:"q" help:"Case-insensitive text/notes filter."`
}

func (c *InboxCmd) Run(ctx *Context) error {
	tasks := ctx.Store.UnscheduledTasks(c.Query)
	if len(tasks) == 0 {
		fmt.Println("Inbox is empty")
		return nil
	}
	for _, t := range tasks {
		fmt.Println(FormatTaskLine(t))
	}
	return nil
}

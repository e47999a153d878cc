package cli

import (
	"fmt"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/utils"
)

type AgendaCmd struct {
	From string `help:"Window start (YYYY-MM-DD), defaults to today."`
	To   string `help:"Window end (YYYY-MM-DD), defaults to a week out."`
}

func (c *AgendaCmd) Validate() error {
	if err := ValidateDate(c.From); err != nil {
		return err
	}
	return ValidateDate(c.To)
}

func (c *AgendaCmd) Run(ctx *Context) error {
	from := c.From
	if from == "" {
		from = utils.Today()
	}
	to := c.To
	if to == "" {
		start, _ := utils.ParseDay(from)
		to = utils.DayKey(start.AddDate(0, 0, 6))
	}
	if to < from {
		return fmt.Errorf("window end %s precedes start %s", to, from)
	}

	type row struct {
		status models.Status
		text   string
		note   string
	}
	byDay := map[string][]row{}

	for _, t := range ctx.Store.ActiveTasks() {
		if t.IsRecurring() || t.Date == "" || t.Date < from || t.Date > to {
			continue
		}
		byDay[t.Date] = append(byDay[t.Date], row{t.Status, t.Text, fmt.Sprintf("#%d", t.ID)})
	}
	for _, inst := range ctx.Store.Expand(from, to) {
		byDay[inst.Date] = append(byDay[inst.Date], row{inst.Status, inst.Text, fmt.Sprintf("#%d %s", inst.ParentID, inst.Recurrence)})
	}

	start, _ := utils.ParseDay(from)
	end, _ := utils.ParseDay(to)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := utils.DayKey(day)
		rows := byDay[key]
		if len(rows) == 0 {
			continue
		}
		fmt.Printf("%s (%s)\n", key, day.Weekday().String()[:3])
		for _, r := range rows {
			mark := " "
			switch r.status {
			case models.StatusStarted:
				mark = "~"
			case models.StatusCompleted:
				mark = "x"
			}
			fmt.Printf("  [%s] %s  %s\n", mark, r.text, r.note)
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/database"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

type taskFlags struct {
	description string
	date        string
	start       string
	end         string
	color       string
	important   bool
}

type listFlags struct {
	date   string
	week   bool
	search string
}

var (
	addFlags  taskFlags
	editFlags taskFlags
	lsFlags   listFlags
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage planner tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task",
	Example: `  timeflow task add "Review PR" --start 09:00 --end 09:30
  timeflow task add "Dentist" --date 2026-10-22 --start 15:00 --end 16:00 --important`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			task := newTaskFromFlags(args, addFlags, time.Now())
			return addTask(ctx, db, task, cmd.OutOrStdout())
		})
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks for a day, the week, or a search",
	Example: `  timeflow task list --week
  timeflow task list --search "date:2026-10-22 is:important"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			return listTasks(ctx, db, lsFlags, time.Now(), cmd.OutOrStdout())
		})
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			return editTask(ctx, db, id, editFlags, cmd.Flags().Changed, cmd.OutOrStdout())
		})
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			if err := db.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
			return nil
		})
	},
}

func init() {
	for _, c := range []struct {
		cmd   *cobra.Command
		flags *taskFlags
	}{{taskAddCmd, &addFlags}, {taskEditCmd, &editFlags}} {
		f := c.cmd.Flags()
		f.StringVar(&c.flags.date, "date", "", "day as YYYY-MM-DD (default today)")
		f.StringVar(&c.flags.start, "start", "", "start time HH:MM")
		f.StringVar(&c.flags.end, "end", "", "end time HH:MM")
		f.StringVar(&c.flags.color, "color", "", "highlight color #rrggbb")
		f.BoolVar(&c.flags.important, "important", false, "mark as important")
	}
	taskAddCmd.MarkFlagRequired("start")
	taskAddCmd.MarkFlagRequired("end")
	taskEditCmd.Flags().StringVar(&editFlags.description, "desc", "", "new description")

	taskListCmd.Flags().StringVar(&lsFlags.date, "date", "", "day as YYYY-MM-DD (default today)")
	taskListCmd.Flags().BoolVar(&lsFlags.week, "week", false, "list the seven days starting today")
	taskListCmd.Flags().StringVar(&lsFlags.search, "search", "", "search query: text, date:YYYY-MM-DD, is:important")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskEditCmd, taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}

// withStore opens the app for a short-lived command.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, db *database.Database) error) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a.db)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", raw)
	}
	return id, nil
}

func newTaskFromFlags(args []string, f taskFlags, now time.Time) models.Task {
	date := f.date
	if date == "" {
		date = now.Format(models.DateLayout)
	}
	color := f.color
	if color == "" {
		color = config.DefaultTaskColor
	}
	return models.Task{
		Date:        date,
		Description: strings.Join(args, " "),
		StartTime:   f.start,
		EndTime:     f.end,
		Color:       color,
		Important:   f.important,
	}
}

func addTask(ctx context.Context, db *database.Database, task models.Task, w io.Writer) error {
	id, err := db.AddTask(ctx, task)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Added task %d on %s %s-%s\n", id, task.Date, task.StartTime, task.EndTime)
	if task.IsShort(config.ShortTaskThreshold) {
		fmt.Fprintf(w, "Note: task is shorter than %d minutes\n", int(config.ShortTaskThreshold.Minutes()))
	}
	return nil
}

// editTask applies the flags the user actually passed on top of the stored task.
func editTask(ctx context.Context, db *database.Database, id int64, f taskFlags, changed func(string) bool, w io.Writer) error {
	task, err := db.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if changed("desc") {
		task.Description = f.description
	}
	if changed("date") {
		task.Date = f.date
	}
	if changed("start") {
		task.StartTime = f.start
	}
	if changed("end") {
		task.EndTime = f.end
	}
	if changed("color") {
		task.Color = f.color
	}
	if changed("important") {
		task.Important = f.important
	}
	if err := db.UpdateTask(ctx, task); err != nil {
		return err
	}
	log.Printf("task %d edited from the command line", id)
	fmt.Fprintf(w, "Updated task %d\n", id)
	return nil
}

func listTasks(ctx context.Context, db *database.Database, f listFlags, now time.Time, w io.Writer) error {
	var (
		tasks []models.Task
		err   error
	)
	switch {
	case f.search != "":
		tasks, err = db.SearchTasks(ctx, util.ParseSearchQuery(f.search))
	case f.week:
		dates := util.FormatDates(util.WeekDates(now, config.WeekLength), models.DateLayout)
		var byDate map[string][]models.Task
		byDate, err = db.TasksForDates(ctx, dates)
		for _, d := range dates {
			tasks = append(tasks, byDate[d]...)
		}
	default:
		date := f.date
		if date == "" {
			date = now.Format(models.DateLayout)
		}
		tasks, err = db.TasksForDate(ctx, date)
	}
	if err != nil {
		return err
	}
	return printTasks(w, tasks)
}

func printTasks(out io.Writer, tasks []models.Task) error {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tTASK\tFLAGS")
	for _, t := range tasks {
		var flags []string
		if t.Important {
			flags = append(flags, "important")
		}
		if t.IsShort(config.ShortTaskThreshold) {
			flags = append(flags, "short")
		}
		desc := t.Description
		if len([]rune(desc)) > 50 {
			desc = string([]rune(desc)[:47]) + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s-%s\t%s\t%s\n", t.ID, t.Date, t.StartTime, t.EndTime, desc, strings.Join(flags, ","))
	}
	return w.Flush()
}

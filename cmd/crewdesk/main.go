package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/service"
	"github.com/crewdesk/crewdesk/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "crewdesk",
	Short: "Team collaboration data core",
	Long:  `Crewdesk manages users, roles, projects, tasks and their associations over a local store.`,
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "User reports",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCore(func(ctx context.Context, core *service.Core) error {
			users, err := core.Identity.All(ctx)
			if errors.Is(err, service.ErrUserListEmpty) {
				fmt.Println("no users")
				return nil
			}
			if err != nil {
				return err
			}
			return printJSON(users)
		})
	},
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Task reports",
}

var tasksOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List tasks past their due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCore(func(ctx context.Context, core *service.Core) error {
			tasks, err := core.Tasks.Overdue(ctx)
			if errors.Is(err, service.ErrTaskListEmpty) {
				fmt.Println("no tasks")
				return nil
			}
			if err != nil {
				return err
			}
			return printJSON(tasks)
		})
	},
}

var tasksDueSoonCmd = &cobra.Command{
	Use:   "due-soon",
	Short: "List tasks due within the next three days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCore(func(ctx context.Context, core *service.Core) error {
			tasks, err := core.Tasks.DueSoon(ctx)
			if errors.Is(err, service.ErrTaskListEmpty) {
				fmt.Println("no tasks")
				return nil
			}
			if err != nil {
				return err
			}
			return printJSON(tasks)
		})
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Project reports",
}

var projectsOngoingCmd = &cobra.Command{
	Use:   "ongoing",
	Short: "List projects whose date span covers today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCore(func(ctx context.Context, core *service.Core) error {
			projects, err := core.Projects.Ongoing(ctx)
			if errors.Is(err, service.ErrProjectListEmpty) {
				fmt.Println("no projects")
				return nil
			}
			if err != nil {
				return err
			}
			return printJSON(projects)
		})
	},
}

// withCore loads the config, opens the configured store and runs fn
// against a freshly wired core.
func withCore(fn func(context.Context, *service.Core) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var store storage.Store
	switch cfg.Engine {
	case config.EngineMemory:
		store = storage.NewMemory()
	case config.EngineSQLite:
		store, err = storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite store: %w", err)
		}
	default:
		return fmt.Errorf("unknown storage engine %q", cfg.Engine)
	}

	core := service.NewCore(service.CoreConfig{Store: store})
	defer func() {
		if err := core.Close(); err != nil {
			slog.Error("failed to close store", slog.String("error", err.Error()))
		}
	}()

	return fn(context.Background(), core)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	usersCmd.AddCommand(usersListCmd)
	tasksCmd.AddCommand(tasksOverdueCmd, tasksDueSoonCmd)
	projectsCmd.AddCommand(projectsOngoingCmd)
	rootCmd.AddCommand(usersCmd, tasksCmd, projectsCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

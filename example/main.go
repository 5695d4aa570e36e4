package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ErmitaVulpe/derive-more/pkg/fromstrerrors"
)

// Job is built from the string inputs of the add command.
type Job struct {
	ID       JobID
	Title    string
	Status   JobStatus
	Priority Priority
}

func newAddCmd() *cobra.Command {
	var (
		id       string
		status   string
		priority string
		due      string
	)

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Build a job from string inputs and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := Job{Title: args[0]}

			var err error
			if id == "" {
				job.ID = JobID{uuid.New()}
			} else if job.ID, err = ParseJobID(id); err != nil {
				return err
			}

			if job.Status, err = ParseJobStatus(status); err != nil {
				if errors.Is(err, fromstrerrors.ErrNoMatch) {
					return fmt.Errorf("unknown status %q, want todo, doing, or done", status)
				}
				return err
			}

			if job.Priority, err = ParsePriority(priority); err != nil {
				return err
			}

			day, err := ParseWeekday(due)
			if err != nil {
				return err
			}

			out, err := json.Marshal(job)
			if err != nil {
				return err
			}

			fmt.Println(string(out))
			fmt.Println("due on weekday", int(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "job id, a new one is generated when empty")
	cmd.Flags().StringVarP(&status, "status", "s", "todo", "job status")
	cmd.Flags().StringVarP(&priority, "priority", "p", "1", "job priority")
	cmd.Flags().StringVar(&due, "due", "friday", "weekday the job is due")
	return cmd
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Read jobs as JSON from stdin, statuses arrive as keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var jobs []Job
			if err := json.Unmarshal(data, &jobs); err != nil {
				if errors.Is(err, fromstrerrors.ErrNoMatch) {
					return fmt.Errorf("job list holds an unknown status: %w", err)
				}
				return err
			}

			for _, job := range jobs {
				fmt.Printf("%s\t%s\t%s\n", job.ID, job.Title, job.Status)
			}
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{Use: "jobctl"}
	root.AddCommand(newAddCmd(), newLoadCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

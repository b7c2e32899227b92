package cli

import (
	"bufio"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcortez/mailgrab/internal/store"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last-run marker and elapsed time",
		RunE: func(cmd *cobra.Command, args []string) error {
			marker := store.NewLastRunStore(lastRunPath())
			last, ok := marker.Get()

			if jsonFlag {
				return printJSON(toJSONStatus(last, ok))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Status"))
			if !ok {
				fmt.Fprintln(out, "Never run before.")
				fmt.Fprintln(out, mutedStyle.Render("The next fetch will start in first-run mode."))
				return nil
			}

			elapsed := time.Since(last)
			hours := int(elapsed.Hours())
			minutes := int(elapsed.Minutes()) % 60
			fmt.Fprintf(out, "Last run: %s\n", last.Format(time.DateTime))
			fmt.Fprintf(out, "Time since last run: %dh %dm ago\n", hours, minutes)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the last-run marker",
		Long:  "Reset the last-run marker. The next fetch will run in first-run mode instead of fetching incrementally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yesFlag {
				stdin := bufio.NewReader(cmd.InOrStdin())
				if !promptConfirm(stdin, out, "Are you sure you want to reset the last-run marker?", false) {
					fmt.Fprintln(out, "Reset cancelled.")
					return nil
				}
			}

			marker := store.NewLastRunStore(lastRunPath())
			if err := marker.Clear(); err != nil {
				return fmt.Errorf("failed to reset last-run marker: %w", err)
			}

			if jsonFlag {
				return printJSON(jsonAction{OK: true, Action: "reset"})
			}
			fmt.Fprintln(out, "Last-run marker has been reset.")
			fmt.Fprintln(out, mutedStyle.Render("The next fetch will start in first-run mode."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcortez/mailgrab/internal/fetch"
	"github.com/jcortez/mailgrab/internal/gmail"
	"github.com/jcortez/mailgrab/internal/logger"
	"github.com/jcortez/mailgrab/internal/store"
)

const sinceDateFormat = "2006-01-02"

func newFetchCmd() *cobra.Command {
	var (
		daysFlag        int
		sinceFlag       string
		unreadOnlyFlag  bool
		allFlag         bool
		labelFlags      []string
		maxFlag         int64
		interactiveFlag bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch messages from Gmail",
		Long: "Fetch messages from Gmail.\n\n" +
			"By default runs in incremental mode, fetching messages received since\n" +
			"the last successful run. Use --days or --since to override; overridden\n" +
			"runs do not advance the last-run marker.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := resolveGmailCredentials(cfg); err != nil {
				return err
			}

			opts := fetch.DefaultOptions()
			opts.UnreadOnly = resolveUnreadOnly(cfg.Fetch.UnreadOnly, unreadOnlyFlag, cmd.Flags().Changed("unread-only"), allFlag)
			opts.Labels = labelFlags
			opts.MaxResults = int64(cfg.Fetch.MaxResults)
			if cmd.Flags().Changed("max") {
				opts.MaxResults = maxFlag
			}

			var since time.Time
			if sinceFlag != "" {
				since, err = time.ParseInLocation(sinceDateFormat, sinceFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --since date %q (want YYYY-MM-DD): %w", sinceFlag, err)
				}
			}
			days := daysFlag

			marker := store.NewLastRunStore(lastRunPath())
			var policy fetch.SavePolicy

			if days == 0 && since.IsZero() && interactiveFlag && !jsonFlag {
				stdin := bufio.NewReader(cmd.InOrStdin())
				days, since, policy, err = interactiveSetup(cmd, stdin, marker, cfg.Fetch.DefaultDays, &opts)
				if err != nil {
					return err
				}
			} else {
				days, since, policy = resolveFetchRange(days, since, marker, cfg.Fetch.DefaultDays)
			}

			opts.Days = days
			opts.After = since

			currentRun := time.Now()

			client := gmail.NewAPIClient(defaultAccount, store.NewKeyringTokenStore())
			svc := fetch.New(client, logger.Get())

			if !jsonFlag {
				printFetchPlan(os.Stdout, days, since)
			}

			messages, err := svc.Fetch(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to fetch messages: %w", err)
			}

			if jsonFlag {
				if err := printJSON(toJSONMessages(messages)); err != nil {
					return err
				}
			} else {
				renderMessages(os.Stdout, messages)
			}

			if policy == fetch.SaveOnSuccess {
				if err := marker.Set(currentRun); err != nil {
					return fmt.Errorf("failed to save last-run marker: %w", err)
				}
				if !jsonFlag {
					fmt.Printf("\nSaved last run: %s\n", currentRun.Format(time.DateTime))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&daysFlag, "days", 0, "fetch messages from the last N days (overrides incremental mode)")
	cmd.Flags().StringVar(&sinceFlag, "since", "", "fetch messages since a specific date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&unreadOnlyFlag, "unread-only", true, "fetch only unread messages")
	cmd.Flags().BoolVar(&allFlag, "all", false, "fetch read and unread messages")
	cmd.Flags().StringSliceVar(&labelFlags, "label", nil, "filter by Gmail label (repeatable)")
	cmd.Flags().Int64Var(&maxFlag, "max", 100, "maximum number of messages to fetch")
	cmd.Flags().BoolVar(&interactiveFlag, "interactive", true, "prompt for missing options")
	return cmd
}

// resolveUnreadOnly applies the precedence for the read-state filter:
// --all wins, then an explicit --unread-only, then the config default.
func resolveUnreadOnly(cfgDefault, unreadOnly, unreadOnlySet, all bool) bool {
	if all {
		return false
	}
	if unreadOnlySet {
		return unreadOnly
	}
	return cfgDefault
}

// resolveFetchRange decides the fetch range and marker save policy for a
// non-interactive run. An explicit range never advances the marker; with no
// range given the run is incremental (since the marker, or the default day
// window on a first run) and saves on success.
func resolveFetchRange(days int, since time.Time, marker *store.LastRunStore, defaultDays int) (int, time.Time, fetch.SavePolicy) {
	if days > 0 || !since.IsZero() {
		return days, since, fetch.SaveNever
	}
	if last, ok := marker.Get(); ok {
		return 0, last, fetch.SaveOnSuccess
	}
	return defaultDays, time.Time{}, fetch.SaveOnSuccess
}

// interactiveSetup walks the user through choosing a fetch range when no
// range flags were given. It mirrors the incremental-mode rules: the marker
// is advanced on first runs and incremental runs, never on explicit ranges.
func interactiveSetup(cmd *cobra.Command, stdin *bufio.Reader, marker *store.LastRunStore, defaultDays int, opts *fetch.Options) (days int, since time.Time, policy fetch.SavePolicy, err error) {
	out := cmd.OutOrStdout()
	policy = fetch.SaveNever

	last, ok := marker.Get()
	if ok {
		fmt.Fprintf(out, "Last run: %s\n\n", last.Format(time.DateTime))
		choice := promptChoice(stdin, out, "How would you like to fetch messages?", []string{
			"Since last run (incremental)",
			"From last N days",
			"Since a specific date",
		}, 1)

		switch choice {
		case 1:
			since = last
			policy = fetch.SaveOnSuccess
		case 2:
			days = promptInt(stdin, out, "How many days back?", defaultDays)
		case 3:
			dateStr := promptLine(stdin, out, "Start date (YYYY-MM-DD)", "")
			since, err = time.ParseInLocation(sinceDateFormat, dateStr, time.Local)
			if err != nil {
				return 0, time.Time{}, fetch.SaveNever, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
			}
		}
	} else {
		fmt.Fprintln(out, "First run detected.")
		days = promptInt(stdin, out, "How many days of messages to fetch?", defaultDays)
		policy = fetch.SaveOnSuccess
	}

	opts.UnreadOnly = promptConfirm(stdin, out, "Fetch unread messages only?", true)
	return days, since, policy, nil
}

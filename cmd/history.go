package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/txlens/txlens/history"
	"github.com/txlens/txlens/networks"
	"github.com/txlens/txlens/ui"
	"github.com/txlens/txlens/util"
)

// withHistory opens the store for the duration of fn.
func withHistory(fn func(a *app, s *history.Store) error) error {
	a := current
	s, err := a.openHistory()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(a, s)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: fmt.Sprintf("Show the last %d explained transactions", history.MaxEntries),
	RunE: func(cmd *cobra.Command, args []string) error {
		return historyListCmd.RunE(cmd, args)
	},
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List explained transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(func(a *app, s *history.Store) error {
			entries, err := s.List()
			if err != nil {
				return err
			}
			rows := util.DisplayHistory(a.ui, entries)
			return a.writeJSON(rows)
		})
	},
}

// chooseEntry lists the entries and returns the 0-based index picked.
func chooseEntry(u ui.UI, entries []history.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, fmt.Errorf("history is empty")
	}
	options := make([]string, len(entries))
	for i, e := range entries {
		summary := ""
		if e.Explanation != nil {
			summary = e.Explanation.Summary
		}
		options[i] = fmt.Sprintf("%s  %s", e.Hash, summary)
	}
	idx := u.Choose("Which transaction?", options)
	if idx < 0 {
		return 0, fmt.Errorf("no history entry chosen")
	}
	return idx, nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show [N]",
	Short: "Show the full explanation of the Nth history entry (1 is the newest), asks when N is omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(func(a *app, s *history.Store) error {
			var idx int
			if len(args) == 0 {
				entries, err := s.List()
				if err != nil {
					return err
				}
				if idx, err = chooseEntry(a.ui, entries); err != nil {
					return err
				}
			} else {
				n, err := strconv.Atoi(strings.TrimSpace(args[0]))
				if err != nil {
					return fmt.Errorf("%q is not a history index", args[0])
				}
				idx = n - 1
			}
			entry, err := s.Get(idx)
			if err != nil {
				return fmt.Errorf("entry %d: %w", idx+1, err)
			}
			network := a.network
			if entry.Explanation.Network != "" {
				if found, err := networks.GetNetwork(entry.Explanation.Network); err == nil {
					network = found
				}
			}
			util.DisplayExplanation(a.ui, entry.Explanation, network)
			return a.writeJSON(entry.Explanation)
		})
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Full text search over summaries, types, protocols and hashes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHistory(func(a *app, s *history.Store) error {
			entries, err := s.Search(strings.Join(args, " "))
			if err != nil {
				return err
			}
			util.DisplayHistory(a.ui, entries)
			return nil
		})
	},
}

// exportHistory writes csv to path, or to the ui writer for "" and "-".
func exportHistory(u ui.UI, s *history.Store, path string) error {
	if path == "" || path == "-" {
		return s.ExportCSV(u.Writer())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", path, err)
	}
	defer f.Close()
	if err := s.ExportCSV(f); err != nil {
		return err
	}
	u.Success("History exported to %s", path)
	return nil
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history as csv",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("csv")
		return withHistory(func(a *app, s *history.Store) error {
			return exportHistory(a.ui, s, path)
		})
	},
}

// clearHistory asks for confirmation unless yes is set.
func clearHistory(u ui.UI, s *history.Store, yes bool) (bool, error) {
	if !yes && !u.Confirm("Remove every history entry?", false) {
		u.Info("History kept")
		return false, nil
	}
	if err := s.Clear(); err != nil {
		return false, err
	}
	u.Success("History cleared")
	return true, nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every history entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return withHistory(func(a *app, s *history.Store) error {
			_, err := clearHistory(a.ui, s, yes)
			return err
		})
	},
}

func init() {
	historyExportCmd.Flags().String("csv", "", `output file, "-" or empty for stdout`)
	historyClearCmd.Flags().BoolP("yes", "y", false, "don't ask for confirmation")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historySearchCmd, historyExportCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

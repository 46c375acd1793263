package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/NamanBalaji/tmodal/internal/config"
	"github.com/NamanBalaji/tmodal/internal/repository"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently shown dialogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetConfig(cmd.Flags())
		if err != nil {
			return fmt.Errorf("error loading config %s: %w", config.Path(), err)
		}

		repo, err := openHistory(cfg.History.Path)
		if err != nil {
			return err
		}
		defer repo.Close()

		records, err := repo.FindAll(cfg.History.Limit)
		if err != nil {
			return err
		}

		printHistory(cmd.OutOrStdout(), records)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func printHistory(w io.Writer, records []*repository.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No dialogs shown yet")
		return
	}

	for _, r := range records {
		heading := r.Title
		if heading == "" {
			heading = r.Body
		}

		fmt.Fprintf(w, "%s  %s  %-16s %s  [%s]\n",
			r.ShownAt.Format(time.DateTime),
			r.ID.String()[:8],
			outcome(r),
			heading,
			strings.Join(r.Buttons, " "),
		)
	}
}

func outcome(r *repository.Record) string {
	var s string

	switch {
	case r.ClosedAt.IsZero():
		s = "open"
	case r.Dismissed():
		s = "dismissed"
	default:
		s = "pressed " + r.Pressed
	}

	if r.Overflow() {
		s += "!"
	}

	return s
}

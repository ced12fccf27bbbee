package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"voice-scheduler/pkg/voicecmd"
)

type interpretFlags struct {
	ref          string
	timezone     string
	defaultStart string
	asJSON       bool
}

func newRootCmd(in io.Reader, out io.Writer, now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:          "voicecmd",
		Short:        "Turn scheduling commands into structured events",
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	root.AddCommand(newInterpretCmd(now), newGCalAuthCmd())
	return root
}

func newInterpretCmd(now func() time.Time) *cobra.Command {
	var flags interpretFlags

	cmd := &cobra.Command{
		Use:   "interpret [utterance...]",
		Short: "Interpret one utterance (read from stdin when no arguments are given)",
		Example: `  voicecmd interpret "Team sync tomorrow at 9:30am"
  echo "Urgent meeting at 2pm" | voicecmd interpret --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			utterance := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				utterance = string(b)
			}
			return runInterpret(cmd.OutOrStdout(), utterance, flags, now)
		},
	}

	cmd.Flags().StringVar(&flags.ref, "ref", "", "reference instant (RFC3339), default now")
	cmd.Flags().StringVar(&flags.timezone, "tz", "", "IANA timezone for calendar dates, default the reference instant's")
	cmd.Flags().StringVar(&flags.defaultStart, "default-start", voicecmd.DefaultStartTime.String(), "start time used when none is spoken (HH:MM)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print JSON")
	return cmd
}

type intentJSON struct {
	Title     string             `json:"title"`
	Date      string             `json:"date"`
	StartTime string             `json:"start_time"`
	Category  string             `json:"category"`
	Priority  string             `json:"priority"`
	Suggested voicecmd.Defaulted `json:"suggested"`
}

func runInterpret(out io.Writer, utterance string, flags interpretFlags, now func() time.Time) error {
	ref := now()
	if flags.ref != "" {
		t, err := time.Parse(time.RFC3339, flags.ref)
		if err != nil {
			return fmt.Errorf("invalid --ref: %w", err)
		}
		ref = t
	}

	start, err := voicecmd.ParseTimeOfDay(flags.defaultStart)
	if err != nil {
		return fmt.Errorf("invalid --default-start: %w", err)
	}

	in, err := voicecmd.New(voicecmd.Config{Timezone: flags.timezone, DefaultStartTime: &start})
	if err != nil {
		return err
	}

	intent, err := in.Interpret(utterance, ref)
	if err != nil {
		return err
	}

	if flags.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(intentJSON{
			Title:     intent.Title,
			Date:      intent.Date.Format("2006-01-02"),
			StartTime: intent.StartTime.String(),
			Category:  string(intent.Category),
			Priority:  string(intent.Priority),
			Suggested: intent.Defaulted,
		})
	}

	mark := func(defaulted bool) string {
		if defaulted {
			return " (suggested)"
		}
		return ""
	}
	fmt.Fprintf(out, "title:    %s\n", intent.Title)
	fmt.Fprintf(out, "date:     %s%s\n", intent.Date.Format("2006-01-02"), mark(intent.Defaulted.Date))
	fmt.Fprintf(out, "start:    %s%s\n", intent.StartTime, mark(intent.Defaulted.StartTime))
	fmt.Fprintf(out, "category: %s%s\n", intent.Category, mark(intent.Defaulted.Category))
	fmt.Fprintf(out, "priority: %s%s\n", intent.Priority, mark(intent.Defaulted.Priority))
	return nil
}

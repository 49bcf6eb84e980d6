package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/inspect"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/output"
)

func newInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect [deck.pptx]",
		Short: "List the slides of a deck and their text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := inspect.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("inspect failed: %w", err)
			}

			if asJSON {
				data, err := output.ToJSON(summary, true)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return printSummary(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

func printSummary(w io.Writer, summary *inspect.Summary) error {
	for _, slide := range summary.Slides {
		if _, err := fmt.Fprintf(w, "Slide %d (%d shapes, %d pictures)\n", slide.Index, slide.Shapes, slide.Pictures); err != nil {
			return err
		}
		for _, p := range slide.Paragraphs {
			if _, err := fmt.Fprintf(w, "  %s\n", p); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d slides\n", len(summary.Slides))
	return err
}

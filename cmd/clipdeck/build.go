package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/output"
)

func newBuildCmd() *cobra.Command {
	var (
		logoPath   string
		outputPath string
		format     string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "build [spreadsheet]",
		Short: "Build a deck from a local spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]

			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			var enc output.Encoder
			switch format {
			case "pptx":
				enc = output.NewDirectDownload()
			case "base64":
				enc = output.NewBase64Envelope()
			default:
				return fmt.Errorf("invalid format: %s (must be pptx or base64)", format)
			}

			report, err := clipdeck.Generate(cmd.Context(), clipdeck.Input{
				WorkbookPath: inputPath,
				LogoPath:     logoPath,
			}, cfg.Options())
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}

			payload, err := enc.Encode(report.PPTX)
			if err != nil {
				return fmt.Errorf("encoding failed: %w", err)
			}
			body := payload.Body
			if format == "base64" && pretty {
				var indented bytes.Buffer
				if err := json.Indent(&indented, body, "", "  "); err != nil {
					return err
				}
				body = indented.Bytes()
			}

			if outputPath == "" {
				if format == "pptx" {
					outputPath = defaultOutputPath(inputPath)
				} else {
					_, err := cmd.OutOrStdout().Write(append(body, '\n'))
					return err
				}
			}

			if err := atomic.WriteFile(outputPath, bytes.NewReader(body)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			logger.Info("deck written",
				"output", outputPath,
				"slides", len(report.Deck.Slides),
				"categories", len(report.Workbook.Categories),
				"records", report.Workbook.RecordCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&logoPath, "logo", "", "logo image placed on every slide")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: <spreadsheet>.pptx, or stdout for base64)")
	cmd.Flags().StringVar(&format, "format", "pptx", "output format: pptx, base64")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the base64 envelope")
	return cmd
}

// defaultOutputPath replaces the spreadsheet extension with .pptx.
func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".pptx"
}

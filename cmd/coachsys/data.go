package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/chenhoward456-hash/coach-system/internal/content"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

var clipboardWriteAll = clipboard.WriteAll

var errNothingSaved = errors.New("nothing saved yet")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the weekly tasks, self-score and diagnosis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := storage.ClearAll(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", strings.Join(models.ClearableKeys, ", "))
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy a message template or report to the clipboard",
}

var (
	messageVars  map[string]string
	printOnly    bool
	exportOutput string
)

var copyMessageCmd = &cobra.Command{
	Use:   "message <id>",
	Short: "Copy a message template with --var name=value filled in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := messageText(args[0], messageVars)
		if err != nil {
			return err
		}
		return deliver(cmd.OutOrStdout(), text)
	},
}

var copyScoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Copy the self-score report",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := scoreReport()
		if err != nil {
			return err
		}
		return deliver(cmd.OutOrStdout(), text)
	},
}

var copyDiagnosisCmd = &cobra.Command{
	Use:   "diagnosis",
	Short: "Copy the diagnosis report",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := diagnosisReport()
		if err != nil {
			return err
		}
		return deliver(cmd.OutOrStdout(), text)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved records as text",
}

var exportReflectionsCmd = &cobra.Command{
	Use:   "reflections",
	Short: "Write every weekly reflection to a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := reflectionsExport()
		if err != nil {
			return err
		}
		path := exportOutput
		if path == "" {
			path = services.ExportFileName(today())
		}
		if path == "-" {
			_, err := io.WriteString(cmd.OutOrStdout(), text)
			return err
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	copyMessageCmd.Flags().StringToStringVar(&messageVars, "var", nil, "template variable, e.g. --var name=小明")
	copyCmd.PersistentFlags().BoolVar(&printOnly, "print", false, "print instead of copying to the clipboard")
	copyCmd.AddCommand(copyMessageCmd, copyScoreCmd, copyDiagnosisCmd)

	exportReflectionsCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, - for stdout")
	exportCmd.AddCommand(exportReflectionsCmd)
}

// deliver puts text on the clipboard, or prints it with --print.
func deliver(w io.Writer, text string) error {
	if printOnly {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	_, err := fmt.Fprintln(w, "✅ copied to clipboard")
	return err
}

func messageText(id string, vars map[string]string) (string, error) {
	msg, ok := content.MustLoad().Message(id)
	if !ok {
		return "", fmt.Errorf("message %q: %w", id, services.ErrNotFound)
	}
	return content.Fill(msg.Content, vars), nil
}

func scoreReport() (string, error) {
	scores, err := storage.GetScores()
	if err != nil {
		return "", err
	}
	if scores == nil {
		return "", fmt.Errorf("self-score: %w", errNothingSaved)
	}
	return services.FormatScoreReport(services.EvaluateSelfScore(*scores), today()), nil
}

func diagnosisReport() (string, error) {
	data, err := storage.GetDiagnosis()
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", fmt.Errorf("diagnosis: %w", errNothingSaved)
	}
	result, err := services.Diagnose(models.DiagnoseRequest{
		MainIssue:      data.MainIssue,
		Activities:     data.Activities,
		TimeCommitment: data.TimeCommitment,
	})
	if err != nil {
		return "", err
	}
	return services.FormatDiagnosisReport(result, today()), nil
}

func reflectionsExport() (string, error) {
	list, err := storage.GetReflections()
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("reflections: %w", errNothingSaved)
	}
	return services.ExportReflections(list, today(), cfg.Location()), nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/gofinances/internal/cli"
	"github.com/Veraticus/gofinances/internal/form"
	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/ofx"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/spf13/cobra"
)

// importStore is what an import needs from the gateway.
type importStore interface {
	service.TransactionAppender
	service.TransactionLister
}

// importResult counts what happened to each parsed entry.
type importResult struct {
	Saved      int
	Duplicates int
	Invalid    int
}

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import statement lines from OFX or QFX files exported by your bank.

Every line becomes a transaction: credits are incomes, debits are outcomes.
Lines go through the same validation as the register screen, and lines
imported before are skipped.

Examples:
  # Import a single file as food expenses
  gofinances import-ofx --category food ~/Downloads/extrato.ofx

  # Preview several files without saving
  gofinances import-ofx --category purchases --dry-run ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().StringP("category", "c", "", "category key given to every imported transaction")
	cmd.Flags().BoolP("dry-run", "d", false, "preview import without saving")
	cmd.Flags().BoolP("verbose", "v", false, "print every parsed entry")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	categoryKey, _ := cmd.Flags().GetString("category")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	category, ok := model.FindCategory(categoryKey)
	if !ok {
		return fmt.Errorf("unknown category %q (one of: %s)", categoryKey, categoryKeys())
	}

	settings, err := loadUserSettings()
	if err != nil {
		return err
	}

	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	entries := parseFiles(ctx, files)
	if len(entries) == 0 {
		slog.Warn("No transactions found in any file")
		fmt.Fprintln(out, cli.FormatWarning("Nenhuma transação encontrada"))
		return nil
	}

	slog.Info("Importing OFX files",
		"file_count", len(files),
		"entries", len(entries),
		"category", category.Key,
		"dry_run", dryRun)

	if dryRun || verbose {
		for _, e := range entries {
			fmt.Fprintln(out, formatTransactionLine(e.Transaction(category.Key)))
		}
	}
	if dryRun {
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Simulação: %d transações seriam importadas", len(entries))))
		return nil
	}

	gateway, closeStore, err := openGateway(ctx, settings)
	if err != nil {
		return err
	}
	defer closeStore()

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := handler.HandleInterrupts(ctx)
	defer stop()

	bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(entries), "Importando transações")
	result, err := importEntries(ctx, gateway, settings.User.ID, entries, category.Key, func(saved int) {
		handler.RecordSaved(saved)
		if barErr := bar.Add(1); barErr != nil {
			slog.Warn("Failed to update progress bar", "error", barErr)
		}
	})
	if handler.WasInterrupted() {
		return nil
	}
	if err != nil {
		return err
	}

	printImportResult(out, result)
	return nil
}

// importEntries appends every valid entry not stored before, in order.
// progress is called after each entry with the number saved so far.
func importEntries(ctx context.Context, store importStore, userID string, entries []ofx.Entry, category string, progress func(saved int)) (importResult, error) {
	var result importResult

	seen, err := existingIDs(ctx, store, userID)
	if err != nil {
		return result, fmt.Errorf("failed to read existing transactions: %w", err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		txn := entry.Transaction(category)
		switch {
		case seen[txn.ID]:
			result.Duplicates++
		case form.TransactionSchema.Validate(form.Values{Name: txn.Name, Amount: txn.Amount}) != nil:
			result.Invalid++
			slog.Warn("Skipping invalid statement line", "fitid", entry.FitID, "name", txn.Name)
		default:
			if err := store.Append(ctx, userID, txn); err != nil {
				return result, fmt.Errorf("failed to save %q: %w", txn.Name, err)
			}
			seen[txn.ID] = true
			result.Saved++
		}

		if progress != nil {
			progress(result.Saved)
		}
	}

	slog.Info("OFX import finished",
		"user_id", userID,
		"saved", result.Saved,
		"duplicates", result.Duplicates,
		"invalid", result.Invalid)
	return result, nil
}

// expandFiles resolves globs; a pattern that matches nothing is kept if it names a file.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
		} else {
			slog.Warn("No files found matching pattern", "pattern", pattern)
		}
	}

	if len(files) == 0 {
		return nil, errors.New("no files found to import")
	}
	return files, nil
}

// parseFiles parses each file, logging and skipping the ones that fail.
// Entries repeated across files are kept once.
func parseFiles(ctx context.Context, files []string) []ofx.Entry {
	parser := ofx.NewParser()
	seen := make(map[string]bool)
	var all []ofx.Entry

	for _, path := range files {
		entries, err := parseFile(ctx, parser, path)
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", path, "error", err)
			continue
		}

		added := 0
		for _, e := range entries {
			if seen[e.ImportID()] {
				continue
			}
			seen[e.ImportID()] = true
			all = append(all, e)
			added++
		}

		slog.Info("Processed file",
			"file", filepath.Base(path),
			"entries_found", len(entries),
			"added", added,
			"duplicates", len(entries)-added)
	}
	return all
}

func parseFile(ctx context.Context, parser *ofx.Parser, path string) ([]ofx.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return parser.ParseFile(ctx, f)
}

func printImportResult(w io.Writer, r importResult) {
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("%d transações importadas", r.Saved)))
	if r.Duplicates > 0 {
		fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("%d já existiam e foram ignoradas", r.Duplicates)))
	}
	if r.Invalid > 0 {
		fmt.Fprintln(w, cli.FormatWarning(fmt.Sprintf("%d linhas inválidas foram ignoradas", r.Invalid)))
	}
}

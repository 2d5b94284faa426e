package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/gofinances/internal/cli"
	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/storage"
	"github.com/Veraticus/gofinances/internal/tui/components"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"listagem", "ls"},
		Short:   "Print the user's transactions and totals",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	cmd.Flags().Bool("json", false, "print the stored JSON list as is")
	cmd.Flags().IntP("limit", "n", 0, "show only the newest N transactions")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	limit, _ := cmd.Flags().GetInt("limit")

	settings, err := loadUserSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	gateway, closeStore, err := openGateway(ctx, settings)
	if err != nil {
		return err
	}
	defer closeStore()

	txns, err := gateway.List(ctx, settings.User.ID)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		raw, err := storage.EncodeTransactions(txns)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, raw)
		return nil
	}

	printListing(out, settings.User, txns, limit)
	return nil
}

func printListing(w io.Writer, user model.User, txns []model.Transaction, limit int) {
	title := "Listagem"
	if user.Name != "" {
		title = "Olá, " + user.Name + " · Listagem"
	}
	fmt.Fprintln(w, cli.FormatTitle(title))

	summary := components.Summarize(txns)
	fmt.Fprintln(w, cli.RenderBox("Resumo", fmt.Sprintf("Entradas  %s\nSaídas    %s\nTotal     %s",
		cli.SuccessStyle.Render(components.FormatBRL(summary.Income)),
		cli.ErrorStyle.Render(components.FormatBRL(summary.Expense)),
		cli.BoldStyle.Render(components.FormatBRL(summary.Total())))))

	if len(txns) == 0 {
		fmt.Fprintln(w, cli.SubtleStyle.Render("Nenhuma transação cadastrada"))
		return
	}

	sorted := components.SortNewestFirst(txns)
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	for _, txn := range sorted {
		fmt.Fprintln(w, formatTransactionLine(txn))
	}

	if summary.Skipped > 0 {
		fmt.Fprintln(w, cli.FormatWarning(fmt.Sprintf("%d registros com valor inválido ficaram fora do total", summary.Skipped)))
	}
}

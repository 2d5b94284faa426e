package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/gofinances/internal/cli"
	"github.com/Veraticus/gofinances/internal/form"
	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/register"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/Veraticus/gofinances/internal/tui/components"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// errSubmitRejected is returned after the reasons were already printed.
var errSubmitRejected = errors.New("transaction not saved")

type addOptions struct {
	name        string
	amount      string
	txnType     string
	category    string
	interactive bool
}

func addCmd() *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a transaction without opening the TUI",
		Long: `Register an income or an expense with the same validation as the
"Cadastro" screen.

Examples:
  gofinances add --name Pizza --amount 45.90 --type outcome --category food
  gofinances add -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdd(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "transaction name")
	cmd.Flags().StringVar(&opts.amount, "amount", "", "positive amount, e.g. 45.90")
	cmd.Flags().StringVar(&opts.txnType, "type", "", "income or outcome")
	cmd.Flags().StringVar(&opts.category, "category", "", "category key (see gofinances categories)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "ask for the values that were not given")

	return cmd
}

func runAdd(cmd *cobra.Command, opts *addOptions) error {
	settings, err := loadUserSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if opts.interactive {
		prompter := cli.NewPrompter(cmd.InOrStdin(), out)
		if err := promptMissing(ctx, prompter, opts); err != nil {
			return err
		}
	}

	gateway, closeStore, err := openGateway(ctx, settings)
	if err != nil {
		return err
	}
	defer closeStore()

	var navigatedTo string
	screen, err := register.NewScreen(settings.User, gateway,
		register.WithNavigator(service.NavigatorFunc(func(s string) { navigatedTo = s })))
	if err != nil {
		return err
	}

	if err := fillScreen(screen, opts); err != nil {
		return err
	}

	txn, err := screen.Submit(ctx)
	if err != nil {
		return reportSubmitError(out, err)
	}

	fmt.Fprintln(out, cli.FormatSuccess("Transação salva"))
	fmt.Fprintln(out, formatTransactionLine(txn))
	if navigatedTo != "" {
		fmt.Fprintln(out, cli.SubtleStyle.Render("→ "+navigatedTo+": gofinances list"))
	}
	return nil
}

// fillScreen copies the options into the screen the same way the form does.
func fillScreen(screen *register.Screen, opts *addOptions) error {
	screen.Form().SetValue(form.FieldName, opts.name)
	screen.Form().SetValue(form.FieldAmount, opts.amount)

	if opts.txnType != "" {
		t, err := model.ParseTransactionType(opts.txnType)
		if err != nil {
			return err
		}
		if err := screen.SelectType(t); err != nil {
			return err
		}
	}

	if opts.category != "" {
		c, ok := model.FindCategory(opts.category)
		if !ok {
			return fmt.Errorf("unknown category %q (one of: %s)", opts.category, categoryKeys())
		}
		screen.SetCategory(model.Selected(c))
	}
	return nil
}

// reportSubmitError prints field errors or the alert text.
func reportSubmitError(w io.Writer, err error) error {
	var fieldErrs form.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, field := range []string{form.FieldName, form.FieldAmount} {
			if fe, ok := fieldErrs[field]; ok {
				fmt.Fprintln(w, cli.FormatError(fe.Message))
			}
		}
		return errSubmitRejected
	}

	if msg, ok := register.AlertMessage(err); ok {
		fmt.Fprintln(w, cli.FormatError(msg))
		if errors.Is(err, register.ErrPersistence) {
			return err
		}
		return errSubmitRejected
	}
	return err
}

func promptMissing(ctx context.Context, p *cli.Prompter, opts *addOptions) error {
	var err error

	if opts.name == "" {
		opts.name, err = p.Text(ctx, "Nome", fieldValidator(form.FieldName))
		if err != nil {
			return err
		}
	}

	if opts.amount == "" {
		opts.amount, err = p.Text(ctx, "Preço", fieldValidator(form.FieldAmount))
		if err != nil {
			return err
		}
	}

	if opts.txnType == "" {
		types := []model.TransactionType{model.TypePositive, model.TypeNegative}
		idx, err := p.Choice(ctx, "Tipo", []string{types[0].Label(), types[1].Label()})
		if err != nil {
			return err
		}
		opts.txnType = string(types[idx])
	}

	if opts.category == "" {
		names := make([]string, len(model.DefaultCategories))
		for i, c := range model.DefaultCategories {
			names[i] = themes.GetCategoryIcon(c.Key) + " " + c.Name
		}
		idx, err := p.Choice(ctx, "Categoria", names)
		if err != nil {
			return err
		}
		opts.category = model.DefaultCategories[idx].Key
	}

	return nil
}

// fieldValidator checks a single field against the register schema.
func fieldValidator(field string) func(string) string {
	return func(value string) string {
		errs := form.TransactionSchema.Validate(valuesFor(field, value))
		if fe, ok := errs[field]; ok {
			return fe.Message
		}
		return ""
	}
}

func valuesFor(field, value string) form.Values {
	switch field {
	case form.FieldName:
		return form.Values{Name: value}
	case form.FieldAmount:
		return form.Values{Amount: value}
	}
	return form.Values{}
}

func categoryKeys() string {
	keys := make([]string, len(model.DefaultCategories))
	for i, c := range model.DefaultCategories {
		keys[i] = c.Key
	}
	return strings.Join(keys, ", ")
}

// formatTransactionLine renders one record for terminal output.
func formatTransactionLine(txn model.Transaction) string {
	amount := txn.Amount
	if d, err := decimal.NewFromString(strings.TrimSpace(txn.Amount)); err == nil {
		amount = components.FormatBRL(d)
	}
	if txn.Type == model.TypeNegative {
		amount = cli.FormatExpense(amount)
	} else {
		amount = cli.FormatIncome(amount)
	}

	category := txn.Category
	if c, ok := model.FindCategory(txn.Category); ok {
		category = themes.GetCategoryIcon(c.Key) + " " + c.Name
	}

	return fmt.Sprintf("%s  %-24s %-18s %s",
		txn.Date.Local().Format("02/01/2006"),
		txn.Name,
		category,
		amount)
}

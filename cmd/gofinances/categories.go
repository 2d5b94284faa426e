package main

import (
	"fmt"

	"github.com/Veraticus/gofinances/internal/cli"
	"github.com/Veraticus/gofinances/internal/model"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"categorias"},
		Short:   "List the category catalogue",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.TableHeaderStyle.Render(fmt.Sprintf("%-12s %s", "Chave", "Nome")))
			for _, c := range model.DefaultCategories {
				name := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render(c.Name)
				fmt.Fprintf(out, "%s %s %s\n",
					cli.TableCellStyle.Render(fmt.Sprintf("%-10s", c.Key)),
					themes.GetCategoryIcon(c.Key),
					name)
			}
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"domain-finder/internal/tld"
)

var tldsCmd = &cobra.Command{
	Use:   "tlds",
	Short: "List the built-in TLD catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, category := range tld.Categories() {
			fmt.Println(headerStyle.Render(category.Name))
			fmt.Print("  ")
			for _, suffix := range category.TLDs {
				fmt.Printf("%-10s", suffix)
			}
			fmt.Println()
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(tldsCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gallery-gen/internal/lore"
)

var loreOutput string

var loreCmd = &cobra.Command{
	Use:   "lore <file.md>",
	Short: "Convert a markdown lore page to HTML",
	Long: `Convert a markdown lore page into a standalone HTML document styled
like the gallery pages. GitHub-flavored markdown (tables, strikethrough,
autolinks) is supported.

Example:
  gallery-gen lore carcosa.md
  gallery-gen lore carcosa.md -o public/carcosa.html`,
	Args: cobra.ExactArgs(1),
	RunE: runLore,
}

func init() {
	loreCmd.Flags().StringVarP(&loreOutput, "output", "o", "", "Output file (default: input with .html extension)")
	rootCmd.AddCommand(loreCmd)
}

func runLore(cmd *cobra.Command, args []string) error {
	out, err := lore.ConvertFile(args[0], loreOutput)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gallery-gen",
	Short: "Generate a static, paginated image gallery",
	Long: `gallery-gen turns a directory of screenshots into a static HTML gallery.

It derives metadata from filenames (category tag, timestamp, topical
tags), generates cached thumbnails, and writes one HTML page per group
of images plus a JSON metadata snapshot. The output is plain static
files suitable for any web host.

Example usage:
  gallery-gen build                        # Build from ./images into .
  gallery-gen build -s shots -o public     # Custom source and output
  gallery-gen rename images                # Normalize legacy file prefixes
  gallery-gen lore carcosa.md              # Convert a lore page to HTML`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

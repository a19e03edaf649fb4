package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gallery-gen/internal/logging"
)

var (
	renamePrefix string
	renameDryRun bool
)

// legacyPrefixes are stripped before the canonical prefix is applied.
// Order matters: longer prefixes must be checked before their prefixes.
var legacyPrefixes = []string{"mc_minecraft_", "minecraft_minecraft_", "mc_", "minecraft_"}

var renameCmd = &cobra.Command{
	Use:   "rename <folder>",
	Short: "Normalize legacy filename prefixes",
	Long: `Rename files in a folder so they all carry one canonical prefix.

Files with known legacy prefixes (mc_, mc_minecraft_, minecraft_minecraft_,
minecraft_) have those stripped before the canonical prefix is applied.
Running the command twice is a no-op.

Example:
  gallery-gen rename images
  gallery-gen rename images --prefix server_ --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringVar(&renamePrefix, "prefix", "minecraft_", "Canonical prefix to apply")
	renameCmd.Flags().BoolVarP(&renameDryRun, "dry-run", "n", false, "Print renames without performing them")
	rootCmd.AddCommand(renameCmd)
}

// cleanName strips known legacy prefixes and applies the canonical one.
func cleanName(name, prefix string) string {
	for _, legacy := range legacyPrefixes {
		if strings.HasPrefix(name, legacy) {
			name = strings.TrimPrefix(name, legacy)
			break
		}
	}
	return prefix + name
}

func runRename(cmd *cobra.Command, args []string) error {
	folder := args[0]

	entries, err := os.ReadDir(folder)
	if err != nil {
		return fmt.Errorf("failed to read folder: %w", err)
	}

	renamed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		newName := cleanName(name, renamePrefix)
		if name == newName {
			logging.Debug("Already clean: %s", name)
			continue
		}

		fmt.Printf("%s -> %s\n", name, newName)
		if renameDryRun {
			renamed++
			continue
		}

		oldPath := filepath.Join(folder, name)
		newPath := filepath.Join(folder, newName)
		if _, err := os.Stat(newPath); err == nil {
			logging.Warn("Skipping %s: %s already exists", name, newName)
			continue
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("failed to rename %s: %w", name, err)
		}
		renamed++
	}

	if renameDryRun {
		fmt.Printf("%d file(s) would be renamed\n", renamed)
	} else {
		fmt.Printf("%d file(s) renamed\n", renamed)
	}
	return nil
}

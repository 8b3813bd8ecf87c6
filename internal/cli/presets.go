package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daryltucker/ipopt-runner/internal/assets"
	"github.com/daryltucker/ipopt-runner/internal/output"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage IPOPT options-file presets",
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install bundled option presets to ~/.config/ipopt-runner/presets/",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		targetDir := filepath.Join(home, ".config", "ipopt-runner", "presets")
		output.Logger.Info("Installing option presets...", "target", targetDir)

		if err := os.MkdirAll(targetDir, 0755); err != nil {
			return fmt.Errorf("failed to create target directory %s: %w", targetDir, err)
		}

		// Read embedded files from internal/assets/presets/
		entries, err := fs.ReadDir(assets.Presets, "presets")
		if err != nil {
			return fmt.Errorf("failed to read embedded presets: %w", err)
		}

		count := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			// Read file content
			content, err := fs.ReadFile(assets.Presets, "presets/"+entry.Name())
			if err != nil {
				output.Logger.Error("Failed to read embedded file", "file", entry.Name(), "error", err)
				continue
			}

			// Write to target
			targetPath := filepath.Join(targetDir, entry.Name())
			if err := os.WriteFile(targetPath, content, 0644); err != nil {
				output.Logger.Error("Failed to write to target", "path", targetPath, "error", err)
				continue
			}

			output.Logger.Info("Installed preset", "name", entry.Name())
			count++
		}

		output.Logger.Info("Installation Complete", "total_files", count)
		return nil
	},
}

func init() {
	presetsCmd.AddCommand(installCmd)
	rootCmd.AddCommand(presetsCmd)
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [file.json]",
	Short: "Import a company profile from a JSON file",
	Long: `Import a company profile from a JSON file and submit it as a new
company. The file holds a single profile object using the same field
names the wizard produces.

With --watch the command keeps running and re-imports the file every
time it is written, which is handy when the JSON is exported from
another tool.

Examples:
  atlas import acme.json
  atlas import acme.json --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importWatch, "watch", false, "re-import whenever the file changes")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if accessService == nil || submissionService == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()
	if _, err := accessService.Authorize(ctx); err != nil {
		return describeAccessError(err)
	}

	path := args[0]
	if err := importFile(ctx, cmd, path); err != nil {
		if !importWatch {
			return err
		}
		// In watch mode a bad first read is not fatal; the next write
		// may fix it.
		cmd.PrintErrf("import failed: %v\n", err)
	}

	if !importWatch {
		return nil
	}
	return watchImport(ctx, cmd, path)
}

func importFile(ctx context.Context, cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var profile domain.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	profile.ID = ""
	profile.EnsureLists()

	id, err := submissionService.Submit(ctx, &profile, domain.ModeCreate)
	if err != nil {
		return err
	}
	cmd.Printf("Imported %s. Company ID: %s\n", filepath.Base(path), id)
	return nil
}

// watchImport re-submits the file on every write until interrupted.
// Events are debounced because editors fire several writes per save.
func watchImport(ctx context.Context, cmd *cobra.Command, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that replace
	// the file on save would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	cmd.Printf("Watching %s (press Ctrl+C to stop)\n", path)

	var pending bool
	debounce := time.NewTicker(500 * time.Millisecond)
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-interrupt:
			cmd.Println("Stopped watching.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("change detected: %s", event.Name)
			pending = true

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			if err := importFile(ctx, cmd, path); err != nil {
				cmd.PrintErrf("import failed: %v\n", err)
			}
		}
	}
}

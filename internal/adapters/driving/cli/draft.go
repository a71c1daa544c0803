package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect and clear saved wizard drafts",
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drafts",
	RunE:  runDraftList,
}

var draftClearCmd = &cobra.Command{
	Use:   "clear [scope]",
	Short: "Discard a saved draft",
	Long: `Discard a saved draft without submitting it.

The scope is "create" for a new-company draft or "edit:<company-id>"
for an edit draft, as shown by 'atlas draft list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runDraftClear,
}

func init() {
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftClearCmd)
	rootCmd.AddCommand(draftCmd)
}

func runDraftList(cmd *cobra.Command, _ []string) error {
	if draftStore == nil {
		return errors.New("draft store not configured")
	}

	drafts, err := draftStore.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing drafts: %w", err)
	}

	if len(drafts) == 0 {
		cmd.Println("No drafts saved.")
		return nil
	}

	cmd.Printf("%-44s %-30s %s\n", "SCOPE", "STEP", "COMPANY")
	for _, draft := range drafts {
		name := ""
		if draft.State != nil {
			name = draft.State.Name
		}
		cmd.Printf("%-44s %-30s %s\n", draft.Scope, draft.Step, name)
	}
	return nil
}

func runDraftClear(cmd *cobra.Command, args []string) error {
	if draftStore == nil {
		return errors.New("draft store not configured")
	}

	scope := domain.DraftScope(args[0])
	if err := draftStore.Clear(context.Background(), scope); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	cmd.Printf("Cleared draft %s\n", scope)
	return nil
}

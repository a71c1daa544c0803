package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/services"
)

var profileFresh bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Create or edit company profiles",
	Long: `Create or edit company profiles through the interactive wizard.

The wizard requires a signed-in account with an ADMIN role. Progress is
saved as a draft after every change; an interrupted session resumes
where it left off.

Examples:
  # Start a new company profile
  atlas profile new

  # Start over, discarding the saved draft
  atlas profile new --fresh

  # Edit an existing company
  atlas profile edit 2f1f6d0e-0c6b-4c54-9d8e-1f2a3b4c5d6e`,
}

var profileNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new company profile",
	RunE:  runProfileNew,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit [company-id]",
	Short: "Edit an existing company profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileEdit,
}

func init() {
	profileNewCmd.Flags().BoolVar(&profileFresh, "fresh", false, "discard any saved draft and start over")
	profileCmd.AddCommand(profileNewCmd)
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileNew(cmd *cobra.Command, _ []string) error {
	if accessService == nil || submissionService == nil || draftStore == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()
	if _, err := accessService.Authorize(ctx); err != nil {
		return describeAccessError(err)
	}

	wizard := services.NewCreateWizard(draftStore, submissionService)
	if profileFresh {
		if err := wizard.Abandon(ctx); err != nil {
			return err
		}
	} else if err := wizard.Restore(ctx); err != nil {
		return err
	}

	return launchWizard(cmd, wizard)
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	if accessService == nil || profileService == nil || submissionService == nil || draftStore == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()
	if _, err := accessService.Authorize(ctx); err != nil {
		return describeAccessError(err)
	}

	profile, err := profileService.Load(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("company %s not found", args[0])
		}
		return err
	}

	wizard, err := services.NewEditWizard(draftStore, submissionService, profile)
	if err != nil {
		return err
	}
	if err := wizard.Restore(ctx); err != nil {
		return err
	}

	return launchWizard(cmd, wizard)
}

func launchWizard(cmd *cobra.Command, wizard *services.WizardService) error {
	if runWizard == nil {
		return errors.New("wizard UI not configured")
	}
	if err := runWizard(wizard); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	switch wizard.Phase() {
	case domain.PhaseSucceeded:
		cmd.Printf("Profile saved. Company ID: %s\n", wizard.Profile().ID)
	case domain.PhaseFailed:
		return fmt.Errorf("submission failed: %s", wizard.SubmitError())
	default:
		cmd.Println("Draft saved. Run the command again to resume.")
	}
	return nil
}

// describeAccessError turns a gate failure into a user-facing hint.
func describeAccessError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return errors.New("not signed in - run 'atlas auth login' first")
	case errors.Is(err, domain.ErrAuthExpired):
		return errors.New("session expired - run 'atlas auth login' again")
	case errors.Is(err, domain.ErrPermissionDenied):
		return fmt.Errorf("%w (an ADMIN role is required)", err)
	default:
		return err
	}
}

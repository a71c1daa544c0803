// Package cli implements the atlas command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/auth"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driving"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by main before Execute.
var (
	accessService     driving.AccessService
	profileService    driving.ProfileService
	submissionService driving.SubmissionService
	draftStore        driven.DraftStore
	configStore       driven.ConfigStore
	loginClient       *auth.LoginClient

	// runWizard launches the interactive wizard; injected so command
	// tests can run without a terminal.
	runWizard func(driving.WizardService) error
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Atlas corporate intelligence CLI",
	Long: `Atlas maintains corporate profiles in the Atlas intelligence platform.

The profile wizard walks through seven steps of company data - identity,
addresses, officials, financials, funding, filings and news - and submits
the result to the remote datastore. Interrupted sessions are saved as
drafts and resumed on the next run.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services carries the wired driving ports and shared stores.
type Services struct {
	Access     driving.AccessService
	Profiles   driving.ProfileService
	Submission driving.SubmissionService
	Drafts     driven.DraftStore
	Config     driven.ConfigStore
	Login      *auth.LoginClient
	RunWizard  func(driving.WizardService) error
}

// SetServices injects the wired services. Called by main after adapter
// construction.
func SetServices(s Services) {
	accessService = s.Access
	profileService = s.Profiles
	submissionService = s.Submission
	draftStore = s.Drafts
	configStore = s.Config
	loginClient = s.Login
	runWizard = s.RunWizard
}

// SetVersion sets the build version shown by `atlas version`.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

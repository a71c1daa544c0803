package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atlas-intel/atlas-cli/internal/adapters/driven/storage/memory"
	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driving"
)

// stubAccess satisfies driving.AccessService with canned results.
type stubAccess struct {
	session *domain.Session
	err     error
}

func (s *stubAccess) Authorize(context.Context) (*domain.Session, error) {
	return s.session, s.err
}

func (s *stubAccess) Current(context.Context) (*domain.Session, error) {
	return s.session, s.err
}

// stubProfiles satisfies driving.ProfileService with canned results.
type stubProfiles struct {
	summaries []domain.CompanySummary
	profile   *domain.CompanyProfile
	loadErr   error
	deleted   []string
	deleteErr error
}

func (s *stubProfiles) List(context.Context) ([]domain.CompanySummary, error) {
	return s.summaries, nil
}

func (s *stubProfiles) Load(_ context.Context, companyID string) (*domain.CompanyProfile, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.profile, nil
}

func (s *stubProfiles) Delete(_ context.Context, companyID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, companyID)
	return nil
}

// stubSubmission records submitted profiles and returns a fixed ID.
type stubSubmission struct {
	id       string
	err      error
	profiles []*domain.CompanyProfile
	modes    []domain.WizardMode
}

func (s *stubSubmission) Submit(_ context.Context, profile *domain.CompanyProfile, mode domain.WizardMode) (string, error) {
	s.profiles = append(s.profiles, profile)
	s.modes = append(s.modes, mode)
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func adminSession() *domain.Session {
	return &domain.Session{
		UserID: "u-1",
		Email:  "admin@example.com",
		Role:   domain.RoleAdmin,
		Expiry: time.Now().Add(time.Hour),
	}
}

// setupTestServices wires stub services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() (*stubAccess, *stubProfiles, *stubSubmission, func()) {
	access := &stubAccess{session: adminSession()}
	profiles := &stubProfiles{}
	submission := &stubSubmission{id: "company-1"}

	prev := Services{
		Access:     accessService,
		Profiles:   profileService,
		Submission: submissionService,
		Drafts:     draftStore,
		Config:     configStore,
		Login:      loginClient,
		RunWizard:  runWizard,
	}
	SetServices(Services{
		Access:     access,
		Profiles:   profiles,
		Submission: submission,
		Drafts:     memory.NewDraftStore(),
		RunWizard:  func(driving.WizardService) error { return nil },
	})
	return access, profiles, submission, func() { SetServices(prev) }
}

// execute runs the root command with the given args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(nil)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "atlas", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"profile", "company", "draft", "auth", "import", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

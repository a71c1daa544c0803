package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

var authEmail string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the signed-in session",
	Long: `Manage the signed-in session.

Atlas stores the session tokens in the config file and refreshes the
access token automatically when it nears expiry.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear stored tokens",
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE:  runAuthStatus,
}

func init() {
	authLoginCmd.Flags().StringVar(&authEmail, "email", "", "account email (prompted when omitted)")
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if loginClient == nil {
		return errors.New("services not configured")
	}

	email := strings.TrimSpace(authEmail)
	if email == "" {
		cmd.Print("Email: ")
		email = readLine(cmd)
	}
	if email == "" {
		return errors.New("email is required")
	}

	cmd.Print("Password: ")
	password := readPassword(cmd)
	cmd.Println()
	if password == "" {
		return errors.New("password is required")
	}

	session, err := loginClient.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Signed in as %s (%s)\n", session.Email, session.Role)
	if !session.Role.CanModify() {
		cmd.Println("Note: this role cannot create or edit profiles.")
	}
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if loginClient == nil {
		return errors.New("services not configured")
	}
	if err := loginClient.Logout(); err != nil {
		return err
	}
	cmd.Println("Signed out.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if accessService == nil {
		return errors.New("services not configured")
	}

	session, err := accessService.Current(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			cmd.Println("Not signed in.")
			return nil
		}
		return err
	}

	cmd.Printf("Signed in as %s\n", session.Email)
	cmd.Printf("  Role:    %s\n", session.Role)
	if !session.Expiry.IsZero() {
		cmd.Printf("  Expires: %s\n", session.Expiry.Local().Format("2006-01-02 15:04"))
	}
	if session.Expired() {
		cmd.Println("  Session expired - run 'atlas auth login' again.")
	}
	return nil
}

func readLine(cmd *cobra.Command) string {
	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads without echo on a terminal, falling back to plain
// input so tests and pipes still work.
func readPassword(cmd *cobra.Command) string {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(password)
		}
	}
	return readLine(cmd)
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

var (
	companyJSON bool
	deleteForce bool
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Inspect and manage stored companies",
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored companies",
	RunE:  runCompanyList,
}

var companyShowCmd = &cobra.Command{
	Use:   "show [company-id]",
	Short: "Show a company's full profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyShow,
}

var companyDeleteCmd = &cobra.Command{
	Use:   "delete [company-id]",
	Short: "Delete a company and all its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyDelete,
}

func init() {
	companyListCmd.Flags().BoolVar(&companyJSON, "json", false, "output as JSON")
	companyShowCmd.Flags().BoolVar(&companyJSON, "json", false, "output as JSON")
	companyDeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip the confirmation prompt")
	companyCmd.AddCommand(companyListCmd)
	companyCmd.AddCommand(companyShowCmd)
	companyCmd.AddCommand(companyDeleteCmd)
	rootCmd.AddCommand(companyCmd)
}

func runCompanyList(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	summaries, err := profileService.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing companies: %w", err)
	}

	if companyJSON {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(summaries) == 0 {
		cmd.Println("No companies stored.")
		return nil
	}

	cmd.Printf("%-38s %-28s %-16s %s\n", "ID", "NAME", "SECTOR", "STATUS")
	for _, s := range summaries {
		cmd.Printf("%-38s %-28s %-16s %s\n", s.ID, truncate(s.Name, 28), truncate(s.Sector, 16), s.Status)
	}
	return nil
}

func runCompanyShow(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	profile, err := profileService.Load(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("company %s not found", args[0])
		}
		return err
	}

	if companyJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s (%s)\n", profile.Name, profile.ID)
	cmd.Printf("  Sector:   %s\n", profile.Sector)
	if profile.Industry != "" {
		cmd.Printf("  Industry: %s\n", profile.Industry)
	}
	cmd.Printf("  Status:   %s\n", profile.Status)
	if profile.Website != "" {
		cmd.Printf("  Website:  %s\n", profile.Website)
	}
	cmd.Printf("  Records:  %d addresses, %d officials, %d financial years, %d funding rounds\n",
		len(profile.Addresses), len(profile.Officials), len(profile.Financials), len(profile.FundingRounds))
	return nil
}

func runCompanyDelete(cmd *cobra.Command, args []string) error {
	if accessService == nil || profileService == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()
	if _, err := accessService.Authorize(ctx); err != nil {
		return describeAccessError(err)
	}

	if !deleteForce {
		cmd.Printf("Delete company %s and all its records? [y/N]: ", args[0])
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := profileService.Delete(ctx, args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("company %s not found", args[0])
		}
		return err
	}
	cmd.Printf("Deleted company %s\n", args[0])
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

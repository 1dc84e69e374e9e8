package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emilianohg/appart/internal/models"
)

var financingCmd = &cobra.Command{
	Use:   "financing",
	Short: "Record loan and financing details",
}

var financingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show financing details",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		id, err := resolveProject(e, cmd)
		if err != nil {
			fail(err)
		}
		p, err := e.store.Project(id)
		if err != nil {
			fail(err)
		}
		printFinancing(e, p.Financing)
	},
}

var financingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update financing fields; unset flags are kept",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		id, err := resolveProject(e, cmd)
		if err != nil {
			fail(err)
		}

		patch := models.FinancingPatch{
			LoanAmount:     optFloat(cmd, "loan"),
			DownPayment:    optFloat(cmd, "down"),
			InterestRate:   optFloat(cmd, "rate"),
			LoanTerm:       optInt(cmd, "term"),
			MonthlyPayment: optFloat(cmd, "monthly"),
			ApprovalStatus: optApproval(cmd, "status"),
		}
		if patch.IsEmpty() {
			fail(errors.New("nothing to update"))
		}
		if err := e.store.UpdateFinancing(id, patch); err != nil {
			fail(err)
		}
		fmt.Println("Financing updated.")
	},
}

func printFinancing(e *env, f models.FinancingDetails) {
	fmt.Printf("  Loan amount:     %s\n", e.fmt.Currency(f.LoanAmount))
	fmt.Printf("  Down payment:    %s\n", e.fmt.Currency(f.DownPayment))
	if f.InterestRate != nil {
		fmt.Printf("  Interest rate:   %.2f %%\n", *f.InterestRate)
	}
	if f.LoanTerm != nil {
		fmt.Printf("  Term:            %d years\n", *f.LoanTerm)
	}
	fmt.Printf("  Monthly payment: %s\n", e.fmt.Currency(f.MonthlyPayment))
	if f.ApprovalStatus != nil {
		fmt.Printf("  Status:          %s\n", f.ApprovalStatus.Label())
	}
}

func init() {
	financingSetCmd.Flags().Float64("loan", 0, "Loan amount")
	financingSetCmd.Flags().Float64("down", 0, "Down payment")
	financingSetCmd.Flags().Float64("rate", 0, "Interest rate in percent")
	financingSetCmd.Flags().Int("term", 0, "Loan term in years")
	financingSetCmd.Flags().Float64("monthly", 0, "Monthly payment")
	financingSetCmd.Flags().String("status", "", "pending, approved or rejected")

	financingCmd.AddCommand(financingShowCmd)
	financingCmd.AddCommand(financingSetCmd)
}

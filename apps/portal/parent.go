package main

import (
	"context"
	"fmt"

	"github.com/edumanage/portal/core/finance"
)

func (cli *commandLine) showBalance() error {
	ctx := context.Background()
	claims, err := cli.session.Current()
	if err != nil {
		return err
	}
	balance, err := cli.finance.Balance(ctx, claims.UserID)
	if err != nil {
		return err
	}
	fmt.Printf("outstanding balance: %.2f\n", balance)
	return nil
}

func (cli *commandLine) showStatements() error {
	ctx := context.Background()
	parent, err := cli.currentParent(ctx)
	if err != nil {
		return err
	}
	if err := cli.invoices.Refresh(ctx, parent.ChildID); err != nil {
		return err
	}

	for _, inv := range cli.invoices.Invoices() {
		fmt.Printf("%s term %s/%d  %s  total %.2f  paid %.2f  due %.2f  [%s]\n",
			inv.ID, inv.Term, inv.Year, inv.IssuedDate,
			inv.TotalFees, finance.PaidTotal(inv.Payments), inv.OutstandingBalance, inv.Status)
		for _, item := range inv.Items {
			fmt.Printf("    %-25s %10.2f\n", item.Description, item.Amount)
		}
	}
	return nil
}

// checkout starts a Paystack payment for the child's full outstanding balance
// and asks the backend to verify it. A real gateway round trip happens in the
// web client; the CLI goes straight to verification with the generated
// reference.
func (cli *commandLine) checkout() error {
	ctx := context.Background()
	claims, err := cli.session.Current()
	if err != nil {
		return err
	}
	parent, err := cli.currentParent(ctx)
	if err != nil {
		return err
	}
	balance, err := cli.finance.Balance(ctx, claims.UserID)
	if err != nil {
		return err
	}

	co, err := cli.paystack.NewCheckout(parent.CommonDetails.Email, balance)
	if err != nil {
		return err
	}
	fmt.Printf("paying %d %s (ref %s)\n", co.Amount, co.Currency, co.Reference)

	if err := cli.paystack.Verify(ctx, co.Reference); err != nil {
		return err
	}
	cli.notifier.Success("Payment verified")
	return nil
}

func (cli *commandLine) listChildActivities() error {
	ctx := context.Background()
	claims, err := cli.session.Current()
	if err != nil {
		return err
	}
	activities, err := cli.activity.ChildActivities(ctx, claims.UserID)
	if err != nil {
		return err
	}
	printActivities(activities)
	return nil
}

func (cli *commandLine) enroll(args []string) error {
	cmd := newFlagSet("enroll")
	id := cmd.String("id", "", "Activity id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.activity.Enroll(context.Background(), *id); err != nil {
		return err
	}
	cli.notifier.Success("Enrolled")
	return nil
}

func (cli *commandLine) listAssignments() error {
	ctx := context.Background()
	claims, err := cli.session.Current()
	if err != nil {
		return err
	}
	assignments, err := cli.academics.Assignments(ctx, claims.UserID)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		fmt.Printf("%-8s %-25s due %-12s %d pts\n", a.ID, a.Title, a.DueDate, a.MaxPoints)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
)

func newCustomersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Inspect the customer ledger",
	}
	cmd.AddCommand(newCustomersShowCmd(opts))
	return cmd
}

func newCustomersShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show visits for a customer (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			ctx := cmd.Context()
			app, _, _, err := opts.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			cust, err := app.Reservations.GetCustomer(ctx, name)
			if errors.Is(err, reservation.ErrCustomerNotFound) {
				fmt.Fprintf(out, "no customer named %q\n", name)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "name:       %s\n", cust.DisplayName)
			fmt.Fprintf(out, "phone:      %s\n", cust.Phone)
			fmt.Fprintf(out, "visits:     %d\n", cust.Visits)
			fmt.Fprintf(out, "last visit: %s\n", cust.LastVisitDate)
			fmt.Fprintf(out, "returning:  %t\n", cust.Returning())
			return nil
		},
	}
}

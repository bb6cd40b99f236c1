package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
)

var errInvalidDate = errors.New("date must be YYYY-MM-DD or DD/MM/YYYY")

func newReservationsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "Inspect reservations",
	}
	cmd.AddCommand(newReservationsListCmd(opts))
	return cmd
}

func newReservationsListCmd(opts *rootOptions) *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the reservations booked for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			app, _, _, err := opts.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer app.Close()

			slots, err := app.Reservations.ListForDate(ctx, day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(slots) == 0 {
				fmt.Fprintf(out, "no reservations on %s\n", day)
				return nil
			}

			times := make([]string, 0, len(slots))
			for t := range slots {
				times = append(times, t)
			}
			sort.Strings(times)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\t#\tNAME\tPARTY\tPHONE")
			for _, t := range times {
				for _, r := range slots[t] {
					fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n", r.Time, r.Ordinal, r.Name, r.PartySize, r.Phone)
				}
			}
			return w.Flush()
		},
	}

	c.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD or DD/MM/YYYY)")
	_ = c.MarkFlagRequired("date")
	return c
}

func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{reservation.DateLayout, "02/01/2006", "2/1/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(reservation.DateLayout), nil
		}
	}
	return "", errInvalidDate
}

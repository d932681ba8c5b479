package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/mixr"
	"github.com/hammamikhairi/mixr/internal/display"
	"github.com/hammamikhairi/mixr/internal/domain"
)

// validateCmd groups one subcommand per input rule. Each prints a check
// line and fails when the value is rejected.
func validateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a value against MIXR input rules",
	}

	cmd.AddCommand(
		checkCmd("name <display-name>", "Check a display name",
			fmt.Sprintf("display name (%d-%d characters)", domain.MinDisplayNameLength, domain.MaxDisplayNameLength),
			mixr.ValidateDisplayName),
		checkCmd("rating <stars>", "Check a star rating",
			fmt.Sprintf("star rating (whole number %d-%d)", domain.MinStarRating, domain.MaxStarRating),
			func(s string) bool {
				stars, err := strconv.ParseFloat(s, 64)
				return err == nil && mixr.ValidateStarRating(stars)
			}),
		checkCmd("review <text>", "Check review text",
			fmt.Sprintf("review (at most %d characters)", domain.MaxReviewLength),
			func(s string) bool { return mixr.ValidateReviewText(&s) }),
		checkCmd("input <text>", "Check that text is not blank",
			"non-empty input",
			mixr.ValidateInput),
	)
	return cmd
}

func checkCmd(use, short, label string, check func(string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := check(args[0])
			display.NewPrinter(cmd.OutOrStdout()).PrintCheck(label, ok)
			if !ok {
				return fmt.Errorf("%w: %q is not a valid %s", domain.ErrInvalidArgument, args[0], label)
			}
			return nil
		},
	}
}

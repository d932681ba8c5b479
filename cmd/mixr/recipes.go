package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/mixr/internal/display"
	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/format"
	"github.com/hammamikhairi/mixr/internal/validate"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func checkOutput(output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", domain.ErrInvalidArgument, output)
	}
}

func recipesCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List recipes with their ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				recipes []domain.Recipe
				err     error
			)
			if strings.TrimSpace(search) != "" {
				recipes, err = a.recipes.Search(ctx, search)
			} else {
				recipes, err = a.recipes.List(ctx)
			}
			if err != nil {
				return err
			}

			aggs := make(map[int]domain.RatingAggregate, len(recipes))
			for _, r := range recipes {
				agg, err := a.ratings.Aggregate(ctx, r.ID)
				if err != nil {
					return err
				}
				aggs[r.ID] = *agg
			}

			display.NewPrinter(cmd.OutOrStdout()).PrintRecipeList(recipes, aggs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show recipes matching this text")
	return cmd
}

// recipeView is a recipe together with its rating summary, as printed by
// show in json and yaml form.
type recipeView struct {
	Recipe *domain.Recipe          `json:"recipe" yaml:"recipe"`
	Rating *domain.RatingAggregate `json:"rating" yaml:"rating"`
}

func showCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <recipe-id>",
		Short: "Show a recipe card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			r, err := a.recipes.Get(ctx, id)
			if err != nil {
				return err
			}
			agg, err := a.ratings.Aggregate(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case outputJSON:
				return writeJSON(out, recipeView{Recipe: r, Rating: agg})
			case outputYAML:
				return writeYAML(out, recipeView{Recipe: r, Rating: agg})
			default:
				display.NewPrinter(out).PrintRecipe(r, agg)
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

func ratingsCmd(a *app) *cobra.Command {
	var (
		output string
		sort   string
		params domain.PaginationQueryParams
	)
	cmd := &cobra.Command{
		Use:   "ratings <recipe-id>",
		Short: "List the ratings for a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}
			if sort != "" && !validate.RatingSort(sort) {
				return fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidArgument, sort)
			}

			ctx := cmd.Context()
			if _, err := a.recipes.Get(ctx, id); err != nil {
				return err
			}
			page, err := a.ratings.List(ctx, id, domain.RatingListParams{
				PaginationQueryParams: params,
				Sort:                  domain.RatingSort(sort),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case outputJSON:
				return writeJSON(out, page)
			case outputYAML:
				return writeYAML(out, page)
			}

			agg, err := a.ratings.Aggregate(ctx, id)
			if err != nil {
				return err
			}
			p := display.NewPrinter(out)
			p.Println(format.RatingDisplay(*agg))
			for _, r := range page.Items {
				p.Println(ratingLine(r))
			}
			if page.Pagination.HasMore {
				p.PrintHint(fmt.Sprintf("showing %d-%d of %d",
					page.Pagination.Offset+1, page.Pagination.Offset+len(page.Items), page.Pagination.Total))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	f.StringVar(&sort, "sort", string(domain.DefaultRatingSort), "order: newest, oldest, highest or lowest")
	f.IntVar(&params.Limit, "limit", domain.DefaultPageLimit, "ratings per page (max 100)")
	f.IntVar(&params.Offset, "offset", 0, "ratings to skip")
	return cmd
}

func rateCmd(a *app) *cobra.Command {
	var (
		user   string
		review string
	)
	cmd := &cobra.Command{
		Use:   "rate <recipe-id> <stars>",
		Short: "Rate a recipe and print its new summary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecipeID(args[0])
			if err != nil {
				return err
			}
			stars, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: stars must be a whole number, got %q", domain.ErrInvalidArgument, args[1])
			}

			ctx := cmd.Context()
			r, err := a.recipes.Get(ctx, id)
			if err != nil {
				return err
			}

			req := domain.SubmitRatingRequest{Stars: stars}
			if cmd.Flags().Changed("review") {
				req.Review = &review
			}
			if _, err := a.ratings.Submit(ctx, user, id, req); err != nil {
				return err
			}
			agg, err := a.ratings.Aggregate(ctx, id)
			if err != nil {
				return err
			}

			display.NewPrinter(cmd.OutOrStdout()).Println(
				fmt.Sprintf("%s: %s", r.Name, format.RatingDisplay(*agg)))
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "local", "user the rating is recorded for")
	cmd.Flags().StringVar(&review, "review", "", "optional review text")
	return cmd
}

func parseRecipeID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: recipe id must be a positive integer, got %q", domain.ErrInvalidArgument, s)
	}
	return id, nil
}

func ratingLine(r domain.RecipeRating) string {
	stars := strings.Repeat("★", r.Stars) + strings.Repeat("☆", domain.MaxStarRating-r.Stars)
	line := fmt.Sprintf("%s  %s", stars, r.UserID)
	if r.Review != nil && strings.TrimSpace(*r.Review) != "" {
		line += "  " + strings.TrimSpace(*r.Review)
	}
	return line
}

func writeJSON(w io.Writer, v any) error {
	s, _ := format.Format(v)
	_, err := fmt.Fprintln(w, s)
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

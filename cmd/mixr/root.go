package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/mixr"
	"github.com/hammamikhairi/mixr/internal/config"
	"github.com/hammamikhairi/mixr/internal/display"
	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/logger"
	"github.com/hammamikhairi/mixr/internal/recipe"
	"github.com/hammamikhairi/mixr/internal/storage"
)

// apiClient is the handle registered with the library. The CLI only reads
// from local sources; the handle records which backend it would talk to.
type apiClient struct {
	baseURL string
}

// app carries the dependencies shared by every subcommand.
type app struct {
	cfgFile string
	verbose bool
	quiet   bool

	cfg      config.Config
	log      *logger.Logger
	recipes  domain.RecipeSource
	ratings  domain.RatingStore
	closeLog func()
}

func newRootCmd() *cobra.Command {
	a := &app{closeLog: func() {}}

	root := &cobra.Command{
		Use:           "mixr",
		Short:         "Browse, rate, and validate MIXR cocktail recipes",
		Version:       mixr.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.closeLog()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./mixr.yaml)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable verbose/debug logging")
	root.PersistentFlags().BoolVar(&a.quiet, "quiet", false, "disable all logging")

	root.AddCommand(
		recipesCmd(a),
		showCmd(a),
		ratingsCmd(a),
		rateCmd(a),
		validateCmd(a),
		formatCmd(a),
		versionCmd(a),
	)
	return root
}

// Execute errors are printed here rather than by cobra so they go through
// the same styled printer as everything else.
func run(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		display.NewPrinter(root.ErrOrStderr()).PrintUrgent("error: " + err.Error())
	}
	return err
}

func (a *app) setup(ctx context.Context, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = logger.LevelVerbose
	}
	if a.quiet {
		level = logger.LevelOff
	}

	out, closeLog := openLog(cfg.LogFile, stderr)
	a.closeLog = closeLog
	a.log = logger.New(level, out)

	mixr.SetLogger(a.log)
	if err := mixr.Initialize(&apiClient{baseURL: cfg.APIURL}); err != nil {
		return err
	}
	a.log.Debug("client registered for %s", cfg.APIURL)

	a.recipes = recipe.NewMemorySource(a.log)
	store := storage.NewMemoryStore(a.log)
	if err := seedRatings(ctx, store); err != nil {
		return err
	}
	a.ratings = store
	return nil
}

// openLog resolves the log destination. "stderr" or an empty path logs to
// stderr; anything else is appended to, creating parent directories. A
// file that cannot be opened falls back to stderr with a warning.
func openLog(path string, stderr io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}

type seedRating struct {
	user     string
	recipeID int
	stars    int
	review   string
}

var sampleRatings = []seedRating{
	{"ava", 1, 5, "Bright and minty."},
	{"ben", 1, 4, ""},
	{"cam", 1, 4, "Could use more lime."},
	{"ava", 2, 5, "Perfect salt rim."},
	{"ben", 2, 4, ""},
	{"cam", 2, 4, ""},
	{"dee", 2, 4, "Solid classic."},
	{"dee", 3, 3, "Too bitter for me."},
}

func seedRatings(ctx context.Context, store domain.RatingStore) error {
	for _, s := range sampleRatings {
		req := domain.SubmitRatingRequest{Stars: s.stars}
		if s.review != "" {
			review := s.review
			req.Review = &review
		}
		if _, err := store.Submit(ctx, s.user, s.recipeID, req); err != nil {
			return fmt.Errorf("seeding rating for recipe %d: %w", s.recipeID, err)
		}
	}
	return nil
}

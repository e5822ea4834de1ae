// Package main is the medtrack entry point: the composition root where
// config, sources, repository, use cases, state, and page are constructed
// and handed to the lifecycle controller. No layer below this performs its
// own dependency lookup.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hanimtuba/medication-tracking/internal/medication"
	"github.com/hanimtuba/medication-tracking/internal/pages/medications"
	"github.com/hanimtuba/medication-tracking/internal/view"
	"github.com/hanimtuba/medication-tracking/pkg/config"
	"github.com/hanimtuba/medication-tracking/pkg/dispatch"
	"github.com/hanimtuba/medication-tracking/pkg/logging"
	"github.com/hanimtuba/medication-tracking/pkg/page"
	"github.com/hanimtuba/medication-tracking/pkg/theme"
)

var version = "0.1.0" // set at build time via -ldflags

var (
	configDir string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "medtrack",
	Short: "Medication tracking demo app",
	Long: `medtrack mounts the medication-list page on a console render host
and runs one load cycle: mount, first frame, ready hook, data load,
re-render, unmount.`,
	RunE: runDemo,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("medtrack v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing medtrack.yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	// .env is optional and only overrides the config directory.
	_ = godotenv.Load()
	if dir := os.Getenv("MEDTRACK_CONFIG_DIR"); dir != "" {
		configDir = dir
	}

	cfg, err := config.Resolve(configDir)
	if err != nil {
		return err
	}

	sink := logging.NewSink()
	if debug {
		sink.SetDebug()
	}
	logging.SetDefault(sink)
	sink.Event("starting", "app", cfg.AppName, "schema", cfg.SchemaVersion)

	colors := theme.Resolve(theme.ParseBrightness(cfg.Brightness))

	// Data layer. The static remote stands in for the backend; it seeds
	// the demo data set.
	remote := medication.NewStaticRemote(
		medication.New("Ibuprofen", "200mg", "08:00"),
		medication.New("Metformin", "500mg", "08:00,20:00"),
		medication.New("Lisinopril", "10mg", "08:00"),
	)
	cache := medication.NewFileCache(cfg.CachePath)
	repo := medication.NewRepository(remote, cache, sink)

	loop := dispatch.NewLoop()
	loop.Start()
	defer loop.Stop()

	state := medications.NewListState()
	medsPage := medications.NewPage(medications.Deps{
		State:  state,
		List:   medication.NewListMedications(repo),
		UI:     loop,
		Async:  dispatch.Goroutine(),
		Colors: colors,
		Sink:   sink,
	})

	host := view.NewConsoleHost(os.Stdout)
	ctrl := page.NewController[*medications.ListState](medsPage)

	done := make(chan struct{})
	loop.Dispatch(func() {
		ctrl.Mount(host)
		host.Bind(ctrl.Render)
		host.Draw(ctrl.Render())
		ctrl.FirstFrameCommitted()
	})

	// Give the load cycle time to complete, then tear down on the loop.
	time.Sleep(500 * time.Millisecond)
	loop.Dispatch(func() {
		ctrl.Unmount()
		close(done)
	})
	<-done

	sink.Event("stopped", "frames", host.Draws())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

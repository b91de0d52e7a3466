package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumipallolabs/codemap/internal/core"
	"github.com/lumipallolabs/codemap/internal/counter"
	"github.com/lumipallolabs/codemap/internal/logging"
	"github.com/lumipallolabs/codemap/internal/scanner"
	"github.com/lumipallolabs/codemap/internal/ui"
)

const version = "0.1.0"

var errSCCMissing = errors.New("'scc' tool not found. Please install it from: https://github.com/boyter/scc")

// CLI represents the command-line interface structure
type CLI struct {
	Path      string           `arg:"" optional:"" default:"." help:"Directory to browse" type:"path"`
	Unsorted  bool             `help:"Keep filesystem order instead of sorting by code lines" env:"CODEMAP_UNSORTED"`
	SCC       string           `name:"scc" help:"Path to the scc binary" default:"scc" env:"CODEMAP_SCC"`
	Debug     bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile string           `help:"Custom path for debug log file"`
	Version   kong.VersionFlag `help:"Show version information"`
}

// AfterApply initializes logging after CLI parsing
func (c *CLI) AfterApply() error {
	if c.Debug || c.DebugFile != "" {
		logging.Enable(c.DebugFile)
	}
	return nil
}

func (c *CLI) order() scanner.Order {
	if c.Unsorted {
		return scanner.OrderFilesystem
	}
	return scanner.OrderByCode
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("codemap"),
		kong.Description("Browse a directory tree by lines of code."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	// Enable CPU profiling if CPUPROFILE env var is set
	if cpuProfile := os.Getenv("CPUPROFILE"); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", cpuProfile)
	}

	if err := run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	ctx := context.Background()

	scc := counter.NewSCC(cli.SCC)
	if err := scc.Check(ctx); err != nil {
		logging.Counter.WithError(err).WithField("scc", scc.Binary()).Debug("scc check failed")
		if errors.Is(err, counter.ErrNotFound) {
			return errSCCMissing
		}
		return err
	}
	logging.Counter.WithField("scc", scc.Binary()).Debug("scc available")

	ctrl, err := core.NewController(scc, cli.Path, cli.order())
	if err != nil {
		return err
	}
	if err := ctrl.Start(ctx); err != nil {
		return fmt.Errorf("cannot open directory: %w", err)
	}

	p := tea.NewProgram(
		ui.NewApp(ctrl, version),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			fmt.Println("Exiting...")
			return nil
		}
		return err
	}
	return nil
}

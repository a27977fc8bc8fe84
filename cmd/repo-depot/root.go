package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repodepot/internal/config"
	"repodepot/internal/discovery"
	"repodepot/internal/eventbus"
	"repodepot/internal/git"
	"repodepot/internal/github"
	"repodepot/internal/ui"
)

// errCloneFailed is returned when at least one clone failed. The report
// has already been printed, so main only sets the exit status.
var errCloneFailed = errors.New("one or more clones failed")

// v holds flag and environment overrides
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "repo-depot [query]",
	Short: "Search GitHub repositories and clone the ones you pick",
	Long: `repo-depot is a terminal UI for searching GitHub repositories. Type a
query, browse the paginated results, mark repositories with Tab and quit with
q: every marked repository is then cloned into the clone directory
(~/.repo-depot by default) as <owner>/<name>.

Ctrl+C quits immediately without cloning.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ~/.config/repo-depot/config.toml)")
	flags.Int("page-size", 0, "results shown per page")
	flags.String("clone-dir", "", "directory repositories are cloned into")
	flags.String("api-url", "", "GitHub API base URL")
	flags.Int("parallel", 0, "number of concurrent clones")
	flags.String("log-file", "", "log file (default in the user cache directory)")
	flags.Bool("no-clone", false, "only search and select, do not clone on exit")

	_ = v.BindPFlag(config.KeyPageSize, flags.Lookup("page-size"))
	_ = v.BindPFlag(config.KeyCloneDir, flags.Lookup("clone-dir"))
	_ = v.BindPFlag(config.KeyAPIURL, flags.Lookup("api-url"))
	_ = v.BindPFlag(config.KeyParallel, flags.Lookup("parallel"))
}

func run(cmd *cobra.Command, args []string) error {
	logFile, err := setupLogging(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}

	// Fail before the UI starts when there is nowhere to clone into
	cloneDir, err := config.ResolveCloneDir(cfg)
	if err != nil {
		return fmt.Errorf("no clone directory: %w", err)
	}

	timeout, err := cfg.SearchTimeout()
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	local, err := discovery.Scan(ctx, cloneDir)
	if err != nil {
		log.Printf("Could not scan %s for existing checkouts: %v", cloneDir, err)
	}

	client := github.NewClient(github.Options{
		APIURL:    cfg.Search.APIURL,
		PerPage:   cfg.Search.PerPage,
		UserAgent: cfg.Search.UserAgent,
		Token:     cfg.Search.Token,
		Timeout:   timeout,
	})

	uiModel := ui.NewModel(ui.Options{
		Context:       ctx,
		Searcher:      client,
		PageSize:      cfg.UISettings.PageSize,
		SearchTimeout: timeout,
		CloneDir:      cloneDir,
		InitialQuery:  strings.Join(args, " "),
		Local:         local,
	})

	if os.Getenv("REPO_DEPOT_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}

	ids := uiModel.SelectedIDs()
	switch exitActionFor(uiModel.Aborted(), ctx.Err() != nil, len(ids), cfg.UISettings.CloneOnExit) {
	case exitSkip:
		if len(ids) > 0 {
			log.Printf("Aborted with %d selected repositories, skipping clone", len(ids))
		}
		return nil
	case exitPrint:
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	bus := eventbus.New()
	newProgressPrinter(os.Stdout, len(ids)).Attach(bus)

	svc := git.NewCloneService(cloneDir, git.ExecRunner{}, cfg.Clone.Parallel, bus)
	fmt.Printf("Cloning %d repositories into %s\n", len(ids), cloneDir)
	report := svc.CloneAll(ctx, ids)
	bus.Close()

	if cfg.UISettings.ReportPager {
		if err := report.ShowInPager(); err != nil {
			log.Printf("Report pager failed: %v", err)
			report.Print(os.Stdout, os.Stderr)
		}
	} else {
		report.Print(os.Stdout, os.Stderr)
	}

	if report.Failed() > 0 {
		return errCloneFailed
	}
	return nil
}

type exitAction int

const (
	exitSkip exitAction = iota
	exitPrint
	exitClone
)

// exitActionFor decides what happens to the selection once the UI exits.
// A forced quit or a signal cancels the run, so nothing is cloned.
func exitActionFor(aborted, interrupted bool, selected int, cloneOnExit bool) exitAction {
	switch {
	case aborted, interrupted, selected == 0:
		return exitSkip
	case !cloneOnExit:
		return exitPrint
	default:
		return exitClone
	}
}

// loadConfig reads the config file and applies flag and env overrides
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	svc := config.NewConfigServiceWithPath(path)

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = svc.LoadFromPath(path)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := config.ApplyOverrides(cfg, v); err != nil {
		return nil, err
	}
	if noClone, _ := cmd.Flags().GetBool("no-clone"); noClone {
		cfg.UISettings.CloneOnExit = false
	}
	return cfg, nil
}

// setupLogging sends the standard logger to a file, as the terminal is
// owned by the UI.
func setupLogging(cmd *cobra.Command) (*os.File, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		dir = filepath.Join(dir, config.AppName)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, config.AppName+".log")
	}
	return tea.LogToFile(path, config.AppName)
}

// exitCode maps an error returned by the root command to a process status
func exitCode(err error) int {
	if !errors.Is(err, errCloneFailed) {
		fmt.Fprintf(os.Stderr, "repo-depot: %v\n", err)
	}
	return 1
}

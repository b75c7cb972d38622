package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/filetug/dirtug/pkg/browser"
	"github.com/filetug/dirtug/pkg/files"
	"github.com/filetug/dirtug/pkg/files/osfile"
	"github.com/filetug/dirtug/pkg/ftsettings"
	"github.com/filetug/dirtug/pkg/listing"
	"github.com/filetug/dirtug/pkg/logging"
	"github.com/filetug/dirtug/pkg/navigation"
	"github.com/filetug/dirtug/pkg/opener"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var osExit = os.Exit

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		osExit(1)
	}
}

type flags struct {
	configFile       string
	showHidden       bool
	folderCountLimit int
	openCommand      string
	logFile          string
	logLevel         string
	list             bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "dirtug [dir]",
		Short: "Browse directories in the terminal",
		Long: `dirtug lists a directory with folders first and lets you walk the tree.

Keys: Enter opens the selected entry, Backspace goes up,
"." toggles hidden entries, "r" reloads and "q" quits.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDir := "."
			if len(args) == 1 {
				startDir = args[0]
			}
			settings, err := loadSettings(cmd, f)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), cmd.OutOrStdout(), settings, startDir, f.list)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "Settings file path (default ~/.filetug/dirtug.yaml)")
	fs.BoolVarP(&f.showHidden, "show-hidden", "a", false, "Show entries whose names start with a dot")
	fs.IntVar(&f.folderCountLimit, "folder-count-limit", 0, "Stop counting folder items past this number (0 = no limit)")
	fs.StringVar(&f.openCommand, "open-command", "", "Command used to open files (default: platform opener)")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVarP(&f.list, "list", "l", false, "Print the listing and exit")
	return cmd
}

// loadSettings reads the settings file and applies flags given on the command line.
func loadSettings(cmd *cobra.Command, f flags) (ftsettings.Settings, error) {
	settings, err := ftsettings.Load(f.configFile)
	if err != nil {
		return settings, err
	}
	changed := cmd.Flags().Changed
	if changed("show-hidden") {
		settings.ShowHidden = f.showHidden
	}
	if changed("folder-count-limit") {
		settings.FolderCountLimit = f.folderCountLimit
	}
	if changed("open-command") {
		settings.OpenCommand = f.openCommand
	}
	if changed("log-file") {
		settings.LogFile = f.logFile
	}
	if changed("log-level") {
		settings.LogLevel = f.logLevel
	}
	return settings, settings.Validate()
}

func execute(ctx context.Context, out io.Writer, settings ftsettings.Settings, startDir string, list bool) error {
	logWriter, err := logging.OpenFile(settings.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = logWriter.Close()
	}()
	log, err := logging.New(logWriter, settings.LogLevel)
	if err != nil {
		return err
	}

	store := osfile.NewStore()
	session, err := newSession(ctx, store, log, settings, startDir)
	if err != nil {
		log.Error().Err(err).Str("dir", startDir).Msg("failed to open start directory")
		return err
	}
	if list {
		return printListing(out, session.Snapshot())
	}

	app := newApp()
	b := browser.New(ctx, session, opener.NewCommandOpener(settings.OpenCommand),
		browser.WithLogger(log),
		browser.WithTitle(store.RootTitle()),
		browser.WithQuit(app.Stop),
	)
	app.SetRoot(b, true)
	return run(app)
}

func newSession(ctx context.Context, store files.Store, log zerolog.Logger, settings ftsettings.Settings, startDir string) (*navigation.Session, error) {
	lister := listing.NewLister(store,
		listing.WithFolderCountLimit(settings.FolderCountLimit),
		listing.WithLogger(log),
	)
	return navigation.NewSession(ctx, lister, startDir,
		navigation.WithShowHidden(settings.ShowHidden),
		navigation.WithLogger(log),
	)
}

func printListing(out io.Writer, snapshot navigation.Snapshot) error {
	if _, err := fmt.Fprintln(out, snapshot.Location); err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSIZE\tTYPE\tMODIFIED")
	for _, entry := range snapshot.Listing.Entries() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Name(), entry.SizeDisplay(), entry.Kind(), entry.ModifiedDisplay())
	}
	return w.Flush()
}

var newApp = func() *tview.Application {
	return tview.NewApplication()
}

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/twine/internal/config"
	"github.com/dshills/twine/internal/config/loader"
	"github.com/dshills/twine/internal/logging"
)

// App holds the I/O streams and the state shared by all subcommands.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// FS is where config files are read from.
	FS loader.FileSystem
	// Getenv looks up TWINE_CONFIG.
	Getenv func(string) string
	// Version is reported by --version.
	Version string

	flags  rootFlags
	cfg    *config.Config
	logger *logging.Logger
}

type rootFlags struct {
	configPath  string
	encoding    string
	charset     string
	logLevel    string
	growth      string
	maxCapacity int
}

// New creates an App wired to the given streams and the OS file system.
func New(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		In:      in,
		Out:     out,
		Err:     errOut,
		FS:      loader.DefaultFS(),
		Getenv:  os.Getenv,
		Version: "dev",
		logger:  logging.NullLogger,
	}
}

// Command builds the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "twine",
		Short: "Inspect and transform UTF-8, UTF-16 and ASCII text",
		Long: "twine decodes, encodes, validates, splits and trims text held in a\n" +
			"UTF-8, UTF-16 (big-endian) or ASCII buffer.\n\n" +
			"Text comes from the arguments or, when there are none, from standard input.",
		Version:       a.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "path to a TOML or YAML config file (env TWINE_CONFIG)")
	pf.StringVarP(&a.flags.encoding, "encoding", "e", "utf-8", "buffer encoding: utf-8, utf-16 or ascii")
	pf.StringVar(&a.flags.charset, "charset", "utf-8", "charset standard input is decoded from")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.growth, "growth", "exact", "buffer growth policy: exact or double")
	pf.IntVar(&a.flags.maxCapacity, "max-capacity", 0, "maximum buffer size in bytes (0 for unbounded)")

	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	root.AddCommand(
		a.decodeCommand(),
		a.encodeCommand(),
		a.lenCommand(),
		a.validateCommand(),
		a.splitCommand(),
		a.sumCommand(),
		a.trimCommand(),
		a.reverseCommand(),
		a.staircaseCommand(),
	)
	return root
}

// setup loads the layered configuration. Flags only override the lower
// layers when they were set explicitly.
func (a *App) setup(cmd *cobra.Command) error {
	opts := []config.Option{config.WithFileSystem(a.FS)}

	path := a.flags.configPath
	if path == "" && a.Getenv != nil {
		path = a.Getenv(config.EnvPrefix + "CONFIG")
	}
	if path != "" {
		opts = append(opts, config.WithFile(path))
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag string
		path string
		val  any
	}{
		{"encoding", "text.encoding", a.flags.encoding},
		{"charset", "text.charset", a.flags.charset},
		{"max-capacity", "text.maxCapacity", a.flags.maxCapacity},
		{"growth", "text.growth", a.flags.growth},
		{"log-level", "logging.level", a.flags.logLevel},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			opts = append(opts, config.WithOverride(o.path, o.val))
		}
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	lc := cfg.Logging.LoggerConfig()
	lc.Output = a.Err
	a.logger = logging.NewLogger(lc).WithComponent(cmd.Name())
	a.logger.Debug("config loaded from %s", strings.Join(cfg.Sources, ", "))
	return nil
}

// Execute runs the command line and returns the process exit code.
func (a *App) Execute(args []string) int {
	root := a.Command()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return 1
	}
	return 0
}

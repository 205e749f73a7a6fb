package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// Record source
	manifestPath string

	// Output
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string

	// Discovery
	discoverPatterns  string
	discoverContainer string
	discoverOut       string
	showHidden        bool
	noIgnore          bool
	interactiveMode   bool

	verbose bool

	// configErr is set by initConfig and surfaced before any command runs.
	configErr error

	// errOut receives diagnostics; run points it at the caller's stderr.
	errOut io.Writer = os.Stderr
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "themelist",
	Short: "List the React Native screens that need the theme background applied.",
	Long: `themelist prints how many screens need the theme background and the file
name of each one. Screens come from --manifest, the "screens" key of the config
file, or the built-in list, in that order.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := resolveRecords(viper.GetViper(), viper.GetString("manifest"))
		if err != nil {
			return err
		}
		return emitReport(cmd.OutOrStdout(), records, outputOptions{
			File:      viper.GetString("file"),
			Clipboard: viper.GetBool("clipboard"),
			PDF:       viper.GetString("pdf"),
		})
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover [PATH|GIT_URL]",
	Short: "Write a screen manifest by searching a source tree for screen files.",
	Long: `discover walks a local directory (default ".") or a cloned Git repository
and writes a YAML manifest with one entry per file whose name matches --pattern.
File contents are not read, so every entry gets the --container label and an
unknown (0) line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}

		opts := discoverOptions{
			Patterns:   parsePatterns(viper.GetString("discover.pattern")),
			Container:  viper.GetString("discover.container"),
			ShowHidden: viper.GetBool("discover.hidden"),
			NoIgnore:   viper.GetBool("discover.no_ignore"),
		}
		if len(opts.Patterns) == 0 {
			return fmt.Errorf("no --pattern given")
		}

		root := target
		if isGitURL(target) {
			dir, err := cloneGitRepo(target)
			if err != nil {
				return err
			}
			defer func() {
				verbosef("Cleaning up temporary directory: %s\n", dir)
				_ = os.RemoveAll(dir)
			}()
			root = dir
			opts.Relative = true
		}

		records, err := discoverScreens(root, opts)
		if err != nil {
			return err
		}
		verbosef("Found %d screens under %s\n", len(records), target)

		if viper.GetBool("discover.interactive") {
			records, err = pickScreens(records)
			if err != nil {
				return err
			}
			if records == nil {
				verbosef("Interactive selection aborted.\n")
				return nil
			}
		}

		if discoverOut == "" {
			return writeManifest(cmd.OutOrStdout(), records)
		}
		f, err := os.Create(discoverOut)
		if err != nil {
			return fmt.Errorf("error creating manifest %s: %w", discoverOut, err)
		}
		if err := writeManifest(f, records); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("error closing manifest %s: %w", discoverOut, err)
		}
		verbosef("Manifest saved to %s\n", discoverOut)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/themelist/themelist.{toml,yaml,json})")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress information to stderr")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Record source
	rootCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest of screens to report on")
	viper.BindPFlag("manifest", rootCmd.Flags().Lookup("manifest"))

	// Output
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save output to specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy output to clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save output as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	// Discovery
	discoverCmd.Flags().StringVarP(&discoverPatterns, "pattern", "p", "*Screen.js,*Screen.tsx", "File name patterns that mark a screen (comma-separated)")
	viper.BindPFlag("discover.pattern", discoverCmd.Flags().Lookup("pattern"))
	discoverCmd.Flags().StringVar(&discoverContainer, "container", "View", "Container label recorded for each screen")
	viper.BindPFlag("discover.container", discoverCmd.Flags().Lookup("container"))
	discoverCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Search hidden files and directories")
	viper.BindPFlag("discover.hidden", discoverCmd.Flags().Lookup("hidden"))
	discoverCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore")
	viper.BindPFlag("discover.no_ignore", discoverCmd.Flags().Lookup("no-ignore"))
	discoverCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the screens to keep with a fuzzy finder")
	viper.BindPFlag("discover.interactive", discoverCmd.Flags().Lookup("interactive"))
	discoverCmd.Flags().StringVarP(&discoverOut, "out", "o", "", "Write the manifest to a file instead of stdout")

	rootCmd.AddCommand(discoverCmd)
}

// verbosef prints progress information to stderr when --verbose is set.
func verbosef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(errOut, format, args...)
	}
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	errOut = stderr
	defer func() { errOut = os.Stderr }()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		var invalid *InvalidRecordError
		if errors.As(err, &invalid) {
			fmt.Fprintf(stderr, "Error: invalid screen %v\n", invalid)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

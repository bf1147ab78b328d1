package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/packwiz/curseconverter/core"
	"github.com/packwiz/curseconverter/curseforge"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const programName = "curseconverter"

// errUsage is printed to stdout when the wrong number of arguments or an unknown flag is given
var errUsage = errors.New("usage: " + programName + " INFILE OUTFILE")

// newRootCmd creates the curseconverter command, reading and writing files through fs
func newRootCmd(fs afero.Fs) *cobra.Command {
	v := viper.New()
	v.SetFs(fs)

	var cfgFile string
	logger := zap.NewNop()

	rootCmd := &cobra.Command{
		Use:   programName + " INFILE OUTFILE",
		Short: "Convert a CurseForge modpack manifest into a normalized mod list",
		Long: `Reads a CurseForge modpack manifest.json (or a modpack zip containing one, or a
CurseForge launcher minecraftinstance.json) and writes every referenced file as
{"source": "curse", "projectID": ..., "fileID": ...} in a "mods" list.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		// Arguments are validated before this runs, so a usage error never touches the filesystem
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			usedConfig, err := initConfig(v, fs, cfgFile)
			if err != nil {
				return err
			}
			logger, err = newLogger(v.GetBool("verbose"))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			if usedConfig != "" {
				logger.Debug("Using config file", zap.String("path", usedConfig))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := core.ParseFormat(v.GetString("format"))
			if err != nil {
				return err
			}
			_, err = curseforge.Convert(fs, args[0], args[1], curseforge.Options{
				Format: format,
				Logger: logger,
			})
			return err
		},
	}

	// Unknown flags count as wrong arguments
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errUsage
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/."+programName+".toml)")

	rootCmd.Flags().StringP("format", "f", string(core.FormatJSON), "Output format (json, toml or yaml)")
	_ = v.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	rootCmd.Flags().BoolP("verbose", "v", false, "Log progress to stderr")
	_ = v.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))

	return rootCmd
}

// initConfig reads in the config file, if there is one. It returns the path of the file used.
func initConfig(v *viper.Viper, fs afero.Fs, cfgFile string) (string, error) {
	if cfgFile == "" {
		home, err := homedir.Dir()
		if err != nil {
			// No home directory, so no default config file either
			return "", nil
		}
		cfgFile = filepath.Join(home, "."+programName+".toml")
		if ok, _ := afero.Exists(fs, cfgFile); !ok {
			return "", nil
		}
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// run executes the command with the given arguments and returns the process exit code
func run(args []string, stdout io.Writer, stderr io.Writer, fs afero.Fs) int {
	rootCmd := newRootCmd(fs)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, err)
			return 1
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// Execute starts the root command for curseconverter
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

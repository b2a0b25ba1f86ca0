package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/erraggy/hydraschema/builder"
)

// EnvPrefix is the prefix of the environment variables read by the CLI.
const EnvPrefix = "HYDRASCHEMA"

// Settings holds the options shared by every command. Each one comes from
// its flag when set, else from HYDRASCHEMA_<NAME>, else from the default.
type Settings struct {
	Prefix  string
	Strict  bool
	Format  string
	Verbose bool
}

// app carries the state shared by the commands of one root command.
type app struct {
	v        *viper.Viper
	settings Settings
	logger   builder.Logger
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	return newApp().rootCommand()
}

func newApp() *app {
	a := &app{v: viper.New(), logger: builder.NopLogger{}}
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	return a
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hydraschema",
		Short: "Build and check structural schemas from Hydra resource metadata",
		Long: `hydraschema builds structural schemas from Hydra / API Platform resource
metadata and checks JSON values against them.

Resources may embed each other; embedded fields are resolved by resource title
when a value is checked, so circular metadata is supported.

Every persistent flag can also be set in the environment:
  HYDRASCHEMA_PREFIX, HYDRASCHEMA_STRICT, HYDRASCHEMA_FORMAT, HYDRASCHEMA_VERBOSE`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("prefix", "hydra:", "key prefix stripped from collection values before checking (empty disables)")
	flags.Bool("strict", false, "fail when an embedded field names a resource the metadata does not describe")
	flags.StringP("format", "f", FormatText, "output format: text, json, or yaml")
	flags.BoolP("verbose", "v", false, "log schema resolution progress to stderr")
	for _, name := range []string{"prefix", "strict", "format", "verbose"} {
		// Binding only fails for a nil flag.
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newBuildCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newMCPCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// load resolves the settings for the command about to run.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	a.settings = Settings{
		Prefix:  a.v.GetString("prefix"),
		Strict:  a.v.GetBool("strict"),
		Format:  strings.ToLower(a.v.GetString("format")),
		Verbose: a.v.GetBool("verbose"),
	}
	if err := ValidateOutputFormat(a.settings.Format); err != nil {
		return err
	}
	a.logger = NewLogger(cmd.ErrOrStderr(), a.settings.Verbose)
	return nil
}

// Execute runs the root command with args.
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

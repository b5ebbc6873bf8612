package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/solana-explorer/internal/config"
	"github.com/dmagro/solana-explorer/internal/env"
	"github.com/dmagro/solana-explorer/internal/explorer"
	"github.com/dmagro/solana-explorer/internal/log"
	"github.com/dmagro/solana-explorer/internal/output"
	"github.com/dmagro/solana-explorer/internal/rpc"
)

// flags holds the global flag values.
type flags struct {
	cluster    string
	url        string
	configFile string
	settings   string
	verbose    bool
	noColor    bool
}

// session is the configuration resolved once per invocation and handed to
// every command.
type session struct {
	store    *config.Store
	prefs    config.Preferences
	settings *config.Settings

	cluster  string // effective cluster name
	endpoint string // effective RPC URL
}

// newExplorer returns a report writer bound to cmd's stdout and the session's
// endpoint.
func (s *session) newExplorer(cmd *cobra.Command) *explorer.Explorer {
	client := rpc.NewClient(s.endpoint, s.settings.Timeout)
	return explorer.New(client, cmd.OutOrStdout())
}

func rootCmd() *cobra.Command {
	var f flags
	s := &session{}

	cmd := &cobra.Command{
		Use:   "solx",
		Short: "Read-only explorer for Solana clusters",
		Long: `solx queries a Solana JSON-RPC endpoint and prints accounts, transactions,
blocks, validators, tokens, programs, stake accounts and cluster status.

The active cluster is stored in ~/.solx_config.json and changed with
"solx cluster set <name>". --cluster and --url override it for one command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.cluster, "cluster", "", "Cluster for this command only: mainnet-beta|testnet|devnet")
	pf.StringVar(&f.url, "url", "", "RPC endpoint for this command only (overrides --cluster)")
	pf.StringVar(&f.configFile, "config-file", "", "Preference file (default ~/"+config.PreferenceFileName+")")
	pf.StringVar(&f.settings, "settings", "", "Settings file (default ~/"+config.SettingsFileName+")")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Log RPC calls to stderr")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		clusterCmd(s),
		networkCmd(s),
		accountCmd(s),
		txCmd(s),
		blockCmd(s),
		validatorCmd(s),
		tokenCmd(s),
		programCmd(s),
		stakeCmd(s),
	)
	return cmd
}

// init loads .env, settings and preferences and resolves the endpoint.
func (s *session) init(cmd *cobra.Command, f flags) error {
	log.Init(cmd.ErrOrStderr(), f.verbose, f.noColor)
	output.ConfigureColors(f.noColor)

	if n, err := env.Load(env.DefaultFile); err != nil {
		log.Warn().Err(err).Msg("ignoring .env file")
	} else if n > 0 {
		log.Debug().Int("vars", n).Msg("loaded .env")
	}

	settingsPath := f.settings
	if settingsPath == "" {
		settingsPath = config.DefaultSettingsPath()
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	s.settings = settings

	s.store = config.NewStore(f.configFile)
	s.prefs = s.store.Load()
	s.cluster, s.endpoint = s.prefs.Cluster, s.prefs.RPCURL

	switch {
	case f.url != "":
		if err := config.ValidateEndpoint(f.url); err != nil {
			return fmt.Errorf("--url: %w", err)
		}
		s.cluster, s.endpoint = "custom", f.url
	case f.cluster != "":
		endpoint, recognized := settings.Endpoints.Resolve(f.cluster)
		if !recognized {
			designNote(cmd, f.cluster, endpoint)
		}
		s.cluster, s.endpoint = f.cluster, endpoint
	}

	log.Debug().Str("cluster", s.cluster).Str("endpoint", s.endpoint).Msg("resolved endpoint")
	return nil
}

// designNote tells the user an unrecognized cluster name landed on devnet.
func designNote(cmd *cobra.Command, name, endpoint string) {
	fmt.Fprintf(cmd.ErrOrStderr(),
		"DESIGN NOTE: %q is not a recognized cluster (mainnet-beta, testnet, devnet); using devnet at %s\n",
		name, endpoint)
}

// groupCmd returns a command that only holds subcommands. Invoked bare it
// prints help; an unknown subcommand is a usage error.
func groupCmd(use, short string, children ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(children...)
	return cmd
}

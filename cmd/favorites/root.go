package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v          *viper.Viper
	open       opener
	configFile string
}

func newRootCmd(open opener) *cobra.Command {
	a := &app{v: viper.New(), open: open}

	root := &cobra.Command{
		Use:   "favorites",
		Short: "Browse the recipe catalog and keep a local list of favorites",
		Long: `favorites talks to the recipe catalog API and keeps favorite recipes on
this machine. Favorites are written to a durable primary store (SQLite or S3)
and mirrored to a backup store (memory or Redis) so a failing store does not
lose them.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./favorites.yaml)")
	flags.String("api-url", "", "recipe catalog base URL")
	flags.String("primary", "", "primary store: sqlite or s3")
	flags.String("backup", "", "backup store: memory or redis")
	flags.String("session", "", "session id namespacing the redis backup")
	for key, flag := range map[string]string{
		cfgKeyAPIURL:    "api-url",
		cfgKeyPrimary:   "primary",
		cfgKeyBackup:    "backup",
		cfgKeySessionID: "session",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.listCmd(),
		a.recipesCmd(),
		a.toggleCmd(),
		a.forgetCmd(),
		a.deleteCmd(),
		a.categoriesCmd(),
	)
	return root
}

// withSession opens the stores and the catalog client, loads the favorites
// and hands the session to run. The session is closed whatever run returns.
func (a *app) withSession(run func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := loadConfig(a.v, a.configFile); err != nil {
			return err
		}

		s, err := a.open(cmd.Context(), a.v)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, s.close())
		}()

		if _, err := s.replica.Load(cmd.Context()); err != nil {
			return fmt.Errorf("load favorites: %w", err)
		}
		return run(cmd, args, s)
	}
}

// Command aadump loads keys into an ordered set or map and prints the ascending
// order together with the shape of the underlying AA-tree, for debugging layouts
// that feed the ordered containers.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	var (
		configPath string
		deletes    []string
		check      bool
		verbose    bool
	)

	var cmdSet = &cobra.Command{
		Use:   "set [value...]",
		Short: "Dump an ordered set built from the config keys and the arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"config": configPath, "keys": len(c.Keys), "args": len(args)}).Debug("building set")
			return dumpSet(cmd.OutOrStdout(), buildSet(c, args, deletes, log), check)
		},
	}

	var cmdMap = &cobra.Command{
		Use:   "map [key=value...]",
		Short: "Dump an ordered map built from the config pairs and the arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"config": configPath, "pairs": len(c.Pairs), "args": len(args)}).Debug("building map")
			m, err := buildMap(c, args, deletes, log)
			if err != nil {
				return err
			}
			return dumpMap(cmd.OutOrStdout(), m, check)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "aadump",
		Short:         "Inspect ordered containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file with keys, pairs and delete lists")
	rootCmd.PersistentFlags().StringSliceVarP(&deletes, "delete", "d", nil, "key to delete after loading (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&check, "check", false, "fail if the tree breaks the AA invariants")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(cmdSet, cmdMap)
	return rootCmd
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("aadump failed")
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is the CLI version string.
const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "plexus",
		Short:         "Compile-time shaped matrices and dense layers",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDemoCmd(), newRunCmd(), newDetCmd())

	return root
}

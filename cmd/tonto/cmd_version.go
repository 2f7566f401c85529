package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vynijales/ufersa-compilador-tonto/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tonto version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

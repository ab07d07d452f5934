package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomlq",
	Short: "Tomlq is a tool for inspecting TOML configuration files.",
	Long:  "Tomlq is a tool for inspecting TOML configuration files. It parses a document into an ordered tree and renders it as JSON or YAML, or looks up single values by dotted key.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tomlq",
	Long:  `All software has versions. This is Tomlq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Tomlq v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(getCmd)
}

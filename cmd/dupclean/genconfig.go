package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/commands/genconfig"
)

var genConfigWrite bool

var genConfigCmd = &cobra.Command{
	Use:   "gen-config",
	Short: "Print or write the default configuration",
	Long: `Print the annotated default configuration. With --write, save it to the
user config path instead; an existing config file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := genconfig.GenConfig(genconfig.Options{Write: genConfigWrite})
		if err != nil {
			return err
		}
		if result.WrittenPath != "" {
			fmt.Printf("Config written to: %s\n", result.WrittenPath)
			return nil
		}
		fmt.Print(result.ConfigContent)
		return nil
	},
}

func init() {
	genConfigCmd.Flags().BoolVar(&genConfigWrite, "write", false, "Write the config to the user config path")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sopmaster25-create/sopmaster/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize sopmaster configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure sopmaster and generates a sopmaster.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatrakit/yatrakit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default global configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

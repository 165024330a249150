package main

import (
	"fmt"
	"path/filepath"

	"github.com/noahmasoud/autodoc/fs"
	"github.com/noahmasoud/autodoc/koanf"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the client configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Run:   runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := configFlag
	if path == "" {
		path = filepath.Join(fs.DefaultConfigDir(), "config.toml")
	}

	if err := koanf.Init(path); err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/noahmasoud/autodoc"
	"github.com/spf13/cobra"
)

var (
	connName  string
	connURL   string
	connToken string
)

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Manage documentation source connections",
}

var connectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connections",
	Run:   runConnectionsList,
}

var connectionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a connection",
	Run:   runConnectionsAdd,
}

func init() {
	connectionsAddCmd.Flags().StringVar(&connName, "name", "", "connection name (required)")
	connectionsAddCmd.Flags().StringVar(&connURL, "url", "", "base URL of the source (required)")
	connectionsAddCmd.Flags().StringVar(&connToken, "token", "", "access token for the source")
	connectionsAddCmd.MarkFlagRequired("name")
	connectionsAddCmd.MarkFlagRequired("url")

	connectionsCmd.AddCommand(connectionsListCmd)
	connectionsCmd.AddCommand(connectionsAddCmd)
}

func runConnectionsList(cmd *cobra.Command, args []string) {
	c := initContext()

	conns, err := c.Client.Connections(cmd.Context())
	if err != nil {
		exitError("listing connections: %v", err)
	}

	if len(conns) == 0 {
		fmt.Println("No connections configured.")
		return
	}
	for _, conn := range conns {
		color.New(color.FgCyan).Printf("#%-4d", conn.ID)
		fmt.Printf(" %-20s %s\n", conn.Name, conn.BaseURL)
	}
}

func runConnectionsAdd(cmd *cobra.Command, args []string) {
	c := initContext()

	conn, err := c.Client.CreateConnection(cmd.Context(), autodoc.Connection{
		Name:    connName,
		BaseURL: connURL,
		Token:   connToken,
	})
	if err != nil {
		exitError("creating connection: %v", err)
	}
	fmt.Printf("Created connection #%d %s\n", conn.ID, conn.Name)
}

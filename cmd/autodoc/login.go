package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/noahmasoud/autodoc"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a bearer token",
	Run:   runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored bearer token",
	Run:   runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) {
	c := initContext()

	username := loginUsername
	if username == "" {
		username = promptLine("Username: ")
	}
	password := loginPassword
	if password == "" {
		password = promptLine("Password: ")
	}

	token, err := c.Client.Login(cmd.Context(), autodoc.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		exitError("login failed: %v", err)
	}

	if err := c.Tokens.SetToken(token); err != nil {
		exitError("saving token: %v", err)
	}
	fmt.Println("Logged in.")
}

func runLogout(cmd *cobra.Command, args []string) {
	c := initContext()
	if err := c.Tokens.Clear(); err != nil {
		exitError("clearing token: %v", err)
	}
	fmt.Println("Logged out.")
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

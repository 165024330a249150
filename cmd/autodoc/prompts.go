package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/noahmasoud/autodoc"
	"github.com/spf13/cobra"
)

var (
	promptName string
	promptFile string
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage LLM prompts",
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts",
	Run:   runPromptsList,
}

var promptsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a prompt",
	Run:   runPromptsAdd,
}

var promptsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a prompt",
	Args:  cobra.ExactArgs(1),
	Run:   runPromptsUpdate,
}

var promptsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a prompt",
	Args:  cobra.ExactArgs(1),
	Run:   runPromptsDelete,
}

var promptsSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Mark a prompt as the locally preferred one",
	Args:  cobra.ExactArgs(1),
	Run:   runPromptsSelect,
}

func addPromptFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&promptName, "name", "", "prompt name")
	cmd.Flags().StringVar(&promptFile, "file", "", "file containing the prompt body")
}

func init() {
	addPromptFlags(promptsAddCmd)
	promptsAddCmd.MarkFlagRequired("name")
	promptsAddCmd.MarkFlagRequired("file")

	addPromptFlags(promptsUpdateCmd)

	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsAddCmd)
	promptsCmd.AddCommand(promptsUpdateCmd)
	promptsCmd.AddCommand(promptsDeleteCmd)
	promptsCmd.AddCommand(promptsSelectCmd)
}

func runPromptsList(cmd *cobra.Command, args []string) {
	c := initContext()

	prompts, err := c.Client.Prompts(cmd.Context())
	if err != nil {
		exitError("listing prompts: %v", err)
	}

	selected, _ := c.Prefs.SelectedPrompt()

	if len(prompts) == 0 {
		fmt.Println("No prompts configured.")
		return
	}
	for _, p := range prompts {
		color.New(color.FgCyan).Printf("#%-4d", p.ID)
		fmt.Printf(" %s", p.Name)
		if p.ID == selected {
			color.New(color.FgGreen).Print("  (selected)")
		}
		fmt.Println()
	}
}

func runPromptsAdd(cmd *cobra.Command, args []string) {
	c := initContext()

	p, err := c.Client.CreatePrompt(cmd.Context(), autodoc.Prompt{
		Name:    promptName,
		Content: readBodyFile(promptFile),
	})
	if err != nil {
		exitError("creating prompt: %v", err)
	}
	fmt.Printf("Created prompt #%d %s\n", p.ID, p.Name)
}

func runPromptsUpdate(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid prompt id %q", args[0])
	}

	c := initContext()

	p, err := c.Client.UpdatePrompt(cmd.Context(), autodoc.Prompt{
		ID:      id,
		Name:    promptName,
		Content: readBodyFile(promptFile),
	})
	if err != nil {
		exitError("updating prompt %d: %v", id, err)
	}
	fmt.Printf("Updated prompt #%d %s\n", p.ID, p.Name)
}

func runPromptsDelete(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid prompt id %q", args[0])
	}

	c := initContext()

	if err := c.Client.DeletePrompt(cmd.Context(), id); err != nil {
		exitError("deleting prompt %d: %v", id, err)
	}
	fmt.Printf("Deleted prompt #%d\n", id)
}

func runPromptsSelect(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid prompt id %q", args[0])
	}

	c := initContext()

	if err := c.Prefs.SetSelectedPrompt(id); err != nil {
		exitError("saving preference: %v", err)
	}
	fmt.Printf("Selected prompt #%d\n", id)
}

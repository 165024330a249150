package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/noahmasoud/autodoc"
	"github.com/spf13/cobra"
)

var (
	templateName string
	templateFile string
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage page templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Run:   runTemplatesList,
}

var templatesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a template",
	Run:   runTemplatesAdd,
}

var templatesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a template",
	Args:  cobra.ExactArgs(1),
	Run:   runTemplatesUpdate,
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	Run:   runTemplatesDelete,
}

func addTemplateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&templateName, "name", "", "template name")
	cmd.Flags().StringVar(&templateFile, "file", "", "file containing the template body")
}

func init() {
	addTemplateFlags(templatesAddCmd)
	templatesAddCmd.MarkFlagRequired("name")
	templatesAddCmd.MarkFlagRequired("file")

	addTemplateFlags(templatesUpdateCmd)

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesAddCmd)
	templatesCmd.AddCommand(templatesUpdateCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
}

func readBodyFile(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		exitError("reading %s: %v", path, err)
	}
	return string(data)
}

func runTemplatesList(cmd *cobra.Command, args []string) {
	c := initContext()

	templates, err := c.Client.Templates(cmd.Context())
	if err != nil {
		exitError("listing templates: %v", err)
	}

	if len(templates) == 0 {
		fmt.Println("No templates configured.")
		return
	}
	for _, t := range templates {
		color.New(color.FgCyan).Printf("#%-4d", t.ID)
		fmt.Printf(" %s (%d bytes)\n", t.Name, len(t.Content))
	}
}

func runTemplatesAdd(cmd *cobra.Command, args []string) {
	c := initContext()

	t, err := c.Client.CreateTemplate(cmd.Context(), autodoc.Template{
		Name:    templateName,
		Content: readBodyFile(templateFile),
	})
	if err != nil {
		exitError("creating template: %v", err)
	}
	fmt.Printf("Created template #%d %s\n", t.ID, t.Name)
}

func runTemplatesUpdate(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid template id %q", args[0])
	}

	c := initContext()

	t, err := c.Client.UpdateTemplate(cmd.Context(), autodoc.Template{
		ID:      id,
		Name:    templateName,
		Content: readBodyFile(templateFile),
	})
	if err != nil {
		exitError("updating template %d: %v", id, err)
	}
	fmt.Printf("Updated template #%d %s\n", t.ID, t.Name)
}

func runTemplatesDelete(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid template id %q", args[0])
	}

	c := initContext()

	if err := c.Client.DeleteTemplate(cmd.Context(), id); err != nil {
		exitError("deleting template %d: %v", id, err)
	}
	fmt.Printf("Deleted template #%d\n", id)
}

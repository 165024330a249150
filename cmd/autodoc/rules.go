package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/noahmasoud/autodoc"
	"github.com/spf13/cobra"
)

var (
	ruleName     string
	ruleGlob     string
	rulePageID   int
	ruleDesc     string
	ruleDisabled bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage source-to-page rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules",
	Run:   runRulesList,
}

var rulesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a rule",
	Run:   runRulesAdd,
}

var rulesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a rule",
	Args:  cobra.ExactArgs(1),
	Run:   runRulesUpdate,
}

var rulesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a rule",
	Args:  cobra.ExactArgs(1),
	Run:   runRulesDelete,
}

func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ruleName, "name", "", "rule name")
	cmd.Flags().StringVar(&ruleGlob, "glob", "", "source file glob")
	cmd.Flags().IntVar(&rulePageID, "page", 0, "target page id")
	cmd.Flags().StringVar(&ruleDesc, "description", "", "rule description")
	cmd.Flags().BoolVar(&ruleDisabled, "disabled", false, "create the rule disabled")
}

func init() {
	addRuleFlags(rulesAddCmd)
	rulesAddCmd.MarkFlagRequired("name")
	rulesAddCmd.MarkFlagRequired("glob")
	rulesAddCmd.MarkFlagRequired("page")

	addRuleFlags(rulesUpdateCmd)

	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesAddCmd)
	rulesCmd.AddCommand(rulesUpdateCmd)
	rulesCmd.AddCommand(rulesDeleteCmd)
}

func runRulesList(cmd *cobra.Command, args []string) {
	c := initContext()

	rules, err := c.Client.Rules(cmd.Context())
	if err != nil {
		exitError("listing rules: %v", err)
	}

	if len(rules) == 0 {
		fmt.Println("No rules configured.")
		return
	}
	for _, r := range rules {
		color.New(color.FgCyan).Printf("#%-4d", r.ID)
		state := "enabled"
		if !r.Enabled {
			state = "disabled"
		}
		fmt.Printf(" %-20s %-30s page %-4d %s\n", r.Name, r.SourceGlob, r.PageID, state)
	}
}

func runRulesAdd(cmd *cobra.Command, args []string) {
	c := initContext()

	rule, err := c.Client.CreateRule(cmd.Context(), autodoc.Rule{
		Name:        ruleName,
		SourceGlob:  ruleGlob,
		PageID:      rulePageID,
		Description: ruleDesc,
		Enabled:     !ruleDisabled,
	})
	if err != nil {
		exitError("creating rule: %v", err)
	}
	fmt.Printf("Created rule #%d %s\n", rule.ID, rule.Name)
}

func runRulesUpdate(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid rule id %q", args[0])
	}

	c := initContext()

	rule, err := c.Client.UpdateRule(cmd.Context(), autodoc.Rule{
		ID:          id,
		Name:        ruleName,
		SourceGlob:  ruleGlob,
		PageID:      rulePageID,
		Description: ruleDesc,
		Enabled:     !ruleDisabled,
	})
	if err != nil {
		exitError("updating rule %d: %v", id, err)
	}
	fmt.Printf("Updated rule #%d %s\n", rule.ID, rule.Name)
}

func runRulesDelete(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid rule id %q", args[0])
	}

	c := initContext()

	if err := c.Client.DeleteRule(cmd.Context(), id); err != nil {
		exitError("deleting rule %d: %v", id, err)
	}
	fmt.Printf("Deleted rule #%d\n", id)
}

package main

import (
	"fmt"

	"github.com/noahmasoud/autodoc"
	"github.com/spf13/cobra"
)

var (
	llmProvider    string
	llmModel       string
	llmTemperature float64
	llmAPIKey      string
)

var llmConfigCmd = &cobra.Command{
	Use:   "llm-config",
	Short: "Inspect or change the backend's model configuration",
}

var llmConfigShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current model configuration",
	Run:   runLLMConfigShow,
}

var llmConfigSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the model configuration",
	Run:   runLLMConfigSet,
}

func init() {
	llmConfigSetCmd.Flags().StringVar(&llmProvider, "provider", "", "model provider (required)")
	llmConfigSetCmd.Flags().StringVar(&llmModel, "model", "", "model name (required)")
	llmConfigSetCmd.Flags().Float64Var(&llmTemperature, "temperature", 0.2, "sampling temperature")
	llmConfigSetCmd.Flags().StringVar(&llmAPIKey, "api-key", "", "provider API key")
	llmConfigSetCmd.MarkFlagRequired("provider")
	llmConfigSetCmd.MarkFlagRequired("model")

	llmConfigCmd.AddCommand(llmConfigShowCmd)
	llmConfigCmd.AddCommand(llmConfigSetCmd)
}

func runLLMConfigShow(cmd *cobra.Command, args []string) {
	c := initContext()

	cfg, err := c.Client.LLMConfig(cmd.Context())
	if err != nil {
		exitError("fetching llm config: %v", err)
	}

	// The API key is write-only and never echoed.
	fmt.Printf("provider:    %s\n", cfg.Provider)
	fmt.Printf("model:       %s\n", cfg.Model)
	fmt.Printf("temperature: %g\n", cfg.Temperature)
}

func runLLMConfigSet(cmd *cobra.Command, args []string) {
	c := initContext()

	cfg, err := c.Client.SetLLMConfig(cmd.Context(), autodoc.LLMConfig{
		Provider:    llmProvider,
		Model:       llmModel,
		Temperature: llmTemperature,
		APIKey:      llmAPIKey,
	})
	if err != nil {
		exitError("updating llm config: %v", err)
	}
	fmt.Printf("Configured %s/%s\n", cfg.Provider, cfg.Model)
}

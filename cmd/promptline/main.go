package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/promptline/promptline/pkg/config"
	"github.com/promptline/promptline/pkg/provider"
	"github.com/promptline/promptline/pkg/repl"
	"github.com/promptline/promptline/pkg/router"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "promptline [flags] [prompt]",
	Short: "Send a prompt to a hosted LLM provider",
	Long: `Send a text prompt to a hosted LLM provider and print the answer.

Select a provider with -p (gemini, claude, openai, perplexity, deepseek,
grok; "chatgpt" is an alias for openai), override its default model with
-m, or enter an interactive loop with -i. API keys are read from the
environment (or a .env file):

  OPENAI_API_KEY, GOOGLE_API_KEY, ANTHROPIC_API_KEY,
  PPLX_API_KEY, DEEPSEEK_API_KEY, XAI_API_KEY`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	// A .env file is optional; missing is not an error.
	_ = godotenv.Load()

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	providerKey, _ := cmd.Flags().GetString("provider")
	if providerKey == "" {
		providerKey = cfg.DefaultProvider
	}
	model, _ := cmd.Flags().GetString("model")
	verbose, _ := cmd.Flags().GetBool("verbose")
	interactive, _ := cmd.Flags().GetBool("interactive")

	rt := router.New(cfg, router.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Timeout)}))

	if interactive {
		loop := repl.New(rt, providerKey, model, os.Stdin, os.Stdout, repl.WithVerbose(verbose))
		return loop.Run(cmd.Context())
	}

	if len(args) == 0 {
		return cmd.Help()
	}
	prompt := args[len(args)-1]

	res, err := rt.Do(cmd.Context(), providerKey, model, prompt)
	if err != nil {
		// One-shot failures print a message and still exit 0.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil
	}

	fmt.Println(res.Text)
	if verbose {
		cost := provider.EstimateCost(res.Model, res.Usage)
		fmt.Fprintf(os.Stderr, "[%s/%s: %d in, %d out, ~$%.4f]\n",
			res.Provider, res.Model, res.Usage.InputTokens, res.Usage.OutputTokens, cost)
	}
	return nil
}

// --- providers command ---

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List known providers",
	Long: `List every known provider with its default model, the environment
variable its API key is read from, and whether that variable is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadOrDefault(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		for _, key := range router.Known() {
			pc := cfg.Providers[key]
			status := "unset"
			if os.Getenv(pc.APIKeyEnv) != "" {
				status = "configured"
			}
			marker := " "
			if key == cfg.DefaultProvider {
				marker = "*"
			}
			fmt.Printf("%s %-12s %-28s %-18s %s\n", marker, key, pc.Model, pc.APIKeyEnv, status)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "promptline.yaml", "Path to config file")

	rootCmd.Flags().StringP("provider", "p", "", "Provider to use (default: config default_provider)")
	rootCmd.Flags().StringP("model", "m", "", "Override the provider's default model")
	rootCmd.Flags().BoolP("interactive", "i", false, "Enter the interactive loop")
	rootCmd.Flags().BoolP("verbose", "v", false, "Print token usage and estimated cost")

	rootCmd.AddCommand(providersCmd)
}

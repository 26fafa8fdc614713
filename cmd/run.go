package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/resume-qa/internal/ai"
	"github.com/spigell/resume-qa/internal/ai/gemini"
	"github.com/spigell/resume-qa/internal/ai/ollama"
	"github.com/spigell/resume-qa/internal/harness"
	"github.com/spigell/resume-qa/internal/logger"
	"github.com/spigell/resume-qa/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var overwritePrompt = promptui.Select{
	Label: "Output file already exists. Overwrite?",
	Items: []string{PromptYes, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run <resume-file>",
	Short: "Parse a resume and answer the application questions against it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("output", "o", "", "output file for the json report. Default is unset.")
	runCmd.Flags().StringP("model", "m", "", fmt.Sprintf("model to use (default %q)", ollama.DefaultModel))
	runCmd.Flags().String("base-url", "", fmt.Sprintf("inference service address (default %q)", ollama.DefaultBaseURL))
	runCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before overwriting the output file")

	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("model", runCmd.Flags().Lookup("model"))
	viper.BindPFlag("base-url", runCmd.Flags().Lookup("base-url"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, resumePath string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-qa", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	answerer, err := newAnswerer(ctx, config, logger)
	if err != nil {
		logger.Fatal("building inference provider", zap.Error(err))
	}

	output := config.Output
	if output != "" {
		confirmed, err := confirmOverwrite(cmd, output)
		if err != nil {
			logger.Fatal("confirming output overwrite", zap.Error(err))
		}
		if !confirmed {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	h := harness.New(answerer, config.Questions, logger)

	if err := h.Run(ctx, resumePath, output); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

// confirmOverwrite asks before clobbering an existing report file, unless
// the --yes flag is set or the file does not exist yet.
func confirmOverwrite(cmd *cobra.Command, output string) (bool, error) {
	if cmd.Flag("yes").Value.String() == "true" {
		return true, nil
	}

	if _, err := os.Stat(output); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}

	_, action, err := overwritePrompt.Run()
	if err != nil {
		return false, err
	}

	return action == PromptYes, nil
}

func newAnswerer(ctx context.Context, config *Config, logger *zap.Logger) (ai.Answerer, error) {
	provider := ""
	if config.AI != nil {
		provider = strings.TrimSpace(strings.ToLower(config.AI.Provider))
	}

	switch provider {
	case "", "ollama":
		return ollama.New(config.Model, config.BaseURL, logger), nil
	case "gemini":
		return newGeminiAnswerer(ctx, config, logger)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", config.AI.Provider)
	}
}

func newGeminiAnswerer(ctx context.Context, config *Config, logger *zap.Logger) (ai.Answerer, error) {
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}

	keyFile := config.AI.Gemini.APIKeyFile
	if keyFile == "" {
		keyFile = viper.GetString("ai.gemini.api-key-file")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	model := config.AI.Gemini.Model
	if model == "" {
		model = config.Model
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", model),
	)

	return gemini.New(ctx, apiKey, model, genLogger)
}

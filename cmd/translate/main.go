// Command translate converts an OpenAI chat-completion request into the
// Antigravity Gemini envelope and prints it. It exists to replay captured
// requests against the translation pipeline without a running proxy.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/routerlab/geminibridge/internal/cache"
	"github.com/routerlab/geminibridge/internal/config"
	"github.com/routerlab/geminibridge/internal/constant"
	"github.com/routerlab/geminibridge/internal/logging"
	"github.com/routerlab/geminibridge/internal/registry"
	_ "github.com/routerlab/geminibridge/internal/translator"
	"github.com/routerlab/geminibridge/internal/translator/translator"
)

func init() {
	logging.SetupBaseLogger()
}

func main() {
	var (
		configPath     string
		inputPath      string
		model          string
		project        string
		conversationID string
		signature      string
	)

	flag.StringVar(&configPath, "config", "", "Path to the YAML config file")
	flag.StringVar(&inputPath, "in", "-", "OpenAI request JSON file, or - for stdin")
	flag.StringVar(&model, "model", "gemini-3-pro-preview", "Backend model the request is routed to")
	flag.StringVar(&project, "project", "", "Google Cloud project ID stamped on the envelope")
	flag.StringVar(&conversationID, "conversation", "", "Conversation ID used for thought-signature lookup")
	flag.StringVar(&signature, "signature", "", "Thought signature to seed for the conversation before translating")
	flag.Parse()

	// .env values back the flags for local replay sessions.
	_ = godotenv.Load()
	if project == "" {
		project = os.Getenv("GEMINI_PROJECT_ID")
	}

	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		logging.ConfigureLevel(cfg.LoggingLevel)
		logging.ConfigureFileOutput(cfg.LogFile)
		registry.ApplyConfig(cfg)
		if project == "" {
			project = cfg.Project
		}
	}

	rawJSON, err := readInput(inputPath)
	if err != nil {
		log.Fatalf("read request: %v", err)
	}

	if signature != "" && conversationID != "" {
		cache.Default().Put(conversationID, signature)
	}

	ctx := translator.WithProjectID(context.Background(), project)
	ctx = translator.WithConversationID(ctx, conversationID)

	out := translator.Request(
		ctx,
		translator.FromString(constant.OpenAI),
		translator.FromString(constant.Antigravity),
		model,
		rawJSON,
		false,
	)
	fmt.Println(string(out))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

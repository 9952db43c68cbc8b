// Command listmodels prints the Gemini models that support content
// generation for the configured API key. When listing fails it probes a few
// common model names instead.
package main

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"edubridge/internal/adapter/generator"
	"edubridge/internal/config"
	"edubridge/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	generateContentMethod = "generateContent"
	descriptionLimit      = 100
	probeTimeout          = 30 * time.Second
)

var commonModels = []string{
	"gemini-pro",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-2.0-flash-exp",
	"models/gemini-pro",
	"models/gemini-1.5-flash",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if cfg.LLM.GeminiAPIKey == "" {
		appLogger.Fatal("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("Gemini models available for generateContent")
	fmt.Println(separator)

	if err := listModels(ctx, cfg.LLM.GeminiAPIKey); err != nil {
		appLogger.Error("Failed to list models", zap.Error(err))
		fmt.Println("\nProbing common model names...")
		probeModels(ctx, cfg.LLM.GeminiAPIKey)
	}

	fmt.Println("\n" + separator)
}

func listModels(ctx context.Context, apiKey string) error {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	it := client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if !slices.Contains(m.SupportedGenerationMethods, generateContentMethod) {
			continue
		}
		fmt.Printf("\nModel: %s\n", m.Name)
		fmt.Printf("   Display name: %s\n", m.DisplayName)
		fmt.Printf("   Description: %s...\n", truncate(m.Description, descriptionLimit))
		fmt.Printf("   Methods: %v\n", m.SupportedGenerationMethods)
	}
}

func probeModels(ctx context.Context, apiKey string) {
	for _, name := range commonModels {
		if err := probe(ctx, apiKey, name); err != nil {
			fmt.Printf("FAIL %s - %s\n", name, truncate(err.Error(), 50))
			continue
		}
		fmt.Printf("OK   %s\n", name)
	}
}

func probe(ctx context.Context, apiKey, model string) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	g, err := generator.NewGeminiModel(ctx, apiKey, model, 0)
	if err != nil {
		return err
	}
	defer g.Close()

	_, err = g.Generate(ctx, "Di 'hola'")
	return err
}

func truncate(s string, limit int) string {
	if s == "" {
		return "N/A"
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

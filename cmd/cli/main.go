// Command cvlens parses resumes from the command line, without the web UI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/pflag"

	"github.com/cvlens/cvlens/internal/ai/gemini"
	"github.com/cvlens/cvlens/internal/ai/openai"
	"github.com/cvlens/cvlens/internal/config"
	"github.com/cvlens/cvlens/internal/extract"
	"github.com/cvlens/cvlens/parsing/resume"
	"github.com/cvlens/cvlens/parsing/resume/resumeinfra"
	"github.com/cvlens/cvlens/parsing/resume/resumesrv"
	"github.com/cvlens/cvlens/pkg/logx"
)

func main() {
	var (
		file    = pflag.StringP("file", "f", "", "Path to resume file (TXT, PDF, or DOCX)")
		batch   = pflag.StringP("batch", "b", "", "Process all resumes in a folder")
		output  = pflag.StringP("output", "o", "", "Output file path for results (JSON format)")
		noCache = pflag.Bool("no-cache", false, "Disable caching of results")
		verbose = pflag.BoolP("verbose", "v", false, "Enable verbose output")
	)
	pflag.Parse()

	if *verbose {
		logx.SetLevel(logx.LevelDebug)
	} else {
		logx.SetLevel(logx.LevelWarn)
	}

	if *file == "" && *batch == "" {
		pflag.Usage()
		fmt.Fprintln(os.Stderr, "\nError: please specify either --file or --batch")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *noCache {
		cfg.UseCache = false
	}

	service, cleanup, err := buildService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()

	if *file != "" {
		if err := runSingle(ctx, service, *file, *output, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runBatch(ctx, service, cfg, *batch, *output, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildService wires the generator, cache and extractor from config.
func buildService(cfg *config.Config) (*resumesrv.Service, func(), error) {
	ctx := context.Background()
	cleanup := func() {}

	var generator resume.Generator
	var err error
	switch cfg.Provider {
	case config.ProviderOpenAI:
		generator, err = openai.New(cfg.OpenAIAPIKey, cfg.ModelName, cfg.Temperature, cfg.MaxOutputTokens)
	default:
		generator, err = gemini.New(ctx, cfg.GeminiAPIKey, cfg.ModelName, cfg.Temperature, cfg.MaxOutputTokens)
	}
	if err != nil {
		return nil, nil, err
	}

	var cache resume.Cache
	if cfg.UseCache {
		if cfg.CacheBackend == config.CacheBackendRedis {
			client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass})
			cleanup = func() { _ = client.Close() }
			cache = resumeinfra.NewRedisCache(client, 0)
		} else {
			cache, err = resumeinfra.NewFileCache(cfg.CacheDir)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	service := resumesrv.NewService(generator, cache, extract.New(cfg.MaxFileSize), resumesrv.Options{
		MaxRetries:     cfg.MaxRetries,
		RequestTimeout: cfg.RequestTimeout,
	})
	return service, cleanup, nil
}

func runSingle(ctx context.Context, service *resumesrv.Service, path, output string, verbose bool) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	if verbose {
		fmt.Printf("Parsing: %s\n", path)
	}

	record, err := service.ParseFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	displayRecord(record)

	if output != "" {
		data, err := record.JSONIndent()
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Printf("\nResults saved to: %s\n", output)
	}
	return nil
}

func runBatch(ctx context.Context, service *resumesrv.Service, cfg *config.Config, dir, output string, verbose bool) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory not found: %s", dir)
	}

	if output == "" {
		output = "batch_results.json"
	}

	result, err := service.ProcessDirectory(ctx, dir, resumesrv.BatchOptions{
		Pacing:     cfg.PacingInterval(),
		OutputPath: output,
		Progress: func(i, total int, name string) {
			fmt.Printf("Processing %d/%d: %s\n", i+1, total, name)
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nBatch processing complete!\n")
	fmt.Printf("   Total: %d | Success: %d | Failed: %d\n", len(result), result.Succeeded(), result.Failed())
	fmt.Printf("   Results saved to: %s\n", output)

	if verbose && result.Failed() > 0 {
		fmt.Println("\nFailed files:")
		for _, entry := range result {
			if !entry.Success {
				fmt.Printf("   - %s: %s\n", entry.Filename, entry.Error)
			}
		}
	}
	return nil
}

func displayRecord(record *resume.Record) {
	line := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	fmt.Println(line)
	fmt.Println("RESUME PARSING RESULTS")
	fmt.Println(line)

	fmt.Println("\nPERSONAL INFORMATION")
	fmt.Println(thin)
	fmt.Printf("Name:        %s\n", orNA(record.Name))
	fmt.Printf("Email:       %s\n", orNA(record.Email))
	fmt.Printf("Phone:       %s\n", orNA(record.Phone))
	fmt.Printf("Position:    %s\n", orNA(record.Position))
	fmt.Printf("Experience:  %s\n", orNA(record.Experience))
	fmt.Printf("Education:   %s\n", orNA(record.Education))

	if record.Summary != nil && *record.Summary != "" {
		fmt.Println("\nPROFESSIONAL SUMMARY")
		fmt.Println(thin)
		fmt.Println(*record.Summary)
	}

	fmt.Println("\nSKILLS")
	fmt.Println(thin)
	if len(record.PrimarySkills) > 0 {
		fmt.Println("Primary Skills (Core Competencies):")
		for _, skill := range record.PrimarySkills {
			fmt.Printf("  - %s\n", skill)
		}
	}
	if len(record.SecondarySkills) > 0 {
		fmt.Println("\nSecondary Skills (Supporting):")
		for _, skill := range record.SecondarySkills {
			fmt.Printf("  - %s\n", skill)
		}
	}

	if record.SkillsSource != nil && *record.SkillsSource != "" {
		fmt.Println("\nSKILLS DETERMINATION")
		fmt.Println(thin)
		fmt.Println(*record.SkillsSource)
	}

	fmt.Println("\n" + line)
	fmt.Println("Complete JSON output:")
	fmt.Println(line)
	if data, err := record.JSONIndent(); err == nil {
		fmt.Println(string(data))
	}
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

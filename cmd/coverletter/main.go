package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/coverletter"
	"github.com/fwojciec/coverletter/anthropic"
	"github.com/fwojciec/coverletter/docx"
	"github.com/fwojciec/coverletter/gemini"
	"github.com/fwojciec/coverletter/generate"
	"github.com/fwojciec/coverletter/goquery"
	clhttp "github.com/fwojciec/coverletter/http"
	"github.com/fwojciec/coverletter/memory"
	"github.com/fwojciec/coverletter/rod"
	"github.com/fwojciec/coverletter/scrape"
	clslog "github.com/fwojciec/coverletter/slog"
	"github.com/fwojciec/coverletter/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is normal; real environment variables win.
	_ = godotenv.Load()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Nil fields are built from flags.
	Fetcher   coverletter.Fetcher
	Generator coverletter.Generator
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  os.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coverletter"),
		kong.Description("Tailored cover letters and resume bullets from job postings."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coverletter --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Profile, err = yaml.NewProfileLoader(cli.ProfilePath).Load()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set COVERLETTER_PROFILE or --profile to a valid profile YAML file")
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if cmd == "profile" {
		return kongCtx.Run(deps)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cli.Browser)
		if err != nil {
			return err
		}
		defer fetcher.Close()
	}
	fetcher = clslog.NewLoggingFetcher(fetcher, deps.Logger)
	extractor := goquery.NewExtractor()

	deps.JobScraper = clslog.NewLoggingJobScraper(scrape.NewJobScraper(fetcher, extractor), deps.Logger)

	crawler := scrape.NewCompanyCrawler(fetcher, extractor)
	if cli.CrawlRate > 0 {
		crawler.Limiter = scrape.NewHostLimiter(cli.CrawlRate, len(crawler.SubPaths))
	}
	deps.CompanyCrawler = clslog.NewLoggingCompanyCrawler(crawler, deps.Logger)

	deps.Sessions = clslog.NewLoggingSessionStore(memory.NewSessionStore(memory.WithCapacity(cli.Sessions)), deps.Logger)
	deps.Renderer = docx.NewRenderer()

	needsModel := cmd == "serve" || cmd == "analyze-company" || (cmd == "generate" && !cli.Generate.DryRun)
	if needsModel {
		generator := m.Generator
		if generator == nil {
			generator, err = newGenerator(ctx, cli)
			if err != nil {
				return err
			}
		}
		if generator != nil {
			deps.Orchestrator = generate.NewOrchestrator(clslog.NewLoggingGenerator(generator, deps.Logger), deps.Sessions)
		}
	}

	if cmd == "generate" && cli.Generate.DryRun {
		tc, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.TokenCounter = tc
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for dry-run token counts regardless of provider.
const tokenizerModel = gemini.DefaultModel

func newFetcher(browser bool) (coverletter.Fetcher, error) {
	if !browser {
		return clhttp.NewFetcher(), nil
	}
	f, err := rod.NewFetcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
	}
	return f, nil
}

// newGenerator returns the configured provider's generator, or nil when
// provider is "auto" and no API key is set.
func newGenerator(ctx context.Context, cli *CLI) (coverletter.Generator, error) {
	provider := cli.Provider
	if provider == "auto" {
		switch {
		case cli.GeminiAPIKey != "":
			provider = "gemini"
		case cli.AnthropicAPIKey != "":
			provider = "anthropic"
		default:
			return nil, nil
		}
	}

	switch provider {
	case "gemini":
		client, err := gemini.NewClient(ctx, cli.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, cli.Model), nil
	case "anthropic":
		g, err := anthropic.NewGenerator(cli.AnthropicAPIKey, cli.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to configure Anthropic API: %w", err)
		}
		return g, nil
	}
	return nil, coverletter.Errorf(coverletter.EINVALID, "unknown provider %q", provider)
}

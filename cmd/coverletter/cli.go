package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/coverletter"
	"github.com/fwojciec/coverletter/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Profile        *coverletter.Profile
	JobScraper     coverletter.JobScraper
	CompanyCrawler coverletter.CompanyCrawler
	Sessions       coverletter.SessionStore
	Renderer       coverletter.DocumentRenderer
	TokenCounter   coverletter.TokenCounter

	// Orchestrator is nil when no model provider is configured.
	Orchestrator *generate.Orchestrator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug           bool    `help:"Enable debug logging" env:"COVERLETTER_DEBUG"`
	Provider        string  `help:"Model provider (auto picks whichever API key is set)" enum:"auto,gemini,anthropic" default:"auto" env:"COVERLETTER_PROVIDER"`
	Model           string  `help:"Model name (provider default if empty)" env:"COVERLETTER_MODEL"`
	GeminiAPIKey    string  `name:"gemini-api-key" help:"Gemini API key" env:"GEMINI_API_KEY"`
	AnthropicAPIKey string  `name:"anthropic-api-key" help:"Anthropic API key" env:"ANTHROPIC_API_KEY"`
	ProfilePath     string  `name:"profile" type:"path" help:"Candidate profile YAML (embedded sample if empty)" env:"COVERLETTER_PROFILE"`
	Browser         bool    `help:"Render pages with headless Chrome instead of plain HTTP"`
	CrawlRate       float64 `help:"Company sub-page requests per second per host (0 disables limiting)" default:"4"`
	Sessions        int     `help:"Generated sessions kept for download" default:"10"`

	Serve          ServeCmd          `cmd:"" help:"Run the web API"`
	ScrapeJob      ScrapeJobCmd      `cmd:"" help:"Scrape a job posting"`
	ScrapeCompany  ScrapeCompanyCmd  `cmd:"" help:"Crawl a company website and print its summary"`
	Generate       GenerateCmd       `cmd:"" help:"Generate a cover letter and resume bullets"`
	Profile        ProfileCmd        `cmd:"" help:"Print the candidate profile"`
	AnalyzeCompany AnalyzeCompanyCmd `cmd:"" help:"Summarize a company website for an application"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host      string `help:"Interface to listen on"`
	Port      int    `help:"Port to listen on" default:"3000" env:"PORT"`
	StaticDir string `type:"path" help:"Directory of static frontend assets"`
}

// ScrapeJobCmd is the "scrape-job" subcommand.
type ScrapeJobCmd struct {
	URL  string `arg:"" help:"Job posting URL"`
	JSON bool   `help:"Print the result as JSON"`
}

// ScrapeCompanyCmd is the "scrape-company" subcommand.
type ScrapeCompanyCmd struct {
	URL  string `arg:"" help:"Company website URL"`
	JSON bool   `help:"Print the result as JSON"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	JobFile    string `short:"j" type:"path" help:"File containing the job description (- for stdin)" xor:"job" required:""`
	JobURL     string `short:"u" help:"Job posting URL to scrape" xor:"job" required:""`
	CompanyURL string `short:"c" help:"Company website to crawl for context"`
	Role       string `short:"r" help:"Role title"`
	Company    string `help:"Company name"`
	Out        string `short:"o" type:"path" help:"Directory to write .docx files to"`
	DryRun     bool   `help:"Print prompt token counts without calling the model"`
}

// ProfileCmd is the "profile" subcommand.
type ProfileCmd struct {
	JSON bool `help:"Print the profile as JSON"`
}

// AnalyzeCompanyCmd is the "analyze-company" subcommand.
type AnalyzeCompanyCmd struct {
	URL  string `arg:"" help:"Company website URL"`
	Name string `help:"Company name (taken from the site if empty)"`
}

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/htmltomarkdown"
	"github.com/fwojciec/readable/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// NewExtractor builds the extraction engine for the given options.
	NewExtractor func(opts readable.Options) readable.Extractor

	// Baselines are the reference extractors run by compare.
	Baselines []Baseline

	Converter *htmltomarkdown.Converter
	Sanitizer readable.Sanitizer
	Documents readable.DocumentService

	// Hash computes stored content hashes. Set together with Documents.
	Hash func(content string) string
}

// Baseline is a named reference extractor.
type Baseline struct {
	Name      string
	Extractor readable.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract the article from an HTML file"`
	Batch   BatchCmd   `cmd:"" help:"Extract articles from many HTML files"`
	Compare CompareCmd `cmd:"" help:"Compare extraction against baseline extractors"`
	List    ListCmd    `cmd:"" help:"List stored documents"`
	Show    ShowCmd    `cmd:"" help:"Print a stored document"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored document"`
}

// debug reports whether the parsed command asked for debug logging.
func (c *CLI) debug(cmd string) bool {
	switch cmd {
	case "extract":
		return c.Extract.Debug
	case "batch":
		return c.Batch.Debug
	}
	return false
}

// OptionFlags are the extraction options shared by extract and batch.
// Flags override values read from the config file.
type OptionFlags struct {
	Config          string `help:"YAML file with extraction options"`
	Debug           bool   `help:"Log extraction diagnostics to stderr"`
	CharThreshold   *int   `help:"Minimum article length in characters"`
	NbTopCandidates *int   `help:"Number of top candidates considered"`
	KeepClasses     bool   `help:"Keep class attributes in the output"`
	DisableJSONLD   bool   `name:"disable-json-ld" help:"Ignore JSON-LD metadata"`
}

// Options returns the extraction options selected by the flags.
func (f *OptionFlags) Options() (readable.Options, error) {
	opts := readable.DefaultOptions()
	if f.Config != "" {
		var err error
		if opts, err = yaml.LoadOptions(f.Config); err != nil {
			return readable.Options{}, err
		}
	}

	if f.Debug {
		opts.Debug = true
	}
	if f.CharThreshold != nil {
		opts.CharThreshold = *f.CharThreshold
	}
	if f.NbTopCandidates != nil {
		opts.NbTopCandidates = *f.NbTopCandidates
	}
	if f.KeepClasses {
		opts.KeepClasses = true
	}
	if f.DisableJSONLD {
		opts.DisableJSONLD = true
	}

	if err := opts.Validate(); err != nil {
		return readable.Options{}, err
	}
	return opts, nil
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string `arg:"" optional:"" default:"-" help:"HTML file to read, or - for stdin"`
	URL      string `short:"u" help:"Page URL used to resolve relative links"`
	Format   string `short:"f" enum:"json,html,text,markdown" default:"json" help:"Output format (json, html, text, markdown)"`
	Pretty   bool   `help:"Indent HTML output"`
	Sanitize bool   `help:"Remove unsafe markup from the content"`
	Outline  bool   `help:"Print the article outline instead of the article"`
	Out      string `help:"Also write the article as markdown under this directory"`

	OptionFlags `embed:""`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Files       []string `arg:"" help:"HTML files to extract"`
	URLPrefix   string   `help:"URL prefix joined with each file path to form its page URL"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	Out         string   `help:"Directory to write markdown files into"`
	Store       bool     `help:"Store articles in the database"`

	OptionFlags `embed:""`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	File string `arg:"" help:"HTML file to read, or - for stdin"`
	URL  string `short:"u" help:"Page URL used to resolve relative links"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Site  string `help:"Only list documents from this site name"`
	Limit int    `short:"n" default:"50" help:"Maximum number of documents"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Document ID"`
	Format string `short:"f" enum:"markdown,html,text" default:"markdown" help:"Output format (markdown, html, text)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Document ID"`
}

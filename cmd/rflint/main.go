package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	rflint "github.com/guykisel/robotframework-lint"
	"github.com/guykisel/robotframework-lint/internal/config"
	"github.com/guykisel/robotframework-lint/internal/engine"
	"github.com/guykisel/robotframework-lint/internal/lint"
	"github.com/guykisel/robotframework-lint/internal/log"
	"github.com/guykisel/robotframework-lint/internal/output"
	"github.com/guykisel/robotframework-lint/internal/policy"
	"github.com/guykisel/robotframework-lint/internal/rule"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: rflint <command> [flags] [files...]

Commands:
  check     Lint Robot Framework suite files
  rules     List the available rules
  help      Show help for rules and topics
  init      Generate a default .rflint.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'rflint <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Dispatch to subcommand.
	switch first {
	case "check":
		return runCheck(os.Args[2:])
	case "rules":
		return runRules(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "rflint: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("rflint %s\n", version)
}

// checkOptions holds the parsed flags of the check subcommand.
type checkOptions struct {
	configPath string
	format     string
	noColor    bool
	noFilename bool
	quiet      bool
	verbose    bool

	ignoreRules  []string
	warningRules []string
	errorRules   []string
	configures   []string
}

// runCheck implements the "check" subcommand: lint files.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var opts checkOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVar(&opts.noFilename, "no-filename", false, "Omit the filename prefix from text output")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the summary line")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	fs.StringArrayVar(&opts.ignoreRules, "ignore", nil, "Set the named rule (or 'all') to ignore; repeatable")
	fs.StringArrayVar(&opts.warningRules, "warning", nil, "Set the named rule (or 'all') to warning; repeatable")
	fs.StringArrayVar(&opts.errorRules, "error", nil, "Set the named rule (or 'all') to error; repeatable")
	fs.StringArrayVar(&opts.configures, "configure", nil, "Configure a rule: RuleName:value or RuleName:param=value; repeatable")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rflint check [flags] [files...]\n\n"+
			"Lint Robot Framework suite files.\n\n"+
			"Files can be paths, directories (walked recursively for suite files), or\n"+
			"glob patterns. With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := fs.Args()

	// No file args: check if stdin is a pipe.
	if len(files) == 0 {
		if !isStdinPipe() {
			return 0
		}
		return checkStdin(opts)
	}

	return checkFiles(files, opts)
}

// checkFiles lints the given file paths and returns the appropriate
// exit code.
func checkFiles(fileArgs []string, opts checkOptions) int {
	// Configuration problems must surface before any file is read.
	runner, err := buildRunner(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rflint: %v\n", err)
		return 2
	}

	files, err := lint.ResolveFiles(fileArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rflint: %v\n", err)
		return 2
	}

	if len(files) == 0 {
		return 0
	}

	result := runner.Run(files)
	return report(result, opts)
}

// checkStdin reads suite source from stdin, lints it, and returns the
// appropriate exit code.
func checkStdin(opts checkOptions) int {
	runner, err := buildRunner(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rflint: %v\n", err)
		return 2
	}

	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rflint: reading stdin: %v\n", err)
		return 2
	}

	result := runner.RunSource("<stdin>", source)
	return report(result, opts)
}

// buildRunner resolves configuration, severity policy and the
// configured rule set for one run. Any error here is a startup
// failure and the caller exits 2 with zero files scanned.
func buildRunner(opts checkOptions) (*engine.Runner, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	reg := rule.Default()

	// Severity layers: config file first, then --ignore, --warning
	// and --error. A directive naming a specific rule beats an "all"
	// wildcard regardless of layer.
	directives := cfg.SeverityDirectives()
	for _, name := range opts.ignoreRules {
		directives = append(directives, policy.Directive{Rule: name, Severity: lint.Ignore})
	}
	for _, name := range opts.warningRules {
		directives = append(directives, policy.Directive{Rule: name, Severity: lint.Warning})
	}
	for _, name := range opts.errorRules {
		directives = append(directives, policy.Directive{Rule: name, Severity: lint.Error})
	}

	pol, err := policy.NewSeverityPolicy(reg, directives)
	if err != nil {
		return nil, err
	}

	var configures []policy.ConfigureDirective
	for _, raw := range opts.configures {
		d, err := policy.ParseConfigure(raw)
		if err != nil {
			return nil, err
		}
		configures = append(configures, d)
	}

	rules, err := policy.ConfigureRules(reg, cfg.Settings(), configures)
	if err != nil {
		return nil, err
	}

	return &engine.Runner{
		Rules:  rules,
		Policy: pol,
		Ignore: cfg.Ignore,
		Log:    log.New(os.Stderr, opts.verbose),
	}, nil
}

// report prints a run's violations and summary and returns the exit
// code: 0 when no error-level violations were found, 1 otherwise.
// Warnings never affect the exit code. Per-file and per-rule failures
// go to stderr without changing the contract.
func report(result *engine.Result, opts checkOptions) int {
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "rflint: %v\n", e)
	}

	if len(result.Violations) > 0 {
		var formatter output.Formatter
		switch opts.format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			formatter = &output.TextFormatter{Color: !opts.noColor, NoFilename: opts.noFilename}
		}

		if err := formatter.Format(os.Stdout, result.Violations); err != nil {
			fmt.Fprintf(os.Stderr, "rflint: error writing output: %v\n", err)
			return 2
		}
	}

	if !opts.quiet && opts.format != "json" {
		_ = output.Summary(os.Stdout, result.ErrorCount(), result.WarningCount())
	}

	return result.ExitCode()
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return &config.Config{}, nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return &config.Config{}, nil
	}

	return config.Load(discovered)
}

// runRules implements the "rules" subcommand: list the catalog.
func runRules(args []string) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rflint rules\n\nList the available rules with level, default severity and description.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rules, err := rflint.ListRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rflint: %v\n", err)
		return 2
	}

	for _, r := range rules {
		fmt.Printf("%-26s %-9s %-8s %s\n", r.Name, r.Level, r.Severity, r.Description)
	}
	return 0
}

const helpUsageText = `Usage: rflint help <topic>

Topics:
  rule <name>   Show rule documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "rule":
		if len(args) < 2 {
			return runRules(nil)
		}
		content, err := rflint.LookupRule(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "rflint: %v\n", err)
			return 2
		}
		fmt.Print(content)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "rflint: help: unknown topic %q\n", args[0])
		return 2
	}
}

// runInit implements the "init" subcommand: generate .rflint.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rflint init\n\nGenerate a default .rflint.yml config file in the current directory.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "rflint: init takes no arguments\n")
		return 2
	}

	const configFile = ".rflint.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "rflint: %s already exists\n", configFile)
		return 2
	}

	cfg := config.DumpDefaults(rule.Default())

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rflint: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "rflint: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "rflint: created %s\n", configFile)
	return 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

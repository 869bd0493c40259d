package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsonpp/internal/config"
	"github.com/mcncl/jsonpp/internal/errors"
	"github.com/mcncl/jsonpp/internal/runner"
	"github.com/mcncl/jsonpp/json"
)

// CLI defines the command-line interface
var CLI struct {
	Paths       []string `arg:"" optional:"" help:"JSON files to format. With -w they are rewritten in place." type:"path"`
	Input       string   `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Write       bool     `help:"Rewrite the listed files in place." short:"w"`
	Compact     bool     `help:"Emit compact JSON on a single line." short:"c"`
	Indent      int      `help:"Spaces per indentation level." default:"-1"`
	KeyCase     string   `help:"Rewrite object keys on output: none, snake, camel or pascal."`
	Jobs        int      `help:"Number of files formatted concurrently in batch mode."`
	Config      string   `help:"Path to a jsonpp config file." type:"path"`
	Debug       bool     `help:"Enable debug logging." short:"d"`
	Version     bool     `help:"Show version information." short:"v"`
	Interactive bool     `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("jsonpp"),
		kong.Description("A tool to validate and pretty-print JSON documents"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonpp version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err == nil {
		err = run(&Context{Debug: CLI.Debug, Config: cfg})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonpp --help\n")

		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file values (explicit
// --config path or the nearest .jsonpp.yaml) overridden by flags.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to load config from '%s'", path), err)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if CLI.Indent >= 0 {
		cfg.Output.Indent = CLI.Indent
	}
	if CLI.Compact {
		cfg.Output.Compact = true
	}
	if CLI.KeyCase != "" {
		cfg.Output.KeyCase = CLI.KeyCase
	}
	if CLI.Jobs > 0 {
		cfg.Batch.Jobs = CLI.Jobs
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError(err.Error(), err)
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	if len(CLI.Paths) > 0 {
		return runBatch(ctx)
	}
	if CLI.Write {
		return errors.NewInputError("no files to rewrite", errors.ErrWriteNeedsFiles)
	}

	// 1. Read JSON input
	text, err := readInput()
	if err != nil {
		return err
	}

	// 2. Parse it into a document tree
	obj, err := json.Parse(text)
	if err != nil {
		return err
	}

	// 3. Re-render and output the result
	return writeOutput(render(obj, ctx.Config))
}

// runBatch formats every listed file on a worker pool. With -w each file is
// rewritten in place; otherwise the formatted documents are printed to
// stdout in argument order.
func runBatch(ctx *Context) error {
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "formatting %d files on %d workers\n", len(CLI.Paths), ctx.Config.Batch.Jobs)
	}

	outputs := make([]string, len(CLI.Paths))
	results, err := runner.Run(CLI.Paths, ctx.Config.Batch.Jobs, func(i int, path string) error {
		obj, err := json.Load(path)
		if err != nil {
			return err
		}
		text := render(obj, ctx.Config)
		if CLI.Write {
			if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
				return errors.NewOutputError(fmt.Sprintf("failed to write '%s'", path), err)
			}
			return nil
		}
		outputs[i] = text
		return nil
	})
	if err != nil {
		return errors.NewInputError("failed to start worker pool", err)
	}

	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %s\n", res.Path, errors.UserFriendlyError(res.Err))
			continue
		}
		if !CLI.Write {
			fmt.Println(outputs[i])
		}
	}
	if failed > 0 {
		return errors.NewParseError(fmt.Sprintf("%d of %d files failed", failed, len(results)), nil)
	}
	return nil
}

// render serializes obj according to the output configuration.
func render(obj *json.Object, cfg *config.Config) string {
	if cfg.Output.Compact {
		w := json.NewWriter()
		w.KeyFunc = cfg.KeyFunc()
		w.WriteValue(obj)
		return w.String()
	}
	w := json.NewIndentWriter(strings.Repeat(" ", cfg.Output.Indent))
	w.KeyFunc = cfg.KeyFunc()
	w.WriteValue(obj)
	return w.String()
}

// readInput reads JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", CLI.Input), err)
		}
		return string(data), nil
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(data), nil
}

// writeOutput writes text to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		// Write to file
		if err := os.WriteFile(CLI.Output, []byte(text+"\n"), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Formatted JSON written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(text)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "jsonpp Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return jsonData, nil
}

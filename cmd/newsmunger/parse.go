package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/revelaction/newsmunger/config"
	"github.com/revelaction/newsmunger/render"
)

// Option structs for subcommands that have flags
type MainOptions struct {
	ConfigPath string
}

type CorpseOptions struct {
	DocPath string
	Label   string
	Count   int
	Doc     *int // nil = not set
	Sink    string
	JSON    bool
	DryRun  bool
	NoColor bool
}

type MungeOptions struct {
	DocPath  string
	Label    string
	Lemma    string
	Focus    string
	Doc      *int // nil = not set
	Sent     *int // nil = not set
	Count    int
	Format   string
	JSON     bool
	NoColor  bool
	NoPrefix bool
}

type DocOptions struct {
	Start   int
	Count   int
	DocPath string
}

type SentenceOptions struct {
	DocPath string
}

type StatOptions struct {
	DocPath string
	Label   string
	Top     int
}

type QueryOptions struct {
	DocPath  string
	Label    string
	NoColor  bool
	NoPrefix bool
	Format   string
}

type CorpsesOptions struct {
	From string
	JSON bool
}

type ImportDocOptions struct {
	From string
	To   string
}

type ExportDocOptions struct {
	From string
	To   string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// optionalInt implements flag.Value for optional integer flags
type optionalInt struct {
	value **int
}

func (o *optionalInt) String() string {
	if o.value == nil || *o.value == nil {
		return ""
	}
	return strconv.Itoa(**o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*o.value = &v
	return nil
}

// parseFlags parses args, printing the usage to ui.Out on -h and to ui.Err
// on a parse error.
func parseFlags(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}

	return nil
}

func usageError(fs *flag.FlagSet, ui UI, msg string) error {
	fs.SetOutput(ui.Err)
	fs.Usage()
	return errors.New(msg)
}

func docPathFlag(fs *flag.FlagSet, p *string, cfg config.Config) {
	fs.StringVar(p, "doc-path", cfg.DocPath, "Path to docs directory or SQLite file")
	fs.StringVar(p, "d", cfg.DocPath, "alias for -doc-path")
}

func parseMainArgs(args []string, ui UI) (MainOptions, string, []string, error) {
	fs := flag.NewFlagSet("newsmunger", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	var opts MainOptions
	fs.StringVar(&opts.ConfigPath, "config", os.Getenv("NEWSMUNGER_CONFIG"), "Path to the YAML config file")
	fs.StringVar(&opts.ConfigPath, "c", os.Getenv("NEWSMUNGER_CONFIG"), "alias for -config")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, "", nil, err
	}

	if fs.NArg() == 0 {
		return opts, "", nil, usageError(fs, ui, "no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return opts, cmd, cmdArgs, nil
}

func parseCorpseArgs(args []string, cfg config.Config, ui UI) (CorpseOptions, error) {
	fs := flag.NewFlagSet("corpse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CorpseOptions
	docPathFlag(fs, &opts.DocPath, cfg)
	fs.StringVar(&opts.Label, "label", "", "Use only docs with a label containing this string")
	fs.StringVar(&opts.Label, "l", "", "alias for -label")
	fs.IntVar(&opts.Count, "n", 1, "Number of corpses to build")
	fs.Var(&optionalInt{value: &opts.Doc}, "doc", "Id of the base doc (random if not set)")

	opts.Sink = cfg.Sink.Kind
	fs.Var(&enumFlag{allowed: []string{config.SinkFile, config.SinkSqlite, config.SinkS3}, value: &opts.Sink}, "sink", "Where to save the corpses (file, sqlite, s3)")

	fs.BoolVar(&opts.JSON, "json", false, "Print the corpses as JSON")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Do not save the corpses")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s corpse [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Build exquisite corpses: articles with every sentence munged.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, usageError(fs, ui, "corpse command accepts no arguments")
	}

	if opts.Count < 1 {
		return opts, errors.New("-n must be at least 1")
	}

	if opts.DocPath == "" {
		return opts, errors.New("Doc path must be specified via -d, NEWSMUNGER_DOC_PATH or the config file")
	}

	return opts, nil
}

func parseMungeArgs(args []string, cfg config.Config, ui UI) (MungeOptions, error) {
	fs := flag.NewFlagSet("munge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts MungeOptions
	docPathFlag(fs, &opts.DocPath, cfg)
	fs.StringVar(&opts.Label, "label", "", "Use only docs with a label containing this string")
	fs.StringVar(&opts.Label, "l", "", "alias for -label")
	fs.StringVar(&opts.Focus, "focus", "", "Choose sentences from docs where this text appears")
	fs.Var(&optionalInt{value: &opts.Doc}, "doc", "Choose sentences from this doc")
	fs.Var(&optionalInt{value: &opts.Sent}, "sent", "Munge this sentence of -doc")
	fs.IntVar(&opts.Count, "n", 1, "Number of sentences to munge")
	fs.BoolVar(&opts.JSON, "json", false, "Print the result as JSON")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Do not show the doc and sentence prefix")

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Show the sentences (text) or also the tokens of the munged sentence (tokens)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s munge [options] [lemma]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Munge sentences, optionally only those with the root lemma.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() > 1 {
		return opts, usageError(fs, ui, "munge command accepts at most one argument")
	}

	opts.Lemma = strings.ToLower(fs.Arg(0))

	if opts.Sent != nil {
		if opts.Doc == nil {
			return opts, errors.New("-sent flag given but no -doc")
		}
	}

	if opts.Count < 1 {
		return opts, errors.New("-n must be at least 1")
	}

	if opts.DocPath == "" {
		return opts, errors.New("Doc path must be specified via -d, NEWSMUNGER_DOC_PATH or the config file")
	}

	return opts, nil
}

func parseDocArgs(args []string, cfg config.Config, ui UI) (DocOptions, *int, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DocOptions
	fs.IntVar(&opts.Start, "start", 0, "Index of the first sentence to show")
	fs.IntVar(&opts.Count, "n", -1, "Number of sentences to show (-1 for all)")
	docPathFlag(fs, &opts.DocPath, cfg)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] [docId]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the docs or show the sentences of a doc.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if fs.NArg() > 1 {
		return opts, nil, usageError(fs, ui, "doc command accepts at most one argument")
	}

	if opts.DocPath == "" {
		return opts, nil, errors.New("Doc path must be specified via -d, NEWSMUNGER_DOC_PATH or the config file")
	}

	if fs.NArg() == 0 {
		return opts, nil, nil
	}

	docId, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return opts, nil, fmt.Errorf("invalid docId: %v", err)
	}

	return opts, &docId, nil
}

func parseSentenceArgs(args []string, cfg config.Config, ui UI) (SentenceOptions, int, int, error) {
	fs := flag.NewFlagSet("sentence", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SentenceOptions
	docPathFlag(fs, &opts.DocPath, cfg)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s sentence [options] <docId> <sentenceId>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show a sentence and its tokens.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, 0, 0, err
	}

	if fs.NArg() != 2 {
		return opts, 0, 0, usageError(fs, ui, "sentence command needs exactly two arguments: <docId> <sentenceId>")
	}

	docId, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return opts, 0, 0, fmt.Errorf("invalid docId: %v", err)
	}

	sentId, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return opts, 0, 0, fmt.Errorf("invalid sentenceId: %v", err)
	}

	if opts.DocPath == "" {
		return opts, 0, 0, errors.New("Doc path must be specified via -d, NEWSMUNGER_DOC_PATH or the config file")
	}

	return opts, docId, sentId, nil
}

func parseStatArgs(args []string, cfg config.Config, ui UI) (StatOptions, *int, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	docPathFlag(fs, &opts.DocPath, cfg)
	fs.StringVar(&opts.Label, "label", "", "Use only docs with a label containing this string")
	fs.StringVar(&opts.Label, "l", "", "alias for -label")
	fs.IntVar(&opts.Top, "top", 10, "Number of most frequent root lemmas to show")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] [docId]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show statistics of the library or of a doc.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if fs.NArg() > 1 {
		return opts, nil, usageError(fs, ui, "stat command accepts at most one argument")
	}

	if opts.DocPath == "" {
		return opts, nil, errors.New("Doc path must be specified via -d, NEWSMUNGER_DOC_PATH or the config file")
	}

	if fs.NArg() == 0 {
		return opts, nil, nil
	}

	docId, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return opts, nil, fmt.Errorf("invalid docId: %v", err)
	}

	return opts, &docId, nil
}

func parseQueryArgs(args []string, cfg config.Config, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	docPathFlag(fs, &opts.DocPath, cfg)
	fs.StringVar(&opts.Label, "label", "", "Use only docs with a label containing this string")
	fs.StringVar(&opts.Label, "l", "", "alias for -label")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Do not show the doc and sentence prefix")

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Show the sentences (text) or also the tokens of the munged sentence (tokens)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive munging mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.DocPath == "" {
		return opts, errors.New("Doc path must be specified via -d, NEWSMUNGER_DOC_PATH or the config file")
	}

	return opts, nil
}

func parseCorpsesArgs(args []string, cfg config.Config, ui UI) (CorpsesOptions, error) {
	fs := flag.NewFlagSet("corpses", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CorpsesOptions
	fs.StringVar(&opts.From, "from", cfg.Sink.Path, "Source SQLite file")
	fs.BoolVar(&opts.JSON, "json", false, "Print the corpses as JSON")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s corpses [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show the corpses saved in SQLite.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" {
		return opts, usageError(fs, ui, "-from flag is required")
	}

	return opts, nil
}

func parseImportDocArgs(args []string, ui UI) (ImportDocOptions, error) {
	fs := flag.NewFlagSet("import-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportDocOptions
	fs.StringVar(&opts.From, "from", "", "Source directory (filesystem)")
	fs.StringVar(&opts.To, "to", "", "Destination SQLite file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import-doc -from <dir> -to <db>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Import docs from filesystem to SQLite.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, usageError(fs, ui, "both -from and -to flags are required")
	}

	return opts, nil
}

func parseExportDocArgs(args []string, ui UI) (ExportDocOptions, error) {
	fs := flag.NewFlagSet("export-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportDocOptions
	fs.StringVar(&opts.From, "from", "", "Source SQLite file")
	fs.StringVar(&opts.To, "to", "", "Destination directory (filesystem)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export-doc -from <db> -to <dir>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Export docs from SQLite to filesystem.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, usageError(fs, ui, "both -from and -to flags are required")
	}

	return opts, nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s [-config file] command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Exquisite corpses from parsed news articles\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  corpse        Build and save exquisite corpses.\n")
		_, _ = fmt.Fprintf(output, "  munge         Munge sentences.\n")
		_, _ = fmt.Fprintf(output, "  query         Enter interactive munging mode.\n")
		_, _ = fmt.Fprintf(output, "  doc           List docs or show the sentences of a doc.\n")
		_, _ = fmt.Fprintf(output, "  sentence      Show a specific sentence details.\n")
		_, _ = fmt.Fprintf(output, "  stat          Show statistics for the library or a doc.\n")
		_, _ = fmt.Fprintf(output, "  corpses       Show the corpses saved in SQLite.\n")
		_, _ = fmt.Fprintf(output, "  import-doc    Import docs from filesystem to SQLite.\n")
		_, _ = fmt.Fprintf(output, "  export-doc    Export docs from SQLite to filesystem.\n")
		_, _ = fmt.Fprintf(output, "  version       Show the version.\n")
		_, _ = fmt.Fprintf(output, "  help          Show help for a command.\n")
	}
}

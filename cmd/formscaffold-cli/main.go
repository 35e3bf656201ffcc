package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-formscaffold"
	"github.com/goliatone/go-formscaffold/pkg/config"
	pkgopenapi "github.com/goliatone/go-formscaffold/pkg/openapi"
	"github.com/goliatone/go-formscaffold/pkg/record"
	"github.com/goliatone/go-formscaffold/pkg/scaffold"
)

type options struct {
	configPath   string
	fixturesPath string
	openapiPath  string
	objectType   string
	id           string
	tabbed       bool
	relations    bool
	restrict     string
	format       string
	interactive  bool
	strict       bool
	verbose      bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, surveyPrompter{}); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "formscaffold: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, prompt prompter) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	catalog, err := loadCatalog(ctx, opts)
	if err != nil {
		return err
	}

	if opts.objectType == "" && opts.interactive {
		opts.objectType, err = prompt.Choose(ctx, "Object type", catalog.Types())
		if err != nil {
			return err
		}
	}
	if opts.objectType == "" {
		return errors.New("-type is required")
	}
	if opts.id == "" && opts.interactive {
		if ids := recordIDs(catalog, opts.objectType); len(ids) > 0 {
			choice, err := prompt.Choose(ctx, "Record", append([]string{newRecordChoice}, ids...))
			if err != nil {
				return err
			}
			if choice != newRecordChoice {
				opts.id = choice
			}
		}
	}

	rec, err := resolveRecord(catalog, opts.objectType, opts.id)
	if err != nil {
		return err
	}

	store, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	scaffolder := formscaffold.NewScaffolder(
		formscaffold.WithConfigSource(store),
		formscaffold.WithLogger(logger),
		formscaffold.WithStrictDescriptors(opts.strict),
	)
	list, err := scaffolder.Scaffold(ctx, rec, scaffold.Request{
		Tabbed:           opts.tabbed,
		IncludeRelations: opts.relations,
		RestrictFields:   splitList(opts.restrict),
	})
	if err != nil {
		return err
	}
	return write(stdout, opts.format, list)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("formscaffold", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "field configuration file or directory")
	fs.StringVar(&opts.fixturesPath, "fixtures", "", "record fixtures file (models and records)")
	fs.StringVar(&opts.openapiPath, "openapi", "", "OpenAPI document path or URL providing models")
	fs.StringVar(&opts.objectType, "type", "", "object type to scaffold")
	fs.StringVar(&opts.id, "id", "", "record id; empty scaffolds an unsaved record")
	fs.BoolVar(&opts.tabbed, "tabbed", false, "place fields in a Root tab set")
	fs.BoolVar(&opts.relations, "relations", false, "include relation grids in the default layout")
	fs.StringVar(&opts.restrict, "restrict", "", "comma separated field names for the default layout")
	fs.StringVar(&opts.format, "format", formatTree, "output format: tree, json or dump")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for missing type and record")
	fs.BoolVar(&opts.strict, "strict", false, "fail on unrecognised field descriptors")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\nScaffold a field list from a declarative configuration.\n\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.fixturesPath == "" && opts.openapiPath == "" {
		return options{}, errors.New("one of -fixtures or -openapi is required")
	}
	switch opts.format {
	case formatTree, formatJSON, formatDump:
	default:
		return options{}, fmt.Errorf("unknown format %q", opts.format)
	}
	return opts, nil
}

func loadCatalog(ctx context.Context, opts options) (*record.Catalog, error) {
	if opts.fixturesPath != "" {
		data, err := os.ReadFile(opts.fixturesPath)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		return record.LoadFixtures(data)
	}

	src, err := pkgopenapi.ParseSource(opts.openapiPath)
	if err != nil {
		return nil, err
	}
	loader := formscaffold.NewModelLoader(pkgopenapi.WithHTTPFallback(30 * time.Second))
	return formscaffold.LoadCatalog(ctx, src, loader, nil)
}

func loadConfig(path string) (*config.Store, error) {
	if path == "" {
		return config.NewStore(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return formscaffold.NewConfigStore(os.DirFS(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	store := config.NewStore()
	if err := store.Load(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

func resolveRecord(catalog *record.Catalog, objectType, id string) (*record.MemoryRecord, error) {
	if id == "" {
		return catalog.New(objectType, "")
	}
	return catalog.Record(objectType, id)
}

const newRecordChoice = "(new record)"

func recordIDs(catalog *record.Catalog, objectType string) []string {
	records := catalog.Records(objectType)
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	return ids
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

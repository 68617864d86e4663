package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/filecraft/contentprovider/pkg/config"
	"github.com/filecraft/contentprovider/pkg/content"
	"github.com/filecraft/contentprovider/pkg/contract"
	"github.com/filecraft/contentprovider/pkg/cursor"
	"github.com/filecraft/contentprovider/pkg/provider"
	"github.com/filecraft/contentprovider/pkg/walker"
)

type options struct {
	Config      string   `short:"f" long:"config" env:"FILECRAFT_CONFIG" default:"filecraft.yml" description:"config file"`
	Authorities []string `short:"a" long:"authority" env:"FILECRAFT_AUTHORITY" env-delim:"," description:"authority to serve"`
	Package     string   `short:"p" long:"package" env:"FILECRAFT_PACKAGE" description:"application package of resource paths"`
	Conn        string   `short:"c" long:"conn" env:"FILECRAFT_CONN" description:"connection string of sql content store"`

	QueryCmd struct {
		Columns []string `long:"column" description:"column to return, all columns if not set"`
		Args    []string `long:"arg" description:"selection argument, action id of quiz tables"`

		PositionalArgs struct {
			URI string `positional-arg-name:"uri" description:"content uri to query"`
		} `positional-args:"yes" required:"yes"`
	} `command:"query" description:"query content uri and print rows"`

	TypeCmd struct {
		PositionalArgs struct {
			URI string `positional-arg-name:"uri" description:"content uri"`
		} `positional-args:"yes" required:"yes"`
	} `command:"type" description:"print mime type of content uri"`

	DumpCmd struct {
		Concurrent int    `short:"n" long:"concurrent" default:"4" description:"concurrent readers"`
		Root       string `long:"root" description:"uri to start from, list of the first authority if not set"`
		ActionID   string `long:"action-id" description:"action id of the root uri"`
	} `command:"dump" description:"read all tables reachable from the root and print them as yaml"`

	ContentCmd struct {
		ImportCmd struct {
			PositionalArgs struct {
				File string `positional-arg-name:"file" description:"yaml or toml file with strings and resources"`
			} `positional-args:"yes" required:"yes"`
		} `command:"import" description:"import strings and resources to sql store"`

		SetCmd struct {
			Kind           string `long:"kind" choice:"string" choice:"resource" default:"string" description:"content kind"`
			PositionalArgs struct {
				Key   string `positional-arg-name:"key" description:"content key"`
				Value string `positional-arg-name:"value" description:"value to set"`
			} `positional-args:"yes" required:"yes"`
		} `command:"set" description:"set string or resource path"`

		GetCmd struct {
			Kind           string `long:"kind" choice:"string" choice:"resource" default:"string" description:"content kind"`
			PositionalArgs struct {
				Key string `positional-arg-name:"key" description:"content key"`
			} `positional-args:"yes" required:"yes"`
		} `command:"get" description:"get string or resource path"`

		DeleteCmd struct {
			Kind           string `long:"kind" choice:"string" choice:"resource" default:"string" description:"content kind"`
			PositionalArgs struct {
				Key string `positional-arg-name:"key" description:"content key"`
			} `positional-args:"yes" required:"yes"`
		} `command:"del" description:"delete string or resource path"`

		ListCmd struct {
			Kind           string `long:"kind" choice:"string" choice:"resource" default:"string" description:"content kind"`
			PositionalArgs struct {
				KeyPrefix string `positional-arg-name:"key-prefix" default:"*" description:"key prefix to list"`
			} `positional-args:"yes"`
		} `command:"list" description:"list content keys"`
	} `command:"content" description:"manage sql content store"`

	Verbose bool `short:"v" long:"verbose" description:"verbose mode"`
	Dbg     bool `long:"dbg" description:"debug mode"`
}

var revision = "latest"

func main() {
	fmt.Fprintf(os.Stderr, "filecraft %s\n", revision)

	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		os.Exit(1)
	}
	setupLog(opts.Dbg, opts.Verbose)
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) // no colors in piped output

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, p, opts, os.Stdout); err != nil {
		if opts.Dbg {
			log.Panicf("[ERROR] %v", err)
		}
		fmt.Fprintf(os.Stderr, "failed, %v\n", formatErrorString(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, p *flags.Parser, opts options, out io.Writer) error {
	conf, err := config.New(opts.Config, &config.Overrides{Authorities: opts.Authorities, Package: opts.Package, Conn: opts.Conn})
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if isActive(p, "content") {
		return runContent(p.Active.Active, opts, conf, out)
	}

	res, closeRes, err := makeResolver(conf)
	if err != nil {
		return fmt.Errorf("can't make content resolver: %w", err)
	}
	defer closeRes()
	prov := provider.New(res, conf.Authorities...)

	switch {
	case isActive(p, "query"):
		c, err := prov.Query(opts.QueryCmd.PositionalArgs.URI, opts.QueryCmd.Columns, opts.QueryCmd.Args)
		if err != nil {
			return err
		}
		return printCursor(out, c)

	case isActive(p, "type"):
		mime, err := prov.Type(opts.TypeCmd.PositionalArgs.URI)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, mime)
		return nil

	case isActive(p, "dump"):
		return dump(ctx, prov, opts, out)
	}
	return errors.New("no command given, use query, type, dump or content")
}

func isActive(p *flags.Parser, name string) bool {
	return p.Active != nil && p.Command.Find(name) == p.Active
}

// makeResolver returns defaults with config overrides, layered under sql store if connection is set
func makeResolver(conf *config.Config) (content.Resolver, func(), error) {
	defaults, err := content.Defaults(conf.Package, conf.Bundle())
	if err != nil {
		return nil, nil, err
	}
	if conf.Content.Conn == "" {
		return defaults, func() {}, nil
	}
	store, err := content.NewSQL(conf.Content.Conn)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := store.Close(); err != nil {
			log.Printf("[WARN] can't close content store: %v", err)
		}
	}
	return content.Chain{store, defaults}, closeFn, nil
}

func runContent(active *flags.Command, opts options, conf *config.Config, out io.Writer) error {
	if active == nil {
		return errors.New("no content command given, use import, set, get, del or list")
	}
	if conf.Content.Conn == "" {
		return errors.New("content store connection is not set, use --conn or content.conn in config")
	}
	store, err := content.NewSQL(conf.Content.Conn)
	if err != nil {
		return fmt.Errorf("can't open content store: %w", err)
	}
	defer store.Close() // nolint

	cmd := active.Name
	ccmd := opts.ContentCmd
	switch cmd {
	case "import":
		b, err := content.LoadBundle(ccmd.ImportCmd.PositionalArgs.File)
		if err != nil {
			return err
		}
		n, err := store.Import(b)
		if err != nil {
			return fmt.Errorf("can't import %s: %w", ccmd.ImportCmd.PositionalArgs.File, err)
		}
		log.Printf("[INFO] imported %d values from %s", n, ccmd.ImportCmd.PositionalArgs.File)
		fmt.Fprintf(out, "imported %d values\n", n)

	case "set":
		args := ccmd.SetCmd.PositionalArgs
		log.Printf("[INFO] set command, kind=%s, key=%s", ccmd.SetCmd.Kind, args.Key)
		if args.Value == "" {
			return fmt.Errorf("can't set empty value for key %q", args.Key)
		}
		if err := store.Set(content.Kind(ccmd.SetCmd.Kind), args.Key, args.Value); err != nil {
			return fmt.Errorf("can't set %s %q: %w", ccmd.SetCmd.Kind, args.Key, err)
		}

	case "get":
		key := ccmd.GetCmd.PositionalArgs.Key
		val, err := store.Get(content.Kind(ccmd.GetCmd.Kind), key)
		if err != nil {
			return fmt.Errorf("can't get %s %q: %w", ccmd.GetCmd.Kind, key, err)
		}
		fmt.Fprintln(out, val)

	case "del":
		key := ccmd.DeleteCmd.PositionalArgs.Key
		if err := store.Delete(content.Kind(ccmd.DeleteCmd.Kind), key); err != nil {
			return fmt.Errorf("can't delete %s %q: %w", ccmd.DeleteCmd.Kind, key, err)
		}
		log.Printf("[INFO] %s %q deleted", ccmd.DeleteCmd.Kind, key)

	case "list":
		keys, err := store.List(content.Kind(ccmd.ListCmd.Kind), ccmd.ListCmd.PositionalArgs.KeyPrefix)
		if err != nil {
			return fmt.Errorf("can't list %s keys: %w", ccmd.ListCmd.Kind, err)
		}
		for _, k := range keys {
			fmt.Fprintln(out, k)
		}

	default:
		return fmt.Errorf("unknown content command %q", cmd)
	}
	return nil
}

// printCursor writes all rows of the cursor as a tab aligned table with colored header.
// Header is colored after alignment, escape codes would count as cell width otherwise.
func printCursor(out io.Writer, c *cursor.Cursor) error {
	buf := bytes.Buffer{}
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(c.Columns(), "\t"))

	errs := new(multierror.Error)
	for pos := 0; pos < c.Count(); pos++ {
		vals, err := c.Values(pos)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			if v == nil {
				cells[i] = "<null>"
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		errs = multierror.Append(errs, err)
	}

	header, body, _ := strings.Cut(buf.String(), "\n")
	if _, err := fmt.Fprintf(out, "%s\n%s", color.New(color.FgCyan).Sprint(header), body); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

type dumpTable struct {
	URI      string   `yaml:"uri"`
	ActionID string   `yaml:"action_id,omitempty"`
	Table    string   `yaml:"table"`
	Columns  []string `yaml:"columns"`
	Rows     [][]any  `yaml:"rows"`
}

func dump(ctx context.Context, prov *provider.Provider, opts options, out io.Writer) error {
	root := walker.Target{URI: opts.DumpCmd.Root, ActionID: opts.DumpCmd.ActionID}
	if root.URI == "" {
		uri, err := prov.URI(contract.List)
		if err != nil {
			return err
		}
		root.URI = uri
	}

	w := walker.Walker{Concurrency: opts.DumpCmd.Concurrent, Provider: prov}
	resp, walkErr := w.Run(ctx, root)
	log.Printf("[INFO] dumped %d tables, %d rows", len(resp.Tables), resp.Rows)

	tables := make([]dumpTable, 0, len(resp.Tables))
	for _, t := range resp.Tables {
		tables = append(tables, dumpTable{URI: t.URI, ActionID: t.ActionID, Table: t.Table.String(),
			Columns: t.Columns, Rows: t.Rows})
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(tables); err != nil {
		return fmt.Errorf("can't encode dump: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("can't close dump encoder: %w", err)
	}
	return walkErr
}

func formatErrorString(input string) string {
	var res strings.Builder
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if i > 0 {
			res.WriteString("\n   ")
		}
		res.WriteString(strings.TrimSpace(line))
	}
	return res.String()
}

func setupLog(dbg, verbose bool) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)} // default to discard
	if verbose {
		logOpts = []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.Out(os.Stderr)}
	}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces,
			lgr.StackTraceOnError, lgr.Out(os.Stderr)}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

// Package main provides the CLI entrypoint for typekit-gen.
//
// typekit-gen writes the registration code of a package:
//   - Loads the package (go/packages + go/types) named by the config
//   - Resolves the configured structs and enums against it
//   - Generates an init function calling member.MustDefine and
//     enum.MustConfigure
//
// Usage:
//
//	typekit-gen --config typekit.yaml
//	typekit-gen -c typekit.hcl --dry-run
//
// A package usually runs it through go:generate:
//
//	//go:generate go tool typekit-gen -c typekit.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/davecgh/go-spew/spew"
	flag "github.com/spf13/pflag"

	"typekit/internal/analyze"
	"typekit/internal/config"
	"typekit/internal/gen"
	"typekit/logger"
)

// maxListDepth bounds --list recursion into nested structs.
const maxListDepth = 8

var errUsage = errors.New("usage")

type options struct {
	configPath string
	dir        string
	library    string
	dryRun     bool
	dump       bool
	list       bool
	quiet      bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("typekit-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: typekit-gen [flags]")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVarP(&opts.configPath, "config", "c", "typekit.yaml", "configuration file (.yaml, .yml or .hcl)")
	fs.StringVarP(&opts.dir, "dir", "d", "", "directory the package pattern is resolved in (default: current)")
	fs.StringVar(&opts.library, "lib", gen.DefaultGeneratorConfig().LibraryPath, "import path of the typekit module")
	fs.BoolVarP(&opts.dryRun, "dry-run", "n", false, "print the generated file instead of writing it")
	fs.BoolVar(&opts.dump, "dump", false, "dump the analyzed types of the configured package")
	fs.BoolVarP(&opts.list, "list", "l", false, "list the member paths of the configured structs, named by struct tags")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "disable logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.quiet {
		logger.SetOpen(false)
	}

	log := logger.Default()

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}

	// fail before loading packages; warnings are reported by the generator
	if err := config.Validate(cfg).Err(); err != nil {
		return err
	}

	log.Info("loading %s", cfg.Package)

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = opts.dir

	graph, err := analyzer.LoadPackages(cfg.Package)
	if err != nil {
		return err
	}

	pkg, err := singlePackage(graph, cfg.Package)
	if err != nil {
		return err
	}

	if opts.dump {
		dump(stdout, graph, pkg, cfg)
	}

	if opts.list {
		list(stdout, graph, pkg, cfg)
	}

	if opts.dump || opts.list {
		return nil
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		LibraryPath: opts.library,
		DebugDir:    pkg.Dir,
	})

	file, err := generator.Generate(cfg, graph, pkg.Path)
	if err != nil {
		return err
	}

	for _, w := range file.Warnings {
		log.Warn("%s", w)
	}

	if opts.dryRun {
		_, err := stdout.Write(file.Content)
		return err
	}

	path, err := gen.WriteFile(file, pkg.Dir)
	if err != nil {
		return err
	}

	log.Info("wrote %s", path)

	return nil
}

// singlePackage returns the one package a config pattern must match.
func singlePackage(graph *analyze.TypeGraph, pattern string) (*analyze.PackageInfo, error) {
	if len(graph.Packages) != 1 {
		return nil, fmt.Errorf("pattern %s matches %d packages, want 1", pattern, len(graph.Packages))
	}

	for _, pkg := range graph.Packages {
		return pkg, nil
	}

	return nil, fmt.Errorf("pattern %s matches no package", pattern)
}

func configuredTypes(graph *analyze.TypeGraph, pkg *analyze.PackageInfo, cfg *config.File) []*analyze.TypeInfo {
	var infos []*analyze.TypeInfo

	for _, s := range cfg.Structs {
		if info := graph.GetType(analyze.TypeID{PkgPath: pkg.Path, Name: s.Type}); info != nil {
			infos = append(infos, info)
		}
	}

	for _, e := range cfg.Enums {
		if info := graph.GetType(analyze.TypeID{PkgPath: pkg.Path, Name: e.Type}); info != nil {
			infos = append(infos, info)
		}
	}

	return infos
}

func dump(w io.Writer, graph *analyze.TypeGraph, pkg *analyze.PackageInfo, cfg *config.File) {
	printer := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true, MaxDepth: 3}

	for _, info := range configuredTypes(graph, pkg, cfg) {
		// GoType drags the whole go/types universe into the dump
		shallow := *info
		shallow.GoType = nil
		shallow.Fields = slices.Clone(info.Fields)

		for i := range shallow.Fields {
			shallow.Fields[i].Type = nil
		}

		printer.Fdump(w, shallow)
	}
}

func list(w io.Writer, graph *analyze.TypeGraph, pkg *analyze.PackageInfo, cfg *config.File) {
	configured := make(map[analyze.TypeID]bool)
	for _, s := range cfg.Structs {
		configured[analyze.TypeID{PkgPath: pkg.Path, Name: s.Type}] = true
	}

	include := func(info *analyze.TypeInfo) bool { return configured[info.ID] }

	for _, info := range configuredTypes(graph, pkg, cfg) {
		for _, path := range graph.MemberPaths(info, include, maxListDepth) {
			fmt.Fprintln(w, path)
		}
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, "typekit-gen:", err)
		os.Exit(1)
	}
}

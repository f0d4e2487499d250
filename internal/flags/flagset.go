package flags

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// FlagSetWithVisit wraps flag.FlagSet with one-letter aliases and a record
// of which flags the user actually set.
type FlagSetWithVisit struct {
	fs       *flag.FlagSet
	out      io.Writer
	visited  map[string]bool
	aliases  map[string]string // short name → long name
	usageMap map[string]string // long name → usage string
}

func NewFlagSetWithVisit(name string, out io.Writer) *FlagSetWithVisit {
	if out == nil {
		out = os.Stderr
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	fsv := &FlagSetWithVisit{
		fs:       fs,
		out:      out,
		visited:  make(map[string]bool),
		aliases:  make(map[string]string),
		usageMap: make(map[string]string),
	}
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: %s [flags] [file%s]\n", name, ".lin")
		fsv.printUsage()
	}
	return fsv
}

func (fsv *FlagSetWithVisit) register(name, short, usage string) {
	if short != "" {
		fsv.aliases[short] = name
	}
	fsv.usageMap[name] = usage
}

// BoolVar registers a bool flag with an optional short alias.
func (fsv *FlagSetWithVisit) BoolVar(p *bool, name, short string, value bool, usage string) {
	fsv.fs.BoolVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// StringVar registers a string flag with an optional short alias.
func (fsv *FlagSetWithVisit) StringVar(p *string, name, short, value, usage string) {
	fsv.fs.StringVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// IntVar registers an int flag with an optional short alias.
func (fsv *FlagSetWithVisit) IntVar(p *int, name, short string, value int, usage string) {
	fsv.fs.IntVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// Int64Var registers an int64 flag with an optional short alias.
func (fsv *FlagSetWithVisit) Int64Var(p *int64, name, short string, value int64, usage string) {
	fsv.fs.Int64Var(p, name, value, usage)
	fsv.register(name, short, usage)
}

// Parse expands short aliases and parses args.
func (fsv *FlagSetWithVisit) Parse(args []string) error {
	if err := fsv.fs.Parse(fsv.expandAliases(args)); err != nil {
		return err
	}
	fsv.fs.Visit(func(f *flag.Flag) {
		fsv.visited[f.Name] = true
	})
	return nil
}

// Args returns the positional arguments left after parsing.
func (fsv *FlagSetWithVisit) Args() []string {
	return fsv.fs.Args()
}

// expandAliases replaces short flags (-r, -r=value) with their long names.
// Everything after a "--" terminator is left alone.
func (fsv *FlagSetWithVisit) expandAliases(args []string) []string {
	expanded := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(expanded, args[i:]...)
		}
		if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
			expanded = append(expanded, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[1:], "=")
		full, ok := fsv.aliases[name]
		switch {
		case !ok:
			expanded = append(expanded, arg)
		case hasValue:
			expanded = append(expanded, "-"+full+"="+value)
		default:
			expanded = append(expanded, "-"+full)
		}
	}
	return expanded
}

// IsCustom reports whether a flag was set explicitly on the command line.
func (fsv *FlagSetWithVisit) IsCustom(name string) bool {
	return fsv.visited[name]
}

// HasCustom reports whether any flag was set to a non-default value.
func (fsv *FlagSetWithVisit) HasCustom() bool {
	hasCustom := false
	fsv.fs.Visit(func(f *flag.Flag) {
		if f.Value.String() != f.DefValue {
			hasCustom = true
		}
	})
	return hasCustom
}

func (fsv *FlagSetWithVisit) Usage() {
	fsv.fs.Usage()
}

// printUsage lists long names sorted, each with its short alias.
func (fsv *FlagSetWithVisit) printUsage() {
	shorts := make(map[string]string, len(fsv.aliases))
	for s, full := range fsv.aliases {
		shorts[full] = s
	}
	names := make([]string, 0, len(fsv.usageMap))
	nameLen := 0
	for name := range fsv.usageMap {
		names = append(names, name)
		nameLen = max(nameLen, len(name))
	}
	slices.Sort(names)
	for _, name := range names {
		usage := fsv.usageMap[name]
		if short, ok := shorts[name]; ok {
			fmt.Fprintf(fsv.out, "  -%s, -%-*s\t%s\n", short, nameLen, name, usage)
		} else {
			fmt.Fprintf(fsv.out, "      -%-*s\t%s\n", nameLen, name, usage)
		}
	}
}

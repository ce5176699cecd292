package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/rangeio"
)

const defaultWrap = 80

type options struct {
	delim     string
	width     int
	fill      string
	precision int
	flags     string
	config    string
	numbers   bool
	wrap      int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("rangeio", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.delim, "delim", "d", "", `Delimiter between items (Go escapes such as "\n" are expanded)`)
	flags.IntVarP(&opts.width, "width", "w", 0, "Field width applied to every item")
	flags.StringVar(&opts.fill, "fill", " ", "Fill character used to pad to the field width")
	flags.IntVarP(&opts.precision, "precision", "p", rangeio.DefaultPrecision, "Floating-point precision")
	flags.StringVarP(&opts.flags, "flags", "f", "", "Formatting flags, e.g. hex,showbase,left")
	flags.StringVarP(&opts.config, "config", "c", "", "YAML format profile; flags given on the command line override it")
	flags.BoolVarP(&opts.numbers, "numbers", "n", false, "Parse items as numbers so base and precision flags apply")
	flags.IntVar(&opts.wrap, "wrap", 0, "Wrap output at N columns (0 disables, -1 uses the terminal width, or 80 when stdout is not a terminal)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rangeio [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nWrites newline-separated items as a single range. If no input is provided, items are read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	format, err := resolveFormat(flags, opts)
	if err != nil {
		fmt.Fprintf(stderr, "format: %v\n", err)
		return 2
	}
	delim, err := unescape(opts.delim)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --delim %q: %v\n", opts.delim, err)
		return 2
	}

	items, err := readItems(flags.Args(), stdin, opts.numbers)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	wrap := resolveWrap(opts.wrap, stdout)
	var buf bytes.Buffer
	dst := stdout
	if wrap > 0 {
		dst = &buf
	}

	out := rangeio.NewWriter(dst)
	format.Apply(out)
	first, last := rangeio.Slice(items)
	var res rangeio.Result[rangeio.SliceIter[any]]
	if delim != "" {
		res = rangeio.WriteDelim(out, first, last, rangeio.Owned(delim))
	} else {
		res = rangeio.Write(out, first, last)
	}
	if !out.Good() {
		fmt.Fprintf(stderr, "write: wrote %d of %d items: %v\n", res.Count, len(items), out.Err())
		return 1
	}

	if wrap > 0 {
		if _, err := io.WriteString(stdout, wordwrap.String(buf.String(), wrap)); err != nil {
			fmt.Fprintf(stderr, "write: %v\n", err)
			return 1
		}
	}
	if isTerminal(stdout) {
		fmt.Fprintln(stdout)
	}
	return 0
}

func resolveFormat(flags *pflag.FlagSet, opts options) (rangeio.Format, error) {
	format := rangeio.DefaultFormat()
	if opts.config != "" {
		f, err := os.Open(opts.config)
		if err != nil {
			return rangeio.Format{}, err
		}
		defer func() { _ = f.Close() }()
		if format, err = rangeio.LoadFormat(f); err != nil {
			return rangeio.Format{}, fmt.Errorf("%s: %w", opts.config, err)
		}
	}
	if flags.Changed("width") {
		format.Width = opts.width
	}
	if flags.Changed("fill") {
		if utf8.RuneCountInString(opts.fill) != 1 {
			return rangeio.Format{}, fmt.Errorf("%w: %q", rangeio.ErrInvalidFill, opts.fill)
		}
		r, _ := utf8.DecodeRuneInString(opts.fill)
		format.Fill = rangeio.Fill(r)
	}
	if flags.Changed("precision") {
		format.Precision = opts.precision
	}
	if flags.Changed("flags") {
		parsed, err := rangeio.ParseFlags(opts.flags)
		if err != nil {
			return rangeio.Format{}, err
		}
		format.Flags = parsed
	}
	return format, format.Validate()
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	// Quote bare double quotes so s can be read as a Go string literal.
	var b strings.Builder
	b.WriteByte('"')
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return strconv.Unquote(b.String())
}

func readItems(paths []string, stdin io.Reader, numbers bool) ([]any, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var items []any
	for _, path := range paths {
		var err error
		if items, err = readFile(path, stdin, numbers, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// readFile appends the items of one input to items. The file is closed
// before the next input is opened.
func readFile(path string, stdin io.Reader, numbers bool, items []any) ([]any, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !numbers {
			items = append(items, line)
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := parseNumber(line)
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", path, len(items)+1, err)
		}
		items = append(items, n)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// parseNumber accepts integers with an optional base prefix, then floats.
func parseNumber(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

func resolveWrap(wrap int, stdout io.Writer) int {
	if wrap >= 0 {
		return wrap
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWrap
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

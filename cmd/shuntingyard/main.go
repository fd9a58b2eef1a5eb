package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	sy "github.com/zephyrtronium/shuntingyard"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb          string
		with                  [][2]string
		nl, echo, fns, cmp, v bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constant definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value constant definition (any number of times)", addwith)
	flag.BoolVar(&nl, "n", false, "treat separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print expressions in reverse Polish notation")
	flag.BoolVar(&fns, "funcs", false, "enable named functions like sin and sqrt")
	flag.BoolVar(&cmp, "cmp", false, "enable comparison operators")
	flag.BoolVar(&v, "v", false, "log conversions to stderr")
	flag.Parse()

	var opts []sy.ContextOption
	if fns {
		opts = append(opts, sy.Funcs())
	}
	if cmp {
		opts = append(opts, sy.Comparisons())
	}
	// Constants may refer to earlier constants.
	for _, d := range with {
		nm, vl := d[0], d[1]
		r, err := sy.Calculate(vl, opts...)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		opts = append(opts, sy.Const(nm, r))
	}
	var copts []sy.Option
	if v {
		copts = append(copts, sy.WithLogHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	calc := sy.New(sy.SimpleContext(opts...), copts...)

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readExprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	verb += "\n"
	failed := false
	for _, src := range srcs {
		if echo {
			rpn, err := calc.Convert(src)
			if err != nil {
				fmt.Println(err)
				failed = true
				continue
			}
			fmt.Printf("%v : ", rpn)
		}
		r, err := calc.Calculate(src)
		if err != nil {
			fmt.Println(err)
			failed = true
			continue
		}
		fmt.Printf(verb, r)
	}
	if failed {
		os.Exit(1)
	}
}

// readExprs reads the whole input as one expression, or each non-blank line
// as an expression if lines is set.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var exprs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		exprs = append(exprs, scan.Text())
	}
	return exprs, scan.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

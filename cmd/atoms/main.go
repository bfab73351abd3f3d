package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	min "github.com/jonasohland/min-api"
	"gopkg.in/yaml.v3"
)

var typeColors = map[min.Type]*color.Color{
	min.IntArgument:    color.New(color.FgCyan),
	min.FloatArgument:  color.New(color.FgGreen),
	min.SymbolArgument: color.New(color.FgYellow),
	min.ObjectArgument: color.New(color.FgMagenta),
}

// maxLineSize bounds the length of a single message line.
var maxLineSize = 16 << 20

func readMessages(r io.Reader) ([]min.Atoms, error) {
	var messages []min.Atoms

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)

	line := 1
	for ; s.Scan(); line++ {
		as, err := min.ParseString(s.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(as) != 0 {
			messages = append(messages, as)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	return messages, nil
}

func writeYAML(w io.Writer, messages []min.Atoms) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(messages); err != nil {
		return err
	}
	return enc.Close()
}

func printMessages(w io.Writer, messages []min.Atoms) {
	for i, as := range messages {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for j, a := range as {
			tag := typeColors[a.Type()].Sprint(a.Type())
			fmt.Fprintf(w, "%d %s %v\n", j, tag, a)
		}
	}
}

func main() {
	asYAML := flag.Bool("yaml", false, "print the parsed messages as YAML")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-yaml] [-no-color] [path to file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	var r io.Reader
	switch flag.NArg() {
	case 0:
		r = os.Stdin
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		r = f
	default:
		flag.Usage()
		os.Exit(2)
	}

	messages, err := readMessages(r)
	if err != nil {
		log.Fatalf("error parsing input: %v", err)
	}

	if *asYAML {
		if err := writeYAML(os.Stdout, messages); err != nil {
			log.Fatalf("error encoding output: %v", err)
		}
		return
	}

	printMessages(os.Stdout, messages)
}

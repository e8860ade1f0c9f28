package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
)

const usage = `usage:
  wtf8conv [flags] [input [output]]

Transcodes between WTF-8, UTF-8 and UTF-16 without losing unpaired
surrogates. input and output default to stdin and stdout.

encodings: wtf8, utf8, utf16le, utf16be, debug (output only)

flags:`

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}

func main() {
	fs := flag.NewFlagSet("wtf8conv", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "TOML file holding defaults, created when missing")
	from := fs.String("from", encWTF8, "input encoding")
	to := fs.String("to", encUTF16LE, "output encoding")
	lossy := fs.Bool("lossy", false, "replace surrogates with U+FFFD when writing utf8")
	bom := fs.Bool("bom", false, "write a byte order mark before utf16 output")
	verbose := fs.Bool("v", false, "log debug events to stderr")
	_ = fs.Parse(os.Args[1:])

	log := newLogger(os.Stderr, *verbose)

	cfg, err := Load(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "from":
			cfg.Convert.From = *from
		case "to":
			cfg.Convert.To = *to
		case "lossy":
			cfg.Convert.Lossy = *lossy
		case "bom":
			cfg.Convert.BOM = *bom
		}
	})

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	args := fs.Args()
	if len(args) > 2 {
		fs.Usage()
		os.Exit(2)
	}
	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}
	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			fatalf("create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	if err := run(bufio.NewReader(in), bw, cfg.Convert, log); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		os.Exit(1)
	}
	if err := bw.Flush(); err != nil {
		fatalf("write output: %v", err)
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/BeatGlow/file2png"
)

var debug bool

func init() {
	debug = os.Getenv("FILE2PNG_DEBUG") != ""
}

var errTerminal = errors.New("refusing to write image data to a terminal (use -force to override)")

type options struct {
	decode  bool
	inspect bool
	force   bool
	config  file2png.Config
	input   string
	output  string
}

func main() {
	flag.Usage = usage
	decodeFlag := flag.Bool("d", false, "decode image to file")
	inspectFlag := flag.Bool("i", false, "print the length header of an encoded image")
	formatFlag := flag.String("format", "auto", "image format: auto, png, tiff or bmp")
	levelFlag := flag.String("level", "default", "compression: default, none, speed or best")
	forceFlag := flag.Bool("force", false, "write image data even if the output is a terminal")
	verboseFlag := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	format, err := file2png.ParseFormat(*formatFlag)
	if err != nil {
		fatal(err)
	}
	level, err := file2png.ParseCompression(*levelFlag)
	if err != nil {
		fatal(err)
	}

	log, err := newLogger(*verboseFlag || debug)
	if err != nil {
		fatal(err)
	}
	defer log.Sync()
	file2png.SetLogger(log)

	opts := options{
		decode:  *decodeFlag,
		inspect: *inspectFlag,
		force:   *forceFlag,
		config: file2png.Config{
			Format:      format,
			Compression: level,
		},
		input:  flag.Arg(0),
		output: flag.Arg(1),
	}
	if err = run(opts, os.Stdin, os.Stdout); err != nil {
		log.Debug("failed", zap.Error(err))
		fatal(err)
	}
}

func run(opts options, stdin io.Reader, stdout io.Writer) (err error) {
	in := stdin
	if !isStd(opts.input) {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := &output{path: opts.output}
	if isStd(opts.output) {
		out.w = stdout
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	switch {
	case opts.inspect:
		h, err := file2png.Inspect(in, &opts.config)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "length:    %d bytes\ndimension: %dx%d\ncapacity:  %d bytes\n",
			h.Length, h.Dimension, h.Dimension, h.Capacity)
		return err

	case opts.decode:
		return file2png.DecodeStream(in, out, &opts.config)

	default:
		if !opts.force && isStd(opts.output) && isTerminal(stdout) {
			return errTerminal
		}
		return file2png.EncodeStream(in, out, &opts.config)
	}
}

// output creates its file on first write, so a failed decode leaves no file behind.
type output struct {
	path string
	w    io.Writer
	f    *os.File
}

func (o *output) Write(p []byte) (int, error) {
	if o.w == nil {
		f, err := os.Create(o.path)
		if err != nil {
			return 0, err
		}
		o.f, o.w = f, f
	}
	return o.w.Write(p)
}

func (o *output) Close() error {
	if o.f == nil {
		return nil
	}
	return o.f.Close()
}

func isStd(path string) bool {
	return path == "" || path == "-"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	config.Encoding = "console"
	return config.Build()
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "file2png - Convert any file to PNG and back\n\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  Encode:  file2png [options] [input] [output.png]\n")
	fmt.Fprintf(w, "  Decode:  file2png -d [options] [input.png] [output]\n")
	fmt.Fprintf(w, "  Inspect: file2png -i [input.png]\n\n")
	fmt.Fprintf(w, "Input and output default to standard input and output; \"-\" selects them explicitly.\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  file2png document.pdf document.png\n")
	fmt.Fprintf(w, "  file2png -d document.png document.pdf\n")
	fmt.Fprintf(w, "  file2png -format tiff -level best archive.tar archive.tiff\n")
	fmt.Fprintf(w, "  cat file | file2png > encoded.png\n")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}

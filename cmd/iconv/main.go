package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/iconv"
	"github.com/wippyai/iconv/charset"
	"github.com/wippyai/iconv/engine"
)

// knownEncodings is the curated set offered by -list and the
// interactive picker. Any IANA-registered name works with -f/-t; this
// is just the common subset.
var knownEncodings = []string{
	"UTF-8",
	"UTF-16",
	"UTF-16LE",
	"UTF-16BE",
	"UTF-32",
	"UTF-32LE",
	"UTF-32BE",
	"US-ASCII",
	"ISO-8859-1",
	"ISO-8859-2",
	"ISO-8859-5",
	"ISO-8859-15",
	"windows-1250",
	"windows-1251",
	"windows-1252",
	"KOI8-R",
	"Shift_JIS",
	"EUC-JP",
	"ISO-2022-JP",
	"EUC-KR",
	"GBK",
	"GB18030",
	"Big5",
}

func main() {
	var (
		from        = flag.String("f", "UTF-8", "Source encoding name")
		to          = flag.String("t", "UTF-8", "Target encoding name")
		outFile     = flag.String("o", "", "Output file (default stdout)")
		maxOutput   = flag.Int("max-output", 0, "Output size cap in bytes (0 = unbounded)")
		list        = flag.Bool("list", false, "List known encodings and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			engine.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *list {
		for _, name := range knownEncodings {
			fmt.Println(name)
		}
		return
	}

	if *interactive {
		if err := runInteractive(*from, *to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*from, *to, *outFile, flag.Arg(0), *maxOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(from, to, outFile, inFile string, maxOutput int) error {
	input, err := readInput(inFile)
	if err != nil {
		return err
	}

	var opts []iconv.Option
	if maxOutput > 0 {
		opts = append(opts, iconv.WithMaxOutput(maxOutput))
	}

	cd, err := iconv.New(from, to, opts...)
	if err != nil {
		return err
	}
	defer cd.Close()

	output, err := cd.Convert(input)
	if err != nil {
		return err
	}

	return writeOutput(outFile, output)
}

func readInput(inFile string) ([]byte, error) {
	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", inFile, err)
		}
		return data, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "reading from terminal; end input with ^D (use %s -h for usage)\n", os.Args[0])
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func writeOutput(outFile string, data []byte) error {
	if outFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return nil
}

// canonical returns the display name for a picker entry.
func canonical(name string) string {
	return charset.Normalize(name)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"

	deriveinternal "github.com/ErmitaVulpe/derive-more/internal/derive"
)

var Version = "dev"

var (
	bFlag     = flag.String("b", "", "comma-separated build tags")
	tFlag     = flag.Bool("t", false, "include tests")
	oFlag     = flag.String("o", "derivemore_gen.go", "output file name")
	cFlag     = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag     = flag.Bool("v", false, "verbose logging")
	debugFlag = flag.Bool("debug", false, "dump built declarations to stderr")
)

func init() {
	deriveinternal.Version = Version
}

// config carries flag defaults read from .derivemore.yaml in the working
// directory. Flags given on the command line win over the file.
type config struct {
	Output    string `yaml:"output"`
	BuildTags string `yaml:"build_tags"`
	Tests     bool   `yaml:"tests"`
	Color     string `yaml:"color"`
}

func loadConfig(wd string) (config, error) {
	var cfg config
	data, err := os.ReadFile(filepath.Join(wd, ".derivemore.yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse .derivemore.yaml: %w", err)
	}
	return cfg, nil
}

// applyConfig fills flags that were not given on the command line with values
// from the config file.
func applyConfig(cfg config) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["o"] && cfg.Output != "" {
		*oFlag = cfg.Output
	}
	if !set["b"] && cfg.BuildTags != "" {
		*bFlag = cfg.BuildTags
	}
	if !set["t"] && cfg.Tests {
		*tFlag = true
	}
	if !set["c"] && cfg.Color != "" {
		*cFlag = cfg.Color
	}
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(wd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyConfig(cfg)

	level := slog.LevelWarn
	if *vFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.With("version", Version))

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	if *debugFlag {
		deriveinternal.Debug = os.Stderr
	}

	slog.Debug("running derivemore",
		"patterns", flag.Args(),
		"output", *oFlag,
		"tags", *bFlag,
		"tests", *tFlag,
	)

	outs, err := deriveinternal.Main(context.Background(), wd, os.Environ(), *bFlag, *tFlag, *oFlag, flag.Args())
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		slog.Debug("wrote generated file", "file", out, "bytes", len(code))
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var reTab = regexp.MustCompile(`(?m)^\t.+`)

// colorize adds ANSI color codes to the message. Tab-indented continuation
// lines of multi-line diagnostics are dimmed.
func colorize(message string) string {
	const (
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	return string(m)
}

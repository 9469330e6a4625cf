// SPDX-License-Identifier: EPL-2.0

// Command wavembed converts a profile WAV file into a C array for
// firmware playback, and prepares other audio files to match the
// profile.
//
//	wavembed convert [-mode pdm|pcm8] [-o wav-data.c] [input.wav]
//	wavembed prepare [-mode pdm|pcm8] input.{wav|aiff|mp3|ogg} output.wav
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/wavembed"
	"github.com/ik5/wavembed/audio"
	"github.com/ik5/wavembed/formats/aiff"
	"github.com/ik5/wavembed/formats/mp3"
	"github.com/ik5/wavembed/formats/vorbis"
	"github.com/ik5/wavembed/formats/wav"
	"github.com/ik5/wavembed/internal/config"
	"github.com/ik5/wavembed/internal/output"
	"github.com/ik5/wavembed/pcm8"
)

const usage = `usage: wavembed <command> [flags] [args]

commands:
  convert   encode a profile WAV file as a C array
  prepare   resample any supported audio file to the profile

run "wavembed <command> -h" for the flags of a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "convert":
		return runConvert(args[1:], stdout, stderr)
	case "prepare":
		return runPrepare(args[1:], stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

type convertFlags struct {
	config   string
	mode     string
	out      string
	wave     string
	preview  string
	byteRate uint
	verbose  bool
}

func runConvert(args []string, stdout, stderr io.Writer) int {
	var f convertFlags

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "YAML config file")
	fs.StringVar(&f.mode, "mode", "", "output encoding: pdm or pcm8 (overrides config)")
	fs.StringVar(&f.out, "o", "wav-data.c", "C array output file")
	fs.StringVar(&f.wave, "wave", "", "also write a text waveform to this file (overrides config)")
	fs.StringVar(&f.preview, "preview", "", "also write the decoded output as a WAV file")
	fs.UintVar(&f.byteRate, "byte-rate", 0, "expected ByteRate header value (overrides config)")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	input := "test.wav"
	switch fs.NArg() {
	case 0:
	case 1:
		input = fs.Arg(0)
	default:
		fmt.Fprintln(stderr, "convert takes at most one input file")
		return 2
	}

	log := newLogger(stderr, f.verbose)

	if err := convert(f, input, stdout, log); err != nil {
		var mismatch *wav.HeaderMismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintln(stdout, mismatch.Diagnostic())
		}
		log.Error("convert failed", "input", input, "err", err)
		return 1
	}

	return 0
}

func convert(f convertFlags, input string, stdout io.Writer, log *slog.Logger) error {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	if f.mode != "" {
		cfg.Output.Mode = f.mode
	}
	if f.wave != "" {
		cfg.Output.WaveDump = f.wave
	}
	if f.byteRate != 0 {
		cfg.Profile.ByteRate = uint32(f.byteRate)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := wavembed.ParseMode(cfg.Output.Mode)
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	profile := cfg.WavProfile()
	log.Debug("converting", "input", input, "mode", mode, "byte_rate", profile.ByteRate)

	res, err := wavembed.Convert(bufio.NewReader(in), wavembed.Options{
		Mode:          mode,
		Profile:       profile,
		OnField:       func(fv wav.FieldValue) { fmt.Fprintln(stdout, fv) },
		PreviewWindow: cfg.Preview.Window,
	})
	if err != nil {
		return err
	}

	low, high := pcm8.Range(res.Samples)
	log.Debug("extracted samples", "count", len(res.Samples), "min", low, "max", high)

	decl := res.Decl(cfg.Output.ArrayName, cfg.Output.SizeName)
	if mode == wavembed.ModePCM8 {
		decl.PerLine = cfg.Output.PCMPerLine
	} else {
		decl.PerLine = cfg.Output.PDMPerLine
	}

	var files output.Files
	defer files.Discard()

	err = files.Create(f.out, func(w io.Writer) error {
		return res.WriteArray(w, decl)
	})
	if err != nil {
		return err
	}

	if cfg.Output.WaveDump != "" {
		if err := files.Create(cfg.Output.WaveDump, res.WriteWaveText); err != nil {
			return err
		}
	}

	if f.preview != "" {
		err := files.CreateSeek(f.preview, func(ws io.WriteSeeker) error {
			return wav.WritePreview(ws, int(res.Header.SampleRate), res.Preview())
		})
		if err != nil {
			return err
		}
	}

	if err := files.Commit(); err != nil {
		return err
	}

	log.Info("wrote array", "path", f.out, "mode", mode, "samples", len(res.Samples),
		"values", len(res.Words)+len(res.Bytes))
	if cfg.Output.WaveDump != "" {
		log.Info("wrote waveform", "path", cfg.Output.WaveDump)
	}
	if f.preview != "" {
		log.Info("wrote preview", "path", f.preview)
	}

	return nil
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

func runPrepare(args []string, stderr io.Writer) int {
	var (
		cfgPath  string
		mode     string
		byteRate uint
		verbose  bool
	)

	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgPath, "config", "", "YAML config file")
	fs.StringVar(&mode, "mode", "", "mode the file will be converted in, which picks the default ByteRate (overrides config)")
	fs.UintVar(&byteRate, "byte-rate", 0, "ByteRate to stamp in the header (overrides config)")
	fs.BoolVar(&verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: wavembed prepare [flags] input output.wav")
		return 2
	}

	log := newLogger(stderr, verbose)
	input, out := fs.Arg(0), fs.Arg(1)

	if err := prepare(cfgPath, mode, uint32(byteRate), input, out, log); err != nil {
		log.Error("prepare failed", "input", input, "err", err)
		return 1
	}

	return 0
}

func prepare(cfgPath, mode string, byteRate uint32, input, out string, log *slog.Logger) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if mode != "" {
		cfg.Output.Mode = mode
	}
	if byteRate != 0 {
		cfg.Profile.ByteRate = byteRate
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	profile := cfg.WavProfile()

	dec, err := newRegistry().Lookup(input)
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	defer src.Close()

	log.Debug("decoded", "input", input, "rate", src.SampleRate(), "channels", src.Channels())

	samples, err := wavembed.Prepare(src, profile)
	if err != nil {
		return err
	}

	err = output.WriteFile(out, func(w io.Writer) error {
		return wav.WriteWAV16(w, profile, samples)
	})
	if err != nil {
		return err
	}

	log.Info("wrote profile wav", "path", out, "samples", len(samples),
		"rate", profile.SampleRate, "byte_rate", profile.ByteRate)
	return nil
}

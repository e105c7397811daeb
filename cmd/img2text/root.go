package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wbrown/img2text"
	"github.com/wbrown/img2text/imageutil"
)

// options holds the parsed command line.
type options struct {
	imagePath  string
	character  string
	scale      string
	output     string
	resample   string
	strictExit bool
	debug      bool
}

// execute runs the command for args and returns the process exit code.
// Conversion errors are printed to stdout; the exit code stays 0 unless
// --strict-exit was given.
func execute(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	cmd := newRootCmd(opts, args, stdout, stderr)

	if len(args) == 0 {
		fmt.Fprintln(stdout, "No arguments were passed.")
		_ = cmd.Usage()
		return 0
	}

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stdout, err.Error())
		if opts.strictExit {
			return exitCode(err)
		}
	}
	return 0
}

func newRootCmd(opts *options, rawArgs []string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "img2text -i <image> [-c <char>] [-x <scale>]",
		Short: "Print an image as true-color text-art",
		Long: `img2text prints an image as text-art: every pixel of the (optionally
rescaled) image becomes one character colored with a 24-bit ANSI escape.`,
		Example: "  img2text -i photo.jpg -c '#' -x 0.25\n" +
			"  img2text -i photo.jpg -x 0.1 -o photo.png",
		Version:            fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.debug)
			for _, key := range unknownFlags(cmd.Flags(), rawArgs) {
				logger.Warnf("Key %s is not recognized", key)
			}
			for _, arg := range args {
				logger.Warnf("Ignoring argument %s", arg)
			}
			return run(opts, stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.imagePath, "image", "i", "",
		"Path to the input image file (required)")
	flags.StringVarP(&opts.character, "char", "c", img2text.DefaultCharacter,
		"Character drawn for every pixel")
	flags.StringVarP(&opts.scale, "scale", "x",
		strconv.FormatFloat(img2text.DefaultScaleFactor, 'g', -1, 64),
		"Scale factor applied to the image width and height")
	flags.StringVarP(&opts.output, "output", "o", "",
		"Write to this file instead of stdout; a .png path renders the text as an image")
	flags.StringVar(&opts.resample, "resample", imageutil.InterpolationArea.String(),
		"Resampling method: area, linear or nearest")
	flags.BoolVar(&opts.strictExit, "strict-exit", false,
		"Exit with a non-zero code per error kind (value 2, type 3, decode 4)")
	flags.BoolVar(&opts.debug, "debug", false,
		"Enable debug logging on stderr")

	return cmd
}

func run(opts *options, stdout io.Writer, logger *log.Logger) error {
	params, err := img2text.ParseParams(opts.imagePath, opts.character, opts.scale)
	if err != nil {
		return err
	}
	interp, err := imageutil.ParseInterpolation(opts.resample)
	if err != nil {
		return &img2text.Error{Kind: img2text.KindValue, Msg: err.Error(), Err: err}
	}

	conv := img2text.NewConverter(
		img2text.WithInterpolation(interp),
		img2text.WithLogger(logger),
	)

	if strings.EqualFold(filepath.Ext(opts.output), ".png") {
		img, err := conv.Load(params)
		if err != nil {
			return err
		}
		if err := img2text.SaveTextPNG(img, params.Character, opts.output, img2text.PNGOptions{}); err != nil {
			return err
		}
		logger.Info("PNG output written", "path", opts.output)
		return nil
	}

	text, err := conv.Convert(params)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Output written", "path", opts.output)
		return nil
	}

	_, err = io.WriteString(stdout, text)
	return err
}

// exitCode maps an error to the --strict-exit status.
func exitCode(err error) int {
	switch img2text.KindOf(err) {
	case img2text.KindValue:
		return 2
	case img2text.KindType:
		return 3
	case img2text.KindDecode:
		return 4
	}
	return 1
}

// unknownFlags returns the flag tokens in args that fs does not define.
// It follows pflag's consumption rules: a known flag that needs a value
// swallows the next token, and so does an unknown flag when the next token
// does not look like a flag.
func unknownFlags(fs *pflag.FlagSet, args []string) []string {
	var unknown []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		var (
			key      string
			flag     *pflag.Flag
			hasValue bool
		)
		if strings.HasPrefix(arg, "--") {
			name, _, found := strings.Cut(arg[2:], "=")
			key, flag, hasValue = "--"+name, fs.Lookup(name), found
		} else {
			key, flag, hasValue = arg[:2], fs.ShorthandLookup(arg[1:2]), len(arg) > 2
		}

		next := i + 1
		switch {
		case flag == nil:
			unknown = append(unknown, key)
			if !hasValue && next < len(args) && !strings.HasPrefix(args[next], "-") {
				i++
			}
		case !hasValue && flag.NoOptDefVal == "":
			i++
		}
	}
	return unknown
}

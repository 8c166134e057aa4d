// Command xshot captures a rectangular region of an X display and writes it
// as an encoded image to a file, stdout or the clipboard.
package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"xshot/capture"
	"xshot/clipboard"
	"xshot/config"
	"xshot/encode"
	"xshot/logutil"
	"xshot/xdisplay"
)

const version = "1.0.0"

type cliOptions struct {
	windowID  string
	geometry  string
	format    string
	clipboard bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xshot [flags] [file]",
		Short:         "Capture a region of the X display to an image",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOptions(*opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.windowID, "id", "i", "", "Window to capture (decimal or 0x-hex id, or \"active\")")
	cmd.Flags().StringVarP(&opts.geometry, "geometry", "g", "", "Area to capture (WxH+X+Y)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (png/pam/webp)")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Copy the capture to the clipboard instead of writing a file")

	return cmd
}

func runWithOptions(opts cliOptions, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logutil.Setup(cfg.EnableFileLogging)

	formatName := opts.format
	if formatName == "" {
		formatName = cfg.Format
	}
	format, err := encode.ParseFormat(formatName)
	if err != nil {
		return err
	}

	display, err := xdisplay.Open(cfg.Display)
	if err != nil {
		return err
	}
	defer display.Close()

	req := capture.Request{Geometry: opts.geometry}
	if opts.windowID != "" {
		if opts.windowID == "active" {
			if req.Window, err = display.ActiveWindow(); err != nil {
				return err
			}
		} else if req.Window, err = parseWindowID(opts.windowID); err != nil {
			return err
		}
	}

	img, err := capture.Run(display, req)
	if err != nil {
		return err
	}

	if opts.clipboard {
		return writeClipboard(img)
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	return writeOutput(img, format, path)
}

// parseWindowID accepts a decimal or 0x-prefixed hexadecimal X window id.
func parseWindowID(s string) (capture.Window, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("window ID %q is not a valid integer", s)
	}
	if id == 0 {
		return 0, fmt.Errorf("window ID must be non-zero")
	}
	return capture.Window(id), nil
}

// writeOutput encodes img to path. "-" means stdout; an empty path falls back
// to a timestamped file name in the working directory.
func writeOutput(img *image.RGBA, format encode.Format, path string) error {
	if path == "" {
		path = fmt.Sprintf("%d.%s", time.Now().Unix(), format.Ext())
		fmt.Fprintf(os.Stderr, "No output specified, defaulting to %s\n", path)
	}
	if path == "-" {
		return encode.Encode(os.Stdout, img, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode.Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func writeClipboard(img *image.RGBA) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	var buf bytes.Buffer
	if err := encode.Encode(&buf, img, encode.PNG); err != nil {
		return err
	}
	return clipboard.WriteImage(buf.Bytes())
}

// Command zdecompress decodes a zlib stream from a file and writes the
// decompressed bytes to "<source>.zdecompressed".
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/flatetools/zinflate/zlib"
)

const version = "0.1.0"

var cli struct {
	Offset      int64            `short:"o" help:"Byte offset into the source where the zlib stream begins." default:"0"`
	Size        int64            `short:"s" help:"Expected decompressed size; preallocates and caps the output buffer. 0 means unbounded." default:"0"`
	EngineOne   bool             `short:"1" help:"Select the legacy decode engine. Accepted for compatibility; this build has only one decoder."`
	EngineTwo   bool             `short:"2" help:"Select the alternate decode engine. Accepted for compatibility; this build has only one decoder."`
	Verbose     int              `short:"v" type:"counter" help:"Raise the log level; repeatable."`
	VeryVerbose bool             `short:"V" help:"Shorthand for maximum log verbosity."`
	Version     kong.VersionFlag `help:"Print the version and exit."`
	Source      string           `arg:"" help:"Input file containing a zlib stream."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("zdecompress"),
		kong.Description("Decode a zlib-wrapped DEFLATE stream."),
		kong.Vars{"version": version},
	)

	log := logrus.New()
	log.SetLevel(logLevel())

	if cli.EngineOne || cli.EngineTwo {
		log.Info("decode engine flag accepted for compatibility and ignored; this build has only one decoder")
	}

	if err := run(log); err != nil {
		log.WithError(err).Error("decompress failed")
		kctx.Exit(1)
	}
}

func logLevel() logrus.Level {
	if cli.VeryVerbose || cli.Verbose >= 2 {
		return logrus.TraceLevel
	}
	if cli.Verbose == 1 {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func run(log *logrus.Logger) error {
	input, err := os.ReadFile(cli.Source)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	log.WithField("bytes", len(input)).Debug("read source")

	if cli.Offset > 0 {
		if cli.Offset > int64(len(input)) {
			return fmt.Errorf("offset %d exceeds input length %d", cli.Offset, len(input))
		}
		input = input[cli.Offset:]
	}

	var out []byte
	if cli.Size > 0 {
		dst := make([]byte, cli.Size)
		n, err := zlib.DecompressInto(input, dst)
		if err != nil {
			return err
		}
		out = dst[:n]
	} else {
		out, err = zlib.Decompress(input)
		if err != nil {
			return err
		}
	}
	log.WithField("bytes", len(out)).Debug("decompressed")

	destPath := cli.Source + ".zdecompressed"
	if err := os.WriteFile(destPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	log.WithField("path", destPath).Info("wrote output")
	return nil
}

// Command tchash streams files through a chosen digest algorithm and prints
// one "<hex-digest>\t*<filename>" line per file, in the style of the
// coreutils *sum tools.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/forcebit/cryptohash-go/pkg/codec"
	"github.com/forcebit/cryptohash-go/pkg/digest"
)

const readBufSize = 64 * 1024

func main() {
	app := &cli.App{
		Name:      "tchash",
		Usage:     "compute file digests",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "algorithm",
				Aliases:  []string{"a"},
				Required: true,
				Usage: "digest algorithm: md5, sha1, sha2-{224,256,384,512,512/224,512/256}, " +
					"sha3-{224,256,384,512}, shake{128,256}/<bits>, tiger[2][/<bits>] (case-insensitive)",
			},
		},
		Action:          run,
		HideHelpCommand: true,
	}
	if err := app.Run(os.Args); err != nil {
		// Non-ExitCoder errors (flag parsing and the like) share the
		// usage-error code.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

func run(c *cli.Context) error {
	alg, err := digest.Parse(c.String("algorithm"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}
	if c.NArg() == 0 {
		return cli.Exit("Error: no input files", 2)
	}

	failed := false
	for _, name := range c.Args().Slice() {
		if err := hashFile(alg, name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		return cli.Exit("", 1)
	}
	return nil
}

func hashFile(alg digest.Algorithm, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("unable to open file %q: %w", name, err)
	}
	defer f.Close()

	h := alg.New()
	buf := make([]byte, readBufSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return fmt.Errorf("unable to read file %q: %w", name, err)
	}
	fmt.Printf("%s\t*%s\n", codec.EncodeToString(h.Sum(nil)), name)
	return nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/kopeck/internal/gen"
	"github.com/robotomize/kopeck/internal/hashio"
	"github.com/robotomize/kopeck/internal/logging"
)

var flagGen = flag.NewFlagSet("flaggen", flag.ContinueOnError)

var (
	path     = flagGen.String("target", "", "path to the folder with the generated files")
	hashFunc = flagGen.String("hash", "", "hash alg for compare files, variants: md5, sha1")
)

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("Gocygen: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagGen.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	if *path == "" {
		logger.Fatal("use -target <path> - path to the folder with the generated files")
	}

	hasherFunc, err := hashio.ByName(*hashFunc)
	if err != nil {
		logger.Fatalf("use -hash md5|sha1: %v", err)
	}

	if err := gen.Generate(*path, hasherFunc); err != nil {
		if !onlyWarnings(err, gen.ErrHashingContentEqual) {
			logger.Fatal(err)
		}

		logger.Printf("warning: %v", gen.ErrHashingContentEqual)
	}

	logger.Printf("files were completed successfully, generated files are placed in %s", *path)
}

func onlyWarnings(err, warning error) bool {
	var multiErr *multierror.Error
	if !errors.As(err, &multiErr) {
		return errors.Is(err, warning)
	}

	for _, wrErr := range multiErr.WrappedErrors() {
		if !errors.Is(wrErr, warning) {
			return false
		}
	}

	return true
}

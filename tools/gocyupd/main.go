package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/kopeck/internal/assets"
	"github.com/robotomize/kopeck/internal/hashio"
	"github.com/robotomize/kopeck/internal/httputil"
	"github.com/robotomize/kopeck/internal/logging"
)

var flagUpd = flag.NewFlagSet("flagupd", flag.ContinueOnError)

var (
	path          = flagUpd.String("target", "", "path to the folder with the assets")
	hashFunc      = flagUpd.String("hash", "", "hash alg for compare files, variants: md5, sha1")
	retryNum      = flagUpd.Uint64("retry", assets.DefaultRetryNum, "number of retries for a failed download")
	retryDuration = flagUpd.Duration("retry-duration", assets.DefaultRetryDuration, "pause between retries")
	timeout       = flagUpd.Duration("timeout", assets.DefaultRequestTimeout, "timeout of a download including its retries")
)

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("Gocyupd: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagUpd.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	if *path == "" {
		logger.Fatal("use -target <path> path to the folder with the assets")
	}

	hasherFunc, err := hashio.ByName(*hashFunc)
	if err != nil {
		logger.Fatalf("use -hash md5|sha1: %v", err)
	}

	syncer := assets.NewSyncer(
		httputil.DefaultClient(),
		assets.WithHasher(hasherFunc),
		assets.WithRetryNum(*retryNum),
		assets.WithRetryDuration(*retryDuration),
		assets.WithRequestTimeout(*timeout),
	)

	if err := syncer.Sync(ctx, *path); err != nil {
		var multiErr *multierror.Error
		if !errors.As(err, &multiErr) {
			logger.Fatal(err)
		}

		for _, wrErr := range multiErr.WrappedErrors() {
			if !errors.Is(wrErr, assets.ErrHashingContentEqual) {
				logger.Fatal(multiErr)
			}

			logger.Printf("warning: %v", wrErr)
		}
	}

	logger.Printf("assets are up to date in %s", *path)
}

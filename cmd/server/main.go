package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"

	"github.com/abustany/back-blog/pkg/endpoint"
	"github.com/abustany/back-blog/pkg/postservice"
	"github.com/abustany/back-blog/pkg/poststore"
)

func die(logger log.Logger, err error) {
	logger.Log("startup_error", err)
	os.Exit(1)
}

func main() {
	listenAddress := flag.String("listen", "127.0.0.1:1412", "Address on which to start the HTTP server")
	seedFile := flag.String("seed", "", "Path of a CSV file (id,title,content,author,date) to seed the store with")

	flag.Parse()

	logger := log.NewJSONLogger(log.NewSyncWriter(os.Stdout))
	mainLogger := log.With(logger, "module", "main")

	store, err := poststore.NewMemoryPostStore()

	if err != nil {
		die(mainLogger, errors.Wrap(err, "Error while creating post store"))
	}

	if *seedFile != "" {
		fd, err := os.Open(*seedFile)

		if err != nil {
			die(mainLogger, errors.Wrap(err, "Error while opening seed file"))
		}

		n, err := poststore.LoadFromCSV(store, fd, true)
		fd.Close()

		if err != nil {
			die(mainLogger, errors.Wrap(err, "Error while loading seed file"))
		}

		mainLogger.Log("seeded_posts", n)
	}

	ep := endpoint.NewHttpEndpoint(logger, postservice.New(store))

	mainLogger.Log("listen", *listenAddress)
	err = http.ListenAndServe(*listenAddress, ep)

	if err != nil {
		die(mainLogger, errors.Wrap(err, "Error while starting HTTP server"))
	}
}

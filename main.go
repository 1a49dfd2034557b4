package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"NGramCount/internal/engine"
	"NGramCount/internal/logger"
)

func main() {
	dir := flag.String("dir", "", "Root directory to scan")
	workers := flag.Uint("workers", uint(runtime.NumCPU()), "Number of worker goroutines")
	n := flag.Uint("n", 2, "Length of the n-grams to count")
	ext := flag.String("ext", ".txt", "File extension to include")
	logLevel := flag.String("log-level", "INFO", "Log level: DEBUG, INFO, WARN or ERROR")
	flag.Parse()

	// Allow the directory as a bare positional argument.
	if *dir == "" && flag.NArg() > 0 {
		*dir = flag.Arg(0)
	}

	log := logger.New(*logLevel)
	defer log.Sync()

	cfg := engine.Config{
		RootDir:   *dir,
		Workers:   *workers,
		N:         *n,
		Extension: *ext,
	}

	eng, err := engine.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: %s -dir=<dir> -workers=<count> -n=<length> [-ext=.txt]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := eng.Run(ctx); err != nil {
		log.Errorf("run failed: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/RAloysia/course-recommendation-app/internal/probe"
)

// Default configuration constants.
const (
	defaultNumQueries   = 500
	defaultTopK         = 10
	defaultRepeats      = 3
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultProbeTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numQueries = flag.Int("queries", defaultNumQueries, "Number of queries to generate and submit")
		topK       = flag.Int("top", defaultTopK, "Result limit requested per query")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		repeats    = flag.Int("repeats", defaultRepeats, "Repeats per query in the determinism pass")
		outputFile = flag.String("output", "", "Output file for generated queries (default: generated_queries_TIMESTAMP.json)")
		logFile    = flag.String("log", "", "Log file for probe output (default: probe_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	// Setup logging
	if err := probe.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	// Create probe configuration
	config := &probe.Config{
		BaseURL:    *baseURL,
		NumQueries: *numQueries,
		TopK:       *topK,
		Workers:    *workers,
		Timeout:    *timeout,
		Repeats:    *repeats,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	// Run the probe
	if err := probe.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		return
	}
}

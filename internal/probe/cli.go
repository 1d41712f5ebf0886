package probe

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/RAloysia/course-recommendation-app/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "probe_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the recommendation probe.
func ShowHelp() {
	os.Stdout.WriteString(`Recommendation Probe
====================

A concurrent tool that fires generated queries at a running recommendation
service and verifies ordering, filter conformance, and determinism.

Usage:
  go run cmd/probe/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -queries int
        Number of queries to generate and submit (default 500)
  -top int
        Result limit requested per query (default 10)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -repeats int
        Repeats per query in the determinism pass (default 3)
  -output string
        Output file for generated queries (default: generated_queries_TIMESTAMP.json)
  -log string
        Log file for probe output (default: probe_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe with default settings
  go run cmd/probe/main.go

  # Probe with custom parameters
  go run cmd/probe/main.go -queries 2000 -workers 16 -url http://localhost:8080

  # Probe with verbose output
  go run cmd/probe/main.go -verbose -queries 500
`)
}

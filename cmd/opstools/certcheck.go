package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/function61/gokit/logex"
	"github.com/function61/gokit/osutil"
	"github.com/function61/opstools/pkg/certexpiry"
	"github.com/spf13/cobra"
)

const (
	backendOpenSSL = "openssl"
	backendNative  = "native"

	formatLine  = "line"
	formatTable = "table"

	// keeps days * 24h within time.Duration
	maxThresholdDays = 100000
)

type certCheckOptions struct {
	backend   string
	openssl   string
	timeout   time.Duration
	keepGoing bool
	format    string
	suffix    string
	verbose   bool
}

func certCheck(cmd *cobra.Command, root string, daysArg string, opts certCheckOptions) error {
	thresholdDays, err := strconv.Atoi(daysArg)
	if err != nil {
		return fmt.Errorf("days must be an integer: %w", err)
	}
	if thresholdDays > maxThresholdDays || thresholdDays < -maxThresholdDays {
		return fmt.Errorf("days out of range: %d", thresholdDays)
	}

	rootLogger := logex.StandardLogger()

	extractor, err := makeExtractor(opts)
	if err != nil {
		return err
	}

	reporter, err := makeReporter(cmd, opts.format)
	if err != nil {
		return err
	}

	var walkLogger *log.Logger
	if opts.verbose {
		walkLogger = logex.Prefix("walk", rootLogger)
	}

	scanner := certexpiry.NewScanner(
		extractor,
		certexpiry.NewWalker(opts.suffix, walkLogger),
		logex.Prefix("cert-check", rootLogger))
	scanner.KeepGoing = opts.keepGoing

	result, scanErr := scanner.Scan(
		osutil.CancelOnInterruptOrTerminate(rootLogger),
		root,
		thresholdDays,
		reporter.Report)

	// whatever got reported before a failure still gets printed
	if err := reporter.Flush(); err != nil {
		return err
	}

	if opts.verbose {
		logex.Levels(rootLogger).Info.Printf(
			"inspected %d certificate(s), %d expiring within %d days",
			result.Inspected,
			result.Flagged,
			thresholdDays)
	}

	return scanErr
}

func makeExtractor(opts certCheckOptions) (certexpiry.Extractor, error) {
	switch opts.backend {
	case backendOpenSSL:
		return &certexpiry.OpenSSL{
			Binary:  opts.openssl,
			Timeout: opts.timeout,
		}, nil
	case backendNative:
		return certexpiry.Native{}, nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", opts.backend)
	}
}

func makeReporter(cmd *cobra.Command, format string) (certexpiry.Reporter, error) {
	switch format {
	case formatLine:
		return certexpiry.NewLineReporter(cmd.OutOrStdout()), nil
	case formatTable:
		return certexpiry.NewTableReporter(cmd.OutOrStdout()), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

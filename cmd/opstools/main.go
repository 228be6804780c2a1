package main

import (
	"fmt"
	"os"
	"time"

	"github.com/function61/gokit/dynversion"
	"github.com/spf13/cobra"
)

func main() {
	app := &cobra.Command{
		Use:           os.Args[0],
		Short:         "Small operations helpers: certificate expiry checks and mail account onboarding",
		Version:       dynversion.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.AddCommand(certCheckEntry())
	app.AddCommand(mailComposeEntry())

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func certCheckEntry() *cobra.Command {
	opts := certCheckOptions{
		backend: backendOpenSSL,
		openssl: "openssl",
		timeout: 30 * time.Second,
		format:  formatLine,
		suffix:  ".crt",
	}

	cmd := &cobra.Command{
		Use:   "cert-check [dir] [days]",
		Short: "Warn about certificates under dir expiring within given days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return certCheck(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.backend, "backend", "", opts.backend, "How to read end dates: openssl|native")
	cmd.Flags().StringVarP(&opts.openssl, "openssl", "", opts.openssl, "Path to openssl binary")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "", opts.timeout, "Timeout per openssl invocation (0 = none)")
	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", opts.keepGoing, "Log failing files and continue, exit non-zero at the end")
	cmd.Flags().StringVarP(&opts.format, "format", "", opts.format, "Output format: line|table")
	cmd.Flags().StringVarP(&opts.suffix, "suffix", "", opts.suffix, "File name suffix of certificates")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", opts.verbose, "Log skipped and inspected files")

	return cmd
}

func mailComposeEntry() *cobra.Command {
	opts := mailComposeOptions{}

	cmd := &cobra.Command{
		Use:   "mail-compose [user]",
		Short: "Print the welcome mail for a new mail account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mailCompose(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "JSON config file with host and signature")
	cmd.Flags().StringVarP(&opts.host, "host", "", "", "Mail server hostname (overrides config)")
	cmd.Flags().StringVarP(&opts.forward, "forward", "f", "", "Forward incoming mail to this address instead of IMAP")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "Initial password (generated if not given)")

	return cmd
}

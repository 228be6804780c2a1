package certexpiry

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"time"
)

// openssl x509 -enddate prints e.g. "notAfter=Jan  5 23:59:59 2030 GMT"
const endDateLayout = "Jan _2 15:04:05 2006 MST"

var endDateRe = regexp.MustCompile(`^notAfter=([a-zA-Z0-9: ]+)`)

type Extractor interface {
	NotAfter(ctx context.Context, path string) (time.Time, error)
}

// runs a command to completion, returning its stdout and stderr
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

// extracts the end date by shelling out to "openssl x509"
type OpenSSL struct {
	Binary  string        // defaults to "openssl" (looked up from $PATH)
	Timeout time.Duration // per invocation, zero means no timeout
	run     commandRunner
}

var _ Extractor = (*OpenSSL)(nil)

func (o *OpenSSL) NotAfter(ctx context.Context, path string) (time.Time, error) {
	binary := o.Binary
	if binary == "" {
		binary = "openssl"
	}

	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	run := o.run
	if run == nil {
		run = execCommand
	}

	stdout, stderr, err := run(ctx, binary, "x509", "-enddate", "-in", path, "-noout")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}

		return time.Time{}, &ExternalToolError{
			Tool:   binary,
			Path:   path,
			Stderr: string(stderr),
			Err:    err,
		}
	}

	return parseEndDate(path, string(stdout))
}

// parses the output of "openssl x509 -enddate -noout"
func ParseEndDateOutput(output string) (time.Time, error) {
	return parseEndDate("", output)
}

func parseEndDate(path string, output string) (time.Time, error) {
	match := endDateRe.FindStringSubmatch(output)
	if match == nil {
		return time.Time{}, &UnexpectedOutputError{Path: path, Output: output}
	}

	notAfter, err := time.Parse(endDateLayout, match[1])
	if err != nil {
		return time.Time{}, &DateParseError{Path: path, Value: match[1], Err: err}
	}

	return notAfter, nil
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

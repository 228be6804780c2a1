package certexpiry

import (
	"context"
	"io/ioutil"
	"time"

	"github.com/function61/gokit/cryptoutil"
)

// reads the end date with Go's X.509 parser instead of an external tool.
// failures are still reported as ExternalToolError so callers see one taxonomy.
type Native struct{}

var _ Extractor = Native{}

const nativeToolName = "native x509 parser"

func (Native) NotAfter(ctx context.Context, path string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	certPem, err := ioutil.ReadFile(path)
	if err != nil {
		return time.Time{}, &ExternalToolError{Tool: nativeToolName, Path: path, Err: err}
	}

	cert, err := cryptoutil.ParsePemX509Certificate(certPem)
	if err != nil {
		return time.Time{}, &ExternalToolError{Tool: nativeToolName, Path: path, Err: err}
	}

	return cert.NotAfter, nil
}

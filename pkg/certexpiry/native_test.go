package certexpiry

import (
	"context"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/function61/gokit/assert"
)

func TestNative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.crt")
	assert.Ok(t, ioutil.WriteFile(path, []byte(exampleCert), 0600))

	notAfter, err := Native{}.NotAfter(context.Background(), path)
	assert.Ok(t, err)
	assert.EqualString(t, notAfter.UTC().Format(time.RFC3339), "2030-02-08T18:44:36Z")
}

func TestNativeNotACertificate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.crt")
	assert.Ok(t, ioutil.WriteFile(path, []byte("hello"), 0600))

	var toolErr *ExternalToolError

	_, err := Native{}.NotAfter(context.Background(), path)
	assert.Assert(t, errors.As(err, &toolErr))
	assert.EqualString(t, toolErr.Path, path)

	_, err = Native{}.NotAfter(context.Background(), filepath.Join(dir, "missing.crt"))
	assert.Assert(t, errors.As(err, &toolErr))
}

// mkcert-issued, not valid after 2030-02-08 18:44:36 UTC
const exampleCert = `-----BEGIN CERTIFICATE-----
MIIEHDCCAoSgAwIBAgIQbyK0y1bhFzShdP+Wh5gKsTANBgkqhkiG9w0BAQsFADBf
MR4wHAYDVQQKExVta2NlcnQgZGV2ZWxvcG1lbnQgQ0ExGjAYBgNVBAsMEXJvb3RA
MzU1YTY4YjM5MTI5MSEwHwYDVQQDDBhta2NlcnQgcm9vdEAzNTVhNjhiMzkxMjkw
HhcNMTkwNjAxMDAwMDAwWhcNMzAwMjA4MTg0NDM2WjBFMScwJQYDVQQKEx5ta2Nl
cnQgZGV2ZWxvcG1lbnQgY2VydGlmaWNhdGUxGjAYBgNVBAsMEXJvb3RAMzU1YTY4
YjM5MTI5MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAvPcc75ddkjI8
4VibjPczJ+lPtgxT5KY/v+uY9dzzc1ApkYj0Ny58RjIJb3VJl7Z53kJFBrATmesu
p3uTWZzxCiP5zO+bekDEXmFWGKt3wvE5Qwu+t9RFeUPqWkjKeyhQmjo2mmCzZ3L/
dhcVj+UwqtJcDl16B2u0YxNNbdvJGjoJ7teYAGH6pKmmld17z5+Bcqsi16IKk/3q
4JNDkHcBMMhR2P6oRwqVDuDDyaCABGKw3P9izY4GPwJZCkNMnVGJKvOp+eBqTEe9
0WjwdGg5TuB4/rWKOUGZHGhd9bGpOcgzcrmjDzOjbs3T/fjlwNWWSY/sLld6aMQg
aggT2+0WVQIDAQABo24wbDAOBgNVHQ8BAf8EBAMCBaAwEwYDVR0lBAwwCgYIKwYB
BQUHAwEwDAYDVR0TAQH/BAIwADAfBgNVHSMEGDAWgBTU5eodMALrQqetKOuVAR2l
UxEImDAWBgNVHREEDzANggtleGFtcGxlLm9yZzANBgkqhkiG9w0BAQsFAAOCAYEA
PBs1EUmGs8pwkHzWCik1GPC3NK6eSNb5zyuyPoeXTourjDgKeSgz9xnujUernum4
MtWbr7Jg0VUN373UBT5c7Ty+8e0l5ODyWiXQUZ+YlHunPK8vlKe+pvBkltwCW7De
zsmtu/96n1MVU/5EKpntpf5F4IlR4JC+x6egt5XVDXd1fFKtYGwzPa6PvaqYDqq5
DZBsurnPjcIiH5ozc+7rVg9noVCWEMpZktQq/9kgqgbwmaAYk3CPOZOLEQw8tSHh
nI90+hE7La1jEyqwjKFwE0zR0etmoJYSLLAAZCPNL0WphEpqoxLkLm6qNmiRG8pe
OCeqDwSJgmgtbJ+66Rx3Q+OGZ4LvFcYE/Yu33sT39WenQDOKFKxlg1PTo2Ec0sBZ
mZ/xgSajyEYzK9eazqo0z2zYsnxQkrQOVYvpCMuoQGW+biWrWc667yC3T4zyb480
swNhxeADXfBfXzZdY1wYDD7Bmr4SP7F18ktS2/aNf6HweIA3+YYFfLsLnvFO/w+j
-----END CERTIFICATE-----
`

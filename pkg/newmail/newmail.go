// Composes the welcome mail for a freshly provisioned mail account. Only composes,
// delivering it is up to the operator.
package newmail

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/function61/gokit/cryptorandombytes"
)

type Account struct {
	User     string // full address, also the login name
	Password string // initial password, user has to change it before first login
	Host     string // serves IMAP, SMTP submission and the password change page
	Forward  string // (optional) incoming mail is forwarded here instead of kept in IMAP
}

type Settings struct {
	Signature      string `json:"signature"`
	SubmissionPort int    `json:"submission_port"`
	IMAPPort       int    `json:"imap_port"`
}

func DefaultSettings() Settings {
	return Settings{
		Signature:      "Ralf",
		SubmissionPort: 587,
		IMAPPort:       143,
	}
}

type Message struct {
	Subject string
	Body    string
}

func (m Message) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Subject: %s\n\n%s\n", m.Subject, m.Body)
	return int64(n), err
}

func Compose(account Account, settings Settings) (*Message, error) {
	if err := account.validate(); err != nil {
		return nil, err
	}

	defaults := DefaultSettings()
	if settings.Signature == "" {
		settings.Signature = defaults.Signature
	}
	if settings.SubmissionPort == 0 {
		settings.SubmissionPort = defaults.SubmissionPort
	}
	if settings.IMAPPort == 0 {
		settings.IMAPPort = defaults.IMAPPort
	}

	data := struct {
		Account
		Settings
	}{account, settings}

	subject := &strings.Builder{}
	if err := subjectTmpl.Execute(subject, data); err != nil {
		return nil, err
	}

	body := &strings.Builder{}
	if err := bodyTmpl.Execute(body, data); err != nil {
		return nil, err
	}

	return &Message{
		Subject: subject.String(),
		Body:    body.String(),
	}, nil
}

func (a Account) validate() error {
	switch {
	case a.User == "":
		return errors.New("account user missing")
	case a.Host == "":
		return errors.New("account host missing")
	case a.Password == "":
		return errors.New("account password missing")
	default:
		return nil
	}
}

// passwords beginning with dash are annoying to pass as CLI arguments (which base64
// URL variant can produce), so we'll guarantee that it won't start with one.
func GeneratePassword() string {
	password := cryptorandombytes.Base64Url(12)

	if password[0] == '-' {
		return GeneratePassword()
	}

	return password
}

package newmail

import (
	"text/template"
)

var subjectTmpl = template.Must(template.New("subject").Parse(
	`Deine E-Mail-Adresse {{.User}}`))

var bodyTmpl = template.Must(template.New("body").Parse(`Hallo,

du hast jetzt einen E-Mail-Account "{{.User}}" mit Passwort "{{.Password}}".
Bevor du dich einloggen kannst, musst du das Passwort unter <https://{{.Host}}/changepw> ändern.

{{if .Forward -}}
Eingehende Mails werden an deine Adresse {{.Forward}} weitergeleitet.
{{- else -}}
Der Zugriff auf das Postfach erfolgt via IMAP:
  Server: {{.Host}}
  Port:   {{.IMAPPort}}
  Verschlüsselung: STARTTLS
  Benutzername: {{.User}}
{{- end}}

Versenden kannst du Mails via SMTP:
  Server: {{.Host}}
  Port:   {{.SubmissionPort}}
  Verschlüsselung: STARTTLS
  Benutzername: {{.User}}

Bitte prüfe, ob das alles funktioniert. Bei Problemen kannst du dich gerne an mich wenden.

Viele Grüße,
{{.Signature}}`))

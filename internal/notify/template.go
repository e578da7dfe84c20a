package notify

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// ContactTemplate renders the e-mail sent to the site team for a contact
// form submission. Every submitted field is HTML-escaped.
func ContactTemplate(name, email, subject, message string, receivedAt time.Time) string {
	body := strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
	return fmt.Sprintf(`
		<html>
		<body>
			<h2>Pesan baru dari formulir kontak TaniPintar</h2>
			<p><strong>Nama:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Subjek:</strong> %s</p>
			<p><strong>Diterima:</strong> %s</p>
			<hr>
			<p>%s</p>
		</body>
		</html>
		`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(subject),
		receivedAt.Format("02/01/2006 15:04"),
		body,
	)
}

func contactSubject(subject string) string {
	if strings.TrimSpace(subject) == "" {
		return "[TaniPintar] Pesan kontak baru"
	}
	return "[TaniPintar] " + subject
}

package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/nvquaan/con-bo-cham-chi/internal/history"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Data is a snapshot of one session's history for export.
type Data struct {
	Username    string
	UserID      string
	GeneratedAt time.Time
	Entries     []history.Entry
}

// Succeeded counts accepted attempts.
func (d Data) Succeeded() int {
	n := 0
	for _, e := range d.Entries {
		if e.Succeeded() {
			n++
		}
	}
	return n
}

// Export writes data to path. The format follows the extension:
// .pdf, .html/.htm or .md.
func Export(path string, data Data) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return renderPDF(data, path)
	case ".html", ".htm":
		html, err := HTML(data)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(html), 0644)
	case ".md":
		return os.WriteFile(path, []byte(Markdown(data)), 0644)
	default:
		return fmt.Errorf("unsupported report format %q (use .pdf, .html or .md)", filepath.Ext(path))
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// DefaultName returns a file name for data's report with the given
// extension, e.g. "conbo-history-my-name-2024-03-05.pdf".
func DefaultName(data Data, ext string) string {
	slug := strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(data.Username), "-"), "-")
	if slug == "" {
		slug = "session"
	}
	return fmt.Sprintf("conbo-history-%s-%s%s", slug, data.GeneratedAt.Format("2006-01-02"), ext)
}

func status(e history.Entry) string {
	if e.Succeeded() {
		return "ok"
	}
	return "failed: " + e.Error
}

// Markdown renders data as a markdown document with one table row per entry.
func Markdown(data Data) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Attendance history: %s (%s)\n\n", data.Username, data.UserID)
	fmt.Fprintf(&b, "Generated %s. %d of %d attempts accepted.\n\n",
		data.GeneratedAt.Format("2006-01-02 15:04:05"), data.Succeeded(), len(data.Entries))

	if len(data.Entries) == 0 {
		b.WriteString("_No attempts recorded._\n")
		return b.String()
	}

	b.WriteString("| Submitted | Kind | Attendance time | Result |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, e := range data.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			e.CreatedAt.Format("15:04:05"),
			e.Kind.Label(),
			e.OccurredAt,
			strings.ReplaceAll(status(e), "|", `\|`),
		)
	}
	return b.String()
}

// HTML renders the markdown report to an HTML fragment.
func HTML(data Data) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(data)), &buf); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}

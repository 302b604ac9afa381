package bmfont

import (
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source provides the content of font description files.
type Source interface {
	ReadFile(path string) ([]byte, error)
}

// OSSource reads files from the host file system.
type OSSource struct{}

func (OSSource) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// FSSource reads files from FS, such as an embed.FS.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) ReadFile(path string) ([]byte, error) { return fs.ReadFile(s.FS, path) }

// decodeText returns data as UTF-8 text. A byte order mark, if any,
// is removed; UTF-16 content is detected from it.
func decodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", &FormatError{Reason: "invalid text encoding", Err: err}
	}
	return string(out), nil
}

// splitLines splits text on '\n', dropping the '\r' of CRLF line endings.
// A final newline does not start a new line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

package cli

import (
	"io"
	"os"
)

// readSQL reads SQL text from path, or from stdin if path is "" or
// "-".
func readSQL(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

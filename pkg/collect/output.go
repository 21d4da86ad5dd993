package collect

import (
	"bufio"
	"bytes"
	"fmt"
	"unicode/utf8"
)

// writeSection appends one file's section to the output: a header line
// naming the slash-separated relative path, the raw file content, and a
// blank line to separate it from the next section.
func writeSection(w *bufio.Writer, relPath string, content []byte) error {
	if _, err := fmt.Fprintf(w, "// file: %s:\n", relPath); err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	_, err := w.WriteString("\n\n")
	return err
}

// isTextContent reports whether data decodes as text. Content with NUL
// bytes or invalid UTF-8 sequences is treated as binary.
func isTextContent(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}

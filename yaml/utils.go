package yaml

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const previewLines = 20

// PrintFileOverview writes the first lines of a definitions file to w,
// numbered.
func PrintFileOverview(w io.Writer, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("❌ Error opening file: %v", err)
	}
	defer file.Close()

	fmt.Fprintf(w, "📄 Definitions Preview (first %d lines):\n", previewLines)
	fmt.Fprintln(w, strings.Repeat("-", 60))

	scanner := bufio.NewScanner(file)
	lineCount := 0
	for scanner.Scan() {
		fmt.Fprintf(w, "%2d | %s\n", lineCount+1, scanner.Text())
		lineCount++
		if lineCount >= previewLines {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("❌ Error reading file: %v", err)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))

	return nil
}

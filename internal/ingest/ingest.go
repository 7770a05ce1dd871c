// Package ingest turns raw corpus files into rank.Document records. It is
// glue around the ranking engine: one document per non-blank line, with
// the title and body separated by a tab.
package ingest

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nemanja-m/langrank/pkg/rank"
)

const (
	DefaultBufferSize = 1024 * 1024 // 1MB
)

// FindFiles expands a doublestar glob pattern and returns the matching
// regular files, sorted. Directories matched by the pattern are skipped.
func FindFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, match := range matches {
		info, err := os.Lstat(match)
		if err != nil {
			return nil, err
		}
		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}
	slices.Sort(files)
	return files, nil
}

// ReadDocuments parses one file into documents. Blank lines are skipped;
// a line without a tab separator is a parse error.
func ReadDocuments(filePath string, bufferSize ...int) ([]rank.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if len(bufferSize) == 0 {
		bufferSize = []int{DefaultBufferSize}
	}
	buffer := make([]byte, bufferSize[0])

	scanner := bufio.NewScanner(file)
	scanner.Buffer(buffer, bufferSize[0])

	var docs []rank.Document
	for number := 1; scanner.Scan(); number++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		title, body, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("%s:%d: expected title<TAB>body", filePath, number)
		}
		docs = append(docs, rank.Document{Title: title, Body: body})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// Load reads every document from the files matching pattern.
func Load(pattern string) ([]rank.Document, error) {
	files, err := FindFiles(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched the input pattern: %s", pattern)
	}

	var docs []rank.Document
	for _, file := range files {
		fileDocs, err := ReadDocuments(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

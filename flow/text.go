package flow

import (
	"bufio"
	"io"
	"strings"

	"github.com/robert-malhotra/go-bloodflow/internal/report"
)

// textFunc renders the lines of a plain-text dataset file.
type textFunc func(b *report.Builder, lines []string)

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

// readFilterTags renders the ';'-separated tags on the first line.
func readFilterTags(b *report.Builder, lines []string) {
	var tags []string
	if len(lines) > 0 {
		for _, t := range strings.Split(lines[0], ";") {
			if t != "" {
				tags = append(tags, t)
			}
		}
	}
	b.Linef("%d filter tags: %s", len(tags), strings.Join(tags, " "))
}

// readSegmentationInfo quotes each non-empty line.
func readSegmentationInfo(b *report.Builder, lines []string) {
	for _, l := range lines {
		if l != "" {
			b.Heading(`-> "` + l + `"`)
		}
	}
}

// readSectionSemantics copies each non-empty line.
func readSectionSemantics(b *report.Builder, lines []string) {
	for _, l := range lines {
		if l != "" {
			b.Heading(l)
		}
	}
}

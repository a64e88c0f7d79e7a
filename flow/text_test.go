package flow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-bloodflow/internal/report"
)

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("first\r\n\nsecond"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "", "second"}, lines)
}

func TestTextReaders(t *testing.T) {
	tests := []struct {
		name  string
		fn    textFunc
		lines []string
		want  string
	}{
		{"tags", readFilterTags, []string{"aorta;;4dflow;", "ignored"}, "- 2 filter tags: aorta 4dflow\n"},
		{"no tags", readFilterTags, nil, "- 0 filter tags: \n"},
		{"segmentation info", readSegmentationInfo,
			[]string{"The segmentation was performed on the LPC.", ""},
			"-> \"The segmentation was performed on the LPC.\"\n"},
		{"section semantics", readSectionSemantics,
			[]string{"0 ascending aorta", "", "1 aortic arch"},
			"0 ascending aorta\n1 aortic arch\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := report.New(0)
			tt.fn(b, tt.lines)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

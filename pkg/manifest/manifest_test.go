package manifest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/imgset/oiprep/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	entries := []manifest.Entry{
		{SourceRef: "s3://bucket/training/images/000002b66c9c498e.jpg"},
		{SourceRef: "s3://bucket/training/images/000002b97e5471a0.jpg"},
	}

	var buf bytes.Buffer
	err := manifest.Write(&buf, entries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(
		t,
		`{"source-ref":"s3://bucket/training/images/000002b66c9c498e.jpg"}`,
		lines[0],
	)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := manifest.Write(&buf, nil)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}

func TestRead(t *testing.T) {
	input := `{"source-ref":"s3://b/a.jpg"}

{"source-ref":"s3://b/c.jpg"}
`
	entries, err := manifest.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "s3://b/a.jpg", entries[0].SourceRef)
	assert.Equal(t, "s3://b/c.jpg", entries[1].SourceRef)
}

func TestReadMalformed(t *testing.T) {
	_, err := manifest.Read(strings.NewReader("{broken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed manifest line")
}

func TestRoundTrip(t *testing.T) {
	entries := []manifest.Entry{
		{SourceRef: "s3://b/1.jpg"},
		{SourceRef: "s3://b/2.jpg"},
		{SourceRef: "s3://b/3.jpg"},
	}
	var buf bytes.Buffer
	require.NoError(t, manifest.Write(&buf, entries))
	got, err := manifest.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestReadLabeled(t *testing.T) {
	input := `{"source-ref":"s3://b/a.jpg","object-detection":{"annotations":[{"class_id":0,"left":10,"top":20,"width":100,"height":50}]}}
{"source-ref":"s3://b/c.jpg"}
`
	entries, err := manifest.ReadLabeled(
		strings.NewReader(input), "object-detection",
	)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "s3://b/a.jpg", entries[0].SourceRef)
	require.Len(t, entries[0].Boxes, 1)
	box := entries[0].Boxes[0]
	assert.Equal(t, 0, box.ClassID)
	assert.Equal(t, 10.0, box.Left)
	assert.Equal(t, 20.0, box.Top)
	assert.Equal(t, 100.0, box.Width)
	assert.Equal(t, 50.0, box.Height)

	// Line without the task field yields a box-less entry.
	assert.Equal(t, "s3://b/c.jpg", entries[1].SourceRef)
	assert.Empty(t, entries[1].Boxes)
}

func TestReadLabeledWrongTask(t *testing.T) {
	input := `{"source-ref":"s3://b/a.jpg","other-task":{"annotations":[{"class_id":1,"left":0,"top":0,"width":1,"height":1}]}}
`
	entries, err := manifest.ReadLabeled(
		strings.NewReader(input), "object-detection",
	)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Boxes)
}

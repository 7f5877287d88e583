package taxonomy_test

import (
	"errors"
	"io"
	"testing"

	"github.com/imgset/oiprep/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource serves rows from a slice and counts how many rows were
// consumed.
type sliceSource struct {
	rows []taxonomy.Row
	pos  int
}

func (s *sliceSource) Next() (taxonomy.Row, error) {
	if s.pos >= len(s.rows) {
		return taxonomy.Row{}, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

type failSource struct{}

func (failSource) Next() (taxonomy.Row, error) {
	return taxonomy.Row{}, errors.New("disk error")
}

func descTable() []taxonomy.Row {
	return []taxonomy.Row{
		{ID: "/m/011k07", Name: "Tortoise"},
		{ID: "/m/0h9mv", Name: "Tire"},
		{ID: "/m/01jfm_", Name: "Vehicle registration plate"},
		{ID: "/m/07yv9", Name: "Vehicle"},
		{ID: "/m/0pg52", Name: "Taxi"},
	}
}

func TestResolveClasses(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    map[string]string
	}{
		{
			name:    "resolves single class",
			classes: []string{"Tire"},
			want:    map[string]string{"Tire": "/m/0h9mv"},
		},
		{
			name:    "resolves multiple classes",
			classes: []string{"Tire", "Vehicle registration plate"},
			want: map[string]string{
				"Tire":                       "/m/0h9mv",
				"Vehicle registration plate": "/m/01jfm_",
			},
		},
		{
			name:    "matches case-insensitively",
			classes: []string{"tire", "VEHICLE REGISTRATION PLATE"},
			want: map[string]string{
				"tire":                       "/m/0h9mv",
				"VEHICLE REGISTRATION PLATE": "/m/01jfm_",
			},
		},
		{
			name:    "no classes requested",
			classes: nil,
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &sliceSource{rows: descTable()}
			res, err := taxonomy.ResolveClasses(tt.classes, src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestResolveClassesEarlyStop(t *testing.T) {
	src := &sliceSource{rows: descTable()}
	_, err := taxonomy.ResolveClasses([]string{"Tire"}, src)
	require.NoError(t, err)

	// "Tire" is the second row; the last three rows must stay unread.
	assert.Equal(t, 2, src.pos)
}

func TestResolveClassesNotFound(t *testing.T) {
	src := &sliceSource{rows: descTable()}
	res, err := taxonomy.ResolveClasses(
		[]string{"Tire", "Unicorn", "Basilisk"}, src,
	)
	require.Error(t, err)
	assert.Nil(t, res)

	var notFound *taxonomy.ClassNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"Basilisk", "Unicorn"}, notFound.Names)
	assert.Contains(t, err.Error(), "Basilisk, Unicorn")
}

func TestResolveClassesSourceError(t *testing.T) {
	_, err := taxonomy.ResolveClasses([]string{"Tire"}, failSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read class table")

	var notFound *taxonomy.ClassNotFoundError
	assert.False(t, errors.As(err, &notFound))
}

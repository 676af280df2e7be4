package plover

import (
	"strings"
	"testing"

	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PloverJSONKeepsDocumentOrder(t *testing.T) {
	src := `{
  "KP-PL": "example",
  "KP-PLS": "examples",
  "KP-P": "example",
  "SKP": "and",
  "-G": "{^ing}",
  "TK-LS": "{^}",
  "R-R": "{#Return}",
  "PHRO*F": "{PLOVER:TOGGLE}",
  "*": "=undo"
}`
	b := lookup.NewBuilder()
	st, err := Load(strings.NewReader(src), ports.FormatPlover, "main.json", b)
	require.NoError(t, err)

	assert.Equal(t, 9, st.Entries)
	assert.Equal(t, 4, st.Commands)
	assert.Equal(t, 5, st.Added)

	d := b.Snapshot()
	assert.Equal(t, []ports.Stroke{"KP-PL", "KP-P"}, d.Strokes("example"))
	assert.Equal(t, []ports.Stroke{"-G"}, d.Strokes("{^ing}"))

	cands := d.Lookup("and")
	require.Len(t, cands, 1)
	assert.Equal(t, "main.json", cands[0].Source)
}

func TestLoad_PloverJSONRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not an object":   `["KP-PL"]`,
		"non-string":      `{"KP-PL": 3}`,
		"truncated":       `{"KP-PL": "example"`,
		"empty input":     ``,
		"trailing object": `{"KP-PL": "example",}`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(src), ports.FormatPlover, "bad.json", lookup.NewBuilder())
			assert.Error(t, err)
		})
	}
}

func TestLoad_TSV(t *testing.T) {
	src := "example\tKP-PL\r\nconsisting of\tKAOFG/OF\n\nno tab here\nempty stroke\t \nextra\tEBGS/TRA\tignored\n"
	b := lookup.NewBuilder()
	st, err := Load(strings.NewReader(src), ports.FormatTSV, "lesson.tsv", b)
	require.NoError(t, err)

	assert.Equal(t, 3, st.Entries)
	assert.Equal(t, 3, st.Skipped)

	d := b.Snapshot()
	assert.Equal(t, []ports.Stroke{"KP-PL"}, d.Strokes("example"))
	assert.Equal(t, []ports.Stroke{"KAOFG/OF"}, d.Strokes("consisting of"))
	assert.Equal(t, []ports.Stroke{"EBGS/TRA"}, d.Strokes("extra"))
}

func TestLoad_DuplicatePairsAcrossSources(t *testing.T) {
	b := lookup.NewBuilder()
	_, err := Load(strings.NewReader(`{"KP-PL": "example"}`), ports.FormatPlover, "a.json", b)
	require.NoError(t, err)
	st, err := Load(strings.NewReader("example\tKP-PL\nexample\tKP-P\n"), ports.FormatTSV, "b.tsv", b)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Entries)
	assert.Equal(t, 1, st.Added)

	cands := b.Snapshot().Lookup("example")
	require.Len(t, cands, 2)
	assert.Equal(t, "a.json", cands[0].Source, "earlier source keeps priority")
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := Load(strings.NewReader(""), "yaml", "x", lookup.NewBuilder())
	assert.ErrorIs(t, err, ports.ErrInvalidSource)
}

func TestIsCommand(t *testing.T) {
	commands := []string{"{^}", "{^^}", "{#Return}", "{#control(z)}", "{PLOVER:TOGGLE}", "{plover:add_translation}", "{MODE:CAPS}", "{*-|}", "{-|}", "{}", "=undo", ""}
	for _, c := range commands {
		assert.True(t, IsCommand(c), c)
	}
	text := []string{"example", "{&a}", "{^ing}", "{pre^}", "{.}", "{,}", "it's", "{^}{#Return}{^}"}
	for _, s := range text {
		assert.False(t, IsCommand(s), s)
	}
}

package lookup

import (
	"testing"

	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_KeepsRegistrationOrder(t *testing.T) {
	b := NewBuilder()
	assert.True(t, b.Add("example", "KP-PL", "typey-type.json"))
	assert.True(t, b.Add("example", "KPAPL", "main.json"))

	d := b.Snapshot()
	assert.Equal(t, []ports.Stroke{"KP-PL", "KPAPL"}, d.Strokes("example"))
	assert.Equal(t, "typey-type.json", d.Lookup("example")[0].Source)
}

func TestBuilder_IgnoresDuplicatesAndEmpties(t *testing.T) {
	b := NewBuilder()
	assert.True(t, b.Add("the", "-T", "a"))
	assert.False(t, b.Add("the", "-T", "b"), "repeat of a registered pair")
	assert.False(t, b.Add("", "-T", "a"))
	assert.False(t, b.Add("the", "", "a"))

	d := b.Snapshot()
	require.Len(t, d.Lookup("the"), 1)
	assert.Equal(t, "a", d.Lookup("the")[0].Source, "first registration keeps its place")
}

func TestSnapshot_IsolatedFromLaterAdds(t *testing.T) {
	b := NewBuilder()
	b.Add("cat", "KAT", "")
	first := b.Snapshot()

	b.Add("cat", "KA*T", "")
	b.Add("dog", "TKOG", "")
	second := b.Snapshot()

	assert.Equal(t, 1, first.Size())
	assert.Equal(t, []ports.Stroke{"KAT"}, first.Strokes("cat"))
	assert.Equal(t, 2, second.Size())
	assert.Equal(t, []ports.Stroke{"KAT", "KA*T"}, second.Strokes("cat"))
	assert.Greater(t, second.Version(), first.Version())
}

func TestSnapshot_VersionsIncreaseAcrossBuilders(t *testing.T) {
	a := NewBuilder().Snapshot()
	b := NewBuilder().Snapshot()
	assert.Greater(t, b.Version(), a.Version())
}

func TestDictionary_NilIsEmpty(t *testing.T) {
	var d *Dictionary
	assert.Equal(t, 0, d.Size())
	assert.Equal(t, uint64(0), d.Version())
	assert.False(t, d.Ready())
	assert.Nil(t, d.Lookup("x"))
	assert.Nil(t, d.Strokes("x"))
	_, ok := d.Resolve("x", nil)
	assert.False(t, ok)
	assert.NotPanics(t, func() { d.Range(func(string, []Candidate) bool { return true }) })
}

func TestDictionary_Ready(t *testing.T) {
	assert.False(t, FromMap(nil).Ready())
	assert.False(t, FromMap(map[string][]string{"a": {"A"}}).Ready())
	assert.True(t, FromMap(map[string][]string{"a": {"A"}, "b": {"B"}}).Ready())
}

func TestDictionary_LookupIsCaseSensitive(t *testing.T) {
	d := FromMap(map[string][]string{"Plover": {"PHRO*EFR"}})
	assert.Nil(t, d.Lookup("plover"))
	assert.NotNil(t, d.Lookup("Plover"))
}

func TestDictionary_LookupReturnsCopy(t *testing.T) {
	d := FromMap(map[string][]string{"cat": {"KAT"}})
	got := d.Lookup("cat")
	got[0].Stroke = "XXX"
	assert.Equal(t, []ports.Stroke{"KAT"}, d.Strokes("cat"))
}

func TestDictionary_Resolve(t *testing.T) {
	d := FromMap(map[string][]string{"examples.": {"KP-PLS TP-PL", "KP-PLS/TP-PL"}})

	s, ok := d.Resolve("examples.", nil)
	require.True(t, ok)
	assert.Equal(t, ports.Stroke("KP-PLS TP-PL"), s)

	_, ok = d.Resolve("missing", FirstRegistered)
	assert.False(t, ok)
}

package progress

import (
	"testing"

	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	tr := New()
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Words())
}

func TestRecord_CountsAndOrder(t *testing.T) {
	tr := New()
	tr.Record(" the", " cat", " the", " sat", "")

	words := tr.Words()
	require.Len(t, words, 3)
	assert.Equal(t, " the", words[0].Word)
	assert.Equal(t, uint32(2), words[0].Count)
	assert.Equal(t, " cat", words[1].Word, "equal counts keep first-met order")
	assert.Equal(t, " sat", words[2].Word)
}

func TestMeet_DoesNotCount(t *testing.T) {
	tr := New()
	assert.True(t, tr.Meet("example"))
	assert.False(t, tr.Meet("example"))

	w, ok := tr.Get("example")
	require.True(t, ok)
	assert.Equal(t, uint32(0), w.Count)
	assert.Equal(t, ports.CategoryNew, w.Category())
}

func TestNewFromWords_ContinuesSequence(t *testing.T) {
	tr := NewFromWords([]ports.MetWord{
		{Word: "a", Count: 3, Seq: 0},
		{Word: "b", Count: 1, Seq: 4},
		{Word: "a", Count: 2, Seq: 7},
	})
	a, _ := tr.Get("a")
	assert.Equal(t, uint32(5), a.Count)
	assert.Equal(t, uint64(0), a.Seq)

	tr.Record("c")
	c, _ := tr.Get("c")
	assert.Equal(t, uint64(8), c.Seq)
}

func TestCategories(t *testing.T) {
	tests := []struct {
		count uint32
		want  ports.Category
	}{
		{0, ports.CategoryNew},
		{1, ports.CategorySeen},
		{29, ports.CategorySeen},
		{30, ports.CategoryRetained},
		{500, ports.CategoryRetained},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ports.MetWord{Word: "x", Count: tt.count}.Category(), "count %d", tt.count)
	}
}

func TestFilterAndSummarize(t *testing.T) {
	words := []ports.MetWord{
		{Word: "retained", Count: 40, Seq: 2},
		{Word: "seen", Count: 3, Seq: 1},
		{Word: "new", Count: 0, Seq: 0},
	}

	assert.Len(t, Filter(words), 3)
	seen := Filter(words, ports.CategorySeen, ports.CategoryRetained)
	require.Len(t, seen, 2)
	assert.Equal(t, "retained", seen[0].Word)

	assert.Equal(t, Summary{New: 1, Seen: 1, Retained: 1}, Summarize(words))
}

func TestSort_StableOnSeq(t *testing.T) {
	words := []ports.MetWord{
		{Word: "b", Count: 1, Seq: 5},
		{Word: "a", Count: 1, Seq: 2},
		{Word: "c", Count: 9, Seq: 9},
	}
	Sort(words)
	assert.Equal(t, []string{"c", "a", "b"}, []string{words[0].Word, words[1].Word, words[2].Word})
}

func TestSummarize_RetainedAtThreshold(t *testing.T) {
	s := Summarize([]ports.MetWord{
		{Word: "a", Count: 0},
		{Word: "b", Count: ports.RetainedThreshold - 1},
		{Word: "c", Count: ports.RetainedThreshold},
		{Word: "d", Count: ports.RetainedThreshold + 1},
	})
	assert.Equal(t, Summary{New: 1, Seen: 1, Retained: 2}, s)
}

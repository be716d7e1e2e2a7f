package encoder

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/kanjiffnn/datasets/kanjiradical"
)

func fixture() kanjiradical.EnglishToRadicals {
	return kanjiradical.EnglishToRadicals{
		"volcano": {"fire", "mountain"},
		"forest":  {"tree", "wood"},
		"fire":    {"fire"},
		"unknown": {},
	}
}

func TestEncodeCounts(t *testing.T) {
	inputs, targets, englishVocab, radicalVocab := Encode(fixture())

	assert.Len(t, inputs, 4)
	assert.Len(t, targets, 4)
	assert.Len(t, englishVocab, 4)
	assert.Len(t, radicalVocab, 4)
}

func TestEncodeVocabulariesSorted(t *testing.T) {
	_, _, englishVocab, radicalVocab := Encode(fixture())

	assert.True(t, sort.StringsAreSorted(englishVocab))
	assert.True(t, sort.StringsAreSorted(radicalVocab))
	assert.Equal(t, []string{"fire", "forest", "unknown", "volcano"}, englishVocab)
	assert.Equal(t, []string{"fire", "mountain", "tree", "wood"}, radicalVocab)
}

// for each word, the single nonzero input index maps back to the word
func TestEncodeOneHotRoundTrip(t *testing.T) {
	inputs, _, englishVocab, _ := Encode(fixture())

	for i, input := range inputs {
		nonzero := -1
		for j := 0; j < input.Len(); j++ {
			switch input.AtVec(j) {
			case 0:
			case 1:
				require.Equal(t, -1, nonzero, "second nonzero entry in row %d", i)
				nonzero = j
			default:
				t.Fatalf("entry %v in row %d is neither 0 nor 1", input.AtVec(j), i)
			}
		}
		require.NotEqual(t, -1, nonzero, "row %d has no nonzero entry", i)
		assert.Equal(t, englishVocab[i], englishVocab[nonzero])
	}
}

func TestEncodeMultiHotCorrectness(t *testing.T) {
	mapping := fixture()
	_, targets, englishVocab, radicalVocab := Encode(mapping)

	for i, word := range englishVocab {
		want := map[string]struct{}{}
		for _, radical := range mapping[word] {
			want[radical] = struct{}{}
		}
		got := map[string]struct{}{}
		for j := 0; j < targets[i].Len(); j++ {
			switch targets[i].AtVec(j) {
			case 0:
			case 1:
				got[radicalVocab[j]] = struct{}{}
			default:
				t.Fatalf("entry %v in target %d is neither 0 nor 1", targets[i].AtVec(j), i)
			}
		}
		assert.Equal(t, want, got, "word %q", word)
	}
}

func TestEncodeEmptyRadicalListIsAllZero(t *testing.T) {
	_, targets, englishVocab, _ := Encode(fixture())

	for i, word := range englishVocab {
		if word != "unknown" {
			continue
		}
		for j := 0; j < targets[i].Len(); j++ {
			assert.Equal(t, 0.0, targets[i].AtVec(j))
		}
	}
}

// words whose kanji all lack radical entries are valid input, so an
// all empty mapping must encode to zero length targets, not crash
func TestEncodeAllEmptyRadicalLists(t *testing.T) {
	inputs, targets, englishVocab, radicalVocab := Encode(kanjiradical.EnglishToRadicals{
		"mystery": {},
		"unknown": {},
	})

	require.Len(t, inputs, 2)
	require.Len(t, targets, 2)
	assert.Equal(t, []string{"mystery", "unknown"}, englishVocab)
	assert.Empty(t, radicalVocab)
	for i, input := range inputs {
		assert.Equal(t, 1.0, input.AtVec(i))
	}
	for _, target := range targets {
		assert.Equal(t, 0, target.Len())
	}
}

func TestEncodeEmptyMapping(t *testing.T) {
	inputs, targets, englishVocab, radicalVocab := Encode(kanjiradical.EnglishToRadicals{})

	assert.Empty(t, inputs)
	assert.Empty(t, targets)
	assert.Empty(t, englishVocab)
	assert.Empty(t, radicalVocab)
}

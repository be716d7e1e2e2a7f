package kanjiradical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKeySetMatchesInput(t *testing.T) {
	kanjiToRadicals := KanjiToRadicals{
		"火": {"fire"},
		"山": {"mountain"},
	}
	englishToKanji := EnglishToKanji{
		"volcano": {"火", "山"},
		"unknown": {"?"},
		"empty":   {},
	}

	got := Build(kanjiToRadicals, englishToKanji)

	require.Len(t, got, len(englishToKanji))
	for word := range englishToKanji {
		_, ok := got[word]
		assert.True(t, ok, "word %q missing from derived mapping", word)
	}
}

func TestBuildDuplicateKanjiCollapses(t *testing.T) {
	kanjiToRadicals := KanjiToRadicals{
		"火": {"fire"},
		"木": {"tree", "wood"},
	}
	englishToKanji := EnglishToKanji{
		"forest": {"木", "木"},
	}

	got := Build(kanjiToRadicals, englishToKanji)

	assert.Equal(t, EnglishToRadicals{"forest": {"tree", "wood"}}, got)
}

func TestBuildMissingKanjiYieldsEmptyList(t *testing.T) {
	kanjiToRadicals := KanjiToRadicals{"火": {"fire"}}
	englishToKanji := EnglishToKanji{"unknown": {"?"}}

	got := Build(kanjiToRadicals, englishToKanji)

	require.Contains(t, got, "unknown")
	assert.Empty(t, got["unknown"])
	assert.NotNil(t, got["unknown"])
}

func TestBuildFirstSeenOrder(t *testing.T) {
	kanjiToRadicals := KanjiToRadicals{
		"明": {"sun", "moon"},
		"日": {"sun"},
		"月": {"moon"},
	}
	englishToKanji := EnglishToKanji{
		"bright":  {"明", "月", "日"},
		"moonlit": {"月", "明"},
	}

	got := Build(kanjiToRadicals, englishToKanji)

	assert.Equal(t, []string{"sun", "moon"}, got["bright"])
	assert.Equal(t, []string{"moon", "sun"}, got["moonlit"])
}

func TestBuildNoDuplicateRadicals(t *testing.T) {
	kanjiToRadicals := KanjiToRadicals{
		"林": {"tree"},
		"森": {"tree"},
		"本": {"tree", "one"},
	}
	englishToKanji := EnglishToKanji{
		"woods": {"森", "林", "本"},
	}

	got := Build(kanjiToRadicals, englishToKanji)

	seen := map[string]int{}
	for _, radical := range got["woods"] {
		seen[radical]++
	}
	for radical, count := range seen {
		assert.Equal(t, 1, count, "radical %q appears %d times", radical, count)
	}
	assert.Equal(t, []string{"tree", "one"}, got["woods"])
}

func TestBuildRadicalsTraceToKanji(t *testing.T) {
	kanjiToRadicals := KanjiToRadicals{
		"電": {"rain", "field"},
		"話": {"speech", "tongue"},
	}
	englishToKanji := EnglishToKanji{
		"telephone": {"電", "話"},
	}

	got := Build(kanjiToRadicals, englishToKanji)

	for _, radical := range got["telephone"] {
		traced := false
		for _, kanji := range englishToKanji["telephone"] {
			for _, r := range kanjiToRadicals[kanji] {
				if r == radical {
					traced = true
				}
			}
		}
		assert.True(t, traced, "radical %q does not trace to any kanji", radical)
	}
}

func TestBuildIdempotent(t *testing.T) {
	kanjiToRadicals := KanjiToRadicals{
		"火": {"fire"},
		"山": {"mountain"},
		"木": {"tree", "wood"},
	}
	englishToKanji := EnglishToKanji{
		"volcano": {"火", "山"},
		"forest":  {"木", "木"},
	}

	first := Build(kanjiToRadicals, englishToKanji)
	second := Build(kanjiToRadicals, englishToKanji)

	assert.Equal(t, first, second)
}

func TestLoad(t *testing.T) {
	got, err := Load("testdata")
	require.NoError(t, err)

	assert.Equal(t, []string{"fire", "mountain"}, got["volcano"])
	assert.Equal(t, []string{"tree", "wood"}, got["forest"])
	assert.Empty(t, got["unknown"])
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load("testdata/no_such_dir")
	assert.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	_, err := LoadKanjiToRadicals("testdata/bad.json")
	assert.Error(t, err)
}

// sanity check fuzz: key set equality and no duplicate radicals must hold
// for any pair of tables
func FuzzBuild(f *testing.F) {
	f.Add("forest", "木", "tree", "wood")
	f.Add("fire", "火", "fire", "fire")
	f.Add("", "", "", "")
	f.Fuzz(func(t *testing.T, word, kanji, radicalA, radicalB string) {
		kanjiToRadicals := KanjiToRadicals{kanji: {radicalA, radicalB, radicalA}}
		englishToKanji := EnglishToKanji{word: {kanji, kanji}, "other": {"?"}}

		got := Build(kanjiToRadicals, englishToKanji)

		if len(got) != len(englishToKanji) {
			t.Errorf("key count %d != %d", len(got), len(englishToKanji))
		}
		for w, radicals := range got {
			seen := map[string]struct{}{}
			for _, r := range radicals {
				if _, dup := seen[r]; dup {
					t.Errorf("duplicate radical %q for word %q", r, w)
				}
				seen[r] = struct{}{}
			}
		}
	})
}

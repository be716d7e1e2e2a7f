package kanjiradical

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Resource filenames inside a data directory, as shipped under data/.
const (
	KanjiToRadicalsFile = "kanji_to_radical.json"
	EnglishToKanjiFile  = "english_to_kanji.json"
)

// KanjiToRadicals maps a single kanji character to its radical components.
// The lookup may be partial; kanji without an entry are skipped by Build.
type KanjiToRadicals map[string][]string

// EnglishToKanji maps an English word to its kanji spelling, in order.
type EnglishToKanji map[string][]string

// EnglishToRadicals maps an English word to the unique radicals of its
// kanji, in first seen order.
type EnglishToRadicals map[string][]string

// Build composes the two lookup tables into the derived mapping. For each
// English word the radicals of its kanji are appended in first seen order,
// skipping radicals already present and kanji without a radical entry.
// Every key of englishToKanji appears in the result; a word whose kanji
// all lack radical entries maps to an empty list, never a missing key.
func Build(kanjiToRadicals KanjiToRadicals, englishToKanji EnglishToKanji) EnglishToRadicals {
	out := make(EnglishToRadicals, len(englishToKanji))
	for word, kanjiSeq := range englishToKanji {
		radicals := []string{}
		seen := make(map[string]struct{})
		for _, kanji := range kanjiSeq {
			for _, radical := range kanjiToRadicals[kanji] {
				if _, ok := seen[radical]; ok {
					continue
				}
				seen[radical] = struct{}{}
				radicals = append(radicals, radical)
			}
		}
		out[word] = radicals
	}
	return out
}

// LoadKanjiToRadicals reads the kanji to radicals table from a JSON file.
func LoadKanjiToRadicals(path string) (KanjiToRadicals, error) {
	m, err := loadJSONMap(path)
	return KanjiToRadicals(m), err
}

// LoadEnglishToKanji reads the English to kanji table from a JSON file.
func LoadEnglishToKanji(path string) (EnglishToKanji, error) {
	m, err := loadJSONMap(path)
	return EnglishToKanji(m), err
}

// Load reads both resources from dir using the standard filenames and
// returns the derived English to radicals mapping.
func Load(dir string) (EnglishToRadicals, error) {
	kanjiToRadicals, err := LoadKanjiToRadicals(filepath.Join(dir, KanjiToRadicalsFile))
	if err != nil {
		return nil, err
	}
	englishToKanji, err := LoadEnglishToKanji(filepath.Join(dir, EnglishToKanjiFile))
	if err != nil {
		return nil, err
	}
	return Build(kanjiToRadicals, englishToKanji), nil
}

func loadJSONMap(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var m map[string][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return m, nil
}

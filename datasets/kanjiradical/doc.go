// Package kanjiradical derives the English word to kanji radical dataset
// used to train the radical prediction network. It composes two JSON lookup
// tables, kanji to radicals and English to kanji, into an English to
// radicals mapping with order preserving radical deduplication per word.
package kanjiradical

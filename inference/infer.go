// Package inference implements the inference stage of the radical
// prediction network: vocabulary lookups over encoded vectors and decoding
// of predictions back into radical labels.
package inference

import (
	"github.com/pkg/errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNotFound reports a word missing from a vocabulary or an encoded
// vector missing for a word.
var ErrNotFound = errors.New("not found")

// Model is a trained forward pass from a one hot word vector to radical
// activations.
type Model interface {
	Predict(x *mat.VecDense) *mat.VecDense
}

// TensorForWord returns the encoded one hot row for word. The word must be
// in englishVocab and one of inputs must carry its one hot bit at the
// word's vocabulary index; otherwise the error wraps ErrNotFound. It never
// returns a default vector.
func TensorForWord(word string, inputs []*mat.VecDense, englishVocab []string) (*mat.VecDense, error) {
	wordToIdx := make(map[string]int, len(englishVocab))
	for i, w := range englishVocab {
		wordToIdx[w] = i
	}
	idx, ok := wordToIdx[word]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "word %q is not in the vocabulary", word)
	}
	for _, input := range inputs {
		if idx < input.Len() && input.AtVec(idx) == 1 {
			return input, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "no encoded vector for word %q", word)
}

// OneHot builds the one hot vector for word over englishVocab without
// consulting encoded rows. Used where only a stored vocabulary is
// available, such as inference from a persisted model.
func OneHot(word string, englishVocab []string) (*mat.VecDense, error) {
	for i, w := range englishVocab {
		if w == word {
			v := mat.NewVecDense(len(englishVocab), nil)
			v.SetVec(i, 1)
			return v, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "word %q is not in the vocabulary", word)
}

// Radicals runs the model on x and decodes every radical whose activation
// reaches threshold, in vocabulary order.
func Radicals(m Model, x *mat.VecDense, radicalVocab []string, threshold float64) []string {
	y := m.Predict(x)
	var out []string
	for i := 0; i < y.Len() && i < len(radicalVocab); i++ {
		if y.AtVec(i) >= threshold {
			out = append(out, radicalVocab[i])
		}
	}
	return out
}

package encoder

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/neurlang/kanjiffnn/datasets/kanjiradical"
)

// Encode builds one hot input vectors and multi hot target vectors from
// the derived mapping. Both vocabularies are sorted lexicographically, so
// row i of inputs and targets corresponds to englishVocab[i] and the
// one hot bit of inputs[i] sits at index i. All entries are exactly 1 or 0.
func Encode(englishToRadicals kanjiradical.EnglishToRadicals) (inputs, targets []*mat.VecDense, englishVocab, radicalVocab []string) {
	englishVocab = make([]string, 0, len(englishToRadicals))
	for word := range englishToRadicals {
		englishVocab = append(englishVocab, word)
	}
	sort.Strings(englishVocab)

	radicalSeen := make(map[string]struct{})
	for _, radicals := range englishToRadicals {
		for _, radical := range radicals {
			if _, ok := radicalSeen[radical]; !ok {
				radicalSeen[radical] = struct{}{}
				radicalVocab = append(radicalVocab, radical)
			}
		}
	}
	sort.Strings(radicalVocab)

	radicalIndex := make(map[string]int, len(radicalVocab))
	for i, radical := range radicalVocab {
		radicalIndex[radical] = i
	}

	for i, word := range englishVocab {
		input := mat.NewVecDense(len(englishVocab), nil)
		input.SetVec(i, 1)
		inputs = append(inputs, input)

		// gonum has no zero length vectors; when every radical list is
		// empty the targets are the empty VecDense value
		target := &mat.VecDense{}
		if len(radicalVocab) > 0 {
			target = mat.NewVecDense(len(radicalVocab), nil)
			for _, radical := range englishToRadicals[word] {
				target.SetVec(radicalIndex[radical], 1)
			}
		}
		targets = append(targets, target)
	}

	if len(inputs) != len(targets) {
		panic(fmt.Sprintf("encoder: %d input vectors for %d target vectors", len(inputs), len(targets)))
	}
	return inputs, targets, englishVocab, radicalVocab
}

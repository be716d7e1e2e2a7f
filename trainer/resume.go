package trainer

import (
	"slices"

	"go.uber.org/zap"

	"github.com/neurlang/kanjiffnn/net/feedforward"
)

// Resume loads previously persisted weights when resume is set and a model
// path was given. Returns the restored network with its vocabularies, or
// ok false when there is nothing to resume from.
func Resume(resume *bool, dstmodel *string, logger *zap.Logger) (net *feedforward.Network, englishVocab, radicalVocab []string, ok bool) {
	if resume == nil || !*resume || dstmodel == nil || *dstmodel == "" {
		return nil, nil, nil, false
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	net, englishVocab, radicalVocab, err := feedforward.ReadZlibWeightsFromFile(*dstmodel)
	if err != nil {
		logger.Warn("could not resume, training from scratch", zap.Error(err))
		return nil, nil, nil, false
	}
	return net, englishVocab, radicalVocab, true
}

// Matches reports whether a resumed model's vocabularies are the
// dataset's, element for element. Matching lengths are not enough; a
// stale model over a different word set of the same size would be reused
// with misaligned indices.
func Matches(savedEnglish, savedRadical, englishVocab, radicalVocab []string) bool {
	return slices.Equal(savedEnglish, englishVocab) && slices.Equal(savedRadical, radicalVocab)
}

// Package encoder turns the derived English to radicals mapping into the
// fixed width float vectors consumed by the network: a one hot input per
// English word and a multi hot target per radical set, plus the two
// vocabularies fixing the index to label correspondence.
package encoder

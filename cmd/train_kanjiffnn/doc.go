// Package main provides the training program for the English word to
// kanji radical network. It derives the word to radical dataset from the
// two JSON resources, trains the two layer network with SGD and writes the
// learned weights to disk.
package main

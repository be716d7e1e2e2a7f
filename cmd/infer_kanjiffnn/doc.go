// Package main provides the lookup program for a trained radical network.
// It loads persisted weights with their vocabularies and prints the
// predicted radicals for one English word.
package main

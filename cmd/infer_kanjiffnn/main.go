package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/neurlang/kanjiffnn/inference"
	"github.com/neurlang/kanjiffnn/net/feedforward"
)

func main() {
	model := flag.String("model", "kanjiffnn.json.zlib", "trained model .json.zlib file")
	word := flag.String("word", "", "English word to look up")
	threshold := flag.Float64("threshold", 0.5, "radical activation threshold")
	flag.Parse()

	if *word == "" {
		fmt.Fprintln(os.Stderr, "usage: infer_kanjiffnn -word <english word> [-model <file>] [-threshold <0..1>]")
		os.Exit(2)
	}

	net, englishVocab, radicalVocab, err := feedforward.ReadZlibWeightsFromFile(*model)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	x, err := inference.OneHot(*word, englishVocab)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	radicals := inference.Radicals(net, x, radicalVocab, *threshold)
	if len(radicals) == 0 {
		fmt.Println("(no radicals above threshold)")
		return
	}
	fmt.Println(strings.Join(radicals, " "))
}

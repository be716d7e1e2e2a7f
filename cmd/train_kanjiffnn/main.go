package main

import (
	"flag"
	"math/rand"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/neurlang/kanjiffnn/config"
	"github.com/neurlang/kanjiffnn/datasets/kanjiradical"
	"github.com/neurlang/kanjiffnn/encoder"
	"github.com/neurlang/kanjiffnn/inference"
	"github.com/neurlang/kanjiffnn/learning"
	"github.com/neurlang/kanjiffnn/net/feedforward"
	"github.com/neurlang/kanjiffnn/trainer"
	"github.com/neurlang/kanjiffnn/util"
)

func main() {
	cfg := config.Load()

	datadir := flag.String("datadir", cfg.Data.Dir, "directory with the two JSON resources")
	dstmodel := flag.String("dstmodel", cfg.Training.ModelPath, "model destination .json.zlib file")
	epochs := flag.Int("epochs", cfg.Training.Epochs, "training epochs")
	nodes := flag.Int("nodes", cfg.Training.HiddenNodes, "hidden layer size")
	lr := flag.Float64("lr", cfg.Training.LearningRate, "SGD learning rate")
	lrstep := flag.Int("lrstep", 0, "epochs between learning rate decays, 0 disables")
	lrgamma := flag.Float64("lrgamma", 0.5, "learning rate decay factor")
	seed := flag.Int64("seed", cfg.Training.Seed, "weight init seed")
	threshold := flag.Float64("threshold", 0.5, "radical activation threshold for evaluation")
	plotfile := flag.String("plot", "", "write a loss curve PNG to this file")
	resume := flag.Bool("resume", false, "resume training")
	verbose := flag.Bool("verbose", false, "log training progress")
	flag.Parse()

	logger := util.NewLogger(cfg.Logging.Level)
	defer logger.Sync()

	logger.Info("starting",
		zap.String("cpu", cpuid.CPU.BrandName),
		zap.Int("cores", cpuid.CPU.LogicalCores))

	kanjiToRadicals, err := kanjiradical.LoadKanjiToRadicals(filepath.Join(*datadir, kanjiradical.KanjiToRadicalsFile))
	if err != nil {
		logger.Fatal("loading kanji to radicals", zap.Error(err))
	}
	englishToKanji, err := kanjiradical.LoadEnglishToKanji(filepath.Join(*datadir, kanjiradical.EnglishToKanjiFile))
	if err != nil {
		logger.Fatal("loading english to kanji", zap.Error(err))
	}

	englishToRadicals := kanjiradical.Build(kanjiToRadicals, englishToKanji)
	inputs, targets, englishVocab, radicalVocab := encoder.Encode(englishToRadicals)
	logger.Info("dataset encoded",
		zap.Int("words", len(englishVocab)),
		zap.Int("radicals", len(radicalVocab)))

	net := feedforward.New(len(englishVocab), *nodes, len(radicalVocab), rand.New(rand.NewSource(*seed)))
	if prev, prevEnglish, prevRadical, ok := trainer.Resume(resume, dstmodel, logger); ok {
		if trainer.Matches(prevEnglish, prevRadical, englishVocab, radicalVocab) {
			net = prev
			logger.Info("resumed", zap.String("model", *dstmodel))
		} else {
			logger.Warn("saved model does not match the dataset, training from scratch")
		}
	}

	opt := learning.NewSGD(net.Parameters(), *lr)
	var sched learning.Scheduler
	if *lrstep > 0 {
		sched = learning.NewStepLR(opt, *lrstep, *lrgamma)
	}

	trainLogger := zap.NewNop()
	if *verbose {
		trainLogger = logger
	}
	losses := trainer.Train(net, inputs, targets, opt, nil, *epochs, sched, trainLogger)
	if len(losses) > 0 {
		logger.Info("training done", zap.Float64("loss", losses[len(losses)-1]))
	}

	exact := evaluate(net, inputs, englishVocab, radicalVocab, englishToRadicals, *threshold)
	logger.Info("evaluation",
		zap.Int64("exact", exact),
		zap.Int("words", len(inputs)))

	if *dstmodel != "" {
		if err := net.WriteZlibWeightsToFile(*dstmodel, englishVocab, radicalVocab); err != nil {
			logger.Fatal("writing model", zap.Error(err))
		}
		logger.Info("model written", zap.String("path", *dstmodel))
	}

	if *plotfile != "" {
		if err := plotLosses(losses, *plotfile); err != nil {
			logger.Warn("writing loss plot", zap.Error(err))
		}
	}
}

// evaluate counts the words whose decoded prediction matches the derived
// radical set exactly. Prediction uses the pure forward pass, so the
// fan out over words is safe.
func evaluate(net *feedforward.Network, inputs []*mat.VecDense, englishVocab, radicalVocab []string, englishToRadicals kanjiradical.EnglishToRadicals, threshold float64) int64 {
	var exact atomic.Int64
	p := pool.New().WithMaxGoroutines(runtime.NumCPU())
	for i := range inputs {
		i := i
		p.Go(func() {
			got := inference.Radicals(net, inputs[i], radicalVocab, threshold)
			if sameSet(got, englishToRadicals[englishVocab[i]]) {
				exact.Add(1)
			}
		})
	}
	p.Wait()
	return exact.Load()
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func plotLosses(losses []float64, path string) error {
	p := plot.New()
	p.Title.Text = "training loss"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "mse"

	pts := make(plotter.XYs, len(losses))
	for i, loss := range losses {
		pts[i].X = float64(i + 1)
		pts[i].Y = loss
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

package feedforward

import (
	"compress/zlib"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"gonum.org/v1/gonum/mat"
)

type modelJSON struct {
	Nodes        int         `json:"nodes"`
	EnglishVocab []string    `json:"english_vocab"`
	RadicalVocab []string    `json:"radical_vocab"`
	W1           [][]float64 `json:"w1"`
	B1           []float64   `json:"b1"`
	W2           [][]float64 `json:"w2"`
	B2           []float64   `json:"b2"`
}

// WriteZlibWeightsToFile writes the model weights and both vocabularies to
// a zlib compressed JSON file.
func (n *Network) WriteZlibWeightsToFile(name string, englishVocab, radicalVocab []string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = n.WriteZlibWeights(file, englishVocab, radicalVocab)
	file.Close()
	return err
}

// WriteZlibWeights writes the model weights and both vocabularies to a
// writer.
func (n *Network) WriteZlibWeights(w io.Writer, englishVocab, radicalVocab []string) error {
	_, nodes, _ := n.Dims()
	m := modelJSON{
		Nodes:        nodes,
		EnglishVocab: englishVocab,
		RadicalVocab: radicalVocab,
		W1:           matrixRows(n.w1.Value),
		B1:           columnOf(n.b1.Value),
		W2:           matrixRows(n.w2.Value),
		B2:           columnOf(n.b2.Value),
	}
	zw := zlib.NewWriter(w)
	if err := json.NewEncoder(zw).Encode(&m); err != nil {
		return err
	}
	return zw.Close()
}

// ReadZlibWeightsFromFile reads a model written by WriteZlibWeightsToFile
// and returns the network with its English and radical vocabularies.
func ReadZlibWeightsFromFile(name string) (*Network, []string, []string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, nil, nil, err
	}
	net, englishVocab, radicalVocab, err := ReadZlibWeights(file)
	file.Close()
	return net, englishVocab, radicalVocab, err
}

// ReadZlibWeights reads a model from a reader.
func ReadZlibWeights(r io.Reader) (*Network, []string, []string, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "opening compressed model")
	}
	var m modelJSON
	if err := json.NewDecoder(zr).Decode(&m); err != nil {
		zr.Close()
		return nil, nil, nil, errors.Wrap(err, "decoding model")
	}
	zr.Close()

	in, nodes, out := len(m.EnglishVocab), m.Nodes, len(m.RadicalVocab)
	n := newZero(in, nodes, out)
	if err := fillMatrix(n.w1.Value, m.W1); err != nil {
		return nil, nil, nil, errors.Wrap(err, "w1")
	}
	if err := fillColumn(n.b1.Value, m.B1); err != nil {
		return nil, nil, nil, errors.Wrap(err, "b1")
	}
	if err := fillMatrix(n.w2.Value, m.W2); err != nil {
		return nil, nil, nil, errors.Wrap(err, "w2")
	}
	if err := fillColumn(n.b2.Value, m.B2); err != nil {
		return nil, nil, nil, errors.Wrap(err, "b2")
	}
	return n, m.EnglishVocab, m.RadicalVocab, nil
}

func matrixRows(d *mat.Dense) [][]float64 {
	r, c := d.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = d.At(i, j)
		}
		out[i] = row
	}
	return out
}

func columnOf(d *mat.Dense) []float64 {
	r, _ := d.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = d.At(i, 0)
	}
	return out
}

func fillMatrix(d *mat.Dense, rows [][]float64) error {
	r, c := d.Dims()
	if len(rows) != r {
		return errors.Errorf("expected %d rows, got %d", r, len(rows))
	}
	for i, row := range rows {
		if len(row) != c {
			return errors.Errorf("expected %d columns in row %d, got %d", c, i, len(row))
		}
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return nil
}

func fillColumn(d *mat.Dense, col []float64) error {
	r, _ := d.Dims()
	if len(col) != r {
		return errors.Errorf("expected %d rows, got %d", r, len(col))
	}
	for i, v := range col {
		d.Set(i, 0, v)
	}
	return nil
}

package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/nn"
)

// Save writes net in .mlp format to w and returns the header it wrote.
//
// meta.Loss must be finite; a network that was never trained is saved with
// Loss 0 and Epochs 0.
func Save(w io.Writer, net *nn.Network, meta Meta) (*Header, error) {
	if math.IsNaN(meta.Loss) || math.IsInf(meta.Loss, 0) {
		return nil, errors.Errorf("loss must be finite, got %v", meta.Loss)
	}

	header := &Header{
		ID:               uuid.New(),
		CreatedAt:        time.Now().UTC(),
		Architecture:     net.Architecture(),
		Activation:       net.HiddenActivation().Name(),
		OutputActivation: net.OutputActivation().Name(),
		Epochs:           meta.Epochs,
		Loss:             meta.Loss,
		Metadata:         meta.Metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal header")
	}
	if len(headerJSON) > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}

	cw := newChecksumWriter(w)

	fixed := make([]byte, 0, FixedHeaderSize)
	fixed = append(fixed, MagicBytes...)
	fixed = binary.LittleEndian.AppendUint32(fixed, FormatVersion)
	fixed = binary.LittleEndian.AppendUint64(fixed, uint64(len(headerJSON)))
	if _, err := cw.Write(fixed); err != nil {
		return nil, errors.Wrap(err, "failed to write fixed header")
	}
	if _, err := cw.Write(headerJSON); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	buf := make([]byte, 0, ParameterSize*64)
	for l, layer := range net.Layers() {
		for i, neuron := range layer.Neurons() {
			buf = buf[:0]
			for _, v := range neuron.Weights() {
				buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
			}
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(neuron.Bias()))
			if _, err := cw.Write(buf); err != nil {
				return nil, errors.Wrapf(err, "failed to write layer %d neuron %d", l, i)
			}
		}
	}

	if err := cw.writeTrailer(); err != nil {
		return nil, errors.Wrap(err, "failed to write checksum")
	}

	return header, nil
}

// SaveFile writes net to path in .mlp format. See Save.
func SaveFile(path string, net *nn.Network, meta Meta) (*Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file")
	}

	bw := bufio.NewWriter(file)
	header, err := Save(bw, net, meta)
	if err == nil {
		err = bw.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, errors.Wrapf(err, "save %s", path)
	}

	return header, nil
}

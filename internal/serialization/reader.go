package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/nn"
)

// Load reads a network in .mlp format from r and returns it with its header.
//
// The checksum covers the whole file; nothing is returned unless it matches.
func Load(r io.Reader) (*nn.Network, *Header, error) {
	cr := newChecksumReader(r)

	header, err := readHeader(cr)
	if err != nil {
		return nil, nil, err
	}

	params := make([]float64, header.NumParameters())
	buf := make([]byte, ParameterSize)
	for i := range params {
		if _, err := io.ReadFull(cr, buf); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to read parameter %d of %d", i, len(params))
		}
		params[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf))
	}

	if err := cr.verifyTrailer(); err != nil {
		if errors.Is(err, ErrChecksumMismatch) {
			return nil, nil, err
		}
		return nil, nil, errors.Wrap(err, "failed to read checksum")
	}

	net, err := build(header, params)
	if err != nil {
		return nil, nil, err
	}

	return net, header, nil
}

// LoadFile reads a network from a .mlp file. See Load.
func LoadFile(path string) (*nn.Network, *Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	net, header, err := Load(bufio.NewReader(file))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "load %s", path)
	}
	return net, header, nil
}

// readHeader reads the fixed header and the JSON header, then validates it.
func readHeader(r io.Reader) (*Header, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, errors.Wrap(err, "failed to read fixed header")
	}

	if string(fixed[0:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", version, FormatVersion)
	}

	headerSize := binary.LittleEndian.Uint64(fixed[8:16])
	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	header := &Header{}
	if err := json.Unmarshal(headerJSON, header); err != nil {
		return nil, errors.Wrap(err, "failed to parse header JSON")
	}
	if err := ValidateHeader(header); err != nil {
		return nil, err
	}

	return header, nil
}

// build reconstructs the network described by header from its flat
// parameters.
func build(header *Header, params []float64) (*nn.Network, error) {
	hidden, err := activation.Lookup(header.Activation)
	if err != nil {
		return nil, err
	}
	output, err := activation.Lookup(header.OutputActivation)
	if err != nil {
		return nil, err
	}

	net, err := nn.NewNetwork(header.Architecture, nn.Options{Activation: hidden, OutputActivation: output})
	if err != nil {
		return nil, err
	}

	offset := 0
	for l, layer := range net.Layers() {
		fanIn := layer.FanIn()
		for i, neuron := range layer.Neurons() {
			weights := params[offset : offset+fanIn]
			bias := params[offset+fanIn]
			if err := neuron.SetWeights(weights, bias); err != nil {
				return nil, errors.Wrapf(err, "layer %d neuron %d", l, i)
			}
			offset += fanIn + 1
		}
	}

	return net, nil
}

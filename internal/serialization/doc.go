// Package serialization provides the native .mlp format for saving and loading
// trained networks.
//
//	Format Structure:
//	  [4 bytes: Magic "MLPN"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata]
//	  [Parameters: float64 LE, per layer, per neuron: weights then bias]
//	  [32 bytes: SHA-256 of everything above]
//
// The JSON header carries the architecture and activation names, so a file
// is enough to rebuild the network without any other configuration.
//
// Example usage:
//
//	// Save a model
//	if err := serialization.SaveFile("xor.mlp", net, serialization.Meta{
//	    Epochs: history.Epochs(),
//	    Loss:   history.Last(),
//	}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load a model
//	net, header, err := serialization.LoadFile("xor.mlp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(header.ID, net.Architecture())
package serialization

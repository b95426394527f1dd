// Package serialization saves and loads the parameter values of a model.
//
// Only the values of parameter leaves are stored, never a computation graph:
// a loaded model rebuilds its graph on the next forward pass.
//
//	Format Structure:
//	  [4 bytes: Magic "MGRD"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata]
//	  [32 bytes: SHA-256 checksum of the parameter data]
//	  [Parameter data: float64 LE, one per parameter, in Parameters() order]
//
// Example usage:
//
//	// Save a model
//	if err := serialization.SaveFile("model.mgrd", model, serialization.Header{ModelType: "MLP"}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load into a model of the same architecture
//	header, err := serialization.LoadFile("model.mgrd", model)
package serialization

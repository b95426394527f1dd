package serialization

import (
	"time"
)

// Format constants.
const (
	MagicBytes    = "MGRD"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256 checksum size (32 bytes)

	// MaxHeaderSize bounds the JSON header read from untrusted input.
	MaxHeaderSize = 64 << 20
	// MaxParameters bounds the parameter count read from untrusted input.
	MaxParameters = 1 << 26
)

// Header represents the JSON header of a parameter file.
type Header struct {
	FormatVersion int               `json:"format_version"`       // Version of the file format
	ModelType     string            `json:"model_type"`           // Type of model (e.g., "MLP")
	CreatedAt     time.Time         `json:"created_at"`           // When the file was created
	NumParameters int               `json:"num_parameters"`       // Number of float64 values in the data section
	Sizes         []int             `json:"sizes,omitempty"`      // Layer sizes, input first
	Labels        []string          `json:"labels,omitempty"`     // Parameter labels, in data order
	Metadata      map[string]string `json:"metadata,omitempty"`   // Custom metadata
	Checkpoint    *CheckpointMeta   `json:"checkpoint,omitempty"` // Training state (optional)
}

// CheckpointMeta contains training state information for checkpoints.
type CheckpointMeta struct {
	Step          int     `json:"step"`           // Training step number
	Loss          float64 `json:"loss"`           // Loss value at checkpoint
	OptimizerType string  `json:"optimizer_type"` // Optimizer type ("SGD", "Adam", etc.)
	LearningRate  float64 `json:"learning_rate"`  // Learning rate at checkpoint
}

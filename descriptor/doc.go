// SPDX-License-Identifier: MIT

// Package descriptor declares network topologies as plain data that can be
// read from and written to YAML or JSON files.
//
// A Network lists its input width, zero or more hidden layers, and an output
// layer carrying the loss. Enum fields (activation, loss, layer type) are
// serialized by name through MarshalText/UnmarshalText, so both formats
// share one vocabulary:
//
//	inputs: 4
//	hidden_layers:
//	  - neurons: 8
//	    activation: relu
//	output_layer:
//	  neurons: 3
//	  activation: softmax
//	  loss: categorical_cross_entropy
//
// Loaders validate what they decode; savers refuse to write an invalid
// descriptor.
package descriptor

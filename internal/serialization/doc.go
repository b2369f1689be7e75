// Package serialization reads and writes layer parameters.
//
// A layer's parameters come from one of two kinds of source:
//
//	Streaming:  a param stream (TextParamReader or BinaryParamReader)
//	            plus a binary weight stream (StreamModelReader).
//	            Weights are copied into owned buffers.
//
//	In-memory:  a Cursor over a model blob, typically mapped with
//	            NewMmapReader. Weights alias the blob, zero-copy.
//
// Both read the same encoding for a bias layer:
//
//	[int32 channelCount, little-endian]
//	[float32 × channelCount, little-endian]
//
// The textual param format is a single decimal token per value, e.g. "4".
//
// Only the textual param reader and the stream weight reader validate their
// input (ErrMalformedConfig, ErrShortRead). BinaryParamReader and Cursor trust
// the caller to supply enough bytes.
package serialization

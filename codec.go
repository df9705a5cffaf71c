// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package tote

import (
	"bytes"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Codec converts an artifact to and from the bytes stored in the cache file.
// Encode and Decode must round-trip: Decode(Encode(v)) yields a value
// equivalent to v.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// JSONCodec stores the artifact as compact JSON. It is the default codec.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// YAMLCodec stores the artifact as YAML, for caches meant to be hand-edited
// or eyeballed. An empty file does not decode; like malformed YAML it marks
// the artifact corrupt so the next Get refetches.
type YAMLCodec[T any] struct{}

func (YAMLCodec[T]) Encode(v T) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	// yaml.Unmarshal accepts an empty document and leaves v as the zero
	// value; a truncated cache file has to surface as an error instead.
	if len(bytes.TrimSpace(data)) == 0 {
		return v, errors.New("empty yaml document")
	}
	err := yaml.Unmarshal(data, &v)
	return v, err
}

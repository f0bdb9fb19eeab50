package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key prefixes per pipeline stage.
const (
	PrefixRecords  = "records"
	PrefixChart    = "chart"
	PrefixArtifact = "artifact"
)

// ChartKeyOpts are the layout options that change a computed chart.
type ChartKeyOpts struct {
	VizType  string `json:"viz_type"`
	Viewport int    `json:"viewport"`
	Detailed bool   `json:"detailed,omitempty"`
	Pairer   string `json:"pairer,omitempty"`
}

// ArtifactKeyOpts are the render options that change an output artifact.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Title   string `json:"title,omitempty"`
	NoStyle bool   `json:"no_style,omitempty"`
}

// Keyer derives cache keys for each pipeline stage.
type Keyer interface {
	// RecordsKey identifies decoded records by the hash of the source file.
	RecordsKey(sourceHash string) string
	// ChartKey identifies a chart by the hash of its records and options.
	ChartKey(recordsHash string, opts ChartKeyOpts) string
	// ArtifactKey identifies a rendered artifact by the hash of its chart.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes stage inputs into prefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RecordsKey implements [Keyer].
func (DefaultKeyer) RecordsKey(sourceHash string) string {
	return PrefixRecords + ":" + sourceHash
}

// ChartKey implements [Keyer].
func (DefaultKeyer) ChartKey(recordsHash string, opts ChartKeyOpts) string {
	return hashKey(PrefixChart, recordsHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey(PrefixArtifact, chartHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Package chunker converts normalised records into bounded, overlapping
// text chunks with content-addressed identifiers.
package chunker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
)

// Ensure Chunker implements the interface.
var _ driven.Chunker = (*Chunker)(nil)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 800

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 80

// Chunker splits rendered records into fixed-size overlapping windows.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// ChunkRecords renders each record and splits the text into overlapping
// windows. IDs are content-addressed from (kind, day, window index), so
// re-chunking the same window yields the same ID across generations; the
// generation marker rides along as metadata only.
func (c *Chunker) ChunkRecords(records []domain.Record, kind domain.Kind, generation string) []domain.Chunk {
	var chunks []domain.Chunk
	for _, record := range records {
		content := Render(record)
		day := record.DayString()

		position := 0
		start := 0
		for start < len(content) {
			end := start + c.chunkSize
			if end > len(content) {
				end = len(content)
			}

			chunks = append(chunks, domain.Chunk{
				ID:         ChunkID(kind, day, position),
				Content:    content[start:end],
				Kind:       kind,
				Day:        day,
				Position:   position,
				Generation: generation,
			})
			position++

			if end == len(content) {
				break
			}
			start += c.chunkSize - c.overlap
		}
	}
	return chunks
}

// ChunkID derives the stable, content-addressed chunk identifier.
func ChunkID(kind domain.Kind, day string, position int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", kind, day, position)))
	return hex.EncodeToString(sum[:16])
}

// Render produces the deterministic textual representation of a record:
// kind and day headers followed by the observed fields in sorted order.
func Render(record domain.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Type: %s\n", record.Kind)
	fmt.Fprintf(&b, "Day: %s\n", record.DayString())
	for _, name := range record.FieldNames() {
		fmt.Fprintf(&b, "%s: %s\n", name, strconv.FormatFloat(record.Fields[name], 'f', -1, 64))
	}
	return b.String()
}

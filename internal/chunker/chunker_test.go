package chunker

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

func testRecord(day string, fields map[string]float64) domain.Record {
	parsed, _ := time.Parse(domain.DayFormat, day)
	return domain.Record{
		UserID: "user-1",
		Kind:   domain.KindSleep,
		Day:    parsed,
		Fields: fields,
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New()

	assert.Equal(t, DefaultChunkSize, c.chunkSize)
	assert.Equal(t, DefaultChunkOverlap, c.overlap)
}

func TestNew_OverlapClampedToQuarter(t *testing.T) {
	c := New(WithChunkSize(100), WithOverlap(100))

	assert.Equal(t, 25, c.overlap)
}

func TestRender_SortedDeterministic(t *testing.T) {
	record := testRecord("2026-08-20", map[string]float64{
		"efficiency":           92,
		"total_sleep_duration": 27000,
		"deep_sleep_duration":  5400.5,
	})

	text := Render(record)

	assert.Equal(t, "Type: sleep\nDay: 2026-08-20\ndeep_sleep_duration: 5400.5\nefficiency: 92\ntotal_sleep_duration: 27000\n", text)
	assert.Equal(t, text, Render(record))
}

func TestChunkRecords_SingleChunkForShortContent(t *testing.T) {
	c := New()
	records := []domain.Record{testRecord("2026-08-20", map[string]float64{"efficiency": 92})}

	chunks := c.ChunkRecords(records, domain.KindSleep, "gen-1")

	require.Len(t, chunks, 1)
	assert.Equal(t, Render(records[0]), chunks[0].Content)
	assert.Equal(t, domain.KindSleep, chunks[0].Kind)
	assert.Equal(t, "2026-08-20", chunks[0].Day)
	assert.Equal(t, 0, chunks[0].Position)
	assert.Equal(t, "gen-1", chunks[0].Generation)
}

func TestChunkRecords_OverlapRoundTrip(t *testing.T) {
	// Dropping each chunk's leading overlap reconstructs the original text.
	c := New(WithChunkSize(40), WithOverlap(10))
	records := []domain.Record{testRecord("2026-08-20", map[string]float64{
		"average_breath":       14.25,
		"average_heart_rate":   58,
		"average_hrv":          61,
		"deep_sleep_duration":  5400,
		"efficiency":           92,
		"latency":              480,
		"light_sleep_duration": 14400,
		"rem_sleep_duration":   6600,
		"total_sleep_duration": 27000,
	})}

	chunks := c.ChunkRecords(records, domain.KindSleep, "gen-1")
	require.Greater(t, len(chunks), 1)

	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0].Content)
	for _, chunk := range chunks[1:] {
		rebuilt.WriteString(chunk.Content[10:])
	}
	assert.Equal(t, Render(records[0]), rebuilt.String())

	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Position)
		assert.LessOrEqual(t, len(chunk.Content), 40)
	}
}

func TestChunkRecords_StableIDsAcrossGenerations(t *testing.T) {
	c := New()
	records := []domain.Record{testRecord("2026-08-20", map[string]float64{"efficiency": 92})}

	first := c.ChunkRecords(records, domain.KindSleep, "gen-1")
	second := c.ChunkRecords(records, domain.KindSleep, "gen-2")

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[0].Generation, second[0].Generation)
}

func TestChunkID_DistinctInputsDistinctIDs(t *testing.T) {
	base := ChunkID(domain.KindSleep, "2026-08-20", 0)

	assert.Len(t, base, 32)
	assert.NotEqual(t, base, ChunkID(domain.KindActivity, "2026-08-20", 0))
	assert.NotEqual(t, base, ChunkID(domain.KindSleep, "2026-08-21", 0))
	assert.NotEqual(t, base, ChunkID(domain.KindSleep, "2026-08-20", 1))
}

func TestChunkRecords_Empty(t *testing.T) {
	c := New()

	assert.Empty(t, c.ChunkRecords(nil, domain.KindSleep, "gen-1"))
}

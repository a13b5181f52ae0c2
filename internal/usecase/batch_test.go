package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeURLs(n int) []string {
	urls := make([]string, 0, n)
	for i := 0; i < n; i++ {
		urls = append(urls, fmt.Sprintf("http://site-%d.example.com", i))
	}
	return urls
}

func TestChunkURLs(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		size       int
		wantChunks int
		wantLast   int
	}{
		{name: "empty", n: 0, size: 3, wantChunks: 0},
		{name: "exact multiple", n: 6, size: 3, wantChunks: 2, wantLast: 3},
		{name: "remainder", n: 7, size: 3, wantChunks: 3, wantLast: 1},
		{name: "single short chunk", n: 2, size: 500, wantChunks: 1, wantLast: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls := makeURLs(tt.n)
			chunks := chunkURLs(urls, tt.size)
			require.Len(t, chunks, tt.wantChunks)

			// Concatenating the chunks in order must reproduce the input.
			flat := make([]string, 0, tt.n)
			for _, c := range chunks {
				flat = append(flat, c...)
			}
			assert.Equal(t, urls, flat)

			if tt.wantChunks > 0 {
				assert.Len(t, chunks[len(chunks)-1], tt.wantLast)
				for _, c := range chunks[:len(chunks)-1] {
					assert.Len(t, c, tt.size)
				}
			}
		})
	}
}

func TestChunkURLsNonPositiveSizeUsesDefault(t *testing.T) {
	urls := makeURLs(defaultBatchSize + 1)
	chunks := chunkURLs(urls, 0)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], defaultBatchSize)
	assert.Len(t, chunks[1], 1)
}

package usecase

// chunkURLs splits urls into consecutive chunks of at most size
// entries, preserving input order. The last chunk may be shorter. A
// non-positive size falls back to the default batch size.
func chunkURLs(urls []string, size int) [][]string {
	if size <= 0 {
		size = defaultBatchSize
	}
	var chunks [][]string
	for start := 0; start < len(urls); start += size {
		end := start + size
		if end > len(urls) {
			end = len(urls)
		}
		chunks = append(chunks, urls[start:end])
	}
	return chunks
}

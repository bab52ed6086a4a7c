package download

import (
	"io"
)

// progressReader counts the bytes read from the underlying reader. Reads are
// capped at chunkSize so progress is reported once per chunk even when the
// consumer copies with a larger buffer.
type progressReader struct {
	reader     io.Reader
	total      int64
	downloaded int64
	onProgress Progress
}

func newProgressReader(reader io.Reader, total int64, onProgress Progress) *progressReader {
	return &progressReader{
		reader:     reader,
		total:      total,
		onProgress: onProgress,
	}
}

func (r *progressReader) Read(p []byte) (int, error) {
	if len(p) > chunkSize {
		p = p[:chunkSize]
	}

	n, err := r.reader.Read(p)
	if n > 0 {
		r.downloaded += int64(n)
		if r.onProgress != nil {
			r.onProgress(r.downloaded, r.total)
		}
	}

	return n, err
}

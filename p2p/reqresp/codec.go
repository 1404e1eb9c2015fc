package reqresp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/multiformats/go-varint"
)

// ReadRequest reads one length-prefixed request from rd, bounded by
// maxSize. A declared length greater than maxSize fails with
// ErrSizeExceeded before any payload bytes are consumed.
func ReadRequest(rd *bufio.Reader, maxSize int) ([]byte, error) {
	return readFramed(rd, maxSize)
}

// ReadResponse is the response-direction counterpart of ReadRequest.
func ReadResponse(rd *bufio.Reader, maxSize int) ([]byte, error) {
	return readFramed(rd, maxSize)
}

func readFramed(rd *bufio.Reader, maxSize int) ([]byte, error) {
	length, err := varint.ReadUvarint(rd)
	if err != nil {
		return nil, fmt.Errorf("%w: length prefix: %w", ErrDecodeError, err)
	}
	if length > uint64(maxSize) {
		return nil, fmt.Errorf("%w: declared length %d exceeds limit %d", ErrSizeExceeded, length, maxSize)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrDecodeError, err)
	}
	return buf, nil
}

// WriteRequest writes one length-prefixed request to w. It does not close
// or half-close w; callers that need an orderly end-of-write signal a
// half-close on the underlying stream themselves once the write returns.
func WriteRequest(w io.Writer, payload []byte) error {
	return writeFramed(w, payload)
}

// WriteResponse is the response-direction counterpart of WriteRequest.
func WriteResponse(w io.Writer, payload []byte) error {
	return writeFramed(w, payload)
}

func writeFramed(w io.Writer, payload []byte) error {
	bw := bufio.NewWriter(w)
	prefix := make([]byte, varint.UvarintSize(uint64(len(payload))))
	n := varint.PutUvarint(prefix, uint64(len(payload)))
	if _, err := bw.Write(prefix[:n]); err != nil {
		return fmt.Errorf("%w: length prefix: %v", ErrDecodeError, err)
	}
	if _, err := bw.Write(payload); err != nil {
		return fmt.Errorf("%w: payload: %v", ErrDecodeError, err)
	}
	return bw.Flush()
}

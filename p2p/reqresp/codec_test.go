package reqresp

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte{0xAB}, 1023),
		bytes.Repeat([]byte{0xCD}, 1024),
	}
	for _, p := range payloads {
		var buf bytes.Buffer
		require.NoError(t, WriteRequest(&buf, p))

		got, err := ReadRequest(bufio.NewReader(&buf), 1024)
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestCodecOverLimitRejectedBeforePayload(t *testing.T) {
	var buf bytes.Buffer
	payload := bytes.Repeat([]byte{0x42}, 2048)
	require.NoError(t, WriteRequest(&buf, payload))

	rd := bufio.NewReader(&buf)
	_, err := ReadRequest(rd, 1024)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSizeExceeded))

	// Nothing beyond the length prefix was consumed: the full payload is
	// still sitting in the buffer.
	require.Equal(t, len(payload), rd.Buffered())
}

func TestCodecResponseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResponse(&buf, []byte("answer")))

	got, err := ReadResponse(bufio.NewReader(&buf), 64)
	require.NoError(t, err)
	require.Equal(t, []byte("answer"), got)
}

func TestCodecTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRequest(&buf, []byte("hello")))
	truncated := buf.Bytes()[:buf.Len()-2]

	_, err := ReadRequest(bufio.NewReader(bytes.NewReader(truncated)), 64)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDecodeError))
}

func TestCodecMalformedVarint(t *testing.T) {
	// A run of continuation bytes with no terminator is an invalid varint.
	malformed := bytes.Repeat([]byte{0x80}, 10)
	_, err := ReadRequest(bufio.NewReader(bytes.NewReader(malformed)), 64)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDecodeError))
}

package serialization

import (
	"crypto/sha256"
	"hash"
	"io"
)

// checksumWriter forwards writes to w while hashing them.
type checksumWriter struct {
	w io.Writer
	h hash.Hash
}

func newChecksumWriter(w io.Writer) *checksumWriter {
	return &checksumWriter{w: w, h: sha256.New()}
}

func (c *checksumWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.h.Write(p[:n])
	return n, err
}

// writeTrailer appends the SHA-256 of everything written so far to the
// underlying writer. The trailer itself is not hashed.
func (c *checksumWriter) writeTrailer() error {
	_, err := c.w.Write(c.h.Sum(nil))
	return err
}

// checksumReader hashes everything read through it.
type checksumReader struct {
	r io.Reader
	h hash.Hash
}

func newChecksumReader(r io.Reader) *checksumReader {
	return &checksumReader{r: r, h: sha256.New()}
}

func (c *checksumReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.h.Write(p[:n])
	return n, err
}

// verifyTrailer reads the stored checksum from the underlying reader and
// compares it with the hash of everything read so far.
func (c *checksumReader) verifyTrailer() error {
	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(c.r, stored[:]); err != nil {
		return err
	}
	var computed [ChecksumSize]byte
	copy(computed[:], c.h.Sum(nil))
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}

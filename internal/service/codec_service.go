package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"

	"qrpay/internal/core/domain"
	"qrpay/pkg/apperror"
)

// envelopeFormatTag is the explicit version prefix on every encoded
// envelope. A single tagged format replaces format sniffing: input
// without the tag is rejected, never re-tried as some legacy shape.
const envelopeFormatTag = "QP1:"

// ZlibEnvelopeCodec implements ports.EnvelopeCodec.
// Pipeline: JSON -> zlib deflate -> base64 (URL alphabet, unpadded).
// Compression exists to keep signed+encrypted envelopes inside practical
// QR byte capacity.
type ZlibEnvelopeCodec struct {
	maxEncodedBytes int
}

// NewZlibEnvelopeCodec creates a codec enforcing the given encoded-size
// ceiling. maxEncodedBytes <= 0 disables the size guard.
func NewZlibEnvelopeCodec(maxEncodedBytes int) *ZlibEnvelopeCodec {
	return &ZlibEnvelopeCodec{maxEncodedBytes: maxEncodedBytes}
}

// Encode serializes an envelope into the QR transport string.
func (c *ZlibEnvelopeCodec) Encode(envelope *domain.Envelope) (string, error) {
	if !envelope.Kind.Valid() {
		return "", apperror.InternalError(fmt.Errorf("unknown envelope kind %q", envelope.Kind))
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("marshal envelope: %w", err))
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("init deflate: %w", err))
	}
	if _, err := zw.Write(raw); err != nil {
		return "", apperror.InternalError(fmt.Errorf("deflate envelope: %w", err))
	}
	if err := zw.Close(); err != nil {
		return "", apperror.InternalError(fmt.Errorf("flush deflate: %w", err))
	}

	encoded := envelopeFormatTag + base64.RawURLEncoding.EncodeToString(buf.Bytes())
	if c.maxEncodedBytes > 0 && len(encoded) > c.maxEncodedBytes {
		return "", apperror.ErrEnvelopeTooLarge(len(encoded), c.maxEncodedBytes)
	}
	return encoded, nil
}

// Decode is the exact inverse of Encode. Every failure mode (missing
// tag, bad base64, inflate failure, JSON failure, unknown kind) fails
// closed with a decode error.
func (c *ZlibEnvelopeCodec) Decode(encoded string) (*domain.Envelope, error) {
	body, ok := strings.CutPrefix(encoded, envelopeFormatTag)
	if !ok {
		return nil, apperror.ErrDecode(fmt.Errorf("missing %q format tag", envelopeFormatTag))
	}

	compressed, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, apperror.ErrDecode(fmt.Errorf("base64: %w", err))
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, apperror.ErrDecode(fmt.Errorf("inflate: %w", err))
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, apperror.ErrDecode(fmt.Errorf("inflate: %w", err))
	}

	envelope := &domain.Envelope{}
	if err := json.Unmarshal(raw, envelope); err != nil {
		return nil, apperror.ErrDecode(fmt.Errorf("parse envelope: %w", err))
	}
	if !envelope.Kind.Valid() {
		return nil, apperror.ErrDecode(fmt.Errorf("unknown envelope kind %q", envelope.Kind))
	}
	if len(envelope.Ciphertext) == 0 || len(envelope.IV) == 0 ||
		len(envelope.Signature) == 0 || len(envelope.VerificationKey) == 0 {
		return nil, apperror.ErrDecode(fmt.Errorf("envelope is missing required fields"))
	}
	return envelope, nil
}

package jwt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var (
	segmentEncoding       = base64.RawURLEncoding.Strict()
	paddedSegmentEncoding = base64.URLEncoding.Strict()
)

// EncodeSegment encodes b as unpadded base64url.
func EncodeSegment(b []byte) string {
	return segmentEncoding.EncodeToString(b)
}

// DecodeSegment reverses EncodeSegment. Padded input is accepted only with
// the padding its length implies. Input with bits set past the last full
// byte is rejected.
func DecodeSegment(seg string) ([]byte, error) {
	enc := segmentEncoding
	if strings.HasSuffix(seg, "=") {
		enc = paddedSegmentEncoding
	}

	b, err := enc.DecodeString(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

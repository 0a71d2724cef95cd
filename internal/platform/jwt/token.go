package jwt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	segmentSep = "."
	typJWT     = "JWT"
)

// Header is the JOSE header of a token. Field order is part of the wire format.
type Header struct {
	Typ string `json:"typ"`
	Alg string `json:"alg"`
}

// NewHeader returns the header emitted for tokens signed with alg.
func NewHeader(alg string) Header {
	return Header{Typ: typJWT, Alg: alg}
}

// Build serializes header and claims and returns their encoded segments.
// encoding/json writes map keys in sorted order, so the payload is stable.
func Build(claims Claims, header Header) (encHeader, encPayload string, err error) {
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", "", fmt.Errorf("marshal header: %w", err)
	}

	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", "", fmt.Errorf("marshal claims: %w", err)
	}

	return EncodeSegment(headerJSON), EncodeSegment(payloadJSON), nil
}

// SigningInput joins the encoded header and payload the way they are signed.
func SigningInput(encHeader, encPayload string) []byte {
	return []byte(encHeader + segmentSep + encPayload)
}

// Join assembles the token string from its encoded segments.
func Join(encHeader, encPayload, encSignature string) string {
	return encHeader + segmentSep + encPayload + segmentSep + encSignature
}

// Split breaks token into its three segments. Anything other than exactly
// three non-empty segments is ErrMalformed.
func Split(token string) (encHeader, encPayload, encSignature string, err error) {
	parts := strings.Split(token, segmentSep)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformed, len(parts))
	}

	for i, part := range parts {
		if part == "" {
			return "", "", "", fmt.Errorf("%w: segment %d is empty", ErrMalformed, i)
		}
	}

	return parts[0], parts[1], parts[2], nil
}

// ParseHeader decodes encHeader and checks that it declares alg.
func ParseHeader(encHeader, alg string) error {
	raw, err := DecodeSegment(encHeader)
	if err != nil {
		return fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}

	var h map[string]any
	if err := decodeObject(raw, &h); err != nil {
		return fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}

	if got, _ := h["alg"].(string); got != alg {
		return fmt.Errorf("%w: unexpected signing algorithm %q", ErrMalformed, h["alg"])
	}

	if typ, ok := h["typ"]; ok && typ != typJWT {
		return fmt.Errorf("%w: unexpected token type %q", ErrMalformed, typ)
	}

	return nil
}

// ParsePayload decodes encPayload into claims. Any failure is ErrMalformed.
func ParsePayload(encPayload string) (Claims, error) {
	raw, err := DecodeSegment(encPayload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrMalformed, err)
	}

	var claims Claims
	if err := decodeObject(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrMalformed, err)
	}

	return claims, nil
}

// decodeObject decodes exactly one JSON object from raw into v, which must
// point to a map.
func decodeObject[M ~map[string]any](raw []byte, v *M) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	if *v == nil {
		return errors.New("not a json object")
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after json object")
	}

	return nil
}

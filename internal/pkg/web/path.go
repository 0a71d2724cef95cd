package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var ErrInvalidPathID = errors.New("path value is not a positive integer")

// PathID reads the named path value as a positive row id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathID, name, raw)
	}

	return id, nil
}

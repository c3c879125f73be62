package pagination

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Cursor points at the next row of a date-ordered table
type Cursor struct {
	Offset int       `json:"offset"`
	Date   time.Time `json:"date"`
}

// Encode encodes the cursor to a base64 string
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a base64 cursor string
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, err
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Window returns the half-open row range [start, end) for a page beginning at
// offset, and whether rows remain after it.
func Window(total, offset, limit int) (start, end int, hasMore bool) {
	start = min(max(offset, 0), total)
	end = min(start+NormalizeLimit(limit), total)
	return start, end, end < total
}

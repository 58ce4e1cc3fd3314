package videokey

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// New returns the storage key for an uploaded video:
// the current unix-millisecond timestamp joined with the original file
// name. Two identically named uploads within the same millisecond
// collide; the scheme accepts that risk.
func New(filename string) string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + filename
}

// Timestamp extracts the upload time encoded in a storage key.
func Timestamp(key string) (time.Time, error) {
	raw, _, ok := strings.Cut(key, "_")
	if !ok {
		return time.Time{}, errors.New("malformed video key")
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("malformed video key")
	}
	return time.UnixMilli(millis), nil
}

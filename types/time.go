package types

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Timestamp is a point in time in nanosecond precision, string encoded on the
// wire so the full uint64 range survives JSON.
type Timestamp string

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(strconv.FormatInt(t.UnixNano(), 10))
}

func TimestampFromSeconds(secs int64) Timestamp {
	return Timestamp(strconv.FormatInt(secs*int64(time.Second), 10))
}

func (t Timestamp) Validate() error {
	if !uintPattern.MatchString(string(t)) {
		return errors.Errorf("invalid timestamp string: %q", string(t))
	}
	return nil
}

func (t Timestamp) Time() (time.Time, error) {
	nanos, err := strconv.ParseInt(string(t), 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp %q", string(t))
	}
	return time.Unix(0, nanos).UTC(), nil
}

func (t Timestamp) Seconds() (int64, error) {
	tm, err := t.Time()
	if err != nil {
		return 0, err
	}
	return tm.Unix(), nil
}

// ParseISOTime parses a strict ISO-8601 / RFC 3339 instant. Used to validate
// CLI-supplied end times before any network call.
func ParseISOTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid ISO-8601 time %q", s)
	}
	return t.UTC(), nil
}

package chain

import (
	"bytes"
	"io"
	"time"

	"github.com/pkg/errors"
)

// ErrBadTimestamp is returned when a string does not match the accepted
// "YYYY-MM-DDTHH:MM:SS" UTC layout.
var ErrBadTimestamp = errors.New("chain: malformed timestamp")

const pointInTimeLayout = "2006-01-02T15:04:05"

// PointInTime is a UTC timestamp encoded on the wire as seconds since
// the Unix epoch in a little-endian u32.
type PointInTime uint32

// ParsePointInTime parses "YYYY-MM-DDTHH:MM:SS" as UTC. No timezone
// suffix other than the implicit UTC is accepted.
func ParsePointInTime(s string) (PointInTime, error) {
	t, err := time.Parse(pointInTimeLayout, s)
	if err != nil {
		return 0, errors.Wrap(ErrBadTimestamp, err.Error())
	}
	sec := t.Unix()
	if sec < 0 || sec > int64(^uint32(0)) {
		return 0, errors.Wrap(ErrBadTimestamp, "out of u32 range")
	}
	return PointInTime(sec), nil
}

func MustParsePointInTime(s string) PointInTime {
	t, err := ParsePointInTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t PointInTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t PointInTime) String() string {
	return t.Time().Format(pointInTimeLayout)
}

func (t PointInTime) EncodeBuffer(buf *bytes.Buffer) error {
	return Uint32(t).EncodeBuffer(buf)
}

func (t *PointInTime) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 4 {
		return io.ErrShortBuffer
	}
	var u Uint32
	if err := u.DecodeBuffer(buf); err != nil {
		return err
	}
	*t = PointInTime(u)
	return nil
}

func (t PointInTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *PointInTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParsePointInTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

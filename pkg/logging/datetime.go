package logging

import "time"

const (
	nanosInSecond = 1_000_000_000
	iso8601Nanos  = "2006-01-02T15:04:05.000000000Z"
)

// UnixNanosToISO8601 formats nanoseconds since the Unix epoch as an ISO-8601 UTC
// timestamp with nanosecond precision. It is defined for every uint64.
func UnixNanosToISO8601(timestampNs uint64) string {
	return string(appendISO8601(make([]byte, 0, len(iso8601Nanos)), timestampNs))
}

func appendISO8601(buf []byte, timestampNs uint64) []byte {
	// split first: timestampNs may not fit in an int64
	secs := int64(timestampNs / nanosInSecond)
	nanos := int64(timestampNs % nanosInSecond)

	return time.Unix(secs, nanos).UTC().AppendFormat(buf, iso8601Nanos)
}

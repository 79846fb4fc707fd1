package strailer

import (
	"sampan/sef/sentry"
	"sampan/sef/sfooter"
	"sampan/sef/sheader"
)

type (
	Trailer struct {
		Footer  sfooter.Footer `json:"footer"`
		Header  sheader.Header `json:"header"`
		Entries []sentry.Entry `json:"entries"`
		// PayloadLength is the number of bytes before the first entry's data,
		// i.e. the length of the JPEG stream the camera wrote.
		PayloadLength int64 `json:"payload_length"`
		FileLength    int64 `json:"file_length"`
	}
)

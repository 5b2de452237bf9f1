package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kalmar41k/goit-algo-hw-05/internal/model"
)

// ErrMalformed is returned when a line has too few tokens to be a log record.
var ErrMalformed = errors.New("malformed log line")

// ParseLine converts one log line into a Record.
//
// The line is split on any whitespace: the first two tokens form the
// timestamp, the third is the severity level (kept verbatim, no case
// normalization), and any remaining tokens are rejoined with single spaces
// as the message text. Lines with fewer than three tokens fail.
func ParseLine(line string) (model.Record, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return model.Record{}, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrMalformed, len(tokens))
	}

	return model.Record{
		DateTime: tokens[0] + " " + tokens[1],
		Level:    tokens[2],
		Text:     strings.Join(tokens[3:], " "),
	}, nil
}

package logging

import "github.com/rxtech-lab/argo-logger/internal/types"

// FormatLine renders one terminal line:
//
//	<BOLD><ISO8601><RESET> <COLOR>[<LEVEL>] <TRADER_ID>.<COMPONENT>: <MSG><RESET>\n
//
// msg is copied verbatim, including any newlines or escape sequences it contains.
func FormatLine(
	timestampNs uint64,
	level LogLevel,
	color LogColor,
	traderID types.TraderID,
	component string,
	msg string,
) []byte {
	colorCode := color.String()
	bold := LogFormatBold.String()
	endc := LogFormatEndc.String()
	size := len(bold) + len(iso8601Nanos) + len(endc) + 1 +
		len(colorCode) + 5 + 1 + len(traderID) + 1 + len(component) + 2 + len(msg) +
		len(endc) + 1

	line := make([]byte, 0, size)
	line = append(line, bold...)
	line = appendISO8601(line, timestampNs)
	line = append(line, endc...)
	line = append(line, ' ')
	line = append(line, colorCode...)
	line = append(line, '[')
	line = append(line, level.String()...)
	line = append(line, "] "...)
	line = append(line, traderID.String()...)
	line = append(line, '.')
	line = append(line, component...)
	line = append(line, ": "...)
	line = append(line, msg...)
	line = append(line, endc...)
	line = append(line, '\n')

	return line
}

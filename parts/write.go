package parts

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Delimiters accepted by Load, in the order they are documented.
const (
	DelimComma = ','
	DelimTab   = '\t'
	DelimSpace = ' '
	DelimPipe  = '|'
)

// Write exports pm as "<node><delim><part>" lines, parts in ascending order
// and nodes in stored order, so Load(Write(pm)) reproduces pm exactly.
// An unsupported delimiter returns ErrInvalidParameter before anything is written.
func Write(w io.Writer, pm PartMap, delim byte) error {
	switch delim {
	case DelimComma, DelimTab, DelimSpace, DelimPipe:
	default:
		return fmt.Errorf("delimiter %q: %w", delim, ErrInvalidParameter)
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, id := range pm.IDs() {
		for _, n := range pm[id] {
			buf = strconv.AppendInt(buf[:0], int64(n), 10)
			buf = append(buf, delim)
			buf = strconv.AppendInt(buf, int64(id), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

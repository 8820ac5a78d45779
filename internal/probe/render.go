package probe

import (
	"bufio"
	"io"

	"github.com/inoxlang/arrcompat/internal/dump"
)

const (
	ROW_HEADER = "=========================== Notice Compare ======================="
	ROW_FOOTER = "=================================================================="
)

// FlagFormatter formats a latch state, the default one writes T or F.
type FlagFormatter func(fired bool) string

func PlainFlag(fired bool) string {
	if fired {
		return "T"
	}
	return "F"
}

// Render writes each row as the fixture prints it: a header line, the dumps of both operands,
// the space separated flags of the nine operators and a footer line.
func Render(w io.Writer, rows []Row) error {
	return RenderWith(w, rows, PlainFlag)
}

func RenderWith(w io.Writer, rows []Row, format FlagFormatter) error {
	if format == nil {
		format = PlainFlag
	}

	bw := bufio.NewWriter(w)

	for _, row := range rows {
		bw.WriteString(ROW_HEADER)
		bw.WriteByte('\n')

		if err := dump.Dump(bw, row.Left); err != nil {
			return err
		}
		if err := dump.Dump(bw, row.Right); err != nil {
			return err
		}

		for i, fired := range row.Fired {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(format(fired))
		}

		bw.WriteByte('\n')
		bw.WriteString(ROW_FOOTER)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

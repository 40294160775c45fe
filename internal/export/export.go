// Package export renders the todo list in shareable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"go.coldcutz.net/todo/internal/todo"
)

// Formats lists the accepted format names
var Formats = []string{"json", "yaml", "csv", "pdf"}

// Write renders tasks to w in the named format
func Write(w io.Writer, format string, tasks []todo.Task) error {
	if tasks == nil {
		tasks = []todo.Task{}
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		return writeCSV(w, tasks)
	case "pdf":
		return writePDF(w, tasks)
	default:
		return fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func writeCSV(w io.Writer, tasks []todo.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"number", "id", "title", "completed"}); err != nil {
		return err
	}
	for i, t := range tasks {
		row := []string{strconv.Itoa(i + 1), t.ID, t.Title, strconv.FormatBool(t.Completed)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writePDF uses the core fonts, which have no emoji, so status is shown as [x] / [ ].
func writePDF(w io.Writer, tasks []todo.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todos")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "Empty todo list.", "0", "L", false)
	}
	done := 0
	for i, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
			done++
		}
		line := fmt.Sprintf("%d. %s %s", i+1, mark, tr(t.Title))
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	if len(tasks) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(40, 6, fmt.Sprintf("%d of %d completed", done, len(tasks)))
	}

	return pdf.Output(w)
}

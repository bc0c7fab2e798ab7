package inventory

import (
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"
)

// exportHeader matches the import schema plus a derived variance column.
var exportHeader = []string{"Denumire", "Cod", "Scriptic", "Faptic", "Diferenta"}

// ExportCSV serializes the project's items as a delimited report in item
// order. Fields containing the delimiter or quotes are escaped per CSV
// conventions. Output carries no timestamps, so unchanged state always
// yields byte-identical text.
func ExportCSV(proj *Project) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(exportHeader)
	for _, item := range proj.Items {
		_ = w.Write([]string{
			item.Name,
			item.Code,
			strconv.Itoa(item.ScripticQty),
			strconv.Itoa(item.ActualQty),
			strconv.Itoa(Variance(item)),
		})
	}
	w.Flush()
	return sb.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// ExportFilename derives the report filename from the project name, with
// runs of whitespace replaced by underscores.
func ExportFilename(projectName string) string {
	return whitespace.ReplaceAllString(projectName, "_") + "_Inventar.csv"
}

// Package nordea reads the bank's CSV account export into a
// taxreport.Ledger.
//
// The export is a semicolon-separated file with a header row. The columns
// used here are "Kirjauspäivä" (posting date, dd.mm.yyyy), "Laji" (category
// code), "Selitys" (row type), "Viesti" (narrative) and "Määrä EUROA"
// (signed amount, comma decimal separator). Extra columns are ignored.
package nordea

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/taxreport"
	"github.com/etnz/taxreport/date"
)

// Header names of the columns consumed from the export.
const (
	colDate        = "Kirjauspäivä"
	colCode        = "Laji"
	colDescription = "Selitys"
	colMessage     = "Viesti"
	colAmount      = "Määrä EUROA"
)

// Read decodes one CSV export into a ledger, preserving row order.
//
// Any row with an unparseable date, code or amount is a fatal error: the
// computation downstream has no best-effort mode.
func Read(r io.Reader) (*taxreport.Ledger, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1 // extra columns are tolerated

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	cols, err := columns(header)
	if err != nil {
		return nil, err
	}

	ledger := taxreport.NewLedger()
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tx, err := decodeRow(cols, rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

// ReadDir decodes every *.csv file of a directory, in file name order, into
// a single ledger. The bank exports one file per period and names them
// chronologically, so concatenation keeps the ledger chronological.
func ReadDir(dir string) (*taxreport.Ledger, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV export found in %q", dir)
	}
	sort.Strings(files)

	ledger := taxreport.NewLedger()
	for _, file := range files {
		log.Printf("reading %s", file)
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		part, err := Read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		for tx := range part.All() {
			ledger.Append(tx)
		}
	}
	return ledger, nil
}

// columns maps the required header names to their index.
func columns(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, name := range header {
		if i == 0 {
			// exports written on Windows start with a byte order mark
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colDate, colCode, colDescription, colMessage, colAmount} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q in CSV header", name)
		}
	}
	return cols, nil
}

func decodeRow(cols map[string]int, rec []string) (taxreport.Transaction, error) {
	var zero taxreport.Transaction

	field := func(name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	on, err := date.Parse(strings.TrimSpace(field(colDate)))
	if err != nil {
		return zero, err
	}
	code, err := strconv.Atoi(strings.TrimSpace(field(colCode)))
	if err != nil {
		return zero, fmt.Errorf("invalid category code %q: %w", field(colCode), err)
	}
	amount, err := taxreport.ParseAmount(field(colAmount))
	if err != nil {
		return zero, err
	}

	return taxreport.NewTransaction(on, code, field(colDescription), field(colMessage), amount), nil
}

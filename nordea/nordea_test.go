package nordea

import (
	"strings"
	"testing"

	"github.com/etnz/taxreport"
)

const sampleCSV = "\uFEFF" + `Kirjauspäivä;Arvopäivä;Laji;Selitys;Saaja/Maksaja;Viesti;Määrä EUROA
02.01.2023;02.01.2023;710;Tilisiirto;Oma tili;Oma siirto;100,00
10.01.2023;10.01.2023;700;Osakekauppa;Välittäjä;O:NOKIA/10;-10,00
01.02.2023;01.02.2023;700;Osakekauppa;Välittäjä;M:NOKIA/10;15,00
15.02.2023;15.02.2023;730;Palvelumaksu;Pankki;Palvelumaksu;-1,25
`

func TestRead(t *testing.T) {
	ledger, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ledger.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", ledger.Len())
	}

	var rows []taxreport.Transaction
	for tx := range ledger.All() {
		rows = append(rows, tx)
	}

	first := rows[0]
	if first.Date.String() != "2023-01-02" {
		t.Errorf("first row date = %s, want 2023-01-02", first.Date)
	}
	if first.Code != 710 || first.Description != "Tilisiirto" {
		t.Errorf("first row = %+v, want the transfer row", first)
	}
	if first.Amount.Cents() != 100_00 {
		t.Errorf("first row amount = %d cents, want 10000", first.Amount.Cents())
	}

	buy := rows[1]
	if buy.Message != "O:NOKIA/10" || buy.Amount.Cents() != -10_00 {
		t.Errorf("buy row = %+v", buy)
	}
}

// TestRead_FeedsTheReport checks the decoded ledger end to end against the
// aggregator: the sample above is a complete, consistent little account.
func TestRead_FeedsTheReport(t *testing.T) {
	ledger, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	r, err := taxreport.NewTaxReport(ledger)
	if err != nil {
		t.Fatalf("NewTaxReport() error = %v", err)
	}
	if got := r.BusinessIncome.Cents(); got != 5_00 {
		t.Errorf("BusinessIncome = %d cents, want 500", got)
	}
	if got := r.BusinessExpense.Cents(); got != 1_25 {
		t.Errorf("BusinessExpense = %d cents, want 125", got)
	}
}

func TestRead_MissingColumn(t *testing.T) {
	in := "Kirjauspäivä;Laji;Selitys;Viesti\n01.01.2023;700;x;y\n"
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatal("Read() expected an error on a header without the amount column")
	}
}

func TestRead_MalformedAmount(t *testing.T) {
	in := `Kirjauspäivä;Laji;Selitys;Viesti;Määrä EUROA
02.01.2023;710;Tilisiirto;Oma siirto;ei numero
`
	_, err := Read(strings.NewReader(in))
	if err == nil {
		t.Fatal("Read() expected an error on a malformed amount")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the faulty line", err)
	}
}

func TestRead_MalformedDate(t *testing.T) {
	in := `Kirjauspäivä;Laji;Selitys;Viesti;Määrä EUROA
soon;710;Tilisiirto;Oma siirto;1,00
`
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatal("Read() expected an error on a malformed date")
	}
}

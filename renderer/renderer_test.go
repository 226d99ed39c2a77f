package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/taxreport"
	"github.com/etnz/taxreport/date"
)

func testLedger(t *testing.T) *taxreport.Ledger {
	t.Helper()
	l := taxreport.NewLedger()
	l.Append(
		taxreport.NewTransaction(date.MustParse("2023-01-02"), 710, "Tilisiirto", "Oma siirto", taxreport.Cents(100_00)),
		taxreport.NewTransaction(date.MustParse("2023-01-10"), 700, "Osakekauppa", "O:NOKIA/10", taxreport.Cents(-10_00)),
		taxreport.NewTransaction(date.MustParse("2023-02-01"), 700, "Osakekauppa", "M:NOKIA/4", taxreport.Cents(6_00)),
	)
	return l
}

func TestTaxReportMarkdown(t *testing.T) {
	r, err := taxreport.NewTaxReport(testLedger(t))
	if err != nil {
		t.Fatalf("NewTaxReport() error = %v", err)
	}

	md := TaxReportMarkdown(r)

	for _, want := range []string{
		"# Tax Report",
		"## Report Items",
		"| Business income |",
		"## Gains per Security",
		"| NOKIA |",
		"## Open Lots", // 6 shares are still held
		"| NOKIA | 2023-01-10 | 6 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestTaxReportMarkdown_NoOpenLots(t *testing.T) {
	l := taxreport.NewLedger()
	l.Append(
		taxreport.NewTransaction(date.MustParse("2023-01-02"), 710, "Tilisiirto", "Oma siirto", taxreport.Cents(100_00)),
		taxreport.NewTransaction(date.MustParse("2023-01-10"), 700, "Osakekauppa", "O:NOKIA/10", taxreport.Cents(-10_00)),
		taxreport.NewTransaction(date.MustParse("2023-02-01"), 700, "Osakekauppa", "M:NOKIA/10", taxreport.Cents(15_00)),
	)
	r, err := taxreport.NewTaxReport(l)
	if err != nil {
		t.Fatalf("NewTaxReport() error = %v", err)
	}

	md := TaxReportMarkdown(r)
	if strings.Contains(md, "## Open Lots") {
		t.Errorf("open-lots section rendered for an empty inventory:\n%s", md)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	c := taxreport.Classify(testLedger(t))
	md := TransactionsMarkdown(c)

	for _, want := range []string{
		"## Trades: NOKIA",
		"## Cash Infusions",
		"| 2023-01-02 | Tilisiirto |",
		"## Dividends",
		"none",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

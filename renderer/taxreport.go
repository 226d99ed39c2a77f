// Package renderer turns computed tax reports into markdown documents.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/taxreport"
)

// TaxReportMarkdown renders the report to a markdown string.
func TaxReportMarkdown(r *taxreport.TaxReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Tax Report\n\n")
	fmt.Fprintf(&b, "Computed from %d ledger rows; row-coverage and monetary checksums passed.\n\n", r.Rows)

	fmt.Fprint(&b, "## Report Items\n\n")
	fmt.Fprintln(&b, "| Item | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Business income | %s |\n", r.BusinessIncome)
	fmt.Fprintf(&b, "| Business expense | %s |\n", r.BusinessExpense)
	fmt.Fprintf(&b, "| Cash | %s |\n", r.Cash)
	fmt.Fprintf(&b, "| Financial assets | %s |\n", r.FinancialAsset)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Dividends received: %s. External cash infusions: %s.\n\n", r.Dividends, r.CashInfusions)

	fmt.Fprint(&b, "## Gains per Security\n\n")
	fmt.Fprintln(&b, "| Security | Realized | Book Value |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	var realized taxreport.Money
	for _, sg := range r.Symbols {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", sg.Symbol, sg.Realized.SignedString(), sg.BookValue)
		realized = realized.Add(sg.Realized)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** |\n", realized.SignedString(), r.FinancialAsset)
	fmt.Fprintln(&b)

	// The open-lots section only appears when some shares are still held.
	section := Header(func(w io.Writer) {
		fmt.Fprint(w, "## Open Lots\n\n")
		fmt.Fprintln(w, "| Security | Bought | Shares | Cost |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|")
	})
	for _, sg := range r.Symbols {
		for _, lot := range sg.Remaining {
			section.PrintHeader(&b)
			fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", sg.Symbol, lot.Date, lot.Shares, lot.Amount)
		}
	}

	return b.String()
}

// TransactionsMarkdown renders the classified ledger for auditing: every row
// under the category it landed in.
func TransactionsMarkdown(c taxreport.Classification) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Classified Transactions\n\n")

	for _, st := range c.Trades {
		fmt.Fprintf(&b, "## Trades: %s\n\n", st.Symbol)
		rows(&b, st.Rows)
	}
	fmt.Fprint(&b, "## Dividends\n\n")
	rows(&b, c.Dividends)
	fmt.Fprint(&b, "## Cash Infusions\n\n")
	rows(&b, c.CashInfusions)
	fmt.Fprint(&b, "## Expenses\n\n")
	rows(&b, c.Expenses)

	return b.String()
}

func rows(b *strings.Builder, txs []taxreport.Transaction) {
	if len(txs) == 0 {
		fmt.Fprint(b, "none\n\n")
		return
	}
	fmt.Fprintln(b, "| Date | Description | Message | Amount |")
	fmt.Fprintln(b, "|:---|:---|:---|---:|")
	for _, tx := range txs {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", tx.Date, tx.Description, tx.Message, tx.Amount.SignedString())
	}
	fmt.Fprintln(b)
}

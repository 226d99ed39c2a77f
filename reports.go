package taxreport

import "fmt"

// SymbolGains holds the realized profit and remaining book value of one symbol.
type SymbolGains struct {
	Symbol    string
	Realized  Money // profit (or loss) realized by FIFO matching
	BookValue Money // cost basis of the unsold shares
	Remaining []Lot // residual inventory, oldest first
}

// TaxReport contains the computed capital-gains tax figures of one ledger.
//
// The four report items (business income, business expense, cash, financial
// asset) are what the tax declaration needs; the rest is supporting detail
// for rendering and auditing. A TaxReport is only ever produced with both
// consistency checks passing.
type TaxReport struct {
	BusinessIncome  Money // dividends plus realized trading profit
	BusinessExpense Money // absolute sum of expense rows
	Cash            Money // sum of all posting amounts
	FinancialAsset  Money // book value of unsold shares across symbols

	Symbols       []SymbolGains
	Dividends     Money // dividend payments total
	CashInfusions Money // external cash injected into the account
	Rows          int   // ledger rows covered by the report
}

// NewTaxReport classifies the ledger, matches every symbol's trades with
// FIFO, and aggregates the results into the report figures.
//
// Two independent checks must hold:
//
//  1. Row coverage: the four categories together account for every ledger
//     row exactly once, and the ledger has more than one row. A failure
//     means a row was dropped (unrecognized category code) or double
//     counted (two predicates matched it).
//  2. Monetary identity: expense + financial asset + cash - income equals
//     the sum of cash infusions. Inflows must reconcile against the
//     external cash injected; a failure means an arithmetic or
//     classification defect.
//
// Any failure aborts the whole computation, there is no partial report.
func NewTaxReport(l *Ledger) (*TaxReport, error) {
	c := Classify(l)

	if n := c.Rows(); l.Len() <= 1 || n != l.Len() {
		return nil, &ValidationError{
			Check:  "row coverage",
			Detail: fmt.Sprintf("categories cover %d of %d ledger rows", n, l.Len()),
		}
	}

	r := &TaxReport{Rows: l.Len()}

	var realized Money
	for _, st := range c.Trades {
		profit, remaining, err := Match(Lots(st.Rows))
		if err != nil {
			return nil, fmt.Errorf("matching %s trades: %w", st.Symbol, err)
		}
		book := BookValue(remaining)
		r.Symbols = append(r.Symbols, SymbolGains{
			Symbol:    st.Symbol,
			Realized:  profit,
			BookValue: book,
			Remaining: remaining,
		})
		realized = realized.Add(profit)
		r.FinancialAsset = r.FinancialAsset.Add(book)
	}

	r.Dividends = sumAmounts(c.Dividends)
	r.CashInfusions = sumAmounts(c.CashInfusions)
	r.BusinessIncome = r.Dividends.Add(realized)
	r.BusinessExpense = sumAmounts(c.Expenses).Abs()
	r.Cash = l.CashBalance()

	// expense + assets + cash - income must equal the external cash injected.
	balance := r.BusinessExpense.Add(r.FinancialAsset).Add(r.Cash).Sub(r.BusinessIncome)
	if !balance.Equal(r.CashInfusions) {
		return nil, &ValidationError{
			Check:  "monetary",
			Detail: fmt.Sprintf("expense + assets + cash - income = %s, want cash infusions %s", balance, r.CashInfusions),
		}
	}
	return r, nil
}

func sumAmounts(rows []Transaction) Money {
	var sum Money
	for _, tx := range rows {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

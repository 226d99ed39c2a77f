package taxreport

import "github.com/etnz/taxreport/date"

// Row constructors for synthetic ledgers. Codes and descriptions follow the
// bank export: 700 securities rows, 710 transfers, dividends marked by the
// "Arvopaperit" description, expenses by a negative amount.

func dateOf(s string) date.Date { return date.MustParse(s) }

func tradeRow(on, message string, cents int64) Transaction {
	return NewTransaction(date.MustParse(on), codeSecurities, "Osakekauppa", message, Cents(cents))
}

func dividendRow(on string, cents int64) Transaction {
	return NewTransaction(date.MustParse(on), 720, "Arvopaperit", "Osinko", Cents(cents))
}

func infusionRow(on string, cents int64) Transaction {
	return NewTransaction(date.MustParse(on), codeTransfer, "Tilisiirto", "Oma siirto", Cents(cents))
}

func expenseRow(on string, cents int64) Transaction {
	return NewTransaction(date.MustParse(on), 730, "Palvelumaksu", "Palvelumaksu", Cents(cents))
}

func newTestLedger(txs ...Transaction) *Ledger {
	l := NewLedger()
	l.Append(txs...)
	return l
}

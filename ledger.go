package taxreport

import "iter"

// Ledger represents the full list of bank transactions.
//
// In a Ledger transactions are kept in the order they were read: the bank
// export is chronological, and the FIFO matcher relies on that order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions at the end of the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// All returns an iterator over all transactions in ledger order.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// CashBalance returns the sum of all posting amounts over the entire ledger.
func (l *Ledger) CashBalance() Money {
	var sum Money
	for _, tx := range l.transactions {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

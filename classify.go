package taxreport

import "strings"

// Category codes and description markers of the bank export format.
const (
	codeSecurities = 700 // "Laji" code for securities trades
	codeTransfer   = 710 // "Laji" code for account transfers

	descDividend = "arvopaperit" // "Selitys" marker for dividend payments
	descTransfer = "tilisiirto"  // "Selitys" marker for cash infusions
)

// SymbolTrades groups the stock-trade rows of one symbol, ledger order preserved.
type SymbolTrades struct {
	Symbol string
	Rows   []Transaction
}

// Classification partitions a ledger into four categories.
//
// On a well-formed ledger the categories are disjoint and exhaustive: every
// row lands in exactly one of them. Classification itself does not enforce
// that; the aggregator's row-coverage checksum does.
type Classification struct {
	Trades        []SymbolTrades // stock trades, symbols in first-appearance order
	Dividends     []Transaction
	CashInfusions []Transaction
	Expenses      []Transaction
}

// Classify partitions the ledger. It is a pure function of the ledger.
func Classify(l *Ledger) Classification {
	var c Classification
	index := make(map[string]int) // symbol to its position in c.Trades

	for tx := range l.All() {
		if tx.Code == codeSecurities {
			if tm, ok := ParseTradeMessage(tx.Message); ok {
				i, seen := index[tm.Symbol]
				if !seen {
					i = len(c.Trades)
					index[tm.Symbol] = i
					c.Trades = append(c.Trades, SymbolTrades{Symbol: tm.Symbol})
				}
				c.Trades[i].Rows = append(c.Trades[i].Rows, tx)
			}
		}

		if strings.EqualFold(tx.Description, descDividend) {
			c.Dividends = append(c.Dividends, tx)
		}

		if tx.Code == codeTransfer && strings.EqualFold(strings.TrimSpace(tx.Description), descTransfer) {
			c.CashInfusions = append(c.CashInfusions, tx)
		}

		if tx.Amount.IsNegative() {
			if _, ok := ParseTradeMessage(tx.Message); !ok {
				c.Expenses = append(c.Expenses, tx)
			}
		}
	}
	return c
}

// TradeRows returns the total number of stock-trade rows across all symbols.
func (c Classification) TradeRows() int {
	n := 0
	for _, st := range c.Trades {
		n += len(st.Rows)
	}
	return n
}

// Rows returns the total number of classified rows, counting a row once per
// category it landed in. On a well-formed ledger this equals the ledger length.
func (c Classification) Rows() int {
	return c.TradeRows() + len(c.Dividends) + len(c.CashInfusions) + len(c.Expenses)
}

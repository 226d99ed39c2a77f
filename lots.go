package taxreport

import (
	"fmt"

	"github.com/etnz/taxreport/date"
)

// Lot is a single buy or sell quantity of a security with its total cost
// (buy) or proceeds (sell) in cents.
type Lot struct {
	Date   date.Date
	Side   Side
	Shares int64
	Amount Money // always non-negative
}

// Lots converts the stock-trade rows of one symbol into lots, order preserved.
//
// The share count comes from the trading narrative, the amount is the
// absolute posting amount. Rows whose narrative is not a trade are skipped
// (the classifier already filtered them out).
func Lots(rows []Transaction) []Lot {
	var lots []Lot
	for _, tx := range rows {
		tm, ok := ParseTradeMessage(tx.Message)
		if !ok {
			continue
		}
		lots = append(lots, Lot{
			Date:   tx.Date,
			Side:   tm.Side,
			Shares: tm.Shares,
			Amount: tx.Amount.Abs(),
		})
	}
	return lots
}

// Match consumes one symbol's chronological lot sequence using the FIFO
// method and returns the realized profit (or loss, negative) together with
// the residual inventory of unsold buy lots.
//
// A sell is matched against the oldest buy lots first. When a sell spans
// several buy lots, its proceeds are split proportionally to the shares
// taken from each lot; when it consumes only part of a buy lot, the lot's
// cost is split the same way and the residual replaces it in the queue.
// All proration is floor division on cents: the rounding residue stays in
// the running profit, it is never dropped.
//
// Match trusts the input order and never sorts. A sell that exceeds the
// available buy inventory returns an error wrapping ErrOversold: selling
// short is not representable in this model.
func Match(lots []Lot) (profit Money, remaining []Lot, err error) {
	var queue []Lot // unconsumed buy lots, oldest first
	var total int64

	for _, lt := range lots {
		if lt.Side == Buy {
			queue = append(queue, lt)
			continue
		}

		shares := lt.Shares
		proceeds := lt.Amount.cents
		for shares > 0 && len(queue) > 0 {
			head := queue[0]
			if head.Shares <= shares {
				// The head lot is fully consumed: it takes a share-proportional
				// slice of the remaining proceeds.
				slice := proceeds * head.Shares / shares
				total += slice - head.Amount.cents
				proceeds -= slice
				shares -= head.Shares
				queue = queue[1:]
			} else {
				// The head lot is partially consumed: the sold shares take a
				// proportional slice of the head's cost, the residual lot keeps
				// the rest.
				cost := head.Amount.cents * shares / head.Shares
				total += proceeds - cost
				queue[0] = Lot{
					Date:   head.Date,
					Side:   Buy,
					Shares: head.Shares - shares,
					Amount: Cents(head.Amount.cents - cost),
				}
				shares = 0
			}
		}
		if shares > 0 {
			return Money{}, nil, fmt.Errorf("sell of %d shares on %s leaves %d shares unmatched: %w",
				lt.Shares, lt.Date, shares, ErrOversold)
		}
	}
	return Cents(total), queue, nil
}

// BookValue returns the total cost basis of a residual inventory.
func BookValue(remaining []Lot) Money {
	var sum Money
	for _, lt := range remaining {
		sum = sum.Add(lt.Amount)
	}
	return sum
}

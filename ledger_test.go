package taxreport

import "testing"

func TestLedger_Append(t *testing.T) {
	l := NewLedger()
	if l.Len() != 0 {
		t.Fatalf("new ledger Len() = %d, want 0", l.Len())
	}

	l.Append(
		infusionRow("2023-01-02", 100_00),
		expenseRow("2023-02-15", -1_00),
	)
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}

	// All() yields rows in ledger order.
	var dates []string
	for tx := range l.All() {
		dates = append(dates, tx.Date.String())
	}
	if len(dates) != 2 || dates[0] != "2023-01-02" || dates[1] != "2023-02-15" {
		t.Errorf("All() order = %v", dates)
	}
}

func TestLedger_CashBalance(t *testing.T) {
	l := newTestLedger(
		infusionRow("2023-01-02", 100_00),
		expenseRow("2023-02-15", -1_25),
	)
	if got := l.CashBalance().Cents(); got != 98_75 {
		t.Errorf("CashBalance() = %d cents, want 9875", got)
	}
}

package taxreport

import (
	"fmt"

	"github.com/etnz/taxreport/date"
)

// Transaction is a single row of the bank ledger.
//
// A transaction is read-only input: its identity is its position in the
// ledger and it is never mutated after decoding.
type Transaction struct {
	Date        date.Date // posting date
	Code        int       // bank category code ("Laji")
	Description string    // free-text row type ("Selitys")
	Message     string    // free-text narrative ("Viesti")
	Amount      Money     // signed posting amount
}

// NewTransaction returns a single ledger row.
func NewTransaction(on date.Date, code int, description, message string, amount Money) Transaction {
	return Transaction{
		Date:        on,
		Code:        code,
		Description: description,
		Message:     message,
		Amount:      amount,
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %d %q %q %s", t.Date, t.Code, t.Description, t.Message, t.Amount.SignedString())
}

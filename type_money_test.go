package taxreport

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want int64
	}{
		{"1234,56", 123456},
		{"-12,34", -1234},
		{"0,10", 10},
		{"-0,10", -10},
		{"7", 700},
		{"12.5", 1250},
		{" 3,00 ", 300},
		{"0,005", 1},  // rounded half away from zero
		{"-0,005", -1},
		{"0,004", 0},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error = %v", tc.in, err)
			continue
		}
		if got.Cents() != tc.want {
			t.Errorf("ParseAmount(%q) = %d cents, want %d", tc.in, got.Cents(), tc.want)
		}
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1,2,3", "12,34 EUR"} {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) expected an error", in)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := Cents(150), Cents(-50)

	if got := a.Add(b); got.Cents() != 100 {
		t.Errorf("Add = %d, want 100", got.Cents())
	}
	if got := a.Sub(b); got.Cents() != 200 {
		t.Errorf("Sub = %d, want 200", got.Cents())
	}
	if got := b.Abs(); got.Cents() != 50 {
		t.Errorf("Abs = %d, want 50", got.Cents())
	}
	if got := a.Neg(); got.Cents() != -150 {
		t.Errorf("Neg = %d, want -150", got.Cents())
	}
	if !b.IsNegative() || b.IsPositive() || b.IsZero() {
		t.Errorf("predicates wrong for %d cents", b.Cents())
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := Cents(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want \"-\"", got)
	}
	if got := Cents(100).SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString = %q, want a leading '+'", got)
	}
}

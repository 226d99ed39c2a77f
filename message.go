package taxreport

import (
	"strconv"
	"strings"
)

// The bank encodes stock trades in the narrative field of a securities row:
//
//	<SIDE>:<SYMBOL>[ <venue>]/<COUNT>
//
// where SIDE is "O" (buy) or "M" (sell), SYMBOL is an alphanumeric/dot
// token, an optional whitespace-delimited venue token may follow, and COUNT
// is the decimal share count right after the slash. Anything after the
// count is ignored.

// Side of a stock trade.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// TradeMessage is the parsed form of a trading narrative.
type TradeMessage struct {
	Side   Side
	Symbol string
	Shares int64
}

// ParseTradeMessage scans 'msg' against the trading-message grammar.
// It returns the parsed message and whether the narrative is a trade at all.
func ParseTradeMessage(msg string) (TradeMessage, bool) {
	s := strings.TrimSpace(msg)

	if len(s) < 2 || (s[0] != 'O' && s[0] != 'M') || s[1] != ':' {
		return TradeMessage{}, false
	}
	var tm TradeMessage
	if s[0] == 'M' {
		tm.Side = Sell
	}

	// symbol: one or more of [0-9A-Za-z_.]
	i := 2
	start := i
	for i < len(s) && isSymbolChar(s[i]) {
		i++
	}
	if i == start {
		return TradeMessage{}, false
	}
	tm.Symbol = s[start:i]

	// optional whitespace-delimited venue token
	i = skipSpace(s, i)
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	i = skipSpace(s, i)

	if i >= len(s) || s[i] != '/' {
		return TradeMessage{}, false
	}
	i++

	// share count: decimal digits immediately after the slash
	start = i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return TradeMessage{}, false
	}
	shares, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil {
		return TradeMessage{}, false
	}
	tm.Shares = shares
	return tm, true
}

func isWordChar(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSymbolChar(c byte) bool { return c == '.' || isWordChar(c) }

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

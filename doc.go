// Package taxreport computes capital-gains tax figures from a bank
// transaction ledger.
//
// The core functionalities include:
//   - Classification: partitioning the raw ledger rows into four disjoint,
//     exhaustive categories (stock trades grouped by symbol, dividend
//     payments, cash infusions, and expenses).
//   - FIFO Lot Matching: resolving each symbol's chronological buy/sell
//     sequence into realized profit and the residual inventory of unsold
//     lots, with proportional cost/proceeds splitting on partial fills.
//   - Aggregation: combining classifier and matcher outputs into the final
//     report figures, re-validated by two independent checksums (row
//     coverage and a balance-sheet identity).
//
// All monetary values are exact integers in cents. Decimal amounts are
// parsed once at the ingestion boundary; no floating point arithmetic
// appears anywhere in the profit or checksum computations.
//
// This package serves as the foundational logic for the `trc` command-line
// tool. Reading the bank CSV export lives in the nordea package, and
// presentation lives in the renderer package.
package taxreport

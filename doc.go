// Package tradebook records trades on tradable instruments and reports their
// profit and loss against current market prices.
//
// The core concepts are:
//   - Instrument: a tradable asset with an immutable identity (name, currency,
//     issuer) and a mutable market price that always stays strictly positive.
//   - Ledger: an append-only, row-oriented book of Trade records. Each trade
//     captures the instrument price at the moment it was recorded, while the
//     instrument itself is shared, so that market prices are always read live.
//   - Report: the ledger grouped by a Category (portfolio, marketplace,
//     acquirer or counterparty), with per-trade and total profit/loss.
//
// Profit and loss are computed with decimal arithmetic and rounded to two
// decimal places. Percent computations never panic on a zero denominator, they
// return ErrDivisionByZero instead.
//
// This package serves as the foundational logic for the `tb` command-line
// tool.
package tradebook

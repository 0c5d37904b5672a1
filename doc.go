// Package portfolio provides the types and functions to keep a personal
// investment ledger and value it. It is designed to be local-first and
// auditable: the ledger is a plain JSONL file, and every valuation is
// recomputed from scratch so the numbers can always be traced back to the
// recorded events.
//
// The core functionalities include:
//   - Ledger Management: recording buys, sells, dividends, deposits,
//     withdrawals and fees in a chronological record, with asset
//     declarations, current prices and seeded realized gains alongside.
//   - Valuation: a stateless engine that folds the ledger into open tax
//     lots (consumed oldest first on sales), per-asset realized gains and
//     a single cash balance.
//   - Reporting: a holdings summary with average cost, market value,
//     unrealized and realized gains per held asset, exportable as CSV.
//   - Data Persistence: encoding and decoding the ledger to and from a
//     human-readable, version-controllable JSONL format, with a bounded
//     undo history built on the same encoding.
//
// This package serves as the foundational logic for the `pft` command-line
// tool.
package portfolio

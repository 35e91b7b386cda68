// Package tradejournal computes the figures of a personal trade journal.
//
// The journal is a list of buy and sell executions ([Trade]). Everything else
// is derived from it on demand, from scratch, by replaying the trades in a
// single canonical order (by date, then by id):
//   - Positions: per-symbol quantity, weighted average cost, realized P&L and
//     win/loss counters ([Summaries]).
//   - Time series: realized P&L per day and per month ([DailyPnL], [MonthlyPnL]).
//   - Tags: realized P&L attributed to every tag carried by a sell ([TagStats]).
//   - Roll-up: unrealized P&L of open positions against current prices, and
//     portfolio totals ([Holdings], [Overall]).
//
// Costs follow the average-cost method: a sell realizes the difference
// between its price and the average cost of the units held just before it.
//
// All computations are pure functions: they never modify their input, keep
// no state between calls and can run concurrently ([NewReport]). They do not
// validate their input either, use [ValidateTrades] at the boundary.
//
// This package serves as the foundational logic for the `tj` command-line
// tool.
package tradejournal

// Package fundtrack tracks a personal portfolio of investment funds: each
// fund carries a fee schedule, a buy/sell ledger and a dated price history,
// and the package derives valuation metrics, recommendations and cross-fund
// statistics from them.
//
// The whole dataset is a single State persisted as one JSON document; see
// LoadState and SaveState. The command line tool lives in the ftk directory.
package fundtrack

// Package supplier fetches and parses the supplier's inventory feed.
//
// The feed is a zip archive published on the supplier's site containing one
// stock spreadsheet. Records downloads the archive, extracts the spreadsheet
// in memory and maps its rows into reconcile.SupplierRecord values.
//
// The spreadsheet layout is configuration, not code: the header row index
// and the column labels for code, quantity and price all come from Config,
// with defaults matching the current feed.
package supplier

// Package agenda implements a local-first personal record keeper: daily
// journal entries and a cash book of transactions with photographic
// receipts. Records live in a single SQLite file (see the store package),
// travel as one versioned JSON snapshot (backup package) and print as
// fixed-page PDF documents (report package).
//
// This package holds the data model shared by all of them: the record
// types and their invariants, money parsing and formatting in integer
// minor units, the data-URI codec used by snapshots, and the error
// taxonomy every component reports against.
package agenda

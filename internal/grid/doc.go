// Package grid exposes an entrant collection as a table of lap cells.
//
// Columns are entrant identities and rows are lap indexes. The adapter owns
// no lap data: reads go straight to the collection, writes are parsed with
// laptime.Parse and routed to an edit or an append, and every collection
// change is forwarded to subscribers as an Invalidation so a display can
// redraw the affected cell and its headers.
package grid

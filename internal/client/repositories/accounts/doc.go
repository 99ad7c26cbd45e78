// Package accounts provides the client-side persistence layer for bank
// accounts.
//
// Every account row carries its owner's username in user_id. Reads are
// always scoped by owner except ListAll, which backs the export command.
// ReassignOwner moves every row of one owner to another in a single
// statement and is what keeps ownership consistent across a rename.
package accounts

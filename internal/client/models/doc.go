// Package models defines the client-side data model of finboard: users and
// their session marker, bank accounts, per-user settings and the default
// locale.
package models

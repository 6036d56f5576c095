// Package models defines the records that move between the parser, the
// store and the HTTP surface.
package models

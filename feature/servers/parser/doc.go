// Package parser extracts server fields from loosely formatted channel
// messages.
//
// Extraction is a fixed sequence of passes:
//
//  1. message content that looks like a job id
//  2. embed fields, each claimed by the first matching rule
//     (name, money, players, job)
//  3. embed title when no field named the server
//  4. embed description (teleport call, then UUID) when no job id is known
//
// Embeds are visited in order and later findings overwrite earlier ones.
// ParseAmount decodes the "$1.2M"-style figures found in money fields.
package parser

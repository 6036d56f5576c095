// Package utils provides common utility functions for the server-relay application,
// such as loose numeric conversion of decoded JSON values.
package utils

// Package model provides domain model for sq3
package model

import "errors"

// ErrUnknownRenderMode is returned when a mode name is neither tabular nor tab-delimited
var ErrUnknownRenderMode = errors.New("unknown render mode")

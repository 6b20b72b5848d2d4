// SPDX-License-Identifier: MIT

package converters

import "github.com/pkg/errors"

// ErrUnknownFormat indicates a format name or file extension other than
// yaml, yml or json.
var ErrUnknownFormat = errors.New("converters: unknown document format")

// ErrBadDocument indicates a document that does not parse or that violates
// structural constraints (empty IDs, negative keys, keys on a simple graph).
var ErrBadDocument = errors.New("converters: bad document")

// SPDX-License-Identifier: MIT
package graph

import "errors"

var (
	// ErrUnknownNode indicates a query referenced a node the graph (or a node
	// map) does not contain.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrNilGraph indicates a nil *Graph was passed to an operation that needs one.
	ErrNilGraph = errors.New("graph: graph is nil")
)

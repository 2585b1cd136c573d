// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

// Node is a logical plan node. Plans are immutable value trees: each
// builder step produces a fresh Node referencing its input(s).
type Node interface {
	// Schema is the output schema produced by this node.
	Schema() Schema
	// Children returns this node's input plans, in order.
	Children() []Node
	// AliasedSchema is the per-alias view of this node's output, used to
	// resolve qualified identifiers against relations further up the tree.
	AliasedSchema() AliasedSchema
	// String renders a single-line EXPLAIN-style description of this node
	// (not including its children).
	String() string
}

// SortField pairs a resolved expression with its sort direction and null
// ordering, matching the Expression variant `Sort{expr, asc, nulls_first}`.
type SortField struct {
	Expr       Expression
	Asc        bool
	NullsFirst bool
}

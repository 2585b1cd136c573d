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

package plan

import "github.com/arrowbase/sqlplanner/sql"

// Union concatenates the rows of every input without deduplication (UNION
// ALL). All inputs must share the same schema.
type Union struct {
	Inputs []sql.Node
}

// NewUnion flattens any nested Union inputs into a single flat list, then
// validates that every remaining input shares the first one's schema.
func NewUnion(inputs []sql.Node) (*Union, error) {
	var flat []sql.Node
	for _, n := range inputs {
		if u, ok := n.(*Union); ok {
			flat = append(flat, u.Inputs...)
		} else {
			flat = append(flat, n)
		}
	}
	if len(flat) == 0 {
		return nil, sql.ErrUnionEmpty.New()
	}
	first := flat[0].Schema()
	for _, n := range flat[1:] {
		if !n.Schema().Equal(first) {
			return nil, sql.ErrUnionSchemaMismatch.New()
		}
	}
	return &Union{Inputs: flat}, nil
}

func (u *Union) Schema() sql.Schema { return u.Inputs[0].Schema() }

func (u *Union) Children() []sql.Node { return u.Inputs }

func (u *Union) AliasedSchema() sql.AliasedSchema { return u.Inputs[0].AliasedSchema() }

func (u *Union) String() string { return "Union" }

// EmptyRelation is a zero-row relation with a fixed schema, used as the
// degenerate plan for queries with no FROM clause (e.g. SELECT 1).
type EmptyRelation struct {
	ProduceOneRow bool
	Output        sql.Schema
}

func NewEmptyRelation(produceOneRow bool, schema sql.Schema) *EmptyRelation {
	return &EmptyRelation{ProduceOneRow: produceOneRow, Output: schema}
}

func (e *EmptyRelation) Schema() sql.Schema { return e.Output }

func (e *EmptyRelation) Children() []sql.Node { return nil }

func (e *EmptyRelation) AliasedSchema() sql.AliasedSchema { return sql.AliasedSchema{"": e.Output} }

func (e *EmptyRelation) String() string {
	if e.ProduceOneRow {
		return "EmptyRelation: produce_one_row=true"
	}
	return "EmptyRelation: produce_one_row=false"
}

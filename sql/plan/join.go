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

import (
	"fmt"

	"github.com/arrowbase/sqlplanner/sql"
)

// JoinType is the closed set of join kinds the translator produces.
// Cartesian products and NATURAL/USING joins are recognized only to be
// rejected; they never reach a Join node.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
)

func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "Inner"
	case LeftJoin:
		return "Left"
	case RightJoin:
		return "Right"
	case FullJoin:
		return "Full"
	default:
		return "Unknown"
	}
}

// JoinKey is one equijoin column pair, one side drawn from the left input
// and one from the right.
type JoinKey struct {
	Left  sql.Expression
	Right sql.Expression
}

// Join combines Left and Right row-wise on the equality of each JoinKeys
// pair. Its output schema concatenates the left schema with the right
// schema, nulling out the non-preserved side's fields for outer joins.
type Join struct {
	Left, Right sql.Node
	Keys        []JoinKey
	Type        JoinType
}

func NewJoin(left, right sql.Node, keys []JoinKey, joinType JoinType) *Join {
	return &Join{Left: left, Right: right, Keys: keys, Type: joinType}
}

func (j *Join) Schema() sql.Schema {
	left, right := j.Left.Schema(), j.Right.Schema()
	switch j.Type {
	case LeftJoin:
		right = right.WithNullable()
	case RightJoin:
		left = left.WithNullable()
	case FullJoin:
		left, right = left.WithNullable(), right.WithNullable()
	}
	return left.Concat(right)
}

func (j *Join) Children() []sql.Node { return []sql.Node{j.Left, j.Right} }

func (j *Join) AliasedSchema() sql.AliasedSchema {
	return j.Left.AliasedSchema().Chain(j.Right.AliasedSchema())
}

func (j *Join) String() string {
	if len(j.Keys) == 0 {
		return fmt.Sprintf("%sJoin:", j.Type)
	}
	out := fmt.Sprintf("%sJoin:", j.Type)
	for _, k := range j.Keys {
		out += fmt.Sprintf(" %s = %s", k.Left, k.Right)
	}
	return out
}

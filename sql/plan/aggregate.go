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
	"strings"

	"github.com/arrowbase/sqlplanner/sql"
)

// Aggregate groups Input's rows by GroupExprs and evaluates AggrExprs over
// each group. Its output schema is the group expressions followed by the
// aggregate expressions, in that order.
type Aggregate struct {
	GroupExprs []sql.Expression
	AggrExprs  []sql.Expression
	Input      sql.Node
	Output     sql.Schema
}

func NewAggregate(groupExprs, aggrExprs []sql.Expression, input sql.Node) (*Aggregate, error) {
	schema := input.Schema()
	out := make(sql.Schema, 0, len(groupExprs)+len(aggrExprs))
	for _, e := range append(append([]sql.Expression{}, groupExprs...), aggrExprs...) {
		typ, err := e.Type(schema)
		if err != nil {
			return nil, err
		}
		name, err := e.Name(schema)
		if err != nil {
			return nil, err
		}
		out = append(out, sql.Field{Name: name, Type: typ})
	}
	return &Aggregate{GroupExprs: groupExprs, AggrExprs: aggrExprs, Input: input, Output: out}, nil
}

func (a *Aggregate) Schema() sql.Schema { return a.Output }

func (a *Aggregate) Children() []sql.Node { return []sql.Node{a.Input} }

func (a *Aggregate) AliasedSchema() sql.AliasedSchema {
	return sql.AliasedSchema{"": a.Output}
}

func (a *Aggregate) String() string {
	groups := make([]string, len(a.GroupExprs))
	for i, e := range a.GroupExprs {
		groups[i] = e.String()
	}
	aggrs := make([]string, len(a.AggrExprs))
	for i, e := range a.AggrExprs {
		aggrs[i] = e.String()
	}
	return fmt.Sprintf("Aggregate: groupBy=[%s], aggr=[%s]", strings.Join(groups, ", "), strings.Join(aggrs, ", "))
}

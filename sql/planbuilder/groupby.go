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

package planbuilder

import (
	"sort"

	"github.com/arrowbase/sqlplanner/sql"
	"github.com/arrowbase/sqlplanner/sql/expression"
)

// isAggregateExpr reports whether e is, or contains, an aggregate call.
func isAggregateExpr(e sql.Expression) bool {
	switch e.(type) {
	case *expression.AggregateFunction, *expression.AggregateUDF:
		return true
	}
	for _, c := range e.Children() {
		if isAggregateExpr(c) {
			return true
		}
	}
	return false
}

// collectAggregateExprs gathers every distinct aggregate call (by
// canonical name) reachable from exprs, in first-encountered order.
func collectAggregateExprs(exprs []sql.Expression, schema sql.Schema) ([]sql.Expression, error) {
	seen := map[string]bool{}
	var out []sql.Expression
	var walk func(e sql.Expression) error
	walk = func(e sql.Expression) error {
		if isAggregateExpr(e) {
			switch e.(type) {
			case *expression.AggregateFunction, *expression.AggregateUDF:
				name, err := e.Name(schema)
				if err != nil {
					return err
				}
				if !seen[name] {
					seen[name] = true
					out = append(out, e)
				}
				return nil
			}
		}
		for _, c := range e.Children() {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range exprs {
		if err := walk(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkGroupByCoherence requires the non-aggregate projection expressions
// and the group-by expressions to name the same columns as multisets
// (sorted and compared with duplicates intact), not merely the same set.
func checkGroupByCoherence(projExprs, groupExprs []sql.Expression, schema sql.Schema) error {
	var projNames []string
	for _, p := range projExprs {
		if isAggregateExpr(p) {
			continue
		}
		n, err := p.Name(schema)
		if err != nil {
			return err
		}
		projNames = append(projNames, n)
	}
	var groupNames []string
	for _, g := range groupExprs {
		n, err := g.Name(schema)
		if err != nil {
			return err
		}
		groupNames = append(groupNames, n)
	}

	sort.Strings(projNames)
	sort.Strings(groupNames)
	if len(projNames) != len(groupNames) {
		return sql.ErrProjectionNonAggregate.New()
	}
	for i := range projNames {
		if projNames[i] != groupNames[i] {
			return sql.ErrProjectionNonAggregate.New()
		}
	}
	return nil
}

// replaceAggregateInProjection rewrites a projection expression tree so
// every aggregate sub-expression is replaced with a plain Column reference
// to the corresponding field of the Aggregate node's output schema. This
// is how the post-aggregate reprojection step consumes the Aggregate
// node's columns instead of recomputing the aggregate call.
func replaceAggregateInProjection(e sql.Expression, schema sql.Schema) (sql.Expression, error) {
	switch v := e.(type) {
	case *expression.AggregateFunction, *expression.AggregateUDF:
		name, err := e.Name(schema)
		if err != nil {
			return nil, err
		}
		return expression.NewColumn(name), nil
	case *expression.Alias:
		inner, err := replaceAggregateInProjection(v.Expr, schema)
		if err != nil {
			return nil, err
		}
		return expression.NewAlias(inner, v.Label), nil
	case *expression.BinaryExpr:
		l, err := replaceAggregateInProjection(v.Left, schema)
		if err != nil {
			return nil, err
		}
		r, err := replaceAggregateInProjection(v.Right, schema)
		if err != nil {
			return nil, err
		}
		return expression.NewBinary(l, v.Op, r), nil
	case *expression.Cast:
		inner, err := replaceAggregateInProjection(v.Expr, schema)
		if err != nil {
			return nil, err
		}
		return expression.NewCast(inner, v.Typ), nil
	default:
		if !isAggregateExpr(e) {
			return e, nil
		}
		name, err := e.Name(schema)
		if err != nil {
			return nil, err
		}
		return expression.NewColumn(name), nil
	}
}

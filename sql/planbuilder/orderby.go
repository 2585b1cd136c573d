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
	"strconv"

	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/arrowbase/sqlplanner/sql"
)

// planOrderBy resolves an ORDER BY clause against sc, supporting positional
// references to the SELECT list (`ORDER BY 2 DESC`) as well as arbitrary
// expressions.
func (b *Builder) planOrderBy(order sqlparser.OrderBy, projExprs []sql.Expression, sc *scope) ([]sql.SortField, error) {
	fields := make([]sql.SortField, len(order))
	for i, o := range order {
		expr, err := b.resolveOrderTerm(o.Expr, projExprs, sc)
		if err != nil {
			return nil, err
		}
		fields[i] = sql.SortField{
			Expr:       expr,
			Asc:        o.Direction != sqlparser.DescScr,
			NullsFirst: o.Direction != sqlparser.DescScr,
		}
	}
	return fields, nil
}

func (b *Builder) resolveOrderTerm(e sqlparser.Expr, projExprs []sql.Expression, sc *scope) (sql.Expression, error) {
	if lit, ok := e.(*sqlparser.SQLVal); ok && lit.Type == sqlparser.IntVal {
		ord, err := strconv.Atoi(string(lit.Val))
		if err != nil {
			return nil, sql.ErrNotANumber.New(string(lit.Val))
		}
		if ord < 1 || ord > len(projExprs) {
			return nil, sql.ErrOrdinalOutOfRange.New(len(projExprs), ord)
		}
		return projExprs[ord-1], nil
	}
	return b.resolveExpr(e, sc)
}

// planGroupByList resolves a GROUP BY clause, supporting positional
// references to the SELECT list exactly like ORDER BY, but additionally
// rejecting a position that names an aggregate expression.
func (b *Builder) planGroupByList(group sqlparser.GroupBy, projExprs []sql.Expression, sc *scope) ([]sql.Expression, error) {
	out := make([]sql.Expression, len(group))
	for i, e := range group {
		if lit, ok := e.(*sqlparser.SQLVal); ok && lit.Type == sqlparser.IntVal {
			ord, err := strconv.Atoi(string(lit.Val))
			if err != nil {
				return nil, sql.ErrNotANumber.New(string(lit.Val))
			}
			if ord < 1 || ord > len(projExprs) {
				return nil, sql.ErrOrdinalOutOfRange.New(len(projExprs), ord)
			}
			candidate := projExprs[ord-1]
			if isAggregateExpr(candidate) {
				return nil, sql.ErrOrdinalNotAggregate.New(candidate.String())
			}
			out[i] = candidate
			continue
		}
		resolved, err := b.resolveExpr(e, sc)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

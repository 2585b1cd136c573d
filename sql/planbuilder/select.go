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
	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/arrowbase/sqlplanner/sql"
	"github.com/arrowbase/sqlplanner/sql/expression"
	"github.com/arrowbase/sqlplanner/sql/plan"
)

// planSelect translates a single SELECT statement (no set operations) into
// a plan, in the canonical pipeline order: FROM/JOIN, implicit join key
// synthesis, WHERE residual filter, projection list expansion, GROUP
// BY/aggregation, HAVING (not implemented), ORDER BY, LIMIT.
func (b *Builder) planSelect(sel *sqlparser.Select) (sql.Node, error) {
	if sel.Having != nil {
		return nil, sql.ErrHavingNotImplemented.New()
	}

	node, sc, err := b.planFrom(sel.From)
	if err != nil {
		return nil, err
	}

	if join, ok := node.(*plan.Join); ok && join.Keys == nil && sel.Where != nil {
		left, right := join.Left.Schema(), join.Right.Schema()
		keys, residual := extractPossibleJoinKeys(sel.Where.Expr, left, right)
		if len(keys) > 0 {
			node = plan.NewJoin(join.Left, join.Right, keys, plan.InnerJoin)
			sel = shallowCopySelectWithResidualWhere(sel, residual)
		} else {
			return nil, sql.ErrCartesianJoin.New()
		}
	} else if join, ok := node.(*plan.Join); ok && join.Keys == nil {
		return nil, sql.ErrCartesianJoin.New()
	}

	if sel.Where != nil {
		pred, err := b.resolveExpr(sel.Where.Expr, sc)
		if err != nil {
			return nil, err
		}
		node = plan.NewFilter(pred, node)
	}

	projExprs, err := b.expandSelectExprs(sel.SelectExprs, sc)
	if err != nil {
		return nil, err
	}

	hasAggregate := false
	for _, e := range projExprs {
		if isAggregateExpr(e) {
			hasAggregate = true
			break
		}
	}

	skipProjection := false
	if len(sel.GroupBy) > 0 || hasAggregate {
		groupExprs, err := b.planGroupByList(sel.GroupBy, projExprs, sc)
		if err != nil {
			return nil, err
		}
		if err := checkGroupByCoherence(projExprs, groupExprs, sc.schema); err != nil {
			return nil, err
		}
		aggrExprs, err := collectAggregateExprs(projExprs, sc.schema)
		if err != nil {
			return nil, err
		}
		agg, err := plan.NewAggregate(groupExprs, aggrExprs, node)
		if err != nil {
			return nil, err
		}
		node = agg

		reprojected := make([]sql.Expression, len(projExprs))
		for i, e := range projExprs {
			r, err := replaceAggregateInProjection(e, sc.schema)
			if err != nil {
				return nil, err
			}
			reprojected[i] = r
		}
		projExprs = reprojected
		sc.schema = agg.Output

		// If the reprojection is just the Aggregate's own output columns
		// in order, the Aggregate node already renders what's needed and
		// wrapping it in a Projection would be a no-op node.
		if len(reprojected) == len(agg.Output) {
			skipProjection = true
			for i, e := range reprojected {
				n, err := e.Name(sc.schema)
				if err != nil {
					return nil, err
				}
				if n != agg.Output[i].Name {
					skipProjection = false
					break
				}
			}
		}
	}

	if !skipProjection {
		proj, err := plan.NewProjection(projExprs, node)
		if err != nil {
			return nil, err
		}
		node = proj
	}

	if len(sel.OrderBy) > 0 {
		fields, err := b.planOrderBy(sel.OrderBy, projExprs, sc)
		if err != nil {
			return nil, err
		}
		node = plan.NewSort(fields, node)
	}

	n, offset, err := planLimit(sel.Limit)
	if err != nil {
		return nil, err
	}
	if n >= 0 || offset > 0 {
		node = plan.NewLimit(n, offset, node)
	}

	return node, nil
}

func shallowCopySelectWithResidualWhere(sel *sqlparser.Select, residual []sqlparser.Expr) *sqlparser.Select {
	cp := *sel
	if len(residual) == 0 {
		cp.Where = nil
		return &cp
	}
	expr := residual[0]
	for _, r := range residual[1:] {
		expr = &sqlparser.AndExpr{Left: expr, Right: r}
	}
	cp.Where = &sqlparser.Where{Type: sqlparser.WhereStr, Expr: expr}
	return &cp
}

// expandSelectExprs resolves a SELECT list, expanding unqualified `*` into
// a Column reference per field of the current scope's flat schema.
// Qualified wildcards are not supported.
func (b *Builder) expandSelectExprs(exprs sqlparser.SelectExprs, sc *scope) ([]sql.Expression, error) {
	var out []sql.Expression
	for _, se := range exprs {
		switch n := se.(type) {
		case *sqlparser.StarExpr:
			if !n.TableName.Name.IsEmpty() {
				return nil, sql.ErrQualifiedWildcard.New()
			}
			for _, f := range sc.schema {
				out = append(out, expression.NewColumn(f.Name))
			}
		case *sqlparser.AliasedExpr:
			resolved, err := b.resolveExpr(n.Expr, sc)
			if err != nil {
				return nil, err
			}
			if !n.As.IsEmpty() {
				resolved = expression.NewAlias(resolved, n.As.String())
			}
			out = append(out, resolved)
		default:
			return nil, sql.ErrUnsupportedASTNode.New(se)
		}
	}
	return out, nil
}

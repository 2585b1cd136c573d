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

// planFrom builds the join tree for a statement's FROM clause and returns
// the resulting node along with the scope accumulated across every
// relation it planned, so the caller can resolve SELECT/WHERE/GROUP
// BY/ORDER BY against the same flat schema.
func (b *Builder) planFrom(tables sqlparser.TableExprs) (sql.Node, *scope, error) {
	if len(tables) == 0 {
		return plan.NewEmptyRelation(true, sql.Schema{}), newScope(), nil
	}

	node, sc, err := b.planTableExpr(tables[0])
	if err != nil {
		return nil, nil, err
	}

	// Multiple comma-separated relations form an implicit join; its keys
	// are synthesized later from the WHERE clause, not here.
	for _, t := range tables[1:] {
		rightNode, rightScope, err := b.planTableExpr(t)
		if err != nil {
			return nil, nil, err
		}
		node = plan.NewJoin(node, rightNode, nil, plan.InnerJoin)
		sc.schema = sc.schema.Concat(rightScope.schema)
		sc.aliased = sc.aliased.Chain(rightScope.aliased)
	}

	return node, sc, nil
}

func (b *Builder) planTableExpr(t sqlparser.TableExpr) (sql.Node, *scope, error) {
	switch n := t.(type) {
	case *sqlparser.AliasedTableExpr:
		return b.planAliasedTable(n)
	case *sqlparser.JoinTableExpr:
		return b.planJoinTableExpr(n)
	case *sqlparser.ParenTableExpr:
		if len(n.Exprs) != 1 {
			return nil, nil, sql.ErrCartesianJoin.New()
		}
		return b.planTableExpr(n.Exprs[0])
	default:
		return nil, nil, sql.ErrUnsupportedASTNode.New(t)
	}
}

func (b *Builder) planAliasedTable(n *sqlparser.AliasedTableExpr) (sql.Node, *scope, error) {
	switch expr := n.Expr.(type) {
	case sqlparser.TableName:
		name := expr.Name.String()
		schema, ok := b.catalog.GetTableMeta(name)
		if !ok {
			return nil, nil, sql.ErrTableNotFound.New(name)
		}
		alias := name
		if !n.As.IsEmpty() {
			alias = n.As.String()
		}
		scan := plan.NewTableScan(name, schema, nil)
		sc := newScope()
		sc.addRelation(alias, schema)
		return scan, sc, nil
	case *sqlparser.Subquery:
		inner, err := b.planSelectStatement(expr.Select)
		if err != nil {
			return nil, nil, err
		}
		alias := n.As.String()
		if alias == "" {
			return nil, nil, sql.ErrUnsupportedASTNode.New(n)
		}
		sc := newScope()
		sc.addRelation(alias, inner.Schema())
		return inner, sc, nil
	default:
		return nil, nil, sql.ErrUnsupportedASTNode.New(n.Expr)
	}
}

func (b *Builder) planJoinTableExpr(n *sqlparser.JoinTableExpr) (sql.Node, *scope, error) {
	if n.Condition.Using != nil {
		return nil, nil, sql.ErrJoinUsingNotImplemented.New()
	}

	joinType, ok := joinTypeFor(n.Join)
	if !ok {
		return nil, nil, sql.ErrJoinOperatorNotImplemented.New(n.Join)
	}

	left, leftScope, err := b.planTableExpr(n.LeftExpr)
	if err != nil {
		return nil, nil, err
	}
	right, rightScope, err := b.planTableExpr(n.RightExpr)
	if err != nil {
		return nil, nil, err
	}

	combined := &scope{
		schema:  leftScope.schema.Concat(rightScope.schema),
		aliased: leftScope.aliased.Chain(rightScope.aliased),
	}

	if n.Condition.On == nil {
		return nil, nil, sql.ErrCartesianJoin.New()
	}

	keys, err := extractJoinKeys(n.Condition.On, leftScope.schema, rightScope.schema)
	if err != nil {
		return nil, nil, err
	}

	joined := plan.NewJoin(left, right, keys, joinType)
	return joined, combined, nil
}

func joinTypeFor(kind string) (plan.JoinType, bool) {
	switch kind {
	case sqlparser.JoinStr, sqlparser.StraightJoinStr:
		return plan.InnerJoin, true
	case sqlparser.LeftJoinStr:
		return plan.LeftJoin, true
	case sqlparser.RightJoinStr:
		return plan.RightJoin, true
	case sqlparser.NaturalJoinStr, sqlparser.NaturalLeftJoinStr, sqlparser.NaturalRightJoinStr:
		return 0, false
	default:
		return 0, false
	}
}

// extractJoinKeys splits an ON clause's top-level AND conjunction into
// equijoin key pairs, requiring each comparison to reference exactly one
// column from each side.
func extractJoinKeys(cond sqlparser.Expr, left, right sql.Schema) ([]plan.JoinKey, error) {
	var keys []plan.JoinKey
	var walk func(e sqlparser.Expr) error
	walk = func(e sqlparser.Expr) error {
		if and, ok := e.(*sqlparser.AndExpr); ok {
			if err := walk(and.Left); err != nil {
				return err
			}
			return walk(and.Right)
		}
		cmp, ok := e.(*sqlparser.ComparisonExpr)
		if !ok || cmp.Operator != sqlparser.EqualStr {
			return sql.ErrUnsupportedJoinCondition.New(sqlparser.String(e))
		}
		lcol, lok := cmp.Left.(*sqlparser.ColName)
		rcol, rok := cmp.Right.(*sqlparser.ColName)
		if !lok || !rok {
			return sql.ErrUnsupportedJoinCondition.New(sqlparser.String(e))
		}

		lname, rname := lcol.Name.String(), rcol.Name.String()
		_, leftHasL := left.FieldWithName(lname)
		_, rightHasR := right.FieldWithName(rname)
		if leftHasL && rightHasR {
			keys = append(keys, plan.JoinKey{Left: expression.NewColumn(lname), Right: expression.NewColumn(rname)})
			return nil
		}
		_, leftHasR := left.FieldWithName(rname)
		_, rightHasL := right.FieldWithName(lname)
		if leftHasR && rightHasL {
			keys = append(keys, plan.JoinKey{Left: expression.NewColumn(rname), Right: expression.NewColumn(lname)})
			return nil
		}
		return sql.ErrUnsupportedJoinCondition.New(sqlparser.String(e))
	}
	if err := walk(cond); err != nil {
		return nil, err
	}
	return keys, nil
}

// extractPossibleJoinKeys scans a WHERE clause's top-level AND conjuncts
// for equality comparisons between a column of the left schema and a
// column of the right schema. Matching conjuncts are pulled out into join
// keys; the other conjuncts are returned as the residual filter list (nil
// if none).
func extractPossibleJoinKeys(where sqlparser.Expr, left, right sql.Schema) ([]plan.JoinKey, []sqlparser.Expr) {
	var keys []plan.JoinKey
	var residual []sqlparser.Expr

	var conjuncts []sqlparser.Expr
	var flatten func(e sqlparser.Expr)
	flatten = func(e sqlparser.Expr) {
		if and, ok := e.(*sqlparser.AndExpr); ok {
			flatten(and.Left)
			flatten(and.Right)
			return
		}
		conjuncts = append(conjuncts, e)
	}
	flatten(where)

	for _, c := range conjuncts {
		cmp, ok := c.(*sqlparser.ComparisonExpr)
		if !ok || cmp.Operator != sqlparser.EqualStr {
			residual = append(residual, c)
			continue
		}
		lcol, lok := cmp.Left.(*sqlparser.ColName)
		rcol, rok := cmp.Right.(*sqlparser.ColName)
		if !lok || !rok {
			residual = append(residual, c)
			continue
		}
		lname, rname := lcol.Name.String(), rcol.Name.String()
		_, leftHasL := left.FieldWithName(lname)
		_, rightHasR := right.FieldWithName(rname)
		if leftHasL && rightHasR {
			keys = append(keys, plan.JoinKey{Left: expression.NewColumn(lname), Right: expression.NewColumn(rname)})
			continue
		}
		_, leftHasR := left.FieldWithName(rname)
		_, rightHasL := right.FieldWithName(lname)
		if leftHasR && rightHasL {
			keys = append(keys, plan.JoinKey{Left: expression.NewColumn(rname), Right: expression.NewColumn(lname)})
			continue
		}
		residual = append(residual, c)
	}

	return keys, residual
}

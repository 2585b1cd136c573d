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

package expression

import (
	"fmt"

	"github.com/arrowbase/sqlplanner/sql"
)

// BinaryExpr is a binary operator application. Its operands are kept as
// resolved; no cast is inserted to bring them to a common type.
type BinaryExpr struct {
	Left, Right sql.Expression
	Op          sql.Operator
}

func NewBinary(left sql.Expression, op sql.Operator, right sql.Expression) *BinaryExpr {
	return &BinaryExpr{Left: left, Right: right, Op: op}
}

func (b *BinaryExpr) Type(schema sql.Schema) (sql.Type, error) {
	switch b.Op {
	case sql.Eq, sql.NotEq, sql.Lt, sql.LtEq, sql.Gt, sql.GtEq, sql.And, sql.Or, sql.Like, sql.NotLike:
		return sql.Boolean, nil
	default:
		return b.Left.Type(schema)
	}
}

func (b *BinaryExpr) Name(sql.Schema) (string, error) {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right), nil
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}

func (b *BinaryExpr) Children() []sql.Expression { return []sql.Expression{b.Left, b.Right} }

// Not negates a boolean expression.
type Not struct {
	Expr sql.Expression
}

func NewNot(e sql.Expression) *Not { return &Not{Expr: e} }

func (n *Not) Type(sql.Schema) (sql.Type, error) { return sql.Boolean, nil }

func (n *Not) Name(sql.Schema) (string, error) { return "NOT " + n.Expr.String(), nil }

func (n *Not) String() string { return "NOT " + n.Expr.String() }

func (n *Not) Children() []sql.Expression { return []sql.Expression{n.Expr} }

// IsNull tests whether its operand evaluates to NULL.
type IsNull struct {
	Expr sql.Expression
}

func NewIsNull(e sql.Expression) *IsNull { return &IsNull{Expr: e} }

func (n *IsNull) Type(sql.Schema) (sql.Type, error) { return sql.Boolean, nil }

func (n *IsNull) Name(sql.Schema) (string, error) { return n.Expr.String() + " IS NULL", nil }

func (n *IsNull) String() string { return n.Expr.String() + " IS NULL" }

func (n *IsNull) Children() []sql.Expression { return []sql.Expression{n.Expr} }

// IsNotNull tests whether its operand evaluates to a non-NULL value.
type IsNotNull struct {
	Expr sql.Expression
}

func NewIsNotNull(e sql.Expression) *IsNotNull { return &IsNotNull{Expr: e} }

func (n *IsNotNull) Type(sql.Schema) (sql.Type, error) { return sql.Boolean, nil }

func (n *IsNotNull) Name(sql.Schema) (string, error) { return n.Expr.String() + " IS NOT NULL", nil }

func (n *IsNotNull) String() string { return n.Expr.String() + " IS NOT NULL" }

func (n *IsNotNull) Children() []sql.Expression { return []sql.Expression{n.Expr} }

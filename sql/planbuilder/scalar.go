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
	"strings"

	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/arrowbase/sqlplanner/sql"
	"github.com/arrowbase/sqlplanner/sql/expression"
)

// resolveExpr is the scalar resolver: it walks a parsed AST expression and
// produces a fully typed sql.Expression against sc, coercing function
// arguments to satisfy declared function signatures along the way.
func (b *Builder) resolveExpr(e sqlparser.Expr, sc *scope) (sql.Expression, error) {
	switch n := e.(type) {
	case *sqlparser.ParenExpr:
		return b.resolveExpr(n.Expr, sc)

	case *sqlparser.ColName:
		return b.resolveColName(n, sc)

	case *sqlparser.SQLVal:
		return resolveLiteral(n)

	case sqlparser.BoolVal:
		return expression.NewLiteral(sql.NewScalarValue(sql.Boolean, bool(n))), nil

	case *sqlparser.NullVal:
		return expression.NewLiteral(sql.NewScalarValue(sql.Utf8, nil)), nil

	case *sqlparser.AndExpr:
		return b.resolveBinary(n.Left, sql.And, n.Right, sc)

	case *sqlparser.OrExpr:
		return b.resolveBinary(n.Left, sql.Or, n.Right, sc)

	case *sqlparser.NotExpr:
		inner, err := b.resolveExpr(n.Expr, sc)
		if err != nil {
			return nil, err
		}
		return expression.NewNot(inner), nil

	case *sqlparser.ComparisonExpr:
		op, ok := comparisonOperator(n.Operator)
		if !ok {
			return nil, sql.ErrUnsupportedBinaryOperator.New(n.Operator)
		}
		return b.resolveBinary(n.Left, op, n.Right, sc)

	case *sqlparser.BinaryExpr:
		op, ok := arithmeticOperator(n.Operator)
		if !ok {
			return nil, sql.ErrUnsupportedBinaryOperator.New(n.Operator)
		}
		return b.resolveBinary(n.Left, op, n.Right, sc)

	case *sqlparser.IsExpr:
		inner, err := b.resolveExpr(n.Expr, sc)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(n.Operator) {
		case "is null":
			return expression.NewIsNull(inner), nil
		case "is not null":
			return expression.NewIsNotNull(inner), nil
		default:
			return nil, sql.ErrUnsupportedBinaryOperator.New(n.Operator)
		}
	case *sqlparser.ConvertExpr:
		inner, err := b.resolveExpr(n.Expr, sc)
		if err != nil {
			return nil, err
		}
		typeName := n.Type.Type
		target, ok := resolveCastType(typeName)
		if !ok {
			return nil, sql.ErrUnsupportedSQLType.New(typeName)
		}
		return expression.NewCast(inner, target), nil

	case *sqlparser.CaseExpr:
		return b.resolveCase(n, sc)

	case *sqlparser.FuncExpr:
		return b.resolveFuncExpr(n, sc)

	default:
		return nil, sql.ErrUnsupportedASTNode.New(e)
	}
}

func (b *Builder) resolveColName(n *sqlparser.ColName, sc *scope) (sql.Expression, error) {
	name := n.Name.String()
	if n.Qualifier.Name.String() == "" {
		if _, ok := sc.schema.FieldWithName(name); !ok {
			return nil, sql.ErrColumnNotFound.New(name, sc.schema)
		}
		return expression.NewColumn(name), nil
	}

	alias := n.Qualifier.Name.String()
	aliasedSchema, ok := sc.aliased[alias]
	if !ok {
		aliases := make([]string, 0, len(sc.aliased))
		for a := range sc.aliased {
			aliases = append(aliases, a)
		}
		return nil, sql.ErrAliasNotFound.New(alias, aliases)
	}
	if _, ok := aliasedSchema.FieldWithName(name); !ok {
		return nil, sql.ErrColumnNotFound.New(name, aliasedSchema)
	}
	return expression.NewAliasedColumn(name, alias), nil
}

func resolveLiteral(v *sqlparser.SQLVal) (sql.Expression, error) {
	switch v.Type {
	case sqlparser.StrVal:
		return expression.NewLiteral(sql.NewScalarValue(sql.Utf8, string(v.Val))), nil
	case sqlparser.IntVal:
		n, err := strconv.ParseInt(string(v.Val), 10, 64)
		if err != nil {
			return nil, sql.ErrNotANumber.New(string(v.Val))
		}
		return expression.NewLiteral(sql.NewScalarValue(sql.Int64, n)), nil
	case sqlparser.FloatVal:
		f, err := strconv.ParseFloat(string(v.Val), 64)
		if err != nil {
			return nil, sql.ErrNotANumber.New(string(v.Val))
		}
		return expression.NewLiteral(sql.NewScalarValue(sql.Float64, f)), nil
	default:
		return nil, sql.ErrUnsupportedASTNode.New(v)
	}
}

// resolveBinary resolves both operands and constructs the BinaryExpr node.
// Coercion only ever happens during function-signature matching; a raw
// binary operator is built from its operands as given, mismatched operand
// types included.
func (b *Builder) resolveBinary(left sqlparser.Expr, op sql.Operator, right sqlparser.Expr, sc *scope) (sql.Expression, error) {
	l, err := b.resolveExpr(left, sc)
	if err != nil {
		return nil, err
	}
	r, err := b.resolveExpr(right, sc)
	if err != nil {
		return nil, err
	}
	return expression.NewBinary(l, op, r), nil
}

func (b *Builder) resolveCase(n *sqlparser.CaseExpr, sc *scope) (sql.Expression, error) {
	var base sql.Expression
	var err error
	if n.Expr != nil {
		base, err = b.resolveExpr(n.Expr, sc)
		if err != nil {
			return nil, err
		}
	}

	whens := make([]expression.CaseWhen, len(n.Whens))
	thenTypes := make([]sql.Type, 0, len(n.Whens)+1)
	for i, w := range n.Whens {
		cond, err := b.resolveExpr(w.Cond, sc)
		if err != nil {
			return nil, err
		}
		then, err := b.resolveExpr(w.Val, sc)
		if err != nil {
			return nil, err
		}
		whens[i] = expression.CaseWhen{When: cond, Then: then}
		tt, err := then.Type(sc.schema)
		if err != nil {
			return nil, err
		}
		thenTypes = append(thenTypes, tt)
	}

	var elseExpr sql.Expression
	if n.Else != nil {
		elseExpr, err = b.resolveExpr(n.Else, sc)
		if err != nil {
			return nil, err
		}
		et, err := elseExpr.Type(sc.schema)
		if err != nil {
			return nil, err
		}
		thenTypes = append(thenTypes, et)
	}

	common, err := sql.CommonType(thenTypes)
	if err != nil {
		return nil, err
	}
	for i := range whens {
		tt, _ := whens[i].Then.Type(sc.schema)
		if !tt.Equal(common) {
			whens[i].Then = expression.NewCast(whens[i].Then, common)
		}
	}
	if elseExpr != nil {
		et, _ := elseExpr.Type(sc.schema)
		if !et.Equal(common) {
			elseExpr = expression.NewCast(elseExpr, common)
		}
	}

	return expression.NewCase(base, whens, elseExpr), nil
}

func comparisonOperator(op string) (sql.Operator, bool) {
	switch op {
	case sqlparser.EqualStr:
		return sql.Eq, true
	case sqlparser.NotEqualStr:
		return sql.NotEq, true
	case sqlparser.LessThanStr:
		return sql.Lt, true
	case sqlparser.LessEqualStr:
		return sql.LtEq, true
	case sqlparser.GreaterThanStr:
		return sql.Gt, true
	case sqlparser.GreaterEqualStr:
		return sql.GtEq, true
	case sqlparser.LikeStr:
		return sql.Like, true
	case sqlparser.NotLikeStr:
		return sql.NotLike, true
	default:
		return 0, false
	}
}

func arithmeticOperator(op string) (sql.Operator, bool) {
	switch op {
	case sqlparser.PlusStr:
		return sql.Plus, true
	case sqlparser.MinusStr:
		return sql.Minus, true
	case sqlparser.MultStr:
		return sql.Multiply, true
	case sqlparser.DivStr:
		return sql.Divide, true
	case sqlparser.ModStr:
		return sql.Modulus, true
	default:
		return 0, false
	}
}

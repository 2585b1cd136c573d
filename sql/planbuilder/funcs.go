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
	"strings"

	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/arrowbase/sqlplanner/sql"
	"github.com/arrowbase/sqlplanner/sql/expression"
)

func (b *Builder) resolveFuncExpr(n *sqlparser.FuncExpr, sc *scope) (sql.Expression, error) {
	name := strings.ToLower(n.Name.String())

	// COUNT(*) has no typed argument; rewrite to COUNT(1u8) before
	// resolving the rest of the call uniformly with every other aggregate.
	if name == "count" && n.Star {
		one := expression.NewLiteral(sql.NewScalarValue(sql.UInt8, uint8(1)))
		return b.typedAggregateCall(name, []sql.Expression{one}, sc, n.Distinct)
	}

	args := make([]sql.Expression, 0, len(n.Exprs))
	for _, se := range n.Exprs {
		aliased, ok := se.(*sqlparser.AliasedExpr)
		if !ok {
			return nil, sql.ErrUnsupportedASTNode.New(se)
		}
		arg, err := b.resolveExpr(aliased.Expr, sc)
		if err != nil {
			return nil, err
		}
		// COUNT(1), COUNT(5), COUNT(*) (already handled above) all
		// canonicalize to the same argument so they produce identical
		// aggregate trees.
		if name == "count" {
			if _, isWildcard := arg.(*expression.Wildcard); isWildcard {
				arg = expression.NewLiteral(sql.NewScalarValue(sql.UInt8, uint8(1)))
			} else if lit, isLit := arg.(*expression.Literal); isLit && lit.Val.Typ.IsNumeric() {
				arg = expression.NewLiteral(sql.NewScalarValue(sql.UInt8, uint8(1)))
			}
		}
		args = append(args, arg)
	}

	if name == "nullif" {
		if len(args) != 2 {
			return nil, sql.ErrNullIfArity.New(len(args))
		}
		// nullif(a, b) is planned as if(a <> b, a).
		cond := expression.NewBinary(args[0], sql.NotEq, args[1])
		return b.typedCall("if", []sql.Expression{cond, args[0]}, sc, false)
	}

	if isBuiltinAggregate(name) {
		return b.typedAggregateCall(name, args, sc, n.Distinct)
	}
	if isBuiltinScalar(name) {
		return b.typedCall(name, args, sc, false)
	}

	return b.udfCall(name, args, sc)
}

func (b *Builder) typedCall(name string, args []sql.Expression, sc *scope, distinct bool) (sql.Expression, error) {
	desc := builtinScalars[name]
	actual, err := exprTypes(args, sc.schema)
	if err != nil {
		return nil, err
	}
	coerced, err := sql.MatchSignature(actual, desc.Sig)
	if err != nil {
		return nil, err
	}
	args = castArgs(args, actual, coerced)
	return expression.NewScalarFunction(name, args, desc.ReturnType(coerced)), nil
}

func (b *Builder) typedAggregateCall(name string, args []sql.Expression, sc *scope, distinct bool) (sql.Expression, error) {
	desc := builtinAggregates[name]
	actual, err := exprTypes(args, sc.schema)
	if err != nil {
		return nil, err
	}
	coerced, err := sql.MatchSignature(actual, desc.Sig)
	if err != nil {
		return nil, err
	}
	args = castArgs(args, actual, coerced)
	return expression.NewAggregateFunction(name, args, desc.ReturnType(coerced), distinct), nil
}

func (b *Builder) udfCall(name string, args []sql.Expression, sc *scope) (sql.Expression, error) {
	actual, err := exprTypes(args, sc.schema)
	if err != nil {
		return nil, err
	}

	if desc, ok := b.catalog.GetFunctionMeta(name); ok {
		coerced, err := sql.MatchSignature(actual, sql.Exact{Types: desc.InputTypes})
		if err != nil {
			return nil, err
		}
		args = castArgs(args, actual, coerced)
		return expression.NewScalarUDF(name, args, desc.OutputType), nil
	}

	if desc, ok := b.catalog.GetAggregateMeta(name); ok {
		coerced, err := sql.MatchSignature(actual, sql.Exact{Types: desc.InputTypes})
		if err != nil {
			return nil, err
		}
		args = castArgs(args, actual, coerced)
		return expression.NewAggregateUDF(name, args, desc.OutputType), nil
	}

	return nil, sql.ErrInvalidFunction.New(name)
}

func exprTypes(args []sql.Expression, schema sql.Schema) ([]sql.Type, error) {
	out := make([]sql.Type, len(args))
	for i, a := range args {
		t, err := a.Type(schema)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func castArgs(args []sql.Expression, actual, coerced []sql.Type) []sql.Expression {
	out := make([]sql.Expression, len(args))
	for i, a := range args {
		if !actual[i].Equal(coerced[i]) {
			out[i] = expression.NewCast(a, coerced[i])
		} else {
			out[i] = a
		}
	}
	return out
}

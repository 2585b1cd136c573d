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

// Cast explicitly converts its operand to Typ, independent of the
// lossless-widening lattice that governs implicit coercion.
type Cast struct {
	Expr sql.Expression
	Typ  sql.Type
}

func NewCast(e sql.Expression, t sql.Type) *Cast { return &Cast{Expr: e, Typ: t} }

func (c *Cast) Type(sql.Schema) (sql.Type, error) { return c.Typ, nil }

func (c *Cast) Name(sql.Schema) (string, error) { return c.String(), nil }

func (c *Cast) String() string { return fmt.Sprintf("CAST(%s AS %s)", c.Expr, c.Typ) }

func (c *Cast) Children() []sql.Expression { return []sql.Expression{c.Expr} }

// Alias renames an expression's projected output column without changing
// its value or type.
type Alias struct {
	Expr  sql.Expression
	Label string
}

func NewAlias(e sql.Expression, label string) *Alias { return &Alias{Expr: e, Label: label} }

func (a *Alias) Type(schema sql.Schema) (sql.Type, error) { return a.Expr.Type(schema) }

func (a *Alias) Name(sql.Schema) (string, error) { return a.Label, nil }

func (a *Alias) String() string { return fmt.Sprintf("%s AS %s", a.Expr, a.Label) }

func (a *Alias) Children() []sql.Expression { return []sql.Expression{a.Expr} }

// CaseWhen is one WHEN/THEN arm of a Case expression.
type CaseWhen struct {
	When sql.Expression
	Then sql.Expression
}

// Case is a CASE expression, optionally with a base expr (simple CASE) and
// optionally with an ELSE arm.
type Case struct {
	Base  sql.Expression // nil for a searched CASE
	Whens []CaseWhen
	Else  sql.Expression // nil if absent
}

func NewCase(base sql.Expression, whens []CaseWhen, els sql.Expression) *Case {
	return &Case{Base: base, Whens: whens, Else: els}
}

func (c *Case) Type(schema sql.Schema) (sql.Type, error) {
	if len(c.Whens) == 0 {
		return sql.Type{}, sql.ErrInternal.New("CASE with no WHEN arms")
	}
	return c.Whens[0].Then.Type(schema)
}

func (c *Case) Name(schema sql.Schema) (string, error) { return c.String(), nil }

func (c *Case) String() string {
	out := "CASE"
	if c.Base != nil {
		out += " " + c.Base.String()
	}
	for _, w := range c.Whens {
		out += fmt.Sprintf(" WHEN %s THEN %s", w.When, w.Then)
	}
	if c.Else != nil {
		out += " ELSE " + c.Else.String()
	}
	out += " END"
	return out
}

func (c *Case) Children() []sql.Expression {
	var out []sql.Expression
	if c.Base != nil {
		out = append(out, c.Base)
	}
	for _, w := range c.Whens {
		out = append(out, w.When, w.Then)
	}
	if c.Else != nil {
		out = append(out, c.Else)
	}
	return out
}

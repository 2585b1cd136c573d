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

import "github.com/arrowbase/sqlplanner/sql"

// Literal wraps a constant scalar value.
type Literal struct {
	Val sql.ScalarValue
}

func NewLiteral(v sql.ScalarValue) *Literal { return &Literal{Val: v} }

func (l *Literal) Type(sql.Schema) (sql.Type, error) { return l.Val.Typ, nil }

func (l *Literal) Name(sql.Schema) (string, error) { return l.Val.String(), nil }

func (l *Literal) String() string { return l.Val.String() }

func (l *Literal) Children() []sql.Expression { return nil }

// ScalarVariable is a reference to a session-level variable such as
// @@version, resolved against the catalog rather than a row schema.
type ScalarVariable struct {
	VarNames []string
	Typ      sql.Type
}

func NewScalarVariable(names []string, typ sql.Type) *ScalarVariable {
	return &ScalarVariable{VarNames: names, Typ: typ}
}

func (v *ScalarVariable) Type(sql.Schema) (sql.Type, error) { return v.Typ, nil }

func (v *ScalarVariable) Name(sql.Schema) (string, error) { return v.String(), nil }

func (v *ScalarVariable) String() string {
	out := "@"
	for i, n := range v.VarNames {
		if i > 0 {
			out += "."
		}
		out += n
	}
	return out
}

func (v *ScalarVariable) Children() []sql.Expression { return nil }

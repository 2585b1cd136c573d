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
	"strings"

	"github.com/arrowbase/sqlplanner/sql"
)

// ScalarFunction is a call to a recognized builtin scalar function, already
// argument-coerced per its declared Signature.
type ScalarFunction struct {
	FuncName string
	Args     []sql.Expression
	RetType  sql.Type
}

func NewScalarFunction(name string, args []sql.Expression, ret sql.Type) *ScalarFunction {
	return &ScalarFunction{FuncName: name, Args: args, RetType: ret}
}

func (f *ScalarFunction) Type(sql.Schema) (sql.Type, error) { return f.RetType, nil }

func (f *ScalarFunction) Name(sql.Schema) (string, error) { return f.String(), nil }

func (f *ScalarFunction) String() string { return callString(f.FuncName, f.Args, false) }

func (f *ScalarFunction) Children() []sql.Expression { return f.Args }

// ScalarUDF is a call to a user-registered scalar function not recognized
// as a builtin.
type ScalarUDF struct {
	FuncName string
	Args     []sql.Expression
	RetType  sql.Type
}

func NewScalarUDF(name string, args []sql.Expression, ret sql.Type) *ScalarUDF {
	return &ScalarUDF{FuncName: name, Args: args, RetType: ret}
}

func (f *ScalarUDF) Type(sql.Schema) (sql.Type, error) { return f.RetType, nil }

func (f *ScalarUDF) Name(sql.Schema) (string, error) { return f.String(), nil }

func (f *ScalarUDF) String() string { return callString(f.FuncName, f.Args, false) }

func (f *ScalarUDF) Children() []sql.Expression { return f.Args }

// AggregateFunction is a call to a recognized builtin aggregate (COUNT, SUM,
// AVG, MIN, MAX).
type AggregateFunction struct {
	FuncName string
	Args     []sql.Expression
	RetType  sql.Type
	Distinct bool
}

func NewAggregateFunction(name string, args []sql.Expression, ret sql.Type, distinct bool) *AggregateFunction {
	return &AggregateFunction{FuncName: name, Args: args, RetType: ret, Distinct: distinct}
}

func (f *AggregateFunction) Type(sql.Schema) (sql.Type, error) { return f.RetType, nil }

func (f *AggregateFunction) Name(sql.Schema) (string, error) { return f.String(), nil }

func (f *AggregateFunction) String() string { return callString(f.FuncName, f.Args, f.Distinct) }

func (f *AggregateFunction) Children() []sql.Expression { return f.Args }

// AggregateUDF is a call to a user-registered aggregate function not
// recognized as a builtin.
type AggregateUDF struct {
	FuncName string
	Args     []sql.Expression
	RetType  sql.Type
}

func NewAggregateUDF(name string, args []sql.Expression, ret sql.Type) *AggregateUDF {
	return &AggregateUDF{FuncName: name, Args: args, RetType: ret}
}

func (f *AggregateUDF) Type(sql.Schema) (sql.Type, error) { return f.RetType, nil }

func (f *AggregateUDF) Name(sql.Schema) (string, error) { return f.String(), nil }

func (f *AggregateUDF) String() string { return callString(f.FuncName, f.Args, false) }

func (f *AggregateUDF) Children() []sql.Expression { return f.Args }

func callString(name string, args []sql.Expression, distinct bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	prefix := ""
	if distinct {
		prefix = "DISTINCT "
	}
	return fmt.Sprintf("%s(%s%s)", strings.ToUpper(name), prefix, strings.Join(parts, ", "))
}

// Wildcard is the unqualified `*` in a SELECT list; it never survives past
// expansion into concrete Column references.
type Wildcard struct{}

func NewWildcard() *Wildcard { return &Wildcard{} }

func (w *Wildcard) Type(sql.Schema) (sql.Type, error) {
	return sql.Type{}, sql.ErrInternal.New("wildcard must be expanded before type resolution")
}

func (w *Wildcard) Name(sql.Schema) (string, error) { return "*", nil }

func (w *Wildcard) String() string { return "*" }

func (w *Wildcard) Children() []sql.Expression { return nil }

// Sort pairs an expression with its ordering direction; it is a wrapper
// expression used only inside ORDER BY lists, distinct from sql.SortField
// which carries the fully resolved form consumed by the Sort plan node.
type Sort struct {
	Expr       sql.Expression
	Asc        bool
	NullsFirst bool
}

func NewSort(e sql.Expression, asc, nullsFirst bool) *Sort {
	return &Sort{Expr: e, Asc: asc, NullsFirst: nullsFirst}
}

func (s *Sort) Type(schema sql.Schema) (sql.Type, error) { return s.Expr.Type(schema) }

func (s *Sort) Name(schema sql.Schema) (string, error) { return s.Expr.Name(schema) }

func (s *Sort) String() string {
	dir := "ASC"
	if !s.Asc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", s.Expr, dir)
}

func (s *Sort) Children() []sql.Expression { return []sql.Expression{s.Expr} }

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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowbase/sqlplanner/sql"
)

func schemaForTest() sql.Schema {
	return sql.Schema{
		{Name: "state", Type: sql.Utf8},
		{Name: "population", Type: sql.Int64},
	}
}

func TestColumnResolution(t *testing.T) {
	schema := schemaForTest()
	c := NewColumn("state")
	typ, err := c.Type(schema)
	require.NoError(t, err)
	require.Equal(t, sql.Utf8, typ)
	require.Equal(t, "#state", c.String())

	_, err = NewColumn("missing").Type(schema)
	require.Error(t, err)
}

func TestAliasedColumnFullName(t *testing.T) {
	c := NewAliasedColumn("id", "p")
	require.Equal(t, "p.id", c.FullName())
}

func TestLiteralString(t *testing.T) {
	lit := NewLiteral(sql.NewScalarValue(sql.Utf8, "CO"))
	require.Equal(t, `Utf8("CO")`, lit.String())

	n, err := lit.Name(nil)
	require.NoError(t, err)
	require.Equal(t, lit.String(), n)
}

func TestBinaryExprComparisonIsBoolean(t *testing.T) {
	schema := schemaForTest()
	be := NewBinary(NewColumn("population"), sql.Gt, NewLiteral(sql.NewScalarValue(sql.Int64, int64(1000))))
	typ, err := be.Type(schema)
	require.NoError(t, err)
	require.Equal(t, sql.Boolean, typ)
	require.Equal(t, "#population Gt Int64(1000)", be.String())
}

func TestBinaryExprArithmeticTakesLeftType(t *testing.T) {
	schema := schemaForTest()
	be := NewBinary(NewColumn("population"), sql.Plus, NewLiteral(sql.NewScalarValue(sql.Int64, int64(1))))
	typ, err := be.Type(schema)
	require.NoError(t, err)
	require.Equal(t, sql.Int64, typ)
}

func TestCastString(t *testing.T) {
	c := NewCast(NewColumn("population"), sql.Float64)
	require.Equal(t, "CAST(#population AS Float64)", c.String())
}

func TestAliasName(t *testing.T) {
	a := NewAlias(NewColumn("state"), "s")
	n, err := a.Name(nil)
	require.NoError(t, err)
	require.Equal(t, "s", n)
}

func TestCaseSearchedString(t *testing.T) {
	c := NewCase(nil, []CaseWhen{
		{When: NewBinary(NewColumn("population"), sql.Gt, NewLiteral(sql.NewScalarValue(sql.Int64, int64(0)))),
			Then: NewLiteral(sql.NewScalarValue(sql.Utf8, "big"))},
	}, NewLiteral(sql.NewScalarValue(sql.Utf8, "small")))

	require.Contains(t, c.String(), "CASE WHEN")
	require.Contains(t, c.String(), "ELSE")
	require.Len(t, c.Children(), 3)
}

func TestAggregateFunctionDistinctRendering(t *testing.T) {
	f := NewAggregateFunction("count", []sql.Expression{NewColumn("state")}, sql.Int64, true)
	require.Equal(t, "COUNT(DISTINCT #state)", f.String())
}

func TestScalarFunctionRendering(t *testing.T) {
	f := NewScalarFunction("nullif", []sql.Expression{NewColumn("state"), NewLiteral(sql.NewScalarValue(sql.Utf8, ""))}, sql.Utf8)
	require.Equal(t, `NULLIF(#state, Utf8(""))`, f.String())
}

func TestWildcardRejectsTypeResolution(t *testing.T) {
	_, err := NewWildcard().Type(nil)
	require.Error(t, err)
}

func TestSortStringDirection(t *testing.T) {
	s := NewSort(NewColumn("population"), false, true)
	require.Equal(t, "#population DESC", s.String())
}

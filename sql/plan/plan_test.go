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

package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowbase/sqlplanner/sql"
	"github.com/arrowbase/sqlplanner/sql/expression"
)

func testSchema() sql.Schema {
	return sql.Schema{
		{Name: "state", Type: sql.Utf8},
		{Name: "population", Type: sql.Int64},
	}
}

func TestTableScanSchemaProjection(t *testing.T) {
	scan := NewTableScan("population", testSchema(), []string{"state"})
	require.Equal(t, sql.Schema{{Name: "state", Type: sql.Utf8}}, scan.Schema())
	require.Equal(t, "TableScan: population projection=Some([state])", scan.String())
}

func TestTableScanSchemaNoProjection(t *testing.T) {
	scan := NewTableScan("population", testSchema(), nil)
	require.Equal(t, testSchema(), scan.Schema())
	require.Contains(t, scan.String(), "projection=None")
}

func TestProjectionComputesSchema(t *testing.T) {
	scan := NewTableScan("population", testSchema(), nil)
	proj, err := NewProjection([]sql.Expression{expression.NewColumn("state")}, scan)
	require.NoError(t, err)
	require.Equal(t, sql.Schema{{Name: "state", Type: sql.Utf8}}, proj.Schema())
}

func TestFilterPreservesSchema(t *testing.T) {
	scan := NewTableScan("population", testSchema(), nil)
	pred := expression.NewBinary(expression.NewColumn("population"), sql.Gt,
		expression.NewLiteral(sql.NewScalarValue(sql.Int64, int64(1000))))
	f := NewFilter(pred, scan)
	require.Equal(t, scan.Schema(), f.Schema())
	require.Equal(t, "Filter: #population Gt Int64(1000)", f.String())
}

func TestAggregateSchemaOrdering(t *testing.T) {
	scan := NewTableScan("population", testSchema(), nil)
	group := []sql.Expression{expression.NewColumn("state")}
	aggr := []sql.Expression{expression.NewAggregateFunction("count", []sql.Expression{expression.NewColumn("population")}, sql.Int64, false)}
	agg, err := NewAggregate(group, aggr, scan)
	require.NoError(t, err)
	require.Len(t, agg.Schema(), 2)
	require.Equal(t, "state", agg.Schema()[0].Name)
	require.Equal(t, "COUNT(#population)", agg.Schema()[1].Name)
}

func TestUnionFlattensNestedUnions(t *testing.T) {
	a := NewTableScan("t1", testSchema(), nil)
	b := NewTableScan("t2", testSchema(), nil)
	c := NewTableScan("t3", testSchema(), nil)

	inner, err := NewUnion([]sql.Node{a, b})
	require.NoError(t, err)

	outer, err := NewUnion([]sql.Node{inner, c})
	require.NoError(t, err)
	require.Len(t, outer.Inputs, 3)
}

func TestUnionSchemaMismatchRejected(t *testing.T) {
	a := NewTableScan("t1", testSchema(), nil)
	b := NewTableScan("t2", sql.Schema{{Name: "x", Type: sql.Int32}}, nil)
	_, err := NewUnion([]sql.Node{a, b})
	require.Error(t, err)
}

func TestJoinOuterNullsNonPreservedSide(t *testing.T) {
	left := NewTableScan("p", sql.Schema{{Name: "id", Type: sql.Int64}}, nil)
	right := NewTableScan("o", sql.Schema{{Name: "order_id", Type: sql.Int64}}, nil)
	j := NewJoin(left, right, []JoinKey{{Left: expression.NewColumn("id"), Right: expression.NewColumn("order_id")}}, LeftJoin)

	schema := j.Schema()
	require.Len(t, schema, 2)
	require.False(t, schema[0].Nullable)
	require.True(t, schema[1].Nullable)
}

func TestBuilderChainsAndStopsAtFirstError(t *testing.T) {
	_, err := Scan("population", testSchema(), nil).
		Project([]sql.Expression{expression.NewColumn("missing")}).
		Build()
	require.Error(t, err)
}

func TestExplainStringify(t *testing.T) {
	scan := NewTableScan("population", testSchema(), nil)
	f := NewFilter(expression.NewBinary(expression.NewColumn("population"), sql.Gt,
		expression.NewLiteral(sql.NewScalarValue(sql.Int64, int64(0)))), scan)
	ex := NewExplain(f, false)

	lines := ex.Stringify()
	require.Len(t, lines, 2)
	require.Contains(t, lines[0].Plan, "Filter:")
	require.Contains(t, lines[1].Plan, "TableScan:")
}

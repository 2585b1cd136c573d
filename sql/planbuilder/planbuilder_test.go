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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowbase/sqlplanner/memory"
	"github.com/arrowbase/sqlplanner/sql"
)

func testCatalog() *memory.Catalog {
	c := memory.NewCatalog()
	c.RegisterTable("person", sql.Schema{
		{Name: "id", Type: sql.Int64},
		{Name: "first_name", Type: sql.Utf8},
		{Name: "state", Type: sql.Utf8},
		{Name: "age", Type: sql.Int32},
	})
	c.RegisterTable("orders", sql.Schema{
		{Name: "order_id", Type: sql.Int64},
		{Name: "person_id", Type: sql.Int64},
		{Name: "amount", Type: sql.Float64},
	})
	return c
}

func plan(t *testing.T, query string) sql.Node {
	t.Helper()
	b := NewBuilder(testCatalog())
	node, err := b.BuildSQL(query)
	require.NoError(t, err)
	return node
}

func TestPlanSimpleProjectionAndFilter(t *testing.T) {
	node := plan(t, "SELECT state FROM person WHERE age > 21")
	require.Equal(t, "Projection: #state", node.String())
}

func TestPlanGroupByCoherenceRejectsBareColumn(t *testing.T) {
	b := NewBuilder(testCatalog())
	_, err := b.BuildSQL("SELECT first_name, COUNT(*) FROM person GROUP BY state")
	require.Error(t, err)
}

func TestPlanGroupByWithAggregate(t *testing.T) {
	node := plan(t, "SELECT state, COUNT(*) FROM person GROUP BY state")
	require.Equal(t, "Aggregate: groupBy=[#state], aggr=[COUNT(UInt8(1))]", node.String())
	require.Len(t, node.Schema(), 2)
}

func TestPlanBareAggregateWithNoGroupBy(t *testing.T) {
	node := plan(t, "SELECT MIN(age) FROM person")
	require.Equal(t, "Aggregate: groupBy=[], aggr=[MIN(#age)]", node.String())
}

func TestPlanCountStarAndCountLiteralCanonicalize(t *testing.T) {
	star := plan(t, "SELECT COUNT(*) FROM person")
	one := plan(t, "SELECT COUNT(1) FROM person")
	require.Equal(t, star.String(), one.String())
}

func TestPlanGroupByDuplicateEntryRejected(t *testing.T) {
	b := NewBuilder(testCatalog())
	_, err := b.BuildSQL("SELECT state FROM person GROUP BY state, state")
	require.Error(t, err)
}

func TestPlanDerivedTableInFrom(t *testing.T) {
	node := plan(t, "SELECT p.state FROM (SELECT state FROM person) AS p")
	require.Contains(t, node.String(), "state")
}

func TestPlanBinaryComparisonDoesNotInsertCast(t *testing.T) {
	node := plan(t, "SELECT state FROM person WHERE age > 21")
	require.NotContains(t, node.String(), "CAST")
}

func TestPlanImplicitJoinFromWhereClause(t *testing.T) {
	node := plan(t, "SELECT person.first_name, orders.amount FROM person, orders WHERE person.id = orders.person_id")
	require.Contains(t, node.String(), "Projection")
}

func TestPlanExplicitInnerJoin(t *testing.T) {
	node := plan(t, "SELECT person.first_name FROM person JOIN orders ON person.id = orders.person_id")
	require.Contains(t, node.String(), "Projection")
}

func TestPlanUnionAllFlattensSchema(t *testing.T) {
	node := plan(t, "SELECT state FROM person UNION ALL SELECT state FROM person UNION ALL SELECT state FROM person")
	require.Len(t, node.Schema(), 1)
}

func TestPlanUnionDistinctNotImplemented(t *testing.T) {
	b := NewBuilder(testCatalog())
	_, err := b.BuildSQL("SELECT state FROM person UNION SELECT state FROM person")
	require.Error(t, err)
}

func TestPlanOrderByPositional(t *testing.T) {
	node := plan(t, "SELECT state, age FROM person ORDER BY 2 DESC")
	require.Contains(t, node.String(), "Sort")
}

func TestPlanLimitOffset(t *testing.T) {
	node := plan(t, "SELECT state FROM person LIMIT 10 OFFSET 5")
	require.Contains(t, node.String(), "Limit: 10, Offset: 5")
}

func TestPlanCartesianProductRejected(t *testing.T) {
	b := NewBuilder(testCatalog())
	_, err := b.BuildSQL("SELECT * FROM person, orders")
	require.Error(t, err)
}

func TestPlanQualifiedWildcardRejected(t *testing.T) {
	b := NewBuilder(testCatalog())
	_, err := b.BuildSQL("SELECT person.* FROM person")
	require.Error(t, err)
}

func TestPlanUnknownTableError(t *testing.T) {
	b := NewBuilder(testCatalog())
	_, err := b.BuildSQL("SELECT * FROM nonexistent")
	require.Error(t, err)
}

func TestPlanCastExpression(t *testing.T) {
	node := plan(t, "SELECT CAST(age AS SIGNED) FROM person")
	require.Contains(t, node.String(), "CAST")
}

func TestPlanExplainWrapsPlan(t *testing.T) {
	b := NewBuilder(testCatalog())
	node, err := b.BuildSQL("EXPLAIN SELECT state FROM person")
	require.NoError(t, err)
	require.Equal(t, "Explain", node.String())
}

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

package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowbase/sqlplanner/sql"
)

func TestCatalogRegisterAndLookupTable(t *testing.T) {
	c := NewCatalog()
	schema := sql.Schema{{Name: "state", Type: sql.Utf8}}
	c.RegisterTable("population", schema)

	got, ok := c.GetTableMeta("population")
	require.True(t, ok)
	require.Equal(t, schema, got)

	_, ok = c.GetTableMeta("missing")
	require.False(t, ok)
}

func TestCatalogScalarFunctionLookup(t *testing.T) {
	c := NewCatalog()
	desc := &sql.ScalarUDFDescriptor{Name: "my_func", InputTypes: []sql.Type{sql.Int64}, OutputType: sql.Int64}
	c.RegisterScalarFunction(desc)

	got, ok := c.GetFunctionMeta("my_func")
	require.True(t, ok)
	require.Same(t, desc, got)
}

func TestCatalogAggregateFunctionLookup(t *testing.T) {
	c := NewCatalog()
	desc := &sql.AggregateUDFDescriptor{Name: "my_agg", InputTypes: []sql.Type{sql.Float64}, OutputType: sql.Float64}
	c.RegisterAggregateFunction(desc)

	got, ok := c.GetAggregateMeta("my_agg")
	require.True(t, ok)
	require.Same(t, desc, got)
}

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

package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaEqual(t *testing.T) {
	a := Schema{{Name: "id", Type: Int64}, {Name: "name", Type: Utf8, Nullable: true}}
	b := Schema{{Name: "id", Type: Int64}, {Name: "name", Type: Utf8, Nullable: true}}
	c := Schema{{Name: "id", Type: Int64}, {Name: "name", Type: Utf8}}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestFieldWithNameStripsHash(t *testing.T) {
	s := Schema{{Name: "state", Type: Utf8}}
	f, ok := s.FieldWithName("#state")
	require.True(t, ok)
	require.Equal(t, "state", f.Name)

	_, ok = s.FieldWithName("missing")
	require.False(t, ok)
}

func TestAliasedSchemaChain(t *testing.T) {
	left := AliasedSchema{"p": {{Name: "id", Type: Int64}}}
	right := AliasedSchema{"o": {{Name: "order_id", Type: Int64}}}

	combined := left.Chain(right)
	require.Len(t, combined, 2)
	require.Contains(t, combined, "p")
	require.Contains(t, combined, "o")
}

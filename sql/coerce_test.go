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

func TestCanCoerceIdentity(t *testing.T) {
	for _, typ := range []Type{Boolean, Int8, Int16, Int32, Int64, UInt8, UInt16, UInt32, UInt64, Float32, Float64, Utf8} {
		require.Truef(t, CanCoerce(typ, typ), "identity coercion should hold for %s", typ)
	}
}

func TestCanCoerceWidening(t *testing.T) {
	cases := []struct {
		from, to Type
		want     bool
	}{
		{Int8, Int16, true},
		{Int16, Int32, true},
		{Int32, Int64, true},
		{Int64, Int32, false},
		{UInt8, UInt16, true},
		{UInt32, UInt64, true},
		{UInt64, UInt32, false},
		{UInt8, Int16, true},
		{UInt32, Int64, true},
		{UInt32, Int32, false},
		{Int32, Float32, true},
		{UInt64, Float64, true},
		{Float32, Float64, true},
		{Float64, Float32, false},
		{Boolean, Int32, false},
		{Int32, Boolean, false},
		{Int32, Utf8, true},
		{Utf8, Int32, false},
		{Float64, Int32, false},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, CanCoerce(c.from, c.to), "CanCoerce(%s, %s)", c.from, c.to)
	}
}

func TestCanCoerceTimestamp(t *testing.T) {
	naive := NewTimestamp(Millisecond, "")
	nanoNaive := NewTimestamp(Nanosecond, "")
	zoned := NewTimestamp(Millisecond, "UTC")

	require.True(t, CanCoerce(naive, nanoNaive))
	require.False(t, CanCoerce(zoned, nanoNaive), "timezone information must never be dropped")
	require.False(t, CanCoerce(nanoNaive, naive), "never coerce away from Nanosecond")
}

func TestCommonType(t *testing.T) {
	single, err := CommonType([]Type{Int32})
	require.NoError(t, err)
	require.Equal(t, Int32, single)

	widened, err := CommonType([]Type{Float64, Int32})
	require.NoError(t, err)
	require.Equal(t, Float64, widened)

	widened2, err := CommonType([]Type{Int32, Float64})
	require.NoError(t, err)
	require.Equal(t, Float64, widened2)

	_, err = CommonType([]Type{Boolean, Int32})
	require.Error(t, err)
}

// if CanCoerce(A, B) holds then matching signature Exact{[B]} against
// actual types [A] must succeed and coerce to B.
func TestCoerceImpliesSignatureMatch(t *testing.T) {
	pairs := []struct{ from, to Type }{
		{UInt8, Int16},
		{Int32, Int64},
		{Float32, Float64},
		{UInt32, Float64},
	}
	for _, p := range pairs {
		require.True(t, CanCoerce(p.from, p.to))
		matched, err := MatchSignature([]Type{p.from}, Exact{Types: []Type{p.to}})
		require.NoError(t, err)
		require.Equal(t, []Type{p.to}, matched)
	}
}

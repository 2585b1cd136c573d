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

// Ported from DataFusion's type_coercion.rs::test_coerce.
func TestMatchSignatureSuccess(t *testing.T) {
	cases := []struct {
		name   string
		actual []Type
		sig    Signature
		want   []Type
	}{
		{"uniform widen", []Type{UInt16}, Uniform{1, []Type{UInt32}}, []Type{UInt32}},
		{"uniform exact", []Type{UInt32, UInt32}, Uniform{2, []Type{UInt32}}, []Type{UInt32, UInt32}},
		{"uniform candidate pick", []Type{UInt32}, Uniform{1, []Type{Float32, Float64}}, []Type{Float32}},
		{"variadic widen", []Type{UInt32, UInt32}, Variadic{[]Type{Float32}}, []Type{Float32, Float32}},
		{"variadic_equal widen", []Type{Float32, UInt32}, VariadicEqual{}, []Type{Float32, Float32}},
		{"variadic pick larger candidate", []Type{UInt32, UInt64}, Variadic{[]Type{UInt32, UInt64}}, []Type{UInt64, UInt64}},
		{"any passthrough", []Type{Float32}, AnyArity{1}, []Type{Float32}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := MatchSignature(c.actual, c.sig)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestMatchSignatureFailure(t *testing.T) {
	cases := []struct {
		name   string
		actual []Type
		sig    Signature
	}{
		{"bool to uint16", []Type{Boolean}, Uniform{1, []Type{UInt16}}},
		{"variadic_equal mismatch", []Type{UInt32, Boolean}, VariadicEqual{}},
		{"variadic bool", []Type{Boolean, Boolean}, Variadic{[]Type{UInt32}}},
		{"any arity mismatch", []Type{UInt32}, AnyArity{2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := MatchSignature(c.actual, c.sig)
			require.Error(t, err)
		})
	}
}

func TestMatchSignatureFastPath(t *testing.T) {
	actual := []Type{UInt8, UInt16}
	got, err := MatchSignature(actual, Exact{Types: []Type{UInt8, UInt16}})
	require.NoError(t, err)
	require.Equal(t, actual, got)
}

func TestMatchSignatureIfFn(t *testing.T) {
	// if(cond1, then1, else) -> [Boolean, common(then1, else), common(then1, else)]
	got, err := MatchSignature([]Type{Boolean, Int32, Float64}, IfFn{})
	require.NoError(t, err)
	require.Equal(t, []Type{Boolean, Float64, Float64}, got)
}

func TestMatchSignatureIfFnArityError(t *testing.T) {
	_, err := MatchSignature([]Type{Boolean}, IfFn{})
	require.Error(t, err)
}

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

import "github.com/arrowbase/sqlplanner/sql"

// builtinScalars maps a recognized scalar function name to its declared
// signature and a function computing its return type from the already
// coerced argument types.
var builtinScalars = map[string]struct {
	Sig        sql.Signature
	ReturnType func(args []sql.Type) sql.Type
}{
	"abs": {
		Sig:        sql.Uniform{N: 1, Candidates: []sql.Type{sql.Int64, sql.Float64}},
		ReturnType: func(args []sql.Type) sql.Type { return args[0] },
	},
	"round": {
		Sig:        sql.Variadic{Candidates: []sql.Type{sql.Float64}},
		ReturnType: func(args []sql.Type) sql.Type { return sql.Float64 },
	},
	"length": {
		Sig:        sql.Uniform{N: 1, Candidates: []sql.Type{sql.Utf8}},
		ReturnType: func(args []sql.Type) sql.Type { return sql.Int64 },
	},
	"upper": {
		Sig:        sql.Uniform{N: 1, Candidates: []sql.Type{sql.Utf8}},
		ReturnType: func(args []sql.Type) sql.Type { return sql.Utf8 },
	},
	"lower": {
		Sig:        sql.Uniform{N: 1, Candidates: []sql.Type{sql.Utf8}},
		ReturnType: func(args []sql.Type) sql.Type { return sql.Utf8 },
	},
	"concat": {
		Sig:        sql.Variadic{Candidates: []sql.Type{sql.Utf8}},
		ReturnType: func(args []sql.Type) sql.Type { return sql.Utf8 },
	},
	"coalesce": {
		Sig:        sql.VariadicEqual{},
		ReturnType: func(args []sql.Type) sql.Type { return args[0] },
	},
	"nullif": {
		Sig:        sql.VariadicEqual{},
		ReturnType: func(args []sql.Type) sql.Type { return args[0] },
	},
	"if": {
		Sig:        sql.IfFn{},
		ReturnType: func(args []sql.Type) sql.Type { return args[len(args)-1] },
	},
}

// builtinAggregates maps a recognized aggregate function name to its
// declared signature and return-type rule. COUNT is special-cased by the
// caller because COUNT(*) takes no typed argument at all.
var builtinAggregates = map[string]struct {
	Sig        sql.Signature
	ReturnType func(args []sql.Type) sql.Type
}{
	"count": {
		Sig:        sql.AnyArity{N: 1},
		ReturnType: func(args []sql.Type) sql.Type { return sql.Int64 },
	},
	"sum": {
		Sig:        sql.Uniform{N: 1, Candidates: []sql.Type{sql.Int64, sql.Float64}},
		ReturnType: func(args []sql.Type) sql.Type { return args[0] },
	},
	"avg": {
		Sig:        sql.Uniform{N: 1, Candidates: []sql.Type{sql.Float64}},
		ReturnType: func(args []sql.Type) sql.Type { return sql.Float64 },
	},
	"min": {
		Sig:        sql.AnyArity{N: 1},
		ReturnType: func(args []sql.Type) sql.Type { return args[0] },
	},
	"max": {
		Sig:        sql.AnyArity{N: 1},
		ReturnType: func(args []sql.Type) sql.Type { return args[0] },
	},
}

func isBuiltinScalar(name string) bool {
	_, ok := builtinScalars[name]
	return ok
}

func isBuiltinAggregate(name string) bool {
	_, ok := builtinAggregates[name]
	return ok
}

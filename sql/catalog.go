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

// ScalarUDFDescriptor describes a user-defined scalar function as seen by
// the translator: its declared name, input type list, output type, and an
// implementation handle the translator never looks inside.
type ScalarUDFDescriptor struct {
	Name       string
	InputTypes []Type
	OutputType Type
	Impl       interface{}
}

// AggregateUDFDescriptor describes a user-defined aggregate function.
type AggregateUDFDescriptor struct {
	Name       string
	InputTypes []Type
	OutputType Type
	Impl       interface{}
}

// SchemaProvider is the translator's only injection point into the catalog.
// Implementations must be safely readable; the translator never writes
// through this interface.
type SchemaProvider interface {
	// GetTableMeta returns the schema of the named table, if it exists.
	GetTableMeta(name string) (Schema, bool)
	// GetFunctionMeta returns the descriptor for a scalar UDF, if one is
	// registered under that name.
	GetFunctionMeta(name string) (*ScalarUDFDescriptor, bool)
	// GetAggregateMeta returns the descriptor for a UDAF, if one is
	// registered under that name.
	GetAggregateMeta(name string) (*AggregateUDFDescriptor, bool)
}

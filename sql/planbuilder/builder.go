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

// Package planbuilder translates a parsed SQL statement into a logical
// plan, resolving identifiers against a catalog and coercing expressions
// according to the Scalar Type lattice.
package planbuilder

import (
	"github.com/sirupsen/logrus"

	"github.com/arrowbase/sqlplanner/sql"
)

// Builder turns a parsed statement into a sql.Node, given a SchemaProvider
// to resolve table and function names against.
type Builder struct {
	catalog        sql.SchemaProvider
	defaultCatalog string
	strictUnique   bool
	log            *logrus.Entry
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithStrictColumnUniqueness sets the Builder's strictUnique flag. Planning
// does not read the flag: FROM clauses that produce two columns with the
// same unqualified name are accepted with or without it, and an
// unqualified reference resolves to the first such column.
func WithStrictColumnUniqueness() Option {
	return func(b *Builder) { b.strictUnique = true }
}

// WithDefaultCatalog records a catalog name on the Builder. Table lookups
// do not use it; every table name is passed to the SchemaProvider as
// written.
func WithDefaultCatalog(name string) Option {
	return func(b *Builder) { b.defaultCatalog = name }
}

// WithLogger replaces the logrus entry the Builder carries. The
// translator itself writes no log lines to it.
func WithLogger(log *logrus.Entry) Option {
	return func(b *Builder) { b.log = log }
}

func NewBuilder(catalog sql.SchemaProvider, opts ...Option) *Builder {
	b := &Builder{
		catalog: catalog,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// scope carries the state threaded through a single query's translation:
// the flat join schema built up so far and the per-alias view of it used
// to resolve qualified identifiers.
type scope struct {
	schema  sql.Schema
	aliased sql.AliasedSchema
}

func newScope() *scope {
	return &scope{aliased: sql.AliasedSchema{}}
}

func (s *scope) addRelation(alias string, schema sql.Schema) {
	s.schema = s.schema.Concat(schema)
	s.aliased[alias] = schema
}

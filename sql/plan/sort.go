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
	"fmt"
	"strings"

	"github.com/arrowbase/sqlplanner/sql"
)

// Sort orders Input's rows by a list of sort fields. It never changes the
// schema.
type Sort struct {
	Fields []sql.SortField
	Input  sql.Node
}

func NewSort(fields []sql.SortField, input sql.Node) *Sort {
	return &Sort{Fields: fields, Input: input}
}

func (s *Sort) Schema() sql.Schema { return s.Input.Schema() }

func (s *Sort) Children() []sql.Node { return []sql.Node{s.Input} }

func (s *Sort) AliasedSchema() sql.AliasedSchema { return s.Input.AliasedSchema() }

func (s *Sort) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		dir := "ASC"
		if !f.Asc {
			dir = "DESC"
		}
		nulls := "NULLS LAST"
		if f.NullsFirst {
			nulls = "NULLS FIRST"
		}
		parts[i] = fmt.Sprintf("%s %s %s", f.Expr, dir, nulls)
	}
	return fmt.Sprintf("Sort: %s", strings.Join(parts, ", "))
}

// Limit restricts Input to at most N rows, optionally skipping Offset rows
// first. It never changes the schema.
type Limit struct {
	N      int64
	Offset int64
	Input  sql.Node
}

func NewLimit(n, offset int64, input sql.Node) *Limit {
	return &Limit{N: n, Offset: offset, Input: input}
}

func (l *Limit) Schema() sql.Schema { return l.Input.Schema() }

func (l *Limit) Children() []sql.Node { return []sql.Node{l.Input} }

func (l *Limit) AliasedSchema() sql.AliasedSchema { return l.Input.AliasedSchema() }

func (l *Limit) String() string {
	if l.Offset > 0 {
		return fmt.Sprintf("Limit: %d, Offset: %d", l.N, l.Offset)
	}
	return fmt.Sprintf("Limit: %d", l.N)
}

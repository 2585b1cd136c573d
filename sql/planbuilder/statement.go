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
	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/arrowbase/sqlplanner/sql"
	"github.com/arrowbase/sqlplanner/sql/plan"
)

// Build is the translator's entry point: it dispatches a parsed statement
// to the handler for its concrete kind and returns the resulting logical
// plan.
func (b *Builder) Build(stmt sqlparser.Statement) (sql.Node, error) {
	switch n := stmt.(type) {
	case sqlparser.SelectStatement:
		return b.planSelectStatement(n)
	case *sqlparser.DDL:
		if n.Action != sqlparser.CreateStr {
			return nil, sql.ErrStatementNotImplemented.New()
		}
		return b.planCreateExternalTable(n)
	case *sqlparser.Explain:
		inner, err := b.Build(n.Statement)
		if err != nil {
			return nil, err
		}
		return plan.NewExplain(inner, n.Analyze), nil
	default:
		return nil, sql.ErrStatementNotImplemented.New()
	}
}

// BuildSQL parses raw SQL text and translates it in one step.
func (b *Builder) BuildSQL(query string) (sql.Node, error) {
	stmt, err := sqlparser.Parse(query)
	if err != nil {
		return nil, sql.ErrSQL.New(err)
	}
	return b.Build(stmt)
}

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

// planSelectStatement dispatches a SelectStatement to its concrete
// handling: a plain Select, or a Union chain (only ALL is supported; any
// other set operator is rejected).
func (b *Builder) planSelectStatement(stmt sqlparser.SelectStatement) (sql.Node, error) {
	switch n := stmt.(type) {
	case *sqlparser.Select:
		return b.planSelect(n)
	case *sqlparser.Union:
		return b.planUnion(n)
	case *sqlparser.ParenSelect:
		return b.planSelectStatement(n.Select)
	default:
		return nil, sql.ErrUnsupportedASTNode.New(stmt)
	}
}

func (b *Builder) planUnion(u *sqlparser.Union) (sql.Node, error) {
	if u.Type != sqlparser.UnionAllStr {
		return nil, sql.ErrSetOpNotImplemented.New()
	}

	left, err := b.planSelectStatement(u.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.planSelectStatement(u.Right)
	if err != nil {
		return nil, err
	}

	un, err := plan.NewUnion([]sql.Node{left, right})
	if err != nil {
		return nil, err
	}
	return un, nil
}

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

package expression

import (
	"github.com/arrowbase/sqlplanner/sql"
)

// Column is a resolved reference to a field, optionally qualified by the
// alias of the relation it came from.
type Column struct {
	Col   string
	Alias string // "" means unqualified
}

func NewColumn(name string) *Column { return &Column{Col: name} }

func NewAliasedColumn(name, alias string) *Column { return &Column{Col: name, Alias: alias} }

// FullName renders "alias.col" if the column is qualified, else just "col".
func (c *Column) FullName() string {
	if c.Alias != "" {
		return c.Alias + "." + c.Col
	}
	return c.Col
}

func (c *Column) Type(schema sql.Schema) (sql.Type, error) {
	f, ok := schema.FieldWithName(c.Col)
	if !ok {
		return sql.Type{}, sql.ErrColumnNotFound.New(c.Col, schema)
	}
	return f.Type, nil
}

func (c *Column) Name(sql.Schema) (string, error) { return c.FullName(), nil }

func (c *Column) String() string { return "#" + c.FullName() }

func (c *Column) Children() []sql.Expression { return nil }

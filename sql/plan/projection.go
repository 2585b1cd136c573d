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

// Projection evaluates a list of expressions against its input, producing
// a new schema named after each expression's canonical output name.
type Projection struct {
	Exprs  []sql.Expression
	Input  sql.Node
	Output sql.Schema
}

// NewProjection computes Output from exprs evaluated against input's schema.
func NewProjection(exprs []sql.Expression, input sql.Node) (*Projection, error) {
	schema := input.Schema()
	out := make(sql.Schema, len(exprs))
	for i, e := range exprs {
		typ, err := e.Type(schema)
		if err != nil {
			return nil, err
		}
		name, err := e.Name(schema)
		if err != nil {
			return nil, err
		}
		out[i] = sql.Field{Name: name, Type: typ}
	}
	return &Projection{Exprs: exprs, Input: input, Output: out}, nil
}

func (p *Projection) Schema() sql.Schema { return p.Output }

func (p *Projection) Children() []sql.Node { return []sql.Node{p.Input} }

func (p *Projection) AliasedSchema() sql.AliasedSchema { return p.Input.AliasedSchema() }

func (p *Projection) String() string {
	parts := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Projection: %s", strings.Join(parts, ", "))
}

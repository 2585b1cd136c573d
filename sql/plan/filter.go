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

	"github.com/arrowbase/sqlplanner/sql"
)

// Filter keeps rows from Input for which Predicate evaluates truthy. It
// never changes the schema.
type Filter struct {
	Predicate sql.Expression
	Input     sql.Node
}

func NewFilter(predicate sql.Expression, input sql.Node) *Filter {
	return &Filter{Predicate: predicate, Input: input}
}

func (f *Filter) Schema() sql.Schema { return f.Input.Schema() }

func (f *Filter) Children() []sql.Node { return []sql.Node{f.Input} }

func (f *Filter) AliasedSchema() sql.AliasedSchema { return f.Input.AliasedSchema() }

func (f *Filter) String() string { return fmt.Sprintf("Filter: %s", f.Predicate) }

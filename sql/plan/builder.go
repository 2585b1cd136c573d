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

import "github.com/arrowbase/sqlplanner/sql"

// Builder is a fluent wrapper that chains plan node construction, carrying
// the first error encountered so callers can check it once at the end of
// a chain instead of after every step.
type Builder struct {
	node sql.Node
	err  error
}

func Scan(name string, schema sql.Schema, projected []string) *Builder {
	return &Builder{node: NewTableScan(name, schema, projected)}
}

func From(n sql.Node) *Builder { return &Builder{node: n} }

func (b *Builder) Build() (sql.Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.node, nil
}

func (b *Builder) Filter(predicate sql.Expression) *Builder {
	if b.err != nil {
		return b
	}
	b.node = NewFilter(predicate, b.node)
	return b
}

func (b *Builder) Project(exprs []sql.Expression) *Builder {
	if b.err != nil {
		return b
	}
	p, err := NewProjection(exprs, b.node)
	if err != nil {
		b.err = err
		return b
	}
	b.node = p
	return b
}

func (b *Builder) Aggregate(groupExprs, aggrExprs []sql.Expression) *Builder {
	if b.err != nil {
		return b
	}
	a, err := NewAggregate(groupExprs, aggrExprs, b.node)
	if err != nil {
		b.err = err
		return b
	}
	b.node = a
	return b
}

func (b *Builder) Sort(fields []sql.SortField) *Builder {
	if b.err != nil {
		return b
	}
	b.node = NewSort(fields, b.node)
	return b
}

func (b *Builder) Limit(n, offset int64) *Builder {
	if b.err != nil {
		return b
	}
	b.node = NewLimit(n, offset, b.node)
	return b
}

func (b *Builder) Join(right sql.Node, keys []JoinKey, joinType JoinType) *Builder {
	if b.err != nil {
		return b
	}
	b.node = NewJoin(b.node, right, keys, joinType)
	return b
}

func Union(inputs []sql.Node) *Builder {
	u, err := NewUnion(inputs)
	if err != nil {
		return &Builder{err: err}
	}
	return &Builder{node: u}
}

func Empty(produceOneRow bool, schema sql.Schema) *Builder {
	return &Builder{node: NewEmptyRelation(produceOneRow, schema)}
}

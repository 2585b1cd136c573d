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

// Package memory provides an in-process sql.SchemaProvider backed by plain
// Go maps, used in tests and as a reference catalog implementation.
package memory

import (
	"sync"

	"github.com/arrowbase/sqlplanner/sql"
)

// Catalog is a thread-safe, in-memory sql.SchemaProvider.
type Catalog struct {
	mu         sync.RWMutex
	tables     map[string]sql.Schema
	scalars    map[string]*sql.ScalarUDFDescriptor
	aggregates map[string]*sql.AggregateUDFDescriptor
}

func NewCatalog() *Catalog {
	return &Catalog{
		tables:     make(map[string]sql.Schema),
		scalars:    make(map[string]*sql.ScalarUDFDescriptor),
		aggregates: make(map[string]*sql.AggregateUDFDescriptor),
	}
}

// RegisterTable adds or replaces a table's schema in the catalog.
func (c *Catalog) RegisterTable(name string, schema sql.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[name] = schema
}

// RegisterScalarFunction adds or replaces a scalar UDF descriptor.
func (c *Catalog) RegisterScalarFunction(desc *sql.ScalarUDFDescriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scalars[desc.Name] = desc
}

// RegisterAggregateFunction adds or replaces a UDAF descriptor.
func (c *Catalog) RegisterAggregateFunction(desc *sql.AggregateUDFDescriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aggregates[desc.Name] = desc
}

func (c *Catalog) GetTableMeta(name string) (sql.Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.tables[name]
	return s, ok
}

func (c *Catalog) GetFunctionMeta(name string) (*sql.ScalarUDFDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.scalars[name]
	return d, ok
}

func (c *Catalog) GetAggregateMeta(name string) (*sql.AggregateUDFDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.aggregates[name]
	return d, ok
}

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

// TableScan is a leaf node reading every column (or a pushed-down subset)
// of a named table out of the catalog.
type TableScan struct {
	TableName       string
	TableSchema     sql.Schema
	ProjectedFields []string // nil means all columns
}

func NewTableScan(name string, schema sql.Schema, projected []string) *TableScan {
	return &TableScan{TableName: name, TableSchema: schema, ProjectedFields: projected}
}

func (t *TableScan) Schema() sql.Schema {
	if t.ProjectedFields == nil {
		return t.TableSchema
	}
	out := make(sql.Schema, 0, len(t.ProjectedFields))
	for _, name := range t.ProjectedFields {
		f, ok := t.TableSchema.FieldWithName(name)
		if ok {
			out = append(out, f)
		}
	}
	return out
}

func (t *TableScan) Children() []sql.Node { return nil }

func (t *TableScan) AliasedSchema() sql.AliasedSchema {
	return sql.AliasedSchema{t.TableName: t.Schema()}
}

func (t *TableScan) String() string {
	if t.ProjectedFields == nil {
		return fmt.Sprintf("TableScan: %s projection=None", t.TableName)
	}
	return fmt.Sprintf("TableScan: %s projection=Some([%s])", t.TableName, strings.Join(t.ProjectedFields, ", "))
}

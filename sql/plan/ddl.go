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

// FileType is the closed set of external table storage formats.
type FileType int

const (
	CSV FileType = iota
	Parquet
	NdJSON
)

func (f FileType) String() string {
	switch f {
	case CSV:
		return "CSV"
	case Parquet:
		return "PARQUET"
	case NdJSON:
		return "NdJson"
	default:
		return "Unknown"
	}
}

// CreateExternalTable registers a table backed by files on disk rather than
// by catalog-managed storage. It carries no input: it is always the root of
// its own statement.
type CreateExternalTable struct {
	TableName   string
	TableSchema sql.Schema
	Location    string
	Type        FileType
	HasHeader   bool
}

func NewCreateExternalTable(name string, schema sql.Schema, location string, fileType FileType, hasHeader bool) *CreateExternalTable {
	return &CreateExternalTable{TableName: name, TableSchema: schema, Location: location, Type: fileType, HasHeader: hasHeader}
}

func (c *CreateExternalTable) Schema() sql.Schema { return sql.Schema{} }

func (c *CreateExternalTable) Children() []sql.Node { return nil }

func (c *CreateExternalTable) AliasedSchema() sql.AliasedSchema { return sql.AliasedSchema{} }

func (c *CreateExternalTable) String() string {
	return fmt.Sprintf("CreateExternalTable: %s", c.TableName)
}

// PlanType distinguishes the two explain verbosity levels.
type PlanType int

const (
	LogicalPlanType PlanType = iota
	LogicalPlanIndentedType
)

// StringifiedPlan is one rendered line of an EXPLAIN result.
type StringifiedPlan struct {
	Type PlanType
	Plan string
}

// Explain wraps Input and renders its tree as text instead of running it.
type Explain struct {
	Input   sql.Node
	Verbose bool
	Output  sql.Schema
}

func NewExplain(input sql.Node, verbose bool) *Explain {
	return &Explain{
		Input:   input,
		Verbose: verbose,
		Output: sql.Schema{
			{Name: "plan_type", Type: sql.Utf8},
			{Name: "plan", Type: sql.Utf8},
		},
	}
}

func (e *Explain) Schema() sql.Schema { return e.Output }

func (e *Explain) Children() []sql.Node { return []sql.Node{e.Input} }

func (e *Explain) AliasedSchema() sql.AliasedSchema { return sql.AliasedSchema{} }

func (e *Explain) String() string { return "Explain" }

// Stringify renders the Input plan tree as the ordered list of
// StringifiedPlan lines EXPLAIN returns, one per node, indented by depth.
func (e *Explain) Stringify() []StringifiedPlan {
	var lines []StringifiedPlan
	var walk func(n sql.Node, depth int)
	walk = func(n sql.Node, depth int) {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		lines = append(lines, StringifiedPlan{Type: LogicalPlanIndentedType, Plan: indent + n.String()})
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(e.Input, 0)
	return lines
}

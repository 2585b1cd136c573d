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
	"regexp"
	"strings"

	"github.com/dolthub/vitess/go/vt/sqlparser"

	"github.com/arrowbase/sqlplanner/sql"
	"github.com/arrowbase/sqlplanner/sql/plan"
)

// locationPattern and storedAsPattern pull the external-table options
// (LOCATION '...', STORED AS <FORMAT>) out of a CREATE TABLE's trailing
// table options string, since the parser has no dedicated grammar for
// them.
var (
	locationPattern = regexp.MustCompile(`(?i)LOCATION\s+'([^']*)'`)
	storedAsPattern = regexp.MustCompile(`(?i)STORED\s+AS\s+(\w+)`)
	withHeaderRow   = regexp.MustCompile(`(?i)WITH\s+HEADER\s+ROW`)
)

// planCreateExternalTable translates a CREATE TABLE statement carrying
// LOCATION/STORED AS options into a CreateExternalTable node.
func (b *Builder) planCreateExternalTable(ddl *sqlparser.DDL) (sql.Node, error) {
	spec := ddl.TableSpec
	if spec == nil {
		return nil, sql.ErrStatementNotImplemented.New()
	}

	fileType := plan.CSV
	if m := storedAsPattern.FindStringSubmatch(spec.Options); m != nil {
		switch strings.ToUpper(m[1]) {
		case "CSV":
			fileType = plan.CSV
		case "PARQUET":
			fileType = plan.Parquet
		case "NDJSON", "JSON":
			fileType = plan.NdJSON
		}
	}

	location := ""
	if m := locationPattern.FindStringSubmatch(spec.Options); m != nil {
		location = m[1]
	}

	if len(spec.Columns) == 0 && fileType == plan.CSV {
		return nil, sql.ErrColumnsRequiredForCSV.New()
	}
	if len(spec.Columns) > 0 && fileType == plan.Parquet {
		return nil, sql.ErrColumnsForbiddenParquet.New()
	}

	schema := make(sql.Schema, len(spec.Columns))
	for i, col := range spec.Columns {
		typeName := col.Type.Type
		t, ok := resolveColumnType(typeName)
		if !ok {
			return nil, sql.ErrUnsupportedSQLType.New(typeName)
		}
		schema[i] = sql.Field{
			Name:     col.Name.String(),
			Type:     t,
			Nullable: bool(col.Type.NotNull) == false,
		}
	}

	hasHeader := withHeaderRow.MatchString(spec.Options)

	return plan.NewCreateExternalTable(ddl.NewName.Name.String(), schema, location, fileType, hasHeader), nil
}

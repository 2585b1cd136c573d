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
	"strings"

	"github.com/arrowbase/sqlplanner/sql"
)

// columnSQLType maps a CREATE EXTERNAL TABLE column's declared SQL type
// name to a Scalar Type, used when building the table's schema.
//
// This table is deliberately not shared with castSQLType: column
// declarations and CAST targets accept different vocabularies in practice
// (a declared column is never "SIGNED"/"UNSIGNED" shorthand, for example),
// so keeping the tables separate avoids silently accepting the wrong
// grammar in the wrong position.
//
// The two tables also map some shared names differently: FLOAT is Float32
// as a column type but Float64 as a CAST target, and TIMESTAMP is
// Date64(Millisecond) as a column type but Timestamp(Nanosecond, None) as
// a CAST target.
var columnSQLType = map[string]sql.Type{
	"boolean":   sql.Boolean,
	"bool":      sql.Boolean,
	"tinyint":   sql.Int8,
	"smallint":  sql.Int16,
	"int":       sql.Int32,
	"integer":   sql.Int32,
	"bigint":    sql.Int64,
	"float":     sql.Float32,
	"double":    sql.Float64,
	"real":      sql.Float64,
	"varchar":   sql.Utf8,
	"char":      sql.Utf8,
	"text":      sql.Utf8,
	"string":    sql.Utf8,
	"timestamp": sql.NewDate64(sql.DateMillisecond),
	"date":      sql.NewDate64(sql.Day),
	"time":      sql.NewTime64(sql.Nanosecond),
}

// castSQLType maps a CAST(... AS type) target name to a Scalar Type.
var castSQLType = map[string]sql.Type{
	"signed":    sql.Int64,
	"unsigned":  sql.UInt64,
	"decimal":   sql.Float64,
	"char":      sql.Utf8,
	"nchar":     sql.Utf8,
	"binary":    sql.Utf8,
	"date":      sql.NewDate64(sql.Day),
	"datetime":  sql.NewTimestamp(sql.Nanosecond, ""),
	"timestamp": sql.NewTimestamp(sql.Nanosecond, ""),
	"time":      sql.NewTime64(sql.Nanosecond),
	"int":       sql.Int32,
	"integer":   sql.Int32,
	"float":     sql.Float64,
	"double":    sql.Float64,
}

func resolveColumnType(name string) (sql.Type, bool) {
	t, ok := columnSQLType[strings.ToLower(name)]
	return t, ok
}

func resolveCastType(name string) (sql.Type, bool) {
	t, ok := castSQLType[strings.ToLower(name)]
	return t, ok
}

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

package sql

import (
	"github.com/pkg/errors"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Each Kind is a message template; .New(args...) instantiates a concrete
// error carrying it. Kinds are grouped by category in comments rather than
// by a shared base type.

// -- Plan: static planning violations -----------------------------------

var (
	ErrTableNotFound           = goerrors.NewKind("no schema found for table %s")
	ErrColumnNotFound          = goerrors.NewKind("invalid identifier %q for schema %s")
	ErrAliasNotFound           = goerrors.NewKind("invalid compound identifier %q. alias not found among: %v")
	ErrProjectionNonAggregate  = goerrors.NewKind("Projection references non-aggregate values")
	ErrCartesianJoin           = goerrors.NewKind("Cartesian joins are not supported")
	ErrUnionEmpty              = goerrors.NewKind("empty UNION")
	ErrUnionSchemaMismatch     = goerrors.NewKind("UNION ALL schema expected to be the same across selects")
	ErrUnexpectedLimit         = goerrors.NewKind("Unexpected expression for LIMIT clause")
	ErrInvalidFunction         = goerrors.NewKind("invalid function %q")
	ErrColumnsRequiredForCSV   = goerrors.NewKind("Column definitions required for CSV files. None found")
	ErrColumnsForbiddenParquet = goerrors.NewKind("Column definitions can not be specified for PARQUET files.")
	ErrCommonType              = goerrors.NewKind("can't find common type between %s and %s")
)

// -- Execution: semantic slips --------------------------------------------

var (
	ErrOrdinalOutOfRange   = goerrors.NewKind("select column reference should be within 1..%d but found %d")
	ErrOrdinalNotAggregate = goerrors.NewKind("can't group by aggregate function: %s")
	ErrNotANumber          = goerrors.NewKind("can't parse %q as a number")
	ErrNullIfArity         = goerrors.NewKind("nullif expects 2 arguments but found %d")
)

// -- NotImplemented: recognized but unsupported ---------------------------

var (
	ErrHavingNotImplemented       = goerrors.NewKind("HAVING is not implemented yet")
	ErrQualifiedWildcard          = goerrors.NewKind("qualified wildcards are not supported")
	ErrJoinUsingNotImplemented    = goerrors.NewKind("JOIN with USING is not supported")
	ErrNaturalJoinNotImplemented  = goerrors.NewKind("NATURAL JOIN is not supported")
	ErrJoinOperatorNotImplemented = goerrors.NewKind("unsupported JOIN operator %s")
	ErrSetOpNotImplemented        = goerrors.NewKind("only UNION ALL is supported")
	ErrUnsupportedASTNode         = goerrors.NewKind("unsupported AST node %T in sql_to_rex")
	ErrUnsupportedBinaryOperator  = goerrors.NewKind("unsupported SQL binary operator %s")
	ErrUnsupportedSQLType         = goerrors.NewKind("the SQL data type %s is not implemented")
	ErrStatementNotImplemented    = goerrors.NewKind("only SELECT statements are implemented")
)

// -- SQL: parser-style errors from JOIN condition extraction -------------

var (
	ErrUnsupportedJoinCondition = goerrors.NewKind("unsupported expression %q in JOIN condition")
	ErrSQL                      = goerrors.NewKind("%v")
)

// -- Internal: assertion-like invariants -----------------------------------

var (
	ErrInternal             = goerrors.NewKind("%s")
	ErrUnaryOpNotUnary      = goerrors.NewKind("SQL binary operator cannot be interpreted as a unary operator")
	ErrCoercionUnreachable  = goerrors.NewKind("coercion from %v to the signature %v failed")
	ErrSignatureArity       = goerrors.NewKind("the function expected %d arguments but received %d")
	ErrIfFnArity            = goerrors.NewKind("if requires at least 2 arguments but found %d")
	ErrCommonTypeUnresolved = goerrors.NewKind("common_type called with no types")
)

// wrapInternal attaches a stack trace to an Internal error so a caller that
// logs it can see where in the translator the invariant broke.
func wrapInternal(err error) error {
	return errors.WithStack(err)
}

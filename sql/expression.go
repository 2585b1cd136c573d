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

// Expression is a resolved scalar expression node. Every variant in
// sql/expression implements this interface.
type Expression interface {
	// Type returns the scalar type the expression evaluates to once
	// resolved against its originating schema.
	Type(schema Schema) (Type, error)
	// Name returns the canonical name used to identify this expression
	// across plan boundaries (e.g. "COUNT(state)").
	Name(schema Schema) (string, error)
	// String renders the expression the way EXPLAIN output does.
	String() string
	// Children returns the expression's immediate sub-expressions, if any.
	Children() []Expression
}

// Operator is the closed set of binary operators.
type Operator int

const (
	Eq Operator = iota
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	Plus
	Minus
	Multiply
	Divide
	Modulus
	And
	Or
	Like
	NotLike
)

func (o Operator) String() string {
	switch o {
	case Eq:
		return "Eq"
	case NotEq:
		return "NotEq"
	case Lt:
		return "Lt"
	case LtEq:
		return "LtEq"
	case Gt:
		return "Gt"
	case GtEq:
		return "GtEq"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Modulus:
		return "Modulus"
	case And:
		return "And"
	case Or:
		return "Or"
	case Like:
		return "Like"
	case NotLike:
		return "NotLike"
	default:
		return "UnknownOperator"
	}
}

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

import "fmt"

// ScalarValue is a typed literal value backing a Literal expression.
type ScalarValue struct {
	Typ   Type
	Value interface{}
}

func NewScalarValue(t Type, v interface{}) ScalarValue {
	return ScalarValue{Typ: t, Value: v}
}

// String renders a literal the way EXPLAIN output does:
// `Int64(1)`, `Utf8("CO")`, `Boolean(true)`.
func (v ScalarValue) String() string {
	if v.Value == nil {
		return fmt.Sprintf("%s(NULL)", v.Typ)
	}
	if v.Typ.ID == Utf8ID {
		return fmt.Sprintf("Utf8(%q)", v.Value)
	}
	return fmt.Sprintf("%s(%v)", v.Typ, v.Value)
}

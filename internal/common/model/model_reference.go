/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

//nolint:all
package model

import "strings"

// Key is one typed step of a Reference.
type Key struct {
	Type KeyTypes `json:"type"`

	Value string `json:"value"`
}

type Reference struct {
	Type ReferenceTypes `json:"type"`

	Keys []Key `json:"keys"`

	ReferredSemanticId *Reference `json:"referredSemanticId,omitempty"`
}

// NewModelReference creates a ModelReference over the given keys.
func NewModelReference(keys ...Key) *Reference {
	return &Reference{
		Type: REFERENCETYPES_MODEL_REFERENCE,
		Keys: append([]Key{}, keys...),
	}
}

// NewExternalReference creates an ExternalReference over the given keys.
func NewExternalReference(keys ...Key) *Reference {
	return &Reference{
		Type: REFERENCETYPES_EXTERNAL_REFERENCE,
		Keys: append([]Key{}, keys...),
	}
}

// NewGlobalReference creates an ExternalReference with a single GlobalReference key.
// It is the usual shape of a semantic id.
func NewGlobalReference(value string) *Reference {
	return NewExternalReference(Key{Type: KEYTYPES_GLOBAL_REFERENCE, Value: value})
}

// Copy returns a deep copy of the reference.
func (r *Reference) Copy() *Reference {
	if r == nil {
		return nil
	}
	c := &Reference{
		Type: r.Type,
		Keys: append([]Key{}, r.Keys...),
	}
	c.ReferredSemanticId = r.ReferredSemanticId.Copy()
	return c
}

// WithFragment returns a copy of the reference with a trailing FragmentReference key.
func (r *Reference) WithFragment(fragment string) *Reference {
	c := r.Copy()
	c.Keys = append(c.Keys, Key{Type: KEYTYPES_FRAGMENT_REFERENCE, Value: fragment})
	return c
}

// LastKey returns the final key of the reference.
func (r *Reference) LastKey() (Key, bool) {
	if r == nil || len(r.Keys) == 0 {
		return Key{}, false
	}
	return r.Keys[len(r.Keys)-1], true
}

// HasKey reports whether any key matches type and value.
func (r *Reference) HasKey(keyType KeyTypes, value string) bool {
	if r == nil {
		return false
	}
	for _, k := range r.Keys {
		if k.Type == keyType && k.Value == value {
			return true
		}
	}
	return false
}

// JoinValues joins the key values with sep, e.g. "sm-1/Connectors/Pneumatic01".
func (r *Reference) JoinValues(sep string) string {
	if r == nil {
		return ""
	}
	values := make([]string, 0, len(r.Keys))
	for _, k := range r.Keys {
		values = append(values, k.Value)
	}
	return strings.Join(values, sep)
}

// AssertReferenceRequired checks if the required fields are not zero-ed
func AssertReferenceRequired(obj Reference) error {
	if obj.Type == "" {
		return &RequiredError{Field: "type"}
	}
	if len(obj.Keys) == 0 {
		return &RequiredError{Field: "keys"}
	}
	for _, el := range obj.Keys {
		if err := AssertKeyRequired(el); err != nil {
			return err
		}
	}
	if obj.ReferredSemanticId != nil {
		return AssertReferenceRequired(*obj.ReferredSemanticId)
	}
	return nil
}

// AssertKeyRequired checks if the required fields are not zero-ed
func AssertKeyRequired(obj Key) error {
	if obj.Type == "" {
		return &RequiredError{Field: "type"}
	}
	if obj.Value == "" {
		return &RequiredError{Field: "value"}
	}
	return nil
}

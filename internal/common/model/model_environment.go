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

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Environment is a set of submodels exchanged as one JSON document.
type Environment struct {
	Submodels []*Submodel `json:"submodels,omitempty"`
}

// Submodel returns the submodel with the given id, or nil.
func (e *Environment) Submodel(id string) *Submodel {
	for _, sm := range e.Submodels {
		if sm.ID == id {
			return sm
		}
	}
	return nil
}

// SubmodelByIdShort returns the first submodel with the given idShort, or nil.
func (e *Environment) SubmodelByIdShort(idShort string) *Submodel {
	for _, sm := range e.Submodels {
		if sm.IdShort == idShort {
			return sm
		}
	}
	return nil
}

// ResolveReference resolves a model reference against the environment.
// A reference that addresses a submodel alone yields that submodel and a nil element.
func (e *Environment) ResolveReference(ref *Reference) (*Submodel, SubmodelElement, error) {
	if ref == nil || len(ref.Keys) == 0 || ref.Keys[0].Type != KEYTYPES_SUBMODEL {
		return nil, nil, fmt.Errorf("%w: reference does not start with a submodel key", ErrReferenceNotResolvable)
	}
	sm := e.Submodel(ref.Keys[0].Value)
	if sm == nil {
		return nil, nil, fmt.Errorf("%w: unknown submodel '%s'", ErrReferenceNotResolvable, ref.Keys[0].Value)
	}
	if len(ref.Keys) == 1 {
		return sm, nil, nil
	}
	element, err := Resolve(sm, ref.Keys)
	if err != nil {
		return nil, nil, err
	}
	return sm, element, nil
}

// UnmarshalEnvironment decodes an environment from JSON. A bare submodel
// document is accepted as a one-element environment.
func UnmarshalEnvironment(data []byte) (*Environment, error) {
	var envelope struct {
		ModelType string            `json:"modelType"`
		Submodels []json.RawMessage `json:"submodels"`
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.ModelType == "Submodel" {
		sm, err := UnmarshalSubmodel(data)
		if err != nil {
			return nil, err
		}
		return &Environment{Submodels: []*Submodel{sm}}, nil
	}
	env := &Environment{}
	for i, raw := range envelope.Submodels {
		sm, err := UnmarshalSubmodel(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal submodel at index %d: %w", i, err)
		}
		env.Submodels = append(env.Submodels, sm)
	}
	return env, nil
}

// MarshalEnvironment encodes the environment as indented JSON.
func MarshalEnvironment(e *Environment) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(e, "", "  ")
}

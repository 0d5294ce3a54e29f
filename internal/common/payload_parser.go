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

package common

import (
	"encoding/json"

	"github.com/eclipse-basyx/basyx-go-amllink/internal/common/model"
	jsoniter "github.com/json-iterator/go"
)

var (
	jsonP = jsoniter.ConfigCompatibleWithStandardLibrary
)

// ParseReferenceJSON accepts a reference object, an array whose first item is
// a reference, or a bare array of keys (read as a ModelReference).
// An empty payload yields nil without error.
func ParseReferenceJSON(rawPayload []byte) (*model.Reference, error) {
	if len(rawPayload) == 0 || string(rawPayload) == "null" {
		return nil, nil
	}

	var single model.Reference
	if err := jsonP.Unmarshal(rawPayload, &single); err == nil {
		return checkReference(&single)
	}

	var items []json.RawMessage
	if err := jsonP.Unmarshal(rawPayload, &items); err != nil {
		return nil, NewErrBadRequest("AMLLINK-PARSEREF-JSON " + err.Error())
	}
	if len(items) == 0 {
		return nil, nil
	}

	var probe map[string]any
	if err := jsonP.Unmarshal(items[0], &probe); err != nil {
		return nil, NewErrBadRequest("AMLLINK-PARSEREF-JSON unexpected array element type")
	}
	if _, isReference := probe["keys"]; isReference {
		ref := &model.Reference{}
		if err := jsonP.Unmarshal(items[0], ref); err != nil {
			return nil, NewErrBadRequest("AMLLINK-PARSEREF-JSON " + err.Error())
		}
		return checkReference(ref)
	}

	var keys []model.Key
	if err := jsonP.Unmarshal(rawPayload, &keys); err != nil {
		return nil, NewErrBadRequest("AMLLINK-PARSEREF-KEYS " + err.Error())
	}
	return checkReference(model.NewModelReference(keys...))
}

func checkReference(ref *model.Reference) (*model.Reference, error) {
	if ref.Type == "" {
		ref.Type = model.REFERENCETYPES_MODEL_REFERENCE
	}
	if err := model.AssertReferenceRequired(*ref); err != nil {
		return nil, NewErrBadRequest("AMLLINK-PARSEREF-INVALID " + err.Error())
	}
	for _, k := range ref.Keys {
		if !k.Type.IsValid() {
			return nil, NewErrBadRequest("AMLLINK-PARSEREF-KEYTYPE unsupported key type " + string(k.Type))
		}
	}
	return ref, nil
}

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

// Package common provides utility functions and shared components
// used across the AML link service.
//
//nolint:revive
package common

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultHostName is used when no host name is configured.
	DefaultHostName = "www.example.com"

	// DefaultTemplateIDSubmodel is the identifier template for new submodels.
	DefaultTemplateIDSubmodel = "/ids/sm/DDDD_DDDD_DDDD_DDDD"

	// DefaultTemplateIDAas is the identifier template for new shells.
	DefaultTemplateIDAas = "/ids/aas/DDDD_DDDD_DDDD_DDDD"

	// DefaultTemplateIDAsset is the identifier template for new assets.
	DefaultTemplateIDAsset = "/ids/asset/DDDD_DDDD_DDDD_DDDD"
)

// GetCurrentTimestamp returns the current time in RFC3339 format.
func GetCurrentTimestamp() string {
	return time.Now().Format(time.RFC3339)
}

// NormalizeBasePath normalizes a URL path: leading slash, no trailing slash,
// "/" for the empty path.
//
// Examples:
//
//	NormalizeBasePath("")        // Returns: "/"
//	NormalizeBasePath("api")     // Returns: "/api"
//	NormalizeBasePath("/api/")   // Returns: "/api"
func NormalizeBasePath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}

// NormalizeHostName falls back to DefaultHostName and trims trailing slashes.
func NormalizeHostName(hostName string) string {
	if hostName == "" {
		hostName = DefaultHostName
	}
	return strings.TrimRight(hostName, "/")
}

// TemplateID prefixes an identifier template with the normalized host name.
func TemplateID(hostName string, template string) string {
	return NormalizeHostName(hostName) + template
}

// MintID fills every 'D' placeholder of template with a digit taken from a
// fresh uuid. Other characters are kept.
//
//	MintID("www.example.com/ids/sm/DDDD_DDDD") // e.g. "www.example.com/ids/sm/4180_2297"
func MintID(template string) string {
	var b strings.Builder
	b.Grow(len(template))
	random := uuid.New()
	n := 0
	for _, r := range template {
		if r != 'D' {
			b.WriteRune(r)
			continue
		}
		if n == len(random) {
			random = uuid.New()
			n = 0
		}
		b.WriteByte('0' + random[n]%10)
		n++
	}
	return b.String()
}

// MintSubmodelID creates a new submodel identifier for the given host.
func MintSubmodelID(hostName string, template string) string {
	if template == "" {
		template = DefaultTemplateIDSubmodel
	}
	return MintID(TemplateID(hostName, template))
}

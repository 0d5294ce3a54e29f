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

// Package main provides the static health probe shipped with the AutomationML
// Link Service image. It accepts the wget arguments used by HEALTHCHECK
// instructions so that distroless images need no shell tools.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	defaultPort    = "5080"
	defaultTimeout = 5 * time.Second
	statusUp       = "UP"
)

type probe struct {
	url     string
	quiet   bool
	spider  bool
	output  string
	timeout time.Duration
}

func main() {
	p, err := parseArgs(os.Args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if p.url == "" {
		p.url = defaultHealthURL(os.Getenv)
	}
	if err := p.run(os.Stdout); err != nil {
		if !p.quiet {
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

// parseArgs understands --quiet/-q, --spider, --timeout N,
// --output-document/-O FILE and a trailing URL. Other flags are ignored.
func parseArgs(args []string) (probe, error) {
	p := probe{output: "-", timeout: defaultTimeout}
	if filepath.Base(args[0]) == "healthprobe" {
		p.quiet = true
	}

	rest := args[1:]
	next := func(code string) (string, error) {
		if len(rest) == 0 {
			return "", errors.New(code)
		}
		v := rest[0]
		rest = rest[1:]
		return v, nil
	}
	for len(rest) > 0 {
		arg := rest[0]
		rest = rest[1:]

		switch {
		case arg == "--quiet" || arg == "-q":
			p.quiet = true
		case arg == "--spider":
			p.spider = true
		case arg == "--tries":
			if _, err := next("HEALTHPROBE-PARSE-MISSINGTRIES"); err != nil {
				return p, err
			}
		case arg == "--output-document" || arg == "-O":
			v, err := next("HEALTHPROBE-PARSE-MISSINGOUTPUT")
			if err != nil {
				return p, err
			}
			p.output = v
		case strings.HasPrefix(arg, "--output-document="):
			p.output = strings.TrimPrefix(arg, "--output-document=")
		case arg == "--timeout":
			v, err := next("HEALTHPROBE-PARSE-MISSINGTIMEOUT")
			if err != nil {
				return p, err
			}
			seconds, err := strconv.Atoi(v)
			if err != nil || seconds <= 0 {
				return p, errors.New("HEALTHPROBE-PARSE-INVALIDTIMEOUT")
			}
			p.timeout = time.Duration(seconds) * time.Second
		case strings.HasPrefix(arg, "-"):
		default:
			p.url = arg
		}
	}
	if p.output == "" {
		p.output = "-"
	}
	return p, nil
}

// defaultHealthURL targets the local service using the same environment
// variables the service reads its configuration from.
func defaultHealthURL(getenv func(string) string) string {
	port := getenv("SERVER_PORT")
	if port == "" {
		port = defaultPort
	}
	contextPath := strings.TrimRight(getenv("SERVER_CONTEXTPATH"), "/")
	return fmt.Sprintf("http://127.0.0.1:%s%s/health", port, contextPath)
}

// run fails unless the endpoint answers below 400 with status UP.
func (p probe) run(stdout io.Writer) error {
	client := &http.Client{Timeout: p.timeout}
	response, err := client.Get(p.url)
	if err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-REQUESTFAILED: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("HEALTHPROBE-RUN-UNHEALTHYSTATUS: %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-READFAILED: %w", err)
	}
	var health struct {
		Status string `json:"status"`
	}
	if err := jsoniter.Unmarshal(body, &health); err != nil || health.Status != statusUp {
		return fmt.Errorf("HEALTHPROBE-RUN-NOTUP: %s", strings.TrimSpace(string(body)))
	}

	switch {
	case p.spider:
		return nil
	case p.output == "-":
		if _, err := stdout.Write(body); err != nil {
			return fmt.Errorf("HEALTHPROBE-RUN-WRITESTDOUTFAILED: %w", err)
		}
		return nil
	default:
		if err := os.WriteFile(p.output, body, 0o600); err != nil {
			return fmt.Errorf("HEALTHPROBE-RUN-WRITEOUTPUTFAILED: %w", err)
		}
		return nil
	}
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package docs serves the API documentation for the tasks service.
//
// The OpenAPI document is kept as embedded YAML (the readable source of
// truth) and served as JSON at /apidocs. The document is parsed once and
// cached; a parse failure is a programming error surfaced at first request.
package docs

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var specYAML []byte

var (
	once sync.Once
	doc  map[string]any
	err  error
)

// Document returns the parsed OpenAPI document.
//
// The returned map is shared; callers must not mutate it.
func Document() (map[string]any, error) {
	once.Do(func() {
		if e := yaml.Unmarshal(specYAML, &doc); e != nil {
			err = fmt.Errorf("failed to parse embedded OpenAPI document: %w", e)
		}
	})
	return doc, err
}

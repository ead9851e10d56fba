// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package pymap renders an interactive HTML map by bridging into
// Python: it invokes an embedded script that calls the folium mapping
// library. The bridge requires a Python interpreter with folium
// installed on the host; without one, Render fails with a
// NotSupported error.
package pymap

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"

	"github.com/grailbio/base/errors"
)

// interpreters are the interpreter names probed, in order.
var interpreters = []string{"python3", "python"}

// script renders the map. It reads a JSON document
// {"points": [...], "path": ...} from stdin.
const script = `
import json, sys

import folium

doc = json.load(sys.stdin)
points = doc["points"]
lat = sum(p["lat"] for p in points) / len(points)
lon = sum(p["lon"] for p in points) / len(points)
m = folium.Map(location=[lat, lon], zoom_start=12)
for p in points:
    folium.Marker([p["lat"], p["lon"]], popup=p["name"]).add_to(m)
m.save(doc["path"])
`

// A Point is a labelled map coordinate.
type Point struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Render writes an interactive HTML map of the given points to path.
// If no Python interpreter is on the host's path, Render returns a
// NotSupported error; failures inside the script (e.g., folium not
// installed) are returned with the script's output.
func Render(ctx context.Context, points []Point, path string) error {
	if len(points) == 0 {
		return errors.E("pymap.Render", errors.Invalid, "no points")
	}
	python, err := interpreter()
	if err != nil {
		return err
	}
	payload, err := json.Marshal(struct {
		Points []Point `json:"points"`
		Path   string  `json:"path"`
	}{points, path})
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, python, "-c", script)
	cmd.Stdin = bytes.NewReader(payload)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.E("pymap.Render", python, err, string(bytes.TrimSpace(out)))
	}
	return nil
}

// Interpreter returns the first Python interpreter on the host's
// path.
func interpreter() (string, error) {
	for _, name := range interpreters {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errors.E("pymap", errors.NotSupported, "no python interpreter found")
}

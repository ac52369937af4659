package shapelib

import (
	"encoding/json"
	"fmt"
	"io"
)

// template is the on-disk form of a shape:
//
//	{"name": "square", "points": [[0, 0], [100, 0], [100, 100], [0, 100]]}
type template struct {
	Name   string       `json:"name"`
	Points [][2]float64 `json:"points"`
}

// LoadTemplates decodes a JSON array of templates.
func LoadTemplates(r io.Reader) ([]*Shape, error) {
	var tpls []template
	if err := json.NewDecoder(r).Decode(&tpls); err != nil {
		return nil, fmt.Errorf("decoding templates: %w", err)
	}
	out := make([]*Shape, 0, len(tpls))
	for i, t := range tpls {
		points := make([]Point, len(t.Points))
		for j, p := range t.Points {
			points[j] = Point{X: p[0], Y: p[1]}
		}
		s, err := NewShape(t.Name, points...)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// WriteTemplates encodes shapes in the format read by LoadTemplates.
func WriteTemplates(w io.Writer, shapes []*Shape) error {
	tpls := make([]template, len(shapes))
	for i, s := range shapes {
		tpls[i].Name = s.name
		tpls[i].Points = make([][2]float64, len(s.points))
		for j, p := range s.points {
			tpls[i].Points[j] = [2]float64{p.X, p.Y}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tpls)
}

package structure

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/i18n"
)

// wireStructure is the decoded form shared by the JSON and YAML loaders.
type wireStructure struct {
	Cell      [][]float64 `json:"cell" yaml:"cell"`
	Positions [][]float64 `json:"positions" yaml:"positions"`
	Elements  []string    `json:"elements" yaml:"elements"`
	Magmoms   []float64   `json:"magmoms" yaml:"magmoms"`
	Fixed     [][]bool    `json:"fixed" yaml:"fixed"`
}

// FromJSON decodes a structure snapshot from JSON bytes.
func FromJSON(data []byte) (*Structure, error) {
	var w wireStructure
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, spxinput.Issues{{
			Path:    "",
			Code:    spxinput.CodeInvalidFormat,
			Message: i18n.T(spxinput.CodeInvalidFormat, nil),
			Cause:   err,
		}}
	}
	return fromWire(w)
}

// FromYAML decodes a structure snapshot from YAML bytes.
func FromYAML(data []byte) (*Structure, error) {
	var w wireStructure
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, spxinput.Issues{{
			Path:    "",
			Code:    spxinput.CodeInvalidFormat,
			Message: i18n.T(spxinput.CodeInvalidFormat, nil),
			Cause:   err,
		}}
	}
	return fromWire(w)
}

func fromWire(w wireStructure) (*Structure, error) {
	var iss spxinput.Issues
	var cell [3][3]float64
	if len(w.Cell) != 3 {
		iss = spxinput.AppendIssues(iss, arityIssue("cell", "3x3 matrix"))
	} else {
		for i, row := range w.Cell {
			if len(row) != 3 {
				iss = spxinput.AppendIssues(iss, arityIssue(fmt.Sprintf("cell[%d]", i), "3-vector"))
				continue
			}
			copy(cell[i][:], row)
		}
	}
	positions := make([][3]float64, 0, len(w.Positions))
	for i, row := range w.Positions {
		if len(row) != 3 {
			iss = spxinput.AppendIssues(iss, arityIssue(fmt.Sprintf("positions[%d]", i), "3-vector"))
			continue
		}
		var p [3]float64
		copy(p[:], row)
		positions = append(positions, p)
	}
	var fixed [][3]bool
	if w.Fixed != nil {
		fixed = make([][3]bool, 0, len(w.Fixed))
		for i, row := range w.Fixed {
			if len(row) != 3 {
				iss = spxinput.AppendIssues(iss, arityIssue(fmt.Sprintf("fixed[%d]", i), "3 axis flags"))
				continue
			}
			var f [3]bool
			copy(f[:], row)
			fixed = append(fixed, f)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return New(cell, positions, w.Elements, w.Magmoms, fixed)
}

func arityIssue(path, expected string) spxinput.Issue {
	return spxinput.Issue{
		Path:    path,
		Code:    spxinput.CodeInvalidType,
		Message: i18n.T(spxinput.CodeInvalidType, nil),
		Hint:    "expected " + expected,
	}
}

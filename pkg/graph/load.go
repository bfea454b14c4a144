package graph

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// Format describes a delimited edge list with a header row.
type Format struct {
	Sep       rune   // field separator
	TopCol    string // header of the top node column
	BottomCol string // header of the bottom node column
	WeightCol string // header of the weight column, empty when absent
	Comment   rune   // lines starting with it are skipped; 0 keeps every line
}

func DefaultFormat() Format {
	return Format{Sep: ',', TopCol: "top", BottomCol: "bottom"}
}

// LoadResource reads a local file or, for http(s) resources, a remote one.
func LoadResource(resource string) ([]byte, error) {
	// Check if it's a network resource or a local one
	if strings.HasPrefix(resource, "http") {
		resp, err := http.Get(resource)
		if err != nil {
			log.Printf("Could not load network file at %s: %v", resource, err)
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("could not load %s: %s", resource, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	contents, err := os.ReadFile(resource)
	if err != nil {
		log.Printf("Could not read graph at %s: %v", resource, err)
		return nil, err
	}
	return contents, nil
}

// LoadEdgeListResource loads and parses a delimited edge list.
func LoadEdgeListResource(resource string, f Format) ([]Edge, error) {
	contents, err := LoadResource(resource)
	if err != nil {
		return nil, err
	}
	edges, err := ParseEdgeList(bytes.NewReader(contents), f)
	if err != nil {
		log.Printf("Could not load graph from %s: %v", resource, err)
		return nil, err
	}
	return edges, nil
}

// LoadLinksResource loads and parses a link list (see ParseLinks).
func LoadLinksResource(resource string) ([]Edge, error) {
	contents, err := LoadResource(resource)
	if err != nil {
		return nil, err
	}
	return ParseLinks(contents)
}

// ParseEdgeList reads edge records from delimited text. The first row is
// a header naming the columns; extra columns are ignored. An empty weight
// cell counts as 1.
func ParseEdgeList(r io.Reader, f Format) ([]Edge, error) {
	reader := csv.NewReader(r)
	if f.Sep != 0 {
		reader.Comma = f.Sep
	}
	reader.Comment = f.Comment
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	topCol, ok := col[f.TopCol]
	if !ok {
		return nil, fmt.Errorf("%q: %w", f.TopCol, ErrMissingColumn)
	}
	bottomCol, ok := col[f.BottomCol]
	if !ok {
		return nil, fmt.Errorf("%q: %w", f.BottomCol, ErrMissingColumn)
	}
	weightCol := -1
	if f.WeightCol != "" {
		if weightCol, ok = col[f.WeightCol]; !ok {
			return nil, fmt.Errorf("%q: %w", f.WeightCol, ErrMissingColumn)
		}
	}

	var edges []Edge
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		e := Edge{Top: record[topCol], Bottom: record[bottomCol]}
		if weightCol >= 0 {
			if cell := strings.TrimSpace(record[weightCol]); cell != "" {
				w, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					line, _ := reader.FieldPos(weightCol)
					return nil, fmt.Errorf("line %d: could not convert weight %s", line, cell)
				}
				e.Weight = &w
			}
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// ParseLinks reads one "from to [weight]" or "from,to[,weight]" link per
// line. Empty lines and lines starting with # or // are skipped.
func ParseLinks(contents []byte) ([]Edge, error) {
	// Split file contents in lines (based on newline delimiter)
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	var edges []Edge
	for i, line := range lines {
		e, skip, err := convertLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if skip {
			continue
		}
		edges = append(edges, e)
	}
	return edges, nil
}

func convertLine(line string) (Edge, bool, error) {
	line = strings.TrimSpace(line)
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || line == "" {
		return Edge{}, true, nil
	}
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) < 2 {
		return Edge{}, false, fmt.Errorf("could not find ToNode in %q", line)
	}
	e := Edge{Top: tokens[0], Bottom: tokens[1]}
	if len(tokens) > 2 {
		w, err := strconv.ParseFloat(tokens[2], 64)
		if err != nil {
			return Edge{}, false, fmt.Errorf("could not convert weight %s", tokens[2])
		}
		e.Weight = &w
	}
	return e, false, nil
}

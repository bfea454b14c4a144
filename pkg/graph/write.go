package graph

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteScores writes "id,<column>" rows in index order.
func WriteScores(w io.Writer, column string, scores []Score) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"id", column}); err != nil {
		return err
	}
	for _, s := range scores {
		if err := out.Write([]string{s.ID, strconv.FormatFloat(s.Value, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// WriteDegrees writes "id,degree" rows in index order.
func WriteDegrees(w io.Writer, degrees []Degree) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"id", "degree"}); err != nil {
		return err
	}
	for _, d := range degrees {
		if err := out.Write([]string{d.ID, strconv.Itoa(d.Degree)}); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// WriteLinks writes "from,to,weight" rows.
func WriteLinks(w io.Writer, links []Link) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"from", "to", "weight"}); err != nil {
		return err
	}
	for _, l := range links {
		if err := out.Write([]string{l.From, l.To, strconv.FormatFloat(l.Weight, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

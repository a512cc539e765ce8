package flower

import "io"
import "fmt"
import "errors"
import "strings"
import "encoding/csv"

import "golang.org/x/exp/mmap"

// ErrBadRecord is returned for rows that cannot be decoded into a
// flower, wrapped with the offending line number.
var ErrBadRecord = errors.New("flower.badrecord")

// Header is the first line written by WriteCSV, Parse discards the
// first line whatever it holds.
var Header = []string{"name", "color", "smell", "regions"}

// Parse flowers from CSV text. First line is a header and skipped,
// every other line shall carry four fields, name, color, smell and a
// bracketed list of regions like "['Asia', 'Europe']".
func Parse(r io.Reader) ([]Flower, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	flowers := make([]Flower, 0, 64)
	if _, err := reader.Read(); err == io.EOF {
		return flowers, nil
	} else if err != nil {
		return nil, badrecord(1, err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, badrecord(perr.StartLine, perr.Err)
			}
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if len(record) != 4 {
			err := fmt.Errorf("expected 4 fields, got %v", len(record))
			return nil, badrecord(line, err)
		}
		regions, err := parseregions(record[3])
		if err != nil {
			return nil, badrecord(line, err)
		}
		flower := Flower{
			Name:    record[0],
			Color:   record[1],
			Smell:   record[2],
			Regions: regions,
		}
		if flower.Name == "" {
			return nil, badrecord(line, errors.New("empty name"))
		}
		flowers = append(flowers, flower)
	}
	return flowers, nil
}

// Load flowers from CSV file `filename`, the file is memory mapped.
func Load(filename string) ([]Flower, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("mmap.Open(%q): %w", filename, err)
	}
	defer r.Close()

	flowers, err := Parse(io.NewSectionReader(r, 0, int64(r.Len())))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return flowers, nil
}

// WriteCSV write flowers in the format understood by Parse, header
// first.
func WriteCSV(w io.Writer, flowers []Flower) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, f := range flowers {
		record := []string{f.Name, f.Color, f.Smell, formatregions(f.Regions)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseregions(field string) ([]string, error) {
	field = strings.TrimSpace(field)
	if !strings.HasPrefix(field, "[") || !strings.HasSuffix(field, "]") {
		return nil, fmt.Errorf("regions %q not bracketed", field)
	}
	regions := []string{}
	for _, region := range strings.Split(field[1:len(field)-1], ",") {
		region = strings.Trim(strings.TrimSpace(region), `'"`)
		if region != "" {
			regions = append(regions, region)
		}
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("no regions in %q", field)
	}
	return regions, nil
}

func formatregions(regions []string) string {
	ss := make([]string, 0, len(regions))
	for _, region := range regions {
		ss = append(ss, "'"+region+"'")
	}
	return "[" + strings.Join(ss, ", ") + "]"
}

func badrecord(line int, err error) error {
	return fmt.Errorf("line %v: %w: %v", line, ErrBadRecord, err)
}

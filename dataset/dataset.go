package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mapgraph/scaling"
)

// Raw CSV columns the ingestion depends on.
const (
	colSchool     = "school"
	colConference = "conference"
	colSong       = "song_name"
	colBPM        = "bpm"
	colDuration   = "sec_duration"
	colFights     = "number_fights"
	colVictory    = "victory_win_won"
	colTropes     = "trope_count"
)

// featureDims is the width of the engineered feature matrix.
const featureDims = 5

// Record is one school after ingestion: identity, engineered scores and the
// joined win rate. Immutable once loaded.
type Record struct {
	School string
	Song   string
	// WinRate is the all-time win percentage joined from Config.WinRates.
	WinRate float64
	// Engineered scores; all but Cliche live on the [1,10] scale.
	Energy     float64
	Aggression float64
	Cliche     float64
	Complexity float64
}

// Tooltip renders the record's display string for graph nodes.
func (r Record) Tooltip() string {
	return fmt.Sprintf("<b>%s</b><br><i>%s</i><br><hr>Win Rate: %s<br>Aggression: %s/10",
		r.School, r.Song, fmtScore(r.WinRate), fmtScore(r.Aggression))
}

// fmtScore prints a score with the shortest exact decimal form.
func fmtScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Table is the engineered dataset, row order matching the source file.
type Table struct {
	Records []Record
}

// FeatureMatrix returns the N×5 engineered matrix in the column order
// energy, win rate, aggression, cliché, complexity.
func (t *Table) FeatureMatrix() *mat.Dense {
	m := mat.NewDense(len(t.Records), featureDims, nil)
	for i, r := range t.Records {
		m.Set(i, 0, r.Energy)
		m.Set(i, 1, r.WinRate)
		m.Set(i, 2, r.Aggression)
		m.Set(i, 3, r.Cliche)
		m.Set(i, 4, r.Complexity)
	}
	return m
}

// Colors returns one win rate per record, the external coloring input of the
// graph assembly.
func (t *Table) Colors() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.WinRate
	}
	return out
}

// Tooltips returns one rendered tooltip per record.
func (t *Table) Tooltips() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Tooltip()
	}
	return out
}

// rawRow carries the parsed cells of one kept CSV row before the min-max
// passes, which need the whole column at once.
type rawRow struct {
	school, song                  string
	bpm, duration, fights, tropes float64
	victory                       bool
}

// Load ingests the raw fight-song CSV and engineers the feature table.
//
// Steps:
//  1. Resolve the required columns from the header (any order, extra columns
//     ignored).
//  2. Remap the configured adopted schools into cfg.Conference, then keep
//     only rows of that conference.
//  3. Join each school's win rate from cfg.WinRates.
//  4. Engineer the scores: cliché = trope count verbatim; aggression =
//     2·fights + 1 if the song says "victory"/"win"/"won", min-maxed to
//     [1,10]; complexity = duration min-maxed to [1,10]; energy = tempo
//     min-maxed to [1,10].
//
// A nil cfg means DefaultConfig. Errors: ErrMissingColumn, ErrBadNumeric
// (wrapped with column and row), ErrUnknownSchool, ErrNoRecords.
func Load(r io.Reader, cfg *Config) (*Table, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	// Stage 1 - header resolution.
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	required := []string{colSchool, colConference, colSong, colBPM, colDuration, colFights, colVictory, colTropes}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("dataset: column %q: %w", name, ErrMissingColumn)
		}
	}

	adopted := make(map[string]bool, len(cfg.AdoptedSchools))
	for _, s := range cfg.AdoptedSchools {
		adopted[s] = true
	}

	// Stage 2 - filter and parse.
	var rows []rawRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row %d: %w", line, err)
		}

		school := rec[idx[colSchool]]
		conference := rec[idx[colConference]]
		if adopted[school] {
			conference = cfg.Conference
		}
		if conference != cfg.Conference {
			continue
		}

		row := rawRow{
			school:  school,
			song:    rec[idx[colSong]],
			victory: rec[idx[colVictory]] == "Yes",
		}
		for _, cell := range []struct {
			col string
			dst *float64
		}{
			{colBPM, &row.bpm},
			{colDuration, &row.duration},
			{colFights, &row.fights},
			{colTropes, &row.tropes},
		} {
			v, err := strconv.ParseFloat(rec[idx[cell.col]], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d column %q value %q: %w",
					line, cell.col, rec[idx[cell.col]], ErrBadNumeric)
			}
			*cell.dst = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset: conference %q: %w", cfg.Conference, ErrNoRecords)
	}

	// Stage 3 - win-rate join.
	winRates := make([]float64, len(rows))
	for i, row := range rows {
		rate, ok := cfg.WinRates[row.school]
		if !ok {
			return nil, fmt.Errorf("dataset: school %q: %w", row.school, ErrUnknownSchool)
		}
		winRates[i] = rate
	}

	// Stage 4 - engineered scores; the min-max passes see whole columns.
	aggRaw := make([]float64, len(rows))
	durRaw := make([]float64, len(rows))
	bpmRaw := make([]float64, len(rows))
	for i, row := range rows {
		aggRaw[i] = 2 * row.fights
		if row.victory {
			aggRaw[i]++
		}
		durRaw[i] = row.duration
		bpmRaw[i] = row.bpm
	}
	aggression := scaling.NormalizeToRange(aggRaw, 1, 10)
	complexity := scaling.NormalizeToRange(durRaw, 1, 10)
	energy := scaling.NormalizeToRange(bpmRaw, 1, 10)

	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{
			School:     row.school,
			Song:       row.song,
			WinRate:    winRates[i],
			Energy:     energy[i],
			Aggression: aggression[i],
			Cliche:     row.tropes,
			Complexity: complexity[i],
		}
	}
	return &Table{Records: records}, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, cfg *Config) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, cfg)
}

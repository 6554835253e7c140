package arena

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/pthm-cable/robotarena/components"
)

// Save record tags.
const (
	tagRobot        = "R"
	tagControllable = "C"
	tagHungry       = "H"
	tagWhisker      = "W"
	tagBullet       = "B"
	tagObstacle     = "O"
	tagParty        = "P"
)

var kindTags = map[components.Kind]string{
	components.KindRobot:         tagRobot,
	components.KindControllable:  tagControllable,
	components.KindHungry:        tagHungry,
	components.KindWhisker:       tagWhisker,
	components.KindBullet:        tagBullet,
	components.KindObstacle:      tagObstacle,
	components.KindPartyObstacle: tagParty,
}

var tagKinds = func() map[string]components.Kind {
	m := make(map[string]components.Kind, len(kindTags))
	for k, t := range kindTags {
		m[t] = k
	}
	return m
}()

// SkippedRecord is a save record that could not be loaded.
type SkippedRecord struct {
	Index  int // Position among the non-empty records
	Record string
	Reason string
}

// LoadReport lists what a load did.
type LoadReport struct {
	Loaded  int
	Skipped []SkippedRecord
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Save writes every item as a ';'-terminated record of space-separated
// fields, in storage order. Party status is not saved.
func (a *Arena) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range a.order {
		it := a.view(e)
		fields := []string{kindTags[it.Kind], formatFloat(it.X), formatFloat(it.Y)}
		if it.Kind.IsRobot() {
			fields = append(fields, formatFloat(it.Angle))
		}
		if it.Kind == components.KindHungry {
			fields = append(fields, strconv.Itoa(it.Radius))
		}
		if _, err := bw.WriteString(strings.Join(fields, " ") + ";"); err != nil {
			return fmt.Errorf("saving item %d: %w", it.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("saving arena: %w", err)
	}
	return nil
}

// Load replaces the arena contents with the records read from r. Items are
// placed exactly where they were saved, without collision checks. Malformed
// records are skipped and listed in the report. Only a read failure is an
// error, in which case the arena is left untouched.
func (a *Arena) Load(r io.Reader) (LoadReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return LoadReport{}, fmt.Errorf("loading arena: %w", err)
	}

	a.Clear()

	var report LoadReport
	index := 0
	for _, rec := range strings.Split(string(data), ";") {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		if reason := a.loadRecord(rec); reason != "" {
			slog.Warn("skipping save record", "index", index, "record", rec, "reason", reason)
			report.Skipped = append(report.Skipped, SkippedRecord{Index: index, Record: rec, Reason: reason})
		} else {
			report.Loaded++
		}
		index++
	}
	return report, nil
}

// loadRecord spawns the item described by one record. It returns a reason
// when the record is rejected.
func (a *Arena) loadRecord(rec string) string {
	fields := strings.Fields(rec)
	kind, ok := tagKinds[fields[0]]
	if !ok {
		return fmt.Sprintf("unknown tag %q", fields[0])
	}

	want := 3
	if kind.IsRobot() {
		want = 4
	}
	if kind == components.KindHungry {
		want = 5
	}
	if len(fields) != want {
		return fmt.Sprintf("tag %s wants %d fields, got %d", fields[0], want, len(fields))
	}

	vals := make([]float64, 0, 3)
	for _, f := range fields[1:min(len(fields), 4)] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Sprintf("bad number %q", f)
		}
		vals = append(vals, v)
	}
	x, y := vals[0], vals[1]
	var angle float64
	if len(vals) > 2 {
		angle = vals[2]
	}

	if kind == components.KindHungry {
		radius, err := strconv.Atoi(fields[4])
		if err != nil || radius < 1 {
			return fmt.Sprintf("bad radius %q", fields[4])
		}
		a.SpawnHungry(x, y, angle, radius)
		return ""
	}
	a.Spawn(kind, x, y, angle)
	return ""
}
